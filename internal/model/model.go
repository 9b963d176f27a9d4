package model

import "time"

type Plan string

const (
	PlanFree  Plan = "free"
	PlanPro   Plan = "pro"
	PlanUltra Plan = "ultra"
)

// RequestsPerMinute returns the per-key request allowance for a plan.
// Unknown plans fall back to the free tier.
func (p Plan) RequestsPerMinute() int {
	switch p {
	case PlanPro:
		return 120
	case PlanUltra:
		return 600
	default:
		return 20
	}
}

const (
	CallerAccount  = "account"
	CallerMaster   = "master"
	CallerRapidAPI = "rapidapi"
)

// UsageEvent records one metered API call.
type UsageEvent struct {
	ID         string    `json:"id"`
	AccountID  string    `json:"account_id,omitempty"`
	Caller     string    `json:"caller"`
	Endpoint   string    `json:"endpoint"`
	Status     int       `json:"status"`
	DurationMs int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

// UsageSummary aggregates usage events for one account.
type UsageSummary struct {
	TotalRequests int            `json:"total_requests"`
	ByEndpoint    map[string]int `json:"by_endpoint"`
	ByStatus      map[int]int    `json:"by_status"`
}
