package httpapi

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"text-analytics/server/internal/model"
	"text-analytics/server/internal/store"
)

const requestIDHeader = "X-Request-Id"

type contextKey string

const ctxAccountID contextKey = "account_id"
const ctxUsername contextKey = "username"
const ctxCaller contextKey = "caller"
const ctxPlan contextKey = "plan"

func accountIDFromContext(ctx context.Context) string {
	v, _ := ctx.Value(ctxAccountID).(string)
	return v
}

func callerFromContext(ctx context.Context) string {
	v, _ := ctx.Value(ctxCaller).(string)
	return v
}

func planFromContext(ctx context.Context) model.Plan {
	v, ok := ctx.Value(ctxPlan).(model.Plan)
	if !ok {
		return model.PlanFree
	}
	return v
}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(requestIDHeader) == "" {
			var b [12]byte
			_, _ = rand.Read(b[:])
			r.Header.Set(requestIDHeader, hex.EncodeToString(b[:]))
		}
		w.Header().Set(requestIDHeader, r.Header.Get(requestIDHeader))
		next.ServeHTTP(w, r)
	})
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s in %s", r.Method, r.URL.Path, r.Header.Get(requestIDHeader), time.Since(start).String())
	})
}

func recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				writeError(w, http.StatusInternalServerError, "panic", "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func openPath(path string) bool {
	switch path {
	case "/", "/health", "/debug":
		return true
	}
	return strings.HasPrefix(path, "/v1/auth/")
}

func (s *Server) authMiddleware(next http.Handler) http.Handler {
	masterKey := strings.TrimSpace(s.cfg.APIKey)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if openPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		// Account surface requires a JWT.
		if strings.HasPrefix(r.URL.Path, "/v1/") {
			tokenStr := ""
			if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
				tokenStr = strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
			}
			// EventSource cannot set headers.
			if tokenStr == "" && r.Method == http.MethodGet {
				tokenStr = strings.TrimSpace(r.URL.Query().Get("token"))
			}
			if tokenStr != "" {
				if accountID, username, err := parseJWT(tokenStr); err == nil {
					ctx := context.WithValue(r.Context(), ctxAccountID, accountID)
					ctx = context.WithValue(ctx, ctxUsername, username)
					ctx = context.WithValue(ctx, ctxCaller, model.CallerAccount)
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				} else {
					log.Printf("[auth] JWT parse failed: %v", err)
				}
			}
			writeError(w, http.StatusUnauthorized, "unauthorized", "missing or invalid credentials")
			return
		}

		// Requests proxied through RapidAPI carry its headers; the
		// gateway has already authenticated the subscriber.
		if r.Header.Get("X-RapidAPI-Key") != "" && r.Header.Get("X-RapidAPI-Host") != "" {
			ctx := context.WithValue(r.Context(), ctxCaller, model.CallerRapidAPI)
			ctx = context.WithValue(ctx, ctxPlan, model.PlanUltra)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		key := strings.TrimSpace(r.Header.Get("X-API-Key"))
		if key == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized", "missing or invalid API key")
			return
		}

		if masterKey != "" && key == masterKey {
			ctx := context.WithValue(r.Context(), ctxCaller, model.CallerMaster)
			ctx = context.WithValue(ctx, ctxPlan, model.PlanUltra)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		a, err := s.store.GetAccountByAPIKey(r.Context(), key)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				writeError(w, http.StatusUnauthorized, "unauthorized", "missing or invalid API key")
				return
			}
			writeError(w, http.StatusInternalServerError, "internal", "failed to verify API key")
			return
		}

		ctx := context.WithValue(r.Context(), ctxAccountID, a.ID)
		ctx = context.WithValue(ctx, ctxUsername, a.Username)
		ctx = context.WithValue(ctx, ctxCaller, model.CallerAccount)
		ctx = context.WithValue(ctx, ctxPlan, a.Plan)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
