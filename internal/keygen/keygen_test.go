package keygen

import (
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var suggestRe = regexp.MustCompile(`^SecureAI(\d{6})(\d{4})_TextAnalytics$`)

func TestSuggestShape(t *testing.T) {
	for i := 0; i < 50; i++ {
		got := Suggest()
		m := suggestRe.FindStringSubmatch(got)
		require.NotNil(t, m, "suggestion %q does not match expected shape", got)

		n, err := strconv.Atoi(m[1])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)

		assert.Equal(t, time.Now().Format("0102"), m[2])
	}
}

func TestSuggestAtBoundaries(t *testing.T) {
	day := time.Date(2024, time.March, 7, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "SecureAI1000000307_TextAnalytics", suggestAt(day, 0))
	assert.Equal(t, "SecureAI9999990307_TextAnalytics", suggestAt(day, 899999))
}

func TestNewKey(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		k, err := NewKey()
		require.NoError(t, err)
		assert.Regexp(t, `^ta_[A-Za-z0-9_-]{32}$`, k)
		assert.False(t, seen[k], "duplicate key issued")
		seen[k] = true
	}
}
