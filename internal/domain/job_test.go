package domain_test

import (
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestExtendExpiry(t *testing.T) {
	now := time.Date(2024, 5, 17, 9, 30, 0, 0, time.UTC)

	t.Run("Active post keeps its remaining days", func(t *testing.T) {
		current := now.AddDate(0, 0, 5)
		got := domain.ExtendExpiry(current, now, 3)
		assert.Equal(t, now.AddDate(0, 0, 8), got)
	})

	t.Run("Lapsed post restarts from today", func(t *testing.T) {
		current := now.AddDate(0, 0, -2)
		got := domain.ExtendExpiry(current, now, 3)
		assert.Equal(t, now.AddDate(0, 0, 3), got)
	})

	t.Run("Expiry exactly now counts as lapsed", func(t *testing.T) {
		got := domain.ExtendExpiry(now, now, 7)
		assert.Equal(t, now.AddDate(0, 0, 7), got)
	})

	t.Run("Expiry is monotonically non-decreasing", func(t *testing.T) {
		expiry := now.AddDate(0, 0, -30)
		for _, days := range []int{1, 3, 7, 30} {
			next := domain.ExtendExpiry(expiry, now, days)
			assert.False(t, next.Before(expiry))
			expiry = next
		}
	})
}

func TestEffectiveVisible(t *testing.T) {
	now := time.Date(2024, 5, 17, 9, 30, 0, 0, time.UTC)

	t.Run("Expired post never displays", func(t *testing.T) {
		assert.False(t, domain.EffectiveVisible(true, now.Add(-time.Second), now))
	})

	t.Run("Expiry boundary is exclusive", func(t *testing.T) {
		assert.False(t, domain.EffectiveVisible(true, now, now))
	})

	t.Run("Active post follows the stored flag", func(t *testing.T) {
		assert.True(t, domain.EffectiveVisible(true, now.AddDate(0, 0, 1), now))
		assert.False(t, domain.EffectiveVisible(false, now.AddDate(0, 0, 1), now))
	})
}

func TestJobExpired(t *testing.T) {
	now := time.Date(2024, 5, 17, 9, 30, 0, 0, time.UTC)

	job := domain.Job{ExpiredAt: now}
	assert.True(t, job.Expired(now))

	job.ExpiredAt = now.Add(time.Second)
	assert.False(t, job.Expired(now))
}
