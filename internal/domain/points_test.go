package domain_test

import (
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestPackageCost(t *testing.T) {
	cfg := domain.PointsConfig{CostPerDay: 10, Daily: 20, Limit: 100}

	assert.Equal(t, 30, cfg.PackageCost(3))
	assert.True(t, cfg.CanAfford(30, 3))
	assert.True(t, cfg.CanAfford(31, 3))
	assert.False(t, cfg.CanAfford(29, 3))
}

func TestDailyCredit(t *testing.T) {
	cfg := domain.PointsConfig{CostPerDay: 10, Daily: 20, Limit: 100}

	t.Run("Normal credit adds the daily amount", func(t *testing.T) {
		assert.Equal(t, 60, cfg.DailyCredit(40))
	})

	t.Run("Near the ceiling credits exactly to the limit", func(t *testing.T) {
		// 90 + 20 would overshoot; must cap at 100.
		assert.Equal(t, 100, cfg.DailyCredit(90))
	})

	t.Run("Exact boundary value tops up to the limit", func(t *testing.T) {
		assert.Equal(t, 100, cfg.DailyCredit(80))
	})

	t.Run("Just below the boundary still gets the full credit", func(t *testing.T) {
		assert.Equal(t, 99, cfg.DailyCredit(79))
	})

	t.Run("AtLimit", func(t *testing.T) {
		assert.False(t, cfg.AtLimit(99))
		assert.True(t, cfg.AtLimit(100))
		assert.True(t, cfg.AtLimit(120))
	})
}

func TestSameCalendarDay(t *testing.T) {
	noon := time.Date(2024, 5, 17, 12, 0, 0, 0, time.UTC)

	assert.True(t, domain.SameCalendarDay(noon, noon.Add(11*time.Hour)))
	assert.False(t, domain.SameCalendarDay(noon, noon.Add(13*time.Hour)))
	assert.False(t, domain.SameCalendarDay(noon, noon.AddDate(0, 0, -1)))
}
