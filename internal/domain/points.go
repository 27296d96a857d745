package domain

import "time"

// PointsConfig holds the tariff for the points economy: how many points one
// package-day costs, how many points a daily check-in credits, and the balance
// ceiling a company can accumulate.
type PointsConfig struct {
	CostPerDay int
	Daily      int
	Limit      int
}

// PackageCost returns the points price of a package of the given length.
func (p PointsConfig) PackageCost(days int) int {
	return days * p.CostPerDay
}

// CanAfford reports whether a balance covers a package purchase.
func (p PointsConfig) CanAfford(points, days int) bool {
	return p.PackageCost(days) <= points
}

// DailyCredit returns the balance after a daily attendance credit.
// The boundary is checked literally against Limit-Daily so the balance is
// topped up to exactly Limit, never past it.
func (p PointsConfig) DailyCredit(points int) int {
	if points >= p.Limit-p.Daily {
		return p.Limit
	}
	return points + p.Daily
}

// AtLimit reports whether a balance already sits at or above the ceiling.
func (p PointsConfig) AtLimit(points int) bool {
	return points >= p.Limit
}

// SameCalendarDay reports whether two instants fall on the same UTC calendar
// day. Used to gate the once-per-day attendance credit.
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
