package domain

import (
	"context"
	"time"
)

type Company struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Points      int        `json:"points"`
	LoginDate   *time.Time `json:"login_date"`
	Status      string     `json:"status"`
	Avatar      *string    `json:"avatar"`
	Wallpaper   *string    `json:"wallpaper"`
	Address     *string    `json:"address"`
	Website     *string    `json:"website"`
	Scale       *string    `json:"scale"`
	Description *string    `json:"description"`
	Representer *string    `json:"representer"`
	DistrictID  *int64     `json:"district_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// AttendanceResult reports the outcome of a daily check-in. AtLimit means the
// check-in was recorded but the balance was already at the ceiling.
type AttendanceResult struct {
	Attended bool `json:"attended"`
	AtLimit  bool `json:"at_limit"`
	Points   int  `json:"points"`
}

// CompanyProfileUpdate carries the manager-editable profile fields.
type CompanyProfileUpdate struct {
	Address     string
	Scale       string
	Website     string
	Description string
	Representer string
	DistrictID  int64
	Avatar      *string
	Wallpaper   *string
}

type CompanyRepository interface {
	GetByID(ctx context.Context, id int64) (*Company, error)
	// RecordAttendance persists the post-credit balance and the check-in date.
	RecordAttendance(ctx context.Context, id int64, points int, loginDate time.Time) error
	UpdateProfile(ctx context.Context, id int64, update *CompanyProfileUpdate) error
}

type CompanyUsecase interface {
	GetProfile(ctx context.Context, companyID int64) (*Company, error)
	GetPoints(ctx context.Context, companyID int64) (int, error)
	UpdateProfile(ctx context.Context, companyID int64, update *CompanyProfileUpdate) error
	// DailyAttendance credits the once-per-day point bonus. The check-in date
	// is recorded even when the balance is already at the limit; only a
	// same-day repeat is rejected.
	DailyAttendance(ctx context.Context, companyID int64) (*AttendanceResult, error)
}
