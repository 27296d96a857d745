package domain

import (
	"context"
	"time"
)

type Job struct {
	ID            int64     `json:"id"`
	CompanyID     int64     `json:"company_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Benefit       string    `json:"benefit"`
	Requirement   string    `json:"requirement"`
	RecruitAmount int       `json:"recruit_amount"`
	MinSalary     *float64  `json:"min_salary"`
	MaxSalary     *float64  `json:"max_salary"`
	CurrencyID    *int64    `json:"currency_id"`
	ExpiredAt     time.Time `json:"expired_at"`
	Visible       bool      `json:"visible"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Expired reports whether the post's display window has lapsed.
func (j *Job) Expired(now time.Time) bool {
	return !now.Before(j.ExpiredAt)
}

// EffectiveVisible derives the actually-displayed visibility state. Expiry
// always wins over the stored flag.
func EffectiveVisible(stored bool, expiredAt, now time.Time) bool {
	if !now.Before(expiredAt) {
		return false
	}
	return stored
}

// AddDays moves an instant forward by whole calendar days in UTC.
func AddDays(t time.Time, days int) time.Time {
	return t.UTC().AddDate(0, 0, days)
}

// ExtendExpiry computes the new expiry after purchasing packageDays more days.
// A post renewed before it lapses keeps its remaining time; a lapsed post gets
// a fresh window starting today.
func ExtendExpiry(current, now time.Time, packageDays int) time.Time {
	if now.Before(current) {
		return AddDays(current, packageDays)
	}
	return AddDays(now, packageDays)
}

// JobDetail extends Job with its resolved associations.
type JobDetail struct {
	Job
	Cities    []City     `json:"cities"`
	WorkTypes []WorkType `json:"work_types"`
}

// PublicJob is the listing shape exposed on unauthenticated endpoints.
type PublicJob struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Requirement   string     `json:"requirement"`
	ExpiredAt     time.Time  `json:"expired_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	CompanyID     int64      `json:"company_id"`
	CompanyName   string     `json:"company_name"`
	CompanyAvatar *string    `json:"company_avatar"`
	Cities        []City     `json:"cities"`
	WorkTypes     []WorkType `json:"work_types"`
}

// HRActor identifies the HR user acting on behalf of a company. The credential
// middleware resolves it from the session before any job mutation runs; Points
// is the balance read at that moment and is re-checked inside the purchase
// transaction.
type HRActor struct {
	HRID      int64
	CompanyID int64
	Points    int
}

// JobInput carries the descriptive fields of a create or update request.
// PackageDays > 0 means a package purchase rides along with the write.
type JobInput struct {
	Title         string
	Description   string
	Benefit       string
	Requirement   string
	RecruitAmount int
	MinSalary     *float64
	MaxSalary     *float64
	CurrencyID    *int64
	PackageDays   int
	Visible       bool
	CityIDs       []int64
	WorkTypeIDs   []int64
}

// CompanyJobFilter narrows an HR-side job listing.
type CompanyJobFilter struct {
	CompanyID int64
	FromDate  *time.Time
	ToDate    *time.Time
	OrderBy   string // "asc" or "desc", default desc
	Page      int
	PageSize  int
}

// PublicJobFilter narrows the public job search. Only posts that are visible
// and unexpired are ever returned, regardless of the filter.
type PublicJobFilter struct {
	SearchPhrase string
	CityIDs      []int64
	WorkTypeIDs  []int64
	OrderBy      string
	Page         int
	PageSize     int
}

// SetVisibilityResult distinguishes a plain success from the expired case,
// where the stored flag was forced to false and the company has to buy a
// package before the post can display again.
type SetVisibilityResult struct {
	Visible bool `json:"visible"`
	Expired bool `json:"expired"`
}

type JobRepository interface {
	// CreateWithDebit inserts the job and its associations and debits the
	// owning company cost points, all in one transaction. The debit is
	// conditional on the stored balance still covering the cost.
	CreateWithDebit(ctx context.Context, job *Job, cityIDs, workTypeIDs []int64, hrID int64, cost int) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	GetDetail(ctx context.Context, id int64) (*JobDetail, error)
	FetchByCompany(ctx context.Context, filter CompanyJobFilter) ([]JobDetail, int64, error)
	// Update rewrites the job's fields and replaces its associations. When
	// cost > 0 the company is debited in the same transaction.
	Update(ctx context.Context, job *Job, cityIDs, workTypeIDs []int64, hrID int64, cost int) error
	// ExtendWithDebit debits the company and writes the new expiry and
	// visibility flag atomically.
	ExtendWithDebit(ctx context.Context, jobID, companyID int64, expiredAt time.Time, visible bool, cost int) error
	SetVisible(ctx context.Context, jobID int64, visible bool) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, filter PublicJobFilter) ([]PublicJob, int64, error)
	FetchVisibleByCompany(ctx context.Context, companyID int64, limit, offset int) ([]PublicJob, int64, error)
}

type JobUsecase interface {
	CreateJob(ctx context.Context, actor HRActor, input *JobInput) (*Job, error)
	GetJob(ctx context.Context, actor HRActor, id int64) (*JobDetail, error)
	ListCompanyJobs(ctx context.Context, filter CompanyJobFilter) ([]JobDetail, int64, error)
	UpdateJob(ctx context.Context, actor HRActor, id int64, input *JobInput) error
	ExtendJob(ctx context.Context, actor HRActor, id int64, packageDays int, visible bool) error
	SetVisibility(ctx context.Context, actor HRActor, id int64, visible bool) (*SetVisibilityResult, error)
	DeleteJob(ctx context.Context, actor HRActor, id int64) error
	SearchPublicJobs(ctx context.Context, filter PublicJobFilter) ([]PublicJob, int64, error)
	GetPublicJob(ctx context.Context, id int64) (*JobDetail, error)
	ListCompanyPublicJobs(ctx context.Context, companyID int64, page, pageSize int) ([]PublicJob, int64, error)
}
