package domain

import (
	"context"
	"time"
)

type Candidate struct {
	ID     int64    `json:"id"`
	UserID string   `json:"user_id"`
	CVLink *string  `json:"cv_link"`
	Skills []string `json:"skills"`
}

// AppliedJob is a job the candidate applied to, with enough company context to
// render the application list.
type AppliedJob struct {
	JobID       int64     `json:"job_id"`
	Title       string    `json:"title"`
	CompanyID   int64     `json:"company_id"`
	CompanyName string    `json:"company_name"`
	ExpiredAt   time.Time `json:"expired_at"`
	Visible     bool      `json:"visible"`
	AppliedAt   time.Time `json:"applied_at"`
}

// JobApplicant is the HR-side view of one application.
type JobApplicant struct {
	Email     string  `json:"email"`
	Surname   string  `json:"surname"`
	GivenName string  `json:"given_name"`
	Avatar    *string `json:"avatar"`
	Status    string  `json:"status"`
	CVLink    *string `json:"cv_link"`
}

type FollowedCompany struct {
	CompanyID int64   `json:"company_id"`
	Name      string  `json:"name"`
	Avatar    *string `json:"avatar"`
}

type CandidateRepository interface {
	GetByUserID(ctx context.Context, userID string) (*Candidate, error)
	UpdateCV(ctx context.Context, candidateID int64, cvLink string) error
	UpdateSkills(ctx context.Context, candidateID int64, skills []string) error
	Apply(ctx context.Context, candidateID, jobID int64) error
	SaveJob(ctx context.Context, candidateID, jobID int64) error
	UnsaveJob(ctx context.Context, candidateID, jobID int64) error
	Follow(ctx context.Context, candidateID, companyID int64) error
	Unfollow(ctx context.Context, candidateID, companyID int64) error
	FetchApplied(ctx context.Context, candidateID int64, limit, offset int) ([]AppliedJob, int64, error)
	FetchSaved(ctx context.Context, candidateID int64, limit, offset int) ([]AppliedJob, int64, error)
	FetchFollowing(ctx context.Context, candidateID int64, limit, offset int) ([]FollowedCompany, int64, error)
	FetchApplicants(ctx context.Context, jobID, companyID int64, limit, offset int) ([]JobApplicant, int64, error)
}

type CandidateUsecase interface {
	GetProfile(ctx context.Context, userID string) (*Candidate, error)
	UpdateCV(ctx context.Context, candidateID int64, cvLink string) error
	UpdateSkills(ctx context.Context, candidateID int64, skills []string) error
	// ApplyJob rejects applications to posts that are not effectively visible.
	ApplyJob(ctx context.Context, candidateID, jobID int64) error
	SaveJob(ctx context.Context, candidateID, jobID int64) error
	UnsaveJob(ctx context.Context, candidateID, jobID int64) error
	FollowCompany(ctx context.Context, candidateID, companyID int64) error
	UnfollowCompany(ctx context.Context, candidateID, companyID int64) error
	ListApplied(ctx context.Context, candidateID int64, page, pageSize int) ([]AppliedJob, int64, error)
	ListSaved(ctx context.Context, candidateID int64, page, pageSize int) ([]AppliedJob, int64, error)
	ListFollowing(ctx context.Context, candidateID int64, page, pageSize int) ([]FollowedCompany, int64, error)
	ListJobApplicants(ctx context.Context, actor HRActor, jobID int64, page, pageSize int) ([]JobApplicant, int64, error)
}
