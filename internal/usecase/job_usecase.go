package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
	points  domain.PointsConfig
}

func NewJobUsecase(jobRepo domain.JobRepository, points domain.PointsConfig) domain.JobUsecase {
	return &jobUsecase{
		jobRepo: jobRepo,
		points:  points,
	}
}

func insufficientPoints() *apperror.AppError {
	return apperror.New(http.StatusBadRequest, "Not enough points for payment", domain.ErrInsufficientPoints)
}

func forbidden() *apperror.AppError {
	return apperror.New(http.StatusForbidden, "Forbidden", domain.ErrForbidden)
}

// validateJobInput checks the descriptive fields shared by create and update.
func validateJobInput(input *domain.JobInput) error {
	if input.Title == "" || input.Description == "" || input.Benefit == "" || input.Requirement == "" {
		return apperror.BadRequest("All fields are required")
	}
	if input.RecruitAmount <= 0 {
		return apperror.BadRequest("RecruitAmount must be positive")
	}
	if len(input.CityIDs) == 0 || len(input.WorkTypeIDs) == 0 {
		return apperror.BadRequest("At least one city and work type are required")
	}
	if (input.MinSalary != nil || input.MaxSalary != nil) && input.CurrencyID == nil {
		return apperror.BadRequest("Currency is required when a salary is set")
	}
	if input.MinSalary != nil && input.MaxSalary != nil && *input.MinSalary > *input.MaxSalary {
		return apperror.BadRequest("MinSalary cannot be greater than MaxSalary")
	}
	return nil
}

func (u *jobUsecase) CreateJob(ctx context.Context, actor domain.HRActor, input *domain.JobInput) (*domain.Job, error) {
	if err := validateJobInput(input); err != nil {
		return nil, err
	}
	if input.PackageDays <= 0 {
		return nil, apperror.BadRequest("A package is required to create a job post")
	}

	// The balance check happens before anything is written; the repository
	// re-checks under the transaction so concurrent purchases cannot overdraw.
	if !u.points.CanAfford(actor.Points, input.PackageDays) {
		return nil, insufficientPoints()
	}
	cost := u.points.PackageCost(input.PackageDays)

	now := time.Now().UTC()
	job := &domain.Job{
		CompanyID:     actor.CompanyID,
		Title:         input.Title,
		Description:   input.Description,
		Benefit:       input.Benefit,
		Requirement:   input.Requirement,
		RecruitAmount: input.RecruitAmount,
		MinSalary:     input.MinSalary,
		MaxSalary:     input.MaxSalary,
		CurrencyID:    salaryCurrency(input),
		ExpiredAt:     domain.AddDays(now, input.PackageDays),
		Visible:       true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := u.jobRepo.CreateWithDebit(ctx, job, input.CityIDs, input.WorkTypeIDs, actor.HRID, cost); err != nil {
		if errors.Is(err, domain.ErrInsufficientPoints) {
			return nil, insufficientPoints()
		}
		return nil, err
	}
	return job, nil
}

// salaryCurrency drops the currency when no salary bound is set.
func salaryCurrency(input *domain.JobInput) *int64 {
	if input.MinSalary == nil && input.MaxSalary == nil {
		return nil
	}
	return input.CurrencyID
}

// ownedJob loads a job and enforces that the actor's company owns it. A
// missing job is reported as Forbidden, same as a foreign one, so probing for
// job IDs leaks nothing.
func (u *jobUsecase) ownedJob(ctx context.Context, actor domain.HRActor, id int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil || job.CompanyID != actor.CompanyID {
		return nil, forbidden()
	}
	return job, nil
}

func (u *jobUsecase) GetJob(ctx context.Context, actor domain.HRActor, id int64) (*domain.JobDetail, error) {
	detail, err := u.jobRepo.GetDetail(ctx, id)
	if err != nil || detail.CompanyID != actor.CompanyID {
		return nil, forbidden()
	}
	return detail, nil
}

func (u *jobUsecase) ListCompanyJobs(ctx context.Context, filter domain.CompanyJobFilter) ([]domain.JobDetail, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 10
	}
	if filter.OrderBy != "asc" {
		filter.OrderBy = "desc"
	}
	return u.jobRepo.FetchByCompany(ctx, filter)
}

func (u *jobUsecase) UpdateJob(ctx context.Context, actor domain.HRActor, id int64, input *domain.JobInput) error {
	if err := validateJobInput(input); err != nil {
		return err
	}

	job, err := u.ownedJob(ctx, actor, id)
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	// A bare field update cannot resurrect an expired post.
	if job.Expired(now) && input.PackageDays <= 0 {
		return apperror.New(http.StatusBadRequest, "Post is expired, need to be renewed", domain.ErrPostExpired)
	}

	cost := 0
	if input.PackageDays > 0 {
		if !u.points.CanAfford(actor.Points, input.PackageDays) {
			return insufficientPoints()
		}
		cost = u.points.PackageCost(input.PackageDays)
		job.ExpiredAt = domain.ExtendExpiry(job.ExpiredAt, now, input.PackageDays)
	}

	job.Title = input.Title
	job.Description = input.Description
	job.Benefit = input.Benefit
	job.Requirement = input.Requirement
	job.RecruitAmount = input.RecruitAmount
	job.MinSalary = input.MinSalary
	job.MaxSalary = input.MaxSalary
	job.CurrencyID = salaryCurrency(input)
	job.Visible = input.Visible
	job.UpdatedAt = now

	if err := u.jobRepo.Update(ctx, job, input.CityIDs, input.WorkTypeIDs, actor.HRID, cost); err != nil {
		if errors.Is(err, domain.ErrInsufficientPoints) {
			return insufficientPoints()
		}
		return err
	}
	return nil
}

func (u *jobUsecase) ExtendJob(ctx context.Context, actor domain.HRActor, id int64, packageDays int, visible bool) error {
	if packageDays <= 0 {
		return apperror.BadRequest("Missing required field")
	}

	job, err := u.ownedJob(ctx, actor, id)
	if err != nil {
		return err
	}

	if !u.points.CanAfford(actor.Points, packageDays) {
		return insufficientPoints()
	}
	cost := u.points.PackageCost(packageDays)

	now := time.Now().UTC()
	expiredAt := domain.ExtendExpiry(job.ExpiredAt, now, packageDays)

	// A fresh purchase implies an explicit visibility choice, so the flag is
	// taken from the caller as-is.
	if err := u.jobRepo.ExtendWithDebit(ctx, id, actor.CompanyID, expiredAt, visible, cost); err != nil {
		if errors.Is(err, domain.ErrInsufficientPoints) {
			return insufficientPoints()
		}
		return err
	}
	return nil
}

func (u *jobUsecase) SetVisibility(ctx context.Context, actor domain.HRActor, id int64, visible bool) (*domain.SetVisibilityResult, error) {
	job, err := u.ownedJob(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	// Expiry wins over the requested flag: an expired post is forced hidden
	// and the caller is told a package purchase is needed.
	expired := job.Expired(time.Now().UTC())
	stored := visible
	if expired {
		stored = false
	}

	if err := u.jobRepo.SetVisible(ctx, id, stored); err != nil {
		return nil, err
	}
	return &domain.SetVisibilityResult{Visible: stored, Expired: expired}, nil
}

func (u *jobUsecase) DeleteJob(ctx context.Context, actor domain.HRActor, id int64) error {
	if _, err := u.ownedJob(ctx, actor, id); err != nil {
		return err
	}
	return u.jobRepo.Delete(ctx, id)
}

func (u *jobUsecase) SearchPublicJobs(ctx context.Context, filter domain.PublicJobFilter) ([]domain.PublicJob, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 10
	}
	if filter.OrderBy != "asc" {
		filter.OrderBy = "desc"
	}
	return u.jobRepo.Search(ctx, filter)
}

func (u *jobUsecase) GetPublicJob(ctx context.Context, id int64) (*domain.JobDetail, error) {
	detail, err := u.jobRepo.GetDetail(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Job not found")
	}
	// Hidden and lapsed posts are indistinguishable from missing ones.
	if !domain.EffectiveVisible(detail.Visible, detail.ExpiredAt, time.Now().UTC()) {
		return nil, apperror.NotFound("Job not found")
	}
	return detail, nil
}

func (u *jobUsecase) ListCompanyPublicJobs(ctx context.Context, companyID int64, page, pageSize int) ([]domain.PublicJob, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize
	return u.jobRepo.FetchVisibleByCompany(ctx, companyID, pageSize, offset)
}
