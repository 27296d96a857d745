package usecase

import (
	"context"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type candidateUsecase struct {
	candidateRepo domain.CandidateRepository
	jobRepo       domain.JobRepository
}

func NewCandidateUsecase(candidateRepo domain.CandidateRepository, jobRepo domain.JobRepository) domain.CandidateUsecase {
	return &candidateUsecase{
		candidateRepo: candidateRepo,
		jobRepo:       jobRepo,
	}
}

func (u *candidateUsecase) GetProfile(ctx context.Context, userID string) (*domain.Candidate, error) {
	candidate, err := u.candidateRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.NotFound("Candidate profile not found")
	}
	return candidate, nil
}

func (u *candidateUsecase) UpdateCV(ctx context.Context, candidateID int64, cvLink string) error {
	if cvLink == "" {
		return apperror.BadRequest("CV link is required")
	}
	return u.candidateRepo.UpdateCV(ctx, candidateID, cvLink)
}

func (u *candidateUsecase) UpdateSkills(ctx context.Context, candidateID int64, skills []string) error {
	return u.candidateRepo.UpdateSkills(ctx, candidateID, skills)
}

func (u *candidateUsecase) ApplyJob(ctx context.Context, candidateID, jobID int64) error {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return apperror.NotFound("Job not found")
	}
	if !domain.EffectiveVisible(job.Visible, job.ExpiredAt, time.Now().UTC()) {
		return apperror.NotFound("Job not found")
	}
	return u.candidateRepo.Apply(ctx, candidateID, jobID)
}

func (u *candidateUsecase) SaveJob(ctx context.Context, candidateID, jobID int64) error {
	if _, err := u.jobRepo.GetByID(ctx, jobID); err != nil {
		return apperror.NotFound("Job not found")
	}
	return u.candidateRepo.SaveJob(ctx, candidateID, jobID)
}

func (u *candidateUsecase) UnsaveJob(ctx context.Context, candidateID, jobID int64) error {
	return u.candidateRepo.UnsaveJob(ctx, candidateID, jobID)
}

func (u *candidateUsecase) FollowCompany(ctx context.Context, candidateID, companyID int64) error {
	return u.candidateRepo.Follow(ctx, candidateID, companyID)
}

func (u *candidateUsecase) UnfollowCompany(ctx context.Context, candidateID, companyID int64) error {
	return u.candidateRepo.Unfollow(ctx, candidateID, companyID)
}

func (u *candidateUsecase) ListApplied(ctx context.Context, candidateID int64, page, pageSize int) ([]domain.AppliedJob, int64, error) {
	limit, offset := clampPage(page, pageSize)
	return u.candidateRepo.FetchApplied(ctx, candidateID, limit, offset)
}

func (u *candidateUsecase) ListSaved(ctx context.Context, candidateID int64, page, pageSize int) ([]domain.AppliedJob, int64, error) {
	limit, offset := clampPage(page, pageSize)
	return u.candidateRepo.FetchSaved(ctx, candidateID, limit, offset)
}

func (u *candidateUsecase) ListFollowing(ctx context.Context, candidateID int64, page, pageSize int) ([]domain.FollowedCompany, int64, error) {
	limit, offset := clampPage(page, pageSize)
	return u.candidateRepo.FetchFollowing(ctx, candidateID, limit, offset)
}

func (u *candidateUsecase) ListJobApplicants(ctx context.Context, actor domain.HRActor, jobID int64, page, pageSize int) ([]domain.JobApplicant, int64, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil || job.CompanyID != actor.CompanyID {
		return nil, 0, forbidden()
	}
	limit, offset := clampPage(page, pageSize)
	return u.candidateRepo.FetchApplicants(ctx, jobID, actor.CompanyID, limit, offset)
}

func clampPage(page, pageSize int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return pageSize, (page - 1) * pageSize
}
