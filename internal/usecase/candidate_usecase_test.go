package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestApplyJob(t *testing.T) {
	t.Run("Applies to a visible active job", func(t *testing.T) {
		mockCandidates := new(MockCandidateRepo)
		mockJobs := new(MockJobRepo)
		uc := usecase.NewCandidateUsecase(mockCandidates, mockJobs)

		mockJobs.On("GetByID", mock.Anything, int64(1)).Return(&domain.Job{
			ID: 1, Visible: true, ExpiredAt: time.Now().UTC().AddDate(0, 0, 1),
		}, nil)
		mockCandidates.On("Apply", mock.Anything, int64(5), int64(1)).Return(nil)

		err := uc.ApplyJob(context.Background(), 5, 1)
		assert.NoError(t, err)
		mockCandidates.AssertExpectations(t)
	})

	t.Run("Rejects an expired job even with visible flag set", func(t *testing.T) {
		mockCandidates := new(MockCandidateRepo)
		mockJobs := new(MockJobRepo)
		uc := usecase.NewCandidateUsecase(mockCandidates, mockJobs)

		mockJobs.On("GetByID", mock.Anything, int64(1)).Return(&domain.Job{
			ID: 1, Visible: true, ExpiredAt: time.Now().UTC().Add(-time.Minute),
		}, nil)

		err := uc.ApplyJob(context.Background(), 5, 1)
		assert.Error(t, err)
		mockCandidates.AssertNotCalled(t, "Apply")
	})

	t.Run("Rejects a hidden job", func(t *testing.T) {
		mockCandidates := new(MockCandidateRepo)
		mockJobs := new(MockJobRepo)
		uc := usecase.NewCandidateUsecase(mockCandidates, mockJobs)

		mockJobs.On("GetByID", mock.Anything, int64(1)).Return(&domain.Job{
			ID: 1, Visible: false, ExpiredAt: time.Now().UTC().AddDate(0, 0, 1),
		}, nil)

		err := uc.ApplyJob(context.Background(), 5, 1)
		assert.Error(t, err)
		mockCandidates.AssertNotCalled(t, "Apply")
	})
}

func TestListJobApplicants(t *testing.T) {
	actor := domain.HRActor{HRID: 7, CompanyID: 42}

	t.Run("Forbidden for a foreign company's job", func(t *testing.T) {
		mockCandidates := new(MockCandidateRepo)
		mockJobs := new(MockJobRepo)
		uc := usecase.NewCandidateUsecase(mockCandidates, mockJobs)

		mockJobs.On("GetByID", mock.Anything, int64(1)).Return(&domain.Job{
			ID: 1, CompanyID: 99,
		}, nil)

		_, _, err := uc.ListJobApplicants(context.Background(), actor, 1, 1, 10)
		assert.ErrorIs(t, err, domain.ErrForbidden)
		mockCandidates.AssertNotCalled(t, "FetchApplicants")
	})

	t.Run("Lists applicants for an owned job", func(t *testing.T) {
		mockCandidates := new(MockCandidateRepo)
		mockJobs := new(MockJobRepo)
		uc := usecase.NewCandidateUsecase(mockCandidates, mockJobs)

		mockJobs.On("GetByID", mock.Anything, int64(1)).Return(&domain.Job{
			ID: 1, CompanyID: 42,
		}, nil)
		mockCandidates.On("FetchApplicants", mock.Anything, int64(1), int64(42), 10, 0).
			Return([]domain.JobApplicant{{Email: "a@example.com"}}, int64(1), nil)

		applicants, total, err := uc.ListJobApplicants(context.Background(), actor, 1, 1, 10)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Len(t, applicants, 1)
	})
}
