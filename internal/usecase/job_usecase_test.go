package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var testPoints = domain.PointsConfig{CostPerDay: 10, Daily: 20, Limit: 100}

func validJobInput() *domain.JobInput {
	return &domain.JobInput{
		Title:         "Backend Engineer",
		Description:   "Build and run the API",
		Benefit:       "Insurance, remote fridays",
		Requirement:   "Go, Postgres",
		RecruitAmount: 2,
		PackageDays:   3,
		Visible:       true,
		CityIDs:       []int64{1},
		WorkTypeIDs:   []int64{1, 2},
	}
}

func TestCreateJob(t *testing.T) {
	actor := domain.HRActor{HRID: 7, CompanyID: 42, Points: 50}

	t.Run("Rejects when package cost exceeds balance", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, testPoints)

		input := validJobInput()
		input.PackageDays = 6 // 60 points > 50

		_, err := uc.CreateJob(context.Background(), actor, input)
		assert.ErrorIs(t, err, domain.ErrInsufficientPoints)
		mockRepo.AssertNotCalled(t, "CreateWithDebit")
	})

	t.Run("Succeeds exactly at the affordability boundary", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, testPoints)

		input := validJobInput()
		input.PackageDays = 5 // cost 50 == balance 50

		mockRepo.On("CreateWithDebit", mock.Anything, mock.AnythingOfType("*domain.Job"),
			input.CityIDs, input.WorkTypeIDs, actor.HRID, 50).Return(nil)

		job, err := uc.CreateJob(context.Background(), actor, input)
		assert.NoError(t, err)
		assert.Equal(t, actor.CompanyID, job.CompanyID)
		assert.True(t, job.Visible)
		assert.WithinDuration(t, time.Now().UTC().AddDate(0, 0, 5), job.ExpiredAt, 2*time.Second)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Rejects missing fields before any store access", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, testPoints)

		input := validJobInput()
		input.Requirement = ""

		_, err := uc.CreateJob(context.Background(), actor, input)
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "CreateWithDebit")
	})

	t.Run("Rejects salary without currency", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, testPoints)

		min := 1000.0
		input := validJobInput()
		input.MinSalary = &min

		_, err := uc.CreateJob(context.Background(), actor, input)
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "CreateWithDebit")
	})
}

func TestUpdateJob(t *testing.T) {
	actor := domain.HRActor{HRID: 7, CompanyID: 42, Points: 50}

	t.Run("Expired post without package is rejected regardless of field validity", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, testPoints)

		mockRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Job{
			ID: 1, CompanyID: 42, ExpiredAt: time.Now().UTC().AddDate(0, 0, -2),
		}, nil)

		input := validJobInput()
		input.PackageDays = 0

		err := uc.UpdateJob(context.Background(), actor, 1, input)
		assert.ErrorIs(t, err, domain.ErrPostExpired)
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Expired post with package restarts its window from today", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, testPoints)

		mockRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Job{
			ID: 1, CompanyID: 42, ExpiredAt: time.Now().UTC().AddDate(0, 0, -2),
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Job"),
			mock.Anything, mock.Anything, actor.HRID, 30).Return(nil).Run(func(args mock.Arguments) {
			job := args.Get(1).(*domain.Job)
			assert.WithinDuration(t, time.Now().UTC().AddDate(0, 0, 3), job.ExpiredAt, 2*time.Second)
		})

		err := uc.UpdateJob(context.Background(), actor, 1, validJobInput())
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Active post keeps remaining time when renewed", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, testPoints)

		current := time.Now().UTC().AddDate(0, 0, 5)
		mockRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Job{
			ID: 1, CompanyID: 42, ExpiredAt: current,
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Job"),
			mock.Anything, mock.Anything, actor.HRID, 30).Return(nil).Run(func(args mock.Arguments) {
			job := args.Get(1).(*domain.Job)
			assert.Equal(t, current.AddDate(0, 0, 3), job.ExpiredAt)
		})

		err := uc.UpdateJob(context.Background(), actor, 1, validJobInput())
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Foreign job is forbidden before any mutation", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, testPoints)

		mockRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Job{
			ID: 1, CompanyID: 99, ExpiredAt: time.Now().UTC().AddDate(0, 0, 5),
		}, nil)

		err := uc.UpdateJob(context.Background(), actor, 1, validJobInput())
		assert.ErrorIs(t, err, domain.ErrForbidden)
		mockRepo.AssertNotCalled(t, "Update")
	})
}

func TestExtendJob(t *testing.T) {
	actor := domain.HRActor{HRID: 7, CompanyID: 42, Points: 50}

	t.Run("Debits the package cost and extends from current expiry", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, testPoints)

		current := time.Now().UTC().AddDate(0, 0, 5)
		mockRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Job{
			ID: 1, CompanyID: 42, ExpiredAt: current,
		}, nil)
		mockRepo.On("ExtendWithDebit", mock.Anything, int64(1), int64(42),
			current.AddDate(0, 0, 3), true, 30).Return(nil)

		err := uc.ExtendJob(context.Background(), actor, 1, 3, true)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Rejects before store access when balance is short", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, testPoints)

		mockRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Job{
			ID: 1, CompanyID: 42, ExpiredAt: time.Now().UTC().AddDate(0, 0, 5),
		}, nil)

		err := uc.ExtendJob(context.Background(), actor, 1, 6, true)
		assert.ErrorIs(t, err, domain.ErrInsufficientPoints)
		mockRepo.AssertNotCalled(t, "ExtendWithDebit")
	})

	t.Run("Store failure surfaces with no separate debit to roll back", func(t *testing.T) {
		// The debit travels inside the same repository call as the job write,
		// so a failed extension leaves no balance change to undo.
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, testPoints)

		mockRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Job{
			ID: 1, CompanyID: 42, ExpiredAt: time.Now().UTC().AddDate(0, 0, 5),
		}, nil)
		storeErr := errors.New("connection reset")
		mockRepo.On("ExtendWithDebit", mock.Anything, mock.Anything, mock.Anything,
			mock.Anything, mock.Anything, mock.Anything).Return(storeErr)

		err := uc.ExtendJob(context.Background(), actor, 1, 3, true)
		assert.ErrorIs(t, err, storeErr)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Raced debit inside the transaction maps to insufficient points", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, testPoints)

		mockRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Job{
			ID: 1, CompanyID: 42, ExpiredAt: time.Now().UTC().AddDate(0, 0, 5),
		}, nil)
		mockRepo.On("ExtendWithDebit", mock.Anything, mock.Anything, mock.Anything,
			mock.Anything, mock.Anything, mock.Anything).Return(domain.ErrInsufficientPoints)

		err := uc.ExtendJob(context.Background(), actor, 1, 3, true)
		assert.ErrorIs(t, err, domain.ErrInsufficientPoints)
	})
}

func TestSetVisibility(t *testing.T) {
	actor := domain.HRActor{HRID: 7, CompanyID: 42, Points: 50}

	t.Run("Expired post is forced hidden and reports expiry", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, testPoints)

		mockRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Job{
			ID: 1, CompanyID: 42, ExpiredAt: time.Now().UTC().Add(-time.Second),
		}, nil)
		mockRepo.On("SetVisible", mock.Anything, int64(1), false).Return(nil)

		result, err := uc.SetVisibility(context.Background(), actor, 1, true)
		assert.NoError(t, err)
		assert.True(t, result.Expired)
		assert.False(t, result.Visible)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Active post persists the requested flag, idempotently", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, testPoints)

		mockRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Job{
			ID: 1, CompanyID: 42, ExpiredAt: time.Now().UTC().AddDate(0, 0, 1),
		}, nil)
		mockRepo.On("SetVisible", mock.Anything, int64(1), true).Return(nil).Times(2)

		for i := 0; i < 2; i++ {
			result, err := uc.SetVisibility(context.Background(), actor, 1, true)
			assert.NoError(t, err)
			assert.False(t, result.Expired)
			assert.True(t, result.Visible)
		}
		mockRepo.AssertExpectations(t)
	})

	t.Run("Foreign job is forbidden", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, testPoints)

		mockRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Job{
			ID: 1, CompanyID: 99, ExpiredAt: time.Now().UTC().AddDate(0, 0, 1),
		}, nil)

		_, err := uc.SetVisibility(context.Background(), actor, 1, true)
		assert.ErrorIs(t, err, domain.ErrForbidden)
		mockRepo.AssertNotCalled(t, "SetVisible")
	})
}

func TestGetPublicJob(t *testing.T) {
	t.Run("Expired post is reported as not found", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, testPoints)

		mockRepo.On("GetDetail", mock.Anything, int64(1)).Return(&domain.JobDetail{
			Job: domain.Job{ID: 1, Visible: true, ExpiredAt: time.Now().UTC().Add(-time.Second)},
		}, nil)

		_, err := uc.GetPublicJob(context.Background(), 1)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("Visible active post is returned", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, testPoints)

		mockRepo.On("GetDetail", mock.Anything, int64(1)).Return(&domain.JobDetail{
			Job: domain.Job{ID: 1, Visible: true, ExpiredAt: time.Now().UTC().AddDate(0, 0, 1)},
		}, nil)

		detail, err := uc.GetPublicJob(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), detail.ID)
	})
}
