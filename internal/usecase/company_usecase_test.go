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

func TestDailyAttendance(t *testing.T) {
	t.Run("Credits the daily amount", func(t *testing.T) {
		mockRepo := new(MockCompanyRepo)
		uc := usecase.NewCompanyUsecase(mockRepo, testPoints)

		yesterday := time.Now().UTC().AddDate(0, 0, -1)
		mockRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Company{
			ID: 1, Points: 40, LoginDate: &yesterday,
		}, nil)
		mockRepo.On("RecordAttendance", mock.Anything, int64(1), 60, mock.AnythingOfType("time.Time")).Return(nil)

		result, err := uc.DailyAttendance(context.Background(), 1)
		assert.NoError(t, err)
		assert.True(t, result.Attended)
		assert.False(t, result.AtLimit)
		assert.Equal(t, 60, result.Points)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Caps the credit at the limit", func(t *testing.T) {
		mockRepo := new(MockCompanyRepo)
		uc := usecase.NewCompanyUsecase(mockRepo, testPoints)

		yesterday := time.Now().UTC().AddDate(0, 0, -1)
		mockRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Company{
			ID: 1, Points: 90, LoginDate: &yesterday,
		}, nil)
		mockRepo.On("RecordAttendance", mock.Anything, int64(1), 100, mock.AnythingOfType("time.Time")).Return(nil)

		result, err := uc.DailyAttendance(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, 100, result.Points)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Rejects a second check-in on the same day", func(t *testing.T) {
		mockRepo := new(MockCompanyRepo)
		uc := usecase.NewCompanyUsecase(mockRepo, testPoints)

		today := time.Now().UTC()
		mockRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Company{
			ID: 1, Points: 60, LoginDate: &today,
		}, nil)

		_, err := uc.DailyAttendance(context.Background(), 1)
		assert.ErrorIs(t, err, domain.ErrAlreadyCheckedIn)
		mockRepo.AssertNotCalled(t, "RecordAttendance")
	})

	t.Run("At the ceiling the check-in is still recorded", func(t *testing.T) {
		mockRepo := new(MockCompanyRepo)
		uc := usecase.NewCompanyUsecase(mockRepo, testPoints)

		yesterday := time.Now().UTC().AddDate(0, 0, -1)
		mockRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Company{
			ID: 1, Points: 100, LoginDate: &yesterday,
		}, nil)
		mockRepo.On("RecordAttendance", mock.Anything, int64(1), 100, mock.AnythingOfType("time.Time")).Return(nil)

		result, err := uc.DailyAttendance(context.Background(), 1)
		assert.NoError(t, err)
		assert.True(t, result.AtLimit)
		assert.Equal(t, 100, result.Points)
		mockRepo.AssertExpectations(t)
	})

	t.Run("First ever check-in succeeds with nil login date", func(t *testing.T) {
		mockRepo := new(MockCompanyRepo)
		uc := usecase.NewCompanyUsecase(mockRepo, testPoints)

		mockRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Company{
			ID: 1, Points: 0,
		}, nil)
		mockRepo.On("RecordAttendance", mock.Anything, int64(1), 20, mock.AnythingOfType("time.Time")).Return(nil)

		result, err := uc.DailyAttendance(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, 20, result.Points)
	})
}

func TestUpdateCompanyProfile(t *testing.T) {
	t.Run("Rejects missing fields", func(t *testing.T) {
		mockRepo := new(MockCompanyRepo)
		uc := usecase.NewCompanyUsecase(mockRepo, testPoints)

		err := uc.UpdateProfile(context.Background(), 1, &domain.CompanyProfileUpdate{
			Address: "1 Main St",
		})
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "UpdateProfile")
	})
}
