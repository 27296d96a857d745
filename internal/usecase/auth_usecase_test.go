package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func testTokens() *auth.TokenManager {
	return auth.NewTokenManager("test-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestLogin(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	user := &domain.User{
		ID:           "user1",
		Email:        "hr@example.com",
		PasswordHash: string(hash),
		Roles:        []string{domain.RoleHR},
		Status:       domain.UserStatusActive,
	}

	t.Run("Issues a token pair for valid credentials", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens())

		mockRepo.On("GetByEmail", mock.Anything, "hr@example.com").Return(user, nil)

		pair, err := uc.Login(context.Background(), "hr@example.com", "hunter2")
		assert.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)

		claims, err := testTokens().Parse(pair.AccessToken, auth.KindAccess)
		assert.NoError(t, err)
		assert.Equal(t, "user1", claims.Subject)
		assert.Contains(t, claims.Roles, domain.RoleHR)
	})

	t.Run("Rejects a wrong password", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens())

		mockRepo.On("GetByEmail", mock.Anything, "hr@example.com").Return(user, nil)

		_, err := uc.Login(context.Background(), "hr@example.com", "wrong")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid credentials")
	})

	t.Run("Rejects a suspended account", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens())

		suspended := *user
		suspended.Status = domain.UserStatusSuspended
		mockRepo.On("GetByEmail", mock.Anything, "hr@example.com").Return(&suspended, nil)

		_, err := uc.Login(context.Background(), "hr@example.com", "hunter2")
		assert.Error(t, err)
	})
}

func TestRefresh(t *testing.T) {
	user := &domain.User{
		ID:     "user1",
		Roles:  []string{domain.RoleHR},
		Status: domain.UserStatusActive,
	}

	t.Run("Rotates a valid refresh token", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		tokens := testTokens()
		uc := usecase.NewAuthUsecase(mockRepo, tokens)

		refresh, err := tokens.IssueRefresh("user1")
		assert.NoError(t, err)
		mockRepo.On("GetByID", mock.Anything, "user1").Return(user, nil)

		pair, err := uc.Refresh(context.Background(), refresh)
		assert.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
	})

	t.Run("Rejects an access token used as refresh", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		tokens := testTokens()
		uc := usecase.NewAuthUsecase(mockRepo, tokens)

		access, err := tokens.IssueAccess("user1", user.Roles)
		assert.NoError(t, err)

		_, err = uc.Refresh(context.Background(), access)
		assert.Error(t, err)
	})
}

func TestRegisterCandidate(t *testing.T) {
	t.Run("Rejects a duplicate email", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens())

		mockRepo.On("GetByEmail", mock.Anything, "taken@example.com").Return(&domain.User{ID: "x"}, nil)

		err := uc.RegisterCandidate(context.Background(), &domain.RegisterUserInput{
			Email: "taken@example.com", Password: "pw", Surname: "A", GivenName: "B",
		})
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "CreateCandidate")
	})

	t.Run("Stores a bcrypt hash, never the password", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens())

		mockRepo.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, domain.ErrNotFound)
		mockRepo.On("CreateCandidate", mock.Anything, mock.AnythingOfType("*domain.User")).
			Return(int64(1), nil).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			assert.NotEqual(t, "pw12345", u.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pw12345")))
			assert.Equal(t, []string{domain.RoleCandidate}, u.Roles)
		})

		err := uc.RegisterCandidate(context.Background(), &domain.RegisterUserInput{
			Email: "new@example.com", Password: "pw12345", Surname: "A", GivenName: "B",
		})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}
