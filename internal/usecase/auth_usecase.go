package usecase

import (
	"context"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/auth"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *auth.TokenManager
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *auth.TokenManager) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.TokenPair, error) {
	if email == "" || password == "" {
		return nil, apperror.BadRequest("Email and password are required")
	}

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperror.Unauthorized("Invalid credentials")
	}
	if user.Status == domain.UserStatusSuspended {
		return nil, apperror.Unauthorized("Account suspended")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.Unauthorized("Invalid credentials")
	}

	return u.issuePair(user)
}

func (u *authUsecase) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	claims, err := u.tokens.Parse(refreshToken, auth.KindRefresh)
	if err != nil {
		return nil, apperror.Unauthorized("Invalid refresh token")
	}

	// Re-resolve the user so a suspension or role change takes effect on the
	// next refresh at the latest.
	user, err := u.userRepo.GetByID(ctx, claims.Subject)
	if err != nil || user.Status == domain.UserStatusSuspended {
		return nil, apperror.Unauthorized("Unauthorized")
	}

	return u.issuePair(user)
}

func (u *authUsecase) issuePair(user *domain.User) (*domain.TokenPair, error) {
	access, err := u.tokens.IssueAccess(user.ID, user.Roles)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	refresh, err := u.tokens.IssueRefresh(user.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (u *authUsecase) RegisterCandidate(ctx context.Context, input *domain.RegisterUserInput) error {
	if input.Email == "" || input.Password == "" || input.Surname == "" || input.GivenName == "" {
		return apperror.BadRequest("All fields are required")
	}
	if existing, _ := u.userRepo.GetByEmail(ctx, input.Email); existing != nil {
		return apperror.Conflict("Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return apperror.Internal(err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		PasswordHash: string(hash),
		Surname:      input.Surname,
		GivenName:    input.GivenName,
		Roles:        []string{domain.RoleCandidate},
		Status:       domain.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	_, err = u.userRepo.CreateCandidate(ctx, user)
	return err
}

func (u *authUsecase) RegisterCompany(ctx context.Context, input *domain.RegisterCompanyInput) error {
	if input.CompanyName == "" || input.Email == "" || input.Password == "" ||
		input.Surname == "" || input.GivenName == "" {
		return apperror.BadRequest("All fields are required")
	}
	if existing, _ := u.userRepo.GetByEmail(ctx, input.Email); existing != nil {
		return apperror.Conflict("Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return apperror.Internal(err)
	}

	now := time.Now().UTC()
	company := &domain.Company{
		Name:      input.CompanyName,
		Status:    "UNVERIFIED",
		CreatedAt: now,
		UpdatedAt: now,
	}
	manager := &domain.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		PasswordHash: string(hash),
		Surname:      input.Surname,
		GivenName:    input.GivenName,
		Roles:        []string{domain.RoleHR, domain.RoleManager},
		Status:       domain.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.userRepo.CreateCompanyWithManager(ctx, company, manager)
}

func (u *authUsecase) ResolveSession(ctx context.Context, userID string) (*domain.SessionUser, error) {
	session, err := u.userRepo.GetSessionUser(ctx, userID)
	if err != nil {
		return nil, apperror.Unauthorized("Unauthorized")
	}
	if session.User.Status == domain.UserStatusSuspended {
		return nil, apperror.Unauthorized("Unauthorized")
	}
	return session, nil
}
