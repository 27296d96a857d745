package domain

import (
	"context"
	"time"
)

const (
	RoleCandidate = "CANDIDATE"
	RoleHR        = "HR"
	RoleManager   = "MANAGER"
)

const (
	UserStatusActive    = "ACTIVE"
	UserStatusSuspended = "SUSPENDED"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Surname      string    `json:"surname"`
	GivenName    string    `json:"given_name"`
	Roles        []string  `json:"roles"`
	Status       string    `json:"status"`
	Avatar       *string   `json:"avatar"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HRProfile links an HR user to the company they act for.
type HRProfile struct {
	ID        int64  `json:"id"`
	UserID    string `json:"user_id"`
	CompanyID int64  `json:"company_id"`
	Verified  bool   `json:"verified"`
}

// SessionUser is the resolved identity behind a valid token: the user plus
// the role-specific profile rows the credential middlewares need.
type SessionUser struct {
	User        User
	HRProfile   *HRProfile
	CandidateID *int64
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"-"`
}

type RegisterUserInput struct {
	Email     string
	Password  string
	Surname   string
	GivenName string
}

type RegisterCompanyInput struct {
	CompanyName string
	Email       string
	Password    string
	Surname     string
	GivenName   string
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetSessionUser(ctx context.Context, id string) (*SessionUser, error)
	// CreateCandidate inserts the user and an empty candidate profile together.
	CreateCandidate(ctx context.Context, user *User) (int64, error)
	// CreateCompanyWithManager inserts the company, the manager user, and the
	// linking HR profile in one transaction.
	CreateCompanyWithManager(ctx context.Context, company *Company, manager *User) error
}

type AuthUsecase interface {
	Login(ctx context.Context, email, password string) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	RegisterCandidate(ctx context.Context, input *RegisterUserInput) error
	RegisterCompany(ctx context.Context, input *RegisterCompanyInput) error
	ResolveSession(ctx context.Context, userID string) (*SessionUser, error)
}
