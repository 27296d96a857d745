package postgres

import (
	"context"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

const userColumns = `id, email, password_hash, surname, given_name, roles, status, avatar, created_at, updated_at`

func scanUser(row pgx.Row, user *domain.User) error {
	return row.Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.Surname, &user.GivenName,
		pq.Array(&user.Roles), &user.Status, &user.Avatar, &user.CreatedAt, &user.UpdatedAt,
	)
}

func insertUser(ctx context.Context, tx pgx.Tx, user *domain.User) error {
	query := `INSERT INTO users (id, email, password_hash, surname, given_name, roles, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := tx.Exec(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Surname, user.GivenName,
		pq.Array(user.Roles), user.Status, user.CreatedAt, user.UpdatedAt)
	return err
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)
	if err := insertUser(ctx, tx, user); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email), &user)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id), &user)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetSessionUser(ctx context.Context, id string) (*domain.SessionUser, error) {
	user, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	session := &domain.SessionUser{User: *user}

	var hr domain.HRProfile
	err = r.db.QueryRow(ctx,
		`SELECT id, user_id, company_id, verified FROM hr_profiles WHERE user_id = $1`, id,
	).Scan(&hr.ID, &hr.UserID, &hr.CompanyID, &hr.Verified)
	if err == nil {
		session.HRProfile = &hr
	} else if err != pgx.ErrNoRows {
		return nil, err
	}

	var candidateID int64
	err = r.db.QueryRow(ctx, `SELECT id FROM candidates WHERE user_id = $1`, id).Scan(&candidateID)
	if err == nil {
		session.CandidateID = &candidateID
	} else if err != pgx.ErrNoRows {
		return nil, err
	}

	return session, nil
}

func (r *userRepo) CreateCandidate(ctx context.Context, user *domain.User) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	if err := insertUser(ctx, tx, user); err != nil {
		return 0, err
	}

	var candidateID int64
	err = tx.QueryRow(ctx,
		`INSERT INTO candidates (user_id, skills) VALUES ($1, $2) RETURNING id`,
		user.ID, pq.Array([]string{}),
	).Scan(&candidateID)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return candidateID, nil
}

func (r *userRepo) CreateCompanyWithManager(ctx context.Context, company *domain.Company, manager *domain.User) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO companies (name, points, status, created_at, updated_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		company.Name, company.Points, company.Status, company.CreatedAt, company.UpdatedAt,
	).Scan(&company.ID)
	if err != nil {
		return err
	}

	if err := insertUser(ctx, tx, manager); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO hr_profiles (user_id, company_id, verified) VALUES ($1, $2, TRUE)`,
		manager.ID, company.ID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
