package postgres

import (
	"context"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type companyRepo struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) domain.CompanyRepository {
	return &companyRepo{db: db}
}

func (r *companyRepo) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	query := `SELECT id, name, points, login_date, status, avatar, wallpaper, address, website, scale, description, representer, district_id, created_at, updated_at
	          FROM companies WHERE id = $1`

	var company domain.Company
	err := r.db.QueryRow(ctx, query, id).Scan(
		&company.ID, &company.Name, &company.Points, &company.LoginDate, &company.Status,
		&company.Avatar, &company.Wallpaper, &company.Address, &company.Website, &company.Scale,
		&company.Description, &company.Representer, &company.DistrictID,
		&company.CreatedAt, &company.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *companyRepo) RecordAttendance(ctx context.Context, id int64, points int, loginDate time.Time) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE companies SET points = $2, login_date = $3, updated_at = now() WHERE id = $1`,
		id, points, loginDate)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *companyRepo) UpdateProfile(ctx context.Context, id int64, update *domain.CompanyProfileUpdate) error {
	query := `UPDATE companies SET
		address = $2,
		scale = $3,
		website = $4,
		description = $5,
		representer = $6,
		district_id = $7,
		avatar = COALESCE($8, avatar),
		wallpaper = COALESCE($9, wallpaper),
		updated_at = now()
	WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		id, update.Address, update.Scale, update.Website, update.Description,
		update.Representer, update.DistrictID, update.Avatar, update.Wallpaper)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
