package postgres

import (
	"context"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type candidateRepo struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

func (r *candidateRepo) GetByUserID(ctx context.Context, userID string) (*domain.Candidate, error) {
	var candidate domain.Candidate
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, cv_link, skills FROM candidates WHERE user_id = $1`, userID,
	).Scan(&candidate.ID, &candidate.UserID, &candidate.CVLink, pq.Array(&candidate.Skills))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &candidate, nil
}

func (r *candidateRepo) UpdateCV(ctx context.Context, candidateID int64, cvLink string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE candidates SET cv_link = $2 WHERE id = $1`, candidateID, cvLink)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateRepo) UpdateSkills(ctx context.Context, candidateID int64, skills []string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE candidates SET skills = $2 WHERE id = $1`, candidateID, pq.Array(skills))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateRepo) Apply(ctx context.Context, candidateID, jobID int64) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (candidate_id, job_id, status, applied_at) VALUES ($1, $2, 'SUBMITTED', now())
		 ON CONFLICT (candidate_id, job_id) DO NOTHING`,
		candidateID, jobID)
	return err
}

func (r *candidateRepo) SaveJob(ctx context.Context, candidateID, jobID int64) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO saved_jobs (candidate_id, job_id, saved_at) VALUES ($1, $2, now())
		 ON CONFLICT (candidate_id, job_id) DO NOTHING`,
		candidateID, jobID)
	return err
}

func (r *candidateRepo) UnsaveJob(ctx context.Context, candidateID, jobID int64) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM saved_jobs WHERE candidate_id = $1 AND job_id = $2`, candidateID, jobID)
	return err
}

func (r *candidateRepo) Follow(ctx context.Context, candidateID, companyID int64) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO company_followers (candidate_id, company_id, followed_at) VALUES ($1, $2, now())
		 ON CONFLICT (candidate_id, company_id) DO NOTHING`,
		candidateID, companyID)
	return err
}

func (r *candidateRepo) Unfollow(ctx context.Context, candidateID, companyID int64) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM company_followers WHERE candidate_id = $1 AND company_id = $2`, candidateID, companyID)
	return err
}

func (r *candidateRepo) FetchApplied(ctx context.Context, candidateID int64, limit, offset int) ([]domain.AppliedJob, int64, error) {
	query := `
		SELECT j.id, j.title, c.id, c.name, j.expired_at, j.visible, a.applied_at
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		JOIN companies c ON c.id = j.company_id
		WHERE a.candidate_id = $1
		ORDER BY a.applied_at DESC
		LIMIT $2 OFFSET $3`
	jobs, err := r.queryAppliedJobs(ctx, query, candidateID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	err = r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM applications WHERE candidate_id = $1`, candidateID).Scan(&total)
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *candidateRepo) FetchSaved(ctx context.Context, candidateID int64, limit, offset int) ([]domain.AppliedJob, int64, error) {
	query := `
		SELECT j.id, j.title, c.id, c.name, j.expired_at, j.visible, s.saved_at
		FROM saved_jobs s
		JOIN jobs j ON j.id = s.job_id
		JOIN companies c ON c.id = j.company_id
		WHERE s.candidate_id = $1
		ORDER BY s.saved_at DESC
		LIMIT $2 OFFSET $3`
	jobs, err := r.queryAppliedJobs(ctx, query, candidateID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	err = r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM saved_jobs WHERE candidate_id = $1`, candidateID).Scan(&total)
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *candidateRepo) queryAppliedJobs(ctx context.Context, query string, args ...interface{}) ([]domain.AppliedJob, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.AppliedJob
	for rows.Next() {
		var job domain.AppliedJob
		if err := rows.Scan(
			&job.JobID, &job.Title, &job.CompanyID, &job.CompanyName,
			&job.ExpiredAt, &job.Visible, &job.AppliedAt,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (r *candidateRepo) FetchFollowing(ctx context.Context, candidateID int64, limit, offset int) ([]domain.FollowedCompany, int64, error) {
	query := `
		SELECT c.id, c.name, c.avatar
		FROM company_followers f
		JOIN companies c ON c.id = f.company_id
		WHERE f.candidate_id = $1
		ORDER BY f.followed_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, candidateID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var companies []domain.FollowedCompany
	for rows.Next() {
		var company domain.FollowedCompany
		if err := rows.Scan(&company.CompanyID, &company.Name, &company.Avatar); err != nil {
			return nil, 0, err
		}
		companies = append(companies, company)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	err = r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM company_followers WHERE candidate_id = $1`, candidateID).Scan(&total)
	if err != nil {
		return nil, 0, err
	}
	return companies, total, nil
}

func (r *candidateRepo) FetchApplicants(ctx context.Context, jobID, companyID int64, limit, offset int) ([]domain.JobApplicant, int64, error) {
	query := `
		SELECT u.email, u.surname, u.given_name, u.avatar, a.status, cd.cv_link
		FROM applications a
		JOIN candidates cd ON cd.id = a.candidate_id
		JOIN users u ON u.id = cd.user_id
		JOIN jobs j ON j.id = a.job_id
		WHERE a.job_id = $1 AND j.company_id = $2
		ORDER BY a.applied_at DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.db.Query(ctx, query, jobID, companyID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var applicants []domain.JobApplicant
	for rows.Next() {
		var applicant domain.JobApplicant
		if err := rows.Scan(
			&applicant.Email, &applicant.Surname, &applicant.GivenName,
			&applicant.Avatar, &applicant.Status, &applicant.CVLink,
		); err != nil {
			return nil, 0, err
		}
		applicants = append(applicants, applicant)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE a.job_id = $1 AND j.company_id = $2`, jobID, companyID).Scan(&total)
	if err != nil {
		return nil, 0, err
	}
	return applicants, total, nil
}
