package postgres

import (
	"context"
	"fmt"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

// debitCompany takes cost points off the company's balance inside the caller's
// transaction. The WHERE re-checks the balance so two concurrent purchases can
// never jointly overdraw against a stale read.
func debitCompany(ctx context.Context, tx pgx.Tx, companyID int64, cost int) error {
	if cost <= 0 {
		return nil
	}
	tag, err := tx.Exec(ctx,
		`UPDATE companies SET points = points - $2, updated_at = now() WHERE id = $1 AND points >= $2`,
		companyID, cost)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInsufficientPoints
	}
	return nil
}

func replaceAssociations(ctx context.Context, tx pgx.Tx, jobID int64, cityIDs, workTypeIDs []int64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM job_cities WHERE job_id = $1`, jobID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM job_work_types WHERE job_id = $1`, jobID); err != nil {
		return err
	}
	for _, cityID := range cityIDs {
		if _, err := tx.Exec(ctx, `INSERT INTO job_cities (job_id, city_id) VALUES ($1, $2)`, jobID, cityID); err != nil {
			return err
		}
	}
	for _, workTypeID := range workTypeIDs {
		if _, err := tx.Exec(ctx, `INSERT INTO job_work_types (job_id, work_type_id) VALUES ($1, $2)`, jobID, workTypeID); err != nil {
			return err
		}
	}
	return nil
}

func (r *jobRepo) CreateWithDebit(ctx context.Context, job *domain.Job, cityIDs, workTypeIDs []int64, hrID int64, cost int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := debitCompany(ctx, tx, job.CompanyID, cost); err != nil {
		return err
	}

	query := `INSERT INTO jobs (company_id, title, description, benefit, requirement, recruit_amount, min_salary, max_salary, currency_id, expired_at, visible, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	err = tx.QueryRow(ctx, query,
		job.CompanyID, job.Title, job.Description, job.Benefit, job.Requirement, job.RecruitAmount,
		job.MinSalary, job.MaxSalary, job.CurrencyID,
		job.ExpiredAt, job.Visible, job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `INSERT INTO job_authors (job_id, hr_id) VALUES ($1, $2)`, job.ID, hrID); err != nil {
		return err
	}
	if err := replaceAssociations(ctx, tx, job.ID, cityIDs, workTypeIDs); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

const jobColumns = `id, company_id, title, description, benefit, requirement, recruit_amount, min_salary, max_salary, currency_id, expired_at, visible, created_at, updated_at`

func scanJob(row pgx.Row, job *domain.Job) error {
	return row.Scan(
		&job.ID, &job.CompanyID, &job.Title, &job.Description, &job.Benefit, &job.Requirement,
		&job.RecruitAmount, &job.MinSalary, &job.MaxSalary, &job.CurrencyID,
		&job.ExpiredAt, &job.Visible, &job.CreatedAt, &job.UpdatedAt,
	)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	var job domain.Job
	err := scanJob(r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id), &job)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepo) GetDetail(ctx context.Context, id int64) (*domain.JobDetail, error) {
	job, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := &domain.JobDetail{Job: *job}
	if err := r.loadAssociations(ctx, []int64{id}, map[int64]*domain.JobDetail{id: detail}); err != nil {
		return nil, err
	}
	return detail, nil
}

// loadAssociations fills cities and work types for a batch of jobs in two
// queries instead of per-job round trips.
func (r *jobRepo) loadAssociations(ctx context.Context, ids []int64, byID map[int64]*domain.JobDetail) error {
	if len(ids) == 0 {
		return nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT jc.job_id, c.id, c.name
		FROM job_cities jc
		JOIN cities c ON c.id = jc.city_id
		WHERE jc.job_id = ANY($1)`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var jobID int64
		var city domain.City
		if err := rows.Scan(&jobID, &city.ID, &city.Name); err != nil {
			return err
		}
		byID[jobID].Cities = append(byID[jobID].Cities, city)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = r.db.Query(ctx, `
		SELECT jwt.job_id, wt.id, wt.name
		FROM job_work_types jwt
		JOIN work_types wt ON wt.id = jwt.work_type_id
		WHERE jwt.job_id = ANY($1)`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var jobID int64
		var workType domain.WorkType
		if err := rows.Scan(&jobID, &workType.ID, &workType.Name); err != nil {
			return err
		}
		byID[jobID].WorkTypes = append(byID[jobID].WorkTypes, workType)
	}
	return rows.Err()
}

func (r *jobRepo) FetchByCompany(ctx context.Context, filter domain.CompanyJobFilter) ([]domain.JobDetail, int64, error) {
	where := `WHERE company_id = $1`
	args := []interface{}{filter.CompanyID}
	if filter.FromDate != nil {
		args = append(args, *filter.FromDate)
		where += fmt.Sprintf(` AND created_at >= $%d`, len(args))
	}
	if filter.ToDate != nil {
		args = append(args, *filter.ToDate)
		where += fmt.Sprintf(` AND created_at <= $%d`, len(args))
	}

	order := `DESC`
	if filter.OrderBy == "asc" {
		order = `ASC`
	}

	offset := (filter.Page - 1) * filter.PageSize
	listArgs := append(append([]interface{}{}, args...), filter.PageSize, offset)
	query := fmt.Sprintf(`SELECT %s FROM jobs %s ORDER BY updated_at %s LIMIT $%d OFFSET $%d`,
		jobColumns, where, order, len(args)+1, len(args)+2)

	rows, err := r.db.Query(ctx, query, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var details []domain.JobDetail
	byID := make(map[int64]*domain.JobDetail)
	var ids []int64
	for rows.Next() {
		var job domain.Job
		if err := scanJob(rows, &job); err != nil {
			return nil, 0, err
		}
		details = append(details, domain.JobDetail{Job: job})
		ids = append(ids, job.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	for i := range details {
		byID[details[i].ID] = &details[i]
	}
	if err := r.loadAssociations(ctx, ids, byID); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return details, total, nil
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job, cityIDs, workTypeIDs []int64, hrID int64, cost int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := debitCompany(ctx, tx, job.CompanyID, cost); err != nil {
		return err
	}

	query := `UPDATE jobs SET
		title = $2,
		description = $3,
		benefit = $4,
		requirement = $5,
		recruit_amount = $6,
		min_salary = $7,
		max_salary = $8,
		currency_id = $9,
		expired_at = $10,
		visible = $11,
		updated_at = $12
	WHERE id = $1`
	tag, err := tx.Exec(ctx, query,
		job.ID, job.Title, job.Description, job.Benefit, job.Requirement, job.RecruitAmount,
		job.MinSalary, job.MaxSalary, job.CurrencyID,
		job.ExpiredAt, job.Visible, job.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO job_authors (job_id, hr_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		job.ID, hrID); err != nil {
		return err
	}
	if err := replaceAssociations(ctx, tx, job.ID, cityIDs, workTypeIDs); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *jobRepo) ExtendWithDebit(ctx context.Context, jobID, companyID int64, expiredAt time.Time, visible bool, cost int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := debitCompany(ctx, tx, companyID, cost); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx,
		`UPDATE jobs SET expired_at = $3, visible = $4, updated_at = now() WHERE id = $1 AND company_id = $2`,
		jobID, companyID, expiredAt, visible)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return tx.Commit(ctx)
}

func (r *jobRepo) SetVisible(ctx context.Context, jobID int64, visible bool) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE jobs SET visible = $2, updated_at = now() WHERE id = $1`, jobID, visible)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Search returns only posts that are effectively visible. The filter is
// hardcoded server-side so no request shape can surface hidden or lapsed
// posts.
func (r *jobRepo) Search(ctx context.Context, filter domain.PublicJobFilter) ([]domain.PublicJob, int64, error) {
	where := `WHERE j.visible = TRUE AND j.expired_at > now()`
	var args []interface{}

	if filter.SearchPhrase != "" {
		args = append(args, filter.SearchPhrase)
		where += fmt.Sprintf(` AND to_tsvector('simple', j.title || ' ' || j.description || ' ' || j.requirement) @@ websearch_to_tsquery('simple', $%d)`, len(args))
	}
	if len(filter.CityIDs) > 0 {
		args = append(args, filter.CityIDs)
		where += fmt.Sprintf(` AND EXISTS (SELECT 1 FROM job_cities jc WHERE jc.job_id = j.id AND jc.city_id = ANY($%d))`, len(args))
	}
	if len(filter.WorkTypeIDs) > 0 {
		args = append(args, filter.WorkTypeIDs)
		where += fmt.Sprintf(` AND EXISTS (SELECT 1 FROM job_work_types jwt WHERE jwt.job_id = j.id AND jwt.work_type_id = ANY($%d))`, len(args))
	}

	order := `DESC`
	if filter.OrderBy == "asc" {
		order = `ASC`
	}

	offset := (filter.Page - 1) * filter.PageSize
	listArgs := append(append([]interface{}{}, args...), filter.PageSize, offset)
	query := fmt.Sprintf(`
		SELECT j.id, j.title, j.requirement, j.expired_at, j.updated_at,
		       c.id, c.name, c.avatar
		FROM jobs j
		JOIN companies c ON c.id = j.company_id
		%s
		ORDER BY j.created_at %s
		LIMIT $%d OFFSET $%d`, where, order, len(args)+1, len(args)+2)

	jobs, err := r.queryPublicJobs(ctx, query, listArgs...)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM jobs j JOIN companies c ON c.id = j.company_id ` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

func (r *jobRepo) FetchVisibleByCompany(ctx context.Context, companyID int64, limit, offset int) ([]domain.PublicJob, int64, error) {
	query := `
		SELECT j.id, j.title, j.requirement, j.expired_at, j.updated_at,
		       c.id, c.name, c.avatar
		FROM jobs j
		JOIN companies c ON c.id = j.company_id
		WHERE j.company_id = $1 AND j.visible = TRUE AND j.expired_at > now()
		ORDER BY j.created_at DESC
		LIMIT $2 OFFSET $3`

	jobs, err := r.queryPublicJobs(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	err = r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM jobs WHERE company_id = $1 AND visible = TRUE AND expired_at > now()`,
		companyID).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

func (r *jobRepo) queryPublicJobs(ctx context.Context, query string, args ...interface{}) ([]domain.PublicJob, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.PublicJob
	for rows.Next() {
		var job domain.PublicJob
		if err := rows.Scan(
			&job.ID, &job.Title, &job.Requirement, &job.ExpiredAt, &job.UpdatedAt,
			&job.CompanyID, &job.CompanyName, &job.CompanyAvatar,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Associations shown on listing cards
	if len(jobs) > 0 {
		ids := make([]int64, len(jobs))
		byID := make(map[int64]*domain.JobDetail, len(jobs))
		details := make([]domain.JobDetail, len(jobs))
		for i := range jobs {
			ids[i] = jobs[i].ID
			details[i].ID = jobs[i].ID
			byID[jobs[i].ID] = &details[i]
		}
		if err := r.loadAssociations(ctx, ids, byID); err != nil {
			return nil, err
		}
		for i := range jobs {
			jobs[i].Cities = details[i].Cities
			jobs[i].WorkTypes = details[i].WorkTypes
		}
	}

	return jobs, nil
}
