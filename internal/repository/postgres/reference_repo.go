package postgres

import (
	"context"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type referenceRepo struct {
	db *pgxpool.Pool
}

func NewReferenceRepository(db *pgxpool.Pool) domain.ReferenceRepository {
	return &referenceRepo{db: db}
}

func (r *referenceRepo) FetchCities(ctx context.Context) ([]domain.City, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM cities ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cities []domain.City
	for rows.Next() {
		var city domain.City
		if err := rows.Scan(&city.ID, &city.Name); err != nil {
			return nil, err
		}
		cities = append(cities, city)
	}
	return cities, rows.Err()
}

func (r *referenceRepo) FetchDistricts(ctx context.Context, cityID int64) ([]domain.District, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, city_id FROM districts WHERE city_id = $1 ORDER BY name`, cityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var districts []domain.District
	for rows.Next() {
		var district domain.District
		if err := rows.Scan(&district.ID, &district.Name, &district.CityID); err != nil {
			return nil, err
		}
		districts = append(districts, district)
	}
	return districts, rows.Err()
}

func (r *referenceRepo) FetchWorkTypes(ctx context.Context) ([]domain.WorkType, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM work_types ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workTypes []domain.WorkType
	for rows.Next() {
		var workType domain.WorkType
		if err := rows.Scan(&workType.ID, &workType.Name); err != nil {
			return nil, err
		}
		workTypes = append(workTypes, workType)
	}
	return workTypes, rows.Err()
}

func (r *referenceRepo) FetchCurrencies(ctx context.Context) ([]domain.Currency, error) {
	rows, err := r.db.Query(ctx, `SELECT id, code, name FROM currencies ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var currencies []domain.Currency
	for rows.Next() {
		var currency domain.Currency
		if err := rows.Scan(&currency.ID, &currency.Code, &currency.Name); err != nil {
			return nil, err
		}
		currencies = append(currencies, currency)
	}
	return currencies, rows.Err()
}
