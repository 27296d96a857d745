package domain

import "context"

// Reference data backing the search filters and registration forms.

type City struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type District struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	CityID int64  `json:"city_id"`
}

type WorkType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Currency struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// BusinessScales enumerates the company-size buckets shown at registration.
var BusinessScales = []string{"MICRO", "SMALL", "MEDIUM", "LARGE"}

type ReferenceRepository interface {
	FetchCities(ctx context.Context) ([]City, error)
	FetchDistricts(ctx context.Context, cityID int64) ([]District, error)
	FetchWorkTypes(ctx context.Context) ([]WorkType, error)
	FetchCurrencies(ctx context.Context) ([]Currency, error)
}

type ReferenceUsecase interface {
	ListCities(ctx context.Context) ([]City, error)
	ListDistricts(ctx context.Context, cityID int64) ([]District, error)
	ListWorkTypes(ctx context.Context) ([]WorkType, error)
	ListCurrencies(ctx context.Context) ([]Currency, error)
	ListBusinessScales(ctx context.Context) ([]string, error)
}
