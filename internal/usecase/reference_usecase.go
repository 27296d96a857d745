package usecase

import (
	"context"

	"go-jobboard-backend/internal/domain"
)

type referenceUsecase struct {
	refRepo domain.ReferenceRepository
}

func NewReferenceUsecase(refRepo domain.ReferenceRepository) domain.ReferenceUsecase {
	return &referenceUsecase{refRepo: refRepo}
}

func (u *referenceUsecase) ListCities(ctx context.Context) ([]domain.City, error) {
	return u.refRepo.FetchCities(ctx)
}

func (u *referenceUsecase) ListDistricts(ctx context.Context, cityID int64) ([]domain.District, error) {
	return u.refRepo.FetchDistricts(ctx, cityID)
}

func (u *referenceUsecase) ListWorkTypes(ctx context.Context) ([]domain.WorkType, error) {
	return u.refRepo.FetchWorkTypes(ctx)
}

func (u *referenceUsecase) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	return u.refRepo.FetchCurrencies(ctx)
}

func (u *referenceUsecase) ListBusinessScales(_ context.Context) ([]string, error) {
	return domain.BusinessScales, nil
}
