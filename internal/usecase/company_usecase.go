package usecase

import (
	"context"
	"net/http"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type companyUsecase struct {
	companyRepo domain.CompanyRepository
	points      domain.PointsConfig
}

func NewCompanyUsecase(companyRepo domain.CompanyRepository, points domain.PointsConfig) domain.CompanyUsecase {
	return &companyUsecase{
		companyRepo: companyRepo,
		points:      points,
	}
}

func (u *companyUsecase) GetProfile(ctx context.Context, companyID int64) (*domain.Company, error) {
	company, err := u.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, apperror.NotFound("Company not found")
	}
	return company, nil
}

func (u *companyUsecase) GetPoints(ctx context.Context, companyID int64) (int, error) {
	company, err := u.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return 0, apperror.NotFound("Company not found")
	}
	return company.Points, nil
}

func (u *companyUsecase) UpdateProfile(ctx context.Context, companyID int64, update *domain.CompanyProfileUpdate) error {
	if update.Address == "" || update.Scale == "" || update.Website == "" ||
		update.Description == "" || update.Representer == "" || update.DistrictID == 0 {
		return apperror.BadRequest("All fields are required")
	}
	return u.companyRepo.UpdateProfile(ctx, companyID, update)
}

func (u *companyUsecase) DailyAttendance(ctx context.Context, companyID int64) (*domain.AttendanceResult, error) {
	company, err := u.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, apperror.NotFound("Company not found")
	}

	now := time.Now().UTC()
	if company.LoginDate != nil && domain.SameCalendarDay(*company.LoginDate, now) {
		return nil, apperror.New(http.StatusBadRequest, "Attendance has been checked for today", domain.ErrAlreadyCheckedIn)
	}

	// The check-in is recorded even at the ceiling; only the balance stays put.
	if u.points.AtLimit(company.Points) {
		if err := u.companyRepo.RecordAttendance(ctx, companyID, company.Points, now); err != nil {
			return nil, err
		}
		return &domain.AttendanceResult{Attended: true, AtLimit: true, Points: company.Points}, nil
	}

	newPoints := u.points.DailyCredit(company.Points)
	if err := u.companyRepo.RecordAttendance(ctx, companyID, newPoints, now); err != nil {
		return nil, err
	}
	return &domain.AttendanceResult{Attended: true, Points: newPoints}, nil
}
