package usecase_test

import (
	"context"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) CreateWithDebit(ctx context.Context, job *domain.Job, cityIDs, workTypeIDs []int64, hrID int64, cost int) error {
	return m.Called(ctx, job, cityIDs, workTypeIDs, hrID, cost).Error(0)
}

func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepo) GetDetail(ctx context.Context, id int64) (*domain.JobDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobDetail), args.Error(1)
}

func (m *MockJobRepo) FetchByCompany(ctx context.Context, filter domain.CompanyJobFilter) ([]domain.JobDetail, int64, error) {
	args := m.Called(ctx, filter)
	var jobs []domain.JobDetail
	if args.Get(0) != nil {
		jobs = args.Get(0).([]domain.JobDetail)
	}
	return jobs, args.Get(1).(int64), args.Error(2)
}

func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job, cityIDs, workTypeIDs []int64, hrID int64, cost int) error {
	return m.Called(ctx, job, cityIDs, workTypeIDs, hrID, cost).Error(0)
}

func (m *MockJobRepo) ExtendWithDebit(ctx context.Context, jobID, companyID int64, expiredAt time.Time, visible bool, cost int) error {
	return m.Called(ctx, jobID, companyID, expiredAt, visible, cost).Error(0)
}

func (m *MockJobRepo) SetVisible(ctx context.Context, jobID int64, visible bool) error {
	return m.Called(ctx, jobID, visible).Error(0)
}

func (m *MockJobRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockJobRepo) Search(ctx context.Context, filter domain.PublicJobFilter) ([]domain.PublicJob, int64, error) {
	args := m.Called(ctx, filter)
	var jobs []domain.PublicJob
	if args.Get(0) != nil {
		jobs = args.Get(0).([]domain.PublicJob)
	}
	return jobs, args.Get(1).(int64), args.Error(2)
}

func (m *MockJobRepo) FetchVisibleByCompany(ctx context.Context, companyID int64, limit, offset int) ([]domain.PublicJob, int64, error) {
	args := m.Called(ctx, companyID, limit, offset)
	var jobs []domain.PublicJob
	if args.Get(0) != nil {
		jobs = args.Get(0).([]domain.PublicJob)
	}
	return jobs, args.Get(1).(int64), args.Error(2)
}

type MockCompanyRepo struct {
	mock.Mock
}

func (m *MockCompanyRepo) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepo) RecordAttendance(ctx context.Context, id int64, points int, loginDate time.Time) error {
	return m.Called(ctx, id, points, loginDate).Error(0)
}

func (m *MockCompanyRepo) UpdateProfile(ctx context.Context, id int64, update *domain.CompanyProfileUpdate) error {
	return m.Called(ctx, id, update).Error(0)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetSessionUser(ctx context.Context, id string) (*domain.SessionUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SessionUser), args.Error(1)
}

func (m *MockUserRepo) CreateCandidate(ctx context.Context, user *domain.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepo) CreateCompanyWithManager(ctx context.Context, company *domain.Company, manager *domain.User) error {
	return m.Called(ctx, company, manager).Error(0)
}

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) GetByUserID(ctx context.Context, userID string) (*domain.Candidate, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) UpdateCV(ctx context.Context, candidateID int64, cvLink string) error {
	return m.Called(ctx, candidateID, cvLink).Error(0)
}

func (m *MockCandidateRepo) UpdateSkills(ctx context.Context, candidateID int64, skills []string) error {
	return m.Called(ctx, candidateID, skills).Error(0)
}

func (m *MockCandidateRepo) Apply(ctx context.Context, candidateID, jobID int64) error {
	return m.Called(ctx, candidateID, jobID).Error(0)
}

func (m *MockCandidateRepo) SaveJob(ctx context.Context, candidateID, jobID int64) error {
	return m.Called(ctx, candidateID, jobID).Error(0)
}

func (m *MockCandidateRepo) UnsaveJob(ctx context.Context, candidateID, jobID int64) error {
	return m.Called(ctx, candidateID, jobID).Error(0)
}

func (m *MockCandidateRepo) Follow(ctx context.Context, candidateID, companyID int64) error {
	return m.Called(ctx, candidateID, companyID).Error(0)
}

func (m *MockCandidateRepo) Unfollow(ctx context.Context, candidateID, companyID int64) error {
	return m.Called(ctx, candidateID, companyID).Error(0)
}

func (m *MockCandidateRepo) FetchApplied(ctx context.Context, candidateID int64, limit, offset int) ([]domain.AppliedJob, int64, error) {
	args := m.Called(ctx, candidateID, limit, offset)
	var jobs []domain.AppliedJob
	if args.Get(0) != nil {
		jobs = args.Get(0).([]domain.AppliedJob)
	}
	return jobs, args.Get(1).(int64), args.Error(2)
}

func (m *MockCandidateRepo) FetchSaved(ctx context.Context, candidateID int64, limit, offset int) ([]domain.AppliedJob, int64, error) {
	args := m.Called(ctx, candidateID, limit, offset)
	var jobs []domain.AppliedJob
	if args.Get(0) != nil {
		jobs = args.Get(0).([]domain.AppliedJob)
	}
	return jobs, args.Get(1).(int64), args.Error(2)
}

func (m *MockCandidateRepo) FetchFollowing(ctx context.Context, candidateID int64, limit, offset int) ([]domain.FollowedCompany, int64, error) {
	args := m.Called(ctx, candidateID, limit, offset)
	var companies []domain.FollowedCompany
	if args.Get(0) != nil {
		companies = args.Get(0).([]domain.FollowedCompany)
	}
	return companies, args.Get(1).(int64), args.Error(2)
}

func (m *MockCandidateRepo) FetchApplicants(ctx context.Context, jobID, companyID int64, limit, offset int) ([]domain.JobApplicant, int64, error) {
	args := m.Called(ctx, jobID, companyID, limit, offset)
	var applicants []domain.JobApplicant
	if args.Get(0) != nil {
		applicants = args.Get(0).([]domain.JobApplicant)
	}
	return applicants, args.Get(1).(int64), args.Error(2)
}
