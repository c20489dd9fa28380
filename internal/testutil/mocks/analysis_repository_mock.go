package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/athlyze/athlyze/internal/models"
)

// MockAnalysisRepository is a mock implementation of repository.AnalysisRepository
type MockAnalysisRepository struct {
	mock.Mock
}

func (m *MockAnalysisRepository) Insert(ctx context.Context, a models.Analysis) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAnalysisRepository) Get(ctx context.Context, id string) (*models.Analysis, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Analysis), args.Error(1)
}

func (m *MockAnalysisRepository) GetReport(ctx context.Context, id string) (*models.AnalysisReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AnalysisReport), args.Error(1)
}

func (m *MockAnalysisRepository) List(ctx context.Context, filter models.AnalysisFilter) ([]models.Analysis, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Analysis), args.Error(1)
}

func (m *MockAnalysisRepository) Count(ctx context.Context, filter models.AnalysisFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockAnalysisRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockAnalysisRepository) SaveReport(ctx context.Context, id string, report models.Report, completedAt time.Time) error {
	args := m.Called(ctx, id, report, completedAt)
	return args.Error(0)
}

func (m *MockAnalysisRepository) MarkFailed(ctx context.Context, id string, reason string, completedAt time.Time) error {
	args := m.Called(ctx, id, reason, completedAt)
	return args.Error(0)
}

func (m *MockAnalysisRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
