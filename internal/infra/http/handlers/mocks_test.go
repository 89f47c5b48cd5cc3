package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/segurofacil-leads/internal/entity"
	"github.com/xavierca1/segurofacil-leads/internal/usecase"
)

// MockCaptureUseCase
type MockCaptureUseCase struct {
	mock.Mock
}

func (m *MockCaptureUseCase) Execute(ctx context.Context, input usecase.LeadFormInput) (*usecase.CaptureLeadOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.CaptureLeadOutput), args.Error(1)
}

// MockListUseCase
type MockListUseCase struct {
	mock.Mock
}

func (m *MockListUseCase) Execute(ctx context.Context) (*usecase.ListLeadsOutput, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.ListLeadsOutput), args.Error(1)
}

// MockFetcher
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Fetch(ctx context.Context) ([]entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}
