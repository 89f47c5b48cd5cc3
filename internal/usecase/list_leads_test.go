package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xavierca1/segurofacil-leads/internal/backend"
	"github.com/xavierca1/segurofacil-leads/internal/entity"
)

func TestListLeadsReturnsLeadsAndStats(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local)
	leads := []entity.Lead{
		{ID: "3", TipoVeiculo: entity.VehicleCarro, CreatedAt: now.Add(-time.Hour)},
		{ID: "2", TipoVeiculo: entity.VehicleMoto, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "1", TipoVeiculo: entity.VehicleCarro, CreatedAt: now.Add(-72 * time.Hour)},
	}

	repo := new(MockLeadRepository)
	repo.On("ListRecent", mock.Anything).Return(leads, nil)

	uc := NewListLeadsUseCase(backend.Configured{Repo: repo}, nil)
	uc.Now = func() time.Time { return now }

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, leads, out.Leads)
	assert.Equal(t, entity.Stats{Total: 3, Hoje: 2, Carros: 2, Motos: 1}, out.Stats)
}

func TestListLeadsEmpty(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("ListRecent", mock.Anything).Return(nil, nil)

	out, err := NewListLeadsUseCase(backend.Configured{Repo: repo}, nil).Execute(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, out.Leads)
	assert.Empty(t, out.Leads)
	assert.Equal(t, entity.Stats{}, out.Stats)
}

func TestListLeadsBackendFailure(t *testing.T) {
	repo := new(MockLeadRepository)
	metrics := new(MockMetrics)
	repo.On("ListRecent", mock.Anything).Return(nil, errors.New("timeout"))
	metrics.On("RecordBackendError", "list").Return()

	_, err := NewListLeadsUseCase(backend.Configured{Repo: repo}, metrics).Execute(context.Background())

	require.Error(t, err)
	assert.Equal(t, CodeBackend, ErrorCode(err))
	metrics.AssertExpectations(t)
}

func TestListLeadsNotConfigured(t *testing.T) {
	_, err := NewListLeadsUseCase(backend.NotConfigured{}, nil).Execute(context.Background())

	assert.Equal(t, CodeBackendNotConfigured, ErrorCode(err))
	assert.ErrorIs(t, err, backend.ErrNotConfigured)
}

func TestListLeadsIdempotent(t *testing.T) {
	now := time.Now()
	leads := []entity.Lead{
		{ID: "2", TipoVeiculo: entity.VehicleMoto, CreatedAt: now},
		{ID: "1", TipoVeiculo: entity.VehicleCarro, CreatedAt: now.Add(-48 * time.Hour)},
	}

	repo := new(MockLeadRepository)
	repo.On("ListRecent", mock.Anything).Return(leads, nil)

	uc := NewListLeadsUseCase(backend.Configured{Repo: repo}, nil)
	uc.Now = func() time.Time { return now }

	first, err := uc.Execute(context.Background())
	require.NoError(t, err)
	second, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
