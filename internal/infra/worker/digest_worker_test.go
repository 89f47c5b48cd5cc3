package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xavierca1/segurofacil-leads/internal/entity"
	"github.com/xavierca1/segurofacil-leads/internal/usecase"
)

type MockLister struct {
	mock.Mock
}

func (m *MockLister) Execute(ctx context.Context) (*usecase.ListLeadsOutput, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.ListLeadsOutput), args.Error(1)
}

type MockDigestSender struct {
	mock.Mock
}

func (m *MockDigestSender) SendDailyDigest(stats entity.Stats, date time.Time) error {
	return m.Called(stats, date).Error(0)
}

func TestRunOnceSendsStats(t *testing.T) {
	now := time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)
	stats := entity.Stats{Total: 5, Hoje: 2, Carros: 3, Motos: 2}

	lister := new(MockLister)
	lister.On("Execute", mock.Anything).Return(&usecase.ListLeadsOutput{Leads: []entity.Lead{}, Stats: stats}, nil)
	sender := new(MockDigestSender)
	sender.On("SendDailyDigest", stats, now).Return(nil)

	w := NewDigestWorker(lister, sender, time.Hour)
	w.now = func() time.Time { return now }

	require.NoError(t, w.RunOnce(context.Background()))
	sender.AssertExpectations(t)
}

func TestRunOnceListError(t *testing.T) {
	lister := new(MockLister)
	lister.On("Execute", mock.Anything).Return(nil, errors.New("backend offline"))
	sender := new(MockDigestSender)

	err := NewDigestWorker(lister, sender, time.Hour).RunOnce(context.Background())

	assert.EqualError(t, err, "backend offline")
	sender.AssertNotCalled(t, "SendDailyDigest", mock.Anything, mock.Anything)
}

func TestStartTicksUntilCancelled(t *testing.T) {
	lister := new(MockLister)
	lister.On("Execute", mock.Anything).Return(&usecase.ListLeadsOutput{}, nil)
	sent := make(chan struct{}, 10)
	sender := new(MockDigestSender)
	sender.On("SendDailyDigest", mock.Anything, mock.Anything).Return(nil).Run(func(mock.Arguments) {
		select {
		case sent <- struct{}{}:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		NewDigestWorker(lister, sender, 10*time.Millisecond).Start(ctx)
		close(done)
	}()

	select {
	case <-sent:
	case <-time.After(time.Second):
		t.Fatal("digest não foi enviado")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker não encerrou")
	}
}

func TestNewDigestWorkerDefaultsInterval(t *testing.T) {
	w := NewDigestWorker(nil, nil, 0)
	assert.Equal(t, 24*time.Hour, w.tickInterval)
}
