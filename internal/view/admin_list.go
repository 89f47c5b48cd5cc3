package view

import (
	"context"
	"sync"
	"time"

	"github.com/xavierca1/segurofacil-leads/internal/entity"
)

const LoadErrorMessage = "Erro ao carregar leads"

type DisplayState string

const (
	DisplayLoading DisplayState = "loading"
	DisplayError   DisplayState = "error"
	DisplayEmpty   DisplayState = "empty"
	DisplayContent DisplayState = "content"
)

type LeadFetcher interface {
	Fetch(ctx context.Context) ([]entity.Lead, error)
}

// AdminList guarda a última lista carregada. Loads concorrentes não são
// cancelados nem deduplicados: o último a terminar vence.
type AdminList struct {
	mu       sync.Mutex
	fetcher  LeadFetcher
	leads    []entity.Lead
	inFlight int
	errMsg   string
}

func NewAdminList(fetcher LeadFetcher) *AdminList {
	return &AdminList{fetcher: fetcher}
}

func (l *AdminList) Load(ctx context.Context) error {
	l.mu.Lock()
	l.inFlight++
	l.errMsg = ""
	l.mu.Unlock()

	leads, err := l.fetcher.Fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.inFlight--

	if err != nil {
		l.errMsg = LoadErrorMessage
		return err
	}

	l.leads = leads
	return nil
}

// Loading é o flag que desabilita o botão "Atualizar".
func (l *AdminList) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inFlight > 0
}

func (l *AdminList) Leads() []entity.Lead {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.leads
}

func (l *AdminList) Error() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.errMsg
}

func (l *AdminList) Stats(now time.Time) entity.Stats {
	return entity.ComputeStats(l.Leads(), now)
}

func (l *AdminList) Display() DisplayState {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch {
	case l.inFlight > 0:
		return DisplayLoading
	case l.errMsg != "":
		return DisplayError
	case len(l.leads) == 0:
		return DisplayEmpty
	default:
		return DisplayContent
	}
}
