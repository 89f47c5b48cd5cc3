// Package backend escolhe onde os leads são guardados e representa
// explicitamente o caso "backend não configurado".
package backend

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/xavierca1/segurofacil-leads/internal/config"
	"github.com/xavierca1/segurofacil-leads/internal/entity"
	"github.com/xavierca1/segurofacil-leads/internal/infra/database"
	"github.com/xavierca1/segurofacil-leads/internal/infra/supabase"
)

var ErrNotConfigured = errors.New("backend não configurado")

// Backend é Configured ou NotConfigured; não há outras implementações.
type Backend interface {
	Repository() (entity.LeadRepositoryInterface, error)
	Ping(ctx context.Context) error
	Close() error
	backend()
}

type Configured struct {
	Driver string
	Repo   entity.LeadRepositoryInterface
}

func (c Configured) Repository() (entity.LeadRepositoryInterface, error) {
	return c.Repo, nil
}

func (c Configured) Ping(ctx context.Context) error {
	if p, ok := c.Repo.(interface{ Ping(context.Context) error }); ok {
		return p.Ping(ctx)
	}
	return nil
}

func (c Configured) Close() error {
	if cl, ok := c.Repo.(interface{ Close() error }); ok {
		return cl.Close()
	}
	return nil
}

func (Configured) backend() {}

type NotConfigured struct {
	Driver  string
	Missing []string
}

func (n NotConfigured) Repository() (entity.LeadRepositoryInterface, error) {
	return nil, n.err()
}

func (n NotConfigured) Ping(context.Context) error {
	return n.err()
}

func (NotConfigured) Close() error { return nil }

func (NotConfigured) backend() {}

func (n NotConfigured) err() error {
	if len(n.Missing) == 0 {
		return ErrNotConfigured
	}
	return fmt.Errorf("%w: faltando %s", ErrNotConfigured, strings.Join(n.Missing, ", "))
}

// Open monta o backend a partir da configuração. Credenciais ausentes nunca
// derrubam o processo: viram NotConfigured.
func Open(cfg *config.Config) Backend {
	switch cfg.BackendDriver {
	case config.DriverREST, "":
		var missing []string
		if cfg.SupabaseURL == "" {
			missing = append(missing, "SUPABASE_URL")
		}
		if cfg.SupabaseAnonKey == "" {
			missing = append(missing, "SUPABASE_ANON_KEY")
		}
		if len(missing) > 0 {
			return NotConfigured{Driver: config.DriverREST, Missing: missing}
		}
		return Configured{
			Driver: config.DriverREST,
			Repo:   supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseAnonKey),
		}

	case config.DriverPostgres:
		if cfg.DatabaseURL == "" {
			return NotConfigured{Driver: config.DriverPostgres, Missing: []string{"DATABASE_URL"}}
		}
		db, err := database.OpenDB(cfg.DatabaseURL)
		if err != nil {
			log.Printf("❌ DATABASE_URL inválida: %v", err)
			return NotConfigured{Driver: config.DriverPostgres, Missing: []string{"DATABASE_URL"}}
		}
		return Configured{
			Driver: config.DriverPostgres,
			Repo:   database.NewLeadRepository(db),
		}

	default:
		return NotConfigured{Driver: cfg.BackendDriver, Missing: []string{"BACKEND_DRIVER"}}
	}
}
