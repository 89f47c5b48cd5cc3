package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/xavierca1/segurofacil-leads/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Insert(ctx context.Context, lead *entity.NewLead) (*entity.Lead, error) {
	query := `
		INSERT INTO leads_seguros (id, nome, email, telefone, tipo_veiculo, modelo, ano, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	out := &entity.Lead{
		Nome:        lead.Nome,
		Email:       lead.Email,
		Telefone:    lead.Telefone,
		TipoVeiculo: lead.TipoVeiculo,
		Modelo:      lead.Modelo,
		Ano:         lead.Ano,
	}

	err := r.DB.QueryRowContext(ctx, query,
		uuid.New().String(),
		lead.Nome,
		lead.Email,
		lead.Telefone,
		string(lead.TipoVeiculo),
		lead.Modelo,
		lead.Ano,
	).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir lead: %w", err)
	}

	return out, nil
}

func (r *LeadRepository) ListRecent(ctx context.Context) ([]entity.Lead, error) {
	query := `
		SELECT id, nome, email, telefone, tipo_veiculo, modelo, ano, created_at
		FROM leads_seguros
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar leads: %w", err)
	}
	defer rows.Close()

	leads := []entity.Lead{}
	for rows.Next() {
		var (
			l      entity.Lead
			tipo   string
			modelo sql.NullString
			ano    sql.NullInt64
		)
		if err := rows.Scan(&l.ID, &l.Nome, &l.Email, &l.Telefone, &tipo, &modelo, &ano, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler lead: %w", err)
		}

		l.TipoVeiculo = entity.VehicleType(tipo)
		if modelo.Valid {
			m := modelo.String
			l.Modelo = &m
		}
		if ano.Valid {
			a := int(ano.Int64)
			l.Ano = &a
		}

		leads = append(leads, l)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return leads, nil
}

func (r *LeadRepository) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

func (r *LeadRepository) Close() error {
	return r.DB.Close()
}
