package entity

import (
	"context"
	"fmt"
	"time"
)

type VehicleType string

const (
	VehicleCarro VehicleType = "carro"
	VehicleMoto  VehicleType = "moto"
)

// ParseVehicleType aceita apenas os dois valores do select do formulário.
func ParseVehicleType(s string) (VehicleType, error) {
	switch VehicleType(s) {
	case VehicleCarro, VehicleMoto:
		return VehicleType(s), nil
	default:
		return "", fmt.Errorf("tipo de veículo inválido: %q", s)
	}
}

// NewLead é o registro normalizado que vai para o banco.
// ID e CreatedAt só existem depois do insert.
type NewLead struct {
	Nome        string      `json:"nome"`
	Email       string      `json:"email"`
	Telefone    string      `json:"telefone"`
	TipoVeiculo VehicleType `json:"tipo_veiculo"`
	Modelo      *string     `json:"modelo"`
	Ano         *int        `json:"ano"`
}

type Lead struct {
	ID          string      `json:"id"`
	Nome        string      `json:"nome"`
	Email       string      `json:"email"`
	Telefone    string      `json:"telefone"`
	TipoVeiculo VehicleType `json:"tipo_veiculo"`
	Modelo      *string     `json:"modelo"`
	Ano         *int        `json:"ano"`
	CreatedAt   time.Time   `json:"created_at"`
}

type LeadRepositoryInterface interface {
	Insert(ctx context.Context, lead *NewLead) (*Lead, error)
	// ListRecent devolve todos os leads, created_at decrescente.
	ListRecent(ctx context.Context) ([]Lead, error)
}
