package usecase

import (
	"strconv"
	"strings"

	"github.com/xavierca1/segurofacil-leads/internal/entity"
)

// NormalizeLead monta o registro que vai para o banco: strings aparadas,
// e-mail minúsculo, modelo/ano vazios viram nil.
func NormalizeLead(input LeadFormInput) (*entity.NewLead, error) {
	tipo, err := entity.ParseVehicleType(input.TipoVeiculo)
	if err != nil {
		return nil, ValidationError{Field: "tipoVeiculo", Message: "must be carro or moto"}
	}

	lead := &entity.NewLead{
		Nome:        strings.TrimSpace(input.Nome),
		Email:       strings.ToLower(strings.TrimSpace(input.Email)),
		Telefone:    strings.TrimSpace(input.Telefone),
		TipoVeiculo: tipo,
	}

	if modelo := strings.TrimSpace(input.Modelo); modelo != "" {
		lead.Modelo = &modelo
	}

	if raw := strings.TrimSpace(input.Ano); raw != "" {
		ano, err := strconv.Atoi(raw)
		if err != nil {
			return nil, ValidationError{Field: "ano", Message: "must be a number"}
		}
		lead.Ano = &ano
	}

	return lead, nil
}
