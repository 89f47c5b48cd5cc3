package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xavierca1/segurofacil-leads/internal/entity"
)

func TestNormalizeLeadFullForm(t *testing.T) {
	lead, err := NormalizeLead(LeadFormInput{
		Nome:        " Ana Silva ",
		Email:       "ANA@X.com",
		Telefone:    "11999990000",
		TipoVeiculo: "carro",
		Modelo:      " Civic ",
		Ano:         "2020",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana Silva", lead.Nome)
	assert.Equal(t, "ana@x.com", lead.Email)
	assert.Equal(t, "11999990000", lead.Telefone)
	assert.Equal(t, entity.VehicleCarro, lead.TipoVeiculo)
	require.NotNil(t, lead.Modelo)
	assert.Equal(t, "Civic", *lead.Modelo)
	require.NotNil(t, lead.Ano)
	assert.Equal(t, 2020, *lead.Ano)
}

func TestNormalizeLeadBlankOptionalsAreAbsent(t *testing.T) {
	lead, err := NormalizeLead(LeadFormInput{
		Nome:        "Bia",
		Email:       " Bia@Example.COM ",
		Telefone:    " 11 98888-0000 ",
		TipoVeiculo: "moto",
		Modelo:      "   ",
		Ano:         "",
	})
	require.NoError(t, err)

	assert.Equal(t, "bia@example.com", lead.Email)
	assert.Equal(t, "11 98888-0000", lead.Telefone)
	assert.Nil(t, lead.Modelo)
	assert.Nil(t, lead.Ano)
}

func TestNormalizeLeadRejectsNonNumericAno(t *testing.T) {
	_, err := NormalizeLead(LeadFormInput{
		Nome: "Bia", Email: "bia@x.com", Telefone: "1", TipoVeiculo: "moto", Ano: "20x0",
	})

	var ve ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "ano", ve.Field)
}

func TestNormalizeLeadRejectsUnknownVehicle(t *testing.T) {
	_, err := NormalizeLead(LeadFormInput{
		Nome: "Bia", Email: "bia@x.com", Telefone: "1", TipoVeiculo: "caminhao",
	})

	var ve ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "tipoVeiculo", ve.Field)
}
