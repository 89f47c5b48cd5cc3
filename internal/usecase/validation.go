package usecase

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

const (
	MinAno = 1990
	MaxAno = 2024
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// LeadFormInput são os campos do formulário exatamente como digitados.
type LeadFormInput struct {
	Nome        string `json:"nome" validate:"notblank"`
	Email       string `json:"email" validate:"notblank,email"`
	Telefone    string `json:"telefone" validate:"notblank"`
	TipoVeiculo string `json:"tipoVeiculo" validate:"required,oneof=carro moto"`
	Modelo      string `json:"modelo"`
	Ano         string `json:"ano" validate:"ano_veiculo"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func formValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})

		// vazio é permitido; senão inteiro entre MinAno e MaxAno
		v.RegisterValidation("ano_veiculo", func(fl validator.FieldLevel) bool {
			raw := strings.TrimSpace(fl.Field().String())
			if raw == "" {
				return true
			}
			ano, err := strconv.Atoi(raw)
			if err != nil {
				return false
			}
			return ano >= MinAno && ano <= MaxAno
		})

		validate = v
	})
	return validate
}

// ValidateLeadForm aplica no servidor as mesmas restrições que o formulário
// impõe no navegador: campos obrigatórios, formato de e-mail, select fechado
// e faixa do ano.
func ValidateLeadForm(input LeadFormInput) []ValidationError {
	trimmed := LeadFormInput{
		Nome:        input.Nome,
		Email:       strings.TrimSpace(input.Email),
		Telefone:    input.Telefone,
		TipoVeiculo: input.TipoVeiculo,
		Modelo:      input.Modelo,
		Ano:         input.Ano,
	}

	err := formValidator().Struct(trimmed)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []ValidationError{{Field: "form", Message: err.Error()}}
	}

	var errs []ValidationError
	for _, fe := range fieldErrs {
		errs = append(errs, ValidationError{Field: fe.Field(), Message: messageFor(fe)})
	}
	return errs
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank", "required":
		return "is required"
	case "email":
		return "is invalid"
	case "oneof":
		return "must be carro or moto"
	case "ano_veiculo":
		return fmt.Sprintf("must be a year between %d and %d", MinAno, MaxAno)
	default:
		return "is invalid"
	}
}
