package view

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/xavierca1/segurofacil-leads/internal/usecase"
)

const SubmitErrorMessage = "Erro ao processar sua solicitação. Tente novamente."

var ErrSubmitInFlight = errors.New("envio já em andamento")

type FormState string

const (
	StateEditing    FormState = "editing"
	StateSubmitting FormState = "submitting"
	StateSubmitted  FormState = "submitted"
)

type LeadCapturer interface {
	Execute(ctx context.Context, input usecase.LeadFormInput) (*usecase.CaptureLeadOutput, error)
}

// CaptureForm é o estado do formulário de cotação:
// editing -> submitting -> submitted, ou de volta a editing com erro.
type CaptureForm struct {
	mu         sync.Mutex
	capturer   LeadCapturer
	fields     usecase.LeadFormInput
	submitting bool
	submitted  bool
	errMsg     string
	fieldErrs  []usecase.ValidationError
}

func NewCaptureForm(capturer LeadCapturer) *CaptureForm {
	return &CaptureForm{capturer: capturer}
}

func (f *CaptureForm) SetField(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch name {
	case "nome":
		f.fields.Nome = value
	case "email":
		f.fields.Email = value
	case "telefone":
		f.fields.Telefone = value
	case "tipoVeiculo":
		f.fields.TipoVeiculo = value
	case "modelo":
		f.fields.Modelo = value
	case "ano":
		f.fields.Ano = value
	default:
		return fmt.Errorf("campo desconhecido: %q", name)
	}

	// usuário voltou a digitar: some a mensagem de erro
	f.errMsg = ""
	f.fieldErrs = nil
	return nil
}

// Submit envia o formulário. Uma segunda chamada enquanto a primeira está
// em andamento devolve ErrSubmitInFlight sem chamar o backend.
func (f *CaptureForm) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitInFlight
	}
	f.submitting = true
	f.errMsg = ""
	f.fieldErrs = nil
	input := f.fields
	f.mu.Unlock()

	_, err := f.capturer.Execute(ctx, input)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false

	if err != nil {
		f.errMsg = SubmitErrorMessage
		var de *usecase.DomainError
		if errors.As(err, &de) {
			f.fieldErrs = de.Fields
		}
		return err
	}

	f.submitted = true
	return nil
}

// Reset é o "Fazer Nova Cotação": volta a editing com tudo limpo.
func (f *CaptureForm) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.fields = usecase.LeadFormInput{}
	f.submitted = false
	f.errMsg = ""
	f.fieldErrs = nil
}

func (f *CaptureForm) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case f.submitting:
		return StateSubmitting
	case f.submitted:
		return StateSubmitted
	default:
		return StateEditing
	}
}

func (f *CaptureForm) Fields() usecase.LeadFormInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

func (f *CaptureForm) Error() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

func (f *CaptureForm) FieldErrors() []usecase.ValidationError {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fieldErrs
}
