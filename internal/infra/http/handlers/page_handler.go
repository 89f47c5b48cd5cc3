package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/xavierca1/segurofacil-leads/internal/entity"
	"github.com/xavierca1/segurofacil-leads/internal/usecase"
	"github.com/xavierca1/segurofacil-leads/internal/view"
)

//go:embed templates/*.html
var templateFS embed.FS

var formFields = []string{"nome", "email", "telefone", "tipoVeiculo", "modelo", "ano"}

type formPage struct {
	Fields      usecase.LeadFormInput
	Error       string
	FieldErrors map[string]string
	MinAno      int
	MaxAno      int
}

type thanksPage struct {
	TipoVeiculo string
}

type adminPage struct {
	Display view.DisplayState
	Error   string
	Leads   []entity.Lead
	Stats   entity.Stats
}

// PageHandler serve as duas telas: formulário (/) e lista (/admin).
type PageHandler struct {
	capture   LeadCapturer
	fetcher   view.LeadFetcher
	templates *template.Template
	now       func() time.Time
}

func NewPageHandler(capture LeadCapturer, fetcher view.LeadFetcher) *PageHandler {
	return &PageHandler{
		capture:   capture,
		fetcher:   fetcher,
		templates: parseTemplates(),
		now:       time.Now,
	}
}

func parseTemplates() *template.Template {
	funcs := template.FuncMap{
		"formatDate": func(t time.Time) string {
			return t.Local().Format("02/01/2006, 15:04:05")
		},
		"str": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
		"num": func(n *int) int {
			if n == nil {
				return 0
			}
			return *n
		},
	}
	return template.Must(template.New("pages").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}

// ShowForm (GET /)
func (h *PageHandler) ShowForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "form.html", newFormPage(view.NewCaptureForm(h.capture)))
}

// SubmitForm (POST /)
func (h *PageHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, http.StatusBadRequest, "form.html", formPage{Error: view.SubmitErrorMessage, MinAno: usecase.MinAno, MaxAno: usecase.MaxAno})
		return
	}

	form := view.NewCaptureForm(h.capture)
	for _, name := range formFields {
		form.SetField(name, r.PostFormValue(name))
	}

	if err := form.Submit(r.Context()); err != nil {
		h.render(w, statusFor(err), "form.html", newFormPage(form))
		return
	}

	h.render(w, http.StatusOK, "obrigado.html", thanksPage{TipoVeiculo: form.Fields().TipoVeiculo})
}

// NewQuote (POST /nova-cotacao) volta para o formulário vazio.
func (h *PageHandler) NewQuote(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ShowAdmin (GET /admin). Cada acesso busca a lista inteira de novo.
func (h *PageHandler) ShowAdmin(w http.ResponseWriter, r *http.Request) {
	list := view.NewAdminList(h.fetcher)
	err := list.Load(r.Context())

	status := http.StatusOK
	if err != nil {
		status = statusFor(err)
	}

	h.render(w, status, "admin.html", adminPage{
		Display: list.Display(),
		Error:   list.Error(),
		Leads:   list.Leads(),
		Stats:   list.Stats(h.now()),
	})
}

func (h *PageHandler) render(w http.ResponseWriter, status int, name string, data interface{}) {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		log.Printf("❌ Erro ao renderizar %s: %v", name, err)
		http.Error(w, "Erro interno", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func newFormPage(form *view.CaptureForm) formPage {
	page := formPage{
		Fields: form.Fields(),
		Error:  form.Error(),
		MinAno: usecase.MinAno,
		MaxAno: usecase.MaxAno,
	}
	if errs := form.FieldErrors(); len(errs) > 0 {
		page.FieldErrors = make(map[string]string, len(errs))
		for _, e := range errs {
			page.FieldErrors[e.Field] = e.Message
		}
	}
	return page
}

func statusFor(err error) int {
	switch usecase.ErrorCode(err) {
	case usecase.CodeValidation:
		return http.StatusBadRequest
	case usecase.CodeBackendNotConfigured:
		return http.StatusServiceUnavailable
	case usecase.CodeBackend:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
