package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/xavierca1/segurofacil-leads/internal/usecase"
)

type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: message})
}

// writeUseCaseError traduz os erros tipados do usecase em status HTTP.
func writeUseCaseError(w http.ResponseWriter, err error) {
	switch usecase.ErrorCode(err) {
	case usecase.CodeValidation:
		resp := ErrorResponse{Error: usecase.CodeValidation, Message: err.Error()}
		var de *usecase.DomainError
		if errors.As(err, &de) && len(de.Fields) > 0 {
			resp.Fields = make(map[string]string, len(de.Fields))
			for _, f := range de.Fields {
				resp.Fields[f.Field] = f.Message
			}
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case usecase.CodeBackendNotConfigured:
		writeErrorResponse(w, http.StatusServiceUnavailable, usecase.CodeBackendNotConfigured, "Backend não configurado")
	case usecase.CodeBackend:
		writeErrorResponse(w, http.StatusBadGateway, usecase.CodeBackend, "Erro ao comunicar com o banco de dados")
	default:
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Erro interno")
	}
}
