package supabase

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// APIError é o corpo de erro padrão do PostgREST.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details"`
	Hint       string `json:"hint"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("supabase status %d", e.StatusCode)
	}
	return fmt.Sprintf("supabase status %d: %s", e.StatusCode, e.Message)
}

func decodeError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(body, apiErr); err != nil {
		apiErr.Message = string(body)
	}
	return apiErr
}
