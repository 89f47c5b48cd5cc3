package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/xavierca1/segurofacil-leads/internal/entity"
)

// Tabela usada pelo projeto Supabase do site.
const leadsTable = "leads_seguros"

// Client fala com o PostgREST do Supabase usando a chave pública (anon).
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// WithHTTPClient troca o http.Client (usado nos testes).
func (c *Client) WithHTTPClient(h *http.Client) *Client {
	c.http = h
	return c
}

func (c *Client) Insert(ctx context.Context, lead *entity.NewLead) (*entity.Lead, error) {
	url := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, leadsTable)

	jsonBody, err := json.Marshal(lead)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar lead: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)
	req.Header.Set("Prefer", "return=representation")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro request supabase: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeError(resp)
	}

	// PostgREST devolve sempre um array, mesmo para um único registro
	var rows []entity.Lead
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("erro decode supabase: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("supabase não retornou o lead inserido")
	}

	return &rows[0], nil
}

func (c *Client) ListRecent(ctx context.Context) ([]entity.Lead, error) {
	url := fmt.Sprintf("%s/rest/v1/%s?select=*&order=created_at.desc", c.baseURL, leadsTable)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro request supabase: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	leads := []entity.Lead{}
	if err := json.NewDecoder(resp.Body).Decode(&leads); err != nil {
		return nil, fmt.Errorf("erro decode supabase: %w", err)
	}

	return leads, nil
}

// Ping faz um HEAD barato na tabela, usado pelo health check.
func (c *Client) Ping(ctx context.Context) error {
	url := fmt.Sprintf("%s/rest/v1/%s?select=id&limit=1", c.baseURL, leadsTable)

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("supabase status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}
