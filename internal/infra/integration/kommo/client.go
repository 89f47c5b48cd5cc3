package kommo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/xavierca1/segurofacil-leads/internal/infra/queue"
)

var ErrNotConfigured = errors.New("kommo não configurado")

var errContactNotFound = errors.New("contato não encontrado")

type Client struct {
	apiToken   string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiToken, baseURL string) *Client {
	return &Client{
		apiToken:   apiToken,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

func (c *Client) Name() string { return "kommo" }

// NotifyLeadCaptured sincroniza o lead capturado com o funil do CRM.
func (c *Client) NotifyLeadCaptured(ctx context.Context, event queue.LeadCapturedEvent) error {
	input := CreateLeadInput{
		Name:        event.Nome,
		Email:       event.Email,
		Phone:       event.Telefone,
		TipoVeiculo: event.TipoVeiculo,
	}
	if event.Modelo != nil {
		input.Modelo = *event.Modelo
	}
	if event.Ano != nil {
		input.Ano = *event.Ano
	}

	_, err := c.CreateLead(ctx, input)
	return err
}

func (c *Client) CreateLead(ctx context.Context, input CreateLeadInput) (int, error) {
	if c.apiToken == "" {
		log.Println("⚠️ Kommo: API_TOKEN não configurado")
		return 0, ErrNotConfigured
	}

	contactID, err := c.findOrCreateContact(ctx, input)
	if err != nil {
		return 0, fmt.Errorf("erro ao criar/buscar contato: %w", err)
	}

	lead := leadPayload{Name: leadName(input)}
	lead.Embedded.Tags = []tag{{Name: "seguro_" + input.TipoVeiculo}}
	lead.Embedded.Contacts = []ref{{ID: contactID}}

	var result embeddedLeads
	status, body, err := c.do(ctx, http.MethodPost, "/leads", []leadPayload{lead}, &result)
	if err != nil {
		return 0, err
	}
	if status != http.StatusOK {
		return 0, fmt.Errorf("erro ao criar lead: %d - %s", status, body)
	}
	if len(result.Embedded.Leads) == 0 {
		return 0, fmt.Errorf("lead não criado")
	}

	leadID := result.Embedded.Leads[0].ID
	log.Printf("✅ Kommo: Lead criado #%d para %s (%s)", leadID, input.Name, input.TipoVeiculo)

	return leadID, nil
}

func leadName(input CreateLeadInput) string {
	parts := []string{input.TipoVeiculo}
	if input.Modelo != "" {
		parts = append(parts, input.Modelo)
	}
	if input.Ano != 0 {
		parts = append(parts, strconv.Itoa(input.Ano))
	}
	return input.Name + " - " + strings.Join(parts, " ")
}

func (c *Client) findOrCreateContact(ctx context.Context, input CreateLeadInput) (int, error) {
	contactID, err := c.findContactByPhone(ctx, input.Phone)
	if err == nil {
		log.Printf("📱 Kommo: Contato existente encontrado: %d", contactID)
		return contactID, nil
	}
	if !errors.Is(err, errContactNotFound) {
		return 0, err
	}

	return c.createContact(ctx, input)
}

func (c *Client) findContactByPhone(ctx context.Context, phone string) (int, error) {
	var result embeddedContacts
	status, _, err := c.do(ctx, http.MethodGet, "/contacts?query="+url.QueryEscape(phone), nil, &result)
	if err != nil {
		return 0, err
	}

	// Kommo responde 204 sem corpo quando a busca não encontra nada
	if status == http.StatusNoContent {
		return 0, errContactNotFound
	}
	if status != http.StatusOK {
		return 0, fmt.Errorf("erro ao buscar contato: %d", status)
	}
	if len(result.Embedded.Contacts) == 0 {
		return 0, errContactNotFound
	}

	return result.Embedded.Contacts[0].ID, nil
}

func (c *Client) createContact(ctx context.Context, input CreateLeadInput) (int, error) {
	contact := contactPayload{
		Name: input.Name,
		CustomFieldsValues: []customField{
			{FieldCode: "PHONE", Values: []fieldValue{{Value: input.Phone, EnumCode: "WORK"}}},
			{FieldCode: "EMAIL", Values: []fieldValue{{Value: input.Email, EnumCode: "WORK"}}},
		},
	}

	var result embeddedContacts
	status, body, err := c.do(ctx, http.MethodPost, "/contacts", []contactPayload{contact}, &result)
	if err != nil {
		return 0, err
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return 0, fmt.Errorf("erro ao criar contato: %d - %s", status, body)
	}
	if len(result.Embedded.Contacts) == 0 {
		return 0, fmt.Errorf("erro ao obter ID do contato criado")
	}

	contactID := result.Embedded.Contacts[0].ID
	log.Printf("✅ Kommo: Novo contato criado: %d", contactID)
	return contactID, nil
}

// do envia a requisição e decodifica respostas 2xx com corpo em out.
func (c *Client) do(ctx context.Context, method, path string, payload, out interface{}) (int, string, error) {
	var reader io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return 0, "", err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, "", err
	}
	c.addAuthHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, "", err
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 && len(body) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			return resp.StatusCode, string(body), err
		}
	}

	return resp.StatusCode, string(body), nil
}

func (c *Client) addAuthHeaders(req *http.Request) {
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiToken))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}
