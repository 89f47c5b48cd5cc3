package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/xavierca1/segurofacil-leads/internal/infra/queue"
)

const DefaultBaseURL = "https://graph.facebook.com/v18.0"

var ErrNotConfigured = errors.New("whatsapp não configurado")

type Client struct {
	accessToken string
	phoneID     string
	template    string
	baseURL     string
	httpClient  *http.Client
}

func NewClient(accessToken, phoneID, template string) *Client {
	return &Client{
		accessToken: accessToken,
		phoneID:     phoneID,
		template:    template,
		baseURL:     DefaultBaseURL,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

func (c *Client) Name() string { return "whatsapp" }

// NotifyLeadCaptured confirma ao próprio lead que a cotação foi recebida.
func (c *Client) NotifyLeadCaptured(ctx context.Context, event queue.LeadCapturedEvent) error {
	return c.SendMessage(ctx, SendMessageInput{
		PhoneNumber:  NormalizePhone(event.Telefone),
		TemplateName: c.template,
		Parameters:   []string{firstName(event.Nome), event.TipoVeiculo},
	})
}

func (c *Client) SendMessage(ctx context.Context, input SendMessageInput) error {
	if c.accessToken == "" || c.phoneID == "" {
		log.Println("⚠️ WhatsApp: ACCESS_TOKEN ou PHONE_ID não configurados")
		return ErrNotConfigured
	}

	payload := messagePayload{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               input.PhoneNumber,
		Type:             "template",
		Template: messageTemplate{
			Name:     input.TemplateName,
			Language: templateLanguage{Code: "pt_BR"},
			Components: []templateComponent{
				{Type: "body", Parameters: convertParametersToAPI(input.Parameters)},
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("whatsapp: erro ao serializar payload: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", c.baseURL, c.phoneID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp: erro ao enviar mensagem: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	var result SendMessageResponse
	if len(respBody) > 0 {
		if err := json.Unmarshal(respBody, &result); err != nil {
			return fmt.Errorf("whatsapp: erro ao parsear resposta: %w", err)
		}
	}

	if result.Error != nil {
		return fmt.Errorf("whatsapp: %s (code %d)", result.Error.Message, result.Error.Code)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("whatsapp api error: %d", resp.StatusCode)
	}

	log.Printf("✅ WhatsApp: Mensagem enviada para %s", input.PhoneNumber)
	return nil
}

// NormalizePhone deixa só dígitos e prefixa o DDI 55 em números nacionais.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) == 10 || len(digits) == 11 {
		return "55" + digits
	}
	return digits
}

func firstName(nome string) string {
	if fields := strings.Fields(nome); len(fields) > 0 {
		return fields[0]
	}
	return nome
}

func convertParametersToAPI(params []string) []templateParameter {
	result := make([]templateParameter, 0, len(params))
	for _, param := range params {
		result = append(result, templateParameter{Type: "text", Text: param})
	}
	return result
}
