package whatsapp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xavierca1/segurofacil-leads/internal/infra/queue"
)

func TestNotifyLeadCapturedSendsTemplate(t *testing.T) {
	var got messagePayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/phone-1/messages", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"messages":[{"id":"wamid.1"}]}`))
	}))
	defer srv.Close()

	c := NewClient("tok", "phone-1", "cotacao_recebida").WithBaseURL(srv.URL)
	err := c.NotifyLeadCaptured(context.Background(), queue.LeadCapturedEvent{
		Nome: "Ana Silva", Telefone: "(11) 99999-0000", TipoVeiculo: "carro",
	})

	require.NoError(t, err)
	assert.Equal(t, "5511999990000", got.To)
	assert.Equal(t, "cotacao_recebida", got.Template.Name)
	assert.Equal(t, "pt_BR", got.Template.Language.Code)
	assert.Equal(t, []templateParameter{{Type: "text", Text: "Ana"}, {Type: "text", Text: "carro"}},
		got.Template.Components[0].Parameters)
	assert.Equal(t, "whatsapp", c.Name())
}

func TestSendMessageAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Template name does not exist","code":132001}}`))
	}))
	defer srv.Close()

	err := NewClient("tok", "phone-1", "x").WithBaseURL(srv.URL).
		SendMessage(context.Background(), SendMessageInput{PhoneNumber: "5511999990000", TemplateName: "x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Template name does not exist")
}

func TestSendMessageNotConfigured(t *testing.T) {
	err := NewClient("", "", "x").SendMessage(context.Background(), SendMessageInput{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "5511999990000", NormalizePhone("(11) 99999-0000"))
	assert.Equal(t, "551133334444", NormalizePhone("11 3333-4444"))
	assert.Equal(t, "5511999990000", NormalizePhone("+55 11 99999-0000"))
	assert.Equal(t, "", NormalizePhone("abc"))
}
