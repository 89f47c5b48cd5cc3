package mail

import "gopkg.in/gomail.v2"

type NewLeadEmailData struct {
	Nome        string
	Email       string
	Telefone    string
	TipoVeiculo string
	Modelo      string
	Ano         string
	CapturedAt  string
}

type DigestEmailData struct {
	Date   string
	Total  int
	Hoje   int
	Carros int
	Motos  int
}

// Dialer é satisfeito por *gomail.Dialer.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type EmailSender struct {
	From   string
	To     string
	dialer Dialer
}
