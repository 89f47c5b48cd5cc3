package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverREST     = "rest"
	DriverPostgres = "postgres"
)

type Config struct {
	Port          string
	BackendDriver string

	SupabaseURL     string
	SupabaseAnonKey string
	DatabaseURL     string

	RabbitMQURL string

	MailHost   string
	MailPort   int
	MailUser   string
	MailPass   string
	MailFrom   string
	SalesEmail string

	KommoAPIToken string
	KommoBaseURL  string

	WhatsAppAccessToken string
	WhatsAppPhoneID     string
	WhatsAppTemplate    string

	AdminUser     string
	AdminPassword string

	DigestInterval     time.Duration
	CORSAllowedOrigins []string

	// Só ligar atrás de um proxy que sobrescreve X-Forwarded-For.
	TrustProxyHeaders bool
}

// Load lê o .env (se existir) e depois as variáveis de ambiente.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado - usando variáveis de ambiente do sistema")
	}
	return FromEnv()
}

func FromEnv() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		BackendDriver: strings.ToLower(getEnv("BACKEND_DRIVER", DriverREST)),

		// O front original usava o prefixo NEXT_PUBLIC_; aceitamos os dois.
		SupabaseURL:     firstEnv("SUPABASE_URL", "NEXT_PUBLIC_SUPABASE_URL"),
		SupabaseAnonKey: firstEnv("SUPABASE_ANON_KEY", "NEXT_PUBLIC_SUPABASE_ANON_KEY"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),

		RabbitMQURL: os.Getenv("RABBITMQ_URL"),

		MailHost:   os.Getenv("MAIL_HOST"),
		MailPort:   getEnvInt("MAIL_PORT", 587),
		MailUser:   os.Getenv("MAIL_USER"),
		MailPass:   os.Getenv("MAIL_PASS"),
		MailFrom:   getEnv("MAIL_FROM", "nao-responda@segurofacil.com"),
		SalesEmail: getEnv("SALES_EMAIL", "contato@segurofacil.com"),

		KommoAPIToken: os.Getenv("KOMMO_API_TOKEN"),
		KommoBaseURL:  getEnv("KOMMO_BASE_URL", "https://segurofacil.kommo.com/api/v4"),

		WhatsAppAccessToken: os.Getenv("WHATSAPP_ACCESS_TOKEN"),
		WhatsAppPhoneID:     os.Getenv("WHATSAPP_PHONE_ID"),
		WhatsAppTemplate:    getEnv("WHATSAPP_TEMPLATE", "cotacao_recebida"),

		AdminUser:     os.Getenv("ADMIN_USER"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		DigestInterval:     getEnvDuration("DIGEST_INTERVAL", 24*time.Hour),
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "*"}),

		TrustProxyHeaders: getEnvBool("TRUST_PROXY_HEADERS", false),
	}
}

func (c *Config) MailConfigured() bool {
	return c.MailHost != "" && c.SalesEmail != ""
}

func (c *Config) WhatsAppConfigured() bool {
	return c.WhatsAppAccessToken != "" && c.WhatsAppPhoneID != ""
}

func (c *Config) AdminAuthEnabled() bool {
	return c.AdminUser != "" && c.AdminPassword != ""
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}

func getEnvInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("⚠️ %s inválido (%q), usando %d", key, raw, fallback)
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("⚠️ %s inválido (%q), usando %t", key, raw, fallback)
		return fallback
	}
	return b
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("⚠️ %s inválido (%q), usando %s", key, raw, fallback)
		return fallback
	}
	return d
}

func getEnvList(key string, fallback []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
