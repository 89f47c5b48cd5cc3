package usecase

import "github.com/xavierca1/segurofacil-leads/internal/entity"

type CaptureLeadOutput struct {
	Lead *entity.Lead `json:"lead"`
}

type ListLeadsOutput struct {
	Leads []entity.Lead `json:"leads"`
	Stats entity.Stats  `json:"stats"`
}
