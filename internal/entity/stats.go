package entity

import "time"

type Stats struct {
	Total  int `json:"total"`
	Hoje   int `json:"hoje"`
	Carros int `json:"carros"`
	Motos  int `json:"motos"`
}

// ComputeStats varre a lista inteira a cada chamada. "Hoje" compara a data
// de calendário de created_at no fuso de now, ignorando a hora.
func ComputeStats(leads []Lead, now time.Time) Stats {
	var s Stats
	loc := now.Location()
	y, m, d := now.Date()

	for _, l := range leads {
		s.Total++

		switch l.TipoVeiculo {
		case VehicleCarro:
			s.Carros++
		case VehicleMoto:
			s.Motos++
		}

		ly, lm, ld := l.CreatedAt.In(loc).Date()
		if ly == y && lm == m && ld == d {
			s.Hoje++
		}
	}

	return s
}
