package dto

import "github.com/shopspring/decimal"

// BusinessConfigDTO configuración del tenant (entrada y salida de /api/config).
type BusinessConfigDTO struct {
	Name          string          `json:"name"`
	Slogan        string          `json:"slogan"`
	Logo          string          `json:"logo"`
	TaxID         string          `json:"tax_id"`
	Currency      string          `json:"currency"`
	TaxPercentage decimal.Decimal `json:"tax_percentage"`
	Address       string          `json:"address"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	Footer        string          `json:"footer"`
}
