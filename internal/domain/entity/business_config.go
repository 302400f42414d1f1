package entity

import "github.com/shopspring/decimal"

// BusinessConfig configuración del tenant: marca, datos fiscales y contacto.
// Parametriza el documento de cotización y la tasa de impuesto.
type BusinessConfig struct {
	Name          string
	Slogan        string
	Logo          string // URL
	TaxID         string
	Currency      string // ISO 4217, ej. MXN
	TaxPercentage decimal.Decimal
	Address       string
	Phone         string
	Email         string
	Footer        string
}
