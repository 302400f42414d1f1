package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/nexus-crm/internal/domain/entity"
)

// CustomerRequest datos del cliente de la cotización.
type CustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// AddItemRequest agrega un producto al borrador, por ID o por código escaneado.
type AddItemRequest struct {
	ProductID string `json:"product_id"`
	Code      string `json:"code"`
}

// UpdateQuantityRequest nueva cantidad de una línea.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// QuotationItemDTO línea de cotización.
type QuotationItemDTO struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// TotalsDisplayDTO montos ya formateados según el locale y la moneda del tenant.
type TotalsDisplayDTO struct {
	Subtotal string `json:"subtotal"`
	Tax      string `json:"tax"`
	Total    string `json:"total"`
}

// DraftResponse borrador de cotización del operador con sus totales.
type DraftResponse struct {
	Customer      CustomerRequest    `json:"customer"`
	Items         []QuotationItemDTO `json:"items"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	TaxPercentage decimal.Decimal    `json:"tax_percentage"`
	Tax           decimal.Decimal    `json:"tax"`
	Total         decimal.Decimal    `json:"total"`
	Display       TotalsDisplayDTO   `json:"display"`
}

// SaveQuotationResponse ID generado por el store.
type SaveQuotationResponse struct {
	ID    string          `json:"id"`
	Total decimal.Decimal `json:"total"`
}

// ShareResponse mensaje y deep link de WhatsApp.
type ShareResponse struct {
	Phone string `json:"phone"`
	Text  string `json:"text"`
	URL   string `json:"url"`
}

// QuotationResponse cotización persistida.
type QuotationResponse struct {
	ID            string             `json:"id"`
	CustomerName  string             `json:"customer_name"`
	CustomerPhone string             `json:"customer_phone"`
	Total         decimal.Decimal    `json:"total"`
	UserID        string             `json:"user_id"`
	Items         []QuotationItemDTO `json:"items"`
	CreatedAt     time.Time          `json:"created_at"`
}

// NewQuotationItemDTO convierte una línea de cotización.
func NewQuotationItemDTO(it entity.QuotationItem) QuotationItemDTO {
	return QuotationItemDTO{
		ID:          it.ID,
		ProductID:   it.ProductID,
		ProductName: it.ProductName,
		Quantity:    it.Quantity,
		UnitPrice:   it.UnitPrice,
		Subtotal:    it.Subtotal,
	}
}
