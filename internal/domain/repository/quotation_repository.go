package repository

import (
	"context"

	"github.com/jhoicas/nexus-crm/internal/domain/entity"
)

// QuotationRepository persistencia de cotizaciones.
type QuotationRepository interface {
	// CreateQuotation guarda cabecera e ítems y devuelve el ID generado.
	CreateQuotation(ctx context.Context, q *entity.Quotation) (string, error)
	ListQuotations(ctx context.Context) ([]*entity.Quotation, error)
}
