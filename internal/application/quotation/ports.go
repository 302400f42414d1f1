package quotation

import (
	"context"
	"time"

	"github.com/jhoicas/nexus-crm/internal/domain/entity"
	"github.com/jhoicas/nexus-crm/internal/domain/quotation"
	"github.com/jhoicas/nexus-crm/pkg/money"
)

// CatalogReader catálogo cargado. Lo implementa *usecase.ProductUseCase.
type CatalogReader interface {
	Catalog(ctx context.Context) ([]*entity.Product, bool, error)
}

// ConfigSource configuración vigente del negocio. Lo implementa *usecase.ConfigUseCase.
type ConfigSource interface {
	Effective(ctx context.Context) entity.BusinessConfig
}

// Document datos que necesita el generador para imprimir una cotización.
type Document struct {
	Business  entity.BusinessConfig
	Customer  entity.Customer
	Items     []entity.QuotationItem
	Totals    quotation.Totals
	ShareURL  string // vacío si el cliente no tiene teléfono
	IssuedAt  time.Time
	Formatter *money.Formatter
}

// PDFGenerator genera la versión imprimible de una cotización.
type PDFGenerator interface {
	GenerateQuotationPDF(ctx context.Context, doc Document) ([]byte, error)
}
