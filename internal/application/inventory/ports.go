package inventory

import (
	"context"

	"github.com/jhoicas/nexus-crm/internal/application/dto"
	"github.com/jhoicas/nexus-crm/internal/domain/entity"
)

// CatalogReader catálogo cargado en memoria. Lo implementa *usecase.ProductUseCase.
type CatalogReader interface {
	Catalog(ctx context.Context) ([]*entity.Product, bool, error)
	Reload(ctx context.Context) (*dto.ProductListResponse, error)
}

// StockSyncer puerto de escritura del conteo (subconjunto de repository.ProductRepository).
type StockSyncer interface {
	SyncStock(ctx context.Context, userID string, counts map[string]int) error
}
