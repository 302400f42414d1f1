package repository

import (
	"context"

	"github.com/jhoicas/nexus-crm/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// ListProducts devuelve el catálogo completo. IsDemoFallback=true si los datos son el
	// dataset de demostración y no el catálogo real.
	ListProducts(ctx context.Context) (entity.ProductList, error)
	// SyncStock fija stock = counted y last_counted = hoy para cada producto presente en counts.
	// Los productos ausentes no se tocan. Sobrescritura ciega: gana la última escritura.
	SyncStock(ctx context.Context, userID string, counts map[string]int) error
}
