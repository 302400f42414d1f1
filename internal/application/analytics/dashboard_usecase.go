// Package analytics contiene los KPIs del dashboard de inventario.
package analytics

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/nexus-crm/internal/application/dto"
	"github.com/jhoicas/nexus-crm/internal/domain/entity"
)

// CatalogReader catálogo cargado. Lo implementa *usecase.ProductUseCase.
type CatalogReader interface {
	Catalog(ctx context.Context) ([]*entity.Product, bool, error)
}

// DashboardUseCase calcula los KPIs sobre el catálogo en memoria; no consulta el store directamente.
type DashboardUseCase struct {
	catalog CatalogReader
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(catalog CatalogReader) *DashboardUseCase {
	return &DashboardUseCase{catalog: catalog}
}

// GetSummary devuelve unidades totales, valorización, productos en stock crítico,
// ubicaciones distintas y unidades por categoría (en el orden en que aparece cada categoría).
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardDTO, error) {
	products, isDemo, err := uc.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return Summarize(products, isDemo), nil
}

// Summarize calcula los KPIs de un conjunto de productos.
func Summarize(products []*entity.Product, isDemo bool) *dto.DashboardDTO {
	out := &dto.DashboardDTO{
		Valuation:  decimal.Zero,
		ByCategory: []dto.CategoryStockDTO{},
		IsDemo:     isDemo,
	}
	locations := map[string]struct{}{}
	catIndex := map[string]int{}

	for _, p := range products {
		out.TotalUnits += p.Stock
		out.Valuation = out.Valuation.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
		if p.IsLowStock() {
			out.LowStockCount++
		}
		if p.Location != "" {
			locations[p.Location] = struct{}{}
		}
		i, ok := catIndex[p.Category]
		if !ok {
			i = len(out.ByCategory)
			catIndex[p.Category] = i
			out.ByCategory = append(out.ByCategory, dto.CategoryStockDTO{Category: p.Category})
		}
		out.ByCategory[i].Units += p.Stock
	}
	out.Locations = len(locations)
	return out
}
