package ports

import (
	"context"

	"github.com/jhoicas/nexus-crm/internal/domain/entity"
)

// InsightService define el puerto de salida hacia el modelo que analiza el inventario.
// Cualquier adaptador (Gemini, Anthropic, mock) debe implementar esta interfaz.
type InsightService interface {
	// GenerateInsights recibe el snapshot {sku, name, stock, min} y devuelve los productos en
	// riesgo y recomendaciones. El contexto debe llevar un timeout.
	// Cualquier fallo (red, respuesta vacía, JSON inválido) se devuelve como error.
	GenerateInsights(ctx context.Context, snapshot []entity.ProductSnapshot) (*entity.Insights, error)
}
