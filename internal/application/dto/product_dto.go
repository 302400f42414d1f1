package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/nexus-crm/internal/domain/entity"
)

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	RFIDTag     string          `json:"rfid_tag,omitempty"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Stock       int             `json:"stock"`
	MinStock    int             `json:"min_stock"`
	Price       decimal.Decimal `json:"price"`
	Location    string          `json:"location"`
	LastCounted string          `json:"last_counted,omitempty"` // YYYY-MM-DD
	LowStock    bool            `json:"low_stock"`
}

// ProductListResponse catálogo completo. IsDemo=true si son datos de demostración:
// el cliente debe mostrar un aviso.
type ProductListResponse struct {
	Items  []ProductResponse `json:"items"`
	IsDemo bool              `json:"is_demo"`
}

// ScanRequest código leído por el escáner (SKU o tag RFID).
type ScanRequest struct {
	Code string `json:"code"`
}

// Modos de respuesta de un escaneo.
const (
	ScanModeDisplay = "display"
	ScanModeCount   = "count"
)

// ScanResponse resultado de un escaneo. Sin conteo activo solo muestra el producto;
// con conteo activo Counted lleva la cantidad acumulada.
type ScanResponse struct {
	Mode    string          `json:"mode"`
	Product ProductResponse `json:"product"`
	Counted int             `json:"counted,omitempty"`
}

// NewProductResponse convierte la entidad a su salida HTTP.
func NewProductResponse(p *entity.Product) ProductResponse {
	r := ProductResponse{
		ID:       p.ID,
		SKU:      p.SKU,
		RFIDTag:  p.RFIDTag,
		Name:     p.Name,
		Category: p.Category,
		Stock:    p.Stock,
		MinStock: p.MinStock,
		Price:    p.Price,
		Location: p.Location,
		LowStock: p.IsLowStock(),
	}
	if p.LastCounted != nil {
		r.LastCounted = p.LastCounted.Format("2006-01-02")
	}
	return r
}

// NewProductListResponse convierte el catálogo completo.
func NewProductListResponse(products []*entity.Product, isDemo bool) ProductListResponse {
	items := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, NewProductResponse(p))
	}
	return ProductListResponse{Items: items, IsDemo: isDemo}
}
