package dto

import "github.com/shopspring/decimal"

// DashboardDTO respuesta de GET /api/dashboard: KPIs calculados sobre el catálogo cargado.
type DashboardDTO struct {
	TotalUnits    int                `json:"total_units"`
	Valuation     decimal.Decimal    `json:"valuation"` // Σ stock × precio
	LowStockCount int                `json:"low_stock_count"`
	Locations     int                `json:"locations"` // ubicaciones distintas
	ByCategory    []CategoryStockDTO `json:"by_category"`
	IsDemo        bool               `json:"is_demo"`
}

// CategoryStockDTO unidades en stock por categoría.
type CategoryStockDTO struct {
	Category string `json:"category"`
	Units    int    `json:"units"`
}
