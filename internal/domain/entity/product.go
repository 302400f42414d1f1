package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del catálogo.
// SKU es único en todo el catálogo; RFIDTag es un identificador secundario intercambiable con el SKU al escanear.
type Product struct {
	ID          string
	SKU         string
	RFIDTag     string // vacío si el producto no tiene tag
	Name        string
	Category    string
	Stock       int // nunca negativo fuera de un conteo pendiente
	MinStock    int // punto de reorden
	Price       decimal.Decimal
	Location    string
	LastCounted *time.Time
}

// IsLowStock informa si el producto está en o por debajo de su punto de reorden.
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}

// ProductSnapshot vista reducida enviada al servicio de insights.
type ProductSnapshot struct {
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Stock    int    `json:"stock"`
	MinStock int    `json:"min"`
}

// Snapshot reduce el producto a los campos que consume el servicio de insights.
func (p *Product) Snapshot() ProductSnapshot {
	return ProductSnapshot{SKU: p.SKU, Name: p.Name, Stock: p.Stock, MinStock: p.MinStock}
}

// ProductList resultado de listar el catálogo. IsDemoFallback indica que los datos son
// el dataset local de demostración y no el catálogo real; quien lo muestre debe avisarlo.
type ProductList struct {
	Products       []*Product
	IsDemoFallback bool
}
