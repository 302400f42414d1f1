package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuotationItem línea de cotización. ProductName y UnitPrice son copias tomadas al agregar;
// un cambio posterior de precio en el producto no afecta la línea.
type QuotationItem struct {
	ID          string
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// Quotation cotización persistida.
type Quotation struct {
	ID            string
	CustomerName  string
	CustomerPhone string
	Total         decimal.Decimal
	UserID        string
	Items         []QuotationItem
	CreatedAt     time.Time
}

// Customer destinatario de una cotización.
type Customer struct {
	Name  string
	Phone string
}
