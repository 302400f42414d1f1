package quotation

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/nexus-crm/internal/domain"
	"github.com/jhoicas/nexus-crm/internal/domain/entity"
)

// DefaultTaxPercentage tasa usada cuando no hay BusinessConfig disponible (IVA 16 %).
var DefaultTaxPercentage = decimal.NewFromInt(16)

var hundred = decimal.NewFromInt(100)

// Totals montos calculados de un borrador. Precisión completa; se redondea solo al mostrar.
type Totals struct {
	Subtotal      decimal.Decimal
	TaxPercentage decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
}

// Draft cotización en edición: cliente y líneas en orden de inserción, como mucho una por producto.
// No es seguro para uso concurrente.
type Draft struct {
	Customer entity.Customer
	items    []entity.QuotationItem
	newID    func() string
}

// NewDraft crea un borrador vacío.
func NewDraft() *Draft {
	return &Draft{newID: uuid.NewString}
}

// Items copia de las líneas en orden de inserción.
func (d *Draft) Items() []entity.QuotationItem {
	out := make([]entity.QuotationItem, len(d.items))
	copy(out, d.items)
	return out
}

// Len cantidad de líneas.
func (d *Draft) Len() int { return len(d.items) }

// AddItem agrega una unidad del producto. Si ya hay línea para el producto suma 1;
// si no, crea la línea tomando nombre y precio actuales del producto.
func (d *Draft) AddItem(p *entity.Product) (entity.QuotationItem, error) {
	if p == nil || p.ID == "" {
		return entity.QuotationItem{}, domain.ErrInvalidInput
	}
	for i := range d.items {
		if d.items[i].ProductID == p.ID {
			d.items[i].Quantity++
			d.items[i].Subtotal = subtotal(d.items[i].UnitPrice, d.items[i].Quantity)
			return d.items[i], nil
		}
	}
	newID := d.newID
	if newID == nil {
		newID = uuid.NewString
	}
	item := entity.QuotationItem{
		ID:          newID(),
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    1,
		UnitPrice:   p.Price,
		Subtotal:    p.Price,
	}
	d.items = append(d.items, item)
	return item, nil
}

// RemoveItem elimina la línea. Devuelve domain.ErrNotFound si no existe.
func (d *Draft) RemoveItem(itemID string) error {
	for i := range d.items {
		if d.items[i].ID == itemID {
			d.items = append(d.items[:i], d.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// SetQuantity fija la cantidad de la línea y recalcula su subtotal.
// Con qty < 1 no hace nada (la línea conserva su cantidad) y devuelve false.
func (d *Draft) SetQuantity(itemID string, qty int) (bool, error) {
	for i := range d.items {
		if d.items[i].ID != itemID {
			continue
		}
		if qty < 1 {
			return false, nil
		}
		d.items[i].Quantity = qty
		d.items[i].Subtotal = subtotal(d.items[i].UnitPrice, qty)
		return true, nil
	}
	return false, domain.ErrNotFound
}

// Clear vacía cliente y líneas.
func (d *Draft) Clear() {
	d.items = nil
	d.Customer = entity.Customer{}
}

// Totals suma los subtotales y aplica taxPercentage (ej. 16 para 16 %).
func (d *Draft) Totals(taxPercentage decimal.Decimal) Totals {
	return ComputeTotals(d.items, taxPercentage)
}

// ComputeTotals calcula subtotal, impuesto y total de un conjunto de líneas.
func ComputeTotals(items []entity.QuotationItem, taxPercentage decimal.Decimal) Totals {
	sub := decimal.Zero
	for _, it := range items {
		sub = sub.Add(it.Subtotal)
	}
	tax := sub.Mul(taxPercentage).Div(hundred)
	return Totals{
		Subtotal:      sub,
		TaxPercentage: taxPercentage,
		Tax:           tax,
		Total:         sub.Add(tax),
	}
}

// Validate comprueba que el borrador se pueda guardar: cliente con nombre y al menos una línea.
func (d *Draft) Validate() error {
	if d.Customer.Name == "" {
		return domain.ErrValidation
	}
	if len(d.items) == 0 {
		return domain.ErrValidation
	}
	return nil
}

func subtotal(unit decimal.Decimal, qty int) decimal.Decimal {
	return unit.Mul(decimal.NewFromInt(int64(qty)))
}
