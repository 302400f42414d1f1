package inventory

import (
	"sort"

	"github.com/jhoicas/nexus-crm/internal/domain/entity"
)

// Discrepancy compara el stock del sistema con lo contado para un producto.
type Discrepancy struct {
	ProductID   string
	SKU         string
	Name        string
	SystemStock int
	Counted     int
	Difference  int // Counted - SystemStock
}

// Discrepancies construye el reporte de diferencias solo para los productos presentes
// en progress (un conteo parcial no dice nada de lo que no se contó).
// Los IDs sin producto en el catálogo se reportan con SystemStock 0 y sin SKU.
// El orden es por SKU y luego por ID, para que el reporte sea estable.
func Discrepancies(progress map[string]int, products []*entity.Product) []Discrepancy {
	out := make([]Discrepancy, 0, len(progress))
	for id, counted := range progress {
		d := Discrepancy{ProductID: id, Counted: counted}
		if p, ok := FindByID(id, products); ok {
			d.SKU = p.SKU
			d.Name = p.Name
			d.SystemStock = p.Stock
		}
		d.Difference = d.Counted - d.SystemStock
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SKU != out[j].SKU {
			return out[i].SKU < out[j].SKU
		}
		return out[i].ProductID < out[j].ProductID
	})
	return out
}
