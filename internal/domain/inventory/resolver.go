package inventory

import (
	"github.com/jhoicas/nexus-crm/internal/domain"
	"github.com/jhoicas/nexus-crm/internal/domain/entity"
)

// ResolveScan busca el producto cuyo SKU o tag RFID coincide exactamente con code
// (sensible a mayúsculas). Gana la primera coincidencia. Sin coincidencia devuelve
// domain.ErrCodeNotRecognized. No tiene efectos secundarios.
func ResolveScan(code string, products []*entity.Product) (*entity.Product, error) {
	if code == "" {
		return nil, domain.ErrCodeNotRecognized
	}
	for _, p := range products {
		if p == nil {
			continue
		}
		if p.SKU == code || (p.RFIDTag != "" && p.RFIDTag == code) {
			return p, nil
		}
	}
	return nil, domain.ErrCodeNotRecognized
}

// FindByID busca un producto por ID en la colección.
func FindByID(id string, products []*entity.Product) (*entity.Product, bool) {
	for _, p := range products {
		if p != nil && p.ID == id {
			return p, true
		}
	}
	return nil, false
}
