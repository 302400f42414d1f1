package postgres

import (
	"context"

	"github.com/jhoicas/nexus-crm/internal/domain/entity"
)

// QuotationRepo consultas de cotizaciones e ítems.
type QuotationRepo struct {
	q Querier
}

// NewQuotationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewQuotationRepository(q Querier) *QuotationRepo {
	return &QuotationRepo{q: q}
}

// Insert guarda cabecera e ítems. Debe ejecutarse dentro de una tx para que sea atómico.
func (r *QuotationRepo) Insert(ctx context.Context, qt *entity.Quotation) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO quotations (id, customer_name, customer_phone, total, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		qt.ID, qt.CustomerName, qt.CustomerPhone, qt.Total, qt.UserID, qt.CreatedAt)
	if err != nil {
		return classify("insert quotation", err)
	}
	for i, it := range qt.Items {
		_, err := r.q.Exec(ctx, `
			INSERT INTO quotation_items (id, quotation_id, position, product_id, product_name, quantity, unit_price, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			it.ID, qt.ID, i, it.ProductID, it.ProductName, it.Quantity, it.UnitPrice, it.Subtotal)
		if err != nil {
			return classify("insert quotation item", err)
		}
	}
	return nil
}

// List devuelve las cotizaciones (más recientes primero) con sus ítems.
func (r *QuotationRepo) List(ctx context.Context) ([]*entity.Quotation, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, customer_name, customer_phone, total, user_id, created_at
		FROM quotations ORDER BY created_at DESC`)
	if err != nil {
		return nil, classify("list quotations", err)
	}
	var list []*entity.Quotation
	byID := map[string]*entity.Quotation{}
	for rows.Next() {
		var qt entity.Quotation
		if err := rows.Scan(&qt.ID, &qt.CustomerName, &qt.CustomerPhone, &qt.Total, &qt.UserID, &qt.CreatedAt); err != nil {
			rows.Close()
			return nil, classify("scan quotation", err)
		}
		list = append(list, &qt)
		byID[qt.ID] = &qt
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, classify("list quotations", err)
	}
	if len(list) == 0 {
		return list, nil
	}

	items, err := r.q.Query(ctx, `
		SELECT id, quotation_id, product_id, product_name, quantity, unit_price, subtotal
		FROM quotation_items ORDER BY quotation_id, position`)
	if err != nil {
		return nil, classify("list quotation items", err)
	}
	defer items.Close()
	for items.Next() {
		var it entity.QuotationItem
		var quotationID string
		if err := items.Scan(&it.ID, &quotationID, &it.ProductID, &it.ProductName, &it.Quantity, &it.UnitPrice, &it.Subtotal); err != nil {
			return nil, classify("scan quotation item", err)
		}
		if qt, ok := byID[quotationID]; ok {
			qt.Items = append(qt.Items, it)
		}
	}
	if err := items.Err(); err != nil {
		return nil, classify("list quotation items", err)
	}
	return list, nil
}
