package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/nexus-crm/internal/domain/entity"
)

// ProductRepo consultas de productos (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// List devuelve el catálogo ordenado por SKU.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	query := `
		SELECT id, sku, COALESCE(rfid_tag, ''), name, category, stock, min_stock, price, location, last_counted
		FROM products ORDER BY sku`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, classify("list products", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		var lastCounted *time.Time
		if err := rows.Scan(&p.ID, &p.SKU, &p.RFIDTag, &p.Name, &p.Category, &p.Stock, &p.MinStock,
			&p.Price, &p.Location, &lastCounted); err != nil {
			return nil, classify("scan product", err)
		}
		p.LastCounted = lastCounted
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list products", err)
	}
	return list, nil
}

// Create inserta un producto (usado por el seed). Un RFID vacío se guarda como NULL.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (id, sku, rfid_tag, name, category, stock, min_stock, price, location, last_counted)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query, p.ID, p.SKU, p.RFIDTag, p.Name, p.Category, p.Stock, p.MinStock,
		p.Price, p.Location, p.LastCounted)
	return classify("insert product", err)
}

// SetCountedStock fija stock = counted y last_counted = hoy para cada producto de counts
// en un solo batch. Los IDs que no existen se ignoran.
func (r *ProductRepo) SetCountedStock(ctx context.Context, counts map[string]int) error {
	if len(counts) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for id, counted := range counts {
		batch.Queue(`UPDATE products SET stock = $2, last_counted = CURRENT_DATE WHERE id = $1`, id, counted)
	}
	br := r.q.SendBatch(ctx, batch)
	for range counts {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return classify("update stock", err)
		}
	}
	return classify("update stock", br.Close())
}
