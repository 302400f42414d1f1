package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/nexus-crm/internal/domain/entity"
	"github.com/jhoicas/nexus-crm/internal/domain/repository"
)

var _ repository.CatalogStore = (*CatalogStore)(nil)

// CatalogStore implementa el Catalog Store sobre PostgreSQL.
// Las escrituras de varias filas (cotización con ítems, sincronización de conteo) van en una transacción.
type CatalogStore struct {
	pool *pgxpool.Pool
	tx   *TxRunner
}

// NewCatalogStore construye el store con el pool.
func NewCatalogStore(pool *pgxpool.Pool) *CatalogStore {
	return &CatalogStore{pool: pool, tx: NewTxRunner(pool)}
}

// ListProducts devuelve el catálogo real (nunca es de demostración).
func (s *CatalogStore) ListProducts(ctx context.Context) (entity.ProductList, error) {
	products, err := NewProductRepository(s.pool).List(ctx)
	if err != nil {
		return entity.ProductList{}, err
	}
	return entity.ProductList{Products: products}, nil
}

// SyncStock aplica el conteo en una sola transacción: o se actualizan todos o ninguno.
func (s *CatalogStore) SyncStock(ctx context.Context, _ string, counts map[string]int) error {
	return s.tx.Run(ctx, func(q Querier) error {
		return NewProductRepository(q).SetCountedStock(ctx, counts)
	})
}

func (s *CatalogStore) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return NewUserRepository(s.pool).List(ctx)
}

func (s *CatalogStore) CreateUser(ctx context.Context, u *entity.User) error {
	return NewUserRepository(s.pool).Create(ctx, u)
}

func (s *CatalogStore) DeleteUser(ctx context.Context, id string) error {
	return NewUserRepository(s.pool).Delete(ctx, id)
}

// CreateQuotation genera IDs para la cabecera y los ítems sin ID y guarda todo en una tx.
func (s *CatalogStore) CreateQuotation(ctx context.Context, q *entity.Quotation) (string, error) {
	cp := *q
	cp.ID = uuid.New().String()
	cp.Items = make([]entity.QuotationItem, len(q.Items))
	for i, it := range q.Items {
		if it.ID == "" {
			it.ID = uuid.New().String()
		}
		cp.Items[i] = it
	}
	err := s.tx.Run(ctx, func(tx Querier) error {
		return NewQuotationRepository(tx).Insert(ctx, &cp)
	})
	if err != nil {
		return "", err
	}
	return cp.ID, nil
}

func (s *CatalogStore) ListQuotations(ctx context.Context) ([]*entity.Quotation, error) {
	return NewQuotationRepository(s.pool).List(ctx)
}

func (s *CatalogStore) GetConfig(ctx context.Context) (*entity.BusinessConfig, error) {
	return NewConfigRepository(s.pool).Get(ctx)
}

func (s *CatalogStore) SaveConfig(ctx context.Context, c *entity.BusinessConfig) error {
	return NewConfigRepository(s.pool).Save(ctx, c)
}
