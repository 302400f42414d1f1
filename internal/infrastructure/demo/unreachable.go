package demo

import (
	"context"
	"fmt"

	"github.com/jhoicas/nexus-crm/internal/domain"
	"github.com/jhoicas/nexus-crm/internal/domain/entity"
	"github.com/jhoicas/nexus-crm/internal/domain/repository"
)

var _ repository.CatalogStore = (*UnreachableStore)(nil)

// UnreachableStore ocupa el lugar de un backend que no se pudo abrir al arrancar.
// Toda operación falla con domain.ErrBackendUnreachable; envuelto en FallbackStore las lecturas
// salen del dataset de demostración y las escrituras siguen fallando.
type UnreachableStore struct {
	cause error
}

// NewUnreachableStore construye el store con el error de conexión original.
func NewUnreachableStore(cause error) *UnreachableStore {
	return &UnreachableStore{cause: cause}
}

func (s *UnreachableStore) fail(op string) error {
	return fmt.Errorf("%s: %w: %v", op, domain.ErrBackendUnreachable, s.cause)
}

func (s *UnreachableStore) ListProducts(context.Context) (entity.ProductList, error) {
	return entity.ProductList{}, s.fail("list products")
}

func (s *UnreachableStore) SyncStock(context.Context, string, map[string]int) error {
	return s.fail("sync stock")
}

func (s *UnreachableStore) ListUsers(context.Context) ([]*entity.User, error) {
	return nil, s.fail("list users")
}

func (s *UnreachableStore) CreateUser(context.Context, *entity.User) error {
	return s.fail("create user")
}

func (s *UnreachableStore) DeleteUser(context.Context, string) error {
	return s.fail("delete user")
}

func (s *UnreachableStore) CreateQuotation(context.Context, *entity.Quotation) (string, error) {
	return "", s.fail("create quotation")
}

func (s *UnreachableStore) ListQuotations(context.Context) ([]*entity.Quotation, error) {
	return nil, s.fail("list quotations")
}

func (s *UnreachableStore) GetConfig(context.Context) (*entity.BusinessConfig, error) {
	return nil, s.fail("get config")
}

func (s *UnreachableStore) SaveConfig(context.Context, *entity.BusinessConfig) error {
	return s.fail("save config")
}
