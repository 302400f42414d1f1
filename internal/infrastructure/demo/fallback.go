package demo

import (
	"context"
	"errors"

	"github.com/jhoicas/nexus-crm/internal/domain"
	"github.com/jhoicas/nexus-crm/internal/domain/entity"
	"github.com/jhoicas/nexus-crm/internal/domain/repository"
	"github.com/jhoicas/nexus-crm/pkg/logger"
)

var _ repository.CatalogStore = (*FallbackStore)(nil)

// FallbackStore envuelve el store real. Con el modo demo activo, una lectura que falla por
// conectividad se sirve desde el dataset local. Las escrituras siempre van al store real.
type FallbackStore struct {
	repository.CatalogStore
	demo    *Store
	enabled bool
	log     *logger.Logger
}

// NewFallbackStore crea el adaptador. Con enabled=false se comporta igual que primary.
func NewFallbackStore(primary repository.CatalogStore, demo *Store, enabled bool, log *logger.Logger) *FallbackStore {
	if log == nil {
		log = logger.Nop()
	}
	if demo == nil {
		demo = NewStore()
	}
	return &FallbackStore{CatalogStore: primary, demo: demo, enabled: enabled, log: log.Named("catalog_fallback")}
}

func (f *FallbackStore) useDemo(op string, err error) bool {
	if !f.enabled || !errors.Is(err, domain.ErrBackendUnreachable) {
		return false
	}
	f.log.Warn().Err(err).Str("op", op).Msg("catálogo no disponible, usando datos de demostración")
	return true
}

func (f *FallbackStore) ListProducts(ctx context.Context) (entity.ProductList, error) {
	list, err := f.CatalogStore.ListProducts(ctx)
	if err != nil && f.useDemo("products", err) {
		return f.demo.ListProducts(ctx)
	}
	return list, err
}

func (f *FallbackStore) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := f.CatalogStore.ListUsers(ctx)
	if err != nil && f.useDemo("users", err) {
		return f.demo.ListUsers(ctx)
	}
	return users, err
}

func (f *FallbackStore) ListQuotations(ctx context.Context) ([]*entity.Quotation, error) {
	qs, err := f.CatalogStore.ListQuotations(ctx)
	if err != nil && f.useDemo("quotations", err) {
		return f.demo.ListQuotations(ctx)
	}
	return qs, err
}

func (f *FallbackStore) GetConfig(ctx context.Context) (*entity.BusinessConfig, error) {
	cfg, err := f.CatalogStore.GetConfig(ctx)
	if err != nil && f.useDemo("config", err) {
		return f.demo.GetConfig(ctx)
	}
	return cfg, err
}
