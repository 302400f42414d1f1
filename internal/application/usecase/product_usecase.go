package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/nexus-crm/internal/application/dto"
	"github.com/jhoicas/nexus-crm/internal/domain/entity"
	"github.com/jhoicas/nexus-crm/internal/domain/inventory"
	"github.com/jhoicas/nexus-crm/internal/domain/repository"
	"github.com/jhoicas/nexus-crm/pkg/logger"
)

// ProductUseCase mantiene la última copia cargada del catálogo.
// Los escaneos, el conteo y el cotizador resuelven contra esa copia; Reload la reemplaza.
type ProductUseCase struct {
	repo repository.ProductRepository
	log  *logger.Logger

	mu       sync.RWMutex
	loaded   bool
	products []*entity.Product
	isDemo   bool
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, log *logger.Logger) *ProductUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ProductUseCase{repo: repo, log: log}
}

// Reload vuelve a leer el catálogo del store y reemplaza la copia local.
// Si falla, la copia anterior se conserva.
func (uc *ProductUseCase) Reload(ctx context.Context) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("catálogo: listar productos: %w", err)
	}
	if list.IsDemoFallback {
		uc.log.Warn().Int("products", len(list.Products)).Msg("catálogo servido desde datos de demostración")
	}

	uc.mu.Lock()
	uc.products = cloneProducts(list.Products)
	uc.isDemo = list.IsDemoFallback
	uc.loaded = true
	uc.mu.Unlock()

	out := dto.NewProductListResponse(list.Products, list.IsDemoFallback)
	return &out, nil
}

// List devuelve el catálogo cargado; lo carga la primera vez.
func (uc *ProductUseCase) List(ctx context.Context) (*dto.ProductListResponse, error) {
	products, isDemo, err := uc.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	out := dto.NewProductListResponse(products, isDemo)
	return &out, nil
}

// Catalog devuelve una copia del catálogo cargado y si es de demostración.
func (uc *ProductUseCase) Catalog(ctx context.Context) ([]*entity.Product, bool, error) {
	uc.mu.RLock()
	if uc.loaded {
		defer uc.mu.RUnlock()
		return cloneProducts(uc.products), uc.isDemo, nil
	}
	uc.mu.RUnlock()

	if _, err := uc.Reload(ctx); err != nil {
		return nil, false, err
	}
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return cloneProducts(uc.products), uc.isDemo, nil
}

// Lookup resuelve un código escaneado contra el catálogo (vista fuera de un conteo).
func (uc *ProductUseCase) Lookup(ctx context.Context, code string) (*dto.ProductResponse, error) {
	products, _, err := uc.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	p, err := inventory.ResolveScan(code, products)
	if err != nil {
		return nil, err
	}
	out := dto.NewProductResponse(p)
	return &out, nil
}

func cloneProducts(in []*entity.Product) []*entity.Product {
	out := make([]*entity.Product, 0, len(in))
	for _, p := range in {
		if p == nil {
			continue
		}
		cp := *p
		if p.LastCounted != nil {
			t := *p.LastCounted
			cp.LastCounted = &t
		}
		out = append(out, &cp)
	}
	return out
}
