// Package inventory contiene los casos de uso del conteo físico.
package inventory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/nexus-crm/internal/application/dto"
	"github.com/jhoicas/nexus-crm/internal/domain"
	"github.com/jhoicas/nexus-crm/internal/domain/entity"
	"github.com/jhoicas/nexus-crm/internal/domain/inventory"
	"github.com/jhoicas/nexus-crm/pkg/logger"
)

// CountUseCase orquesta el conteo físico: abrir, escanear, capturar a mano, cancelar y
// sincronizar con el catálogo. Hay un solo conteo activo en el proceso y solo quien lo abrió
// puede modificarlo. El mutex se mantiene durante la sincronización, así que como mucho hay
// un commit en vuelo y los escaneos esperan a que termine.
type CountUseCase struct {
	catalog CatalogReader
	store   StockSyncer
	log     *logger.Logger
	now     func() time.Time

	mu      sync.Mutex
	counter inventory.Counter
}

// NewCountUseCase construye el caso de uso.
func NewCountUseCase(catalog CatalogReader, store StockSyncer, log *logger.Logger) *CountUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CountUseCase{catalog: catalog, store: store, log: log.Named("count"), now: time.Now}
}

// Start abre un conteo del tipo indicado a nombre del operador.
func (uc *CountUseCase) Start(ctx context.Context, actor *entity.User, in dto.StartCountRequest) (*dto.CountSessionResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.counter.Start(in.Type, actor.ID, uc.now()); err != nil {
		return nil, err
	}
	uc.log.Info().Str("type", in.Type).Str("user_id", actor.ID).Msg("conteo iniciado")
	return uc.statusLocked(ctx)
}

// Current devuelve el estado del conteo (Active=false si no hay ninguno).
func (uc *CountUseCase) Current(ctx context.Context) (*dto.CountSessionResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.statusLocked(ctx)
}

// Scan procesa un código escaneado. Si el operador tiene un conteo abierto suma una unidad;
// en cualquier otro caso solo muestra el producto.
func (uc *CountUseCase) Scan(ctx context.Context, actor *entity.User, code string) (*dto.ScanResponse, error) {
	products, _, err := uc.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	s := uc.counter.Active()
	if s == nil || s.StartedBy != actor.ID {
		p, err := inventory.ResolveScan(code, products)
		if err != nil {
			return nil, err
		}
		return &dto.ScanResponse{Mode: dto.ScanModeDisplay, Product: dto.NewProductResponse(p)}, nil
	}

	p, n, err := uc.counter.RecordScan(code, products)
	if err != nil {
		uc.log.Debug().Str("code", code).Msg("código no reconocido durante el conteo")
		return nil, err
	}
	return &dto.ScanResponse{Mode: dto.ScanModeCount, Product: dto.NewProductResponse(p), Counted: n}, nil
}

// ManualCapture suma una unidad al producto sin escanear. El producto debe existir en el catálogo.
func (uc *CountUseCase) ManualCapture(ctx context.Context, actor *entity.User, in dto.ManualCaptureRequest) (*dto.ScanResponse, error) {
	products, _, err := uc.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.ownerLocked(actor); err != nil {
		return nil, err
	}
	p, ok := inventory.FindByID(in.ProductID, products)
	if !ok {
		return nil, domain.ErrNotFound
	}
	n, err := uc.counter.ManualCapture(p.ID)
	if err != nil {
		return nil, err
	}
	return &dto.ScanResponse{Mode: dto.ScanModeCount, Product: dto.NewProductResponse(p), Counted: n}, nil
}

// Cancel descarta el conteo sin tocar el catálogo.
func (uc *CountUseCase) Cancel(_ context.Context, actor *entity.User) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.ownerLocked(actor); err != nil {
		return err
	}
	if err := uc.counter.Cancel(); err != nil {
		return err
	}
	uc.log.Info().Str("user_id", actor.ID).Msg("conteo cancelado")
	return nil
}

// Commit envía el progreso al store. Solo si el store confirma el conteo se cierra;
// si falla, el conteo sigue activo con su progreso intacto para reintentar.
// Tras el éxito recarga el catálogo y devuelve el reporte de diferencias contra el stock previo.
func (uc *CountUseCase) Commit(ctx context.Context, actor *entity.User) (*dto.CommitCountResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.ownerLocked(actor); err != nil {
		return nil, err
	}
	before, _, err := uc.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	progress := uc.counter.Snapshot()
	if err := uc.store.SyncStock(ctx, actor.ID, progress); err != nil {
		uc.log.Error().Err(err).Int("products", len(progress)).Msg("no se pudo sincronizar el conteo")
		return nil, fmt.Errorf("conteo: sincronizar stock: %w", err)
	}
	if err := uc.counter.Complete(); err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", actor.ID).Int("products", len(progress)).Msg("conteo sincronizado")

	out := &dto.CommitCountResponse{
		Updated: len(progress),
		Report:  toCountLines(inventory.Discrepancies(progress, before)),
	}
	reloaded, err := uc.catalog.Reload(ctx)
	if err != nil {
		// El stock ya se guardó; se devuelve la copia previa con los conteos aplicados.
		uc.log.Warn().Err(err).Msg("no se pudo recargar el catálogo tras el conteo")
		out.Products = dto.NewProductListResponse(applyCounts(before, progress, uc.now()), false)
		return out, nil
	}
	out.Products = *reloaded
	return out, nil
}

func (uc *CountUseCase) ownerLocked(actor *entity.User) error {
	s := uc.counter.Active()
	if s == nil {
		return domain.ErrNoActiveCountSession
	}
	if actor == nil || s.StartedBy != actor.ID {
		return domain.ErrForbidden
	}
	return nil
}

func (uc *CountUseCase) statusLocked(ctx context.Context) (*dto.CountSessionResponse, error) {
	s := uc.counter.Active()
	if s == nil {
		return &dto.CountSessionResponse{Lines: []dto.CountLineDTO{}}, nil
	}
	products, _, err := uc.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	total := 0
	for _, n := range s.Progress {
		total += n
	}
	startedAt := s.StartedAt
	return &dto.CountSessionResponse{
		Active:       true,
		Type:         s.Type,
		StartedAt:    &startedAt,
		StartedBy:    s.StartedBy,
		TotalScanned: total,
		Lines:        toCountLines(inventory.Discrepancies(s.Progress, products)),
	}, nil
}

func toCountLines(ds []inventory.Discrepancy) []dto.CountLineDTO {
	out := make([]dto.CountLineDTO, 0, len(ds))
	for _, d := range ds {
		out = append(out, dto.CountLineDTO{
			ProductID:   d.ProductID,
			SKU:         d.SKU,
			Name:        d.Name,
			SystemStock: d.SystemStock,
			Counted:     d.Counted,
			Difference:  d.Difference,
		})
	}
	return out
}

func applyCounts(products []*entity.Product, counts map[string]int, now time.Time) []*entity.Product {
	for _, p := range products {
		if n, ok := counts[p.ID]; ok {
			p.Stock = n
			t := now
			p.LastCounted = &t
		}
	}
	return products
}
