package inventory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nexus-crm/internal/application/dto"
	appinventory "github.com/jhoicas/nexus-crm/internal/application/inventory"
	"github.com/jhoicas/nexus-crm/internal/application/usecase"
	"github.com/jhoicas/nexus-crm/internal/domain"
	"github.com/jhoicas/nexus-crm/internal/domain/entity"
)

// memStore catálogo en memoria que aplica SyncStock como lo haría el store real.
type memStore struct {
	mu        sync.Mutex
	products  []*entity.Product
	syncErr   error
	syncCalls []map[string]int
	syncUser  string
}

func (s *memStore) ListProducts(context.Context) (entity.ProductList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.Product, 0, len(s.products))
	for _, p := range s.products {
		cp := *p
		out = append(out, &cp)
	}
	return entity.ProductList{Products: out}, nil
}

func (s *memStore) SyncStock(_ context.Context, userID string, counts map[string]int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncCalls = append(s.syncCalls, counts)
	s.syncUser = userID
	if s.syncErr != nil {
		return s.syncErr
	}
	for _, p := range s.products {
		if n, ok := counts[p.ID]; ok {
			p.Stock = n
		}
	}
	return nil
}

func (s *memStore) stockOf(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p.Stock
		}
	}
	return -1
}

var (
	warehouse = &entity.User{ID: "u2", Role: entity.RoleWarehouse}
	manager   = &entity.User{ID: "u3", Role: entity.RoleManager}
)

func newCount(t *testing.T) (*appinventory.CountUseCase, *memStore) {
	t.Helper()
	store := &memStore{products: []*entity.Product{
		{ID: "p1", SKU: "NX-001", RFIDTag: "RFID-1001", Name: "Laptop", Stock: 15, Price: decimal.NewFromInt(1200)},
		{ID: "p2", SKU: "NX-002", Name: "Monitor", Stock: 3, Price: decimal.NewFromInt(450)},
		{ID: "p3", SKU: "NX-003", Name: "Teclado", Stock: 45, Price: decimal.NewFromInt(89)},
	}}
	catalog := usecase.NewProductUseCase(store, nil)
	return appinventory.NewCountUseCase(catalog, store, nil), store
}

func TestCount_ScanSinConteoSoloMuestra(t *testing.T) {
	uc, _ := newCount(t)
	got, err := uc.Scan(context.Background(), warehouse, "NX-001")
	require.NoError(t, err)
	assert.Equal(t, dto.ScanModeDisplay, got.Mode)
	assert.Equal(t, "Laptop", got.Product.Name)
	assert.Zero(t, got.Counted)
}

func TestCount_FlujoCompleto(t *testing.T) {
	uc, _ := newCount(t)
	ctx := context.Background()

	s, err := uc.Start(ctx, warehouse, dto.StartCountRequest{Type: entity.CountTypePartial})
	require.NoError(t, err)
	assert.True(t, s.Active)
	assert.Equal(t, "u2", s.StartedBy)

	for _, code := range []string{"NX-001", "RFID-1001", "NX-001"} {
		got, err := uc.Scan(ctx, warehouse, code)
		require.NoError(t, err)
		assert.Equal(t, dto.ScanModeCount, got.Mode)
	}
	_, err = uc.Scan(ctx, warehouse, "nope")
	assert.ErrorIs(t, err, domain.ErrCodeNotRecognized)

	m, err := uc.ManualCapture(ctx, warehouse, dto.ManualCaptureRequest{ProductID: "p2"})
	require.NoError(t, err)
	assert.Equal(t, 1, m.Counted)

	cur, err := uc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, cur.TotalScanned)
	require.Len(t, cur.Lines, 2)
	assert.Equal(t, dto.CountLineDTO{ProductID: "p1", SKU: "NX-001", Name: "Laptop", SystemStock: 15, Counted: 3, Difference: -12}, cur.Lines[0])
}

// Un commit parcial envía exactamente lo contado y solo cambia esos productos.
func TestCount_CommitParcial(t *testing.T) {
	uc, store := newCount(t)
	ctx := context.Background()
	_, err := uc.Start(ctx, warehouse, dto.StartCountRequest{Type: entity.CountTypePartial})
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, err = uc.Scan(ctx, warehouse, "NX-001")
		require.NoError(t, err)
	}
	_, err = uc.ManualCapture(ctx, warehouse, dto.ManualCaptureRequest{ProductID: "p2"})
	require.NoError(t, err)

	res, err := uc.Commit(ctx, warehouse)
	require.NoError(t, err)

	require.Len(t, store.syncCalls, 1)
	assert.Equal(t, map[string]int{"p1": 5, "p2": 1}, store.syncCalls[0])
	assert.Equal(t, "u2", store.syncUser)
	assert.Equal(t, 5, store.stockOf("p1"))
	assert.Equal(t, 1, store.stockOf("p2"))
	assert.Equal(t, 45, store.stockOf("p3"), "los productos no contados no se tocan")

	assert.Equal(t, 2, res.Updated)
	require.Len(t, res.Report, 2)
	assert.Equal(t, 15, res.Report[0].SystemStock)
	assert.Equal(t, -10, res.Report[0].Difference)
	// El catálogo devuelto ya refleja el conteo.
	assert.Equal(t, 5, res.Products.Items[0].Stock)

	cur, err := uc.Current(ctx)
	require.NoError(t, err)
	assert.False(t, cur.Active)
}

// Si la sincronización falla, el conteo sigue activo con su progreso para reintentar.
func TestCount_CommitFallidoConservaConteo(t *testing.T) {
	uc, store := newCount(t)
	ctx := context.Background()
	_, err := uc.Start(ctx, warehouse, dto.StartCountRequest{Type: entity.CountTypeTotal})
	require.NoError(t, err)
	_, err = uc.Scan(ctx, warehouse, "NX-003")
	require.NoError(t, err)

	store.syncErr = domain.ErrBackendUnreachable
	_, err = uc.Commit(ctx, warehouse)
	assert.ErrorIs(t, err, domain.ErrBackendUnreachable)

	cur, err := uc.Current(ctx)
	require.NoError(t, err)
	assert.True(t, cur.Active)
	assert.Equal(t, 1, cur.TotalScanned)
	assert.Equal(t, 45, store.stockOf("p3"))

	// Reintento exitoso.
	store.syncErr = nil
	_, err = uc.Commit(ctx, warehouse)
	require.NoError(t, err)
	assert.Equal(t, 1, store.stockOf("p3"))
}

func TestCount_CommitVacioPermitido(t *testing.T) {
	uc, store := newCount(t)
	ctx := context.Background()
	_, err := uc.Start(ctx, warehouse, dto.StartCountRequest{Type: entity.CountTypeCyclical})
	require.NoError(t, err)

	res, err := uc.Commit(ctx, warehouse)
	require.NoError(t, err)
	assert.Zero(t, res.Updated)
	require.Len(t, store.syncCalls, 1)
	assert.Empty(t, store.syncCalls[0])
}

func TestCount_SoloElDuenoModifica(t *testing.T) {
	uc, _ := newCount(t)
	ctx := context.Background()
	_, err := uc.Start(ctx, warehouse, dto.StartCountRequest{Type: entity.CountTypeTotal})
	require.NoError(t, err)

	_, err = uc.Start(ctx, manager, dto.StartCountRequest{Type: entity.CountTypeTotal})
	assert.ErrorIs(t, err, domain.ErrCountSessionActive)

	_, err = uc.ManualCapture(ctx, manager, dto.ManualCaptureRequest{ProductID: "p1"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.ErrorIs(t, uc.Cancel(ctx, manager), domain.ErrForbidden)
	_, err = uc.Commit(ctx, manager)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// Otro operador que escanea solo ve el producto.
	got, err := uc.Scan(ctx, manager, "NX-001")
	require.NoError(t, err)
	assert.Equal(t, dto.ScanModeDisplay, got.Mode)
}

func TestCount_CancelNoPersiste(t *testing.T) {
	uc, store := newCount(t)
	ctx := context.Background()
	_, err := uc.Start(ctx, warehouse, dto.StartCountRequest{Type: entity.CountTypeTotal})
	require.NoError(t, err)
	_, err = uc.Scan(ctx, warehouse, "NX-001")
	require.NoError(t, err)

	require.NoError(t, uc.Cancel(ctx, warehouse))
	assert.Empty(t, store.syncCalls)
	assert.Equal(t, 15, store.stockOf("p1"))
	assert.ErrorIs(t, uc.Cancel(ctx, warehouse), domain.ErrNoActiveCountSession)
}

func TestCount_ManualCaptureProductoInexistente(t *testing.T) {
	uc, _ := newCount(t)
	ctx := context.Background()
	_, err := uc.Start(ctx, warehouse, dto.StartCountRequest{Type: entity.CountTypeTotal})
	require.NoError(t, err)
	_, err = uc.ManualCapture(ctx, warehouse, dto.ManualCaptureRequest{ProductID: "ghost"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCount_TipoInvalido(t *testing.T) {
	uc, _ := newCount(t)
	_, err := uc.Start(context.Background(), warehouse, dto.StartCountRequest{Type: "DIARIO"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
