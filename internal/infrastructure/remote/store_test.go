package remote_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nexus-crm/internal/domain"
	"github.com/jhoicas/nexus-crm/internal/domain/entity"
	"github.com/jhoicas/nexus-crm/internal/infrastructure/remote"
	"github.com/jhoicas/nexus-crm/pkg/config"
)

// recorded petición recibida por el servidor de prueba.
type recorded struct {
	method string
	action string
	query  map[string]string
	body   map[string]any
}

func newServer(t *testing.T, handler func(action string) (int, string)) (*remote.Store, *[]recorded) {
	t.Helper()
	var calls []recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recorded{method: r.Method, action: r.URL.Query().Get("action"), query: map[string]string{}}
		for k := range r.URL.Query() {
			rec.query[k] = r.URL.Query().Get(k)
		}
		if r.Body != nil {
			raw, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(raw, &rec.body)
		}
		calls = append(calls, rec)
		status, body := handler(rec.action)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return remote.NewStore(config.CatalogConfig{RemoteURL: srv.URL + "/api.php", TimeoutSeconds: 2}), &calls
}

func TestListProducts_FilasSQL(t *testing.T) {
	// PDO devuelve números como texto y columnas en snake_case.
	store, calls := newServer(t, func(string) (int, string) {
		return 200, `[{"id":"1","sku":"NX-001","name":"Laptop Pro 16","category":"Electrónica","stock":"15",
			"min_stock":"5","price":"1200.00","location":"Pasillo A-1","rfid_tag":"RFID-1001","last_counted":"2026-03-01"},
			{"id":2,"sku":"NX-002","name":"Monitor","category":"Electrónica","stock":3,"minStock":10,"price":450,
			"location":"Pasillo A-2","rfidTag":null,"lastCounted":null}]`
	})

	list, err := store.ListProducts(context.Background())
	require.NoError(t, err)
	assert.False(t, list.IsDemoFallback)
	require.Len(t, list.Products, 2)

	p := list.Products[0]
	assert.Equal(t, "1", p.ID)
	assert.Equal(t, 15, p.Stock)
	assert.Equal(t, 5, p.MinStock)
	assert.True(t, decimal.NewFromInt(1200).Equal(p.Price))
	assert.Equal(t, "RFID-1001", p.RFIDTag)
	require.NotNil(t, p.LastCounted)
	assert.Equal(t, "2026-03-01", p.LastCounted.Format("2006-01-02"))

	q := list.Products[1]
	assert.Equal(t, "2", q.ID)
	assert.Equal(t, 10, q.MinStock)
	assert.Empty(t, q.RFIDTag)
	assert.Nil(t, q.LastCounted)

	require.Len(t, *calls, 1)
	assert.Equal(t, http.MethodGet, (*calls)[0].method)
	assert.Equal(t, "products", (*calls)[0].action)
}

func TestListProducts_BackendCaido(t *testing.T) {
	cases := map[string]func(string) (int, string){
		"5xx":             func(string) (int, string) { return 502, "bad gateway" },
		"error de conexión a la base": func(string) (int, string) {
			return 200, `{"error":"Conexión fallida: SQLSTATE[HY000] [2002]"}`
		},
		"json inválido": func(string) (int, string) { return 200, `<html>` },
	}
	for name, h := range cases {
		t.Run(name, func(t *testing.T) {
			store, _ := newServer(t, h)
			_, err := store.ListProducts(context.Background())
			assert.ErrorIs(t, err, domain.ErrBackendUnreachable)
		})
	}
}

func TestListProducts_SinServidor(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	store := remote.NewStore(config.CatalogConfig{RemoteURL: url, TimeoutSeconds: 1})
	_, err := store.ListProducts(context.Background())
	assert.ErrorIs(t, err, domain.ErrBackendUnreachable)
}

func TestSyncStock(t *testing.T) {
	store, calls := newServer(t, func(string) (int, string) { return 200, `{"success":true}` })

	err := store.SyncStock(context.Background(), "u2", map[string]int{"p1": 5, "p2": 0})
	require.NoError(t, err)

	require.Len(t, *calls, 1)
	c := (*calls)[0]
	assert.Equal(t, http.MethodPost, c.method)
	assert.Equal(t, "update_stock", c.action)
	assert.Equal(t, "u2", c.body["userId"])
	assert.Equal(t, map[string]any{"p1": float64(5), "p2": float64(0)}, c.body["counts"])
}

func TestSyncStock_Rechazado(t *testing.T) {
	store, _ := newServer(t, func(string) (int, string) { return 200, `{"success":false,"error":"deadlock"}` })
	err := store.SyncStock(context.Background(), "u2", map[string]int{"p1": 1})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrBackendUnreachable)
	assert.Contains(t, err.Error(), "deadlock")
}

func TestCreateQuotation(t *testing.T) {
	store, calls := newServer(t, func(string) (int, string) { return 200, `{"success":true,"id":"abc123"}` })

	id, err := store.CreateQuotation(context.Background(), &entity.Quotation{
		CustomerName: "Ana", CustomerPhone: "5512345678", Total: decimal.NewFromInt(348), UserID: "u1",
		Items: []entity.QuotationItem{
			{ProductID: "p1", ProductName: "Laptop", Quantity: 1, UnitPrice: decimal.NewFromInt(100), Subtotal: decimal.NewFromInt(100)},
			{ProductID: "p2", ProductName: "Monitor", Quantity: 1, UnitPrice: decimal.NewFromInt(200), Subtotal: decimal.NewFromInt(200)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "abc123", id)

	body := (*calls)[0].body
	assert.Equal(t, "create_quotation", (*calls)[0].action)
	assert.Equal(t, "Ana", body["customerName"])
	assert.Equal(t, "5512345678", body["customerPhone"])
	assert.Equal(t, "u1", body["userId"])
	assert.Equal(t, "348", body["total"])
	items := body["items"].([]any)
	require.Len(t, items, 2)
	first := items[0].(map[string]any)
	assert.Equal(t, "p1", first["productId"])
	assert.Equal(t, "100", first["unitPrice"])
}

func TestUsers(t *testing.T) {
	store, calls := newServer(t, func(action string) (int, string) {
		if action == "users" {
			return 200, `[{"id":"u1","name":"Carlos Admin","email":"admin@nexus.com","role":"ADMIN","avatar":"x","status":"ACTIVE"}]`
		}
		return 200, `{"success":true}`
	})
	ctx := context.Background()

	users, err := store.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, entity.RoleAdmin, users[0].Role)

	require.NoError(t, store.CreateUser(ctx, &entity.User{ID: "u9", Name: "Ana", Email: "ana@nexus.com", Role: "SELLER"}))
	require.NoError(t, store.DeleteUser(ctx, "u9"))

	require.Len(t, *calls, 3)
	assert.Equal(t, "create_user", (*calls)[1].action)
	assert.Equal(t, "ana@nexus.com", (*calls)[1].body["email"])
	assert.Equal(t, "delete_user", (*calls)[2].action)
	assert.Equal(t, "u9", (*calls)[2].query["id"])
	assert.Equal(t, "u9", (*calls)[2].body["id"])
}

func TestConfig(t *testing.T) {
	saved := `{"status":"Nexus API Running"}`
	store, _ := newServer(t, func(action string) (int, string) {
		if action == "config" {
			return 200, saved
		}
		saved = `{"name":"Nexus AI","currency":"MXN","taxPercentage":16}`
		return 200, `{"success":true}`
	})
	ctx := context.Background()

	_, err := store.GetConfig(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound, "backend sin configuración")

	require.NoError(t, store.SaveConfig(ctx, &entity.BusinessConfig{Name: "Nexus AI"}))
	cfg, err := store.GetConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Nexus AI", cfg.Name)
	assert.True(t, decimal.NewFromInt(16).Equal(cfg.TaxPercentage))
}

func TestListQuotations(t *testing.T) {
	store, _ := newServer(t, func(string) (int, string) {
		return 200, `[{"id":"q1","customer_name":"Ana","customer_phone":"55","total":"348.0000","user_id":"u1","created_at":"2026-03-01 10:00:00"}]`
	})
	qs, err := store.ListQuotations(context.Background())
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, "Ana", qs[0].CustomerName)
	assert.Equal(t, "u1", qs[0].UserID)
	assert.True(t, decimal.NewFromInt(348).Equal(qs[0].Total))
	assert.Equal(t, 2026, qs[0].CreatedAt.Year())
}
