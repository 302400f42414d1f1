// Package demo contiene el dataset local de demostración y el adaptador que lo usa como respaldo
// cuando el Catalog Store real no responde.
package demo

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/nexus-crm/internal/domain"
	"github.com/jhoicas/nexus-crm/internal/domain/entity"
	"github.com/jhoicas/nexus-crm/internal/domain/repository"
)

var _ repository.CatalogStore = (*Store)(nil)

// DefaultConfig configuración del negocio de demostración.
func DefaultConfig() entity.BusinessConfig {
	return entity.BusinessConfig{
		Name:          "Nexus AI",
		Slogan:        "Inventario inteligente",
		Currency:      "MXN",
		TaxPercentage: decimal.NewFromInt(16),
		Email:         "admin@nexus.com",
		Footer:        "Precios sujetos a cambio sin previo aviso.",
	}
}

// Products los cuatro productos de demostración.
func Products() []*entity.Product {
	mk := func(id, sku, name, cat string, stock, min int, price int64, loc string) *entity.Product {
		return &entity.Product{
			ID: id, SKU: sku, RFIDTag: "RFID-100" + id, Name: name, Category: cat,
			Stock: stock, MinStock: min, Price: decimal.NewFromInt(price), Location: loc,
		}
	}
	return []*entity.Product{
		mk("1", "NX-001", "Laptop Pro 16", "Electrónica", 15, 5, 1200, "Pasillo A-1"),
		mk("2", "NX-002", "Monitor 4K Nexus", "Electrónica", 3, 10, 450, "Pasillo A-2"),
		mk("3", "NX-003", "Teclado Mecánico RGB", "Periféricos", 45, 15, 89, "Pasillo B-1"),
		mk("4", "NX-004", "Mouse Inalámbrico AI", "Periféricos", 0, 20, 55, "Pasillo B-1"),
	}
}

// AdminUser usuario administrador de demostración.
func AdminUser() *entity.User {
	return &entity.User{
		ID:     "u1",
		Name:   "Carlos Admin",
		Email:  "admin@nexus.com",
		Role:   entity.RoleAdmin,
		Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Carlos",
		Status: entity.UserStatusActive,
	}
}

// Store Catalog Store en memoria. Todo ListProducts sale marcado como demo.
type Store struct {
	mu         sync.RWMutex
	products   map[string]*entity.Product
	order      []string
	users      []*entity.User
	quotations []*entity.Quotation
	config     entity.BusinessConfig
	now        func() time.Time
}

// NewStore crea el store con el dataset de demostración.
func NewStore() *Store {
	s := &Store{
		products: make(map[string]*entity.Product),
		users:    []*entity.User{AdminUser()},
		config:   DefaultConfig(),
		now:      time.Now,
	}
	for _, p := range Products() {
		s.products[p.ID] = p
		s.order = append(s.order, p.ID)
	}
	return s
}

// WithClock reemplaza el reloj del store (fecha de conteo y de cotizaciones).
func (s *Store) WithClock(now func() time.Time) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
	return s
}

// ListProducts devuelve copias en el orden del dataset.
func (s *Store) ListProducts(_ context.Context) (entity.ProductList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Product, 0, len(s.order))
	for _, id := range s.order {
		cp := *s.products[id]
		out = append(out, &cp)
	}
	return entity.ProductList{Products: out, IsDemoFallback: true}, nil
}

// SyncStock fija stock y fecha de conteo solo de los productos contados. IDs desconocidos se ignoran.
func (s *Store) SyncStock(_ context.Context, _ string, counts map[string]int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, qty := range counts {
		if qty < 0 {
			return fmt.Errorf("demo: stock negativo para %s: %w", id, domain.ErrInvalidInput)
		}
	}
	now := s.now()
	// medianoche local, igual que CURRENT_DATE
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for id, qty := range counts {
		p, ok := s.products[id]
		if !ok {
			continue
		}
		p.Stock = qty
		d := today
		p.LastCounted = &d
	}
	return nil
}

func (s *Store) ListUsers(_ context.Context) ([]*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.User, 0, len(s.users))
	for _, u := range s.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (s *Store) CreateUser(_ context.Context, u *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.ID == u.ID || existing.Email == u.Email {
			return domain.ErrDuplicate
		}
	}
	cp := *u
	s.users = append(s.users, &cp)
	return nil
}

func (s *Store) DeleteUser(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.users {
		if u.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// CreateQuotation guarda la cotización y devuelve un ID nuevo.
func (s *Store) CreateQuotation(_ context.Context, q *entity.Quotation) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *q
	cp.ID = uuid.NewString()
	cp.CreatedAt = s.now()
	cp.Items = make([]entity.QuotationItem, len(q.Items))
	copy(cp.Items, q.Items)
	for i := range cp.Items {
		if cp.Items[i].ID == "" {
			cp.Items[i].ID = strconv.Itoa(i + 1)
		}
	}
	s.quotations = append(s.quotations, &cp)
	return cp.ID, nil
}

// ListQuotations más recientes primero.
func (s *Store) ListQuotations(_ context.Context) ([]*entity.Quotation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Quotation, 0, len(s.quotations))
	for _, q := range s.quotations {
		cp := *q
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) GetConfig(_ context.Context) (*entity.BusinessConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cp := s.config
	return &cp, nil
}

func (s *Store) SaveConfig(_ context.Context, c *entity.BusinessConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = *c
	return nil
}
