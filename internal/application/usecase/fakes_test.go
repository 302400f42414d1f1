package usecase_test

import (
	"context"
	"sync"

	"github.com/jhoicas/nexus-crm/internal/domain"
	"github.com/jhoicas/nexus-crm/internal/domain/entity"
)

// fakeStore implementa los puertos del Catalog Store en memoria y cuenta las llamadas.
type fakeStore struct {
	mu       sync.Mutex
	products []*entity.Product
	isDemo   bool
	users    []*entity.User
	config   *entity.BusinessConfig
	err      error
	calls    int
}

func (f *fakeStore) ListProducts(context.Context) (entity.ProductList, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return entity.ProductList{}, f.err
	}
	return entity.ProductList{Products: f.products, IsDemoFallback: f.isDemo}, nil
}

func (f *fakeStore) SyncStock(context.Context, string, map[string]int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.err
}

func (f *fakeStore) ListUsers(context.Context) ([]*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.users, f.err
}

func (f *fakeStore) CreateUser(_ context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.users = append(f.users, u)
	return nil
}

func (f *fakeStore) DeleteUser(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return f.err
	}
	for i, u := range f.users {
		if u.ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeStore) GetConfig(context.Context) (*entity.BusinessConfig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.config == nil {
		return nil, domain.ErrNotFound
	}
	cp := *f.config
	return &cp, nil
}

func (f *fakeStore) SaveConfig(_ context.Context, cfg *entity.BusinessConfig) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return f.err
	}
	cp := *cfg
	f.config = &cp
	return nil
}
