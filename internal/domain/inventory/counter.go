package inventory

import (
	"time"

	"github.com/jhoicas/nexus-crm/internal/domain"
	"github.com/jhoicas/nexus-crm/internal/domain/entity"
)

// CountSession estado de un conteo físico en curso.
// Progress mapea productID → cantidad contada; una ausencia equivale a 0.
type CountSession struct {
	Type      string
	StartedAt time.Time
	StartedBy string
	Progress  map[string]int
}

// Counted devuelve la cantidad contada para productID (0 si no se ha escaneado).
func (s *CountSession) Counted(productID string) int {
	return s.Progress[productID]
}

// Counter máquina de estados del conteo: Idle ↔ Active.
// Un Counter admite un único conteo activo a la vez; el valor cero es Idle.
// No es seguro para uso concurrente: el caso de uso que lo posee serializa el acceso.
type Counter struct {
	active *CountSession
}

// Active devuelve una copia del conteo activo, o nil si está en Idle.
func (c *Counter) Active() *CountSession {
	if c.active == nil {
		return nil
	}
	cp := *c.active
	cp.Progress = c.Snapshot()
	return &cp
}

// IsActive informa si hay un conteo en curso.
func (c *Counter) IsActive() bool { return c.active != nil }

// Start abre un conteo. Solo es válido desde Idle.
func (c *Counter) Start(countType, startedBy string, now time.Time) error {
	if c.active != nil {
		return domain.ErrCountSessionActive
	}
	if !entity.IsValidCountType(countType) {
		return domain.ErrInvalidInput
	}
	c.active = &CountSession{
		Type:      countType,
		StartedAt: now,
		StartedBy: startedBy,
		Progress:  map[string]int{},
	}
	return nil
}

// RecordScan resuelve code contra products y suma 1 al producto encontrado.
// Si el código no se reconoce el estado no cambia y se devuelve el error.
// Es un incremento puro: escanear dos veces la misma unidad física la cuenta dos veces.
func (c *Counter) RecordScan(code string, products []*entity.Product) (*entity.Product, int, error) {
	if c.active == nil {
		return nil, 0, domain.ErrNoActiveCountSession
	}
	p, err := ResolveScan(code, products)
	if err != nil {
		return nil, 0, err
	}
	return p, c.increment(p.ID), nil
}

// ManualCapture equivale a RecordScan sin resolver código (control "+1 Manual").
func (c *Counter) ManualCapture(productID string) (int, error) {
	if c.active == nil {
		return 0, domain.ErrNoActiveCountSession
	}
	if productID == "" {
		return 0, domain.ErrInvalidInput
	}
	return c.increment(productID), nil
}

func (c *Counter) increment(productID string) int {
	c.active.Progress[productID]++
	return c.active.Progress[productID]
}

// Cancel descarta el conteo sin persistir nada.
func (c *Counter) Cancel() error {
	if c.active == nil {
		return domain.ErrNoActiveCountSession
	}
	c.active = nil
	return nil
}

// Snapshot copia del progreso para enviar al store. Nil si no hay conteo activo.
func (c *Counter) Snapshot() map[string]int {
	if c.active == nil {
		return nil
	}
	out := make(map[string]int, len(c.active.Progress))
	for id, n := range c.active.Progress {
		out[id] = n
	}
	return out
}

// Complete cierra el conteo tras una sincronización exitosa.
// Si la sincronización falló no debe llamarse: el conteo sigue activo y recuperable.
func (c *Counter) Complete() error {
	if c.active == nil {
		return domain.ErrNoActiveCountSession
	}
	c.active = nil
	return nil
}
