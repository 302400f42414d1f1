// Package identity resuelve quién es el operador de cada petición.
// No hay autenticación real: el proveedor por defecto devuelve un usuario fijo y el
// proveedor JWT queda listo para cuando exista un emisor de tokens.
package identity

import (
	"context"

	"github.com/jhoicas/nexus-crm/internal/domain/entity"
)

// Provider resuelve el operador actual a partir del encabezado Authorization (puede venir vacío).
// Debe devolver domain.ErrUnauthorized si no puede identificarlo.
type Provider interface {
	Resolve(ctx context.Context, authorization string) (*entity.User, error)
}
