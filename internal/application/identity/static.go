package identity

import (
	"context"

	"github.com/jhoicas/nexus-crm/internal/domain/entity"
)

// StaticProvider devuelve siempre el mismo usuario, ignorando el encabezado.
type StaticProvider struct {
	user entity.User
}

var _ Provider = (*StaticProvider)(nil)

// NewStaticProvider construye el proveedor fijo. Un rol desconocido se degrada a SELLER.
func NewStaticProvider(user entity.User) *StaticProvider {
	if !entity.IsValidRole(user.Role) {
		user.Role = entity.RoleSeller
	}
	if user.Status == "" {
		user.Status = entity.UserStatusActive
	}
	return &StaticProvider{user: user}
}

// Resolve devuelve una copia del usuario configurado.
func (p *StaticProvider) Resolve(_ context.Context, _ string) (*entity.User, error) {
	u := p.user
	return &u, nil
}
