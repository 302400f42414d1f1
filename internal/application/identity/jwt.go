package identity

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/nexus-crm/internal/domain"
	"github.com/jhoicas/nexus-crm/internal/domain/entity"
	pkgjwt "github.com/jhoicas/nexus-crm/pkg/jwt"
)

// JWTProvider valida un token "Bearer <jwt>" firmado con HS256.
type JWTProvider struct {
	secret string
}

var _ Provider = (*JWTProvider)(nil)

// NewJWTProvider construye el proveedor con el secreto compartido.
func NewJWTProvider(secret string) *JWTProvider {
	return &JWTProvider{secret: secret}
}

// Resolve extrae y valida el token. Cualquier fallo se informa como domain.ErrUnauthorized.
func (p *JWTProvider) Resolve(_ context.Context, authorization string) (*entity.User, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(authorization, prefix) {
		return nil, domain.ErrUnauthorized
	}
	token := strings.TrimSpace(strings.TrimPrefix(authorization, prefix))
	if token == "" {
		return nil, domain.ErrUnauthorized
	}
	id, err := pkgjwt.Parse(p.secret, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	if id.UserID == "" || !entity.IsValidRole(id.Role) {
		return nil, domain.ErrUnauthorized
	}
	return &entity.User{
		ID:     id.UserID,
		Name:   id.Name,
		Email:  id.Email,
		Role:   id.Role,
		Status: entity.UserStatusActive,
	}, nil
}
