package repository

import (
	"context"

	"github.com/jhoicas/nexus-crm/internal/domain/entity"
)

// ConfigRepository configuración del tenant (un único registro).
// GetConfig devuelve domain.ErrNotFound si todavía no se guardó ninguna.
type ConfigRepository interface {
	GetConfig(ctx context.Context) (*entity.BusinessConfig, error)
	SaveConfig(ctx context.Context, cfg *entity.BusinessConfig) error
}
