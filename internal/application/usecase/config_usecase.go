package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/nexus-crm/internal/application/dto"
	"github.com/jhoicas/nexus-crm/internal/domain"
	"github.com/jhoicas/nexus-crm/internal/domain/entity"
	"github.com/jhoicas/nexus-crm/internal/domain/repository"
	"github.com/jhoicas/nexus-crm/pkg/logger"
)

var maxTaxPercentage = decimal.NewFromInt(100)

// ConfigUseCase lee y guarda la configuración del negocio.
type ConfigUseCase struct {
	repo     repository.ConfigRepository
	defaults entity.BusinessConfig
	log      *logger.Logger
}

// NewConfigUseCase construye el caso de uso. defaults se usa mientras el store no tenga
// configuración o no responda.
func NewConfigUseCase(repo repository.ConfigRepository, defaults entity.BusinessConfig, log *logger.Logger) *ConfigUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ConfigUseCase{repo: repo, defaults: defaults, log: log}
}

// Get devuelve la configuración guardada, o los valores por defecto si nunca se guardó.
func (uc *ConfigUseCase) Get(ctx context.Context) (*dto.BusinessConfigDTO, error) {
	cfg, err := uc.repo.GetConfig(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		d := uc.defaults
		cfg = &d
	} else if err != nil {
		return nil, fmt.Errorf("configuración: obtener: %w", err)
	}
	out := configToDTO(cfg)
	return &out, nil
}

// Effective devuelve la configuración a aplicar en cotizaciones. Nunca falla: si el store
// no la tiene o no responde se usan los valores por defecto (IVA 16 %).
func (uc *ConfigUseCase) Effective(ctx context.Context) entity.BusinessConfig {
	cfg, err := uc.repo.GetConfig(ctx)
	if err != nil || cfg == nil {
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			uc.log.Warn().Err(err).Msg("configuración no disponible, usando valores por defecto")
		}
		return uc.defaults
	}
	out := *cfg
	if out.Currency == "" {
		out.Currency = uc.defaults.Currency
	}
	if out.Name == "" {
		out.Name = uc.defaults.Name
	}
	return out
}

// Save valida y persiste la configuración.
func (uc *ConfigUseCase) Save(ctx context.Context, in dto.BusinessConfigDTO) (*dto.BusinessConfigDTO, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Currency = strings.ToUpper(strings.TrimSpace(in.Currency))
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.TaxPercentage.IsNegative() || in.TaxPercentage.GreaterThan(maxTaxPercentage) {
		return nil, domain.ErrInvalidInput
	}
	if in.Currency == "" {
		in.Currency = uc.defaults.Currency
	}
	if len(in.Currency) != 3 {
		return nil, domain.ErrInvalidInput
	}
	cfg := &entity.BusinessConfig{
		Name:          in.Name,
		Slogan:        in.Slogan,
		Logo:          in.Logo,
		TaxID:         in.TaxID,
		Currency:      in.Currency,
		TaxPercentage: in.TaxPercentage,
		Address:       in.Address,
		Phone:         in.Phone,
		Email:         in.Email,
		Footer:        in.Footer,
	}
	if err := uc.repo.SaveConfig(ctx, cfg); err != nil {
		return nil, fmt.Errorf("configuración: guardar: %w", err)
	}
	out := configToDTO(cfg)
	return &out, nil
}

func configToDTO(c *entity.BusinessConfig) dto.BusinessConfigDTO {
	return dto.BusinessConfigDTO{
		Name:          c.Name,
		Slogan:        c.Slogan,
		Logo:          c.Logo,
		TaxID:         c.TaxID,
		Currency:      c.Currency,
		TaxPercentage: c.TaxPercentage,
		Address:       c.Address,
		Phone:         c.Phone,
		Email:         c.Email,
		Footer:        c.Footer,
	}
}
