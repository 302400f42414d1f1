package usecase

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jhoicas/nexus-crm/internal/application/dto"
	"github.com/jhoicas/nexus-crm/internal/application/ports"
	"github.com/jhoicas/nexus-crm/internal/domain"
	"github.com/jhoicas/nexus-crm/internal/domain/entity"
	"github.com/jhoicas/nexus-crm/pkg/logger"
)

const insightFlightKey = "insights"

// catalogSource lo implementa *ProductUseCase.
type catalogSource interface {
	Catalog(ctx context.Context) ([]*entity.Product, bool, error)
}

// InsightUseCase pide al modelo un análisis del inventario.
// Las peticiones simultáneas comparten una sola llamada al modelo y cada llamada lleva timeout.
// El resultado siempre es etiquetado: "ok" con datos o "unavailable" sin ellos.
type InsightUseCase struct {
	catalog catalogSource
	svc     ports.InsightService
	timeout time.Duration
	log     *logger.Logger
	group   singleflight.Group
}

// NewInsightUseCase construye el caso de uso. svc puede ser nil (sin proveedor configurado).
func NewInsightUseCase(catalog catalogSource, svc ports.InsightService, timeout time.Duration, log *logger.Logger) *InsightUseCase {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}
	return &InsightUseCase{catalog: catalog, svc: svc, timeout: timeout, log: log}
}

// Generate analiza el catálogo cargado. Nunca devuelve error: cualquier fallo se reporta
// como Status "unavailable".
func (uc *InsightUseCase) Generate(ctx context.Context) dto.InsightResultDTO {
	if uc.svc == nil {
		return unavailable("el servicio de insights no está configurado")
	}
	products, _, err := uc.catalog.Catalog(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("insights: catálogo no disponible")
		return unavailable(domain.ErrBackendUnreachable.Error())
	}
	snapshot := make([]entity.ProductSnapshot, 0, len(products))
	for _, p := range products {
		snapshot = append(snapshot, p.Snapshot())
	}

	v, err, shared := uc.group.Do(insightFlightKey, func() (interface{}, error) {
		// La llamada compartida no depende de la cancelación del primer solicitante.
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.timeout)
		defer cancel()
		return uc.svc.GenerateInsights(callCtx, snapshot)
	})
	if err != nil {
		uc.log.Warn().Err(err).Bool("shared", shared).Msg("insights: el proveedor falló")
		return unavailable(domain.ErrInsightUnavailable.Error())
	}
	ins, ok := v.(*entity.Insights)
	if !ok || ins == nil {
		return unavailable(domain.ErrInsightUnavailable.Error())
	}

	out := dto.InsightResultDTO{
		Status:          dto.InsightStatusOK,
		RiskProducts:    make([]dto.RiskProductDTO, 0, len(ins.RiskProducts)),
		Recommendations: append([]string{}, ins.Recommendations...),
	}
	for _, r := range ins.RiskProducts {
		out.RiskProducts = append(out.RiskProducts, dto.RiskProductDTO{SKU: r.SKU, Reason: r.Reason})
	}
	return out
}

func unavailable(msg string) dto.InsightResultDTO {
	return dto.InsightResultDTO{
		Status:          dto.InsightStatusUnavailable,
		RiskProducts:    []dto.RiskProductDTO{},
		Recommendations: []string{},
		Message:         msg,
	}
}
