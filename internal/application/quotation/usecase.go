// Package quotation contiene los casos de uso del cotizador: un borrador por operador,
// guardado en el Catalog Store, envío por WhatsApp y PDF.
package quotation

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/nexus-crm/internal/application/dto"
	"github.com/jhoicas/nexus-crm/internal/domain"
	"github.com/jhoicas/nexus-crm/internal/domain/entity"
	"github.com/jhoicas/nexus-crm/internal/domain/inventory"
	"github.com/jhoicas/nexus-crm/internal/domain/quotation"
	"github.com/jhoicas/nexus-crm/internal/domain/repository"
	"github.com/jhoicas/nexus-crm/pkg/logger"
	"github.com/jhoicas/nexus-crm/pkg/money"
)

// UseCase mantiene los borradores en memoria, uno por operador.
// El borrador sobrevive al guardado para poder compartirlo o imprimirlo después.
type UseCase struct {
	catalog   CatalogReader
	store     repository.QuotationRepository
	config    ConfigSource
	generator PDFGenerator
	formatter *money.Formatter
	log       *logger.Logger
	now       func() time.Time

	mu     sync.Mutex
	drafts map[string]*quotation.Draft
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	catalog CatalogReader,
	store repository.QuotationRepository,
	config ConfigSource,
	generator PDFGenerator,
	formatter *money.Formatter,
	log *logger.Logger,
) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{
		catalog:   catalog,
		store:     store,
		config:    config,
		generator: generator,
		formatter: formatter,
		log:       log.Named("quotation"),
		now:       time.Now,
		drafts:    map[string]*quotation.Draft{},
	}
}

// draftLocked devuelve el borrador del operador, creándolo si no existe.
func (uc *UseCase) draftLocked(userID string) *quotation.Draft {
	d, ok := uc.drafts[userID]
	if !ok {
		d = quotation.NewDraft()
		uc.drafts[userID] = d
	}
	return d
}

// Draft devuelve el borrador del operador con los totales calculados.
func (uc *UseCase) Draft(ctx context.Context, actor *entity.User) *dto.DraftResponse {
	cfg := uc.config.Effective(ctx)
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.toResponse(uc.draftLocked(actor.ID), cfg)
}

// SetCustomer fija el cliente del borrador.
func (uc *UseCase) SetCustomer(ctx context.Context, actor *entity.User, in dto.CustomerRequest) *dto.DraftResponse {
	cfg := uc.config.Effective(ctx)
	uc.mu.Lock()
	defer uc.mu.Unlock()
	d := uc.draftLocked(actor.ID)
	d.Customer = entity.Customer{Name: strings.TrimSpace(in.Name), Phone: strings.TrimSpace(in.Phone)}
	return uc.toResponse(d, cfg)
}

// AddItem agrega una unidad del producto indicado por ID o por código escaneado.
func (uc *UseCase) AddItem(ctx context.Context, actor *entity.User, in dto.AddItemRequest) (*dto.DraftResponse, error) {
	products, _, err := uc.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	var p *entity.Product
	switch {
	case in.ProductID != "":
		found, ok := inventory.FindByID(in.ProductID, products)
		if !ok {
			return nil, domain.ErrNotFound
		}
		p = found
	case in.Code != "":
		p, err = inventory.ResolveScan(in.Code, products)
		if err != nil {
			return nil, err
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	cfg := uc.config.Effective(ctx)
	uc.mu.Lock()
	defer uc.mu.Unlock()
	d := uc.draftLocked(actor.ID)
	if _, err := d.AddItem(p); err != nil {
		return nil, err
	}
	return uc.toResponse(d, cfg), nil
}

// SetQuantity cambia la cantidad de una línea. Cantidades menores a 1 se ignoran.
func (uc *UseCase) SetQuantity(ctx context.Context, actor *entity.User, itemID string, in dto.UpdateQuantityRequest) (*dto.DraftResponse, error) {
	cfg := uc.config.Effective(ctx)
	uc.mu.Lock()
	defer uc.mu.Unlock()
	d := uc.draftLocked(actor.ID)
	if _, err := d.SetQuantity(itemID, in.Quantity); err != nil {
		return nil, err
	}
	return uc.toResponse(d, cfg), nil
}

// RemoveItem quita una línea del borrador.
func (uc *UseCase) RemoveItem(ctx context.Context, actor *entity.User, itemID string) (*dto.DraftResponse, error) {
	cfg := uc.config.Effective(ctx)
	uc.mu.Lock()
	defer uc.mu.Unlock()
	d := uc.draftLocked(actor.ID)
	if err := d.RemoveItem(itemID); err != nil {
		return nil, err
	}
	return uc.toResponse(d, cfg), nil
}

// Clear descarta el borrador del operador.
func (uc *UseCase) Clear(_ context.Context, actor *entity.User) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.drafts, actor.ID)
}

// Save guarda el borrador del operador en el store.
func (uc *UseCase) Save(ctx context.Context, actor *entity.User) (*dto.SaveQuotationResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.Persist(ctx, uc.draftLocked(actor.ID), actor.ID)
}

// Persist valida el borrador y lo entrega al store con el total calculado.
// Sin cliente o sin líneas devuelve domain.ErrValidation sin llamar al store ni a la configuración.
func (uc *UseCase) Persist(ctx context.Context, d *quotation.Draft, userID string) (*dto.SaveQuotationResponse, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("%w: ingrese el nombre del cliente y al menos un producto", err)
	}
	cfg := uc.config.Effective(ctx)
	totals := d.Totals(taxOf(cfg))

	q := &entity.Quotation{
		CustomerName:  d.Customer.Name,
		CustomerPhone: d.Customer.Phone,
		Total:         totals.Total,
		UserID:        userID,
		Items:         d.Items(),
		CreatedAt:     uc.now(),
	}
	id, err := uc.store.CreateQuotation(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("cotización: guardar: %w", err)
	}
	uc.log.Info().Str("quotation_id", id).Str("user_id", userID).Str("total", totals.Total.String()).Msg("cotización guardada")
	return &dto.SaveQuotationResponse{ID: id, Total: totals.Total}, nil
}

// Share arma el mensaje y el enlace de WhatsApp del borrador.
func (uc *UseCase) Share(ctx context.Context, actor *entity.User) (*dto.ShareResponse, error) {
	cfg := uc.config.Effective(ctx)
	uc.mu.Lock()
	defer uc.mu.Unlock()
	d := uc.draftLocked(actor.ID)
	if d.Len() == 0 {
		return nil, fmt.Errorf("%w: la cotización no tiene productos", domain.ErrValidation)
	}
	s := uc.share(d, cfg)
	return &dto.ShareResponse{Phone: s.Phone, Text: s.Text, URL: s.URL}, nil
}

// RenderPDF genera el documento imprimible del borrador. Devuelve los bytes y el nombre de archivo.
func (uc *UseCase) RenderPDF(ctx context.Context, actor *entity.User) ([]byte, string, error) {
	cfg := uc.config.Effective(ctx)

	uc.mu.Lock()
	d := uc.draftLocked(actor.ID)
	if d.Len() == 0 {
		uc.mu.Unlock()
		return nil, "", fmt.Errorf("%w: la cotización no tiene productos", domain.ErrValidation)
	}
	doc := Document{
		Business:  cfg,
		Customer:  d.Customer,
		Items:     d.Items(),
		Totals:    d.Totals(taxOf(cfg)),
		IssuedAt:  uc.now(),
		Formatter: uc.formatter.WithCurrency(cfg.Currency),
	}
	if d.Customer.Phone != "" {
		doc.ShareURL = uc.share(d, cfg).URL
	}
	uc.mu.Unlock()

	pdf, err := uc.generator.GenerateQuotationPDF(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("cotización: generar pdf: %w", err)
	}
	return pdf, fmt.Sprintf("cotizacion_%s.pdf", doc.IssuedAt.Format("20060102_150405")), nil
}

// List devuelve las cotizaciones guardadas.
func (uc *UseCase) List(ctx context.Context) ([]dto.QuotationResponse, error) {
	qs, err := uc.store.ListQuotations(ctx)
	if err != nil {
		return nil, fmt.Errorf("cotización: listar: %w", err)
	}
	out := make([]dto.QuotationResponse, 0, len(qs))
	for _, q := range qs {
		r := dto.QuotationResponse{
			ID:            q.ID,
			CustomerName:  q.CustomerName,
			CustomerPhone: q.CustomerPhone,
			Total:         q.Total,
			UserID:        q.UserID,
			Items:         make([]dto.QuotationItemDTO, 0, len(q.Items)),
			CreatedAt:     q.CreatedAt,
		}
		for _, it := range q.Items {
			r.Items = append(r.Items, dto.NewQuotationItemDTO(it))
		}
		out = append(out, r)
	}
	return out, nil
}

func (uc *UseCase) share(d *quotation.Draft, cfg entity.BusinessConfig) quotation.Share {
	totals := d.Totals(taxOf(cfg))
	return quotation.ShareViaMessage(d.Customer, d.Items(), totals.Total, cfg.Name, uc.formatter.WithCurrency(cfg.Currency))
}

func (uc *UseCase) toResponse(d *quotation.Draft, cfg entity.BusinessConfig) *dto.DraftResponse {
	totals := d.Totals(taxOf(cfg))
	f := uc.formatter.WithCurrency(cfg.Currency)
	items := d.Items()
	out := &dto.DraftResponse{
		Customer:      dto.CustomerRequest{Name: d.Customer.Name, Phone: d.Customer.Phone},
		Items:         make([]dto.QuotationItemDTO, 0, len(items)),
		Subtotal:      totals.Subtotal,
		TaxPercentage: totals.TaxPercentage,
		Tax:           totals.Tax,
		Total:         totals.Total,
		Display: dto.TotalsDisplayDTO{
			Subtotal: f.Price(totals.Subtotal),
			Tax:      f.Price(totals.Tax),
			Total:    f.PriceWithCurrency(totals.Total),
		},
	}
	for _, it := range items {
		out.Items = append(out.Items, dto.NewQuotationItemDTO(it))
	}
	return out
}

// taxOf tasa de la configuración; IVA 16 % si es inválida.
func taxOf(cfg entity.BusinessConfig) decimal.Decimal {
	if cfg.TaxPercentage.IsNegative() {
		return quotation.DefaultTaxPercentage
	}
	return cfg.TaxPercentage
}
