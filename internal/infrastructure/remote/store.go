// Package remote implementa el Catalog Store contra una API HTTP por acciones
// (GET ?action=products|users|quotations|config, POST ?action=create_quotation|create_user|
// delete_user|update_stock|save_config) con JSON en camelCase.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jhoicas/nexus-crm/internal/domain"
	"github.com/jhoicas/nexus-crm/internal/domain/entity"
	"github.com/jhoicas/nexus-crm/internal/domain/repository"
	"github.com/jhoicas/nexus-crm/pkg/config"
)

var _ repository.CatalogStore = (*Store)(nil)

// Store cliente resty del backend remoto. No reintenta: un fallo se informa y el operador decide.
type Store struct {
	httpClient *resty.Client
}

// NewStore construye el cliente con la URL del script de acciones (ej. https://host/api.php).
func NewStore(cfg config.CatalogConfig) *Store {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.RemoteURL, "/")).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)

	return &Store{httpClient: restyClient}
}

func (s *Store) get(ctx context.Context, action string, out any) error {
	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetQueryParam("action", action).
		Get("")
	if err := checkResponse(action, resp, err); err != nil {
		return err
	}
	body := bytes.TrimSpace(resp.Body())
	if len(body) > 0 && body[0] == '{' {
		// El backend responde {"error": "..."} cuando no alcanza su base de datos.
		var a ack
		if json.Unmarshal(body, &a) == nil && a.Error != "" {
			return fmt.Errorf("remote %s: %w: %s", action, domain.ErrBackendUnreachable, a.Error)
		}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("remote %s: %w: respuesta inválida: %v", action, domain.ErrBackendUnreachable, err)
	}
	return nil
}

func (s *Store) post(ctx context.Context, action string, query map[string]string, payload any) (*ack, error) {
	req := s.httpClient.R().
		SetContext(ctx).
		SetQueryParam("action", action).
		SetBody(payload)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	resp, err := req.Post("")
	if err := checkResponse(action, resp, err); err != nil {
		return nil, err
	}
	var a ack
	if err := json.Unmarshal(resp.Body(), &a); err != nil {
		return nil, fmt.Errorf("remote %s: %w: respuesta inválida: %v", action, domain.ErrBackendUnreachable, err)
	}
	switch {
	case a.Success == nil && a.Error != "":
		return nil, fmt.Errorf("remote %s: %w: %s", action, domain.ErrBackendUnreachable, a.Error)
	case a.Success != nil && !*a.Success:
		return nil, fmt.Errorf("remote %s: %s", action, a.Error)
	case a.Success == nil:
		return nil, fmt.Errorf("remote %s: acción no soportada por el backend", action)
	}
	return &a, nil
}

// checkResponse clasifica errores de transporte y 5xx como ErrBackendUnreachable.
func checkResponse(action string, resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("remote %s: %w: %v", action, domain.ErrBackendUnreachable, err)
	}
	code := resp.StatusCode()
	switch {
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("remote %s: %w: HTTP %d", action, domain.ErrBackendUnreachable, code)
	case code == http.StatusNotFound:
		return fmt.Errorf("remote %s: %w: HTTP %d", action, domain.ErrNotFound, code)
	case code >= http.StatusBadRequest:
		return fmt.Errorf("remote %s: HTTP %d: %s", action, code, strings.TrimSpace(resp.String()))
	}
	return nil
}

// ListProducts lee el catálogo remoto.
func (s *Store) ListProducts(ctx context.Context) (entity.ProductList, error) {
	var rows []productWire
	if err := s.get(ctx, "products", &rows); err != nil {
		return entity.ProductList{}, err
	}
	out := make([]*entity.Product, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toEntity())
	}
	return entity.ProductList{Products: out}, nil
}

// SyncStock envía {userId, counts}. El backend aplica stock y last_counted en una transacción.
func (s *Store) SyncStock(ctx context.Context, userID string, counts map[string]int) error {
	if counts == nil {
		counts = map[string]int{}
	}
	_, err := s.post(ctx, "update_stock", nil, map[string]any{"userId": userID, "counts": counts})
	return err
}

func (s *Store) ListUsers(ctx context.Context) ([]*entity.User, error) {
	var rows []userWire
	if err := s.get(ctx, "users", &rows); err != nil {
		return nil, err
	}
	out := make([]*entity.User, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toEntity())
	}
	return out, nil
}

func (s *Store) CreateUser(ctx context.Context, u *entity.User) error {
	_, err := s.post(ctx, "create_user", nil, map[string]string{
		"id":     u.ID,
		"name":   u.Name,
		"email":  u.Email,
		"role":   u.Role,
		"avatar": u.Avatar,
	})
	return err
}

func (s *Store) DeleteUser(ctx context.Context, id string) error {
	_, err := s.post(ctx, "delete_user", map[string]string{"id": id}, map[string]string{"id": id})
	return err
}

// CreateQuotation envía cabecera e ítems y devuelve el ID generado por el backend.
func (s *Store) CreateQuotation(ctx context.Context, q *entity.Quotation) (string, error) {
	body := createQuotationWire{
		CustomerName:  q.CustomerName,
		CustomerPhone: q.CustomerPhone,
		Total:         q.Total,
		UserID:        q.UserID,
		Items:         make([]quotationItemWire, 0, len(q.Items)),
	}
	for _, it := range q.Items {
		body.Items = append(body.Items, quotationItemWire{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}
	a, err := s.post(ctx, "create_quotation", nil, body)
	if err != nil {
		return "", err
	}
	return string(a.ID), nil
}

func (s *Store) ListQuotations(ctx context.Context) ([]*entity.Quotation, error) {
	var rows []quotationWire
	if err := s.get(ctx, "quotations", &rows); err != nil {
		return nil, err
	}
	out := make([]*entity.Quotation, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toEntity())
	}
	return out, nil
}

// GetConfig lee ?action=config. Un backend sin configuración (o sin la acción) responde un
// objeto sin "name" y se informa como domain.ErrNotFound.
func (s *Store) GetConfig(ctx context.Context) (*entity.BusinessConfig, error) {
	var w configWire
	if err := s.get(ctx, "config", &w); err != nil {
		return nil, err
	}
	if w.Name == "" {
		return nil, domain.ErrNotFound
	}
	return &entity.BusinessConfig{
		Name:          w.Name,
		Slogan:        w.Slogan,
		Logo:          w.Logo,
		TaxID:         w.TaxID,
		Currency:      w.Currency,
		TaxPercentage: w.TaxPercentage,
		Address:       w.Address,
		Phone:         w.Phone,
		Email:         w.Email,
		Footer:        w.Footer,
	}, nil
}

func (s *Store) SaveConfig(ctx context.Context, c *entity.BusinessConfig) error {
	_, err := s.post(ctx, "save_config", nil, configWire{
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
	})
	return err
}
