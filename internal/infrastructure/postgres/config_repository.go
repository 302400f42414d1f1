package postgres

import (
	"context"

	"github.com/jhoicas/nexus-crm/internal/domain/entity"
)

// ConfigRepo fila única de business_config (id = 1).
type ConfigRepo struct {
	q Querier
}

// NewConfigRepository construye el adaptador.
func NewConfigRepository(q Querier) *ConfigRepo {
	return &ConfigRepo{q: q}
}

// Get devuelve la configuración. domain.ErrNotFound si nunca se guardó.
func (r *ConfigRepo) Get(ctx context.Context) (*entity.BusinessConfig, error) {
	var c entity.BusinessConfig
	err := r.q.QueryRow(ctx, `
		SELECT name, slogan, logo, tax_id, currency, tax_percentage, address, phone, email, footer
		FROM business_config WHERE id = 1`).Scan(
		&c.Name, &c.Slogan, &c.Logo, &c.TaxID, &c.Currency, &c.TaxPercentage,
		&c.Address, &c.Phone, &c.Email, &c.Footer,
	)
	if err != nil {
		return nil, classify("get config", err)
	}
	return &c, nil
}

// Save inserta o reemplaza la configuración.
func (r *ConfigRepo) Save(ctx context.Context, c *entity.BusinessConfig) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO business_config (id, name, slogan, logo, tax_id, currency, tax_percentage, address, phone, email, footer)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, slogan = EXCLUDED.slogan, logo = EXCLUDED.logo, tax_id = EXCLUDED.tax_id,
			currency = EXCLUDED.currency, tax_percentage = EXCLUDED.tax_percentage, address = EXCLUDED.address,
			phone = EXCLUDED.phone, email = EXCLUDED.email, footer = EXCLUDED.footer`,
		c.Name, c.Slogan, c.Logo, c.TaxID, c.Currency, c.TaxPercentage, c.Address, c.Phone, c.Email, c.Footer)
	return classify("save config", err)
}
