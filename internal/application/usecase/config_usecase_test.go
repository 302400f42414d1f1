package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nexus-crm/internal/application/dto"
	"github.com/jhoicas/nexus-crm/internal/application/usecase"
	"github.com/jhoicas/nexus-crm/internal/domain"
	"github.com/jhoicas/nexus-crm/internal/domain/entity"
)

var defaultsCfg = entity.BusinessConfig{Name: "Nexus AI", Currency: "MXN", TaxPercentage: decimal.NewFromInt(16)}

func TestConfigUseCase_GetSinGuardarDevuelveDefaults(t *testing.T) {
	uc := usecase.NewConfigUseCase(&fakeStore{}, defaultsCfg, nil)
	got, err := uc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Nexus AI", got.Name)
	assert.True(t, decimal.NewFromInt(16).Equal(got.TaxPercentage))
}

func TestConfigUseCase_GetStoreCaido(t *testing.T) {
	uc := usecase.NewConfigUseCase(&fakeStore{err: domain.ErrBackendUnreachable}, defaultsCfg, nil)
	_, err := uc.Get(context.Background())
	assert.ErrorIs(t, err, domain.ErrBackendUnreachable)

	// Para cotizar se usan los valores por defecto.
	eff := uc.Effective(context.Background())
	assert.True(t, decimal.NewFromInt(16).Equal(eff.TaxPercentage))
}

func TestConfigUseCase_SaveYEffective(t *testing.T) {
	store := &fakeStore{}
	uc := usecase.NewConfigUseCase(store, defaultsCfg, nil)

	saved, err := uc.Save(context.Background(), dto.BusinessConfigDTO{
		Name: "  Ferretería Sol ", Currency: "usd", TaxPercentage: decimal.NewFromInt(8),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ferretería Sol", saved.Name)
	assert.Equal(t, "USD", saved.Currency)

	eff := uc.Effective(context.Background())
	assert.Equal(t, "Ferretería Sol", eff.Name)
	assert.True(t, decimal.NewFromInt(8).Equal(eff.TaxPercentage))
}

func TestConfigUseCase_SaveInvalido(t *testing.T) {
	uc := usecase.NewConfigUseCase(&fakeStore{}, defaultsCfg, nil)
	cases := []dto.BusinessConfigDTO{
		{Name: "", TaxPercentage: decimal.NewFromInt(16)},
		{Name: "X", TaxPercentage: decimal.NewFromInt(-1)},
		{Name: "X", TaxPercentage: decimal.NewFromInt(101)},
		{Name: "X", Currency: "PESOS"},
	}
	for _, in := range cases {
		_, err := uc.Save(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}
