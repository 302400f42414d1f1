package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/nexus-crm/pkg/money"
)

func TestFormatter_SeparadorDeMiles(t *testing.T) {
	f := money.NewFormatter("en-US", "USD")

	assert.Equal(t, "1,234.50", f.Amount(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "348.00", f.Amount(decimal.NewFromInt(348)))
	assert.Equal(t, "$1,200.00", f.Price(decimal.NewFromInt(1200)))
	assert.Equal(t, "$1,200.00 USD", f.PriceWithCurrency(decimal.NewFromInt(1200)))
}

func TestFormatter_RedondeaSoloAlMostrar(t *testing.T) {
	f := money.NewFormatter("en-US", "USD")
	assert.Equal(t, "0.33", f.Amount(decimal.NewFromInt(1).Div(decimal.NewFromInt(3))))
}

func TestFormatter_LocaleInvalidoNoFalla(t *testing.T) {
	f := money.NewFormatter("!!", "MXN")
	assert.NotEmpty(t, f.Amount(decimal.NewFromInt(10)))
	assert.Equal(t, "MXN", f.Currency())
	assert.Equal(t, "EUR", f.WithCurrency("EUR").Currency())
}
