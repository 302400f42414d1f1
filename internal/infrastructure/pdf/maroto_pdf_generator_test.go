package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appquotation "github.com/jhoicas/nexus-crm/internal/application/quotation"
	"github.com/jhoicas/nexus-crm/internal/domain/entity"
	"github.com/jhoicas/nexus-crm/internal/domain/quotation"
	"github.com/jhoicas/nexus-crm/internal/infrastructure/pdf"
	"github.com/jhoicas/nexus-crm/pkg/money"
)

func sampleDocument(shareURL string) appquotation.Document {
	items := []entity.QuotationItem{
		{ProductID: "1", ProductName: "Laptop Pro 16", Quantity: 1, UnitPrice: decimal.NewFromInt(1200), Subtotal: decimal.NewFromInt(1200)},
		{ProductID: "4", ProductName: "Mouse Inalámbrico AI", Quantity: 2, UnitPrice: decimal.NewFromInt(55), Subtotal: decimal.NewFromInt(110)},
	}
	return appquotation.Document{
		Business:  entity.BusinessConfig{Name: "Nexus AI", Slogan: "Inventario inteligente", TaxID: "NEX010101AAA", Currency: "MXN", Footer: "Vigencia 15 días"},
		Customer:  entity.Customer{Name: "Ana López", Phone: "5512345678"},
		Items:     items,
		Totals:    quotation.ComputeTotals(items, decimal.NewFromInt(16)),
		ShareURL:  shareURL,
		IssuedAt:  time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC),
		Formatter: money.NewFormatter("es-MX", "MXN"),
	}
}

func TestGenerateQuotationPDF(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator()

	out, err := g.GenerateQuotationPDF(context.Background(), sampleDocument("https://wa.me/5512345678?text=hola"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "la salida debe ser un PDF")
}

func TestGenerateQuotationPDF_SinTelefonoNiFormatter(t *testing.T) {
	doc := sampleDocument("")
	doc.Customer.Phone = ""
	doc.Formatter = nil

	out, err := pdf.NewMarotoPDFGenerator().GenerateQuotationPDF(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateQuotationPDF_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := pdf.NewMarotoPDFGenerator().GenerateQuotationPDF(ctx, sampleDocument(""))
	assert.ErrorIs(t, err, context.Canceled)
}
