// Package pdf genera el documento imprimible de una cotización.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre + eslogan     │  COTIZACIÓN + Fecha          │
//	│  Contacto: RFC / Dirección / Tel / Email                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + teléfono                                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | P.Unit | Subtotal               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / IVA (%) / TOTAL                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR de WhatsApp + pie configurado                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appquotation "github.com/jhoicas/nexus-crm/internal/application/quotation"
	"github.com/jhoicas/nexus-crm/pkg/money"
)

var _ appquotation.PDFGenerator = (*MarotoPDFGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 79, Green: 70, Blue: 229}
	colorGray    = &props.Color{Red: 100, Green: 116, Blue: 139}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// MarotoPDFGenerator implementa quotation.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateQuotationPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateQuotationPDF(ctx context.Context, doc appquotation.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f := doc.Formatter
	if f == nil {
		f = money.NewFormatter("es-MX", doc.Business.Currency)
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cotización "+doc.Business.Name, true).
		WithAuthor(doc.Business.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(contactRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(doc, f)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(doc, f))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRows(doc)...)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar cotización: %w", err)
	}
	return out.GetBytes(), nil
}

func headerRow(doc appquotation.Document) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(doc.Business.Name, "Cotización"), props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(doc.Business.Slogan, props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("COTIZACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+doc.IssuedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// contactRow datos fiscales y de contacto; se omiten los vacíos.
func contactRow(doc appquotation.Document) core.Row {
	b := doc.Business
	var parts []string
	if b.TaxID != "" {
		parts = append(parts, "RFC: "+b.TaxID)
	}
	if b.Address != "" {
		parts = append(parts, b.Address)
	}
	if b.Phone != "" {
		parts = append(parts, "Tel: "+b.Phone)
	}
	if b.Email != "" {
		parts = append(parts, b.Email)
	}
	return row.New(8).Add(col.New(12).Add(
		text.New(strings.Join(parts, "   |   "), props.Text{Size: 8, Top: 1, Color: colorGray}),
	))
}

func customerRow(doc appquotation.Document) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(doc.Customer.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New("Tel: "+nonEmpty(doc.Customer.Phone, "-"), props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Descripción", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func tableDetailRows(doc appquotation.Document, f *money.Formatter) []core.Row {
	rows := make([]core.Row, 0, len(doc.Items))
	for _, it := range doc.Items {
		rows = append(rows, row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprint(it.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(6).Add(text.New(it.ProductName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(f.Price(it.UnitPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(f.Price(it.Subtotal), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

func totalsRow(doc appquotation.Document, f *money.Formatter) core.Row {
	t := doc.Totals
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	grand := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 14,
		})
	}

	return row.New(24).Add(
		col.New(6),
		col.New(3).Add(
			label("Subtotal:", 1),
			label(fmt.Sprintf("IVA (%s%%):", t.TaxPercentage.String()), 7),
			label("TOTAL:", 14),
		),
		col.New(3).Add(
			value(f.Price(t.Subtotal), 1),
			value(f.Price(t.Tax), 7),
			grand(f.PriceWithCurrency(t.Total)),
		),
	)
}

// footerRows QR con el enlace de WhatsApp (si hay teléfono) y el pie configurado.
func footerRows(doc appquotation.Document) []core.Row {
	var rows []core.Row
	rows = append(rows, line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	if doc.ShareURL != "" {
		rows = append(rows, row.New(40).Add(
			col.New(3).Add(code.NewQr(doc.ShareURL, props.Rect{Percent: 95, Center: true})),
			col.New(9).Add(
				text.New("Escanea el código para responder esta cotización por WhatsApp.", props.Text{
					Size: 8, Top: 4, Left: 3, Color: colorGray,
				}),
			),
		))
	}
	if doc.Business.Footer != "" {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New(doc.Business.Footer, props.Text{Size: 7, Color: colorGray, Top: 2, Align: align.Center}),
		)))
	}
	return rows
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
