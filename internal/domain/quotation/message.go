package quotation

import (
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/nexus-crm/internal/domain/entity"
	"github.com/jhoicas/nexus-crm/pkg/money"
)

const whatsAppBaseURL = "https://wa.me/"

// Share mensaje listo para enviar y el deep link de WhatsApp que lo abre.
type Share struct {
	Phone string // solo dígitos
	Text  string
	URL   string
}

// ShareViaMessage arma el resumen de la cotización y el enlace wa.me dirigido al teléfono del cliente.
// Es solo formateo: no hace ninguna llamada de red.
func ShareViaMessage(customer entity.Customer, items []entity.QuotationItem, total decimal.Decimal, businessName string, f *money.Formatter) Share {
	var b strings.Builder
	b.WriteString("Hola ")
	b.WriteString(customer.Name)
	b.WriteString(", te envío la cotización de ")
	b.WriteString(businessName)
	b.WriteString(":\n\n")
	for i, it := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- ")
		b.WriteString(it.ProductName)
		b.WriteString(" (")
		b.WriteString(strconv.Itoa(it.Quantity))
		b.WriteString(" x ")
		b.WriteString(f.Price(it.UnitPrice))
		b.WriteString(") = ")
		b.WriteString(f.Price(it.Subtotal))
	}
	b.WriteString("\n\n*Total con IVA: ")
	b.WriteString(f.PriceWithCurrency(total))
	b.WriteString("*\n\nGracias por tu preferencia.")

	phone := DigitsOnly(customer.Phone)
	text := b.String()
	return Share{
		Phone: phone,
		Text:  text,
		URL:   whatsAppBaseURL + phone + "?text=" + escapeText(text),
	}
}

// escapeText codifica el mensaje para el enlace con espacios como %20; algunos clientes de
// WhatsApp muestran el "+" literal.
func escapeText(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

// DigitsOnly elimina todo carácter que no sea dígito ("+52 55 1234-5678" → "525512345678").
func DigitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}
