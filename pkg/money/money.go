// Package money formatea montos para mostrar (PDF, WhatsApp, respuestas) con separadores
// de miles según el locale. La aritmética nunca pasa por aquí: solo presentación.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter aplica el locale y la moneda del tenant a montos decimales.
type Formatter struct {
	printer  *message.Printer
	currency string
}

// NewFormatter construye el formateador. Un locale inválido cae a es-MX.
func NewFormatter(locale, currency string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse("es-MX")
	}
	return &Formatter{printer: message.NewPrinter(tag), currency: currency}
}

// WithCurrency devuelve una copia con otra moneda (la configuración puede cambiar en caliente).
func (f *Formatter) WithCurrency(currency string) *Formatter {
	return &Formatter{printer: f.printer, currency: currency}
}

// Currency código ISO configurado.
func (f *Formatter) Currency() string { return f.currency }

// Amount devuelve el monto con dos decimales y separador de miles. Ej: "1,234.50".
func (f *Formatter) Amount(d decimal.Decimal) string {
	return f.printer.Sprint(number.Decimal(d.Round(2).InexactFloat64(), number.Scale(2)))
}

// Price antepone el símbolo "$". Ej: "$1,234.50".
func (f *Formatter) Price(d decimal.Decimal) string {
	return "$" + f.Amount(d)
}

// PriceWithCurrency añade el código ISO al final. Ej: "$1,234.50 MXN".
func (f *Formatter) PriceWithCurrency(d decimal.Decimal) string {
	if f.currency == "" {
		return f.Price(d)
	}
	return f.Price(d) + " " + f.currency
}
