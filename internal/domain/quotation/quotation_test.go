package quotation_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nexus-crm/internal/domain"
	"github.com/jhoicas/nexus-crm/internal/domain/entity"
	"github.com/jhoicas/nexus-crm/internal/domain/quotation"
	"github.com/jhoicas/nexus-crm/pkg/money"
)

func product(id, name string, price int64) *entity.Product {
	return &entity.Product{ID: id, SKU: "SKU-" + id, Name: name, Price: decimal.NewFromInt(price)}
}

// ──────────────────────────────────────────────────────────────────────────────
// Draft
// ──────────────────────────────────────────────────────────────────────────────

// N llamadas a AddItem con el mismo producto dejan una sola línea con cantidad N.
func TestDraft_AddItemMismoProducto(t *testing.T) {
	d := quotation.NewDraft()
	p := product("p1", "Laptop", 1200)

	for i := 0; i < 3; i++ {
		_, err := d.AddItem(p)
		require.NoError(t, err)
	}

	items := d.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.True(t, decimal.NewFromInt(3600).Equal(items[0].Subtotal))
}

// El precio se copia al agregar: cambios posteriores en el producto no afectan la línea.
func TestDraft_AddItemCopiaPrecio(t *testing.T) {
	d := quotation.NewDraft()
	p := product("p1", "Laptop", 1200)
	_, err := d.AddItem(p)
	require.NoError(t, err)

	p.Price = decimal.NewFromInt(999)
	p.Name = "Otro nombre"
	_, err = d.AddItem(p)
	require.NoError(t, err)

	it := d.Items()[0]
	assert.True(t, decimal.NewFromInt(1200).Equal(it.UnitPrice))
	assert.Equal(t, "Laptop", it.ProductName)
	assert.True(t, decimal.NewFromInt(2400).Equal(it.Subtotal))
}

func TestDraft_OrdenDeInsercion(t *testing.T) {
	d := quotation.NewDraft()
	for _, p := range []*entity.Product{product("b", "B", 1), product("a", "A", 2), product("c", "C", 3)} {
		_, err := d.AddItem(p)
		require.NoError(t, err)
	}
	var ids []string
	for _, it := range d.Items() {
		ids = append(ids, it.ProductID)
	}
	assert.Equal(t, []string{"b", "a", "c"}, ids)
}

func TestDraft_AddItemInvalido(t *testing.T) {
	d := quotation.NewDraft()
	_, err := d.AddItem(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = d.AddItem(&entity.Product{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDraft_RemoveItem(t *testing.T) {
	d := quotation.NewDraft()
	a, _ := d.AddItem(product("a", "A", 10))
	b, _ := d.AddItem(product("b", "B", 20))

	require.NoError(t, d.RemoveItem(a.ID))
	items := d.Items()
	require.Len(t, items, 1)
	assert.Equal(t, b.ID, items[0].ID)
	assert.Equal(t, 1, items[0].Quantity)

	assert.ErrorIs(t, d.RemoveItem("nope"), domain.ErrNotFound)
}

func TestDraft_SetQuantity(t *testing.T) {
	d := quotation.NewDraft()
	it, _ := d.AddItem(product("a", "A", 50))

	changed, err := d.SetQuantity(it.ID, 4)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 4, d.Items()[0].Quantity)
	assert.True(t, decimal.NewFromInt(200).Equal(d.Items()[0].Subtotal))

	// Cero y negativos se rechazan sin modificar la línea.
	for _, q := range []int{0, -1} {
		changed, err = d.SetQuantity(it.ID, q)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, 4, d.Items()[0].Quantity)
	}

	_, err = d.SetQuantity("nope", 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDraft_Totals(t *testing.T) {
	d := quotation.NewDraft()
	_, _ = d.AddItem(product("a", "A", 100))
	_, _ = d.AddItem(product("b", "B", 200))

	tot := d.Totals(quotation.DefaultTaxPercentage)
	assert.True(t, decimal.NewFromInt(300).Equal(tot.Subtotal), tot.Subtotal.String())
	assert.True(t, decimal.NewFromInt(48).Equal(tot.Tax), tot.Tax.String())
	assert.True(t, decimal.NewFromInt(348).Equal(tot.Total), tot.Total.String())
}

// La aritmética conserva precisión; el redondeo es solo de presentación.
func TestDraft_TotalsPrecision(t *testing.T) {
	d := quotation.NewDraft()
	_, _ = d.AddItem(&entity.Product{ID: "x", Name: "X", Price: decimal.RequireFromString("0.10")})
	_, err := d.SetQuantity(d.Items()[0].ID, 3)
	require.NoError(t, err)

	tot := d.Totals(decimal.RequireFromString("16"))
	assert.Equal(t, "0.3", tot.Subtotal.String())
	assert.Equal(t, "0.048", tot.Tax.String())
	assert.Equal(t, "0.348", tot.Total.String())
}

func TestDraft_TotalsVacio(t *testing.T) {
	tot := quotation.NewDraft().Totals(quotation.DefaultTaxPercentage)
	assert.True(t, tot.Total.IsZero())
}

func TestDraft_Validate(t *testing.T) {
	d := quotation.NewDraft()
	assert.ErrorIs(t, d.Validate(), domain.ErrValidation)

	d.Customer = entity.Customer{Name: "Ana"}
	assert.ErrorIs(t, d.Validate(), domain.ErrValidation, "sin ítems")

	_, _ = d.AddItem(product("a", "A", 1))
	assert.NoError(t, d.Validate())

	d.Customer.Name = ""
	assert.ErrorIs(t, d.Validate(), domain.ErrValidation, "sin cliente")
}

func TestDraft_Clear(t *testing.T) {
	d := quotation.NewDraft()
	d.Customer = entity.Customer{Name: "Ana"}
	_, _ = d.AddItem(product("a", "A", 1))
	d.Clear()
	assert.Equal(t, 0, d.Len())
	assert.Empty(t, d.Customer.Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// ShareViaMessage
// ──────────────────────────────────────────────────────────────────────────────

func TestShareViaMessage(t *testing.T) {
	d := quotation.NewDraft()
	_, _ = d.AddItem(product("a", "Laptop", 1200))
	_, _ = d.AddItem(product("b", "Mouse", 55))
	_, _ = d.SetQuantity(d.Items()[1].ID, 2)
	tot := d.Totals(quotation.DefaultTaxPercentage)

	f := money.NewFormatter("en-US", "MXN")
	share := quotation.ShareViaMessage(entity.Customer{Name: "Ana", Phone: "+52 (55) 1234-5678"}, d.Items(), tot.Total, "Nexus AI", f)

	want := "Hola Ana, te envío la cotización de Nexus AI:\n\n" +
		"- Laptop (1 x $1,200.00) = $1,200.00\n" +
		"- Mouse (2 x $55.00) = $110.00\n\n" +
		"*Total con IVA: $1,519.60 MXN*\n\n" +
		"Gracias por tu preferencia."
	assert.Equal(t, want, share.Text)
	assert.Equal(t, "525512345678", share.Phone)

	u, err := url.Parse(share.URL)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", u.Host)
	assert.Equal(t, "/525512345678", u.Path)
	assert.Equal(t, want, u.Query().Get("text"))
	assert.False(t, strings.Contains(share.URL, " "))
	assert.False(t, strings.Contains(share.URL, "+"), "los espacios van como %%20: %s", share.URL)
	assert.True(t, strings.HasPrefix(share.URL, "https://wa.me/525512345678?text=Hola%20Ana%2C%20te%20env%C3%ADo"))
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "5512345678", quotation.DigitsOnly("55 1234 5678"))
	assert.Equal(t, "", quotation.DigitsOnly("sin teléfono"))
	assert.Equal(t, "123", quotation.DigitsOnly("١٢٣123"))
}
