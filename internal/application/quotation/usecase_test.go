package quotation_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nexus-crm/internal/application/dto"
	appquotation "github.com/jhoicas/nexus-crm/internal/application/quotation"
	"github.com/jhoicas/nexus-crm/internal/domain"
	"github.com/jhoicas/nexus-crm/internal/domain/entity"
	"github.com/jhoicas/nexus-crm/internal/domain/quotation"
	"github.com/jhoicas/nexus-crm/pkg/money"
)

type fakeCatalog struct{ products []*entity.Product }

func (f *fakeCatalog) Catalog(context.Context) ([]*entity.Product, bool, error) {
	return f.products, false, nil
}

type fakeConfig struct {
	cfg   entity.BusinessConfig
	calls int
}

func (f *fakeConfig) Effective(context.Context) entity.BusinessConfig {
	f.calls++
	return f.cfg
}

type fakeQuotationStore struct {
	calls   int
	created []*entity.Quotation
	err     error
}

func (f *fakeQuotationStore) CreateQuotation(_ context.Context, q *entity.Quotation) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	f.created = append(f.created, q)
	return "q-1", nil
}

func (f *fakeQuotationStore) ListQuotations(context.Context) ([]*entity.Quotation, error) {
	f.calls++
	return f.created, f.err
}

type fakePDF struct{ doc appquotation.Document }

func (f *fakePDF) GenerateQuotationPDF(_ context.Context, doc appquotation.Document) ([]byte, error) {
	f.doc = doc
	return []byte("%PDF-1.3"), nil
}

var seller = &entity.User{ID: "u5", Role: entity.RoleSeller}

type fixture struct {
	uc     *appquotation.UseCase
	store  *fakeQuotationStore
	config *fakeConfig
	pdf    *fakePDF
}

func newFixture() fixture {
	f := fixture{
		store:  &fakeQuotationStore{},
		config: &fakeConfig{cfg: entity.BusinessConfig{Name: "Nexus AI", Currency: "MXN", TaxPercentage: decimal.NewFromInt(16)}},
		pdf:    &fakePDF{},
	}
	catalog := &fakeCatalog{products: []*entity.Product{
		{ID: "p1", SKU: "NX-001", RFIDTag: "RFID-1001", Name: "Laptop", Price: decimal.NewFromInt(100)},
		{ID: "p2", SKU: "NX-002", Name: "Monitor", Price: decimal.NewFromInt(200)},
	}}
	f.uc = appquotation.NewUseCase(catalog, f.store, f.config, f.pdf, money.NewFormatter("en-US", "MXN"), nil)
	return f
}

func TestUseCase_ArmarBorrador(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.uc.AddItem(ctx, seller, dto.AddItemRequest{ProductID: "p1"})
	require.NoError(t, err)
	_, err = f.uc.AddItem(ctx, seller, dto.AddItemRequest{Code: "NX-002"})
	require.NoError(t, err)
	d, err := f.uc.AddItem(ctx, seller, dto.AddItemRequest{Code: "RFID-1001"})
	require.NoError(t, err)

	require.Len(t, d.Items, 2)
	assert.Equal(t, 2, d.Items[0].Quantity)
	// 2×100 + 200 = 400; IVA 64; total 464
	assert.True(t, decimal.NewFromInt(464).Equal(d.Total), d.Total.String())
	assert.Equal(t, "$464.00 MXN", d.Display.Total)

	_, err = f.uc.AddItem(ctx, seller, dto.AddItemRequest{Code: "???"})
	assert.ErrorIs(t, err, domain.ErrCodeNotRecognized)
	_, err = f.uc.AddItem(ctx, seller, dto.AddItemRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.uc.AddItem(ctx, seller, dto.AddItemRequest{ProductID: "ghost"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUseCase_BorradorPorOperador(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, err := f.uc.AddItem(ctx, seller, dto.AddItemRequest{ProductID: "p1"})
	require.NoError(t, err)

	other := &entity.User{ID: "u6", Role: entity.RoleManager}
	assert.Empty(t, f.uc.Draft(ctx, other).Items)
	assert.Len(t, f.uc.Draft(ctx, seller).Items, 1)
}

func TestUseCase_QuantityYRemove(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	d, err := f.uc.AddItem(ctx, seller, dto.AddItemRequest{ProductID: "p2"})
	require.NoError(t, err)
	itemID := d.Items[0].ID

	d, err = f.uc.SetQuantity(ctx, seller, itemID, dto.UpdateQuantityRequest{Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, d.Items[0].Quantity)

	d, err = f.uc.SetQuantity(ctx, seller, itemID, dto.UpdateQuantityRequest{Quantity: 0})
	require.NoError(t, err)
	assert.Equal(t, 3, d.Items[0].Quantity, "cantidad 0 se ignora")

	d, err = f.uc.RemoveItem(ctx, seller, itemID)
	require.NoError(t, err)
	assert.Empty(t, d.Items)

	_, err = f.uc.RemoveItem(ctx, seller, itemID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Sin cliente no se llama al store (ni a la configuración).
func TestUseCase_PersistSinClienteNoLlamaAlStore(t *testing.T) {
	f := newFixture()
	d := quotation.NewDraft()
	_, err := d.AddItem(&entity.Product{ID: "p1", Name: "Laptop", Price: decimal.NewFromInt(100)})
	require.NoError(t, err)

	_, err = f.uc.Persist(context.Background(), d, "u5")
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, f.store.calls)
	assert.Zero(t, f.config.calls)
}

func TestUseCase_PersistSinItems(t *testing.T) {
	f := newFixture()
	d := quotation.NewDraft()
	d.Customer = entity.Customer{Name: "Ana"}
	_, err := f.uc.Persist(context.Background(), d, "u5")
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, f.store.calls)
}

func TestUseCase_Save(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.uc.SetCustomer(ctx, seller, dto.CustomerRequest{Name: " Ana ", Phone: "55 1234 5678"})
	_, err := f.uc.AddItem(ctx, seller, dto.AddItemRequest{ProductID: "p1"})
	require.NoError(t, err)
	_, err = f.uc.AddItem(ctx, seller, dto.AddItemRequest{ProductID: "p2"})
	require.NoError(t, err)

	res, err := f.uc.Save(ctx, seller)
	require.NoError(t, err)
	assert.Equal(t, "q-1", res.ID)
	assert.True(t, decimal.NewFromInt(348).Equal(res.Total), res.Total.String())

	require.Len(t, f.store.created, 1)
	q := f.store.created[0]
	assert.Equal(t, "Ana", q.CustomerName)
	assert.Equal(t, "55 1234 5678", q.CustomerPhone)
	assert.Equal(t, "u5", q.UserID)
	assert.Len(t, q.Items, 2)
	assert.True(t, decimal.NewFromInt(348).Equal(q.Total))

	// El borrador se conserva para compartir o imprimir.
	assert.Len(t, f.uc.Draft(ctx, seller).Items, 2)
}

func TestUseCase_SaveStoreCaido(t *testing.T) {
	f := newFixture()
	f.store.err = domain.ErrBackendUnreachable
	ctx := context.Background()
	f.uc.SetCustomer(ctx, seller, dto.CustomerRequest{Name: "Ana"})
	_, err := f.uc.AddItem(ctx, seller, dto.AddItemRequest{ProductID: "p1"})
	require.NoError(t, err)

	_, err = f.uc.Save(ctx, seller)
	assert.True(t, errors.Is(err, domain.ErrBackendUnreachable))
}

func TestUseCase_Share(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, err := f.uc.Share(ctx, seller)
	assert.ErrorIs(t, err, domain.ErrValidation)

	f.uc.SetCustomer(ctx, seller, dto.CustomerRequest{Name: "Ana", Phone: "+52 55-1234-5678"})
	_, err = f.uc.AddItem(ctx, seller, dto.AddItemRequest{ProductID: "p1"})
	require.NoError(t, err)

	s, err := f.uc.Share(ctx, seller)
	require.NoError(t, err)
	assert.Equal(t, "525512345678", s.Phone)
	assert.True(t, strings.HasPrefix(s.URL, "https://wa.me/525512345678?text="))
	assert.Contains(t, s.Text, "te envío la cotización de Nexus AI")
	assert.Contains(t, s.Text, "*Total con IVA: $116.00 MXN*")
}

// Sin configuración válida se aplica IVA 16 %.
func TestUseCase_TasaInvalidaUsaDefault(t *testing.T) {
	f := newFixture()
	f.config.cfg.TaxPercentage = decimal.NewFromInt(-5)
	d, err := f.uc.AddItem(context.Background(), seller, dto.AddItemRequest{ProductID: "p1"})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(16).Equal(d.TaxPercentage))
}

func TestUseCase_RenderPDF(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, _, err := f.uc.RenderPDF(ctx, seller)
	assert.ErrorIs(t, err, domain.ErrValidation)

	f.uc.SetCustomer(ctx, seller, dto.CustomerRequest{Name: "Ana", Phone: "5512345678"})
	_, err = f.uc.AddItem(ctx, seller, dto.AddItemRequest{ProductID: "p2"})
	require.NoError(t, err)

	pdf, name, err := f.uc.RenderPDF(ctx, seller)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.3"), pdf)
	assert.True(t, strings.HasPrefix(name, "cotizacion_"))
	assert.True(t, strings.HasSuffix(name, ".pdf"))

	assert.Equal(t, "Nexus AI", f.pdf.doc.Business.Name)
	assert.Len(t, f.pdf.doc.Items, 1)
	assert.True(t, decimal.NewFromInt(232).Equal(f.pdf.doc.Totals.Total))
	assert.True(t, strings.HasPrefix(f.pdf.doc.ShareURL, "https://wa.me/5512345678"))
}

func TestUseCase_ClearYList(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.uc.SetCustomer(ctx, seller, dto.CustomerRequest{Name: "Ana"})
	_, err := f.uc.AddItem(ctx, seller, dto.AddItemRequest{ProductID: "p1"})
	require.NoError(t, err)
	_, err = f.uc.Save(ctx, seller)
	require.NoError(t, err)

	f.uc.Clear(ctx, seller)
	assert.Empty(t, f.uc.Draft(ctx, seller).Items)

	list, err := f.uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ana", list[0].CustomerName)
	assert.Len(t, list[0].Items, 1)
}
