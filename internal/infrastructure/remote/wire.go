package remote

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/nexus-crm/internal/domain/entity"
)

// flexString acepta "abc", 12 o null. Los backends PHP/MySQL devuelven los IDs numéricos sin comillas.
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	*s = flexString(string(b))
	return nil
}

// flexInt acepta 12, "12" o null. PDO devuelve las columnas numéricas como texto.
type flexInt struct {
	set bool
	v   int
}

func (n *flexInt) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	n.set, n.v = true, int(d.IntPart())
	return nil
}

// pick devuelve el primer valor presente.
func pick(vals ...flexInt) int {
	for _, v := range vals {
		if v.set {
			return v.v
		}
	}
	return 0
}

func firstNonEmpty(vals ...flexString) string {
	for _, v := range vals {
		if v != "" {
			return string(v)
		}
	}
	return ""
}

// productWire fila de ?action=products. Se aceptan los nombres en camelCase y los de la columna SQL.
type productWire struct {
	ID             flexString      `json:"id"`
	SKU            flexString      `json:"sku"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	Stock          flexInt         `json:"stock"`
	MinStock       flexInt         `json:"minStock"`
	MinStockSQL    flexInt         `json:"min_stock"`
	Price          decimal.Decimal `json:"price"`
	Location       string          `json:"location"`
	LastCounted    flexString      `json:"lastCounted"`
	LastCountedSQL flexString      `json:"last_counted"`
	RFIDTag        flexString      `json:"rfidTag"`
	RFIDTagSQL     flexString      `json:"rfid_tag"`
}

func (w productWire) toEntity() *entity.Product {
	p := &entity.Product{
		ID:       string(w.ID),
		SKU:      string(w.SKU),
		RFIDTag:  firstNonEmpty(w.RFIDTag, w.RFIDTagSQL),
		Name:     w.Name,
		Category: w.Category,
		Stock:    pick(w.Stock),
		MinStock: pick(w.MinStock, w.MinStockSQL),
		Price:    w.Price,
		Location: w.Location,
	}
	if t, ok := parseDate(firstNonEmpty(w.LastCounted, w.LastCountedSQL)); ok {
		p.LastCounted = &t
	}
	return p
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

type userWire struct {
	ID     flexString `json:"id"`
	Name   string     `json:"name"`
	Email  string     `json:"email"`
	Role   string     `json:"role"`
	Avatar string     `json:"avatar"`
	Status string     `json:"status"`
}

func (w userWire) toEntity() *entity.User {
	u := &entity.User{ID: string(w.ID), Name: w.Name, Email: w.Email, Role: w.Role, Avatar: w.Avatar, Status: w.Status}
	if u.Status == "" {
		u.Status = entity.UserStatusActive
	}
	return u
}

type quotationItemWire struct {
	ID          flexString      `json:"id,omitempty"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// createQuotationWire cuerpo de ?action=create_quotation.
type createQuotationWire struct {
	CustomerName  string              `json:"customerName"`
	CustomerPhone string              `json:"customerPhone"`
	Total         decimal.Decimal     `json:"total"`
	UserID        string              `json:"userId"`
	Items         []quotationItemWire `json:"items"`
}

// quotationWire fila de ?action=quotations.
type quotationWire struct {
	ID               flexString          `json:"id"`
	CustomerName     string              `json:"customerName"`
	CustomerNameSQL  string              `json:"customer_name"`
	CustomerPhone    string              `json:"customerPhone"`
	CustomerPhoneSQL string              `json:"customer_phone"`
	Total            decimal.Decimal     `json:"total"`
	UserID           flexString          `json:"userId"`
	UserIDSQL        flexString          `json:"user_id"`
	CreatedAt        flexString          `json:"createdAt"`
	CreatedAtSQL     flexString          `json:"created_at"`
	Items            []quotationItemWire `json:"items"`
}

func (w quotationWire) toEntity() *entity.Quotation {
	q := &entity.Quotation{
		ID:            string(w.ID),
		CustomerName:  firstNonEmpty(flexString(w.CustomerName), flexString(w.CustomerNameSQL)),
		CustomerPhone: firstNonEmpty(flexString(w.CustomerPhone), flexString(w.CustomerPhoneSQL)),
		Total:         w.Total,
		UserID:        firstNonEmpty(w.UserID, w.UserIDSQL),
	}
	if t, ok := parseDate(firstNonEmpty(w.CreatedAt, w.CreatedAtSQL)); ok {
		q.CreatedAt = t
	}
	for _, it := range w.Items {
		q.Items = append(q.Items, entity.QuotationItem{
			ID:          string(it.ID),
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}
	return q
}

type configWire struct {
	Name          string          `json:"name"`
	Slogan        string          `json:"slogan"`
	Logo          string          `json:"logo"`
	TaxID         string          `json:"taxId"`
	Currency      string          `json:"currency"`
	TaxPercentage decimal.Decimal `json:"taxPercentage"`
	Address       string          `json:"address"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	Footer        string          `json:"footer"`
}

// ack respuesta de las acciones POST: {"success": true, "id": "..."} o {"success": false, "error": "..."}.
// Un {"error": "..."} sin "success" es el aviso del backend de que no pudo conectar a su base.
type ack struct {
	Success *bool      `json:"success"`
	ID      flexString `json:"id"`
	Error   string     `json:"error"`
}
