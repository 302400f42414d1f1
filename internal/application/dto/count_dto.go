package dto

import "time"

// StartCountRequest entrada para abrir un conteo.
type StartCountRequest struct {
	Type string `json:"type"` // TOTAL | PARTIAL | CYCLICAL
}

// ManualCaptureRequest suma una unidad sin escanear.
type ManualCaptureRequest struct {
	ProductID string `json:"product_id"`
}

// CountLineDTO sistema vs contado para un producto.
type CountLineDTO struct {
	ProductID   string `json:"product_id"`
	SKU         string `json:"sku"`
	Name        string `json:"name"`
	SystemStock int    `json:"system_stock"`
	Counted     int    `json:"counted"`
	Difference  int    `json:"difference"`
}

// CountSessionResponse estado del conteo en curso. Active=false si no hay ninguno.
type CountSessionResponse struct {
	Active       bool           `json:"active"`
	Type         string         `json:"type,omitempty"`
	StartedAt    *time.Time     `json:"started_at,omitempty"`
	StartedBy    string         `json:"started_by,omitempty"`
	TotalScanned int            `json:"total_scanned"`
	Lines        []CountLineDTO `json:"lines"`
}

// CommitCountResponse resultado de sincronizar un conteo con el catálogo.
// Report compara el stock previo con lo contado; Products es el catálogo recargado.
type CommitCountResponse struct {
	Updated  int                 `json:"updated"`
	Report   []CountLineDTO      `json:"report"`
	Products ProductListResponse `json:"products"`
}
