package dto

// Estados posibles de InsightResultDTO.
const (
	InsightStatusOK          = "ok"
	InsightStatusUnavailable = "unavailable"
)

// RiskProductDTO producto en riesgo señalado por el modelo.
type RiskProductDTO struct {
	SKU    string `json:"sku"`
	Reason string `json:"reason"`
}

// InsightResultDTO resultado etiquetado del servicio de insights.
// Con Status="unavailable" las listas van vacías y Message explica el motivo.
type InsightResultDTO struct {
	Status          string           `json:"status"`
	RiskProducts    []RiskProductDTO `json:"risk_products"`
	Recommendations []string         `json:"recommendations"`
	Message         string           `json:"message,omitempty"`
}
