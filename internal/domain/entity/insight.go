package entity

// RiskProduct producto señalado por el servicio de insights.
type RiskProduct struct {
	SKU    string
	Reason string
}

// Insights resultado exitoso del servicio de insights.
type Insights struct {
	RiskProducts    []RiskProduct
	Recommendations []string
}
