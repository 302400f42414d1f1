// Package ai contiene los adaptadores de ports.InsightService contra los modelos de Gemini y Anthropic.
package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jhoicas/nexus-crm/internal/domain/entity"
)

// insightPrompt pide al modelo el análisis del snapshot. %s recibe el JSON de productos.
const insightPrompt = `Analiza el siguiente inventario de productos y proporciona:
1. Una lista de productos en riesgo de quiebre de stock.
2. Sugerencias de optimización de espacio basadas en categorías.
3. Recomendaciones de compras urgentes.

Devuelve ÚNICAMENTE un objeto JSON con esta estructura exacta:
{"riskProducts": [{"sku": "<sku>", "reason": "<motivo en español>"}], "recommendations": ["<texto en español>"]}

Productos: %s`

var errEmptyResponse = errors.New("AI: el modelo devolvió una respuesta vacía")

// insightPayload JSON esperado del modelo.
type insightPayload struct {
	RiskProducts []struct {
		SKU    string `json:"sku"`
		Reason string `json:"reason"`
	} `json:"riskProducts"`
	Recommendations []string `json:"recommendations"`
}

func buildPrompt(snapshot []entity.ProductSnapshot) (string, error) {
	if snapshot == nil {
		snapshot = []entity.ProductSnapshot{}
	}
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("AI: serializar snapshot: %w", err)
	}
	return fmt.Sprintf(insightPrompt, raw), nil
}

// parseInsights interpreta el texto del modelo. Ambas claves son obligatorias.
func parseInsights(text string) (*entity.Insights, error) {
	clean := extractJSON(text)
	if clean == "" {
		return nil, fmt.Errorf("AI: no se encontró JSON en la respuesta del modelo: %q", text)
	}
	var required map[string]json.RawMessage
	if err := json.Unmarshal([]byte(clean), &required); err != nil {
		return nil, fmt.Errorf("AI: respuesta del modelo no es JSON válido: %w", err)
	}
	for _, key := range []string{"riskProducts", "recommendations"} {
		if _, ok := required[key]; !ok {
			return nil, fmt.Errorf("AI: falta %q en la respuesta del modelo", key)
		}
	}
	var p insightPayload
	if err := json.Unmarshal([]byte(clean), &p); err != nil {
		return nil, fmt.Errorf("AI: respuesta del modelo con formato inesperado: %w", err)
	}

	out := &entity.Insights{
		RiskProducts:    make([]entity.RiskProduct, 0, len(p.RiskProducts)),
		Recommendations: make([]string, 0, len(p.Recommendations)),
	}
	for _, r := range p.RiskProducts {
		out.RiskProducts = append(out.RiskProducts, entity.RiskProduct{SKU: r.SKU, Reason: r.Reason})
	}
	for _, r := range p.Recommendations {
		if r = strings.TrimSpace(r); r != "" {
			out.Recommendations = append(out.Recommendations, r)
		}
	}
	return out, nil
}

// jsonBlockRe captura desde el primer '{' hasta el último '}'.
var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// extractJSON extrae el objeto JSON de un texto libre, con o sin bloque markdown.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx != -1 {
		after := text[idx+3:]
		if nl := strings.Index(after, "\n"); nl != -1 {
			after = after[nl+1:]
		}
		if end := strings.LastIndex(after, "```"); end != -1 {
			after = after[:end]
		}
		text = strings.TrimSpace(after)
	}
	if strings.HasPrefix(text, "{") {
		return text
	}
	return strings.TrimSpace(jsonBlockRe.FindString(text))
}
