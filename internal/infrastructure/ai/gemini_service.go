package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jhoicas/nexus-crm/internal/application/ports"
	"github.com/jhoicas/nexus-crm/internal/domain/entity"
)

var _ ports.InsightService = (*GeminiService)(nil)

const geminiDefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiService adaptador de InsightService sobre la API REST generateContent de Gemini.
type GeminiService struct {
	apiKey     string
	model      string
	httpClient *resty.Client
}

// NewGeminiService construye el adaptador. baseURL vacío usa la API pública.
func NewGeminiService(apiKey, model, baseURL string) *GeminiService {
	if baseURL == "" {
		baseURL = geminiDefaultBaseURL
	}
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(25 * time.Second) // el use case pone además su propio timeout

	return &GeminiService{apiKey: apiKey, model: model, httpClient: restyClient}
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	ResponseMIMEType string         `json:"responseMimeType"`
	ResponseSchema   map[string]any `json:"responseSchema,omitempty"`
	Temperature      float32        `json:"temperature"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// insightSchema esquema de salida exigido al modelo.
var insightSchema = map[string]any{
	"type": "OBJECT",
	"properties": map[string]any{
		"riskProducts": map[string]any{
			"type": "ARRAY",
			"items": map[string]any{
				"type": "OBJECT",
				"properties": map[string]any{
					"sku":    map[string]any{"type": "STRING"},
					"reason": map[string]any{"type": "STRING"},
				},
			},
		},
		"recommendations": map[string]any{
			"type":  "ARRAY",
			"items": map[string]any{"type": "STRING"},
		},
	},
	"required": []string{"riskProducts", "recommendations"},
}

// GenerateInsights envía el snapshot a Gemini con salida JSON forzada.
func (s *GeminiService) GenerateInsights(ctx context.Context, snapshot []entity.ProductSnapshot) (*entity.Insights, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("AI: GEMINI_API_KEY no configurado")
	}
	prompt, err := buildPrompt(snapshot)
	if err != nil {
		return nil, err
	}

	var result geminiResponse
	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetPathParam("model", s.model).
		SetQueryParam("key", s.apiKey).
		SetBody(geminiRequest{
			Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}},
			GenerationConfig: genConfig{
				ResponseMIMEType: "application/json",
				ResponseSchema:   insightSchema,
				Temperature:      0.2,
			},
		}).
		SetResult(&result).
		SetError(&result).
		Post("/models/{model}:generateContent")
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	if resp.IsError() {
		if result.Error != nil {
			return nil, fmt.Errorf("AI: Gemini error %d: %s", result.Error.Code, result.Error.Message)
		}
		return nil, fmt.Errorf("AI: Gemini HTTP %d", resp.StatusCode())
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return nil, errEmptyResponse
	}
	return parseInsights(result.Candidates[0].Content.Parts[0].Text)
}
