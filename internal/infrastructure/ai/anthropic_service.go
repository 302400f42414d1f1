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

var _ ports.InsightService = (*AnthropicService)(nil)

const (
	anthropicDefaultBaseURL = "https://api.anthropic.com"
	anthropicVersion        = "2023-06-01"

	anthropicSystemPrompt = `Eres un analista de inventario. Responde ÚNICAMENTE con un objeto JSON válido, sin markdown ni texto adicional.`
)

// AnthropicService adaptador de InsightService sobre la Messages API de Anthropic.
type AnthropicService struct {
	apiKey     string
	model      string
	httpClient *resty.Client
}

// NewAnthropicService construye el adaptador. baseURL vacío usa la API pública.
func NewAnthropicService(apiKey, model, baseURL string) *AnthropicService {
	if baseURL == "" {
		baseURL = anthropicDefaultBaseURL
	}
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("x-api-key", apiKey).
		SetHeader("anthropic-version", anthropicVersion).
		SetHeader("content-type", "application/json").
		SetTimeout(25 * time.Second)

	return &AnthropicService{apiKey: apiKey, model: model, httpClient: restyClient}
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateInsights envía el snapshot a Claude y extrae el JSON de la primera respuesta de texto.
func (s *AnthropicService) GenerateInsights(ctx context.Context, snapshot []entity.ProductSnapshot) (*entity.Insights, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("AI: ANTHROPIC_API_KEY no configurado")
	}
	prompt, err := buildPrompt(snapshot)
	if err != nil {
		return nil, err
	}

	var result anthropicResponse
	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetBody(anthropicRequest{
			Model:     s.model,
			MaxTokens: 1024,
			System:    anthropicSystemPrompt,
			Messages:  []anthropicMessage{{Role: "user", Content: prompt}},
		}).
		SetResult(&result).
		SetError(&result).
		Post("/v1/messages")
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	if resp.IsError() {
		if result.Error != nil {
			return nil, fmt.Errorf("AI: Anthropic error (%s): %s", result.Error.Type, result.Error.Message)
		}
		return nil, fmt.Errorf("AI: Anthropic HTTP %d", resp.StatusCode())
	}
	for _, c := range result.Content {
		if c.Type == "text" && strings.TrimSpace(c.Text) != "" {
			return parseInsights(c.Text)
		}
	}
	return nil, errEmptyResponse
}
