package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nexus-crm/internal/application/usecase"
)

// InsightHandler análisis del inventario con el modelo configurado.
type InsightHandler struct {
	uc *usecase.InsightUseCase
}

// NewInsightHandler construye el handler.
func NewInsightHandler(uc *usecase.InsightUseCase) *InsightHandler {
	return &InsightHandler{uc: uc}
}

// Generate godoc
// @Summary      Generar insights del inventario
// @Description  Siempre responde 200: status="unavailable" con listas vacías si el modelo falló.
// @Tags         insights
// @Produce      json
// @Success      200  {object}  dto.InsightResultDTO
// @Router       /api/insights [post]
func (h *InsightHandler) Generate(c *fiber.Ctx) error {
	return c.JSON(h.uc.Generate(c.UserContext()))
}
