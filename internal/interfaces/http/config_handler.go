package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nexus-crm/internal/application/dto"
	"github.com/jhoicas/nexus-crm/internal/application/usecase"
	"github.com/jhoicas/nexus-crm/pkg/logger"
)

// ConfigHandler configuración del negocio.
type ConfigHandler struct {
	uc  *usecase.ConfigUseCase
	log *logger.Logger
}

// NewConfigHandler construye el handler.
func NewConfigHandler(uc *usecase.ConfigUseCase, log *logger.Logger) *ConfigHandler {
	return &ConfigHandler{uc: uc, log: log}
}

// Get godoc
// @Summary      Configuración del negocio
// @Tags         config
// @Produce      json
// @Success      200  {object}  dto.BusinessConfigDTO
// @Router       /api/config [get]
func (h *ConfigHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Save godoc
// @Summary      Guardar configuración
// @Tags         config
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BusinessConfigDTO  true  "Configuración"
// @Success      200   {object}  dto.BusinessConfigDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/config [put]
func (h *ConfigHandler) Save(c *fiber.Ctx) error {
	var in dto.BusinessConfigDTO
	if err := parseBody(c, &in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Save(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
