package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nexus-crm/internal/application/dto"
	"github.com/jhoicas/nexus-crm/internal/application/inventory"
	"github.com/jhoicas/nexus-crm/pkg/logger"
)

// InventoryHandler escaneo y conteo físico.
type InventoryHandler struct {
	counts *inventory.CountUseCase
	log    *logger.Logger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(counts *inventory.CountUseCase, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{counts: counts, log: log}
}

// Scan godoc
// @Summary      Escanear SKU o tag RFID
// @Description  Sin conteo activo (o si el conteo es de otro operador) solo muestra el producto.
// @Description  Durante el conteo del operador suma una unidad.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ScanRequest  true  "Código leído"
// @Success      200   {object}  dto.ScanResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/scan [post]
func (h *InventoryHandler) Scan(c *fiber.Ctx) error {
	var in dto.ScanRequest
	if err := parseBody(c, &in); err != nil {
		return badBody(c)
	}
	out, err := h.counts.Scan(c.UserContext(), GetActor(c), strings.TrimSpace(in.Code))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Current godoc
// @Summary      Estado del conteo en curso
// @Tags         counts
// @Produce      json
// @Success      200  {object}  dto.CountSessionResponse
// @Router       /api/counts/current [get]
func (h *InventoryHandler) Current(c *fiber.Ctx) error {
	out, err := h.counts.Current(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Start godoc
// @Summary      Iniciar conteo
// @Tags         counts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StartCountRequest  true  "TOTAL, PARTIAL o CYCLICAL"
// @Success      201   {object}  dto.CountSessionResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/counts [post]
func (h *InventoryHandler) Start(c *fiber.Ctx) error {
	var in dto.StartCountRequest
	if err := parseBody(c, &in); err != nil {
		return badBody(c)
	}
	in.Type = strings.ToUpper(strings.TrimSpace(in.Type))
	out, err := h.counts.Start(c.UserContext(), GetActor(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Manual godoc
// @Summary      Captura manual de una unidad
// @Tags         counts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ManualCaptureRequest  true  "Producto"
// @Success      200   {object}  dto.ScanResponse
// @Router       /api/counts/manual [post]
func (h *InventoryHandler) Manual(c *fiber.Ctx) error {
	var in dto.ManualCaptureRequest
	if err := parseBody(c, &in); err != nil {
		return badBody(c)
	}
	out, err := h.counts.ManualCapture(c.UserContext(), GetActor(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Commit godoc
// @Summary      Sincronizar conteo con el catálogo
// @Description  Si el store falla el conteo sigue abierto con su progreso.
// @Tags         counts
// @Produce      json
// @Success      200  {object}  dto.CommitCountResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/counts/commit [post]
func (h *InventoryHandler) Commit(c *fiber.Ctx) error {
	out, err := h.counts.Commit(c.UserContext(), GetActor(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancelar conteo
// @Tags         counts
// @Success      204
// @Router       /api/counts/current [delete]
func (h *InventoryHandler) Cancel(c *fiber.Ctx) error {
	if err := h.counts.Cancel(c.UserContext(), GetActor(c)); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
