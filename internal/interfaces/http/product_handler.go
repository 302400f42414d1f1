package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nexus-crm/internal/application/analytics"
	"github.com/jhoicas/nexus-crm/internal/application/usecase"
	"github.com/jhoicas/nexus-crm/pkg/logger"
)

// ProductHandler catálogo cargado y KPIs.
type ProductHandler struct {
	products  *usecase.ProductUseCase
	dashboard *analytics.DashboardUseCase
	log       *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(products *usecase.ProductUseCase, dashboard *analytics.DashboardUseCase, log *logger.Logger) *ProductHandler {
	return &ProductHandler{products: products, dashboard: dashboard, log: log}
}

// List godoc
// @Summary      Listar catálogo
// @Description  is_demo=true indica que son datos de demostración y el cliente debe avisarlo.
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.products.List(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Reload godoc
// @Summary      Recargar catálogo desde el store
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/products/reload [post]
func (h *ProductHandler) Reload(c *fiber.Ctx) error {
	out, err := h.products.Reload(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Lookup godoc
// @Summary      Consultar un código
// @Description  Resuelve un SKU o tag RFID contra el catálogo sin afectar el conteo activo.
// @Tags         products
// @Produce      json
// @Param        code  path      string  true  "SKU o tag RFID"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/lookup/{code} [get]
func (h *ProductHandler) Lookup(c *fiber.Ctx) error {
	out, err := h.products.Lookup(c.UserContext(), c.Params("code"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Dashboard godoc
// @Summary      KPIs del inventario
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardDTO
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *ProductHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.dashboard.GetSummary(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
