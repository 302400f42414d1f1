package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nexus-crm/internal/application/dto"
	"github.com/jhoicas/nexus-crm/internal/application/quotation"
	"github.com/jhoicas/nexus-crm/pkg/logger"
)

// QuotationHandler borrador de cotización del operador y cotizaciones guardadas.
type QuotationHandler struct {
	uc  *quotation.UseCase
	log *logger.Logger
}

// NewQuotationHandler construye el handler.
func NewQuotationHandler(uc *quotation.UseCase, log *logger.Logger) *QuotationHandler {
	return &QuotationHandler{uc: uc, log: log}
}

// Draft godoc
// @Summary      Borrador actual
// @Tags         quotations
// @Produce      json
// @Success      200  {object}  dto.DraftResponse
// @Router       /api/quotations/draft [get]
func (h *QuotationHandler) Draft(c *fiber.Ctx) error {
	return c.JSON(h.uc.Draft(c.UserContext(), GetActor(c)))
}

// SetCustomer godoc
// @Summary      Datos del cliente
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CustomerRequest  true  "Cliente"
// @Success      200   {object}  dto.DraftResponse
// @Router       /api/quotations/draft/customer [put]
func (h *QuotationHandler) SetCustomer(c *fiber.Ctx) error {
	var in dto.CustomerRequest
	if err := parseBody(c, &in); err != nil {
		return badBody(c)
	}
	return c.JSON(h.uc.SetCustomer(c.UserContext(), GetActor(c), in))
}

// AddItem godoc
// @Summary      Agregar producto
// @Description  Si el producto ya está en el borrador incrementa su cantidad.
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddItemRequest  true  "product_id o code"
// @Success      200   {object}  dto.DraftResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/quotations/draft/items [post]
func (h *QuotationHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddItemRequest
	if err := parseBody(c, &in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AddItem(c.UserContext(), GetActor(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// SetQuantity godoc
// @Summary      Cambiar cantidad
// @Description  Una cantidad menor a 1 se ignora y el borrador queda igual.
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID de la línea"
// @Param        body  body  dto.UpdateQuantityRequest  true  "Cantidad"
// @Success      200   {object}  dto.DraftResponse
// @Router       /api/quotations/draft/items/{id} [put]
func (h *QuotationHandler) SetQuantity(c *fiber.Ctx) error {
	var in dto.UpdateQuantityRequest
	if err := parseBody(c, &in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SetQuantity(c.UserContext(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// RemoveItem godoc
// @Summary      Quitar línea
// @Tags         quotations
// @Produce      json
// @Param        id   path  string  true  "ID de la línea"
// @Success      200  {object}  dto.DraftResponse
// @Router       /api/quotations/draft/items/{id} [delete]
func (h *QuotationHandler) RemoveItem(c *fiber.Ctx) error {
	out, err := h.uc.RemoveItem(c.UserContext(), GetActor(c), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Clear godoc
// @Summary      Vaciar borrador
// @Tags         quotations
// @Produce      json
// @Success      200  {object}  dto.DraftResponse
// @Router       /api/quotations/draft [delete]
func (h *QuotationHandler) Clear(c *fiber.Ctx) error {
	actor := GetActor(c)
	h.uc.Clear(c.UserContext(), actor)
	return c.JSON(h.uc.Draft(c.UserContext(), actor))
}

// Save godoc
// @Summary      Guardar cotización
// @Tags         quotations
// @Produce      json
// @Success      201  {object}  dto.SaveQuotationResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/quotations/draft/save [post]
func (h *QuotationHandler) Save(c *fiber.Ctx) error {
	out, err := h.uc.Save(c.UserContext(), GetActor(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Share godoc
// @Summary      Mensaje y enlace de WhatsApp
// @Tags         quotations
// @Produce      json
// @Success      200  {object}  dto.ShareResponse
// @Router       /api/quotations/draft/share [get]
func (h *QuotationHandler) Share(c *fiber.Ctx) error {
	out, err := h.uc.Share(c.UserContext(), GetActor(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Descargar cotización en PDF
// @Tags         quotations
// @Produce      application/pdf
// @Success      200
// @Router       /api/quotations/draft/pdf [get]
func (h *QuotationHandler) PDF(c *fiber.Ctx) error {
	out, filename, err := h.uc.RenderPDF(c.UserContext(), GetActor(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(out)
}

// List godoc
// @Summary      Cotizaciones guardadas
// @Tags         quotations
// @Produce      json
// @Success      200  {array}  dto.QuotationResponse
// @Router       /api/quotations [get]
func (h *QuotationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
