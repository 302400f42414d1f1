package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nexus-crm/internal/application/dto"
	"github.com/jhoicas/nexus-crm/internal/application/usecase"
	"github.com/jhoicas/nexus-crm/pkg/logger"
)

// UserHandler operador actual, navegación y gestión de personal.
type UserHandler struct {
	users *usecase.UserUseCase
	nav   *usecase.NavigationService
	log   *logger.Logger
}

// NewUserHandler construye el handler.
func NewUserHandler(users *usecase.UserUseCase, nav *usecase.NavigationService, log *logger.Logger) *UserHandler {
	return &UserHandler{users: users, nav: nav, log: log}
}

// Me godoc
// @Summary      Operador actual
// @Tags         users
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Router       /api/me [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	return c.JSON(usecase.UserResponseFrom(GetActor(c)))
}

// Navigation godoc
// @Summary      Secciones visibles para el rol del operador
// @Tags         users
// @Produce      json
// @Success      200  {object}  dto.NavigationResponse
// @Router       /api/navigation [get]
func (h *UserHandler) Navigation(c *fiber.Ctx) error {
	return c.JSON(h.nav.Sections(GetActor(c).Role))
}

// List godoc
// @Summary      Listar personal
// @Tags         users
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.users.List(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Alta de usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "Usuario"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := parseBody(c, &in); err != nil {
		return badBody(c)
	}
	out, err := h.users.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Baja de usuario
// @Tags         users
// @Param        id   path  string  true  "ID del usuario"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.users.Delete(c.UserContext(), GetActor(c).ID, c.Params("id")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
