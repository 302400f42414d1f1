package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nexus-crm/internal/application/dto"
	"github.com/jhoicas/nexus-crm/internal/application/identity"
	"github.com/jhoicas/nexus-crm/internal/domain/entity"
)

// LocalActor clave de c.Locals con el operador resuelto.
const LocalActor = "actor"

// IdentityMiddleware resuelve el operador de la petición con el proveedor configurado
// y lo deja en c.Locals. Sin operador la petición se rechaza con 401.
func IdentityMiddleware(provider identity.Provider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := provider.Resolve(c.UserContext(), c.Get(fiber.HeaderAuthorization))
		if err != nil || actor == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "UNAUTHORIZED", Message: "no se pudo identificar al operador",
			})
		}
		c.Locals(LocalActor, actor)
		return c.Next()
	}
}

// GetActor devuelve el operador resuelto por IdentityMiddleware (nil si no pasó por él).
func GetActor(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(LocalActor).(*entity.User)
	return u
}

// sectionChecker lo implementa *usecase.NavigationService.
type sectionChecker interface {
	HasAccess(role, section string) bool
}

// RequireSection deja pasar solo a los roles con acceso a la sección.
// El rol sale del operador resuelto en el servidor, nunca del cuerpo de la petición.
func RequireSection(section string, nav sectionChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := GetActor(c)
		if actor == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "UNAUTHORIZED", Message: "operador no identificado",
			})
		}
		if !nav.HasAccess(actor.Role, section) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "el rol " + actor.Role + " no tiene acceso a '" + section + "'",
			})
		}
		return c.Next()
	}
}
