package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nexus-crm/internal/application/dto"
	"github.com/jhoicas/nexus-crm/internal/domain"
	"github.com/jhoicas/nexus-crm/pkg/logger"
)

type errorMapping struct {
	err     error
	status  int
	code    string
	message string
}

// errorTable el orden importa: los errores más específicos primero.
var errorTable = []errorMapping{
	{domain.ErrCodeNotRecognized, fiber.StatusNotFound, "CODE_NOT_RECOGNIZED", "código no registrado en el catálogo"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND", "recurso no encontrado"},
	{domain.ErrValidation, fiber.StatusUnprocessableEntity, "VALIDATION", "la cotización necesita cliente y al menos un producto"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "INVALID_INPUT", ""},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE", "el recurso ya existe"},
	{domain.ErrCountSessionActive, fiber.StatusConflict, "COUNT_ACTIVE", "ya hay un conteo en curso"},
	{domain.ErrNoActiveCountSession, fiber.StatusConflict, "NO_ACTIVE_COUNT", "no hay un conteo en curso"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT", ""},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED", "no autorizado"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN", "acceso denegado"},
	{domain.ErrBackendUnreachable, fiber.StatusServiceUnavailable, "BACKEND_UNREACHABLE", "el catálogo no responde; intenta de nuevo"},
	{domain.ErrInsightUnavailable, fiber.StatusServiceUnavailable, "INSIGHTS_UNAVAILABLE", "no se pudieron generar insights"},
}

// writeError traduce un error de dominio a su respuesta HTTP. Un mensaje vacío en la
// tabla usa el texto del error (útil para validaciones con detalle).
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	for _, m := range errorTable {
		if errors.Is(err, m.err) {
			msg := m.message
			if msg == "" {
				msg = err.Error()
			}
			if m.status >= fiber.StatusInternalServerError {
				log.Warn().Err(err).Str("path", c.Path()).Msg("dependencia no disponible")
			}
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: msg})
		}
	}
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo de la petición inválido"})
}
