package http

import (
	"reflect"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// parseBody decodifica el cuerpo en out (puntero a struct) y copia sus campos string.
// Con cuerpos form-encoded fiber entrega strings que apuntan al buffer de la petición,
// que fasthttp reutiliza; los borradores, usuarios y configuración los conservan entre peticiones.
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return err
	}
	v := reflect.ValueOf(out)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil
	}
	v = v.Elem()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		if f.Kind() == reflect.String && f.CanSet() {
			f.SetString(utils.CopyString(f.String()))
		}
	}
	return nil
}
