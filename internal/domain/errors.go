package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrDuplicate     = errors.New("recurso duplicado")
	ErrUnauthorized  = errors.New("no autorizado")
	ErrForbidden     = errors.New("acceso denegado")
	ErrConflict      = errors.New("conflicto con el estado actual")

	// Escaneo sin producto asociado (SKU ni tag RFID coinciden).
	ErrCodeNotRecognized = errors.New("código no registrado")
	// Cotización sin cliente o sin ítems; se rechaza antes de tocar el store.
	ErrValidation = errors.New("validación fallida")
	// El Catalog Store no respondió (red, DNS, 5xx, pool caído). Reintentable por el usuario.
	ErrBackendUnreachable = errors.New("catálogo no disponible")
	// El servicio de insights falló o devolvió algo no interpretable.
	ErrInsightUnavailable = errors.New("no se pudieron generar insights")

	ErrCountSessionActive   = errors.New("ya existe un conteo activo")
	ErrNoActiveCountSession = errors.New("no hay conteo activo")
)
