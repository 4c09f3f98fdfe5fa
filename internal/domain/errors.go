package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInsufficientStock  = errors.New("stock insuficiente")

	// ErrDataUnavailable señala una falla del acceso a datos históricos (fuente inaccesible).
	// Se distingue de ErrNotFound: el recurso puede existir pero no se pudo consultar.
	ErrDataUnavailable = errors.New("datos históricos no disponibles")
)
