package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrProductNotFound   = errors.New("producto no encontrado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrInvalidRange      = errors.New("seleccione las fechas inicial y final")
	ErrImport            = errors.New("archivo de respaldo inválido")
	ErrSync              = errors.New("error al sincronizar la planilla")
	ErrCorruptData       = errors.New("datos persistidos ilegibles")
)
