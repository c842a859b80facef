package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("usuario o contraseña incorrectos")
	ErrNoSession          = errors.New("no hay sesión activa")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrCategoryInUse      = errors.New("la categoría tiene productos asociados")
	ErrPersistence        = errors.New("no se pudo guardar el estado")
	ErrAlreadyInitialized = errors.New("el inventario ya fue inicializado")
	ErrNotInitialized     = errors.New("el inventario no fue inicializado")
)
