package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnknownItem        = errors.New("artículo sin lotes registrados")
	ErrOutOfStock         = errors.New("sin stock disponible")
	ErrInvalidQuantity    = errors.New("cantidad fuera del rango disponible")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)
