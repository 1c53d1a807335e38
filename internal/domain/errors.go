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
	ErrUnknownTier        = errors.New("nivel de membresía desconocido")
	ErrTierNotUpgradeable = errors.New("el nivel no es superior al actual")
	ErrPaymentDeclined    = errors.New("el pago fue rechazado")
	ErrPasswordMismatch   = errors.New("las contraseñas no coinciden")
)
