package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrDuplicate     = errors.New("recurso duplicado")
	ErrUnauthorized  = errors.New("no autorizado")
	ErrInvalidEmail  = errors.New("correo electrónico inválido")
	ErrEmptyResponse = errors.New("respuesta vacía del servicio externo")
)
