package dto

// ErrorResponse cuerpo de error HTTP.
// Login indica, cuando aplica, la ruta de inicio de sesión a la que debe
// dirigirse el cliente (el guard no distingue "sin sesión" de "rol
// insuficiente": ambos casos llevan al login).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Login   string `json:"login,omitempty"`
}

// MessageResponse cuerpo de confirmación simple.
type MessageResponse struct {
	Message string `json:"message"`
}
