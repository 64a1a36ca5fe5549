package entity

// Roles válidos para una sesión.
const (
	RoleAdmin    = "admin"    // CRUD completo + recomendaciones IA
	RoleExternal = "external" // directorio e inventario de solo lectura
)

// Session registro saneado del usuario autenticado.
// Nunca incluye la contraseña: es lo único que se persiste.
type Session struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"` // admin | external
}
