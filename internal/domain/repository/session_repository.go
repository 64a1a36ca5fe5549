package repository

import "github.com/jhoicas/inventario-admin/internal/domain/entity"

// SessionRepository persiste el registro de sesión saneado (sin contraseña)
// bajo una clave fija: a lo sumo hay una sesión activa.
type SessionRepository interface {
	Save(session *entity.Session) error
	// Load devuelve (nil, nil) cuando no hay sesión guardada.
	Load() (*entity.Session, error)
	Clear() error
}
