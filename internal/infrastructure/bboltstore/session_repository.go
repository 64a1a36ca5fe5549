package bboltstore

import (
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/jhoicas/inventario-admin/internal/domain/entity"
	"github.com/jhoicas/inventario-admin/internal/domain/repository"
)

// Asegura que SessionRepo implementa repository.SessionRepository.
var _ repository.SessionRepository = (*SessionRepo)(nil)

// Clave fija del registro de sesión: a lo sumo hay una sesión activa.
var sessionKey = []byte("user")

// SessionRepo persiste el registro saneado de sesión en su propio bucket.
type SessionRepo struct {
	store *Store
}

// NewSessionRepository construye el adaptador local de sesión.
func NewSessionRepository(store *Store) *SessionRepo {
	return &SessionRepo{store: store}
}

// Save escribe la sesión bajo la clave fija.
func (r *SessionRepo) Save(session *entity.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("serializar sesión: %w", err)
	}
	return r.store.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSession).Put(sessionKey, raw)
	})
}

// Load devuelve la sesión persistida o (nil, nil) si no hay ninguna.
func (r *SessionRepo) Load() (*entity.Session, error) {
	var session *entity.Session
	err := r.store.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketSession).Get(sessionKey)
		if raw == nil {
			return nil
		}
		var s entity.Session
		if err := json.Unmarshal(raw, &s); err != nil {
			return fmt.Errorf("decodificar sesión: %w", err)
		}
		session = &s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// Clear elimina la sesión persistida.
func (r *SessionRepo) Clear() error {
	return r.store.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSession).Delete(sessionKey)
	})
}
