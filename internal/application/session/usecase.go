// Package session implementa el almacén de sesión: login contra la tabla fija
// de credenciales, logout y rehidratación desde el almacenamiento persistido.
package session

import (
	"fmt"
	"sync"

	"github.com/jhoicas/inventario-admin/internal/application/dto"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
	"github.com/jhoicas/inventario-admin/internal/domain/repository"
	"github.com/jhoicas/inventario-admin/pkg/jwt"
)

// State estado del almacén de sesión. Modelado como variante etiquetada para
// que los consumidores no redirijan antes de terminar la rehidratación.
type State int

const (
	StateUnresolved State = iota // aún no se intentó rehidratar
	StateAnonymous               // rehidratado, sin sesión
	StateAuthenticated
)

// credential entrada de la tabla fija. Comparación exacta, sin hashing ni
// llamadas externas: es una lista de demostración, no autenticación real.
type credential struct {
	id       string
	email    string
	password string
	role     string
}

var credentials = []credential{
	{id: "1", email: "admin@example.com", password: "admin123", role: entity.RoleAdmin},
	{id: "2", email: "user@example.com", password: "user123", role: entity.RoleExternal},
}

// JWTConfig configuración para la emisión de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Store almacén de la sesión actual. Construir al arrancar la aplicación y
// pasar por referencia a los consumidores; llamar Rehydrate antes de servir.
type Store struct {
	mu      sync.RWMutex
	state   State
	current *entity.Session
	repo    repository.SessionRepository
	jwtCfg  JWTConfig
}

// NewStore construye el almacén en estado Unresolved.
func NewStore(repo repository.SessionRepository, jwtCfg JWTConfig) *Store {
	return &Store{state: StateUnresolved, repo: repo, jwtCfg: jwtCfg}
}

// Rehydrate intenta recuperar la sesión persistida. Debe ejecutarse antes del
// primer render; en caso de error el almacén queda Anonymous y el error se
// devuelve para que el caller lo registre (la sesión perdida no es fatal).
func (s *Store) Rehydrate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved, err := s.repo.Load()
	if err != nil {
		s.state = StateAnonymous
		s.current = nil
		return fmt.Errorf("rehidratar sesión: %w", err)
	}
	if saved == nil {
		s.state = StateAnonymous
		s.current = nil
		return nil
	}
	s.state = StateAuthenticated
	s.current = saved
	return nil
}

// Login busca una coincidencia exacta en la tabla de credenciales.
// Sin coincidencia devuelve ok=false y ningún error: el caller decide el
// mensaje. Con coincidencia persiste el registro saneado (nunca la
// contraseña), emite el JWT y devuelve ambos.
func (s *Store) Login(email, password string) (*dto.LoginResponse, bool, error) {
	var match *credential
	for i := range credentials {
		if credentials[i].email == email && credentials[i].password == password {
			match = &credentials[i]
			break
		}
	}
	if match == nil {
		return nil, false, nil
	}

	sess := &entity.Session{ID: match.id, Email: match.email, Role: match.role}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.Save(sess); err != nil {
		return nil, true, fmt.Errorf("persistir sesión: %w", err)
	}
	s.state = StateAuthenticated
	s.current = sess

	token, err := jwt.Generate(s.jwtCfg.Secret, sess.ID, sess.Email, sess.Role, s.jwtCfg.Issuer, s.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, true, fmt.Errorf("emitir token: %w", err)
	}
	return &dto.LoginResponse{
		Token: token,
		User:  dto.SessionResponse{ID: sess.ID, Email: sess.Email, Role: sess.Role},
	}, true, nil
}

// Logout limpia la sesión en memoria y la persistida.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateAnonymous
	s.current = nil
	if err := s.repo.Clear(); err != nil {
		return fmt.Errorf("limpiar sesión persistida: %w", err)
	}
	return nil
}

// Current devuelve la sesión actual (nil si no hay) y el estado del almacén.
func (s *Store) Current() (*entity.Session, State) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, s.state
	}
	copy := *s.current
	return &copy, s.state
}
