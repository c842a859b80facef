// Package auth contiene la política de acceso por rol y el portador de sesión.
//
// La tabla de credenciales es fija y compara en texto plano: sirve para atribuir
// movimientos a una identidad, no para proteger nada.
package auth

import (
	"sync"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/infrastructure/storage"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

type credential struct {
	password string
	user     entity.User
}

var credentials = map[string]credential{
	"admin":    {password: "1234", user: entity.User{Username: "admin", Name: "Administrador", Role: entity.RoleAdmin}},
	"empleado": {password: "1234", user: entity.User{Username: "empleado", Name: "Empleado", Role: entity.RoleEmployee}},
}

// Session guarda la identidad activa y la persiste (sin contraseña) bajo storage.KeyCurrentUser.
type Session struct {
	mu      sync.RWMutex
	store   *storage.Storage
	log     *logger.Logger
	current *entity.User
}

// NewSession construye el portador y restaura la sesión guardada si corresponde a una
// identidad conocida.
func NewSession(store *storage.Storage, log *logger.Logger) *Session {
	s := &Session{store: store, log: log.Component("session")}
	saved := storage.Load[*entity.User](store, storage.KeyCurrentUser, nil)
	if saved == nil {
		return s
	}
	role, err := entity.ParseRole(string(saved.Role))
	known, ok := credentials[saved.Username]
	if err != nil || !ok || known.user.Role != role {
		s.log.Warn().Str("username", saved.Username).Msg("sesión guardada desconocida, se descarta")
		store.Remove(storage.KeyCurrentUser)
		return s
	}
	u := known.user
	s.current = &u
	s.log.Info().Str("username", u.Username).Msg("sesión restaurada")
	return s
}

// Login compara contra la tabla fija. Usuario o contraseña incorrectos devuelven
// domain.ErrUnauthorized sin distinguir cuál falló.
func (s *Session) Login(username, password string) (entity.User, error) {
	c, ok := credentials[username]
	if !ok || c.password != password {
		s.log.Debug().Str("username", username).Msg("ingreso rechazado")
		return entity.User{}, domain.ErrUnauthorized
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u := c.user
	s.current = &u
	if !s.store.Save(storage.KeyCurrentUser, u) {
		s.log.Warn().Str("username", username).Msg("sesión no persistida; vale solo en memoria")
	}
	s.log.Info().Str("username", username).Str("role", string(u.Role)).Msg("ingreso")
	return u, nil
}

// Logout cierra la sesión activa, si la hay.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return
	}
	s.log.Info().Str("username", s.current.Username).Msg("salida")
	s.current = nil
	s.store.Remove(storage.KeyCurrentUser)
}

// Current devuelve una copia de la identidad activa o nil.
func (s *Session) Current() *entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

// Describe arma la respuesta de sesión con las vistas del rol.
func Describe(u entity.User) dto.SessionResponse {
	views := AllowedViews(u.Role)
	names := make([]string, 0, len(views))
	for _, v := range views {
		names = append(names, string(v))
	}
	return dto.SessionResponse{
		Username:  u.Username,
		Name:      u.Name,
		Role:      string(u.Role),
		RoleLabel: u.Role.DisplayName(),
		HomeView:  string(HomeView(u.Role)),
		Views:     names,
	}
}
