package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/finanzas-app/internal/application/dto"
	"github.com/jhoicas/finanzas-app/internal/domain"
	"github.com/jhoicas/finanzas-app/internal/domain/entity"
	"github.com/jhoicas/finanzas-app/pkg/logger"
	"github.com/jhoicas/finanzas-app/pkg/token"
)

// Session dueña de la identidad del usuario actual. Se construye
// explícitamente al arrancar la aplicación y se inyecta donde haga falta;
// no hay estado global. Los stores de recursos nunca guardan copias del
// usuario: esta es la única fuente.
type Session struct {
	mu      sync.RWMutex
	api     AuthAPI
	storage Storage
	log     *logger.Logger
	now     func() time.Time
	user    *entity.User
}

// New construye la sesión sobre el puerto de auth y el almacenamiento dado.
func New(api AuthAPI, storage Storage, log *logger.Logger) *Session {
	return &Session{
		api:     api,
		storage: storage,
		log:     log,
		now:     time.Now,
	}
}

// Hydrate reconstruye el usuario en memoria a partir de la credencial
// persistida. Solo un fallo de autorización limpia la sesión; cualquier
// otro fallo (red, servidor) se propaga intacto para que decida el caller.
func (s *Session) Hydrate(ctx context.Context) error {
	if s.IsAuthenticated() {
		return nil
	}
	tok := s.storage.Token()
	if tok == "" {
		return domain.ErrNotAuthenticated
	}
	if token.Expired(tok, s.now()) {
		s.clear()
		return fmt.Errorf("credencial expirada: %w", domain.ErrUnauthorized)
	}

	user, err := s.api.Me(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			s.log.Warn().Msg("credencial inválida o expirada, limpiando sesión")
			s.clear()
		}
		return err
	}
	s.setUser(&user)
	return nil
}

// Login intercambia email+password por una credencial, la persiste y carga
// el perfil. Nunca propaga errores: ante cualquier fallo limpia la sesión y
// devuelve false.
func (s *Session) Login(ctx context.Context, email, password string) bool {
	tok, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.log.Error().Err(err).Msg("fallo en login")
		s.clear()
		return false
	}
	if err := s.storage.SetToken(tok); err != nil {
		s.log.Error().Err(err).Msg("no se pudo persistir la credencial")
		s.clear()
		return false
	}
	user, err := s.api.Me(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("fallo al cargar el perfil tras login")
		s.clear()
		return false
	}
	s.setUser(&user)
	return true
}

// Logout avisa al servidor (mejor esfuerzo) y limpia incondicionalmente la
// credencial y el usuario locales. La navegación posterior a la ruta
// pública es responsabilidad del guard/las vistas.
func (s *Session) Logout(ctx context.Context) {
	if err := s.api.Logout(ctx); err != nil {
		// Aunque el backend falle, limpiamos igual.
		s.log.Debug().Err(err).Msg("logout remoto falló")
	}
	s.clear()
}

// UpdateLocalProfile fusiona campos en el usuario en memoria sin ir al
// servidor. Si el almacenamiento persiste usuarios, re-serializa el
// resultado para mantener ambos en sincronía.
func (s *Session) UpdateLocalProfile(in dto.ProfileUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return
	}
	if in.Name != nil {
		s.user.Name = *in.Name
	}
	if in.Email != nil {
		s.user.Email = *in.Email
	}
	if in.Avatar != nil {
		s.user.Avatar = *in.Avatar
	}
	if s.storage.User() != nil {
		if err := s.storage.SetUser(s.user); err != nil {
			s.log.Warn().Err(err).Msg("no se pudo re-serializar el usuario")
		}
	}
}

// User copia del usuario actual, o nil.
func (s *Session) User() *entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAuthenticated true si y solo si hay usuario cargado.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// HasStoredCredential true si hay una credencial persistida.
func (s *Session) HasStoredCredential() bool {
	return s.storage.Token() != ""
}

// Role rol del usuario actual; "cliente" cuando no hay usuario.
func (s *Session) Role() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil || s.user.Role == "" {
		return entity.RoleCliente
	}
	return s.user.Role
}

// IsClient rol cliente.
func (s *Session) IsClient() bool { return s.Role() == entity.RoleCliente }

// IsSeller rol vendedor.
func (s *Session) IsSeller() bool { return s.Role() == entity.RoleVendedor }

// IsAdmin admin, superadmin y vendedor cuentan como administración.
func (s *Session) IsAdmin() bool {
	switch s.Role() {
	case entity.RoleAdmin, entity.RoleSuperAdmin, entity.RoleVendedor:
		return true
	}
	return false
}

// IsSuperAdmin rol superadmin.
func (s *Session) IsSuperAdmin() bool { return s.Role() == entity.RoleSuperAdmin }

func (s *Session) setUser(u *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
}

// clear borra usuario en memoria y almacenamiento a la vez: nunca queda uno
// sin el otro más allá de esta llamada.
func (s *Session) clear() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	if err := s.storage.Clear(); err != nil {
		s.log.Warn().Err(err).Msg("no se pudo limpiar el almacenamiento de sesión")
	}
}
