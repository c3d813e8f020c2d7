package session

import (
	"context"

	"github.com/jhoicas/finanzas-app/internal/application/dto"
	"github.com/jhoicas/finanzas-app/internal/domain/entity"
)

// AuthAPI puerto hacia el backend de autenticación (lo implementa rest.AuthRepo).
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (string, error)
	Me(ctx context.Context) (entity.User, error)
	UpdateMe(ctx context.Context, in dto.ProfileUpdate) (entity.User, error)
	Logout(ctx context.Context) error
}

// Storage persistencia de la credencial (y, en la variante que persiste,
// del usuario serializado). Invariante: credencial y usuario se guardan o
// se limpian juntos; Clear borra ambos.
type Storage interface {
	Token() string
	SetToken(tok string) error
	User() *entity.User
	SetUser(u *entity.User) error
	Clear() error
}
