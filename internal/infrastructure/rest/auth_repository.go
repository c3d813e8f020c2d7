package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/finanzas-app/internal/application/dto"
	"github.com/jhoicas/finanzas-app/internal/domain/entity"
)

// AuthRepo operaciones de autenticación y perfil sobre /users.
type AuthRepo struct {
	c *Client
}

// NewAuthRepo construye el adaptador de auth.
func NewAuthRepo(c *Client) *AuthRepo {
	return &AuthRepo{c: c}
}

// Login intercambia email+password por una credencial. El endpoint sigue el
// flujo OAuth2 password: form-encoded y el email viaja como "username".
func (r *AuthRepo) Login(ctx context.Context, email, password string) (string, error) {
	form := url.Values{
		"username": {email},
		"password": {password},
	}
	var out dto.LoginResponse
	if err := r.c.postForm(ctx, "/users/login", form, &out); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

// Register alta pública de usuario.
func (r *AuthRepo) Register(ctx context.Context, in dto.RegisterRequest) (entity.User, error) {
	var out entity.User
	err := r.c.do(ctx, http.MethodPost, "/users", nil, in, &out)
	return out, err
}

// Me perfil del usuario autenticado por la credencial actual.
func (r *AuthRepo) Me(ctx context.Context) (entity.User, error) {
	var out entity.User
	err := r.c.do(ctx, http.MethodGet, "/users/me", nil, nil, &out)
	return out, err
}

// UpdateMe actualización parcial del perfil en el servidor.
func (r *AuthRepo) UpdateMe(ctx context.Context, in dto.ProfileUpdate) (entity.User, error) {
	var out entity.User
	err := r.c.do(ctx, http.MethodPut, "/users/me", nil, in, &out)
	return out, err
}

// Logout aviso al servidor; el que falle no impide cerrar sesión local.
func (r *AuthRepo) Logout(ctx context.Context) error {
	return r.c.do(ctx, http.MethodPost, "/users/logout", nil, nil, nil)
}
