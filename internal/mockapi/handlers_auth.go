package mockapi

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/finanzas-app/internal/application/dto"
	"github.com/jhoicas/finanzas-app/internal/domain/entity"
)

const localUserID = "user_id"

// register POST /users — alta pública.
func (s *Server) register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	if in.ConfirmPassword != "" && in.ConfirmPassword != in.Password {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "las contraseñas no coinciden"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byEmail[in.Email]; exists {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el email ya está registrado"})
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	name := in.Name
	if name == "" {
		name = in.Email
	}
	rec := &userRecord{
		user: entity.User{
			ID:        s.allocID(),
			Name:      name,
			Email:     in.Email,
			Role:      entity.RoleCliente,
			CreatedAt: time.Now().UTC(),
		},
		hash: hash,
	}
	s.byEmail[in.Email] = rec
	s.byID[rec.user.ID] = rec
	return c.Status(fiber.StatusCreated).JSON(rec.user)
}

// login POST /users/login — flujo OAuth2 password: form-encoded, el email
// viaja como "username" y la respuesta lleva access_token.
func (s *Server) login(c *fiber.Ctx) error {
	email := c.FormValue("username")
	password := c.FormValue("password")
	if email == "" || password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username y password son requeridos"})
	}

	s.mu.Lock()
	rec, ok := s.byEmail[email]
	s.mu.Unlock()
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	}
	if err := bcrypt.CompareHashAndPassword(rec.hash, []byte(password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokTTL)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.LoginResponse{AccessToken: tok, TokenType: "bearer"})
}

// authMiddleware valida el Bearer token y deja el user_id en c.Locals.
func (s *Server) authMiddleware(c *fiber.Ctx) error {
	header := c.Get("Authorization")
	if header == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
	}

	claims := jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(strings.TrimSpace(parts[1]), &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
	}

	s.mu.Lock()
	rec, ok := s.byEmail[claims.Subject]
	s.mu.Unlock()
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "usuario desconocido"})
	}
	c.Locals(localUserID, rec.user.ID)
	return c.Next()
}

func (s *Server) currentUID(c *fiber.Ctx) int64 {
	v, _ := c.Locals(localUserID).(int64)
	return v
}

// me GET /users/me.
func (s *Server) me(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.byID[s.currentUID(c)]
	return c.JSON(rec.user)
}

// updateMe PUT /users/me — actualización parcial del perfil.
func (s *Server) updateMe(c *fiber.Ctx) error {
	var in dto.ProfileUpdate
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.byID[s.currentUID(c)]
	if in.Name != nil {
		rec.user.Name = *in.Name
	}
	if in.Email != nil {
		delete(s.byEmail, rec.user.Email)
		rec.user.Email = *in.Email
		s.byEmail[rec.user.Email] = rec
	}
	if in.Avatar != nil {
		rec.user.Avatar = *in.Avatar
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		rec.hash = hash
	}
	return c.JSON(rec.user)
}

// logout POST /users/logout — el backend no guarda estado de sesión.
func (s *Server) logout(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
