package dto

// RegisterRequest entrada para POST /users (registro público).
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// LoginResponse respuesta de POST /users/login (flujo OAuth2 password).
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ProfileUpdate actualización parcial del perfil. Los campos nil no se
// tocan, tanto en PUT /users/me como en el merge local de la sesión.
type ProfileUpdate struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
}
