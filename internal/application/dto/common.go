package dto

// ErrorResponse cuerpo de error que devuelve el backend.
type ErrorResponse struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	// FastAPI usa "detail" en vez de code/message.
	Detail string `json:"detail,omitempty"`
}

// Text devuelve el mensaje más específico disponible.
func (e ErrorResponse) Text() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}
