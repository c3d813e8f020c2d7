package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/finanzas-app/internal/application/dto"
	"github.com/jhoicas/finanzas-app/internal/domain"
	"github.com/jhoicas/finanzas-app/pkg/logger"
)

// TokenSource vista de solo lectura de la credencial persistida. El cliente
// la consulta en cada petición; el almacenamiento de la sesión la implementa.
type TokenSource interface {
	Token() string
}

// Client adaptador HTTP hacia el backend REST. Adjunta la credencial Bearer
// cuando existe y traduce respuestas de error a centinelas de dominio.
type Client struct {
	base   *url.URL
	http   *http.Client
	tokens TokenSource
	log    *logger.Logger
}

// NewClient construye el adaptador. El timeout es del transporte completo;
// esta capa no impone timeouts propios ni cancelación.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, log *logger.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("url base inválida %q: %w", baseURL, err)
	}
	return &Client{
		base:   base,
		http:   &http.Client{Timeout: timeout},
		tokens: tokens,
		log:    log,
	}, nil
}

// do petición JSON: serializa body (si no es nil), deserializa en out (si no
// es nil) y mapea estados >= 400 a errores de dominio.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("serializar cuerpo: %w", err)
		}
		reader = bytes.NewReader(raw)
	}
	req, err := c.newRequest(ctx, method, path, query, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

// postForm petición application/x-www-form-urlencoded (login OAuth2).
func (c *Client) postForm(ctx context.Context, path string, form url.Values, out any) error {
	req, err := c.newRequest(ctx, http.MethodPost, path, nil, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.send(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("construir petición %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if tok := c.tokens.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	return req, nil
}

func (c *Client) send(req *http.Request, out any) error {
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", req.Method).Str("path", req.URL.Path).Msg("fallo de transporte")
		return fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("petición HTTP")

	if resp.StatusCode >= http.StatusBadRequest {
		return c.statusError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("deserializar respuesta de %s: %w", req.URL.Path, err)
	}
	return nil
}

// statusError traduce el estado HTTP al centinela correspondiente,
// conservando el mensaje del servidor cuando viene uno.
func (c *Client) statusError(resp *http.Response) error {
	var sentinel error
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		sentinel = domain.ErrUnauthorized
	case resp.StatusCode == http.StatusForbidden:
		sentinel = domain.ErrForbidden
	case resp.StatusCode == http.StatusNotFound:
		sentinel = domain.ErrNotFound
	case resp.StatusCode < http.StatusInternalServerError:
		sentinel = domain.ErrValidation
	default:
		sentinel = domain.ErrServer
	}

	var body dto.ErrorResponse
	_ = json.NewDecoder(resp.Body).Decode(&body)
	if msg := body.Text(); msg != "" {
		return fmt.Errorf("%w: %s", sentinel, msg)
	}
	return fmt.Errorf("%w (HTTP %d)", sentinel, resp.StatusCode)
}
