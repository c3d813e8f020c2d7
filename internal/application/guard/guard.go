package guard

import (
	"context"

	"github.com/jhoicas/finanzas-app/pkg/logger"
)

// SessionState lo que el guard necesita de la sesión.
type SessionState interface {
	IsAuthenticated() bool
	HasStoredCredential() bool
	Hydrate(ctx context.Context) error
	Logout(ctx context.Context)
}

// Decision resultado de evaluar una navegación. Se resuelve por completo
// antes de renderizar nada: no hay renders parciales de vistas protegidas.
type Decision int

const (
	// DecisionAllow la navegación procede.
	DecisionAllow Decision = iota
	// DecisionRedirectLogin destino protegido sin sesión válida.
	DecisionRedirectLogin
	// DecisionRedirectDashboard destino solo-invitados con sesión activa.
	DecisionRedirectDashboard
)

func (d Decision) String() string {
	switch d {
	case DecisionRedirectLogin:
		return "redirect:" + RouteLogin.Path
	case DecisionRedirectDashboard:
		return "redirect:" + RouteDashboard.Path
	default:
		return "allow"
	}
}

// Target ruta a la que redirige la decisión; la propia ruta pedida si es Allow.
func (d Decision) Target(requested Route) Route {
	switch d {
	case DecisionRedirectLogin:
		return RouteLogin
	case DecisionRedirectDashboard:
		return RouteDashboard
	default:
		return requested
	}
}

// Guard consulta la sesión antes de permitir el acceso a vistas protegidas.
type Guard struct {
	session SessionState
	log     *logger.Logger
}

// New construye el guard sobre la sesión inyectada.
func New(session SessionState, log *logger.Logger) *Guard {
	return &Guard{session: session, log: log}
}

// Resolve evalúa un intento de navegación. Si hay credencial persistida y
// ningún usuario cargado, hidrata exactamente una vez antes de decidir; un
// fallo de hidratación limpia la sesión y manda al login (terminal).
func (g *Guard) Resolve(ctx context.Context, route Route) Decision {
	if !g.session.IsAuthenticated() && g.session.HasStoredCredential() {
		if err := g.session.Hydrate(ctx); err != nil {
			g.log.Warn().Err(err).Str("route", route.Name).Msg("hidratación fallida, redirigiendo a login")
			g.session.Logout(ctx)
			return DecisionRedirectLogin
		}
	}

	if route.RequiresAuth && !g.session.IsAuthenticated() {
		return DecisionRedirectLogin
	}
	if route.GuestOnly && g.session.IsAuthenticated() {
		return DecisionRedirectDashboard
	}
	return DecisionAllow
}
