package guard

// Route una vista navegable. RequiresAuth protege la ruta; GuestOnly la
// bloquea para usuarios ya autenticados (login/register).
type Route struct {
	Name         string
	Path         string
	RequiresAuth bool
	GuestOnly    bool
}

// Tabla de rutas de la aplicación. RouteWelcome es el aterrizaje público
// tras logout; RouteDashboard el aterrizaje autenticado por defecto.
var (
	RouteWelcome    = Route{Name: "welcome", Path: "/welcome"}
	RouteLogin      = Route{Name: "login", Path: "/login", GuestOnly: true}
	RouteRegister   = Route{Name: "register", Path: "/register", GuestOnly: true}
	RouteDashboard  = Route{Name: "dashboard", Path: "/dashboard", RequiresAuth: true}
	RouteProfile    = Route{Name: "profile", Path: "/profile", RequiresAuth: true}
	RouteUsers      = Route{Name: "users", Path: "/users", RequiresAuth: true}
	RouteCategories = Route{Name: "categories", Path: "/categories", RequiresAuth: true}
	RouteAccounts   = Route{Name: "accounts", Path: "/accounts", RequiresAuth: true}
	RouteExpenses   = Route{Name: "expenses", Path: "/expenses", RequiresAuth: true}
	RouteIncomes    = Route{Name: "incomes", Path: "/incomes", RequiresAuth: true}
)

// Routes tabla completa, en el orden del router original.
func Routes() []Route {
	return []Route{
		RouteWelcome,
		RouteLogin,
		RouteRegister,
		RouteDashboard,
		RouteProfile,
		RouteUsers,
		RouteCategories,
		RouteAccounts,
		RouteExpenses,
		RouteIncomes,
	}
}
