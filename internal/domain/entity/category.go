package entity

// Category categoría de gastos o ingresos.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
}

// NormalizeCategory normalización uniforme para Category.
func NormalizeCategory(c Category) Category {
	return c
}
