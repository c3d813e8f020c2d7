package dto

import (
	"net/url"
	"strconv"

	"github.com/jhoicas/finanzas-app/internal/domain/entity"
)

// ListFilter filtros de listado soportados por GET /expenses y /incomes.
// El servidor ya acota por la credencial; aquí solo van filtros explícitos.
type ListFilter struct {
	Type       string // "expense", "income" o vacío (solo la vista fusionada)
	StartDate  *entity.Date
	EndDate    *entity.Date
	CategoryID *int64
	AccountID  *int64
}

// Query serializa el filtro como query string.
func (f ListFilter) Query() url.Values {
	q := url.Values{}
	if f.StartDate != nil {
		q.Set("start_date", f.StartDate.String())
	}
	if f.EndDate != nil {
		q.Set("end_date", f.EndDate.String())
	}
	if f.CategoryID != nil {
		q.Set("category_id", strconv.FormatInt(*f.CategoryID, 10))
	}
	if f.AccountID != nil {
		q.Set("account_id", strconv.FormatInt(*f.AccountID, 10))
	}
	return q
}
