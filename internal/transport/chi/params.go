package chi

import (
	"fmt"
	"net/http"

	gochi "github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/kailas-cloud/earlyhelp/internal/domain"
	"github.com/kailas-cloud/earlyhelp/internal/domain/search/filter"
	"github.com/kailas-cloud/earlyhelp/internal/domain/search/mode"
	"github.com/kailas-cloud/earlyhelp/internal/domain/search/request"
)

// listParams are the query parameters shared by listing endpoints.
// Not every endpoint honours every criterion.
type listParams struct {
	Q        string
	Mode     string
	Category string
	Tags     []string
	Role     string
	Zip      string
	Page     int
	Limit    int
}

// bindListParams binds ?q=&mode=&category=&tags=a&tags=b&role=&zip=&page=&limit=.
func bindListParams(r *http.Request) (listParams, error) {
	var p listParams
	query := r.URL.Query()

	binds := []struct {
		name string
		dest any
	}{
		{"q", &p.Q},
		{"mode", &p.Mode},
		{"category", &p.Category},
		{"tags", &p.Tags},
		{"role", &p.Role},
		{"zip", &p.Zip},
		{"page", &p.Page},
		{"limit", &p.Limit},
	}
	for _, b := range binds {
		if err := runtime.BindQueryParameter("form", true, false, b.name, query, b.dest); err != nil {
			return listParams{}, fmt.Errorf("%w: invalid format for parameter %s: %w", domain.ErrInvalidRequest, b.name, err)
		}
	}
	return p, nil
}

// searchRequest binds the listing query parameters into a validated request.
func searchRequest(r *http.Request) (request.Request, error) {
	p, err := bindListParams(r)
	if err != nil {
		return request.Request{}, err
	}
	crit, err := filter.NewCriteria(p.Category, p.Tags, p.Role, p.Zip)
	if err != nil {
		return request.Request{}, fmt.Errorf("%w: %w", domain.ErrInvalidRequest, err)
	}
	req, err := request.New(p.Q, mode.Mode(p.Mode), crit, p.Page, p.Limit)
	if err != nil {
		return request.Request{}, fmt.Errorf("%w: %w", domain.ErrInvalidRequest, err)
	}
	return req, nil
}

// pathParam binds a required simple-style path parameter.
func pathParam(r *http.Request, name string) (string, error) {
	var v string
	err := runtime.BindStyledParameterWithOptions("simple", name, gochi.URLParam(r, name), &v,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", fmt.Errorf("%w: invalid format for parameter %s: %w", domain.ErrInvalidRequest, name, err)
	}
	return v, nil
}
