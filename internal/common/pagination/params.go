package pagination

import (
	"fmt"
	"net/http"
	"strconv"
)

// Params are the parsed page/limit query parameters of a listing request.
type Params struct {
	Page  int
	Limit int
}

// ParseQueryParams reads page and limit from the request query. Missing
// parameters take the configured defaults; a non-positive page or a
// limit outside [1, MaxLimit] is an error so clients cannot request
// unbounded result sets.
func ParseQueryParams(r *http.Request, config Config) (Params, error) {
	params := Params{Page: config.DefaultPage, Limit: config.DefaultLimit}

	if err := parseBounded(r, "page", &params.Page, 0); err != nil {
		return params, err
	}
	if err := parseBounded(r, "limit", &params.Limit, config.MaxLimit); err != nil {
		return params, err
	}
	return params, nil
}

// parseBounded overwrites dst with the named query parameter when
// present. Values below 1 or above ceiling (when ceiling > 0) are
// rejected.
func parseBounded(r *http.Request, name string, dst *int, ceiling int) error {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return fmt.Errorf("invalid query parameter: %s must be a positive integer", name)
	}
	if ceiling > 0 && v > ceiling {
		return fmt.Errorf("invalid query parameter: %s must be between 1 and %d", name, ceiling)
	}
	*dst = v
	return nil
}
