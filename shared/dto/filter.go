package dto

import (
	"maps"
	"net/http"
	"net/url"
	"salondash/shared"
	"salondash/shared/constant"
	"slices"
	"strings"
)

// Filters is the shallow string map a list view narrows its collection with.
type Filters map[string]string

// Merge returns a copy of f with patch applied on top. Keys in patch replace earlier values;
// every other key is kept.
func (f Filters) Merge(patch Filters) Filters {
	merged := make(Filters, len(f)+len(patch))
	maps.Copy(merged, f)
	maps.Copy(merged, patch)

	return merged
}

// Clone returns an independent copy of f.
func (f Filters) Clone() Filters {
	return f.Merge(nil)
}

// Bool parses key as a boolean flag; missing or malformed values are false.
func (f Filters) Bool(key string) bool {
	v := shared.ConvertStringToBool(strings.TrimSpace(f[key]))

	return v != nil && *v
}

// Encode writes every non-empty filter into values.
func (f Filters) Encode(values url.Values) {
	for _, key := range slices.Sorted(maps.Keys(f)) {
		if v := strings.TrimSpace(f[key]); v != constant.Empty {
			values.Set(key, v)
		}
	}
}

// FiltersFromRequest collects the query parameters of r except pagination ones.
func FiltersFromRequest(r *http.Request) Filters {
	out := Filters{}
	for key, values := range r.URL.Query() {
		if key == constant.RequestParamPage || key == constant.RequestParamLimit || len(values) == 0 {
			continue
		}

		out[key] = values[0]
	}

	return out
}
