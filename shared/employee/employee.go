// Package employee finds the display name of the staff member assigned to a booking.
//
// The backend does not pin down the shape of the employee relation, so Resolve first tries
// the known shapes and only then walks the object looking for a plausible name.
package employee

import (
	"maps"
	"slices"
	"strings"
)

// MaxDepth bounds the fallback walk.
const MaxDepth = 4

var (
	flatKeys     = []string{"employee_name", "staff_name", "provider_name", "assigned_to_name"}
	relationKeys = []string{"employee", "staff", "provider", "assigned_to"}
	nameKeys     = []string{"name", "full_name", "display_name"}
	keywords     = []string{"employee", "staff", "provider", "assigned"}
)

// Resolve returns the employee name found in booking, or fallback when there is none.
func Resolve(booking map[string]any, fallback string) string {
	if name := lookup(booking); name != "" {
		return name
	}

	if name := walk(booking, 0, false); name != "" {
		return name
	}

	return fallback
}

func lookup(booking map[string]any) string {
	for _, key := range flatKeys {
		if s := text(booking[key]); s != "" {
			return s
		}
	}

	for _, key := range relationKeys {
		switch rel := booking[key].(type) {
		case string:
			if s := strings.TrimSpace(rel); s != "" {
				return s
			}
		case map[string]any:
			for _, nk := range nameKeys {
				if s := text(rel[nk]); s != "" {
					return s
				}
			}

			first, last := text(rel["first_name"]), text(rel["last_name"])
			if full := strings.TrimSpace(first + " " + last); full != "" {
				return full
			}
		}
	}

	return ""
}

func walk(node any, depth int, flagged bool) string {
	if depth > MaxDepth {
		return ""
	}

	switch v := node.(type) {
	case map[string]any:
		for _, key := range slices.Sorted(maps.Keys(v)) {
			lower := strings.ToLower(key)
			hit := hasKeyword(lower)

			if s := text(v[key]); s != "" {
				if hit || (flagged && strings.Contains(lower, "name")) {
					return s
				}

				continue
			}

			if name := walk(v[key], depth+1, flagged || hit); name != "" {
				return name
			}
		}
	case []any:
		for _, item := range v {
			if name := walk(item, depth+1, flagged); name != "" {
				return name
			}
		}
	}

	return ""
}

func hasKeyword(key string) bool {
	for _, kw := range keywords {
		if strings.Contains(key, kw) {
			return true
		}
	}

	return false
}

func text(v any) string {
	s, _ := v.(string)

	return strings.TrimSpace(s)
}
