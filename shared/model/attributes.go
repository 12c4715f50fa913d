package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"strconv"
	"strings"
)

// Attributes is a free-form JSON object. Backends that store it as a JSON-encoded string are
// read as well; null and "" decode to an empty map.
type Attributes map[string]any

func (a *Attributes) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = Attributes{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode attributes: %w", err)
		}

		if strings.TrimSpace(s) == "" {
			*a = Attributes{}
			return nil
		}

		data = []byte(s)
	}

	out := map[string]any{}
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("decode attributes: %w", err)
	}

	*a = out

	return nil
}

func (a Attributes) Clone() Attributes {
	if a == nil {
		return Attributes{}
	}

	return maps.Clone(a)
}

// Flag reads the first present key as a boolean. Booleans, numbers and "true"/"1"/"yes" strings
// are understood.
func (a Attributes) Flag(keys ...string) bool {
	for _, key := range keys {
		v, ok := a[key]
		if !ok || v == nil {
			continue
		}

		return truthy(v)
	}

	return false
}

func truthy(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case float64:
		return val != 0
	case int:
		return val != 0
	case string:
		s := strings.ToLower(strings.TrimSpace(val))
		if s == "yes" || s == "y" {
			return true
		}

		b, err := strconv.ParseBool(s)

		return err == nil && b
	default:
		return false
	}
}
