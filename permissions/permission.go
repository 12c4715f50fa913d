// Package permissions lists the dashboard routes that are reachable without a session.
package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

type Endpoint struct {
	Path   string `json:"path"`
	Method string `json:"method"`
	Skip   bool   `json:"skip"`
}

type PermissionData struct {
	Endpoints []Endpoint `json:"endpoints"`
}

// Find returns the entry for a route pattern and method, or the zero Endpoint.
func (r *PermissionData) Find(path, method string) Endpoint {
	idx := slices.IndexFunc(r.Endpoints, func(e Endpoint) bool {
		return e.Path == path && e.Method == method
	})

	if idx == -1 {
		return Endpoint{}
	}

	return r.Endpoints[idx]
}

// IsPublic reports whether a route skips session authentication.
func (r *PermissionData) IsPublic(path, method string) bool {
	if r == nil {
		return false
	}

	return r.Find(path, method).Skip
}

func Get() *PermissionData {
	var permissions PermissionData

	err := json.Unmarshal(permissionsData, &permissions)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return &permissions
}
