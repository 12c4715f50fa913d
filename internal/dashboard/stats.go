package dashboard

import (
	"encoding/json"
	"fmt"
	"salondash/shared/repository"
)

const (
	PayloadKeyStats = "stats"
	payloadKeyOK    = "ok"
)

// StatsFromPayload reads the stats object of an overview response. Backends that put the
// counters next to "ok" instead of under "stats" are read as well.
func StatsFromPayload(payload repository.Payload) (Stats, error) {
	stats := Stats{}

	found, err := payload.Decode(&stats, PayloadKeyStats)
	if err != nil {
		return nil, err
	}

	if found {
		return stats, nil
	}

	for key, raw := range payload {
		if key == payloadKeyOK {
			continue
		}

		var v any
		if err = json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("failed to decode stat %q: %w", key, err)
		}

		stats[key] = v
	}

	return stats, nil
}
