package model

import (
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
)

// marshalColumn serializes a value for a jsonb column, falling back to an
// empty object on error so a single bad row never blocks a write.
func marshalColumn(v interface{}, id uuid.UUID, field string) string {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("Failed to marshal column", "error", err, "id", id, "field", field)
		return "{}"
	}
	return string(data)
}

// unmarshalColumn parses a jsonb column into out, logging instead of failing
// on malformed data.
func unmarshalColumn(raw string, out interface{}, id uuid.UUID, field string) {
	if raw == "" {
		return
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		slog.Warn("Failed to unmarshal column", "error", err, "id", id, "field", field)
	}
}
