// Package adapters implements outbound service adapters for external concerns.
package adapters

import (
	"github.com/google/uuid"

	"github.com/wallet-tracker/backend/internal/application/adapter"
)

// uuidGenerator implements adapter.IDGenerator using random v4 UUIDs.
type uuidGenerator struct{}

// NewIDGenerator creates a new UUID-backed ID generator.
func NewIDGenerator() adapter.IDGenerator {
	return uuidGenerator{}
}

func (uuidGenerator) NewID() uuid.UUID {
	return uuid.New()
}
