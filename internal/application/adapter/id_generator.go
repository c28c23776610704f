package adapter

import "github.com/google/uuid"

// IDGenerator produces collision-safe entity identifiers. The previous
// timestamp-derived scheme could collide on rapid sequential creation, so IDs
// are generated through this interface and injected into creation use cases.
type IDGenerator interface {
	NewID() uuid.UUID
}
