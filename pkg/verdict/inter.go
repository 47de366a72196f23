package verdict

import (
	"time"

	"github.com/google/uuid"
)

// ValueProvider is satisfied by every wrapped-value type in this module.
// The returned value is the zero value when no value is carried.
type ValueProvider[T any] interface {
	// Value returns the carried value
	Value() T
}

// Stamped is satisfied by types that record construction provenance.
type Stamped interface {
	// Id is a unique identifier assigned at construction
	Id() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}
