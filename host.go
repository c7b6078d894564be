package statekit

import "context"

// Host exposes the capabilities statekit consumes from the embedding model
// framework. Implementations typically wrap an ORM record or a store-backed
// entity; see pkg/pgstore and pkg/redisstore for reference adapters.
//
// Host implementations must be safe for use by a single goroutine per entity;
// statekit itself holds no mutable state across calls beyond the immutable
// rule table.
type Host[S comparable, E any] interface {
	// Current returns the entity's current value of the tracked field.
	// ok is false when the entity has no value yet (e.g. an unset column).
	Current(entity E) (value S, ok bool)

	// Previous returns the value the tracked field held before the pending
	// change. ok is false when there is no prior value (new entity). Hosts
	// that model "never had a value" as a real sentinel state return it with
	// ok=true so it can participate in From constraints.
	Previous(entity E) (value S, ok bool)

	// Changed reports whether the tracked field has a pending, unpersisted
	// change. The validation hook is a no-op when Changed is false.
	Changed(entity E) bool

	// Assign sets the tracked field to target and persists the entity.
	// On success the host updates its previous-value tracking so subsequent
	// evaluations see target as the current value.
	Assign(ctx context.Context, entity E, target S) error
}
