package crud

import "github.com/google/uuid"

// Lifecycle events published on the application event bus after each
// successful mutation. Subscribers match on the concrete entity type.

type CreatedEvent[E any] struct {
	Resource string
	Entity   E
}

type UpdatedEvent[E any] struct {
	Resource string
	Entity   E
}

type DeletedEvent[E any] struct {
	Resource string
	ID       uuid.UUID
}
