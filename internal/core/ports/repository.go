package ports

import "context"

// Filter is an equality/comparison filter over an entity's declared fields.
// Keys are bson field names.
type Filter map[string]any

// Repository defines generic CRUD over one entity type. Reads expand every
// reference field declared in the entity's schema descriptor into the
// referenced entity's full representation.
type Repository[T any] interface {
	// Create persists a new entity and returns the stored representation,
	// including the store-assigned identifier. A uniqueness violation is
	// reported as domain.ErrAlreadyExists.
	Create(ctx context.Context, doc *T) (*T, error)
	// Find returns all entities matching filter, references expanded.
	Find(ctx context.Context, filter Filter) ([]*T, error)
	// FindOne returns the first entity matching filter, or
	// domain.ErrNotFound when none matches.
	FindOne(ctx context.Context, filter Filter) (*T, error)
	// Update applies a partial field set to the entity identified by the hex
	// id and returns the entity after mutation. domain.ErrNotFound when no
	// entity has that identifier.
	Update(ctx context.Context, id string, patch Filter) (*T, error)
	// Delete removes the entity by hex id. Deleting a non-existent
	// identifier is not an error.
	Delete(ctx context.Context, id string) error
}
