package interfaces

import "context"

// IReferenceRepository abstracts persistence for the flat reference
// collections (clients, brokers, properties, banks, construction
// companies). The pipeline core only ever creates and reads them; the
// generic administrative screens own richer editing.

type IReferenceRepository[T any] interface {
	Create(ctx context.Context, item T) (T, error)
	GetByID(ctx context.Context, id string) (T, error)
	List(ctx context.Context) ([]T, error)
}
