package interfaces

import (
	"context"

	"habita_crm/internal/domain/entities"
)

// ILeadRepository abstracts DynamoDB persistence for Lead documents.
//
// The store provides single-document read-modify-write with last-write-wins
// semantics; Update replaces the whole document with the snapshot produced
// by the transition engine.

type ILeadRepository interface {
	Create(ctx context.Context, lead entities.Lead) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	List(ctx context.Context) ([]entities.Lead, error)
	Update(ctx context.Context, lead entities.Lead) (entities.Lead, error)
	Delete(ctx context.Context, id string) error
}
