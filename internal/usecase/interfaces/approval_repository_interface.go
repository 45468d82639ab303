package interfaces

import (
	"context"

	"habita_crm/internal/domain/entities"
)

// IApprovalRepository abstracts DynamoDB persistence for ApprovalRequest.

type IApprovalRepository interface {
	Create(ctx context.Context, req entities.ApprovalRequest) (entities.ApprovalRequest, error)
	GetByID(ctx context.Context, id string) (entities.ApprovalRequest, error)
	ListByStatus(ctx context.Context, status entities.ApprovalStatus) ([]entities.ApprovalRequest, error)
	Update(ctx context.Context, req entities.ApprovalRequest) (entities.ApprovalRequest, error)
}
