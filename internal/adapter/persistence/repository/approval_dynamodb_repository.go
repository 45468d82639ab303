package repository

import (
	"context"
	"time"

	"habita_crm/internal/domain/entities"
	"habita_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultApprovalsTableName = "approval_requests"
	approvalsStatusIndex      = "status-index"
)

type approvalItem struct {
	ID          string `dynamodbav:"id"`
	Type        string `dynamodbav:"type"`
	LeadID      string `dynamodbav:"lead_id"`
	TargetPhase string `dynamodbav:"target_phase,omitempty"`
	RequestedBy string `dynamodbav:"requested_by"`
	Motive      string `dynamodbav:"motive,omitempty"`
	Status      string `dynamodbav:"status"`
	DecidedBy   string `dynamodbav:"decided_by,omitempty"`
	DecidedAt   string `dynamodbav:"decided_at,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// ApprovalDynamoRepository persists ApprovalRequest records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-index (PK: status)

type ApprovalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IApprovalRepository = (*ApprovalDynamoRepository)(nil)

func NewApprovalDynamoRepository(ddb *dynamodb.Client) *ApprovalDynamoRepository {
	return &ApprovalDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("APPROVALS_TABLE", defaultApprovalsTableName),
	}
}

func (r *ApprovalDynamoRepository) Create(ctx context.Context, req entities.ApprovalRequest) (entities.ApprovalRequest, error) {
	av, err := attributevalue.MarshalMap(toApprovalItem(req))
	if err != nil {
		return entities.ApprovalRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ApprovalRequest{}, err
	}
	return req, nil
}

func (r *ApprovalDynamoRepository) GetByID(ctx context.Context, id string) (entities.ApprovalRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ApprovalRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.ApprovalRequest{}, nil
	}

	var it approvalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ApprovalRequest{}, err
	}
	return fromApprovalItem(it), nil
}

func (r *ApprovalDynamoRepository) ListByStatus(ctx context.Context, status entities.ApprovalStatus) ([]entities.ApprovalRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(approvalsStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ApprovalRequest, 0, len(out.Items))
	for _, raw := range out.Items {
		var it approvalItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromApprovalItem(it))
	}
	return items, nil
}

func (r *ApprovalDynamoRepository) Update(ctx context.Context, req entities.ApprovalRequest) (entities.ApprovalRequest, error) {
	av, err := attributevalue.MarshalMap(toApprovalItem(req))
	if err != nil {
		return entities.ApprovalRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ApprovalRequest{}, err
	}
	return req, nil
}

func toApprovalItem(req entities.ApprovalRequest) approvalItem {
	it := approvalItem{
		ID:          req.ID,
		Type:        string(req.Type),
		LeadID:      req.LeadID,
		TargetPhase: string(req.TargetPhase),
		RequestedBy: req.RequestedBy,
		Motive:      req.Motive,
		Status:      string(req.Status),
		DecidedBy:   req.DecidedBy,
		CreatedAt:   req.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if req.DecidedAt != nil {
		it.DecidedAt = req.DecidedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromApprovalItem(it approvalItem) entities.ApprovalRequest {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)

	req := entities.ApprovalRequest{
		ID:          it.ID,
		Type:        entities.ApprovalType(it.Type),
		LeadID:      it.LeadID,
		TargetPhase: entities.Phase(it.TargetPhase),
		RequestedBy: it.RequestedBy,
		Motive:      it.Motive,
		Status:      entities.ApprovalStatus(it.Status),
		DecidedBy:   it.DecidedBy,
		CreatedAt:   createdAt,
	}
	if it.DecidedAt != "" {
		d, _ := time.Parse(time.RFC3339Nano, it.DecidedAt)
		req.DecidedAt = &d
	}
	return req
}
