package repository

import (
	"context"
	"encoding/json"
	"time"

	"habita_crm/internal/domain/entities"
	"habita_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultLeadsTableName = "leads"

type leadItem struct {
	ID                    string `dynamodbav:"id"`
	ClientID              string `dynamodbav:"client_id"`
	BrokerID              string `dynamodbav:"broker_id,omitempty"`
	PropertyID            string `dynamodbav:"property_id"`
	BankID                string `dynamodbav:"bank_id,omitempty"`
	ConstructionCompanyID string `dynamodbav:"construction_company_id,omitempty"`
	CurrentPhase          string `dynamodbav:"current_phase"`
	Status                string `dynamodbav:"status"`
	CreatedAt             string `dynamodbav:"created_at"`
	History               string `dynamodbav:"history"`
	Motive                string `dynamodbav:"motive,omitempty"`
	AppraisalValue        string `dynamodbav:"appraisal_value,omitempty"`
	VisitDate             string `dynamodbav:"visit_date,omitempty"`
	InspectionDate        string `dynamodbav:"inspection_date,omitempty"`
	RegistryDate          string `dynamodbav:"registry_date,omitempty"`
	InternalMessage       string `dynamodbav:"internal_message,omitempty"`
	Overrides             string `dynamodbav:"overrides,omitempty"`
}

// LeadDynamoRepository persists Lead documents in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// History and override trails are stored as JSON documents inside the
// item: they are only ever read and replaced whole, together with the
// lead (single-document read-modify-write, last write wins).

type LeadDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILeadRepository = (*LeadDynamoRepository)(nil)

func NewLeadDynamoRepository(ddb *dynamodb.Client) *LeadDynamoRepository {
	return &LeadDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LEADS_TABLE", defaultLeadsTableName),
	}
}

func (r *LeadDynamoRepository) Create(ctx context.Context, lead entities.Lead) (entities.Lead, error) {
	it, err := toLeadItem(lead)
	if err != nil {
		return entities.Lead{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Lead{}, err
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
		return entities.Lead{}, err
	}
	return lead, nil
}

func (r *LeadDynamoRepository) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Lead{}, err
	}
	if len(out.Item) == 0 {
		return entities.Lead{}, nil
	}

	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it)
}

func (r *LeadDynamoRepository) List(ctx context.Context) ([]entities.Lead, error) {
	leads := make([]entities.Lead, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it leadItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			lead, err := fromLeadItem(it)
			if err != nil {
				return nil, err
			}
			leads = append(leads, lead)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return leads, nil
}

// Update replaces the whole document. The engine produced the snapshot
// from a fresh read; concurrent writers resolve last-write-wins.
func (r *LeadDynamoRepository) Update(ctx context.Context, lead entities.Lead) (entities.Lead, error) {
	it, err := toLeadItem(lead)
	if err != nil {
		return entities.Lead{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Lead{}, err
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
		return entities.Lead{}, err
	}
	return lead, nil
}

func (r *LeadDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toLeadItem(l entities.Lead) (leadItem, error) {
	history, err := json.Marshal(l.History)
	if err != nil {
		return leadItem{}, err
	}

	it := leadItem{
		ID:                    l.ID,
		ClientID:              l.ClientID,
		BrokerID:              l.BrokerID,
		PropertyID:            l.PropertyID,
		BankID:                l.BankID,
		ConstructionCompanyID: l.ConstructionCompanyID,
		CurrentPhase:          string(l.CurrentPhase),
		Status:                string(l.Status),
		CreatedAt:             l.CreatedAt.UTC().Format(time.RFC3339Nano),
		History:               string(history),
		Motive:                l.Motive,
		InternalMessage:       l.InternalMessage,
	}
	if l.AppraisalValue != nil {
		it.AppraisalValue = l.AppraisalValue.String()
	}
	if l.VisitDate != nil {
		it.VisitDate = l.VisitDate.UTC().Format(time.RFC3339Nano)
	}
	if l.InspectionDate != nil {
		it.InspectionDate = l.InspectionDate.UTC().Format(time.RFC3339Nano)
	}
	if l.RegistryDate != nil {
		it.RegistryDate = l.RegistryDate.UTC().Format(time.RFC3339Nano)
	}
	if len(l.Overrides) > 0 {
		overrides, err := json.Marshal(l.Overrides)
		if err != nil {
			return leadItem{}, err
		}
		it.Overrides = string(overrides)
	}
	return it, nil
}

func fromLeadItem(it leadItem) (entities.Lead, error) {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)

	l := entities.Lead{
		ID:                    it.ID,
		ClientID:              it.ClientID,
		BrokerID:              it.BrokerID,
		PropertyID:            it.PropertyID,
		BankID:                it.BankID,
		ConstructionCompanyID: it.ConstructionCompanyID,
		CurrentPhase:          entities.Phase(it.CurrentPhase),
		Status:                entities.LeadStatus(it.Status),
		CreatedAt:             createdAt,
		Motive:                it.Motive,
		InternalMessage:       it.InternalMessage,
	}

	if it.History != "" {
		if err := json.Unmarshal([]byte(it.History), &l.History); err != nil {
			return entities.Lead{}, err
		}
	}
	if it.Overrides != "" {
		if err := json.Unmarshal([]byte(it.Overrides), &l.Overrides); err != nil {
			return entities.Lead{}, err
		}
	}
	if it.AppraisalValue != "" {
		v, err := decimal.NewFromString(it.AppraisalValue)
		if err != nil {
			return entities.Lead{}, err
		}
		l.AppraisalValue = &v
	}
	if it.VisitDate != "" {
		d, _ := time.Parse(time.RFC3339Nano, it.VisitDate)
		l.VisitDate = &d
	}
	if it.InspectionDate != "" {
		d, _ := time.Parse(time.RFC3339Nano, it.InspectionDate)
		l.InspectionDate = &d
	}
	if it.RegistryDate != "" {
		d, _ := time.Parse(time.RFC3339Nano, it.RegistryDate)
		l.RegistryDate = &d
	}
	return l, nil
}
