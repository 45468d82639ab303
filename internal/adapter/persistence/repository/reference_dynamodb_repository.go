package repository

import (
	"context"
	"encoding/json"

	"habita_crm/internal/domain/entities"
	"habita_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type referenceItem struct {
	ID      string `dynamodbav:"id"`
	Payload string `dynamodbav:"payload"`
}

// ReferenceDynamoRepository persists a flat reference collection
// (clients, brokers, properties, banks, construction companies) as JSON
// documents keyed by id. Reference records carry no behavior; the
// pipeline only joins them by id at read time, so a single generic
// payload-document repository covers all five collections.
//
// Table requirements (each collection in its own table):
//   - PK: id (string)

type ReferenceDynamoRepository[T any] struct {
	ddb       *dynamodb.Client
	tableName string
	idOf      func(T) string
}

func NewReferenceDynamoRepository[T any](ddb *dynamodb.Client, tableEnvKey, defaultTable string, idOf func(T) string) *ReferenceDynamoRepository[T] {
	return &ReferenceDynamoRepository[T]{
		ddb:       ddb,
		tableName: getenvDefault(tableEnvKey, defaultTable),
		idOf:      idOf,
	}
}

func NewClientDynamoRepository(ddb *dynamodb.Client) *ReferenceDynamoRepository[entities.Client] {
	return NewReferenceDynamoRepository(ddb, "CLIENTS_TABLE", "clients", func(c entities.Client) string { return c.ID })
}

func NewBrokerDynamoRepository(ddb *dynamodb.Client) *ReferenceDynamoRepository[entities.Broker] {
	return NewReferenceDynamoRepository(ddb, "BROKERS_TABLE", "brokers", func(b entities.Broker) string { return b.ID })
}

func NewPropertyDynamoRepository(ddb *dynamodb.Client) *ReferenceDynamoRepository[entities.Property] {
	return NewReferenceDynamoRepository(ddb, "PROPERTIES_TABLE", "properties", func(p entities.Property) string { return p.ID })
}

func NewBankDynamoRepository(ddb *dynamodb.Client) *ReferenceDynamoRepository[entities.Bank] {
	return NewReferenceDynamoRepository(ddb, "BANKS_TABLE", "banks", func(b entities.Bank) string { return b.ID })
}

func NewConstructionCompanyDynamoRepository(ddb *dynamodb.Client) *ReferenceDynamoRepository[entities.ConstructionCompany] {
	return NewReferenceDynamoRepository(ddb, "COMPANIES_TABLE", "construction_companies", func(c entities.ConstructionCompany) string { return c.ID })
}

var _ interfaces.IReferenceRepository[entities.Client] = (*ReferenceDynamoRepository[entities.Client])(nil)

func (r *ReferenceDynamoRepository[T]) Create(ctx context.Context, item T) (T, error) {
	var zero T

	payload, err := json.Marshal(item)
	if err != nil {
		return zero, err
	}
	av, err := attributevalue.MarshalMap(referenceItem{ID: r.idOf(item), Payload: string(payload)})
	if err != nil {
		return zero, err
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
		return zero, err
	}
	return item, nil
}

func (r *ReferenceDynamoRepository[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return zero, err
	}
	if len(out.Item) == 0 {
		return zero, nil
	}

	var it referenceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return zero, err
	}
	var item T
	if err := json.Unmarshal([]byte(it.Payload), &item); err != nil {
		return zero, err
	}
	return item, nil
}

func (r *ReferenceDynamoRepository[T]) List(ctx context.Context) ([]T, error) {
	items := make([]T, 0)

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
			var it referenceItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			var item T
			if err := json.Unmarshal([]byte(it.Payload), &item); err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}
