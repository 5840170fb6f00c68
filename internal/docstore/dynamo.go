package docstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"

	internalaws "github.com/shopstack/catalog-api/internal/aws"
)

// dynamoRecord is the shape persisted in the catalog DynamoDB table.
// One item per collection; the whole serialized array rides in Document.
type dynamoRecord struct {
	Collection string    `dynamodbav:"collection"` // PK
	Document   string    `dynamodbav:"document"`
	UpdatedAt  time.Time `dynamodbav:"updated_at"`
}

// DynamoStore keeps each collection as a single item in one DynamoDB table,
// keyed by collection name.
type DynamoStore struct {
	client    internalaws.DynamoDBAPI
	tableName string
	nowFunc   func() time.Time
}

// NewDynamoStore creates a new DynamoStore bound to tableName.
func NewDynamoStore(client internalaws.DynamoDBAPI, tableName string) *DynamoStore {
	return &DynamoStore{
		client:    client,
		tableName: tableName,
		nowFunc:   time.Now,
	}
}

// Load fetches the document for collection. Returns ErrMissing when no item
// exists for the collection key.
func (s *DynamoStore) Load(ctx context.Context, collection string) ([]byte, error) {
	out, err := s.client.GetItem(ctx, &dyn.GetItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"collection": &types.AttributeValueMemberS{Value: collection},
		},
	})
	if err != nil {
		var ae smithy.APIError
		if errors.As(err, &ae) && ae.ErrorCode() == "ResourceNotFoundException" {
			return nil, ErrMissing
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, ErrMissing
	}
	var rec dynamoRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal record: %w", err)
	}
	return []byte(rec.Document), nil
}

// Save overwrites the item for collection with the new document.
func (s *DynamoStore) Save(ctx context.Context, collection string, doc []byte) error {
	rec := dynamoRecord{
		Collection: collection,
		Document:   string(doc),
		UpdatedAt:  s.nowFunc(),
	}
	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	if _, err := s.client.PutItem(ctx, &dyn.PutItemInput{
		TableName: &s.tableName,
		Item:      item,
	}); err != nil {
		return fmt.Errorf("put item: %w", err)
	}
	return nil
}
