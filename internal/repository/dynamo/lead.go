// Package dynamo implements the lead repository on a DynamoDB table whose
// partition key is the string attribute "id".
package dynamo

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/quotable/leadintel/internal/domain"
	"github.com/quotable/leadintel/internal/service/lead"
)

// API is the subset of the DynamoDB client the repository uses.
type API interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// LeadRepo implements lead.Repository on DynamoDB.
type LeadRepo struct {
	client API
	table  string
}

// NewLeadRepo creates a DynamoDB-backed lead repository.
func NewLeadRepo(client API, table string) *LeadRepo {
	return &LeadRepo{client: client, table: table}
}

// NewClient loads the default AWS configuration for region.
func NewClient(ctx context.Context, region string) (*dynamodb.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	return dynamodb.NewFromConfig(cfg), nil
}

func (r *LeadRepo) keyOf(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}}
}

func (r *LeadRepo) Save(ctx context.Context, leads ...domain.Lead) error {
	for _, l := range leads {
		av, err := attributevalue.MarshalMap(l)
		if err != nil {
			return fmt.Errorf("marshaling lead %s: %w", l.ID, err)
		}
		if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.table),
			Item:      av,
		}); err != nil {
			return fmt.Errorf("putting lead %s: %w", l.ID, err)
		}
	}
	return nil
}

func (r *LeadRepo) Get(ctx context.Context, id string) (*domain.Lead, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       r.keyOf(id),
	})
	if err != nil {
		return nil, fmt.Errorf("getting lead: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, lead.ErrNotFound
	}
	var l domain.Lead
	if err := attributevalue.UnmarshalMap(out.Item, &l); err != nil {
		return nil, fmt.Errorf("unmarshaling lead: %w", err)
	}
	return &l, nil
}

// List scans the table and filters in process. Lead volumes are small
// enough that a secondary index is not worth maintaining.
func (r *LeadRepo) List(ctx context.Context, f lead.ListFilter) ([]domain.Lead, error) {
	var (
		out   = []domain.Lead{}
		start map[string]types.AttributeValue
	)
	for {
		page, err := r.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.table),
			ExclusiveStartKey: start,
		})
		if err != nil {
			return nil, fmt.Errorf("scanning leads: %w", err)
		}
		for _, item := range page.Items {
			var l domain.Lead
			if err := attributevalue.UnmarshalMap(item, &l); err != nil {
				return nil, fmt.Errorf("unmarshaling lead: %w", err)
			}
			if f.Matches(l) {
				out = append(out, l)
			}
		}
		if len(page.LastEvaluatedKey) == 0 {
			break
		}
		start = page.LastEvaluatedKey
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if f.Offset < 0 {
		f.Offset = 0
	}
	if f.Offset >= len(out) {
		return []domain.Lead{}, nil
	}
	out = out[f.Offset:]
	if f.Limit > 0 && f.Limit < len(out) {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *LeadRepo) UpdateStatus(ctx context.Context, id string, status domain.LeadStatus) error {
	_, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                aws.String(r.table),
		Key:                      r.keyOf(id),
		UpdateExpression:         aws.String("SET #s = :s"),
		ConditionExpression:      aws.String("attribute_exists(id)"),
		ExpressionAttributeNames: map[string]string{"#s": "status"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":s": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return lead.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("updating lead status: %w", err)
	}
	return nil
}
