package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// TableSpec describes a table with a single string hash key and optional GSIs keyed the same way.
type TableSpec struct {
	Name    string
	HashKey string
	Indexes map[string]string // index name -> hash key
}

type tableAdmin interface {
	DescribeTable(ctx context.Context, in *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

var _ tableAdmin = (*dynamodb.Client)(nil)

// ClaimsTableSpecs lists every table the DynamoDB store reads or writes.
func ClaimsTableSpecs(claims, settlements, payments, beneficiaries, providers, catalog string) []TableSpec {
	return []TableSpec{
		{Name: claims, HashKey: "id"},
		{Name: settlements, HashKey: "claim_id"},
		{Name: payments, HashKey: "id", Indexes: map[string]string{"claim_id-index": "claim_id"}},
		{Name: beneficiaries, HashKey: "ref"},
		{Name: providers, HashKey: "ref"},
		{Name: catalog, HashKey: "code"},
	}
}

// EnsureTables creates the missing tables (on-demand billing). Existing tables are left alone.
func EnsureTables(ctx context.Context, client tableAdmin, specs []TableSpec, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	for _, spec := range specs {
		_, err := client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(spec.Name)})
		if err == nil {
			log.Info("[migrate][dynamodb] table exists", zap.String("table", spec.Name))
			continue
		}
		var nf *types.ResourceNotFoundException
		if !errors.As(err, &nf) {
			return fmt.Errorf("describe table %s: %w", spec.Name, err)
		}

		if _, err := client.CreateTable(ctx, createTableInput(spec)); err != nil {
			return fmt.Errorf("create table %s: %w", spec.Name, err)
		}
		log.Info("[migrate][dynamodb] table created", zap.String("table", spec.Name))
	}
	return nil
}

func createTableInput(spec TableSpec) *dynamodb.CreateTableInput {
	attrs := []types.AttributeDefinition{
		{AttributeName: aws.String(spec.HashKey), AttributeType: types.ScalarAttributeTypeS},
	}
	seen := map[string]bool{spec.HashKey: true}

	var gsis []types.GlobalSecondaryIndex
	for name, key := range spec.Indexes {
		if !seen[key] {
			attrs = append(attrs, types.AttributeDefinition{AttributeName: aws.String(key), AttributeType: types.ScalarAttributeTypeS})
			seen[key] = true
		}
		gsis = append(gsis, types.GlobalSecondaryIndex{
			IndexName:  aws.String(name),
			KeySchema:  []types.KeySchemaElement{{AttributeName: aws.String(key), KeyType: types.KeyTypeHash}},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}

	return &dynamodb.CreateTableInput{
		TableName:              aws.String(spec.Name),
		AttributeDefinitions:   attrs,
		KeySchema:              []types.KeySchemaElement{{AttributeName: aws.String(spec.HashKey), KeyType: types.KeyTypeHash}},
		GlobalSecondaryIndexes: gsis,
		BillingMode:            types.BillingModePayPerRequest,
	}
}
