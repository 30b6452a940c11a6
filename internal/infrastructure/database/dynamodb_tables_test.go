package database

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeAdmin struct {
	existing    map[string]bool
	describeErr error
	created     []*dynamodb.CreateTableInput
}

func (f *fakeAdmin) DescribeTable(_ context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if f.describeErr != nil {
		return nil, f.describeErr
	}
	if f.existing[aws.ToString(in.TableName)] {
		return &dynamodb.DescribeTableOutput{}, nil
	}
	return nil, &types.ResourceNotFoundException{Message: aws.String("not found")}
}

func (f *fakeAdmin) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.created = append(f.created, in)
	return &dynamodb.CreateTableOutput{}, nil
}

func TestEnsureTables(t *testing.T) {
	specs := ClaimsTableSpecs("claims", "settlements", "remainder_payments", "beneficiaries", "providers", "price_catalog")

	t.Run("creates only missing tables", func(t *testing.T) {
		admin := &fakeAdmin{existing: map[string]bool{"claims": true, "providers": true}}
		if err := EnsureTables(context.Background(), admin, specs, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(admin.created) != 4 {
			t.Fatalf("expected 4 tables created, got %d", len(admin.created))
		}
		for _, in := range admin.created {
			if aws.ToString(in.TableName) != "remainder_payments" {
				continue
			}
			if len(in.GlobalSecondaryIndexes) != 1 || aws.ToString(in.GlobalSecondaryIndexes[0].IndexName) != "claim_id-index" {
				t.Fatalf("expected claim_id-index on payments table")
			}
			if len(in.AttributeDefinitions) != 2 {
				t.Fatalf("expected id and claim_id attributes, got %d", len(in.AttributeDefinitions))
			}
		}
	})

	t.Run("describe failure aborts", func(t *testing.T) {
		admin := &fakeAdmin{describeErr: errors.New("access denied")}
		if err := EnsureTables(context.Background(), admin, specs, nil); err == nil {
			t.Fatalf("expected error")
		}
		if len(admin.created) != 0 {
			t.Fatalf("expected no table created")
		}
	})
}
