package repository

import (
	"context"

	"claims_service/internal/domain/entities"
	"claims_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSettlementsTableName = "settlements"

type settlementItem struct {
	ClaimID          string           `dynamodbav:"claim_id"`
	TotalAmount      int64            `dynamodbav:"total_amount"`
	CoveredAmount    int64            `dynamodbav:"covered_amount"`
	PatientRemainder int64            `dynamodbav:"patient_remainder"`
	PaymentMode      string           `dynamodbav:"payment_mode"`
	CoverageRate     int              `dynamodbav:"coverage_rate"`
	FinalizedAt      string           `dynamodbav:"finalized_at"`
	ItemsSnapshot    []lineItemRecord `dynamodbav:"items_snapshot"`
}

// SettlementDynamoRepository persists settlements in DynamoDB.
//
// Table requirements:
//   - PK: claim_id (string)
//
// Records are insert-only; the first write for a claim wins.

type SettlementDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ISettlementRepository = (*SettlementDynamoRepository)(nil)

func NewSettlementDynamoRepository(ddb DynamoDBAPI, tableName string) *SettlementDynamoRepository {
	return &SettlementDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultSettlementsTableName),
	}
}

func (r *SettlementDynamoRepository) CreateIfAbsent(ctx context.Context, s entities.Settlement) (entities.Settlement, bool, error) {
	it, err := toSettlementItem(s)
	if err != nil {
		return entities.Settlement{}, false, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Settlement{}, false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#claim_id)"),
		ExpressionAttributeNames: map[string]string{
			"#claim_id": "claim_id",
		},
	})
	if err != nil {
		if !isConditionalCheckFailed(err) {
			return entities.Settlement{}, false, err
		}
		stored, gErr := r.GetByClaimID(ctx, s.ClaimID)
		if gErr != nil {
			return entities.Settlement{}, false, gErr
		}
		return stored, false, nil
	}
	return s, true, nil
}

func (r *SettlementDynamoRepository) GetByClaimID(ctx context.Context, claimID string) (entities.Settlement, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"claim_id": &types.AttributeValueMemberS{Value: claimID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Settlement{}, err
	}
	if len(out.Item) == 0 {
		return entities.Settlement{}, nil
	}

	var it settlementItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Settlement{}, err
	}
	return fromSettlementItem(it)
}

func toSettlementItem(s entities.Settlement) (settlementItem, error) {
	mode, rate, err := encodePaymentMode(s.PaymentMode)
	if err != nil {
		return settlementItem{}, err
	}
	return settlementItem{
		ClaimID:          s.ClaimID,
		TotalAmount:      int64(s.TotalAmount),
		CoveredAmount:    int64(s.CoveredAmount),
		PatientRemainder: int64(s.PatientRemainder),
		PaymentMode:      mode,
		CoverageRate:     rate,
		FinalizedAt:      formatTime(s.FinalizedAt),
		ItemsSnapshot:    toLineItemRecords(s.ItemsSnapshot),
	}, nil
}

func fromSettlementItem(it settlementItem) (entities.Settlement, error) {
	mode, err := decodePaymentMode(it.PaymentMode, it.CoverageRate)
	if err != nil {
		return entities.Settlement{}, err
	}
	return entities.Settlement{
		ClaimID:          it.ClaimID,
		TotalAmount:      entities.Money(it.TotalAmount),
		CoveredAmount:    entities.Money(it.CoveredAmount),
		PatientRemainder: entities.Money(it.PatientRemainder),
		PaymentMode:      mode,
		FinalizedAt:      parseTime(it.FinalizedAt),
		ItemsSnapshot:    fromLineItemRecords(it.ItemsSnapshot),
	}, nil
}
