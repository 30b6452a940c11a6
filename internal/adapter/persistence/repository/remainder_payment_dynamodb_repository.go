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

const (
	defaultPaymentsTableName = "remainder_payments"
	paymentsClaimIDIndex     = "claim_id-index"
)

type remainderPaymentItem struct {
	ID         string                 `dynamodbav:"id"`
	ClaimID    string                 `dynamodbav:"claim_id"`
	Amount     int64                  `dynamodbav:"amount"`
	Date       string                 `dynamodbav:"date"`
	Status     string                 `dynamodbav:"status"`
	Payload    map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	PayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// RemainderPaymentDynamoRepository persists patient-remainder payments in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: claim_id-index (PK: claim_id)

type RemainderPaymentDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IRemainderPaymentRepository = (*RemainderPaymentDynamoRepository)(nil)

func NewRemainderPaymentDynamoRepository(ddb DynamoDBAPI, tableName string) *RemainderPaymentDynamoRepository {
	return &RemainderPaymentDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultPaymentsTableName),
	}
}

func (r *RemainderPaymentDynamoRepository) Create(ctx context.Context, p entities.RemainderPayment) (entities.RemainderPayment, error) {
	av, err := attributevalue.MarshalMap(toRemainderPaymentItem(p))
	if err != nil {
		return entities.RemainderPayment{}, err
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
		return entities.RemainderPayment{}, err
	}
	return p, nil
}

func (r *RemainderPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.RemainderPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RemainderPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.RemainderPayment{}, nil
	}

	var it remainderPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RemainderPayment{}, err
	}
	return fromRemainderPaymentItem(it), nil
}

func (r *RemainderPaymentDynamoRepository) ListByClaimID(ctx context.Context, claimID string) ([]entities.RemainderPayment, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsClaimIDIndex),
		KeyConditionExpression: aws.String("claim_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: claimID},
		},
	})

	items := []entities.RemainderPayment{}
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it remainderPaymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromRemainderPaymentItem(it))
		}
	}
	sortPayments(items)
	return items, nil
}

func toRemainderPaymentItem(p entities.RemainderPayment) remainderPaymentItem {
	return remainderPaymentItem{
		ID:         p.ID,
		ClaimID:    p.ClaimID,
		Amount:     int64(p.Amount),
		Date:       formatTime(p.Date),
		Status:     string(p.Status),
		Payload:    p.Payload,
		PayloadRaw: string(p.PayloadRaw),
	}
}

func fromRemainderPaymentItem(it remainderPaymentItem) entities.RemainderPayment {
	return entities.RemainderPayment{
		ID:         it.ID,
		ClaimID:    it.ClaimID,
		Amount:     entities.Money(it.Amount),
		Date:       parseTime(it.Date),
		Status:     entities.PaymentStatus(it.Status),
		Payload:    it.Payload,
		PayloadRaw: []byte(it.PayloadRaw),
	}
}
