package repository

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"claims_service/internal/domain/entities"
	"claims_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultClaimsTableName = "claims"

type claimItem struct {
	ID             string           `dynamodbav:"id"`
	Workflow       string           `dynamodbav:"workflow"`
	BeneficiaryRef string           `dynamodbav:"beneficiary_ref"`
	ProviderRef    string           `dynamodbav:"provider_ref"`
	AffectionCode  string           `dynamodbav:"affection_code"`
	PrestationType string           `dynamodbav:"prestation_type"`
	Items          []lineItemRecord `dynamodbav:"items"`
	TotalAmount    int64            `dynamodbav:"total_amount"`
	PaymentMode    string           `dynamodbav:"payment_mode"`
	CoverageRate   int              `dynamodbav:"coverage_rate"`
	Status         string           `dynamodbav:"status"`
	StatusReason   string           `dynamodbav:"status_reason,omitempty"`
	Observations   string           `dynamodbav:"observations,omitempty"`
	SearchText     string           `dynamodbav:"search_text"`
	CreatedAt      string           `dynamodbav:"created_at"`
	CreatedAtUnix  int64            `dynamodbav:"created_at_unix"`
	LastModifiedAt string           `dynamodbav:"last_modified_at"`
	Version        int64            `dynamodbav:"version"`
}

// ClaimDynamoRepository persists Claim aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Every save is a PutItem conditioned on the stored version, which makes the version
// check and the write a single atomic step.

type ClaimDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IClaimRepository = (*ClaimDynamoRepository)(nil)

func NewClaimDynamoRepository(ddb DynamoDBAPI, tableName string) *ClaimDynamoRepository {
	return &ClaimDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultClaimsTableName),
	}
}

func (r *ClaimDynamoRepository) Create(ctx context.Context, c entities.Claim) (entities.Claim, error) {
	it, err := toClaimItem(c)
	if err != nil {
		return entities.Claim{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Claim{}, err
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
		return entities.Claim{}, err
	}
	return c, nil
}

func (r *ClaimDynamoRepository) GetByID(ctx context.Context, id string) (entities.Claim, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Claim{}, err
	}
	if len(out.Item) == 0 {
		return entities.Claim{}, nil
	}

	var it claimItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Claim{}, err
	}
	return fromClaimItem(it)
}

func (r *ClaimDynamoRepository) Save(ctx context.Context, c entities.Claim, expectedVersion int64) (entities.Claim, error) {
	it, err := toClaimItem(c)
	if err != nil {
		return entities.Claim{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Claim{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		},
	})
	if err != nil {
		if !isConditionalCheckFailed(err) {
			return entities.Claim{}, err
		}
		stored, gErr := r.GetByID(ctx, c.ID)
		if gErr != nil {
			return entities.Claim{}, gErr
		}
		if stored.ID == "" {
			return entities.Claim{}, entities.ErrClaimNotFound
		}
		return entities.Claim{}, entities.ErrConcurrentModification
	}
	return c, nil
}

// Query scans the table with the filter pushed down as a FilterExpression, then orders
// by creation date (newest first) and cuts the requested page.
func (r *ClaimDynamoRepository) Query(ctx context.Context, filter entities.ClaimFilter, page, pageSize int) ([]entities.Claim, int, error) {
	input := &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	}
	expr, names, values, err := claimFilterExpression(filter)
	if err != nil {
		return nil, 0, err
	}
	if expr != "" {
		input.FilterExpression = aws.String(expr)
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	var all []entities.Claim
	p := dynamodb.NewScanPaginator(r.ddb, input)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, 0, err
		}
		for _, raw := range out.Items {
			var it claimItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, 0, err
			}
			c, err := fromClaimItem(it)
			if err != nil {
				return nil, 0, err
			}
			all = append(all, c)
		}
	}

	sortClaims(all)
	start, end := pageBounds(len(all), page, pageSize)
	return all[start:end], len(all), nil
}

func claimFilterExpression(f entities.ClaimFilter) (string, map[string]string, map[string]types.AttributeValue, error) {
	var conds []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}

	eq := func(attr, value string) {
		conds = append(conds, "#"+attr+" = :"+attr)
		names["#"+attr] = attr
		values[":"+attr] = &types.AttributeValueMemberS{Value: value}
	}

	if f.Status != "" {
		eq("status", string(f.Status))
	}
	if f.ProviderRef != "" {
		eq("provider_ref", f.ProviderRef)
	}
	if f.BeneficiaryRef != "" {
		eq("beneficiary_ref", f.BeneficiaryRef)
	}
	if f.Workflow != "" {
		eq("workflow", string(f.Workflow))
	}
	if f.PrestationType != "" {
		eq("prestation_type", string(f.PrestationType))
	}
	if f.PaymentMode != "" {
		code, err := entities.PaymentModeCode(f.PaymentMode)
		if err != nil {
			return "", nil, nil, err
		}
		eq("payment_mode", code)
	}
	if !f.CreatedFrom.IsZero() {
		conds = append(conds, "#created_at_unix >= :created_from")
		names["#created_at_unix"] = "created_at_unix"
		values[":created_from"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(f.CreatedFrom.UnixNano(), 10)}
	}
	if !f.CreatedTo.IsZero() {
		conds = append(conds, "#created_at_unix <= :created_to")
		names["#created_at_unix"] = "created_at_unix"
		values[":created_to"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(f.CreatedTo.UnixNano(), 10)}
	}
	if f.Search != "" {
		conds = append(conds, "contains(#search_text, :search)")
		names["#search_text"] = "search_text"
		values[":search"] = &types.AttributeValueMemberS{Value: f.Search}
	}

	if len(conds) == 0 {
		return "", nil, nil, nil
	}
	return strings.Join(conds, " AND "), names, values, nil
}

// sortClaims orders claims newest first, ties broken by id.
func sortClaims(claims []entities.Claim) {
	sort.SliceStable(claims, func(i, j int) bool {
		if !claims[i].CreatedAt.Equal(claims[j].CreatedAt) {
			return claims[i].CreatedAt.After(claims[j].CreatedAt)
		}
		return claims[i].ID < claims[j].ID
	})
}

func toClaimItem(c entities.Claim) (claimItem, error) {
	mode, rate, err := encodePaymentMode(c.PaymentMode)
	if err != nil {
		return claimItem{}, err
	}
	return claimItem{
		ID:             c.ID,
		Workflow:       string(c.Workflow),
		BeneficiaryRef: c.BeneficiaryRef,
		ProviderRef:    c.ProviderRef,
		AffectionCode:  c.AffectionCode,
		PrestationType: string(c.PrestationType),
		Items:          toLineItemRecords(c.Items),
		TotalAmount:    int64(c.TotalAmount),
		PaymentMode:    mode,
		CoverageRate:   rate,
		Status:         string(c.Status.Kind),
		StatusReason:   c.Status.Reason,
		Observations:   c.Observations,
		SearchText:     entities.SearchText(c),
		CreatedAt:      formatTime(c.CreatedAt),
		CreatedAtUnix:  c.CreatedAt.UnixNano(),
		LastModifiedAt: formatTime(c.LastModifiedAt),
		Version:        c.Version,
	}, nil
}

func fromClaimItem(it claimItem) (entities.Claim, error) {
	mode, err := decodePaymentMode(it.PaymentMode, it.CoverageRate)
	if err != nil {
		return entities.Claim{}, err
	}
	workflow, status, err := decodeStatus(it.Workflow, it.Status, it.StatusReason)
	if err != nil {
		return entities.Claim{}, err
	}
	c := entities.Claim{
		ID:             it.ID,
		Workflow:       workflow,
		BeneficiaryRef: it.BeneficiaryRef,
		ProviderRef:    it.ProviderRef,
		AffectionCode:  it.AffectionCode,
		PrestationType: entities.PrestationType(it.PrestationType),
		Items:          fromLineItemRecords(it.Items),
		PaymentMode:    mode,
		Status:         status,
		Observations:   it.Observations,
		CreatedAt:      parseTime(it.CreatedAt),
		LastModifiedAt: parseTime(it.LastModifiedAt),
		Version:        it.Version,
	}
	// The stored total is informational; the ledger total is always the fold of the items.
	c.RecomputeTotal()
	return c, nil
}
