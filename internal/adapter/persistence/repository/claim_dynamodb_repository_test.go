package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"claims_service/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeDynamo struct {
	items    map[string]map[string]types.AttributeValue
	putErr   error
	puts     []*dynamodb.PutItemInput
	scans    []*dynamodb.ScanInput
	scanOut  []map[string]types.AttributeValue
	queries  []*dynamodb.QueryInput
	queryOut []map[string]types.AttributeValue
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func keyOf(m map[string]types.AttributeValue) string {
	for _, k := range []string{"id", "claim_id", "ref", "code"} {
		if v, ok := m[k].(*types.AttributeValueMemberS); ok {
			return v.Value
		}
	}
	return ""
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return &dynamodb.GetItemOutput{Item: f.items[keyOf(in.Key)]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.puts = append(f.puts, in)
	if f.putErr != nil {
		return nil, f.putErr
	}
	f.items[keyOf(in.Item)] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queries = append(f.queries, in)
	return &dynamodb.QueryOutput{Items: f.queryOut}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.scans = append(f.scans, in)
	return &dynamodb.ScanOutput{Items: f.scanOut}, nil
}

func sampleClaim(id string, createdAt time.Time) entities.Claim {
	override := 40
	c := entities.Claim{
		ID:             id,
		Workflow:       entities.WorkflowEvacuation,
		BeneficiaryRef: "ben-1",
		ProviderRef:    "prov-1",
		AffectionCode:  "J18",
		PrestationType: "evacuation",
		Items: []entities.LineItem{
			{Code: "EVAC-AIR", Label: "Air transfer", Quantity: 1, UnitPrice: 250000, Reimbursable: true, CoverageOverride: &override},
		},
		PaymentMode:    entities.PaymentMode{Kind: entities.PaymentModeThirdPartyPayer, CoverageRate: 80},
		Status:         entities.PendingStatus(),
		CreatedAt:      createdAt,
		LastModifiedAt: createdAt,
		Version:        1,
	}
	c.RecomputeTotal()
	return c
}

func TestClaimDynamoRepository_CreateAndGet(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewClaimDynamoRepository(ddb, "")
	now := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)
	c := sampleClaim("c-1", now)

	if _, err := repo.Create(context.Background(), c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in := ddb.puts[0]
	if *in.TableName != "claims" || *in.ConditionExpression != "attribute_not_exists(#id)" {
		t.Fatalf("unexpected put input: table=%s cond=%s", *in.TableName, *in.ConditionExpression)
	}
	if v := in.Item["payment_mode"].(*types.AttributeValueMemberS).Value; v != "T" {
		t.Fatalf("expected legacy payment code T, got %s", v)
	}

	got, err := repo.GetByID(context.Background(), "c-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "c-1" || got.TotalAmount != 250000 || got.PaymentMode.CoverageRate != 80 || !got.CreatedAt.Equal(now) {
		t.Fatalf("unexpected claim: %+v", got)
	}
	if got.Items[0].CoverageOverride == nil || *got.Items[0].CoverageOverride != 40 {
		t.Fatalf("expected coverage override to round-trip")
	}

	missing, err := repo.GetByID(context.Background(), "nope")
	if err != nil || missing.ID != "" {
		t.Fatalf("expected zero claim, got %+v err=%v", missing, err)
	}
}

func TestClaimDynamoRepository_RejectsUnknownStoredCodes(t *testing.T) {
	for _, attr := range []string{"status", "workflow"} {
		t.Run(attr, func(t *testing.T) {
			ddb := newFakeDynamo()
			repo := NewClaimDynamoRepository(ddb, "")
			c := sampleClaim("c-1", time.Now().UTC())
			c.Status = entities.Status{Kind: entities.StatusRejected, Reason: "duplicate"}
			if _, err := repo.Create(context.Background(), c); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			ddb.items["c-1"][attr] = &types.AttributeValueMemberS{Value: "archived"}

			got, err := repo.GetByID(context.Background(), "c-1")
			if !errors.Is(err, entities.ErrUnknownWireCode) {
				t.Fatalf("expected ErrUnknownWireCode, got %v (status=%q locked=%v)", err, got.Status.Kind, got.IsLocked())
			}
		})
	}
}

func TestClaimDynamoRepository_Save(t *testing.T) {
	now := time.Now().UTC()

	t.Run("conditional on expected version", func(t *testing.T) {
		ddb := newFakeDynamo()
		repo := NewClaimDynamoRepository(ddb, "claims-test")
		c := sampleClaim("c-1", now)
		c.Version = 4

		if _, err := repo.Save(context.Background(), c, 3); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		in := ddb.puts[0]
		if !strings.Contains(*in.ConditionExpression, "#version = :expected") {
			t.Fatalf("unexpected condition: %s", *in.ConditionExpression)
		}
		if v := in.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberN).Value; v != "3" {
			t.Fatalf("expected :expected=3, got %s", v)
		}
	})

	t.Run("stale version", func(t *testing.T) {
		ddb := newFakeDynamo()
		repo := NewClaimDynamoRepository(ddb, "")
		if _, err := repo.Create(context.Background(), sampleClaim("c-1", now)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ddb.putErr = &types.ConditionalCheckFailedException{}

		_, err := repo.Save(context.Background(), sampleClaim("c-1", now), 7)
		if !errors.Is(err, entities.ErrConcurrentModification) {
			t.Fatalf("expected ErrConcurrentModification, got %v", err)
		}
	})

	t.Run("missing claim", func(t *testing.T) {
		ddb := newFakeDynamo()
		ddb.putErr = &types.ConditionalCheckFailedException{}
		repo := NewClaimDynamoRepository(ddb, "")

		_, err := repo.Save(context.Background(), sampleClaim("c-9", now), 1)
		if !errors.Is(err, entities.ErrClaimNotFound) {
			t.Fatalf("expected ErrClaimNotFound, got %v", err)
		}
	})
}

func TestClaimDynamoRepository_Query(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewClaimDynamoRepository(ddb, "")
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, id := range []string{"a", "b", "c"} {
		if _, err := repo.Create(context.Background(), sampleClaim(id, base.Add(time.Duration(i)*time.Hour))); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	for _, in := range ddb.puts {
		ddb.scanOut = append(ddb.scanOut, in.Item)
	}

	filter := entities.ClaimFilter{Status: entities.StatusPending, Search: "air", PaymentMode: entities.PaymentModeThirdPartyPayer}.Normalize()
	claims, total, err := repo.Query(context.Background(), filter, 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 3 || len(claims) != 2 {
		t.Fatalf("expected 2 of 3 claims, got %d of %d", len(claims), total)
	}
	if claims[0].ID != "c" || claims[1].ID != "b" {
		t.Fatalf("expected newest first, got %s, %s", claims[0].ID, claims[1].ID)
	}

	in := ddb.scans[0]
	if in.FilterExpression == nil {
		t.Fatalf("expected filter expression")
	}
	expr := *in.FilterExpression
	for _, part := range []string{"#status = :status", "#payment_mode = :payment_mode", "contains(#search_text, :search)"} {
		if !strings.Contains(expr, part) {
			t.Fatalf("expected %q in %q", part, expr)
		}
	}
	if v := in.ExpressionAttributeValues[":payment_mode"].(*types.AttributeValueMemberS).Value; v != "T" {
		t.Fatalf("expected payment mode code T, got %s", v)
	}

	claims, total, err = repo.Query(context.Background(), entities.ClaimFilter{}, 3, 2)
	if err != nil || total != 3 || len(claims) != 0 {
		t.Fatalf("expected empty page past the end, got %d items total=%d err=%v", len(claims), total, err)
	}
	if ddb.scans[1].FilterExpression != nil {
		t.Fatalf("expected no filter expression for an empty filter")
	}
}

func TestSettlementDynamoRepository_CreateIfAbsent(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewSettlementDynamoRepository(ddb, "")
	s := entities.Settlement{
		ClaimID:          "c-1",
		TotalAmount:      10000,
		CoveredAmount:    8000,
		PatientRemainder: 2000,
		PaymentMode:      entities.PaymentMode{Kind: entities.PaymentModeThirdPartyPayer, CoverageRate: 80},
		FinalizedAt:      time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC),
		ItemsSnapshot:    []entities.LineItem{{Code: "A", Quantity: 2, UnitPrice: 5000, Reimbursable: true}},
	}

	stored, created, err := repo.CreateIfAbsent(context.Background(), s)
	if err != nil || !created || stored.ClaimID != "c-1" {
		t.Fatalf("expected creation, got created=%v err=%v", created, err)
	}

	ddb.putErr = &types.ConditionalCheckFailedException{}
	second := s
	second.CoveredAmount = 1
	stored, created, err = repo.CreateIfAbsent(context.Background(), second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created || stored.CoveredAmount != 8000 || !stored.FinalizedAt.Equal(s.FinalizedAt) {
		t.Fatalf("expected the first settlement back, got %+v created=%v", stored, created)
	}
}

func TestDirectoryDynamoRepository(t *testing.T) {
	ddb := newFakeDynamo()
	ddb.items["ben-1"] = map[string]types.AttributeValue{
		"ref":       &types.AttributeValueMemberS{Value: "ben-1"},
		"full_name": &types.AttributeValueMemberS{Value: "Ana Souza"},
		"active":    &types.AttributeValueMemberBOOL{Value: true},
	}
	ddb.items["CONS-01"] = map[string]types.AttributeValue{
		"code":         &types.AttributeValueMemberS{Value: "CONS-01"},
		"label":        &types.AttributeValueMemberS{Value: "General consultation"},
		"unit_price":   &types.AttributeValueMemberN{Value: "5000"},
		"reimbursable": &types.AttributeValueMemberBOOL{Value: true},
	}
	repo := NewDirectoryDynamoRepository(ddb, DirectoryTables{})

	b, err := repo.Beneficiaries().Resolve(context.Background(), "ben-1")
	if err != nil || b.FullName != "Ana Souza" || !b.Active {
		t.Fatalf("unexpected beneficiary %+v err=%v", b, err)
	}
	if _, err := repo.Providers().Resolve(context.Background(), "prov-x"); !errors.Is(err, entities.ErrProviderNotFound) {
		t.Fatalf("expected ErrProviderNotFound, got %v", err)
	}

	e, err := repo.Catalog().PriceOf(context.Background(), "CONS-01")
	if err != nil || e.UnitPrice != 5000 || !e.Reimbursable {
		t.Fatalf("unexpected catalog entry %+v err=%v", e, err)
	}
	if _, err := repo.Catalog().PriceOf(context.Background(), "NOPE"); !errors.Is(err, entities.ErrCatalogEntryNotFound) {
		t.Fatalf("expected ErrCatalogEntryNotFound, got %v", err)
	}
}
