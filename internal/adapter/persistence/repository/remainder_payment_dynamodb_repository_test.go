package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"claims_service/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestRemainderPaymentDynamoRepository(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewRemainderPaymentDynamoRepository(ddb, "")
	older := entities.RemainderPayment{
		ID:         "mp-1",
		ClaimID:    "c-1",
		Amount:     2000,
		Date:       time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC),
		Status:     entities.PaymentStatusApproved,
		Payload:    map[string]interface{}{"status": "approved"},
		PayloadRaw: json.RawMessage(`{"status":"approved"}`),
	}
	newer := older
	newer.ID = "mp-2"
	newer.Date = older.Date.Add(time.Hour)

	for _, p := range []entities.RemainderPayment{older, newer} {
		if _, err := repo.Create(context.Background(), p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if *ddb.puts[0].TableName != "remainder_payments" || *ddb.puts[0].ConditionExpression != "attribute_not_exists(#id)" {
		t.Fatalf("unexpected put input: table=%s cond=%s", *ddb.puts[0].TableName, *ddb.puts[0].ConditionExpression)
	}

	got, err := repo.GetByID(context.Background(), "mp-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Amount != 2000 || got.Status != entities.PaymentStatusApproved || !got.Date.Equal(older.Date) || string(got.PayloadRaw) != `{"status":"approved"}` {
		t.Fatalf("unexpected payment: %+v", got)
	}

	missing, err := repo.GetByID(context.Background(), "mp-9")
	if err != nil || missing.ID != "" {
		t.Fatalf("expected zero payment, got %+v err=%v", missing, err)
	}

	ddb.queryOut = []map[string]types.AttributeValue{ddb.puts[0].Item, ddb.puts[1].Item}
	list, err := repo.ListByClaimID(context.Background(), "c-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 || list[0].ID != "mp-2" || list[1].ID != "mp-1" {
		t.Fatalf("expected newest first, got %+v", list)
	}
	q := ddb.queries[0]
	if *q.IndexName != "claim_id-index" {
		t.Fatalf("expected claim_id-index, got %s", *q.IndexName)
	}
	if v := q.ExpressionAttributeValues[":cid"].(*types.AttributeValueMemberS).Value; v != "c-1" {
		t.Fatalf("expected :cid=c-1, got %s", v)
	}
}
