package request

import (
	"errors"
	"testing"
	"time"

	"claims_service/internal/domain/entities"
)

func intPtr(v int) *int { return &v }

func TestPaymentModeRequest_ToPaymentMode(t *testing.T) {
	t.Run("legacy code", func(t *testing.T) {
		m, err := PaymentModeRequest{Kind: "T", CoverageRate: intPtr(70)}.ToPaymentMode()
		if err != nil || m.Kind != entities.PaymentModeThirdPartyPayer || m.CoverageRate != 70 {
			t.Fatalf("unexpected mode %+v err=%v", m, err)
		}
	})

	t.Run("third party payer needs a rate", func(t *testing.T) {
		_, err := PaymentModeRequest{Kind: "third_party_payer"}.ToPaymentMode()
		if !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("rate out of range", func(t *testing.T) {
		_, err := PaymentModeRequest{Kind: "third_party_payer", CoverageRate: intPtr(101)}.ToPaymentMode()
		if !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("free with a rate", func(t *testing.T) {
		_, err := PaymentModeRequest{Kind: "free", CoverageRate: intPtr(10)}.ToPaymentMode()
		if !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := PaymentModeRequest{Kind: "barter"}.ToPaymentMode()
		if !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestCreateClaimRequest_ToDraft(t *testing.T) {
	price := int64(2500)
	r := CreateClaimRequest{
		Workflow:       " Evacuation ",
		BeneficiaryRef: "ben-1",
		ProviderRef:    "prov-1",
		PrestationType: "evacuation",
		PaymentMode:    &PaymentModeRequest{Kind: "D"},
		Items:          []LineItemRequest{{Code: "A", Quantity: 2, UnitPrice: &price}},
	}
	d, err := r.ToDraft()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Workflow != entities.WorkflowEvacuation || d.PaymentMode.Kind != entities.PaymentModeDirectPay {
		t.Fatalf("unexpected draft %+v", d)
	}
	if len(d.Items) != 1 || *d.Items[0].UnitPrice != 2500 {
		t.Fatalf("unexpected items %+v", d.Items)
	}
}

func TestTransitionRequest_Target(t *testing.T) {
	cases := map[string]entities.StatusKind{
		"approved":  entities.StatusApproved,
		"autorisee": entities.StatusApproved,
		"RETIREE":   entities.StatusCancelled,
		"execute":   entities.StatusExecuted,
	}
	for in, want := range cases {
		got, err := TransitionRequest{To: in}.Target()
		if err != nil || got != want {
			t.Fatalf("Target(%q) = %s, %v; want %s", in, got, err, want)
		}
	}
	if _, err := (TransitionRequest{To: "archived"}).Target(); !errors.Is(err, entities.ErrUnknownWireCode) {
		t.Fatalf("expected ErrUnknownWireCode, got %v", err)
	}
}

func TestUpdateItemRequest_ToPatch(t *testing.T) {
	price := int64(900)
	p := UpdateItemRequest{UnitPrice: &price, ClearCoverageOverride: true}.ToPatch()
	if p.UnitPrice == nil || *p.UnitPrice != 900 || !p.ClearCoverageOverride || p.Quantity != nil {
		t.Fatalf("unexpected patch %+v", p)
	}
}

func TestClaimListQuery(t *testing.T) {
	q := ClaimListQuery{
		Status:      "accorde",
		PaymentMode: "G",
		CreatedFrom: "2026-01-10",
		CreatedTo:   "2026-01-10",
		Workflow:    "Billing_Dispute",
		Page:        "2",
		PageSize:    "abc",
	}
	f := q.Filter()
	if f.Status != entities.StatusApproved || f.PaymentMode != entities.PaymentModeFree || f.Workflow != entities.WorkflowBillingDispute {
		t.Fatalf("unexpected filter %+v", f)
	}
	day := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	if !f.CreatedFrom.Equal(day) || !f.CreatedTo.After(day.Add(23*time.Hour)) {
		t.Fatalf("unexpected range %s - %s", f.CreatedFrom, f.CreatedTo)
	}
	page, size := q.Pagination()
	if page != 2 || size != 0 {
		t.Fatalf("unexpected pagination %d/%d", page, size)
	}

	if f := (ClaimListQuery{Status: "bogus", CreatedFrom: "yesterday"}).Filter(); f.Status != "" || !f.CreatedFrom.IsZero() {
		t.Fatalf("expected unparsable values dropped, got %+v", f)
	}
}
