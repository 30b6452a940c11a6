package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"claims_service/internal/domain/entities"
)

func TestClaimWhereClause(t *testing.T) {
	t.Run("empty filter", func(t *testing.T) {
		where, args, err := claimWhereClause(entities.ClaimFilter{})
		if err != nil || where != "" || len(args) != 0 {
			t.Fatalf("expected no clause, got %q %v %v", where, args, err)
		}
	})

	t.Run("placeholders follow argument order", func(t *testing.T) {
		from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		f := entities.ClaimFilter{
			Status:      entities.StatusApproved,
			ProviderRef: "prov-1",
			PaymentMode: entities.PaymentModeFree,
			CreatedFrom: from,
			Search:      "50%_off",
		}.Normalize()

		where, args, err := claimWhereClause(f)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := " WHERE status = $1 AND provider_ref = $2 AND payment_mode = $3 AND created_at >= $4 AND search_text LIKE $5"
		if where != want {
			t.Fatalf("unexpected clause:\n got %q\nwant %q", where, want)
		}
		if args[2] != "G" {
			t.Fatalf("expected legacy code G, got %v", args[2])
		}
		if args[4] != `%50\%\_off%` {
			t.Fatalf("expected escaped LIKE pattern, got %v", args[4])
		}
	})
}

func TestPaymentModeEncoding(t *testing.T) {
	code, rate, err := encodePaymentMode(entities.PaymentMode{Kind: entities.PaymentModeDirectPay})
	if err != nil || code != "D" || rate != 0 {
		t.Fatalf("unexpected encoding %s/%d err=%v", code, rate, err)
	}

	if _, _, err := encodePaymentMode(entities.PaymentMode{Kind: "barter"}); err == nil {
		t.Fatalf("expected error for unknown kind")
	}

	m, err := decodePaymentMode("G", 55)
	if err != nil || m.Kind != entities.PaymentModeFree || m.CoverageRate != 0 {
		t.Fatalf("expected free mode without rate, got %+v err=%v", m, err)
	}
	if _, err := decodePaymentMode("Z", 0); err == nil {
		t.Fatalf("expected error for unknown code")
	}
}

func TestClaimPostgresRepository_CreateAndGet(t *testing.T) {
	db := newFakePG()
	repo := NewClaimPostgresRepository(db)
	c := sampleClaim("c-1", time.Date(2026, 5, 4, 9, 0, 0, 123456000, time.UTC))

	if _, err := repo.Create(context.Background(), c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.Create(context.Background(), c); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}

	got, err := repo.GetByID(context.Background(), "c-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, _ := json.Marshal(c)
	have, _ := json.Marshal(got)
	if string(want) != string(have) {
		t.Fatalf("claim did not round-trip:\n got %s\nwant %s", have, want)
	}

	missing, err := repo.GetByID(context.Background(), "nope")
	if err != nil || missing.ID != "" {
		t.Fatalf("expected zero claim, got %+v err=%v", missing, err)
	}
}

func TestClaimPostgresRepository_Save(t *testing.T) {
	db := newFakePG()
	repo := NewClaimPostgresRepository(db)
	c := sampleClaim("c-1", time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC))
	if _, err := repo.Create(context.Background(), c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("matching version", func(t *testing.T) {
		next := c.Clone()
		next.Version = 2
		if _, err := repo.Save(context.Background(), next, 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, _ := repo.GetByID(context.Background(), "c-1")
		if got.Version != 2 {
			t.Fatalf("expected version 2, got %d", got.Version)
		}
	})

	t.Run("stale version", func(t *testing.T) {
		stale := c.Clone()
		stale.Version = 2
		if _, err := repo.Save(context.Background(), stale, 1); !errors.Is(err, entities.ErrConcurrentModification) {
			t.Fatalf("expected ErrConcurrentModification, got %v", err)
		}
	})

	t.Run("missing claim", func(t *testing.T) {
		if _, err := repo.Save(context.Background(), sampleClaim("c-9", time.Now()), 1); !errors.Is(err, entities.ErrClaimNotFound) {
			t.Fatalf("expected ErrClaimNotFound, got %v", err)
		}
	})
}

func TestClaimPostgresRepository_RejectsUnknownStoredCodes(t *testing.T) {
	for name, col := range map[string]int{"status": 10, "workflow": 1} {
		t.Run(name, func(t *testing.T) {
			db := newFakePG()
			repo := NewClaimPostgresRepository(db)
			if _, err := repo.Create(context.Background(), sampleClaim("c-1", time.Now())); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			db.claims["c-1"][col] = "archived"

			_, err := repo.GetByID(context.Background(), "c-1")
			if !errors.Is(err, entities.ErrUnknownWireCode) {
				t.Fatalf("expected ErrUnknownWireCode, got %v", err)
			}
		})
	}
}
