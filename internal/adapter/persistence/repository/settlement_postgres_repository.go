package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"claims_service/internal/domain/entities"
	"claims_service/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
)

type SettlementPostgresRepository struct {
	db pgConn
}

var _ interfaces.ISettlementRepository = (*SettlementPostgresRepository)(nil)

func NewSettlementPostgresRepository(db pgConn) *SettlementPostgresRepository {
	return &SettlementPostgresRepository{db: db}
}

func (r *SettlementPostgresRepository) CreateIfAbsent(ctx context.Context, s entities.Settlement) (entities.Settlement, bool, error) {
	mode, rate, err := encodePaymentMode(s.PaymentMode)
	if err != nil {
		return entities.Settlement{}, false, err
	}
	s.FinalizedAt = s.FinalizedAt.UTC().Truncate(time.Microsecond)
	snapshot, err := json.Marshal(toLineItemRecords(s.ItemsSnapshot))
	if err != nil {
		return entities.Settlement{}, false, err
	}

	const query = `INSERT INTO settlements (claim_id, total_amount, covered_amount, patient_remainder, payment_mode,
coverage_rate, finalized_at, items_snapshot)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (claim_id) DO NOTHING`

	tag, err := r.db.Exec(ctx, query, s.ClaimID, int64(s.TotalAmount), int64(s.CoveredAmount),
		int64(s.PatientRemainder), mode, rate, s.FinalizedAt, snapshot)
	if err != nil {
		return entities.Settlement{}, false, fmt.Errorf("insert settlement: %w", err)
	}
	if tag.RowsAffected() == 1 {
		return s, true, nil
	}

	stored, err := r.GetByClaimID(ctx, s.ClaimID)
	if err != nil {
		return entities.Settlement{}, false, err
	}
	return stored, false, nil
}

func (r *SettlementPostgresRepository) GetByClaimID(ctx context.Context, claimID string) (entities.Settlement, error) {
	const query = `SELECT claim_id, total_amount, covered_amount, patient_remainder, payment_mode, coverage_rate,
finalized_at, items_snapshot FROM settlements WHERE claim_id = $1`

	var (
		s                         entities.Settlement
		total, covered, remainder int64
		mode                      string
		rate                      int
		finalizedAt               time.Time
		snapshot                  []byte
	)
	err := r.db.QueryRow(ctx, query, claimID).Scan(&s.ClaimID, &total, &covered, &remainder, &mode, &rate, &finalizedAt, &snapshot)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Settlement{}, nil
		}
		return entities.Settlement{}, fmt.Errorf("get settlement: %w", err)
	}

	var recs []lineItemRecord
	if err := json.Unmarshal(snapshot, &recs); err != nil {
		return entities.Settlement{}, fmt.Errorf("decode items snapshot: %w", err)
	}
	pm, err := decodePaymentMode(mode, rate)
	if err != nil {
		return entities.Settlement{}, err
	}

	s.TotalAmount = entities.Money(total)
	s.CoveredAmount = entities.Money(covered)
	s.PatientRemainder = entities.Money(remainder)
	s.PaymentMode = pm
	s.FinalizedAt = finalizedAt.UTC()
	s.ItemsSnapshot = fromLineItemRecords(recs)
	return s, nil
}
