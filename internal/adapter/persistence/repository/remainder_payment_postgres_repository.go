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

type RemainderPaymentPostgresRepository struct {
	db pgConn
}

var _ interfaces.IRemainderPaymentRepository = (*RemainderPaymentPostgresRepository)(nil)

func NewRemainderPaymentPostgresRepository(db pgConn) *RemainderPaymentPostgresRepository {
	return &RemainderPaymentPostgresRepository{db: db}
}

func (r *RemainderPaymentPostgresRepository) Create(ctx context.Context, p entities.RemainderPayment) (entities.RemainderPayment, error) {
	var raw []byte
	if len(p.PayloadRaw) > 0 && json.Valid(p.PayloadRaw) {
		raw = p.PayloadRaw
	}

	const query = `INSERT INTO remainder_payments (id, claim_id, amount, paid_at, status, payload_raw)
VALUES ($1, $2, $3, $4, $5, $6)`

	if _, err := r.db.Exec(ctx, query, p.ID, p.ClaimID, int64(p.Amount), p.Date.UTC(), string(p.Status), raw); err != nil {
		if isUniqueViolation(err) {
			return entities.RemainderPayment{}, ErrDuplicateID
		}
		return entities.RemainderPayment{}, fmt.Errorf("insert remainder payment: %w", err)
	}
	return p, nil
}

const remainderPaymentColumns = `id, claim_id, amount, paid_at, status, payload_raw`

func (r *RemainderPaymentPostgresRepository) GetByID(ctx context.Context, id string) (entities.RemainderPayment, error) {
	row := r.db.QueryRow(ctx, `SELECT `+remainderPaymentColumns+` FROM remainder_payments WHERE id = $1`, id)
	p, err := scanRemainderPayment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.RemainderPayment{}, nil
		}
		return entities.RemainderPayment{}, fmt.Errorf("get remainder payment: %w", err)
	}
	return p, nil
}

func (r *RemainderPaymentPostgresRepository) ListByClaimID(ctx context.Context, claimID string) ([]entities.RemainderPayment, error) {
	rows, err := r.db.Query(ctx, `SELECT `+remainderPaymentColumns+` FROM remainder_payments WHERE claim_id = $1 ORDER BY paid_at DESC, id`, claimID)
	if err != nil {
		return nil, fmt.Errorf("list remainder payments: %w", err)
	}
	defer rows.Close()

	out := []entities.RemainderPayment{}
	for rows.Next() {
		p, err := scanRemainderPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan remainder payment: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanRemainderPayment(row pgx.Row) (entities.RemainderPayment, error) {
	var (
		p      entities.RemainderPayment
		amount int64
		paidAt time.Time
		status string
		raw    []byte
	)
	if err := row.Scan(&p.ID, &p.ClaimID, &amount, &paidAt, &status, &raw); err != nil {
		return entities.RemainderPayment{}, err
	}
	p.Amount = entities.Money(amount)
	p.Date = paidAt.UTC()
	p.Status = entities.PaymentStatus(status)
	if len(raw) > 0 {
		p.PayloadRaw = json.RawMessage(raw)
		var m map[string]interface{}
		if err := json.Unmarshal(raw, &m); err == nil {
			p.Payload = m
		}
	}
	return p, nil
}
