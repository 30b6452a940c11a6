package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"claims_service/internal/domain/entities"
	"claims_service/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresSchema creates the tables used by the Postgres store. It is safe to run
// more than once.
const PostgresSchema = `
CREATE TABLE IF NOT EXISTS claims (
    id               TEXT PRIMARY KEY,
    workflow         TEXT NOT NULL,
    beneficiary_ref  TEXT NOT NULL,
    provider_ref     TEXT NOT NULL,
    affection_code   TEXT NOT NULL,
    prestation_type  TEXT NOT NULL,
    items            JSONB NOT NULL DEFAULT '[]',
    total_amount     BIGINT NOT NULL,
    payment_mode     CHAR(1) NOT NULL,
    coverage_rate    INTEGER NOT NULL DEFAULT 0,
    status           TEXT NOT NULL,
    status_reason    TEXT NOT NULL DEFAULT '',
    observations     TEXT NOT NULL DEFAULT '',
    search_text      TEXT NOT NULL DEFAULT '',
    created_at       TIMESTAMPTZ NOT NULL,
    last_modified_at TIMESTAMPTZ NOT NULL,
    version          BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_claims_created_at ON claims (created_at DESC, id);
CREATE INDEX IF NOT EXISTS idx_claims_status ON claims (status);

CREATE TABLE IF NOT EXISTS settlements (
    claim_id          TEXT PRIMARY KEY REFERENCES claims (id),
    total_amount      BIGINT NOT NULL,
    covered_amount    BIGINT NOT NULL,
    patient_remainder BIGINT NOT NULL,
    payment_mode      CHAR(1) NOT NULL,
    coverage_rate     INTEGER NOT NULL DEFAULT 0,
    finalized_at      TIMESTAMPTZ NOT NULL,
    items_snapshot    JSONB NOT NULL DEFAULT '[]'
);

CREATE TABLE IF NOT EXISTS remainder_payments (
    id          TEXT PRIMARY KEY,
    claim_id    TEXT NOT NULL REFERENCES settlements (claim_id),
    amount      BIGINT NOT NULL,
    paid_at     TIMESTAMPTZ NOT NULL,
    status      TEXT NOT NULL,
    payload_raw JSONB
);

CREATE INDEX IF NOT EXISTS idx_remainder_payments_claim_id ON remainder_payments (claim_id, paid_at DESC);
`

// pgConn is the subset of *pgxpool.Pool the Postgres repositories need.
type pgConn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// EnsurePostgresSchema applies PostgresSchema.
func EnsurePostgresSchema(ctx context.Context, db pgConn) error {
	if _, err := db.Exec(ctx, PostgresSchema); err != nil {
		return fmt.Errorf("apply claims schema: %w", err)
	}
	return nil
}

const claimColumns = `id, workflow, beneficiary_ref, provider_ref, affection_code, prestation_type, items,
total_amount, payment_mode, coverage_rate, status, status_reason, observations, created_at, last_modified_at, version`

// ClaimPostgresRepository persists claims in PostgreSQL. Saves are
// UPDATE ... WHERE version = expected, so a stale writer affects zero rows.
type ClaimPostgresRepository struct {
	db pgConn
}

var _ interfaces.IClaimRepository = (*ClaimPostgresRepository)(nil)

func NewClaimPostgresRepository(db pgConn) *ClaimPostgresRepository {
	return &ClaimPostgresRepository{db: db}
}

func (r *ClaimPostgresRepository) Create(ctx context.Context, c entities.Claim) (entities.Claim, error) {
	args, err := claimArgs(c)
	if err != nil {
		return entities.Claim{}, err
	}

	const query = `INSERT INTO claims (id, workflow, beneficiary_ref, provider_ref, affection_code, prestation_type,
items, total_amount, payment_mode, coverage_rate, status, status_reason, observations, search_text,
created_at, last_modified_at, version)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return entities.Claim{}, ErrDuplicateID
		}
		return entities.Claim{}, fmt.Errorf("insert claim: %w", err)
	}
	return c, nil
}

func (r *ClaimPostgresRepository) GetByID(ctx context.Context, id string) (entities.Claim, error) {
	row := r.db.QueryRow(ctx, `SELECT `+claimColumns+` FROM claims WHERE id = $1`, id)
	c, err := scanClaim(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Claim{}, nil
		}
		return entities.Claim{}, fmt.Errorf("get claim: %w", err)
	}
	return c, nil
}

func (r *ClaimPostgresRepository) Save(ctx context.Context, c entities.Claim, expectedVersion int64) (entities.Claim, error) {
	args, err := claimArgs(c)
	if err != nil {
		return entities.Claim{}, err
	}
	args = append(args, expectedVersion)

	const query = `UPDATE claims SET workflow = $2, beneficiary_ref = $3, provider_ref = $4, affection_code = $5,
prestation_type = $6, items = $7, total_amount = $8, payment_mode = $9, coverage_rate = $10, status = $11,
status_reason = $12, observations = $13, search_text = $14, created_at = $15, last_modified_at = $16, version = $17
WHERE id = $1 AND version = $18`

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return entities.Claim{}, fmt.Errorf("update claim: %w", err)
	}
	if tag.RowsAffected() == 1 {
		return c, nil
	}

	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM claims WHERE id = $1)`, c.ID).Scan(&exists); err != nil {
		return entities.Claim{}, fmt.Errorf("check claim: %w", err)
	}
	if !exists {
		return entities.Claim{}, entities.ErrClaimNotFound
	}
	return entities.Claim{}, entities.ErrConcurrentModification
}

func (r *ClaimPostgresRepository) Query(ctx context.Context, filter entities.ClaimFilter, page, pageSize int) ([]entities.Claim, int, error) {
	where, args, err := claimWhereClause(filter)
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM claims`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count claims: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM claims%s ORDER BY created_at DESC, id ASC LIMIT $%d OFFSET $%d`,
		claimColumns, where, len(args)+1, len(args)+2)
	rows, err := r.db.Query(ctx, query, append(args, pageSize, (page-1)*pageSize)...)
	if err != nil {
		return nil, 0, fmt.Errorf("query claims: %w", err)
	}
	defer rows.Close()

	claims := []entities.Claim{}
	for rows.Next() {
		c, err := scanClaim(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan claim: %w", err)
		}
		claims = append(claims, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate claims: %w", err)
	}
	return claims, total, nil
}

func claimWhereClause(f entities.ClaimFilter) (string, []any, error) {
	var conds []string
	var args []any
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.Status != "" {
		add("status = $%d", string(f.Status))
	}
	if f.ProviderRef != "" {
		add("provider_ref = $%d", f.ProviderRef)
	}
	if f.BeneficiaryRef != "" {
		add("beneficiary_ref = $%d", f.BeneficiaryRef)
	}
	if f.Workflow != "" {
		add("workflow = $%d", string(f.Workflow))
	}
	if f.PrestationType != "" {
		add("prestation_type = $%d", string(f.PrestationType))
	}
	if f.PaymentMode != "" {
		code, err := entities.PaymentModeCode(f.PaymentMode)
		if err != nil {
			return "", nil, err
		}
		add("payment_mode = $%d", code)
	}
	if !f.CreatedFrom.IsZero() {
		add("created_at >= $%d", f.CreatedFrom.UTC())
	}
	if !f.CreatedTo.IsZero() {
		add("created_at <= $%d", f.CreatedTo.UTC())
	}
	if f.Search != "" {
		add("search_text LIKE $%d", "%"+escapeLike(f.Search)+"%")
	}

	if len(conds) == 0 {
		return "", nil, nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func claimArgs(c entities.Claim) ([]any, error) {
	mode, rate, err := encodePaymentMode(c.PaymentMode)
	if err != nil {
		return nil, err
	}
	items, err := json.Marshal(toLineItemRecords(c.Items))
	if err != nil {
		return nil, err
	}
	return []any{
		c.ID, string(c.Workflow), c.BeneficiaryRef, c.ProviderRef, c.AffectionCode, string(c.PrestationType),
		items, int64(c.TotalAmount), mode, rate, string(c.Status.Kind), c.Status.Reason, c.Observations,
		entities.SearchText(c), c.CreatedAt.UTC(), c.LastModifiedAt.UTC(), c.Version,
	}, nil
}

func scanClaim(row pgx.Row) (entities.Claim, error) {
	var (
		c                                  entities.Claim
		workflow, prestation, mode, status string
		reason                             string
		items                              []byte
		total                              int64
		rate                               int
		createdAt, lastModifiedAt          time.Time
	)
	err := row.Scan(&c.ID, &workflow, &c.BeneficiaryRef, &c.ProviderRef, &c.AffectionCode, &prestation, &items,
		&total, &mode, &rate, &status, &reason, &c.Observations, &createdAt, &lastModifiedAt, &c.Version)
	if err != nil {
		return entities.Claim{}, err
	}

	var recs []lineItemRecord
	if err := json.Unmarshal(items, &recs); err != nil {
		return entities.Claim{}, fmt.Errorf("decode items: %w", err)
	}
	pm, err := decodePaymentMode(mode, rate)
	if err != nil {
		return entities.Claim{}, err
	}
	wf, st, err := decodeStatus(workflow, status, reason)
	if err != nil {
		return entities.Claim{}, err
	}

	c.Workflow = wf
	c.PrestationType = entities.PrestationType(prestation)
	c.Items = fromLineItemRecords(recs)
	c.PaymentMode = pm
	c.Status = st
	c.CreatedAt = createdAt.UTC()
	c.LastModifiedAt = lastModifiedAt.UTC()
	c.RecomputeTotal()
	return c, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
