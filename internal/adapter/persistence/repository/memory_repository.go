package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"claims_service/internal/domain/entities"
	"claims_service/internal/usecase/interfaces"
)

var ErrDuplicateID = errors.New("record already exists")

// MemoryStore keeps claims, settlements and payments in process memory. It backs
// STORE_DRIVER=memory and the use case tests. Every read and write copies, so callers
// never share slices with the store.
type MemoryStore struct {
	mu          sync.Mutex
	claims      map[string]entities.Claim
	settlements map[string]entities.Settlement
	payments    map[string]entities.RemainderPayment
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		claims:      map[string]entities.Claim{},
		settlements: map[string]entities.Settlement{},
		payments:    map[string]entities.RemainderPayment{},
	}
}

func (s *MemoryStore) Claims() *MemoryClaimRepository {
	return &MemoryClaimRepository{s: s}
}

func (s *MemoryStore) Settlements() *MemorySettlementRepository {
	return &MemorySettlementRepository{s: s}
}

func (s *MemoryStore) Payments() *MemoryRemainderPaymentRepository {
	return &MemoryRemainderPaymentRepository{s: s}
}

type MemoryClaimRepository struct{ s *MemoryStore }

var _ interfaces.IClaimRepository = (*MemoryClaimRepository)(nil)

func (r *MemoryClaimRepository) Create(_ context.Context, c entities.Claim) (entities.Claim, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.claims[c.ID]; ok {
		return entities.Claim{}, ErrDuplicateID
	}
	r.s.claims[c.ID] = c.Clone()
	return c.Clone(), nil
}

func (r *MemoryClaimRepository) GetByID(_ context.Context, id string) (entities.Claim, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.claims[id]
	if !ok {
		return entities.Claim{}, nil
	}
	return c.Clone(), nil
}

func (r *MemoryClaimRepository) Save(_ context.Context, c entities.Claim, expectedVersion int64) (entities.Claim, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.claims[c.ID]
	if !ok {
		return entities.Claim{}, entities.ErrClaimNotFound
	}
	if stored.Version != expectedVersion {
		return entities.Claim{}, entities.ErrConcurrentModification
	}
	r.s.claims[c.ID] = c.Clone()
	return c.Clone(), nil
}

func (r *MemoryClaimRepository) Query(_ context.Context, filter entities.ClaimFilter, page, pageSize int) ([]entities.Claim, int, error) {
	r.s.mu.Lock()
	matched := make([]entities.Claim, 0, len(r.s.claims))
	for _, c := range r.s.claims {
		if filter.Matches(c) {
			matched = append(matched, c.Clone())
		}
	}
	r.s.mu.Unlock()

	sortClaims(matched)
	start, end := pageBounds(len(matched), page, pageSize)
	return matched[start:end], len(matched), nil
}

type MemorySettlementRepository struct{ s *MemoryStore }

var _ interfaces.ISettlementRepository = (*MemorySettlementRepository)(nil)

func (r *MemorySettlementRepository) CreateIfAbsent(_ context.Context, st entities.Settlement) (entities.Settlement, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if existing, ok := r.s.settlements[st.ClaimID]; ok {
		return copySettlement(existing), false, nil
	}
	r.s.settlements[st.ClaimID] = copySettlement(st)
	return copySettlement(st), true, nil
}

func (r *MemorySettlementRepository) GetByClaimID(_ context.Context, claimID string) (entities.Settlement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	st, ok := r.s.settlements[claimID]
	if !ok {
		return entities.Settlement{}, nil
	}
	return copySettlement(st), nil
}

func copySettlement(s entities.Settlement) entities.Settlement {
	out := s
	out.ItemsSnapshot = entities.CloneItems(s.ItemsSnapshot)
	return out
}

type MemoryRemainderPaymentRepository struct{ s *MemoryStore }

var _ interfaces.IRemainderPaymentRepository = (*MemoryRemainderPaymentRepository)(nil)

func (r *MemoryRemainderPaymentRepository) Create(_ context.Context, p entities.RemainderPayment) (entities.RemainderPayment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.payments[p.ID]; ok {
		return entities.RemainderPayment{}, ErrDuplicateID
	}
	r.s.payments[p.ID] = copyPayment(p)
	return p, nil
}

func (r *MemoryRemainderPaymentRepository) GetByID(_ context.Context, id string) (entities.RemainderPayment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.payments[id]
	if !ok {
		return entities.RemainderPayment{}, nil
	}
	return copyPayment(p), nil
}

func (r *MemoryRemainderPaymentRepository) ListByClaimID(_ context.Context, claimID string) ([]entities.RemainderPayment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []entities.RemainderPayment{}
	for _, p := range r.s.payments {
		if p.ClaimID == claimID {
			out = append(out, copyPayment(p))
		}
	}
	sortPayments(out)
	return out, nil
}

func copyPayment(p entities.RemainderPayment) entities.RemainderPayment {
	out := p
	if p.PayloadRaw != nil {
		out.PayloadRaw = append(json.RawMessage(nil), p.PayloadRaw...)
	}
	return out
}
