package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"claims_service/internal/domain/entities"
	"claims_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

var (
	ErrInvalidClaimID = errors.New("invalid claim id")
	ErrCatalogMissing = errors.New("unit price required when no price catalog is configured")
)

// IClaimUseCase is the claim registry: creation, lookup, listing and every versioned
// mutation of a claim.
//
// Mutations follow the same path:
//   - load the claim and compare its version with expectedVersion
//   - apply the domain operation to a copy
//   - persist with a conditional save on expectedVersion
//   - publish a claim event

type IClaimUseCase interface {
	Create(ctx context.Context, draft ClaimDraft) (entities.Claim, error)
	GetByID(ctx context.Context, id string) (entities.Claim, error)
	List(ctx context.Context, filter entities.ClaimFilter, page, pageSize int) (ClaimPage, error)
	AddItem(ctx context.Context, id string, expectedVersion int64, item LineItemInput) (entities.Claim, error)
	UpdateItem(ctx context.Context, id string, expectedVersion int64, index int, patch entities.LineItemPatch) (entities.Claim, error)
	RemoveItem(ctx context.Context, id string, expectedVersion int64, index int) (entities.Claim, error)
	SetPaymentMode(ctx context.Context, id string, expectedVersion int64, mode entities.PaymentMode) (entities.Claim, error)
	Transition(ctx context.Context, id string, expectedVersion int64, to entities.StatusKind, reason string) (entities.Claim, error)
	Coverage(ctx context.Context, id string) (entities.Coverage, error)
}

// ClaimDraft is the input of Create.
type ClaimDraft struct {
	Workflow       entities.Workflow       `json:"workflow" validate:"omitempty,workflow"`
	BeneficiaryRef string                  `json:"beneficiary_ref" validate:"required"`
	ProviderRef    string                  `json:"provider_ref" validate:"required"`
	AffectionCode  string                  `json:"affection_code"`
	PrestationType entities.PrestationType `json:"prestation_type" validate:"required,prestationType"`
	Observations   string                  `json:"observations"`
	PaymentMode    *entities.PaymentMode   `json:"payment_mode"`
	Items          []LineItemInput         `json:"items"`
}

// LineItemInput is a line item as submitted by a caller. A nil UnitPrice is resolved
// through the price catalog, which also supplies the label and reimbursable flag
// when they are not given.
type LineItemInput struct {
	Code             string          `json:"code"`
	Label            string          `json:"label"`
	Quantity         int             `json:"quantity"`
	UnitPrice        *entities.Money `json:"unit_price"`
	Reimbursable     *bool           `json:"reimbursable"`
	CoverageOverride *int            `json:"coverage_override"`
}

// ClaimPage is one page of a claim listing.
type ClaimPage struct {
	Items    []entities.Claim `json:"items"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// ClaimUseCaseConfig carries the optional collaborators of the registry. A nil
// directory disables the corresponding reference check.
type ClaimUseCaseConfig struct {
	Beneficiaries interfaces.IBeneficiaryDirectory
	Providers     interfaces.IProviderDirectory
	Catalog       interfaces.IPriceCatalog
	Publisher     interfaces.IEventPublisher
	Logger        *zap.Logger
	Now           func() time.Time
}

type ClaimUseCase struct {
	repo          interfaces.IClaimRepository
	beneficiaries interfaces.IBeneficiaryDirectory
	providers     interfaces.IProviderDirectory
	catalog       interfaces.IPriceCatalog
	publisher     interfaces.IEventPublisher
	logger        *zap.Logger
	now           func() time.Time
}

var _ IClaimUseCase = (*ClaimUseCase)(nil)

func NewClaimUseCase(repo interfaces.IClaimRepository, cfg ClaimUseCaseConfig) *ClaimUseCase {
	u := &ClaimUseCase{
		repo:          repo,
		beneficiaries: cfg.Beneficiaries,
		providers:     cfg.Providers,
		catalog:       cfg.Catalog,
		publisher:     cfg.Publisher,
		logger:        cfg.Logger,
		now:           cfg.Now,
	}
	if u.logger == nil {
		u.logger = zap.NewNop()
	}
	if u.now == nil {
		u.now = func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) }
	}
	return u
}

func (u *ClaimUseCase) Create(ctx context.Context, draft ClaimDraft) (entities.Claim, error) {
	draft.BeneficiaryRef = strings.TrimSpace(draft.BeneficiaryRef)
	draft.ProviderRef = strings.TrimSpace(draft.ProviderRef)
	draft.PrestationType = entities.PrestationType(strings.ToLower(strings.TrimSpace(string(draft.PrestationType))))
	draft.AffectionCode = strings.TrimSpace(draft.AffectionCode)
	if draft.Workflow == "" {
		draft.Workflow = entities.WorkflowPriorAuthorization
	}

	if err := validateStruct(draft); err != nil {
		return entities.Claim{}, err
	}

	if u.beneficiaries != nil {
		if _, err := u.beneficiaries.Resolve(ctx, draft.BeneficiaryRef); err != nil {
			u.logger.Warn("[claim][usecase] beneficiary lookup failed", zap.String("beneficiary_ref", draft.BeneficiaryRef), zap.Error(err))
			return entities.Claim{}, err
		}
	}
	if u.providers != nil {
		if _, err := u.providers.Resolve(ctx, draft.ProviderRef); err != nil {
			u.logger.Warn("[claim][usecase] provider lookup failed", zap.String("provider_ref", draft.ProviderRef), zap.Error(err))
			return entities.Claim{}, err
		}
	}

	mode := entities.DirectPayMode()
	if draft.PaymentMode != nil {
		if err := draft.PaymentMode.Validate(); err != nil {
			return entities.Claim{}, err
		}
		mode = *draft.PaymentMode
	}

	items := make([]entities.LineItem, 0, len(draft.Items))
	for _, in := range draft.Items {
		item, err := u.resolveItem(ctx, in)
		if err != nil {
			return entities.Claim{}, err
		}
		if err := entities.ValidateItem(item); err != nil {
			return entities.Claim{}, err
		}
		items = append(items, item)
	}
	if err := entities.ValidateTotal(items); err != nil {
		return entities.Claim{}, err
	}

	if draft.AffectionCode == "" {
		draft.AffectionCode = entities.AffectionCodeUnknown
	}

	now := u.now()
	c := entities.Claim{
		ID:             uuid.NewString(),
		Workflow:       draft.Workflow,
		BeneficiaryRef: draft.BeneficiaryRef,
		ProviderRef:    draft.ProviderRef,
		AffectionCode:  draft.AffectionCode,
		PrestationType: draft.PrestationType,
		Items:          items,
		PaymentMode:    mode,
		Status:         entities.PendingStatus(),
		Observations:   strings.TrimSpace(draft.Observations),
		CreatedAt:      now,
		LastModifiedAt: now,
		Version:        1,
	}
	c.RecomputeTotal()

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		u.logger.Error("[claim][usecase] create failed", zap.String("claim_id", c.ID), zap.Error(err))
		return entities.Claim{}, err
	}
	u.logger.Info("[claim][usecase] claim created",
		zap.String("claim_id", created.ID),
		zap.String("workflow", string(created.Workflow)),
		zap.Int("items", len(created.Items)),
	)
	u.publish(ctx, entities.EventClaimCreated, created)
	return created, nil
}

func (u *ClaimUseCase) GetByID(ctx context.Context, id string) (entities.Claim, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Claim{}, ErrInvalidClaimID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Claim{}, err
	}
	if c.ID == "" {
		return entities.Claim{}, entities.ErrClaimNotFound
	}
	return c, nil
}

func (u *ClaimUseCase) List(ctx context.Context, filter entities.ClaimFilter, page, pageSize int) (ClaimPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	claims, total, err := u.repo.Query(ctx, filter.Normalize(), page, pageSize)
	if err != nil {
		return ClaimPage{}, err
	}
	if claims == nil {
		claims = []entities.Claim{}
	}
	return ClaimPage{Items: claims, Total: total, Page: page, PageSize: pageSize}, nil
}

func (u *ClaimUseCase) AddItem(ctx context.Context, id string, expectedVersion int64, in LineItemInput) (entities.Claim, error) {
	return u.mutate(ctx, id, expectedVersion, entities.EventClaimItemsChanged, func(c *entities.Claim, now time.Time) error {
		// checked before resolveItem to skip the catalog lookup on a locked claim
		if c.IsLocked() {
			return entities.ErrClaimLocked
		}
		item, err := u.resolveItem(ctx, in)
		if err != nil {
			return err
		}
		return entities.AddItem(c, item, now)
	})
}

func (u *ClaimUseCase) UpdateItem(ctx context.Context, id string, expectedVersion int64, index int, patch entities.LineItemPatch) (entities.Claim, error) {
	return u.mutate(ctx, id, expectedVersion, entities.EventClaimItemsChanged, func(c *entities.Claim, now time.Time) error {
		return entities.UpdateItem(c, index, patch, now)
	})
}

func (u *ClaimUseCase) RemoveItem(ctx context.Context, id string, expectedVersion int64, index int) (entities.Claim, error) {
	return u.mutate(ctx, id, expectedVersion, entities.EventClaimItemsChanged, func(c *entities.Claim, now time.Time) error {
		return entities.RemoveItem(c, index, now)
	})
}

func (u *ClaimUseCase) SetPaymentMode(ctx context.Context, id string, expectedVersion int64, mode entities.PaymentMode) (entities.Claim, error) {
	return u.mutate(ctx, id, expectedVersion, entities.EventClaimPaymentModeChanged, func(c *entities.Claim, now time.Time) error {
		return entities.SetPaymentMode(c, mode, now)
	})
}

func (u *ClaimUseCase) Transition(ctx context.Context, id string, expectedVersion int64, to entities.StatusKind, reason string) (entities.Claim, error) {
	return u.mutate(ctx, id, expectedVersion, entities.EventClaimTransitioned, func(c *entities.Claim, now time.Time) error {
		return entities.Transition(c, to, reason, now)
	})
}

// Coverage previews the split the claim would settle with right now.
func (u *ClaimUseCase) Coverage(ctx context.Context, id string) (entities.Coverage, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Coverage{}, err
	}
	return entities.ClaimCoverage(c)
}

func (u *ClaimUseCase) mutate(ctx context.Context, id string, expectedVersion int64, event entities.ClaimEventType, apply func(*entities.Claim, time.Time) error) (entities.Claim, error) {
	if expectedVersion <= 0 {
		return entities.Claim{}, entities.NewValidationError(entities.FieldError{Field: "version", Message: "expected version required"})
	}

	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Claim{}, err
	}
	if current.Version != expectedVersion {
		u.logger.Info("[claim][usecase] stale version",
			zap.String("claim_id", current.ID),
			zap.Int64("expected_version", expectedVersion),
			zap.Int64("current_version", current.Version),
		)
		return entities.Claim{}, entities.ErrConcurrentModification
	}

	next := current.Clone()
	if err := apply(&next, u.now()); err != nil {
		return entities.Claim{}, err
	}

	saved, err := u.repo.Save(ctx, next, expectedVersion)
	if err != nil {
		if errors.Is(err, entities.ErrConcurrentModification) {
			u.logger.Info("[claim][usecase] lost conditional save", zap.String("claim_id", next.ID), zap.Int64("expected_version", expectedVersion))
		} else {
			u.logger.Error("[claim][usecase] save failed", zap.String("claim_id", next.ID), zap.Error(err))
		}
		return entities.Claim{}, err
	}

	u.logger.Debug("[claim][usecase] claim mutated",
		zap.String("claim_id", saved.ID),
		zap.String("event", string(event)),
		zap.Int64("version", saved.Version),
	)
	u.publish(ctx, event, saved)
	return saved, nil
}

func (u *ClaimUseCase) resolveItem(ctx context.Context, in LineItemInput) (entities.LineItem, error) {
	item := entities.LineItem{
		Code:             strings.TrimSpace(in.Code),
		Label:            strings.TrimSpace(in.Label),
		Quantity:         in.Quantity,
		CoverageOverride: in.CoverageOverride,
	}
	if item.Code == "" {
		return entities.LineItem{}, entities.NewValidationError(entities.FieldError{Field: "code", Message: "required"})
	}

	if in.UnitPrice != nil {
		item.UnitPrice = *in.UnitPrice
		if in.Reimbursable != nil {
			item.Reimbursable = *in.Reimbursable
		}
		return item, nil
	}

	if u.catalog == nil {
		return entities.LineItem{}, ErrCatalogMissing
	}
	entry, err := u.catalog.PriceOf(ctx, item.Code)
	if err != nil {
		u.logger.Warn("[claim][usecase] catalog lookup failed", zap.String("code", item.Code), zap.Error(err))
		return entities.LineItem{}, err
	}
	item.UnitPrice = entry.UnitPrice
	item.Reimbursable = entry.Reimbursable
	if in.Reimbursable != nil {
		item.Reimbursable = *in.Reimbursable
	}
	if item.Label == "" {
		item.Label = entry.Label
	}
	return item, nil
}

func (u *ClaimUseCase) publish(ctx context.Context, t entities.ClaimEventType, c entities.Claim) {
	if u.publisher == nil {
		return
	}
	if err := u.publisher.Publish(ctx, entities.NewClaimEvent(t, c)); err != nil {
		u.logger.Warn("[claim][usecase] event publish failed",
			zap.String("claim_id", c.ID),
			zap.String("event", string(t)),
			zap.Error(err),
		)
	}
}
