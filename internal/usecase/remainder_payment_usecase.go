package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"claims_service/internal/domain/entities"
	"claims_service/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrRemainderPaymentNotFound       = errors.New("remainder payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrNothingToCollect               = errors.New("settlement has no patient remainder")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IRemainderPaymentUseCase collects the patient remainder of a finalized settlement.
//
// The amount charged is always the settlement's PatientRemainder; the caller only
// supplies the provider payload (payment method, payer).

type IRemainderPaymentUseCase interface {
	Collect(ctx context.Context, claimID string, mpPayload json.RawMessage) (entities.RemainderPayment, error)
	GetByID(ctx context.Context, id string) (entities.RemainderPayment, error)
	ListByClaimID(ctx context.Context, claimID string) ([]entities.RemainderPayment, error)
}

// RemainderPaymentConfig holds the gateway settings read from configuration.
type RemainderPaymentConfig struct {
	MockMode         bool
	CurrencyExponent int32
	AccessToken      string
	TestPayerEmail   string
	TestPayerUserID  string
}

type RemainderPaymentUseCase struct {
	repo           interfaces.IRemainderPaymentRepository
	settlementRepo interfaces.ISettlementRepository
	gateway        interfaces.IPaymentGateway
	cfg            RemainderPaymentConfig
	logger         *zap.Logger
}

var _ IRemainderPaymentUseCase = (*RemainderPaymentUseCase)(nil)

func NewRemainderPaymentUseCase(repo interfaces.IRemainderPaymentRepository, settlementRepo interfaces.ISettlementRepository, gateway interfaces.IPaymentGateway, cfg RemainderPaymentConfig, logger *zap.Logger) *RemainderPaymentUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RemainderPaymentUseCase{repo: repo, settlementRepo: settlementRepo, gateway: gateway, cfg: cfg, logger: logger}
}

func (u *RemainderPaymentUseCase) Collect(ctx context.Context, claimID string, mpPayload json.RawMessage) (entities.RemainderPayment, error) {
	log := u.logger.With(zap.String("claim_id", strings.TrimSpace(claimID)))
	log.Info("[payment][usecase] collect start", zap.Int("payload_len", len(mpPayload)))

	mockMode := u.cfg.MockMode
	claimID = strings.TrimSpace(claimID)
	if claimID == "" {
		return entities.RemainderPayment{}, ErrInvalidClaimID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Info("[payment][usecase] invalid payload")
			return entities.RemainderPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !mockMode {
		return entities.RemainderPayment{}, ErrPaymentGatewayNotConfigured
	}

	s, err := u.settlementRepo.GetByClaimID(ctx, claimID)
	if err != nil {
		log.Error("[payment][usecase] failed loading settlement", zap.Error(err))
		return entities.RemainderPayment{}, err
	}
	if s.ClaimID == "" {
		return entities.RemainderPayment{}, entities.ErrSettlementNotFound
	}
	if s.PatientRemainder <= 0 {
		return entities.RemainderPayment{}, ErrNothingToCollect
	}
	amount := entities.MajorUnits(s.PatientRemainder, u.cfg.CurrencyExponent).InexactFloat64()

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		if !mockMode {
			return entities.RemainderPayment{}, ErrInvalidMPPayload
		}
		reqMap = map[string]any{}
	}
	if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
		log.Info("[payment][usecase] missing payment_method_id")
		return entities.RemainderPayment{}, ErrInvalidMPPayload
	}
	if !mockMode {
		u.normalizeSandboxPayerFromUserID(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Info("[payment][usecase] missing or invalid payer")
			return entities.RemainderPayment{}, ErrInvalidMPPayload
		}
	}

	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = claimID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Patient remainder for claim %s", claimID)
	}
	reqMap["transaction_amount"] = amount
	if b, err := json.Marshal(reqMap); err == nil {
		mpPayload = b
	}

	var (
		providerPaymentID string
		providerStatus    string
		providerResp      json.RawMessage
	)
	if mockMode {
		log.Info("[payment][usecase] mock mode enabled; skipping external payment gateway")
		providerPaymentID, providerStatus, providerResp, err = mockGatewayResponse(reqMap)
		if err != nil {
			return entities.RemainderPayment{}, err
		}
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			log.Warn("[payment][usecase] payment gateway failed", zap.Error(err))
			return entities.RemainderPayment{}, classifyGatewayError(err)
		}
	}
	log.Info("[payment][usecase] payment gateway success",
		zap.String("provider_payment_id", providerPaymentID),
		zap.String("provider_status", providerStatus),
	)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Warn("[payment][usecase] provider response unmarshal failed", zap.Error(err))
	}

	p := entities.RemainderPayment{
		ID:         providerPaymentID,
		ClaimID:    claimID,
		Amount:     s.PatientRemainder,
		Date:       time.Now().UTC(),
		Status:     entities.PaymentStatusFromProvider(providerStatus),
		PayloadRaw: providerResp,
		Payload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error("[payment][usecase] payment repository create failed", zap.String("payment_id", p.ID), zap.Error(err))
		return entities.RemainderPayment{}, err
	}
	log.Info("[payment][usecase] collect success", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))
	return created, nil
}

func (u *RemainderPaymentUseCase) GetByID(ctx context.Context, id string) (entities.RemainderPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.RemainderPayment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.RemainderPayment{}, err
	}
	if p.ID == "" {
		return entities.RemainderPayment{}, ErrRemainderPaymentNotFound
	}
	return p, nil
}

func (u *RemainderPaymentUseCase) ListByClaimID(ctx context.Context, claimID string) ([]entities.RemainderPayment, error) {
	claimID = strings.TrimSpace(claimID)
	if claimID == "" {
		return nil, ErrInvalidClaimID
	}
	return u.repo.ListByClaimID(ctx, claimID)
}

func mockGatewayResponse(req map[string]any) (string, string, json.RawMessage, error) {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)

	resp := make(map[string]any, len(req)+5)
	for k, v := range req {
		resp[k] = v
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *RemainderPaymentUseCase) isSandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(u.cfg.AccessToken), "TEST-")
}

func (u *RemainderPaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// Sandbox accepts either payer.id or payer.email; fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(u.cfg.TestPayerEmail); email != "" {
			payer["email"] = email
		} else if u.isSandbox() {
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

func (u *RemainderPaymentUseCase) normalizeSandboxPayerFromUserID(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") || !u.isSandbox() {
		return
	}

	userID := strings.TrimSpace(u.cfg.TestPayerUserID)
	email := strings.TrimSpace(u.cfg.TestPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}

	payer["email"] = email
	delete(payer, "id")
	u.logger.Debug("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	default:
		return err
	}
}
