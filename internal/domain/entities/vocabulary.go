package entities

import (
	"fmt"
	"strings"
)

// Boundary tables between the closed variants and the codes used by external systems.
// Both directions are exhaustive; an unrecognised code is an error, never a default.

var paymentModeCodes = map[PaymentModeKind]string{
	PaymentModeFree:            "G",
	PaymentModeThirdPartyPayer: "T",
	PaymentModeDirectPay:       "D",
}

// PaymentModeCode returns the single-letter code of k.
func PaymentModeCode(k PaymentModeKind) (string, error) {
	code, ok := paymentModeCodes[k]
	if !ok {
		return "", fmt.Errorf("%w: payment mode %q", ErrUnknownWireCode, k)
	}
	return code, nil
}

// ParsePaymentModeCode maps a single-letter code back to its kind.
func ParsePaymentModeCode(code string) (PaymentModeKind, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for k, c := range paymentModeCodes {
		if c == code {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: payment mode code %q", ErrUnknownWireCode, code)
}

// workflowVocabularies holds the status labels each product module shows for the shared
// lifecycle.
var workflowVocabularies = map[Workflow]map[StatusKind]string{
	WorkflowPriorAuthorization: {
		StatusPending:   "en_attente",
		StatusApproved:  "accorde",
		StatusRejected:  "refuse",
		StatusExecuted:  "execute",
		StatusCancelled: "annule",
	},
	WorkflowEvacuation: {
		StatusPending:   "demandee",
		StatusApproved:  "autorisee",
		StatusRejected:  "refusee",
		StatusExecuted:  "effectuee",
		StatusCancelled: "annulee",
	},
	WorkflowBillingDispute: {
		StatusPending:   "ouverte",
		StatusApproved:  "recevable",
		StatusRejected:  "irrecevable",
		StatusExecuted:  "reglee",
		StatusCancelled: "retiree",
	},
}

// StatusLabel returns the workflow-specific label of k.
func StatusLabel(w Workflow, k StatusKind) (string, error) {
	vocab, ok := workflowVocabularies[w]
	if !ok {
		return "", fmt.Errorf("%w: workflow %q", ErrUnknownWireCode, w)
	}
	label, ok := vocab[k]
	if !ok {
		return "", fmt.Errorf("%w: status %q", ErrUnknownWireCode, k)
	}
	return label, nil
}

// ParseStatus accepts either a canonical status or a label of workflow w.
func ParseStatus(w Workflow, s string) (StatusKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if k := StatusKind(s); k.IsValid() {
		return k, nil
	}
	for k, label := range workflowVocabularies[w] {
		if label == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: status %q", ErrUnknownWireCode, s)
}
