package entities

import (
	"strings"
	"time"
)

type transitionRule struct {
	requiresReason bool
	precondition   func(c Claim) string
}

func approvalPrecondition(c Claim) string {
	if len(c.Items) == 0 {
		return "claim has no line items"
	}
	if strings.TrimSpace(c.BeneficiaryRef) == "" {
		return "beneficiary reference is not set"
	}
	return ""
}

func claimStatusTransitions() map[StatusKind]map[StatusKind]transitionRule {
	return map[StatusKind]map[StatusKind]transitionRule{
		StatusPending: {
			StatusApproved:  {precondition: approvalPrecondition},
			StatusRejected:  {requiresReason: true},
			StatusCancelled: {requiresReason: true},
		},
		StatusApproved: {
			StatusExecuted:  {},
			StatusCancelled: {requiresReason: true},
		},
		StatusRejected:  {},
		StatusExecuted:  {},
		StatusCancelled: {},
	}
}

// AllowedTransitions lists the statuses reachable from from, ignoring preconditions.
func AllowedTransitions(from StatusKind) []StatusKind {
	out := []StatusKind{}
	for _, to := range []StatusKind{StatusApproved, StatusRejected, StatusExecuted, StatusCancelled} {
		if _, ok := claimStatusTransitions()[from][to]; ok {
			out = append(out, to)
		}
	}
	return out
}

// IsTransitionAllowed reports whether from → to appears in the transition table.
func IsTransitionAllowed(from, to StatusKind) bool {
	_, ok := claimStatusTransitions()[from][to]
	return ok
}

// Transition moves c to the status to.
//
// A pair outside the table, or a table pair whose precondition fails, returns a
// *TransitionError. A missing required reason returns a *ValidationError. On success the
// version is incremented and LastModifiedAt stamped.
func Transition(c *Claim, to StatusKind, reason string, now time.Time) error {
	from := c.Status.Kind
	rule, ok := claimStatusTransitions()[from][to]
	if !ok {
		return &TransitionError{From: from, To: to}
	}

	reason = strings.TrimSpace(reason)
	if rule.requiresReason && reason == "" {
		return NewValidationError(FieldError{Field: "reason", Message: "reason required"})
	}
	if rule.precondition != nil {
		if failed := rule.precondition(*c); failed != "" {
			return &TransitionError{From: from, To: to, Reason: failed}
		}
	}

	next := Status{Kind: to}
	if rule.requiresReason {
		next.Reason = reason
	}
	c.Status = next
	c.Version++
	c.LastModifiedAt = now
	return nil
}
