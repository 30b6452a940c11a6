package request

import (
	"strconv"
	"strings"
	"time"

	"claims_service/internal/domain/entities"
)

const dateLayout = "2006-01-02"

// ClaimListQuery holds the query string of GET /v1/claims.
type ClaimListQuery struct {
	Status         string `form:"status"`
	CreatedFrom    string `form:"created_from"`
	CreatedTo      string `form:"created_to"`
	ProviderRef    string `form:"provider_ref"`
	BeneficiaryRef string `form:"beneficiary_ref"`
	Search         string `form:"q"`
	PaymentMode    string `form:"payment_mode"`
	Workflow       string `form:"workflow"`
	PrestationType string `form:"prestation_type"`
	Page           string `form:"page"`
	PageSize       string `form:"page_size"`
}

// Filter converts the query into a filter. Values that do not parse are dropped, the same
// way the registry drops unknown enum values.
func (q ClaimListQuery) Filter() entities.ClaimFilter {
	f := entities.ClaimFilter{
		ProviderRef:    q.ProviderRef,
		BeneficiaryRef: q.BeneficiaryRef,
		Search:         q.Search,
		Workflow:       entities.Workflow(strings.ToLower(strings.TrimSpace(q.Workflow))),
		PrestationType: entities.PrestationType(strings.ToLower(strings.TrimSpace(q.PrestationType))),
	}
	if q.Status != "" {
		if k, err := ParseStatus(q.Status); err == nil {
			f.Status = k
		}
	}
	if q.PaymentMode != "" {
		if k, err := ParsePaymentModeKind(q.PaymentMode); err == nil {
			f.PaymentMode = k
		}
	}
	f.CreatedFrom = parseTimeBound(q.CreatedFrom, false)
	f.CreatedTo = parseTimeBound(q.CreatedTo, true)
	return f
}

func (q ClaimListQuery) Pagination() (page, pageSize int) {
	page, _ = strconv.Atoi(strings.TrimSpace(q.Page))
	pageSize, _ = strconv.Atoi(strings.TrimSpace(q.PageSize))
	return page, pageSize
}

// parseTimeBound accepts RFC3339 or a plain date; a plain upper bound covers the whole day.
func parseTimeBound(s string, upper bool) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC()
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}
	}
	if upper {
		return t.Add(24*time.Hour - time.Nanosecond)
	}
	return t
}
