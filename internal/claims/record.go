package claims

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ClaimRecord is the explicit boundary type for external claim rows. The
// upstream store exposes optional date and text fields as loosely-typed
// strings; Normalize maps missing, null-ish, and unparseable values to the
// absent sentinel (nil) rather than failing, so classification degrades
// gracefully on partial data. Identity fields are validated strictly.
type ClaimRecord struct {
	ClaimNumber  string `json:"claim_number"`
	AgreementID  string `json:"agreement_id"`
	DealerID     string `json:"dealer_id"`
	VIN          string `json:"vin"`
	IncurredDate string `json:"incurred_date"`
	ReportedDate string `json:"reported_date"`
	ClosedDate   string `json:"closed_date"`
	Correction   string `json:"correction"`
	PaidAmount   int64  `json:"paid_amount"`
}

// Normalize validates identity fields and converts the loose date and text
// fields into their typed, nullable forms.
func (r ClaimRecord) Normalize() (CreateCommand, error) {
	var cmd CreateCommand

	if strings.TrimSpace(r.ClaimNumber) == "" {
		return cmd, fmt.Errorf("%w: claim_number required", ErrInvalidRecord)
	}

	agreementID, err := uuid.Parse(r.AgreementID)
	if err != nil {
		return cmd, fmt.Errorf("%w: agreement_id: %v", ErrInvalidRecord, err)
	}

	dealerID, err := uuid.Parse(r.DealerID)
	if err != nil {
		return cmd, fmt.Errorf("%w: dealer_id: %v", ErrInvalidRecord, err)
	}

	if r.PaidAmount < 0 {
		return cmd, fmt.Errorf("%w: paid_amount must not be negative", ErrInvalidRecord)
	}

	return CreateCommand{
		ClaimNumber:  strings.TrimSpace(r.ClaimNumber),
		AgreementID:  agreementID,
		DealerID:     dealerID,
		VIN:          strings.TrimSpace(r.VIN),
		IncurredDate: ParseDate(r.IncurredDate),
		ReportedDate: ParseDate(r.ReportedDate),
		ClosedDate:   ParseDate(r.ClosedDate),
		Correction:   normalizeText(r.Correction),
		PaidAmount:   r.PaidAmount,
	}, nil
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate converts a raw date string to a timestamp. Empty, null-ish, and
// unparseable values yield nil rather than an error.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "null") {
		return nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}

	return nil
}

func normalizeText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
