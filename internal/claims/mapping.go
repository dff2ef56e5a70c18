package claims

import (
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/wrenchline/tread/pkg/query"
	"github.com/wrenchline/tread/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "claims", "c").
	Project("id", "ID").
	Project("claim_number", "ClaimNumber").
	Project("agreement_id", "AgreementID").
	Project("dealer_id", "DealerID").
	Project("vin", "VIN").
	Project("incurred_date", "IncurredDate").
	Project("reported_date", "ReportedDate").
	Project("closed_date", "ClosedDate").
	Project("correction", "Correction").
	Project("paid_amount", "PaidAmount").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt").
	Join("public", "dealers", "d", "LEFT JOIN", "c.dealer_id = d.id").
	Project("name", "DealerName")

var defaultSort = query.SortField{
	Field:      "ReportedDate",
	Descending: true,
}

// Filters contains optional filtering criteria for claim queries. Nil fields
// are ignored. Status filters translate to the same date-presence predicates
// the classifier defines, so SQL filtering and in-memory classification agree.
type Filters struct {
	Status       *Status     `json:"status,omitempty"`
	DealerID     *uuid.UUID  `json:"dealer_id,omitempty"`
	AgreementID  *uuid.UUID  `json:"agreement_id,omitempty"`
	VIN          *string     `json:"vin,omitempty"`
	ReportedFrom *time.Time  `json:"reported_from,omitempty"`
	ReportedTo   *time.Time  `json:"reported_to,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	if f.Status != nil {
		applyStatus(b, *f.Status)
	}

	return b.
		WhereEquals("DealerID", f.DealerID).
		WhereEquals("AgreementID", f.AgreementID).
		WhereContains("VIN", f.VIN).
		WhereGTE("ReportedDate", f.ReportedFrom).
		WhereLTE("ReportedDate", f.ReportedTo)
}

// applyStatus expresses the canonical classification rule as SQL predicates:
// CLOSED means a closed date exists, OPEN means reported without closed,
// PENDING means neither date is present.
func applyStatus(b *query.Builder, s Status) {
	switch s {
	case StatusClosed:
		b.WhereNotNull("ClosedDate")
	case StatusOpen:
		b.WhereNull("ClosedDate").WhereNotNull("ReportedDate")
	case StatusPending:
		b.WhereNull("ClosedDate").WhereNull("ReportedDate")
	}
}

// FiltersFromQuery extracts filter values from URL query parameters.
// Unparseable values are ignored rather than rejected.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if s := values.Get("status"); s != "" {
		if status, ok := ParseStatus(s); ok {
			f.Status = &status
		}
	}

	if d := values.Get("dealer_id"); d != "" {
		if id, err := uuid.Parse(d); err == nil {
			f.DealerID = &id
		}
	}

	if a := values.Get("agreement_id"); a != "" {
		if id, err := uuid.Parse(a); err == nil {
			f.AgreementID = &id
		}
	}

	if v := values.Get("vin"); v != "" {
		f.VIN = &v
	}

	if from := values.Get("reported_from"); from != "" {
		if t := ParseDate(from); t != nil {
			f.ReportedFrom = t
		}
	}

	if to := values.Get("reported_to"); to != "" {
		if t := ParseDate(to); t != nil {
			f.ReportedTo = t
		}
	}

	return f
}

func scanClaim(s repository.Scanner) (Claim, error) {
	var (
		c          Claim
		dealerName *string
	)

	err := s.Scan(
		&c.ID,
		&c.ClaimNumber,
		&c.AgreementID,
		&c.DealerID,
		&c.VIN,
		&c.IncurredDate,
		&c.ReportedDate,
		&c.ClosedDate,
		&c.Correction,
		&c.PaidAmount,
		&c.CreatedAt,
		&c.UpdatedAt,
		&dealerName,
	)
	if err != nil {
		return c, err
	}

	if dealerName != nil {
		c.DealerName = *dealerName
	}

	c.Derive()
	return c, nil
}
