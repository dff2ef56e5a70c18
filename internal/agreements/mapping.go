package agreements

import (
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/wrenchline/tread/pkg/query"
	"github.com/wrenchline/tread/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "agreements", "a").
	Project("id", "ID").
	Project("agreement_number", "AgreementNumber").
	Project("dealer_id", "DealerID").
	Project("holder_name", "HolderName").
	Project("vin", "VIN").
	Project("status", "Status").
	Project("effective_date", "EffectiveDate").
	Project("expire_date", "ExpireDate").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt").
	Join("public", "dealers", "d", "LEFT JOIN", "a.dealer_id = d.id").
	Project("name", "DealerName")

var defaultSort = query.SortField{
	Field:      "EffectiveDate",
	Descending: true,
}

// Filters contains optional filtering criteria for agreement queries.
// Nil fields are ignored.
type Filters struct {
	Status        *string    `json:"status,omitempty"`
	DealerID      *uuid.UUID `json:"dealer_id,omitempty"`
	VIN           *string    `json:"vin,omitempty"`
	EffectiveFrom *time.Time `json:"effective_from,omitempty"`
	EffectiveTo   *time.Time `json:"effective_to,omitempty"`
}

// Apply adds filter conditions to a query builder. The status predicate is
// case-insensitive so filtered lists agree with AggregateStatus, which
// normalizes stored values the same way.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	var status *string
	if f.Status != nil {
		normalized := NormalizeStatus(*f.Status)
		status = &normalized
	}

	return b.
		WhereEqualsFold("Status", status).
		WhereEquals("DealerID", f.DealerID).
		WhereContains("VIN", f.VIN).
		WhereGTE("EffectiveDate", f.EffectiveFrom).
		WhereLTE("EffectiveDate", f.EffectiveTo)
}

// FiltersFromQuery extracts filter values from URL query parameters.
// Unparseable values are ignored rather than rejected.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if s := values.Get("status"); s != "" {
		f.Status = &s
	}

	if d := values.Get("dealer_id"); d != "" {
		if id, err := uuid.Parse(d); err == nil {
			f.DealerID = &id
		}
	}

	if v := values.Get("vin"); v != "" {
		f.VIN = &v
	}

	if from := values.Get("effective_from"); from != "" {
		if t, err := time.Parse(time.DateOnly, from); err == nil {
			f.EffectiveFrom = &t
		}
	}

	if to := values.Get("effective_to"); to != "" {
		if t, err := time.Parse(time.DateOnly, to); err == nil {
			f.EffectiveTo = &t
		}
	}

	return f
}

func scanAgreement(s repository.Scanner) (Agreement, error) {
	var (
		a          Agreement
		dealerName *string
	)

	err := s.Scan(
		&a.ID,
		&a.AgreementNumber,
		&a.DealerID,
		&a.HolderName,
		&a.VIN,
		&a.Status,
		&a.EffectiveDate,
		&a.ExpireDate,
		&a.CreatedAt,
		&a.UpdatedAt,
		&dealerName,
	)
	if err != nil {
		return a, err
	}

	if dealerName != nil {
		a.DealerName = *dealerName
	}

	return a, nil
}
