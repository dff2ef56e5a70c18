package dealers

import (
	"net/url"

	"github.com/wrenchline/tread/internal/claims"
	"github.com/wrenchline/tread/pkg/query"
	"github.com/wrenchline/tread/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "dealers", "d").
	Project("id", "ID").
	Project("name", "Name").
	Project("city", "City").
	Project("region", "Region").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{Field: "Name"}

// Filters contains optional filtering criteria for dealer queries.
// Nil fields are ignored.
type Filters struct {
	Region *string `json:"region,omitempty"`
	City   *string `json:"city,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("Region", f.Region).
		WhereContains("City", f.City)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if r := values.Get("region"); r != "" {
		f.Region = &r
	}

	if c := values.Get("city"); c != "" {
		f.City = &c
	}

	return f
}

// claimProjection covers only the claim fields the leaderboard needs.
var claimProjection = query.
	NewProjectionMap("public", "claims", "c").
	Project("dealer_id", "DealerID").
	Project("reported_date", "ReportedDate").
	Project("closed_date", "ClosedDate").
	Project("paid_amount", "PaidAmount").
	Join("public", "dealers", "d", "LEFT JOIN", "c.dealer_id = d.id").
	Project("name", "DealerName")

func scanLeaderboardClaim(s repository.Scanner) (claims.Claim, error) {
	var (
		c          claims.Claim
		dealerName *string
	)

	err := s.Scan(
		&c.DealerID,
		&c.ReportedDate,
		&c.ClosedDate,
		&c.PaidAmount,
		&dealerName,
	)
	if err != nil {
		return c, err
	}

	if dealerName != nil {
		c.DealerName = *dealerName
	}

	return c, nil
}

func scanDealer(s repository.Scanner) (Dealer, error) {
	var d Dealer
	err := s.Scan(
		&d.ID,
		&d.Name,
		&d.City,
		&d.Region,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	return d, err
}
