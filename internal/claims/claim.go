// Package claims implements the claim domain for Tread. It provides types,
// data access, and business logic for claim ingest, querying, and status
// derivation. Status is never persisted: it is recomputed from the raw date
// fields on every read so that stored rows and displayed statuses cannot
// drift apart.
package claims

import (
	"time"

	"github.com/google/uuid"
)

// Claim represents a service claim filed against an agreement.
// Status and Denied are derived fields, populated on read.
type Claim struct {
	ID           uuid.UUID  `json:"id"`
	ClaimNumber  string     `json:"claim_number"`
	AgreementID  uuid.UUID  `json:"agreement_id"`
	DealerID     uuid.UUID  `json:"dealer_id"`
	DealerName   string     `json:"dealer_name"`
	VIN          string     `json:"vin"`
	IncurredDate *time.Time `json:"incurred_date"`
	ReportedDate *time.Time `json:"reported_date"`
	ClosedDate   *time.Time `json:"closed_date"`
	Correction   *string    `json:"correction"`
	PaidAmount   int64      `json:"paid_amount"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Status       Status     `json:"status"`
	Denied       bool       `json:"denied"`
}

// Derive populates the computed Status and Denied fields from raw claim data.
func (c *Claim) Derive() {
	c.Status = DeriveStatus(c.ReportedDate, c.ClosedDate)
	c.Denied = IsDenied(c.Correction)
}

// CreateCommand carries normalized data for inserting a new claim.
// Produced from a ClaimRecord via Normalize; date fields are nil when the
// source row omitted them or carried an unparseable value.
type CreateCommand struct {
	ClaimNumber  string
	AgreementID  uuid.UUID
	DealerID     uuid.UUID
	VIN          string
	IncurredDate *time.Time
	ReportedDate *time.Time
	ClosedDate   *time.Time
	Correction   *string
	PaidAmount   int64
}

// BatchResult reports the outcome of a single record within a batch ingest.
// On success, Claim is populated and Error is empty.
type BatchResult struct {
	Claim       *Claim `json:"claim,omitempty"`
	ClaimNumber string `json:"claim_number"`
	Error       string `json:"error,omitempty"`
}
