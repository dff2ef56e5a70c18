// Package agreements manages service contract records and their persisted
// status lifecycle. Unlike claims, an agreement's status is owned by the
// backend store and read as-is, never derived.
package agreements

import (
	"time"

	"github.com/google/uuid"
)

// Agreement represents a warranty or service contract held against a vehicle.
type Agreement struct {
	ID              uuid.UUID  `json:"id"`
	AgreementNumber string     `json:"agreement_number"`
	DealerID        uuid.UUID  `json:"dealer_id"`
	DealerName      string     `json:"dealer_name,omitempty"`
	HolderName      string     `json:"holder_name"`
	VIN             string     `json:"vin"`
	Status          string     `json:"status"`
	EffectiveDate   *time.Time `json:"effective_date,omitempty"`
	ExpireDate      *time.Time `json:"expire_date,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
