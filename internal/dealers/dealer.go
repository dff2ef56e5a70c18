// Package dealers manages dealer records and the claim performance
// leaderboard built over them.
package dealers

import (
	"time"

	"github.com/google/uuid"
)

// Dealer represents a business entity that sells agreements and files claims.
type Dealer struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	Region    string    `json:"region"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
