package api

import (
	"github.com/wrenchline/tread/internal/agreements"
	"github.com/wrenchline/tread/internal/attachments"
	"github.com/wrenchline/tread/internal/claims"
	"github.com/wrenchline/tread/internal/dealers"
	"github.com/wrenchline/tread/internal/overview"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Claims      claims.System
	Agreements  agreements.System
	Dealers     dealers.System
	Attachments attachments.System
	Overview    overview.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	claimSystem := claims.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	agreementSystem := agreements.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	dealerSystem := dealers.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
		dealers.LeaderboardConfig{
			DefaultLimit: runtime.Dashboard.LeaderboardLimit,
			MaxLimit:     runtime.Dashboard.LeaderboardMaxLimit,
		},
	)

	attachmentSystem := attachments.New(
		runtime.Database.Connection(),
		runtime.Storage,
		runtime.Logger,
		runtime.Pagination,
	)

	overviewSystem := overview.New(
		claimSystem,
		agreementSystem,
		dealerSystem,
		overview.Config{DefaultRangeDays: runtime.Dashboard.DefaultRangeDays},
		runtime.Logger,
	)

	return &Domain{
		Claims:      claimSystem,
		Agreements:  agreementSystem,
		Dealers:     dealerSystem,
		Attachments: attachmentSystem,
		Overview:    overviewSystem,
	}
}
