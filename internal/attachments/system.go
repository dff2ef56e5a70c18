package attachments

import (
	"context"

	"github.com/google/uuid"

	"github.com/wrenchline/tread/pkg/pagination"
	"github.com/wrenchline/tread/pkg/storage"
)

// System defines the public contract for attachment domain operations.
type System interface {
	Handler(maxUploadSize int64) *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Attachment], error)

	Find(ctx context.Context, id uuid.UUID) (*Attachment, error)
	Create(ctx context.Context, cmd CreateCommand) (*Attachment, error)
	CreateBatch(ctx context.Context, cmds []CreateCommand) []BatchResult

	// Download returns the blob stream for an attachment. The caller must
	// close the result body.
	Download(ctx context.Context, id uuid.UUID) (*Attachment, *storage.DownloadResult, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
