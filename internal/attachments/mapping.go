package attachments

import (
	"net/url"

	"github.com/google/uuid"

	"github.com/wrenchline/tread/pkg/query"
	"github.com/wrenchline/tread/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "attachments", "a").
	Project("id", "ID").
	Project("claim_id", "ClaimID").
	Project("filename", "Filename").
	Project("content_type", "ContentType").
	Project("size_bytes", "SizeBytes").
	Project("page_count", "PageCount").
	Project("storage_key", "StorageKey").
	Project("uploaded_at", "UploadedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "UploadedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for attachment queries.
// Nil fields are ignored. ClaimID and ContentType use exact matching;
// Filename uses case-insensitive contains matching.
type Filters struct {
	ClaimID     *uuid.UUID `json:"claim_id,omitempty"`
	Filename    *string    `json:"filename,omitempty"`
	ContentType *string    `json:"content_type,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("ClaimID", f.ClaimID).
		WhereContains("Filename", f.Filename).
		WhereEquals("ContentType", f.ContentType)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if c := values.Get("claim_id"); c != "" {
		if id, err := uuid.Parse(c); err == nil {
			f.ClaimID = &id
		}
	}

	if fn := values.Get("filename"); fn != "" {
		f.Filename = &fn
	}

	if ct := values.Get("content_type"); ct != "" {
		f.ContentType = &ct
	}

	return f
}

func scanAttachment(s repository.Scanner) (Attachment, error) {
	var a Attachment
	err := s.Scan(
		&a.ID,
		&a.ClaimID,
		&a.Filename,
		&a.ContentType,
		&a.SizeBytes,
		&a.PageCount,
		&a.StorageKey,
		&a.UploadedAt,
		&a.UpdatedAt,
	)
	return a, err
}
