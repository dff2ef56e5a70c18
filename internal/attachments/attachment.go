// Package attachments implements claim attachment handling: repair orders,
// inspection reports, and invoices stored as blobs with database metadata.
package attachments

import (
	"time"

	"github.com/google/uuid"
)

// Attachment represents a file attached to a claim, with its metadata and
// blob storage reference.
type Attachment struct {
	ID          uuid.UUID `json:"id"`
	ClaimID     uuid.UUID `json:"claim_id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	PageCount   *int      `json:"page_count"`
	StorageKey  string    `json:"storage_key"`
	UploadedAt  time.Time `json:"uploaded_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateCommand carries the data needed to upload and register a new attachment.
// Data holds the raw file bytes. PageCount is optional and may be extracted
// by the caller via pdfcpu; nil values are stored as NULL.
type CreateCommand struct {
	Data        []byte
	ClaimID     uuid.UUID
	Filename    string
	ContentType string
	PageCount   *int
}

// BatchResult reports the outcome of a single file within a batch upload.
// On success, Attachment is populated and Error is empty.
// On failure, Error describes the problem and Attachment is nil.
type BatchResult struct {
	Attachment *Attachment `json:"attachment,omitempty"`
	Filename   string      `json:"filename"`
	Error      string      `json:"error,omitempty"`
}
