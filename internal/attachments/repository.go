package attachments

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/wrenchline/tread/pkg/pagination"
	"github.com/wrenchline/tread/pkg/query"
	"github.com/wrenchline/tread/pkg/repository"
	"github.com/wrenchline/tread/pkg/storage"
)

const batchConcurrency = 4

type repo struct {
	db         *sql.DB
	storage    storage.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates an attachment repository implementing the System interface.
func New(
	db *sql.DB,
	store storage.System,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		storage:    store,
		logger:     logger.With("system", "attachments"),
		pagination: pagination,
	}
}

func (r *repo) Handler(maxUploadSize int64) *Handler {
	return NewHandler(r, r.logger, r.pagination, maxUploadSize)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Attachment], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Filename")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count attachments: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanAttachment)
	if err != nil {
		return nil, fmt.Errorf("query attachments: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Attachment, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	a, err := repository.QueryOne(ctx, r.db, q, args, scanAttachment)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &a, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Attachment, error) {
	id := uuid.New()
	key := buildStorageKey(cmd.ClaimID, id, sanitizeFilename(cmd.Filename))

	if err := r.storage.Upload(ctx, key, bytes.NewReader(cmd.Data), cmd.ContentType); err != nil {
		return nil, fmt.Errorf("upload attachment blob: %w", err)
	}

	q := `
		INSERT INTO attachments(id, claim_id, filename, content_type, size_bytes, page_count, storage_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, claim_id, filename, content_type, size_bytes, page_count, storage_key, uploaded_at, updated_at`

	insertArgs := []any{
		id,
		cmd.ClaimID,
		cmd.Filename,
		cmd.ContentType,
		int64(len(cmd.Data)),
		cmd.PageCount,
		key,
	}

	a, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Attachment, error) {
		return repository.QueryOne(ctx, tx, q, insertArgs, scanAttachment)
	})

	if err != nil {
		if delErr := r.storage.Delete(ctx, key); delErr != nil {
			r.logger.Warn("compensating blob delete failed", "key", key, "error", delErr)
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("attachment created", "id", a.ID, "claim_id", a.ClaimID, "filename", a.Filename)
	return &a, nil
}

func (r *repo) CreateBatch(ctx context.Context, cmds []CreateCommand) []BatchResult {
	results := make([]BatchResult, len(cmds))

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	for i, cmd := range cmds {
		g.Go(func() error {
			a, err := r.Create(gctx, cmd)

			mu.Lock()
			defer mu.Unlock()
			results[i] = BatchResult{Filename: cmd.Filename}
			if err != nil {
				results[i].Error = err.Error()
				return nil
			}
			results[i].Attachment = a
			return nil
		})
	}

	g.Wait()
	return results
}

func (r *repo) Download(ctx context.Context, id uuid.UUID) (*Attachment, *storage.DownloadResult, error) {
	a, err := r.Find(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	result, err := r.storage.Download(ctx, a.StorageKey)
	if err != nil {
		return nil, nil, fmt.Errorf("download attachment blob: %w", err)
	}

	return a, result, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	a, err := r.Find(ctx, id)
	if err != nil {
		return err
	}

	_, err = repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM attachments WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	if delErr := r.storage.Delete(ctx, a.StorageKey); delErr != nil {
		r.logger.Warn(
			"blob delete failed after DB delete",
			"key", a.StorageKey,
			"error", delErr,
		)
	}

	r.logger.Info("attachment deleted", "id", id)
	return nil
}

func buildStorageKey(claimID, id uuid.UUID, filename string) string {
	return fmt.Sprintf("claims/%s/%s/%s", claimID, id, filename)
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	if name == "." || name == "" {
		name = "attachment"
	}
	return url.PathEscape(name)
}
