package port

import (
	"context"

	"github.com/fhuszti/uploads-ms-go/internal/db"
	"github.com/fhuszti/uploads-ms-go/internal/model"
)

// UploadRepository defines persistence operations for upload records.
type UploadRepository interface {
	Create(ctx context.Context, upload *model.Upload) error
	// Finalise publishes the record: it sets url, thumbnail_url and
	// metadata on an existing row.
	Finalise(ctx context.Context, upload *model.Upload) error
	Delete(ctx context.Context, id db.UUID) error
}
