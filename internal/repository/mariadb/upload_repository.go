package mariadb

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/fhuszti/uploads-ms-go/internal/db"
	"github.com/fhuszti/uploads-ms-go/internal/model"
	"github.com/fhuszti/uploads-ms-go/internal/port"
)

type UploadRepository struct {
	db *sql.DB
}

// compile-time check: *UploadRepository must satisfy port.UploadRepository
var _ port.UploadRepository = (*UploadRepository)(nil)

func NewUploadRepository(db *sql.DB) *UploadRepository {
	return &UploadRepository{db: db}
}

func (r *UploadRepository) Create(ctx context.Context, upload *model.Upload) error {
	log.Printf("creating database record for upload #%s (%q)...", upload.ID, upload.OriginalFilename)

	const query = `
      INSERT INTO uploads
        (id, object_key, original_filename, mime_type, size_bytes, user_id, metadata)
      VALUES (?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		upload.ID, upload.ObjectKey, upload.OriginalFilename,
		upload.MimeType, upload.SizeBytes, upload.UserID,
		upload.Metadata,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *UploadRepository) Finalise(ctx context.Context, upload *model.Upload) error {
	log.Printf("finalising database record for upload #%s...", upload.ID)

	const query = `
      UPDATE uploads
      SET
        url           = ?,
        thumbnail_url = ?,
        metadata      = ?
      WHERE id = ?
    `
	res, err := r.db.ExecContext(ctx, query,
		upload.URL, upload.ThumbnailURL, upload.Metadata, upload.ID,
	)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("no upload found with id %s", upload.ID)
	}

	return nil
}

func (r *UploadRepository) Delete(ctx context.Context, id db.UUID) error {
	log.Printf("deleting database record for upload #%s...", id)

	const query = `DELETE FROM uploads WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
