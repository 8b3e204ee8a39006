package model

import (
	"time"

	"github.com/fhuszti/uploads-ms-go/internal/db"
)

// Upload is one row of the uploads table: a single accepted file.
// URL and ThumbnailURL stay nil until the binary (and, for videos, its
// thumbnail) has been stored and the row finalised; a row that can never
// reach that point must be deleted, not left half-published.
type Upload struct {
	ID               db.UUID   `json:"id"`
	ObjectKey        string    `json:"object_key"`
	OriginalFilename string    `json:"original_filename"`
	MimeType         string    `json:"mime_type"`
	SizeBytes        int64     `json:"size_bytes"`
	UserID           db.UUID   `json:"user_id"`
	URL              *string   `json:"url"`
	ThumbnailURL     *string   `json:"thumbnail_url"`
	Metadata         Metadata  `json:"metadata"`
	UploadedAt       time.Time `json:"uploaded_at"`
}
