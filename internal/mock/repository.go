package mock

import (
	"context"
	"sync"

	"github.com/fhuszti/uploads-ms-go/internal/db"
	"github.com/fhuszti/uploads-ms-go/internal/model"
	"github.com/fhuszti/uploads-ms-go/internal/port"
)

// UploadRepository is an in-memory port.UploadRepository for tests.
type UploadRepository struct {
	mu sync.Mutex

	CreateErr   error
	FinaliseErr error
	DeleteErr   error

	Rows map[db.UUID]*model.Upload
}

// compile-time check: *UploadRepository must satisfy port.UploadRepository
var _ port.UploadRepository = (*UploadRepository)(nil)

func NewUploadRepository() *UploadRepository {
	return &UploadRepository{Rows: make(map[db.UUID]*model.Upload)}
}

func (r *UploadRepository) Create(ctx context.Context, upload *model.Upload) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *upload
	r.Rows[upload.ID] = &cp
	return nil
}

func (r *UploadRepository) Finalise(ctx context.Context, upload *model.Upload) error {
	if r.FinaliseErr != nil {
		return r.FinaliseErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.Rows[upload.ID]
	if !ok {
		return r.FinaliseErr
	}
	row.URL = upload.URL
	row.ThumbnailURL = upload.ThumbnailURL
	row.Metadata = upload.Metadata
	return nil
}

func (r *UploadRepository) Delete(ctx context.Context, id db.UUID) error {
	if r.DeleteErr != nil {
		return r.DeleteErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.Rows, id)
	return nil
}
