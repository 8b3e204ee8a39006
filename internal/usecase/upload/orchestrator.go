package upload

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fhuszti/uploads-ms-go/internal/db"
	"github.com/fhuszti/uploads-ms-go/internal/model"
	"github.com/fhuszti/uploads-ms-go/internal/port"
)

// BatchProcessor drives every task of one request through the upload
// saga, strictly in submission order. The first task to end anywhere
// other than Complete aborts the batch; tasks already committed stay
// committed.
type BatchProcessor interface {
	Process(ctx context.Context, userID db.UUID, tasks []*Task) ([]Result, error)
}

type Orchestrator struct {
	repo    port.UploadRepository
	strg    port.Storage
	trans   port.Transcoder
	genID   port.UUIDGen
	namer   *KeyNamer
	tempDir string
}

// compile-time check: *Orchestrator must satisfy BatchProcessor
var _ BatchProcessor = (*Orchestrator)(nil)

func NewOrchestrator(repo port.UploadRepository, strg port.Storage, trans port.Transcoder, genID port.UUIDGen, tempDir string) *Orchestrator {
	return &Orchestrator{
		repo:    repo,
		strg:    strg,
		trans:   trans,
		genID:   genID,
		namer:   NewKeyNamer(),
		tempDir: tempDir,
	}
}

// Process runs each task's saga to a terminal state before starting the
// next. On the first non-Complete terminal it stops, cleans up the temp
// files of every remaining task, and surfaces that task's error as the
// batch result. There is no cross-file transaction: earlier Complete
// tasks are not undone.
func (o *Orchestrator) Process(ctx context.Context, userID db.UUID, tasks []*Task) ([]Result, error) {
	results := make([]Result, 0, len(tasks))

	for i, t := range tasks {
		o.runSaga(ctx, userID, t)
		t.removeTempFiles()

		if t.state != StateComplete {
			for _, rest := range tasks[i+1:] {
				rest.removeTempFiles()
			}
			return nil, t.err
		}

		var thumbURL *string
		if t.classification == ClassVideo {
			u := o.strg.PublicURL(t.thumbObjectKey)
			thumbURL = &u
		}
		results = append(results, Result{
			URL:          o.strg.PublicURL(t.objectKey),
			ThumbnailURL: thumbURL,
			ObjectKey:    t.objectKey,
			SizeBytes:    t.SizeBytes,
			MimeType:     t.DeclaredMimeType,
		})
	}

	return results, nil
}

// runSaga walks one task through the state machine until it reaches a
// terminal state. Each case performs exactly one step and assigns the
// next state, so the rollback obligation at every point is explicit.
func (o *Orchestrator) runSaga(ctx context.Context, userID db.UUID, t *Task) {
	t.state = StateReceived

	for {
		switch t.state {
		case StateReceived:
			t.classification = Classify(t.DeclaredMimeType)
			if t.classification == ClassRejected {
				t.err = newError(KindValidation, fmt.Errorf("unsupported media type %q for file %q", t.DeclaredMimeType, t.OriginalFilename))
				t.state = StateRejected
			} else {
				t.state = StateMetadataPending
			}

		case StateMetadataPending:
			t.objectKey, t.thumbObjectKey = o.namer.DeriveKeys(t.OriginalFilename)
			rec := &model.Upload{
				ID:               o.genID(),
				ObjectKey:        t.objectKey,
				OriginalFilename: t.OriginalFilename,
				MimeType:         t.DeclaredMimeType,
				SizeBytes:        t.SizeBytes,
				UserID:           userID,
			}
			if err := o.repo.Create(ctx, rec); err != nil {
				// nothing was created, so nothing to compensate
				t.err = newError(KindInsert, err)
				t.state = StateFailed
			} else {
				t.recordID = rec.ID
				t.recordCreated = true
				t.state = StateMetadataCreated
			}

		case StateMetadataCreated:
			if err := o.putFile(ctx, t.objectKey, t.SourcePath, t.DeclaredMimeType, t.SizeBytes); err != nil {
				t.err = newError(KindUpload, err)
				t.state = StateRollbackRequired
			} else {
				t.state = StateObjectUploaded
			}

		case StateObjectUploaded:
			if t.classification == ClassVideo {
				t.state = StateThumbnailPending
			} else {
				t.state = StateMetadataFinalizing
			}

		case StateThumbnailPending:
			t.thumbPath = filepath.Join(o.tempDir, t.thumbObjectKey)
			if err := o.trans.StillFrame(ctx, t.SourcePath, t.thumbPath); err != nil {
				t.err = newError(KindTranscode, err)
				t.state = StateRollbackRequired
			} else {
				t.state = StateThumbnailReady
			}

		case StateThumbnailReady:
			info, err := os.Stat(t.thumbPath)
			if err == nil {
				err = o.putFile(ctx, t.thumbObjectKey, t.thumbPath, "image/jpeg", info.Size())
			}
			if err != nil {
				t.err = newError(KindUpload, err)
				t.state = StateRollbackRequired
			} else {
				removeFile(&t.thumbPath)
				t.state = StateThumbnailUploaded
			}

		case StateThumbnailUploaded:
			t.state = StateMetadataFinalizing

		case StateMetadataFinalizing:
			if err := o.finalise(ctx, t); err != nil {
				t.err = newError(KindUpdate, err)
				t.state = StateRollbackRequired
			} else {
				t.state = StateComplete
			}

		case StateRollbackRequired:
			o.rollback(ctx, t)
			t.state = StateRolledBack

		case StateComplete, StateRejected, StateFailed, StateRolledBack:
			return

		default:
			// unreachable unless a new state is added without a case
			t.err = newError(KindUpdate, fmt.Errorf("saga reached unknown state %d", t.state))
			t.state = StateFailed
		}
	}
}

// putFile streams a local file into the object store under the given key.
func (o *Orchestrator) putFile(ctx context.Context, key, path, contentType string, size int64) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %q: %w", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("failed to close reader for %q", path)
		}
	}()

	return o.strg.SaveFile(ctx, key, f, size, map[string]string{
		"Content-Type": contentType,
	})
}

// finalise publishes the record: public URL, thumbnail URL for videos,
// and best-effort image dimensions.
func (o *Orchestrator) finalise(ctx context.Context, t *Task) error {
	url := o.strg.PublicURL(t.objectKey)
	rec := &model.Upload{
		ID:  t.recordID,
		URL: &url,
	}
	if t.classification == ClassVideo {
		thumbURL := o.strg.PublicURL(t.thumbObjectKey)
		rec.ThumbnailURL = &thumbURL
	} else {
		rec.Metadata = imageMetadata(t.SourcePath)
	}

	return o.repo.Finalise(ctx, rec)
}

// rollback undoes a partially published upload, best-effort and in
// order: metadata row first, then local temp files. A failed
// compensation is logged and never changes the reported error kind.
// Already-uploaded objects are deliberately left behind.
func (o *Orchestrator) rollback(ctx context.Context, t *Task) {
	if t.recordCreated {
		if err := o.repo.Delete(ctx, t.recordID); err != nil {
			log.Printf("rollback: failed to delete record #%s: %v", t.recordID, err)
		}
	}
	t.removeTempFiles()
}

// removeTempFiles deletes the task's source and thumbnail temp files.
// Idempotent: paths are cleared after removal so a second call is a
// no-op.
func (t *Task) removeTempFiles() {
	removeFile(&t.SourcePath)
	removeFile(&t.thumbPath)
}

func removeFile(path *string) {
	if *path == "" {
		return
	}
	if err := os.Remove(*path); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to remove temp file %q: %v", *path, err)
	}
	*path = ""
}
