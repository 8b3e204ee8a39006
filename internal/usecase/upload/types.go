package upload

import "github.com/fhuszti/uploads-ms-go/internal/db"

// State enumerates the saga positions for one file. The orchestrator is
// a loop over this machine; every rollback obligation hangs off an
// explicit state instead of scattered early returns.
type State int

const (
	StateReceived State = iota
	StateRejected
	StateMetadataPending
	StateMetadataCreated
	StateObjectUploaded
	StateThumbnailPending
	StateThumbnailReady
	StateThumbnailUploaded
	StateMetadataFinalizing
	StateRollbackRequired
	StateRolledBack
	StateFailed
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateReceived:
		return "received"
	case StateRejected:
		return "rejected"
	case StateMetadataPending:
		return "metadata_pending"
	case StateMetadataCreated:
		return "metadata_created"
	case StateObjectUploaded:
		return "object_uploaded"
	case StateThumbnailPending:
		return "thumbnail_pending"
	case StateThumbnailReady:
		return "thumbnail_ready"
	case StateThumbnailUploaded:
		return "thumbnail_uploaded"
	case StateMetadataFinalizing:
		return "metadata_finalizing"
	case StateRollbackRequired:
		return "rollback_required"
	case StateRolledBack:
		return "rolled_back"
	case StateFailed:
		return "failed"
	case StateComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Task is the ephemeral per-file unit of work. It lives from the moment
// the file is read off the multipart stream until its saga reaches a
// terminal state; its temp files are owned exclusively by the
// orchestrator and removed on every exit path.
type Task struct {
	SourcePath       string
	OriginalFilename string
	DeclaredMimeType string
	SizeBytes        int64

	classification Classification
	objectKey      string
	thumbObjectKey string
	recordID       db.UUID
	recordCreated  bool
	thumbPath      string

	state State
	err   *Error
}

// State reports the task's current saga state. Exposed for tests and
// logging; the orchestrator owns all transitions.
func (t *Task) State() State { return t.state }

// Result is the per-file entry of a fully completed batch.
type Result struct {
	URL          string  `json:"url"`
	ThumbnailURL *string `json:"thumbnail"`
	ObjectKey    string  `json:"filename"`
	SizeBytes    int64   `json:"size"`
	MimeType     string  `json:"type"`
}
