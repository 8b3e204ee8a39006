package upload

import "fmt"

// Kind classifies a saga failure; it decides the HTTP status and whether
// compensation ran.
type Kind int

const (
	// KindValidation: unrecognised media type. No side effect to undo.
	KindValidation Kind = iota
	// KindInsert: metadata insert failed. Nothing was created.
	KindInsert
	// KindUpload: object store put failed (binary or thumbnail).
	KindUpload
	// KindTranscode: still-frame derivation failed.
	KindTranscode
	// KindUpdate: final metadata update failed.
	KindUpdate
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindInsert:
		return "insert"
	case KindUpload:
		return "upload"
	case KindTranscode:
		return "transcode"
	case KindUpdate:
		return "update"
	default:
		return "unknown"
	}
}

// Error is the single error type the saga surfaces. Wraps the
// collaborator failure that terminated the batch.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String() + " error"
	}
	return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}
