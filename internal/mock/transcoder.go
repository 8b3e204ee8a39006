package mock

import (
	"context"
	"os"

	"github.com/fhuszti/uploads-ms-go/internal/port"
)

// Transcoder fakes still-frame extraction by writing a stub JPEG.
type Transcoder struct {
	Err    error
	Called int
}

// compile-time check: *Transcoder must satisfy port.Transcoder
var _ port.Transcoder = (*Transcoder)(nil)

func (t *Transcoder) StillFrame(ctx context.Context, srcPath, destPath string) error {
	t.Called++
	if t.Err != nil {
		return t.Err
	}
	return os.WriteFile(destPath, []byte("stub-jpeg"), 0o600)
}
