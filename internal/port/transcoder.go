package port

import "context"

// Transcoder extracts a single still frame from a video file.
// The call blocks until the external tool finishes; the frame is written
// as a JPEG to destPath.
type Transcoder interface {
	StillFrame(ctx context.Context, srcPath, destPath string) error
}
