package transcoder

import (
	"context"
	"fmt"
	"log"
	"os/exec"
	"strings"

	"github.com/fhuszti/uploads-ms-go/internal/port"
)

// thumbnailOffset is where the still frame is taken in the source video.
const thumbnailOffset = "00:00:01.000"

type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// FFmpeg extracts still frames by shelling out to the ffmpeg binary.
// The tool is treated as a black box: it either produces the frame or
// exits non-zero, and its output is only kept for the error message.
type FFmpeg struct {
	binPath string
	run     commandRunner
}

// compile-time check: *FFmpeg must satisfy port.Transcoder
var _ port.Transcoder = (*FFmpeg)(nil)

func NewFFmpeg(binPath string) *FFmpeg {
	if binPath == "" {
		binPath = "ffmpeg"
	}
	return &FFmpeg{binPath: binPath, run: runCombined}
}

func (f *FFmpeg) StillFrame(ctx context.Context, srcPath, destPath string) error {
	log.Printf("extracting still frame from %q into %q...", srcPath, destPath)

	args := []string{
		"-ss", thumbnailOffset,
		"-i", srcPath,
		"-vframes", "1",
		"-f", "image2",
		"-y",
		destPath,
	}
	out, err := f.run(ctx, f.binPath, args...)
	if err != nil {
		return fmt.Errorf("ffmpeg failed for %q: %w: %s", srcPath, err, lastLine(out))
	}
	return nil
}

func runCombined(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.CombinedOutput()
}

// lastLine trims ffmpeg's chatty output down to the line that usually
// carries the actual failure reason.
func lastLine(out []byte) string {
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) == 0 {
		return ""
	}
	return strings.TrimSpace(lines[len(lines)-1])
}
