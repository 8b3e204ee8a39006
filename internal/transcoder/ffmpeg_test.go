package transcoder

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestStillFrame_BuildsArgs(t *testing.T) {
	var gotName string
	var gotArgs []string
	f := NewFFmpeg("/usr/bin/ffmpeg")
	f.run = func(ctx context.Context, name string, args ...string) ([]byte, error) {
		gotName = name
		gotArgs = args
		return nil, nil
	}

	if err := f.StillFrame(context.Background(), "/tmp/in.mp4", "/tmp/out.jpg"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotName != "/usr/bin/ffmpeg" {
		t.Errorf("binary = %q; want /usr/bin/ffmpeg", gotName)
	}
	want := []string{"-ss", "00:00:01.000", "-i", "/tmp/in.mp4", "-vframes", "1", "-f", "image2", "-y", "/tmp/out.jpg"}
	if len(gotArgs) != len(want) {
		t.Fatalf("args = %v; want %v", gotArgs, want)
	}
	for i := range want {
		if gotArgs[i] != want[i] {
			t.Errorf("arg[%d] = %q; want %q", i, gotArgs[i], want[i])
		}
	}
}

func TestStillFrame_ErrorCarriesOutput(t *testing.T) {
	f := NewFFmpeg("")
	f.run = func(ctx context.Context, name string, args ...string) ([]byte, error) {
		return []byte("frame stuff\nin.mp4: Invalid data found when processing input"), errors.New("exit status 1")
	}

	err := f.StillFrame(context.Background(), "in.mp4", "out.jpg")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "Invalid data found") {
		t.Errorf("error should carry the ffmpeg failure line, got %q", err)
	}
}

func TestNewFFmpeg_DefaultBinary(t *testing.T) {
	f := NewFFmpeg("")
	if f.binPath != "ffmpeg" {
		t.Errorf("binPath = %q; want ffmpeg", f.binPath)
	}
}
