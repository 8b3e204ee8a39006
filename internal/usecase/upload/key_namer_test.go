package upload

import (
	"regexp"
	"strings"
	"testing"
	"time"
)

var keyRe = regexp.MustCompile(`^\d{13}-[a-zA-Z0-9]{13}\.png$`)

func TestDeriveKeys_Format(t *testing.T) {
	n := NewKeyNamer()
	n.now = func() time.Time { return time.UnixMilli(1700000000000) }

	key, thumbKey := n.DeriveKeys("holiday picture.png")
	if !keyRe.MatchString(key) {
		t.Errorf("key %q does not match expected format", key)
	}
	if !strings.HasPrefix(key, "1700000000000-") {
		t.Errorf("key %q should start with the millisecond timestamp", key)
	}

	prefix := strings.TrimSuffix(key, ".png")
	if thumbKey != prefix+"-thumb.jpg" {
		t.Errorf("thumb key %q should share the prefix of %q with a -thumb.jpg suffix", thumbKey, key)
	}
}

func TestDeriveKeys_NoExtension(t *testing.T) {
	n := NewKeyNamer()

	key, thumbKey := n.DeriveKeys("clip")
	if strings.Contains(key, ".") {
		t.Errorf("key %q should carry no extension for an extensionless filename", key)
	}
	if !strings.HasSuffix(thumbKey, "-thumb.jpg") {
		t.Errorf("thumb key %q should always be a JPEG", thumbKey)
	}
}

func TestDeriveKeys_Unique(t *testing.T) {
	// Pin the clock so uniqueness rests on the random part alone,
	// like two files uploaded in the same millisecond.
	n := NewKeyNamer()
	n.now = func() time.Time { return time.UnixMilli(1700000000000) }

	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		key, _ := n.DeriveKeys("a.mp4")
		if _, dup := seen[key]; dup {
			t.Fatalf("collision after %d keys: %q", i, key)
		}
		seen[key] = struct{}{}
	}
}
