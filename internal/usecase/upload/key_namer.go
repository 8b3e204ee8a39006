package upload

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"path/filepath"
	"time"
)

const (
	randomPartLen = 13
	alphanum      = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// KeyNamer derives collision-resistant object keys. Keys are never
// checked against the store: a millisecond timestamp plus 13 random
// alphanumerics makes a clash improbable enough to ignore.
type KeyNamer struct {
	now func() time.Time
}

func NewKeyNamer() *KeyNamer {
	return &KeyNamer{now: time.Now}
}

// DeriveKeys returns the object key for a file and the matching
// thumbnail key. Both share the same timestamp-random prefix; the
// thumbnail is always a JPEG whatever the source container.
func (n *KeyNamer) DeriveKeys(originalFilename string) (key, thumbKey string) {
	prefix := fmt.Sprintf("%d-%s", n.now().UnixMilli(), randomString(randomPartLen))
	return prefix + filepath.Ext(originalFilename), prefix + "-thumb.jpg"
}

func randomString(length int) string {
	max := big.NewInt(int64(len(alphanum)))
	b := make([]byte, length)
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the OS entropy source is
			// broken; nothing sensible to do but stop.
			panic(fmt.Sprintf("key namer: random source failed: %v", err))
		}
		b[i] = alphanum[idx.Int64()]
	}
	return string(b)
}
