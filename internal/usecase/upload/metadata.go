package upload

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	_ "golang.org/x/image/webp"

	"github.com/fhuszti/uploads-ms-go/internal/model"
)

// imageMetadata decodes width/height from a local image file.
// Best-effort only: classification is by declared mime-type, so a
// payload that does not actually decode just yields empty metadata.
func imageMetadata(path string) model.Metadata {
	f, err := os.Open(path)
	if err != nil {
		return model.Metadata{}
	}
	defer func() { _ = f.Close() }()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		log.Printf("could not decode image config for %q: %v", path, err)
		return model.Metadata{}
	}
	return model.Metadata{Width: cfg.Width, Height: cfg.Height}
}
