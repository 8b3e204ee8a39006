package upload

// Classification is the outcome of media-type validation.
type Classification int

const (
	ClassRejected Classification = iota
	ClassImage
	ClassVideo
)

func (c Classification) String() string {
	switch c {
	case ClassImage:
		return "image"
	case ClassVideo:
		return "video"
	default:
		return "rejected"
	}
}

var imageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

var videoTypes = map[string]struct{}{
	"video/mp4":       {},
	"video/webm":      {},
	"video/ogg":       {},
	"video/quicktime": {},
}

// Classify sorts a declared mime-type into image, video or rejected.
// Rejection is terminal for the whole batch.
func Classify(mimeType string) Classification {
	if _, ok := imageTypes[mimeType]; ok {
		return ClassImage
	}
	if _, ok := videoTypes[mimeType]; ok {
		return ClassVideo
	}
	return ClassRejected
}
