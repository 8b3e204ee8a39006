package upload

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		mimeType string
		want     Classification
	}{
		{"image/jpeg", ClassImage},
		{"image/jpg", ClassImage},
		{"image/png", ClassImage},
		{"image/gif", ClassImage},
		{"image/webp", ClassImage},
		{"video/mp4", ClassVideo},
		{"video/webm", ClassVideo},
		{"video/ogg", ClassVideo},
		{"video/quicktime", ClassVideo},
		{"application/pdf", ClassRejected},
		{"text/plain", ClassRejected},
		{"image/tiff", ClassRejected},
		{"video/x-msvideo", ClassRejected},
		{"", ClassRejected},
	}

	for _, c := range cases {
		if got := Classify(c.mimeType); got != c.want {
			t.Errorf("Classify(%q) = %v; want %v", c.mimeType, got, c.want)
		}
	}
}
