package core

import (
	"encoding/base64"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const dataURLImagePrefix = "data:image/"

// IsImageDataURL reports whether s is a base64 data URL that both declares
// and actually contains a raster image. SVG is refused, it can carry script.
func IsImageDataURL(s string) bool {
	header, payload, ok := strings.Cut(s, ",")
	if !ok || !strings.HasPrefix(header, dataURLImagePrefix) || !strings.HasSuffix(header, ";base64") {
		return false
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil || len(raw) == 0 {
		return false
	}
	m := mimetype.Detect(raw)
	return strings.HasPrefix(m.String(), "image/") && !m.Is("image/svg+xml")
}
