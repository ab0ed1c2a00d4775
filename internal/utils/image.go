package utils

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
)

// ErrNotAnImage is returned when image bytes do not sniff as an image/* MIME
// type.
var ErrNotAnImage = errors.New("data is not an image")

// ImageDataURL encodes raw image bytes as a base64 data URL, the image
// reference format accepted by the send endpoint. The MIME type is sniffed
// from the content.
func ImageDataURL(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrNotAnImage
	}

	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return "", ErrNotAnImage
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// IsImageDataURL reports whether ref is an inline image data URL rather than
// a hosted image link.
func IsImageDataURL(ref string) bool {
	return strings.HasPrefix(ref, "data:image/")
}
