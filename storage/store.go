package storage

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
)

// ImageStore persists recipe images and hands back a public URL. The
// serving side is someone else's problem; recipes only keep the URL.
type ImageStore interface {
	Put(ctx context.Context, key string, contentType string, data []byte) (string, error)
}

var extensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// DecodeDataURI parses a `data:image/...;base64,...` payload into raw
// bytes plus a content type.
func DecodeDataURI(uri string) (data []byte, contentType string, err error) {
	if !strings.HasPrefix(uri, "data:") {
		return nil, "", fmt.Errorf("image is not a data URI")
	}
	meta, encoded, found := strings.Cut(uri[len("data:"):], ",")
	if !found {
		return nil, "", fmt.Errorf("image data URI has no payload")
	}
	contentType = strings.TrimSuffix(meta, ";base64")
	if contentType == meta {
		return nil, "", fmt.Errorf("image data URI is not base64-encoded")
	}
	if _, ok := extensions[contentType]; !ok {
		return nil, "", fmt.Errorf("unsupported image content type %q", contentType)
	}
	data, err = base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, "", fmt.Errorf("decoding image payload: %w", err)
	}
	return data, contentType, nil
}

// ExtensionFor maps a supported image content type to a file extension.
func ExtensionFor(contentType string) string {
	if ext, ok := extensions[contentType]; ok {
		return ext
	}
	return "bin"
}
