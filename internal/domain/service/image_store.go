package service

import "context"

// ImageStore persists uploaded product images and returns a public URL.
type ImageStore interface {
	// Save writes the image bytes under the given key and returns the URL
	// to serve it from.
	Save(ctx context.Context, key string, data []byte, contentType string) (string, error)
}
