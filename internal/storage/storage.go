package storage

import (
	"context"
	"io"
)

// Store defines the interface for persisting uploaded product images.
type Store interface {
	// Put saves the image content under the given file name and returns
	// the image reference to persist on the product.
	Put(ctx context.Context, name string, content io.Reader) (string, error)
}
