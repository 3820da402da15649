package ports

import (
	"context"
	"io"
)

// ObjectStorage stores listing images and serves them back by identifier.
// Upload returns the identifier under which the object is publicly
// retrievable.
type ObjectStorage interface {
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
	Open(ctx context.Context, id string) (io.ReadCloser, error)
}
