// Package storage provides object storage backed by MongoDB GridFS.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"

	"github.com/wanderhub/travel-listings/internal/core/domain"
)

// GridFSStorage stores listing images in a GridFS bucket.
type GridFSStorage struct {
	bucket *gridfs.Bucket
}

func NewGridFSStorage(db *mongo.Database) (*GridFSStorage, error) {
	bucket, err := gridfs.NewBucket(db)
	if err != nil {
		return nil, fmt.Errorf("gridfs bucket: %w", err)
	}
	return &GridFSStorage{bucket: bucket}, nil
}

// Upload streams the object into the bucket and returns its id.
func (s *GridFSStorage) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	_ = s.bucket.SetWriteDeadline(deadlineFrom(ctx))

	id, err := s.bucket.UploadFromStream(filename, r)
	if err != nil {
		return "", fmt.Errorf("gridfs upload: %w", err)
	}
	return id.Hex(), nil
}

// Open returns a reader for the stored object.
func (s *GridFSStorage) Open(ctx context.Context, id string) (io.ReadCloser, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrImageNotFound
	}

	_ = s.bucket.SetReadDeadline(deadlineFrom(ctx))

	stream, err := s.bucket.OpenDownloadStream(oid)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, domain.ErrImageNotFound
		}
		return nil, fmt.Errorf("gridfs open: %w", err)
	}
	return stream, nil
}

func deadlineFrom(ctx context.Context) time.Time {
	if deadline, ok := ctx.Deadline(); ok {
		return deadline
	}
	return time.Now().Add(30 * time.Second)
}
