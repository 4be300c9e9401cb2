package storage

import (
	"context"
	"io"
	"time"
)

type PutOptions struct {
	ContentType string
}

// Store is the media delegate surface the services depend on. The MinIO
// client implements it in production; tests substitute a fake.
type Store interface {
	PutObject(ctx context.Context, bucket, object string, reader io.Reader, size int64, opts PutOptions) error
	RemoveObject(ctx context.Context, bucket, object string) error
	PresignedGetObject(ctx context.Context, bucket, object string, expiry time.Duration) (string, error)
}

var Default Store
