// Copyright (c) 2026 Staffdeck. All rights reserved.

/*
Package storage provides object storage for uploaded files.

It wraps the Go CDK blob API so the rest of the application talks to a
small [ObjectStore] interface. The backing bucket is selected by URL at
startup (s3:// in production, mem:// in tests and local development),
which keeps the upload pipeline identical across environments.
*/
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gocloud.dev/blob"
	// s3blob registers the "s3://" scheme for production buckets.
	_ "gocloud.dev/blob/s3blob"
	// memblob registers the "mem://" scheme for tests and local development.
	_ "gocloud.dev/blob/memblob"
)

// ObjectStore persists binary objects and returns their public URL.
//
// Upload must be atomic from the caller's perspective: either the object
// is fully written and a URL is returned, or an error is returned and no
// partial object is visible.
type ObjectStore interface {
	Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error)
}

// BucketStore implements [ObjectStore] on top of a Go CDK blob bucket.
type BucketStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// OpenBucket opens the bucket identified by bucketURL and verifies it is
// accessible before returning.
func OpenBucket(ctx context.Context, bucketURL string, logger *slog.Logger) (*blob.Bucket, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, fmt.Errorf("storage: failed to open bucket: %w", err)
	}

	accessible, err := bucket.IsAccessible(ctx)
	if err != nil {
		_ = bucket.Close()
		return nil, fmt.Errorf("storage: bucket accessibility check failed: %w", err)
	}
	if !accessible {
		_ = bucket.Close()
		return nil, fmt.Errorf("storage: bucket is not accessible")
	}

	logger.Info("object storage connected", slog.String("bucket_url", bucketURL))
	return bucket, nil
}

// NewBucketStore wraps an open bucket into a [BucketStore].
//
// publicBaseURL is joined with object keys to form the URLs handed back
// to API clients, so it must be reachable by browsers.
func NewBucketStore(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) *BucketStore {
	return &BucketStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

// Upload writes the object under key and returns its public URL.
func (s *BucketStore) Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	writer, err := s.bucket.NewWriter(writeCtx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("storage: failed to open writer for %q: %w", key, err)
	}

	if _, err := io.Copy(writer, body); err != nil {
		// Canceling the write context aborts the commit, so no partial
		// object becomes visible.
		cancel()
		_ = writer.Close()
		return "", fmt.Errorf("storage: failed to write object %q: %w", key, err)
	}

	// Close commits the object. The write is not durable until this returns.
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("storage: failed to commit object %q: %w", key, err)
	}

	s.logger.DebugContext(ctx, "object_uploaded",
		slog.String("key", key),
		slog.String("content_type", contentType),
	)

	return s.publicBaseURL + "/" + key, nil
}
