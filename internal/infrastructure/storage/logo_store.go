// Package storage uploads company assets to Google Cloud Storage.
package storage

import (
	"context"
	"io"
	"time"

	gcs "cloud.google.com/go/storage"

	"github.com/oksasatya/go-job-board/pkg/helpers"
)

const uploadTimeout = 30 * time.Second

type LogoStore struct {
	client *gcs.Client
	bucket string
}

func NewLogoStore(client *gcs.Client, bucket string) *LogoStore {
	return &LogoStore{client: client, bucket: bucket}
}

// Upload writes r to objectPath and returns its public URL.
func (s *LogoStore) Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error) {
	c, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()
	return helpers.UploadObject(c, s.client, s.bucket, objectPath, contentType, r)
}
