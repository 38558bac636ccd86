// Package media implements binary object storage for uploaded files.
package media

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"github.com/deepak445566/socialmedia/application/ports"
	pkgerrors "github.com/deepak445566/socialmedia/pkg/errors"
)

// S3Store stores uploaded media in an S3 bucket and returns public URLs
// rooted at baseURL.
type S3Store struct {
	client  *s3.Client
	bucket  string
	baseURL string
	logger  *zap.Logger
}

// NewS3Store creates a new S3Store. baseURL defaults to the bucket's
// virtual-hosted URL when empty.
func NewS3Store(client *s3.Client, bucket, baseURL string, logger *zap.Logger) ports.MediaStore {
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.amazonaws.com", bucket)
	}
	return &S3Store{
		client:  client,
		bucket:  bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// Put uploads the object and returns its URL
func (s *S3Store) Put(ctx context.Context, name, contentType string, data []byte) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
		Body:   bytes.NewReader(data),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		s.logger.Error("Failed to upload media",
			zap.Error(err),
			zap.String("key", name),
			zap.String("bucket", s.bucket),
		)
		return "", pkgerrors.NewExternalError("media storage", err)
	}

	return fmt.Sprintf("%s/%s", s.baseURL, name), nil
}
