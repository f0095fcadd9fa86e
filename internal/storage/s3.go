package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/KragoN96/berries-web-app/internal/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Service uploads item images to Amazon S3 (or compatible APIs).
type S3Service struct {
	uploader  *manager.Uploader
	bucket    string
	keyPrefix string
	publicURL string // base URL images are served from
}

func NewS3Service(client *s3.Client, bucket, keyPrefix, publicURL string) *S3Service {
	return &S3Service{
		uploader:  manager.NewUploader(client),
		bucket:    bucket,
		keyPrefix: strings.Trim(keyPrefix, "/"),
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// UploadImage stores one image under a fresh key and returns its reference.
func (s *S3Service) UploadImage(ctx context.Context, filename, contentType string, body io.Reader) (*models.ImageRef, error) {
	if s.bucket == "" {
		return nil, fmt.Errorf("storage bucket is required")
	}

	key := uuid.New().String()
	if ext := path.Ext(filename); ext != "" {
		key += strings.ToLower(ext)
	}
	if s.keyPrefix != "" {
		key = s.keyPrefix + "/" + key
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.uploader.Upload(ctx, input); err != nil {
		return nil, fmt.Errorf("upload %s: %w", key, err)
	}

	url := fmt.Sprintf("s3://%s/%s", s.bucket, key)
	if s.publicURL != "" {
		url = s.publicURL + "/" + key
	}

	return &models.ImageRef{URL: url, Key: key}, nil
}
