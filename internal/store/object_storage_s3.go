package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-tube/internal/config"
	"github.com/MKhiriev/go-tube/internal/logger"
	"github.com/MKhiriev/go-tube/internal/utils"
	"github.com/MKhiriev/go-tube/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
)

// s3API is the part of *s3.Client the object storage calls.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// objectStorage keeps thumbnails and previews in an S3 bucket under
// UUIDv7 keys and serves them from PublicBaseURL.
type objectStorage struct {
	client        s3API
	bucket        string
	publicBaseURL string
	downloader    *utils.HTTPClient
	ids           *utils.UUIDGenerator
	logger        *logger.Logger
}

// NewObjectStorage builds the S3 client from the default AWS credential
// chain. With no bucket configured every call fails with
// [ErrObjectStorageDisabled].
func NewObjectStorage(ctx context.Context, cfg config.Objects, timeout time.Duration, log *logger.Logger) (ObjectStorage, error) {
	if cfg.Bucket == "" {
		log.Warn().Str("func", "NewObjectStorage").Msg("object storage bucket is not set, uploads are disabled")
		return disabledObjectStorage{}, nil
	}

	var loadOpts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		log.Err(err).Str("func", "NewObjectStorage").Msg("failed to load aws config")
		return nil, fmt.Errorf("error loading object storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	publicBaseURL := cfg.PublicBaseURL
	if publicBaseURL == "" {
		publicBaseURL = fmt.Sprintf("https://%s.s3.amazonaws.com", cfg.Bucket)
	}

	return newObjectStorage(client, cfg.Bucket, publicBaseURL, utils.NewHTTPClient("", timeout), log), nil
}

func newObjectStorage(client s3API, bucket, publicBaseURL string, downloader *utils.HTTPClient, log *logger.Logger) *objectStorage {
	return &objectStorage{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		downloader:    downloader,
		ids:           utils.NewUUIDGenerator(),
		logger:        log,
	}
}

// Upload stores body under a fresh key. The extension comes from the
// detected content type, falling back to the one of name.
func (s *objectStorage) Upload(ctx context.Context, name string, body io.Reader, contentType string) (models.StoredFile, error) {
	log := logger.FromContext(ctx)

	data, err := io.ReadAll(body)
	if err != nil {
		log.Err(err).Str("func", "*objectStorage.Upload").Msg("failed to read object body")
		return models.StoredFile{}, fmt.Errorf("%w: %w", ErrUploadingObject, err)
	}

	detected := mimetype.Detect(data)
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = detected.String()
	}
	ext := detected.Extension()
	if ext == "" {
		ext = filepath.Ext(name)
	}

	key := s.ids.Key(ext)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Err(err).Str("func", "*objectStorage.Upload").Str("key", key).Msg("failed to put object")
		return models.StoredFile{}, fmt.Errorf("%w: %w", ErrUploadingObject, err)
	}

	log.Debug().Str("func", "*objectStorage.Upload").Str("key", key).Int("size", len(data)).Msg("object uploaded")
	return models.StoredFile{Key: key, URL: s.publicBaseURL + "/" + key}, nil
}

// UploadFromURL copies a remote file (a provider thumbnail, a generated
// image) into the bucket.
func (s *objectStorage) UploadFromURL(ctx context.Context, url string) (models.StoredFile, error) {
	log := logger.FromContext(ctx)

	resp, err := s.downloader.R().
		SetContext(ctx).
		SetHeader("Accept", "*/*").
		Get(url)
	if err != nil {
		log.Err(err).Str("func", "*objectStorage.UploadFromURL").Str("url", url).Msg("failed to download object")
		return models.StoredFile{}, fmt.Errorf("%w: %w", ErrUploadingObject, err)
	}
	if resp.IsError() {
		log.Error().Str("func", "*objectStorage.UploadFromURL").Str("url", url).Int("status", resp.StatusCode()).Msg("object download rejected")
		return models.StoredFile{}, fmt.Errorf("%w: download of %s returned %d", ErrUploadingObject, url, resp.StatusCode())
	}

	return s.Upload(ctx, path.Base(url), bytes.NewReader(resp.Body()), resp.Header().Get("Content-Type"))
}

// Delete removes every non-empty key. All keys are attempted; failures
// are joined.
func (s *objectStorage) Delete(ctx context.Context, keys ...string) error {
	log := logger.FromContext(ctx)

	var errs []error
	for _, key := range keys {
		if key == "" {
			continue
		}
		_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			log.Err(err).Str("func", "*objectStorage.Delete").Str("key", key).Msg("failed to delete object")
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrDeletingObject, errors.Join(errs...))
	}
	return nil
}

type disabledObjectStorage struct{}

func (disabledObjectStorage) Upload(context.Context, string, io.Reader, string) (models.StoredFile, error) {
	return models.StoredFile{}, ErrObjectStorageDisabled
}

func (disabledObjectStorage) UploadFromURL(context.Context, string) (models.StoredFile, error) {
	return models.StoredFile{}, ErrObjectStorageDisabled
}

// Delete is a no-op so removing a video never fails on cleanup.
func (disabledObjectStorage) Delete(context.Context, ...string) error {
	return nil
}
