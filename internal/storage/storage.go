package storage

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"go-timeoff/internal/config"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"go.uber.org/zap"
)

const MaxFileSize = 10 << 20

var allowedContentTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
	"image/heic":      true,
}

var (
	ErrEmptyFile       = errors.New("file is empty")
	ErrFileTooLarge    = errors.New("file exceeds 10MB")
	ErrUnsupportedType = errors.New("unsupported file type")
)

// File is an uploaded attachment held in memory.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Validate checks size and sniffs the content type when the client sent a
// generic one.
func (f *File) Validate() error {
	if len(f.Data) == 0 {
		return ErrEmptyFile
	}
	if len(f.Data) > MaxFileSize {
		return ErrFileTooLarge
	}
	ct := strings.ToLower(strings.TrimSpace(strings.SplitN(f.ContentType, ";", 2)[0]))
	if ct == "" || ct == "application/octet-stream" {
		ct = strings.SplitN(http.DetectContentType(f.Data), ";", 2)[0]
	}
	if !allowedContentTypes[ct] {
		return ErrUnsupportedType
	}
	f.ContentType = ct
	return nil
}

//go:generate mockgen -destination=mock/storage_mock.go -package=mock . Uploader
type Uploader interface {
	Upload(ctx context.Context, file File) (string, error)
}

// ObjectPutter is the slice of *oss.Bucket the uploader uses.
type ObjectPutter interface {
	PutObject(objectKey string, reader io.Reader, options ...oss.Option) error
}

type OSSUploader struct {
	bucket     ObjectPutter
	bucketName string
	endpoint   string
	prefix     string
	logger     *zap.Logger
}

func NewOSSUploader(bucket ObjectPutter, bucketName, endpoint, prefix string, logger ...*zap.Logger) *OSSUploader {
	l := zap.L().Named("storage.oss")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("storage.oss")
	}
	return &OSSUploader{
		bucket:     bucket,
		bucketName: bucketName,
		endpoint:   endpoint,
		prefix:     strings.Trim(prefix, "/"),
		logger:     l,
	}
}

// NewOSSUploaderFromConfig dials the bucket named in cfg.
func NewOSSUploaderFromConfig(cfg config.StorageConfig, logger ...*zap.Logger) (*OSSUploader, error) {
	if cfg.Endpoint == "" || cfg.AccessKeyID == "" || cfg.AccessKeySecret == "" || cfg.Bucket == "" {
		return nil, errors.New("oss endpoint, credentials and bucket are required")
	}
	client, err := oss.New(cfg.Endpoint, cfg.AccessKeyID, cfg.AccessKeySecret)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}
	bkt, err := client.Bucket(cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}
	return NewOSSUploader(bkt, cfg.Bucket, cfg.Endpoint, cfg.KeyPrefix, logger...), nil
}

func (u *OSSUploader) Upload(ctx context.Context, file File) (string, error) {
	if err := file.Validate(); err != nil {
		return "", err
	}

	key := u.objectKey(file.Name)
	err := u.bucket.PutObject(key, bytes.NewReader(file.Data),
		oss.WithContext(ctx),
		oss.ContentType(file.ContentType),
		oss.ContentDisposition("inline"),
	)
	if err != nil {
		u.logger.Warn("oss upload failed", zap.String("key", key), zap.Error(err))
		return "", fmt.Errorf("put object: %w", err)
	}

	return u.PublicURL(key), nil
}

func (u *OSSUploader) PublicURL(key string) string {
	end := strings.TrimPrefix(strings.TrimPrefix(u.endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", u.bucketName, end, key)
}

func (u *OSSUploader) objectKey(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	base := slugify(strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)))

	prefix := u.prefix
	if prefix != "" {
		prefix += "/"
	}
	return fmt.Sprintf("%s%s/%s_%s%s", prefix, time.Now().UTC().Format("2006/01/02"), base, randHex(4), ext)
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", "-", "_", "-").Replace(s)
	s = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return -1
	}, s)
	if s == "" {
		return "file"
	}
	return s
}

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
