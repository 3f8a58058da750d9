package storage_test

import (
	"context"
	"errors"
	"io"
	"regexp"
	"strings"
	"testing"

	"go-timeoff/internal/storage"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBucket struct {
	key     string
	body    []byte
	options int
	err     error
}

func (f *fakeBucket) PutObject(key string, r io.Reader, options ...oss.Option) error {
	if f.err != nil {
		return f.err
	}
	f.key = key
	f.body, _ = io.ReadAll(r)
	f.options = len(options)
	return nil
}

var pdf = []byte("%PDF-1.4\n%âãÏÓ\n1 0 obj\n<<>>\nendobj\n")

func TestOSSUploader_Upload(t *testing.T) {
	t.Run("puts object and returns public url", func(t *testing.T) {
		bucket := &fakeBucket{}
		u := storage.NewOSSUploader(bucket, "notes", "https://oss-eu-central-1.aliyuncs.com", "/doctor-notes/")

		url, err := u.Upload(context.Background(), storage.File{Name: "Dr Note.PDF", ContentType: "application/pdf", Data: pdf})
		require.NoError(t, err)

		assert.Regexp(t, regexp.MustCompile(`^doctor-notes/\d{4}/\d{2}/\d{2}/dr-note_[0-9a-f]{8}\.pdf$`), bucket.key)
		assert.Equal(t, pdf, bucket.body)
		assert.Equal(t, 3, bucket.options)
		assert.True(t, strings.HasPrefix(url, "https://notes.oss-eu-central-1.aliyuncs.com/doctor-notes/"))
	})

	t.Run("sniffs generic content type", func(t *testing.T) {
		bucket := &fakeBucket{}
		u := storage.NewOSSUploader(bucket, "notes", "oss.example.com", "")

		_, err := u.Upload(context.Background(), storage.File{Name: "note", ContentType: "application/octet-stream", Data: pdf})
		assert.NoError(t, err)
	})

	t.Run("rejects unsupported files before upload", func(t *testing.T) {
		bucket := &fakeBucket{}
		u := storage.NewOSSUploader(bucket, "notes", "oss.example.com", "")

		_, err := u.Upload(context.Background(), storage.File{Name: "run.sh", ContentType: "text/x-shellscript", Data: []byte("#!/bin/sh")})
		assert.ErrorIs(t, err, storage.ErrUnsupportedType)
		assert.Empty(t, bucket.key)

		_, err = u.Upload(context.Background(), storage.File{Name: "empty.pdf", ContentType: "application/pdf"})
		assert.ErrorIs(t, err, storage.ErrEmptyFile)
	})

	t.Run("bucket error", func(t *testing.T) {
		u := storage.NewOSSUploader(&fakeBucket{err: errors.New("AccessDenied")}, "notes", "oss.example.com", "")

		_, err := u.Upload(context.Background(), storage.File{Name: "n.pdf", ContentType: "application/pdf", Data: pdf})
		assert.ErrorContains(t, err, "AccessDenied")
	})
}

func TestFile_Validate_TooLarge(t *testing.T) {
	f := storage.File{Name: "big.pdf", ContentType: "application/pdf", Data: make([]byte, storage.MaxFileSize+1)}
	assert.ErrorIs(t, f.Validate(), storage.ErrFileTooLarge)
}
