package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"spacehub/internal/pkg/config"
	"spacehub/internal/pkg/errs"

	"github.com/google/uuid"
)

// Uploader stores review images and returns a public URL. The core keeps
// URLs only; where the bytes live is this port's concern.
type Uploader interface {
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
}

type LocalUploader struct {
	dir     string
	baseURL string
}

func NewLocalUploader(cfg config.StorageConfig) (*LocalUploader, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, errs.Wrap(err, "failed to create upload dir")
	}
	return &LocalUploader{
		dir:     cfg.UploadDir,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}, nil
}

func (u *LocalUploader) Upload(_ context.Context, filename string, r io.Reader) (string, error) {
	// The stored name is random; the original name only contributes its
	// extension.
	name := uuid.NewString() + strings.ToLower(filepath.Ext(filepath.Base(filename)))

	f, err := os.Create(filepath.Join(u.dir, name))
	if err != nil {
		return "", errs.Wrap(err, "failed to create upload file")
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", errs.Wrap(err, "failed to write upload file")
	}
	return u.baseURL + "/" + name, nil
}
