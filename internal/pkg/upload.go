package pkg

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Uploader stores multipart uploads under a single directory with random
// filenames, and removes superseded files best-effort.
type Uploader struct {
	dir string
}

// NewUploader creates the upload directory if needed and returns an Uploader
// rooted there.
func NewUploader(dir string) (*Uploader, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("upload directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory %q: %w", dir, err)
	}
	return &Uploader{dir: dir}, nil
}

// Save writes the uploaded file to disk under a random name (original
// extension preserved) and returns the stored filename.
func (u *Uploader) Save(fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fmt.Errorf("no file provided")
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))
	dst, err := os.Create(filepath.Join(u.dir, name))
	if err != nil {
		return "", fmt.Errorf("create stored file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write stored file: %w", err)
	}

	return name, nil
}

// Remove deletes a previously stored file. Failure to delete is not an error
// for the caller: superseded files are cleaned up best-effort and a leftover
// never fails the surrounding update. The stored name is reduced to its base
// so a corrupted path value cannot escape the upload directory.
func (u *Uploader) Remove(name string) {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "" || name == "." || name == ".." {
		return
	}
	_ = os.Remove(filepath.Join(u.dir, name))
}
