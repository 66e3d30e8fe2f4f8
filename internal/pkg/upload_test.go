package pkg

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func multipartFileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("write multipart content: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	_, fh, err := req.FormFile("file")
	if err != nil {
		t.Fatalf("FormFile: %v", err)
	}
	return fh
}

func TestNewUploader_RequiresDir(t *testing.T) {
	if _, err := NewUploader("  "); err == nil {
		t.Fatal("NewUploader() expected error for blank dir, got nil")
	}
}

func TestNewUploader_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	if _, err := NewUploader(dir); err != nil {
		t.Fatalf("NewUploader() error: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("upload dir not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("upload path is not a directory")
	}
}

func TestUploader_Save(t *testing.T) {
	dir := t.TempDir()
	u, err := NewUploader(dir)
	if err != nil {
		t.Fatalf("NewUploader() error: %v", err)
	}

	fh := multipartFileHeader(t, "Resume Final.PDF", "resume body")
	name, err := u.Save(fh)
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	if !strings.HasSuffix(name, ".pdf") {
		t.Errorf("stored name %q should keep extension lowercased as .pdf", name)
	}
	if strings.Contains(name, "Resume") {
		t.Errorf("stored name %q must not reuse the original filename", name)
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if string(data) != "resume body" {
		t.Errorf("stored content = %q, want %q", data, "resume body")
	}
}

func TestUploader_Save_UniqueNames(t *testing.T) {
	u, err := NewUploader(t.TempDir())
	if err != nil {
		t.Fatalf("NewUploader() error: %v", err)
	}

	a, err := u.Save(multipartFileHeader(t, "a.jpg", "one"))
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	b, err := u.Save(multipartFileHeader(t, "a.jpg", "two"))
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if a == b {
		t.Errorf("two saves of the same filename produced the same stored name %q", a)
	}
}

func TestUploader_Save_NilHeader(t *testing.T) {
	u, err := NewUploader(t.TempDir())
	if err != nil {
		t.Fatalf("NewUploader() error: %v", err)
	}
	if _, err := u.Save(nil); err == nil {
		t.Fatal("Save(nil) expected error, got nil")
	}
}

func TestUploader_Remove(t *testing.T) {
	dir := t.TempDir()
	u, err := NewUploader(dir)
	if err != nil {
		t.Fatalf("NewUploader() error: %v", err)
	}

	name, err := u.Save(multipartFileHeader(t, "old.png", "old"))
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	u.Remove(name)
	if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
		t.Errorf("expected %q to be removed, stat err = %v", name, err)
	}

	// Removing a missing file is a no-op.
	u.Remove("does-not-exist.png")
}

func TestUploader_Remove_StripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	u, err := NewUploader(filepath.Join(dir, "uploads"))
	if err != nil {
		t.Fatalf("NewUploader() error: %v", err)
	}

	outside := filepath.Join(dir, "keep.txt")
	if err := os.WriteFile(outside, []byte("keep"), 0644); err != nil {
		t.Fatalf("write outside file: %v", err)
	}

	u.Remove("../keep.txt")
	if _, err := os.Stat(outside); err != nil {
		t.Errorf("file outside the upload dir was removed: %v", err)
	}
}
