package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

var ErrEmptyFilename = errors.New("upload has no usable filename")

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

// FileStore persists uploaded employee photos in a single directory,
// addressed by sanitized original filename. Saving an existing name
// silently overwrites the previous file.
type FileStore struct {
	dir    string
	logger *zap.Logger
}

// NewFileStore creates a FileStore rooted at dir.
func NewFileStore(dir string, logger *zap.Logger) *FileStore {
	return &FileStore{dir: dir, logger: logger}
}

// Dir returns the directory backing the store.
func (s *FileStore) Dir() string {
	return s.dir
}

// SanitizeFilename reduces an uploaded filename to a safe basename:
// path components are stripped, whitespace becomes underscores and
// anything outside [A-Za-z0-9_.-] is removed.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeChars.ReplaceAllString(name, "")
	name = strings.Trim(name, "._")
	if name == "" || name == "." || name == ".." {
		return ""
	}
	return name
}

// Save writes the uploaded file under its sanitized original filename and
// returns that filename for storage on the employee record.
func (s *FileStore) Save(file *multipart.FileHeader) (string, error) {
	name := SanitizeFilename(file.Filename)
	if name == "" {
		return "", ErrEmptyFilename
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		s.logger.Error("Failed to ensure upload directory exists", zap.String("path", s.dir), zap.Error(err))
		return "", fmt.Errorf("failed to ensure upload directory %s: %w", s.dir, err)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file %s: %w", file.Filename, err)
	}
	defer src.Close()

	dstPath := filepath.Join(s.dir, name)
	dst, err := os.Create(dstPath)
	if err != nil {
		s.logger.Error("Failed to create photo file", zap.String("path", dstPath), zap.Error(err))
		return "", fmt.Errorf("failed to create photo file %s: %w", dstPath, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		s.logger.Error("Failed to write uploaded photo", zap.String("path", dstPath), zap.Error(err))
		return "", fmt.Errorf("failed to write photo file %s: %w", dstPath, err)
	}

	s.logger.Info("Saved uploaded photo", zap.String("original_filename", file.Filename), zap.String("saved_as", name))
	return name, nil
}
