// Package storage keeps uploaded ticket attachments on the local filesystem.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/ecobarangay/wasteops/internal/domain/maintenance"
)

// DefaultSubfolder groups maintenance uploads.
const DefaultSubfolder = "maintenance"

var (
	ErrFileEmpty       = errors.New("file is empty")
	ErrFileTooLarge    = errors.New("file exceeds the maximum upload size")
	ErrTypeNotAllowed  = errors.New("file type is not allowed")
	ErrInvalidLocation = errors.New("invalid storage location")
)

var subfolderPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,63}$`)

type LocalStorage struct {
	basePath     string
	maxSizeBytes int64
	allowed      []string
}

// NewLocalStorage creates basePath if needed. An empty allowed list accepts
// any detected type.
func NewLocalStorage(basePath string, maxSizeBytes int64, allowed []string) (*LocalStorage, error) {
	if basePath == "" {
		return nil, fmt.Errorf("storage base path is required")
	}
	if err := os.MkdirAll(basePath, 0750); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &LocalStorage{
		basePath:     basePath,
		maxSizeBytes: maxSizeBytes,
		allowed:      allowed,
	}, nil
}

// Save stores the content of r under subfolder with a random name and returns
// the reference to bind to a ticket. The type is detected from the content,
// not from the client.
func (s *LocalStorage) Save(ctx context.Context, subfolder, originalName string, r io.Reader) (*maintenance.FileRef, error) {
	if subfolder == "" {
		subfolder = DefaultSubfolder
	}
	if !subfolderPattern.MatchString(subfolder) {
		return nil, ErrInvalidLocation
	}

	if s.maxSizeBytes > 0 {
		r = io.LimitReader(r, s.maxSizeBytes+1)
	}
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if len(content) == 0 {
		return nil, ErrFileEmpty
	}
	if s.maxSizeBytes > 0 && int64(len(content)) > s.maxSizeBytes {
		return nil, ErrFileTooLarge
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	detected := mimetype.Detect(content)
	if !s.isAllowed(detected) {
		return nil, fmt.Errorf("%w: %s", ErrTypeNotAllowed, detected.String())
	}

	dir := filepath.Join(s.basePath, subfolder)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	ext := detected.Extension()
	if ext == "" {
		ext = strings.ToLower(filepath.Ext(originalName))
	}
	storedName := uuid.NewString() + ext
	if err := writeFile(filepath.Join(dir, storedName), content); err != nil {
		return nil, err
	}

	size := int64(len(content))
	return &maintenance.FileRef{
		Path:      path.Join(subfolder, storedName),
		Name:      cleanName(originalName, storedName),
		Type:      strings.SplitN(detected.String(), ";", 2)[0],
		Size:      &size,
		Subfolder: subfolder,
	}, nil
}

// Delete removes a stored file. Missing files are ignored.
func (s *LocalStorage) Delete(relativePath string) error {
	full, err := s.resolve(relativePath)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// Open returns the stored file for reading.
func (s *LocalStorage) Open(relativePath string) (io.ReadCloser, error) {
	full, err := s.resolve(relativePath)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(full)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return f, nil
}

func (s *LocalStorage) resolve(relativePath string) (string, error) {
	clean := path.Clean("/" + relativePath)
	if clean == "/" {
		return "", ErrInvalidLocation
	}
	return filepath.Join(s.basePath, filepath.FromSlash(clean[1:])), nil
}

func (s *LocalStorage) isAllowed(detected *mimetype.MIME) bool {
	if len(s.allowed) == 0 {
		return true
	}
	for _, allowed := range s.allowed {
		if detected.Is(allowed) {
			return true
		}
	}
	return false
}

func writeFile(name string, content []byte) error {
	dst, err := os.OpenFile(name, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0640)
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}
	if _, err := io.Copy(dst, bytes.NewReader(content)); err != nil {
		dst.Close()
		os.Remove(name)
		return fmt.Errorf("failed to save file: %w", err)
	}
	return dst.Close()
}

// cleanName keeps the base of the client file name for display.
func cleanName(original, fallback string) string {
	name := strings.TrimSpace(filepath.Base(strings.ReplaceAll(original, "\\", "/")))
	if name == "" || name == "." || name == "/" {
		return fallback
	}
	if len(name) > 255 {
		name = name[len(name)-255:]
	}
	return name
}
