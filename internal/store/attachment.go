package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"pricingdesk.app/server/common"
	"pricingdesk.app/server/internal/model"
)

// DefaultMaxAttachmentSize is the upload limit used when none is configured.
const DefaultMaxAttachmentSize = 10 * 1024 * 1024

var (
	ErrAttachmentNotFound      = errors.New("attachment not found")
	ErrAttachmentTooLarge      = errors.New("attachment exceeds maximum size")
	ErrAttachmentEmpty         = errors.New("attachment is empty")
	ErrInvalidAttachmentPath   = errors.New("invalid attachment path")
	ErrAttachmentPathTraversal = errors.New("path traversal not allowed")
)

// AttachmentStore keeps uploaded documents referenced by pricing requests.
type AttachmentStore interface {
	Save(ctx context.Context, originalName string, r io.Reader) (model.Attachment, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Exists(ctx context.Context, path string) (bool, error)
}

// LocalAttachmentStore implements AttachmentStore on the local filesystem.
type LocalAttachmentStore struct {
	rootDir  string
	maxBytes int64
	now      func() time.Time
}

func NewLocalAttachmentStore(rootDir string, maxBytes int64) (*LocalAttachmentStore, error) {
	if rootDir == "" {
		return nil, fmt.Errorf("attachment root directory is required")
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxAttachmentSize
	}

	if err := os.MkdirAll(rootDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating attachment root directory: %w", err)
	}

	return &LocalAttachmentStore{rootDir: rootDir, maxBytes: maxBytes, now: time.Now}, nil
}

func (s *LocalAttachmentStore) MaxBytes() int64 {
	return s.maxBytes
}

// Save streams r to disk as <slug>-<uuid><ext>. The file only becomes visible
// once fully written and within the size limit.
func (s *LocalAttachmentStore) Save(ctx context.Context, originalName string, r io.Reader) (model.Attachment, error) {
	base, ext, err := common.SplitFilename(originalName, "attachment")
	if err != nil {
		return model.Attachment{}, fmt.Errorf("%w: %v", ErrInvalidAttachmentPath, err)
	}

	relPath := fmt.Sprintf("%s-%s%s", base, uuid.NewString(), ext)
	if err := s.validatePath(relPath); err != nil {
		return model.Attachment{}, err
	}
	fullPath := filepath.Join(s.rootDir, relPath)

	tmp, err := os.CreateTemp(s.rootDir, ".upload-*.tmp")
	if err != nil {
		return model.Attachment{}, fmt.Errorf("creating temp attachment: %w", err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			os.Remove(tmpPath)
		}
	}()

	hash := sha256.New()
	// One byte over the limit is enough to tell the upload is too large.
	n, err := io.Copy(io.MultiWriter(tmp, hash), io.LimitReader(r, s.maxBytes+1))
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return model.Attachment{}, fmt.Errorf("writing temp attachment: %w", err)
	}
	if n > s.maxBytes {
		return model.Attachment{}, ErrAttachmentTooLarge
	}
	if n == 0 {
		return model.Attachment{}, ErrAttachmentEmpty
	}

	if err := os.Rename(tmpPath, fullPath); err != nil {
		return model.Attachment{}, fmt.Errorf("renaming attachment: %w", err)
	}
	committed = true

	return model.Attachment{
		Filename:   filepath.Base(relPath),
		Path:       relPath,
		Size:       n,
		SHA256:     hex.EncodeToString(hash.Sum(nil)),
		UploadedAt: s.now().UTC(),
	}, nil
}

func (s *LocalAttachmentStore) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := s.validatePath(path); err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(s.rootDir, path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrAttachmentNotFound
		}
		return nil, fmt.Errorf("opening attachment: %w", err)
	}
	return f, nil
}

func (s *LocalAttachmentStore) Exists(ctx context.Context, path string) (bool, error) {
	if err := s.validatePath(path); err != nil {
		return false, err
	}

	_, err := os.Stat(filepath.Join(s.rootDir, path))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("checking attachment existence: %w", err)
	}
	return true, nil
}

// validatePath ensures the path is relative and stays under root.
func (s *LocalAttachmentStore) validatePath(path string) error {
	if path == "" {
		return ErrInvalidAttachmentPath
	}
	if strings.Contains(path, "..") || filepath.IsAbs(path) {
		return ErrAttachmentPathTraversal
	}
	if strings.HasPrefix(filepath.Clean(path), "..") {
		return ErrAttachmentPathTraversal
	}
	return nil
}
