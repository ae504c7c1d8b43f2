// Package storage keeps uploaded CVs on local disk. Every API instance must share the
// directory for downloads and deletes to work.
package storage

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var (
	ErrFileRequired = errors.New("please upload your CV")
	ErrFileType     = errors.New("only PDF, DOC, and DOCX files are allowed")
	ErrFileTooLarge = errors.New("file too large")
	ErrFileNotFound = errors.New("file not found")
)

// Sniffed content types accepted per extension. Only the detected type is compared, never its
// parents, so a generic container named .pdf is rejected. DOC files are OLE containers and DOCX
// files are zip archives; when the sniffer cannot see inside them it reports the container type.
var allowedTypes = map[string][]string{
	".pdf": {"application/pdf"},
	".doc": {"application/msword", "application/x-ole-storage"},
	".docx": {
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"application/zip",
	},
}

type CVStore struct {
	dir      string
	maxBytes int64
}

func NewCVStore(dir string, maxBytes int64) (*CVStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &CVStore{dir: dir, maxBytes: maxBytes}, nil
}

func (s *CVStore) MaxBytes() int64 {
	return s.maxBytes
}

// Validate checks presence, extension, size and sniffed content type of an upload.
func (s *CVStore) Validate(fh *multipart.FileHeader) error {
	if fh == nil {
		return ErrFileRequired
	}
	types, ok := allowedTypes[strings.ToLower(filepath.Ext(fh.Filename))]
	if !ok {
		return ErrFileType
	}
	if fh.Size > s.maxBytes {
		return ErrFileTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return fmt.Errorf("failed to sniff upload: %w", err)
	}
	for _, allowed := range types {
		if mtype.Is(allowed) {
			return nil
		}
	}
	return ErrFileType
}

// Save writes the upload as cv-<userID>-<unixMillis>-<random><ext> and returns its path.
func (s *CVStore) Save(userID uuid.UUID, fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	name := fmt.Sprintf("cv-%s-%d-%d%s", userID, time.Now().UnixMilli(), rand.Int63n(1e9), ext)
	path := filepath.Join(s.dir, name)

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create cv file: %w", err)
	}

	n, err := io.Copy(dst, io.LimitReader(src, s.maxBytes+1))
	closeErr := dst.Close()
	if err == nil {
		err = closeErr
	}
	if err == nil && n > s.maxBytes {
		err = ErrFileTooLarge
	}
	if err != nil {
		_ = os.Remove(path)
		return "", err
	}

	return path, nil
}

// Remove deletes a stored CV. A missing file is not an error.
func (s *CVStore) Remove(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Locate returns the path if the file exists on disk.
func (s *CVStore) Locate(path string) (string, error) {
	if path == "" {
		return "", ErrFileNotFound
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrFileNotFound
		}
		return "", err
	}
	if info.IsDir() {
		return "", ErrFileNotFound
	}
	return path, nil
}
