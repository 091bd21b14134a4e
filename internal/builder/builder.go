// Package builder implements the filesystem operations behind the
// visual screen editor: a recursive file-tree listing plus create, read,
// update and delete for JSON documents and folders under the assets
// root. Every operation touches at most one path; there is no locking
// and concurrent writers race last-write-wins.
package builder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors the HTTP layer maps to diagnostic payloads.
var (
	ErrNotFound    = errors.New("not found")
	ErrExists      = errors.New("already exists")
	ErrInvalidPath = errors.New("path escapes assets root")
)

// Service performs builder operations rooted at an assets directory.
type Service struct {
	root string
}

// NewService returns a service rooted at root.
func NewService(root string) *Service {
	return &Service{root: root}
}

// resolve joins a client-supplied relative path onto the root, rejecting
// anything that would escape it.
func (s *Service) resolve(relPath string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("%q: %w", relPath, ErrInvalidPath)
	}
	return filepath.Join(s.root, cleaned), nil
}

// ReadFile reads and decodes one JSON document by extension-less path.
func (s *Service) ReadFile(relPath string) (any, error) {
	full, err := s.resolve(relPath + ".json")
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(full)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", relPath, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read %s: %w", relPath, err)
	}

	var content any
	if err := json.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", relPath, err)
	}
	return content, nil
}

// WriteFile stores a document as pretty-printed UTF-8 JSON, creating
// parent folders as needed. Files stay human-editable on disk.
func (s *Service) WriteFile(relPath string, content any) error {
	full, err := s.resolve(relPath + ".json")
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(content); err != nil {
		return fmt.Errorf("failed to encode %s: %w", relPath, err)
	}

	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return fmt.Errorf("failed to create parent folder for %s: %w", relPath, err)
	}
	if err := os.WriteFile(full, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", relPath, err)
	}
	return nil
}

// DeleteFile removes one JSON document.
func (s *Service) DeleteFile(relPath string) error {
	full, err := s.resolve(relPath + ".json")
	if err != nil {
		return err
	}
	if _, err := os.Stat(full); os.IsNotExist(err) {
		return fmt.Errorf("%s: %w", relPath, ErrNotFound)
	}
	if err := os.Remove(full); err != nil {
		return fmt.Errorf("failed to delete %s: %w", relPath, err)
	}
	return nil
}

// CreateFolder creates a folder (and any missing parents).
func (s *Service) CreateFolder(relPath string) error {
	full, err := s.resolve(relPath)
	if err != nil {
		return err
	}
	if _, err := os.Stat(full); err == nil {
		return fmt.Errorf("%s: %w", relPath, ErrExists)
	}
	if err := os.MkdirAll(full, 0755); err != nil {
		return fmt.Errorf("failed to create folder %s: %w", relPath, err)
	}
	return nil
}

// DeleteFolder removes a folder and everything under it.
func (s *Service) DeleteFolder(relPath string) error {
	full, err := s.resolve(relPath)
	if err != nil {
		return err
	}
	if _, err := os.Stat(full); os.IsNotExist(err) {
		return fmt.Errorf("%s: %w", relPath, ErrNotFound)
	}
	if err := os.RemoveAll(full); err != nil {
		return fmt.Errorf("failed to delete folder %s: %w", relPath, err)
	}
	return nil
}
