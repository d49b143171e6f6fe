package documents

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store keeps applicant uploads on the local filesystem, outside any
// publicly served directory. Files are written under a random unique name so
// concurrent uploads never collide and stored paths cannot be enumerated.
type Store struct {
	root string
}

func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}

	return &Store{root: root}, nil
}

// Save writes the document and returns the path it was stored under. The
// original filename is kept as a suffix so downloads keep a meaningful name.
func (s *Store) Save(filename string, r io.Reader) (string, error) {
	safeName := fmt.Sprintf("%s_%s", uuid.NewString(), filepath.Base(filename))
	path := filepath.Join(s.root, safeName)

	f, err := os.Create(path)

	if err != nil {
		return "", fmt.Errorf("create document: %w", err)
	}

	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write document: %w", err)
	}

	return path, nil
}

// Remove deletes a previously stored document.
func (s *Store) Remove(path string) error {
	return os.Remove(path)
}

// Exists reports whether a previously stored path is still present.
func (s *Store) Exists(path string) bool {
	if path == "" {
		return false
	}

	_, err := os.Stat(path)
	return err == nil
}
