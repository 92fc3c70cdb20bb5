package blob

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Store persists uploaded binaries and returns a retrievable URL
type Store interface {
	Save(field, originalName string, r io.Reader) (url string, err error)
}

// DiskStore writes uploads to a local directory served under /images/.
// File names are "<field>_<millis><ext>" so repeated uploads never collide
// with earlier ones.
type DiskStore struct {
	dir     string
	baseURL string
}

func NewDiskStore(dir, baseURL string) *DiskStore {
	return &DiskStore{dir: dir, baseURL: baseURL}
}

// Dir returns the directory uploads are written to
func (s *DiskStore) Dir() string {
	return s.dir
}

func (s *DiskStore) Save(field, originalName string, r io.Reader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	name := fmt.Sprintf("%s_%d%s", field, time.Now().UnixMilli(), filepath.Ext(originalName))
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	return s.baseURL + "/images/" + name, nil
}
