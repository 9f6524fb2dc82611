package restaurant

import (
	"fmt"
	"os"
	"path/filepath"
)

// Snapshot names used in a Store.
const (
	OrdersSnapshot      = "orders"
	CollectionsSnapshot = "collections"
)

// Store keeps whole ledger snapshots by name.
//
// Read returns an error satisfying errors.Is(err, fs.ErrNotExist) when there
// is no snapshot yet. Write replaces any previous snapshot.
type Store interface {
	Read(name string) ([]byte, error)
	Write(name string, data []byte) error
}

// FileStore keeps each snapshot in "<Dir>/<name>.jsonl".
type FileStore struct {
	Dir string
}

func (s FileStore) path(name string) string {
	return filepath.Join(s.Dir, name+".jsonl")
}

// Read reads the snapshot file.
func (s FileStore) Read(name string) ([]byte, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return nil, fmt.Errorf("could not read snapshot %q: %w", name, err)
	}
	return data, nil
}

// Write truncates and rewrites the snapshot file.
func (s FileStore) Write(name string, data []byte) error {
	filePath := s.path(name)

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("could not create directory for snapshot %q: %w", filePath, err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("error opening snapshot file %q for writing: %w", filePath, err)
	}
	defer file.Close()

	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("error writing snapshot file %q: %w", filePath, err)
	}
	return file.Close()
}
