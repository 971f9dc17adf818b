package conference

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"conference-archive/pkg/resourceindex"
)

// Store reads and writes conference documents and the resource index as
// JSON files under a directory.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir ("." for the working directory).
func NewStore(dir string) *Store {
	if dir == "" {
		dir = "."
	}
	return &Store{dir: dir}
}

// Load reads the conference document for a year/month pair. A missing file
// is not an error: it returns (nil, false, nil) so callers can create one.
func (s *Store) Load(year, month string) (*Data, bool, error) {
	path := filepath.Join(s.dir, FileName(year, month))
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read conference document: %w", err)
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, false, fmt.Errorf("decode conference document %s: %w", path, err)
	}
	return &data, true, nil
}

// Save writes the conference document.
func (s *Store) Save(data *Data) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode conference document: %w", err)
	}

	path := filepath.Join(s.dir, FileName(data.Year, data.Month))
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write conference document: %w", err)
	}
	return nil
}

// ResourceIndexFile is the canonical resource lookup document name.
const ResourceIndexFile = "conference_resources.json"

// LoadResourceIndex reads the resource index, returning an empty index when
// the file does not exist yet.
func (s *Store) LoadResourceIndex() (resourceindex.Index, error) {
	path := filepath.Join(s.dir, ResourceIndexFile)
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return resourceindex.Index{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read resource index: %w", err)
	}

	var index resourceindex.Index
	if err := json.Unmarshal(raw, &index); err != nil {
		return nil, fmt.Errorf("decode resource index %s: %w", path, err)
	}
	return index, nil
}

// SaveResourceIndex writes the resource index with its deterministic key
// ordering.
func (s *Store) SaveResourceIndex(index resourceindex.Index) error {
	raw, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return fmt.Errorf("encode resource index: %w", err)
	}
	path := filepath.Join(s.dir, ResourceIndexFile)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write resource index: %w", err)
	}
	return nil
}
