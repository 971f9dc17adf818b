package scripturemd

import (
	"encoding/json"
	"fmt"
	"os"
)

// Resource is a named study link attached to a chapter.
type Resource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Summaries carries the optional per-chapter summary fields present in
// enriched source data. Empty fields render as "NA".
type Summaries struct {
	Context string `json:"context_summary"`
	Child   string `json:"child_summary"`
	Summary string `json:"summary"`
	Tags    string `json:"tags"`
}

// Verse is one numbered verse of a chapter.
type Verse struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// Chapter is one chapter of a book with its verses, study resources, and
// optional summaries.
type Chapter struct {
	Number    int        `json:"number"`
	Verses    []Verse    `json:"verses"`
	Resources []Resource `json:"chapter_resources"`
	Summaries *Summaries `json:"ai_resources"`
}

// Book is one book of a volume.
type Book struct {
	Name     string    `json:"name"`
	Chapters []Chapter `json:"chapters"`
}

// LoadVolume reads a volume JSON export and returns its book list. The
// file's top-level object is keyed by the volume name.
func LoadVolume(path, volume string) ([]Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read volume file: %w", err)
	}

	var doc map[string][]Book
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode volume file %s: %w", path, err)
	}

	books, ok := doc[volume]
	if !ok {
		return nil, fmt.Errorf("volume %q missing from %s", volume, path)
	}
	return books, nil
}
