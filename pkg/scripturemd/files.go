package scripturemd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ChapterFile locates one chapter file in the vault and carries the book
// identity written into its frontmatter.
type ChapterFile struct {
	Dir        string // vault-relative directory
	Name       string // file name including the .md suffix
	Book       string // frontmatter book value
	BookNumber int
}

// PlanChapterFile computes where a chapter lives in the vault. Ordinary
// books get a numbered book folder ("Book of Mormon/11 3 Nephi"). Doctrine
// and Covenants sections and Official Declarations live flat under the
// volume folder with their own naming.
func PlanChapterFile(volume, bookName string, chapter int) (*ChapterFile, error) {
	if volume == DoctrineAndCovenants {
		switch {
		case bookName == "Sections":
			return &ChapterFile{
				Dir:        DoctrineAndCovenants,
				Name:       fmt.Sprintf("D&C %d.md", chapter),
				Book:       DoctrineAndCovenants,
				BookNumber: 1,
			}, nil
		case strings.Contains(bookName, "Official Declaration"):
			fields := strings.Fields(bookName)
			num, err := strconv.Atoi(fields[len(fields)-1])
			if err != nil {
				return nil, fmt.Errorf("official declaration number in %q: %w", bookName, err)
			}
			return &ChapterFile{
				Dir:        DoctrineAndCovenants,
				Name:       fmt.Sprintf("Official Declaration %d.md", num),
				Book:       fmt.Sprintf("Official Declaration %d", num),
				BookNumber: num + 1,
			}, nil
		default:
			return nil, fmt.Errorf("unrecognized Doctrine and Covenants book %q", bookName)
		}
	}

	number, ok := BookNumber(volume, bookName)
	if !ok {
		return nil, fmt.Errorf("book %q not in the %s order list", bookName, volume)
	}
	folderName := normalizeDashes(bookName)
	return &ChapterFile{
		Dir:        filepath.Join(volume, fmt.Sprintf("%02d %s", number, folderName)),
		Name:       fmt.Sprintf("%s %d.md", folderName, chapter),
		Book:       bookName,
		BookNumber: number,
	}, nil
}

// UpdateChapterFile rewrites one chapter file under the vault root,
// creating its book folder as needed and preserving existing verse
// content per UpdateContent.
func UpdateChapterFile(root string, plan *ChapterFile, top string, verses []Verse) error {
	dir := filepath.Join(root, plan.Dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create book folder: %w", err)
	}

	path := filepath.Join(dir, plan.Name)
	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("read chapter file %s: %w", path, err)
	}

	content := UpdateContent(string(existing), top, verses)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write chapter file %s: %w", path, err)
	}
	return nil
}
