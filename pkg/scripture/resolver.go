package scripture

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// studyPrefix is the path prefix shared by all Gospel Library scripture URLs.
const studyPrefix = "/study/scriptures/"

// ErrVerseParse indicates a verse-id string contained a malformed numeric
// token. Callers treat it as "no verse list" and link the whole chapter.
var ErrVerseParse = errors.New("malformed verse token")

// WikiLink is a resolved scripture reference ready to be rendered as an
// Obsidian-style cross-reference.
type WikiLink struct {
	PageName    string
	Verses      []int
	DisplayText string
}

// Render produces the wiki-link text. Without verses it is a single link to
// the chapter page. With verses, the first link carries the display text and
// every following verse is an empty-display link to the same page, so a
// range like 3-5 highlights each verse individually.
func (l *WikiLink) Render() string {
	if len(l.Verses) == 0 {
		return fmt.Sprintf("[[%s|%s]]", l.PageName, l.DisplayText)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[[%s#%d|%s]]", l.PageName, l.Verses[0], l.DisplayText)
	for _, v := range l.Verses[1:] {
		fmt.Fprintf(&b, "[[%s#%d|]]", l.PageName, v)
	}
	return b.String()
}

// Resolver maps scripture study URLs to wiki links using a fixed book table.
// It is stateless after construction and safe for concurrent use.
type Resolver struct {
	books BookTable
}

// NewResolver creates a resolver over the given book table.
func NewResolver(books BookTable) *Resolver {
	return &Resolver{books: books}
}

// Resolve maps a scripture study URL to a WikiLink with the given display
// text. It returns nil when the URL does not describe a recognized scripture
// location (wrong path prefix, too few segments, or unknown book).
func (r *Resolver) Resolve(rawURL, displayText string) *WikiLink {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil
	}
	if !strings.HasPrefix(u.Path, studyPrefix) {
		return nil
	}

	parts := strings.Split(strings.TrimPrefix(u.Path, studyPrefix), "/")
	if len(parts) < 2 {
		return nil
	}
	corpus := parts[0]
	bookAbbr := parts[1]
	chapter := ""
	if len(parts) > 2 {
		chapter = parts[2]
	}

	bookName, ok := r.books[corpus+"/"+bookAbbr]
	if !ok {
		return nil
	}

	pageName := strings.TrimSpace(bookName + " " + chapter)

	// The "id" query parameter wins over the URL fragment.
	verseStr := u.Query().Get("id")
	if verseStr == "" {
		verseStr = u.Fragment
	}

	verses, err := ParseVerses(verseStr)
	if err != nil {
		// Malformed verse tokens degrade to a whole-chapter link.
		verses = nil
	}

	return &WikiLink{
		PageName:    pageName,
		Verses:      verses,
		DisplayText: displayText,
	}
}

// ParseVerses parses a verse-id string such as "p3", "3-5" or "2,p4-p6,9"
// into the flat list of verse numbers in left-to-right order, with ranges
// expanded inclusive ascending. An empty string yields no verses. A
// malformed numeric token yields ErrVerseParse.
func ParseVerses(s string) ([]int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil, nil
	}

	var verses []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if strings.Contains(part, "-") {
			bounds := strings.SplitN(part, "-", 2)
			start := stripVersePrefix(bounds[0])
			end := stripVersePrefix(bounds[1])
			if start == "" || end == "" {
				continue
			}
			startNum, err := strconv.Atoi(start)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrVerseParse, bounds[0])
			}
			endNum, err := strconv.Atoi(end)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrVerseParse, bounds[1])
			}
			for v := startNum; v <= endNum; v++ {
				verses = append(verses, v)
			}
			continue
		}

		tok := stripVersePrefix(part)
		if tok == "" {
			continue
		}
		num, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrVerseParse, part)
		}
		verses = append(verses, num)
	}

	return verses, nil
}

// stripVersePrefix removes the leading paragraph marker ("p" or "P") that
// Gospel Library verse anchors carry, then trims whitespace.
func stripVersePrefix(tok string) string {
	tok = strings.TrimSpace(tok)
	if len(tok) > 0 && (tok[0] == 'p' || tok[0] == 'P') {
		tok = tok[1:]
	}
	return strings.TrimSpace(tok)
}
