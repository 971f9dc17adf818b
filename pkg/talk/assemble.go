package talk

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"conference-archive/pkg/markup"
)

// ErrStructuralMiss indicates a required page field (title, body container)
// was absent from the extraction input. The failure is scoped to one talk.
var ErrStructuralMiss = errors.New("expected page structure missing")

// ElementKind tags a body-candidate element from the page extraction.
type ElementKind string

const (
	ElementHeading   ElementKind = "heading"
	ElementParagraph ElementKind = "paragraph"
	ElementImage     ElementKind = "image"
)

// PageElement is one raw body-candidate element in document order.
type PageElement struct {
	Kind      ElementKind
	Level     int    // heading level from the tag's numeric suffix (1-6)
	ID        string // paragraph anchor id, e.g. "p7"
	InnerHTML string
	Src, Alt  string // image only
}

// PageFootnote is one raw footnote list item.
type PageFootnote struct {
	ID        string
	InnerHTML string
}

// Page carries the raw per-field values extracted from a talk page.
// The page-fetching collaborator fills this in; the assembler never touches
// the network or the DOM.
type Page struct {
	Title     string
	Speaker   string
	Role      *string
	Thumbnail *string
	Subtitle  *string
	Kicker    *string
	BodyHTML  string
	Elements  []PageElement
	Footnotes []PageFootnote
}

// Assembler builds normalized talk records from raw page extractions.
type Assembler struct {
	normalizer *markup.Normalizer
}

// NewAssembler creates an assembler using the given markup normalizer.
func NewAssembler(normalizer *markup.Normalizer) *Assembler {
	return &Assembler{normalizer: normalizer}
}

// Assemble produces a talk record for the given session and canonical URL.
// A missing title is a hard failure for the talk; empty body or footnotes
// are left to Validate.
func (a *Assembler) Assemble(page Page, session, url string) (*Record, error) {
	if strings.TrimSpace(page.Title) == "" {
		return nil, fmt.Errorf("%w: talk title", ErrStructuralMiss)
	}

	rec := &Record{
		Session:      session,
		URL:          url,
		Title:        page.Title,
		Speaker:      NormalizeSpeaker(page.Speaker),
		SpeakerRole:  NormalizeRole(page.Role),
		Thumbnail:    page.Thumbnail,
		Subtitle:     page.Subtitle,
		Kicker:       page.Kicker,
		Body:         a.assembleBody(page.Elements),
		Sources:      a.assembleSources(page.Footnotes),
		FullMarkdown: a.normalizer.Normalize(page.BodyHTML, false),
		// Persisted documents always carry the talk-resources key, as [] until
		// consolidation fills it.
		Resources: []Resource{},
	}
	return rec, nil
}

// assembleBody walks the body candidates in order, numbering paragraphs
// with a running counter. An explicit "p<N>" id overrides the number and
// advances the counter to at least N; the counter never decreases.
func (a *Assembler) assembleBody(elements []PageElement) Body {
	body := make(Body, 0, len(elements))
	verse := 0

	for _, el := range elements {
		switch el.Kind {
		case ElementHeading:
			body = append(body, Heading{
				Level:    el.Level,
				Markdown: a.normalizer.Normalize(el.InnerHTML, false),
			})
		case ElementParagraph:
			verse++
			thisVerse := verse
			if n, ok := paragraphNumber(el.ID); ok && n != 0 {
				thisVerse = n
				if thisVerse > verse {
					verse = thisVerse
				}
			}
			body = append(body, Paragraph{
				Verse:    thisVerse,
				Markdown: a.normalizer.Normalize(el.InnerHTML, false),
			})
		case ElementImage:
			body = append(body, Image{Src: el.Src, Alt: el.Alt})
		}
	}
	return body
}

// assembleSources numbers footnotes sequentially from 1, independent of any
// source-provided id, and normalizes each in footnote context.
func (a *Assembler) assembleSources(footnotes []PageFootnote) []Source {
	sources := make([]Source, 0, len(footnotes))
	for i, fn := range footnotes {
		sources = append(sources, Source{
			Number:   i + 1,
			ID:       fn.ID,
			Markdown: a.normalizer.Normalize(fn.InnerHTML, true),
		})
	}
	return sources
}

// paragraphNumber extracts N from a "p<N>" anchor id.
func paragraphNumber(id string) (int, bool) {
	if !strings.HasPrefix(id, "p") {
		return 0, false
	}
	n, err := strconv.Atoi(id[1:])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Validate reports data-quality warnings for an assembled record. An empty
// body or footnote list on a content talk is suspicious but never fatal;
// session headers and administrative items are exempt.
func Validate(rec *Record) []string {
	if IsNonContentTitle(rec.Title) {
		return nil
	}

	var warnings []string
	if len(rec.Body) == 0 {
		warnings = append(warnings, fmt.Sprintf("no body found for talk %q at %s", rec.Title, rec.URL))
	}
	if len(rec.Sources) == 0 {
		warnings = append(warnings, fmt.Sprintf("no footnotes found for talk %q at %s", rec.Title, rec.URL))
	}
	return warnings
}
