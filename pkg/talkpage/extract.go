// Package talkpage extracts raw talk fields from Gospel Library pages.
// It only pulls field values out of the DOM; all normalization happens in
// the talk assembler.
package talkpage

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"conference-archive/pkg/talk"
)

// thumbnailSelectors is the fallback cascade for the talk thumbnail: the
// video poster image first, then header images, then any Gospel Library
// media image, then whatever image comes first.
var thumbnailSelectors = []string{
	`img[class*="posterFallback"]`,
	`header img, .article-header img`,
	`img[src*="churchofjesuschrist.org/imgs"]`,
	`img`,
}

// Extract parses a talk page and returns the raw per-field values for the
// assembler. A page without a recognizable body container is a structural
// miss for this one talk.
func Extract(htmlContent string) (*talk.Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("parse talk page: %w", err)
	}

	page := &talk.Page{
		Title:     extractTitle(doc, htmlContent),
		Speaker:   strings.TrimSpace(doc.Find(".author-name").First().Text()),
		Role:      optionalText(doc, ".author-role"),
		Thumbnail: extractThumbnail(doc),
		Subtitle:  optionalText(doc, ".subtitle"),
		Kicker:    extractKicker(doc),
	}

	body := doc.Find(".body-block").First()
	if body.Length() == 0 {
		body = doc.Find(".body-content").First()
	}
	if body.Length() == 0 {
		return nil, fmt.Errorf("%w: body container", talk.ErrStructuralMiss)
	}

	page.BodyHTML = innerHTML(body)
	page.Elements = extractBodyElements(body)
	page.Footnotes = extractFootnotes(doc)

	return page, nil
}

// extractTitle takes the first h1, falling back to readability's title
// detection for pages whose heading markup differs.
func extractTitle(doc *goquery.Document, htmlContent string) string {
	if title := strings.TrimSpace(doc.Find("h1").First().Text()); title != "" {
		return title
	}

	article, err := readability.FromReader(strings.NewReader(htmlContent), nil)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(article.Title)
}

func extractThumbnail(doc *goquery.Document) *string {
	for _, selector := range thumbnailSelectors {
		if src, ok := doc.Find(selector).First().Attr("src"); ok && src != "" {
			return &src
		}
	}
	return nil
}

func extractKicker(doc *goquery.Document) *string {
	if kicker := optionalText(doc, ".kicker"); kicker != nil {
		return kicker
	}
	return optionalText(doc, ".body-block p.intro, .body-content p.intro")
}

// optionalText returns the trimmed text of the first match, or nil when the
// selector finds nothing.
func optionalText(doc *goquery.Document, selector string) *string {
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return nil
	}
	text := strings.TrimSpace(sel.Text())
	return &text
}

// extractBodyElements walks headings, paragraphs, and figures in document
// order inside the body container.
func extractBodyElements(body *goquery.Selection) []talk.PageElement {
	var elements []talk.PageElement

	body.Find("h1, h2, h3, h4, h5, h6, p, figure").Each(func(_ int, s *goquery.Selection) {
		tag := goquery.NodeName(s)
		switch {
		case len(tag) == 2 && tag[0] == 'h':
			level, err := strconv.Atoi(tag[1:])
			if err != nil || level < 1 || level > 6 {
				return
			}
			elements = append(elements, talk.PageElement{
				Kind:      talk.ElementHeading,
				Level:     level,
				InnerHTML: innerHTML(s),
			})
		case tag == "p":
			id, _ := s.Attr("id")
			elements = append(elements, talk.PageElement{
				Kind:      talk.ElementParagraph,
				ID:        id,
				InnerHTML: innerHTML(s),
			})
		case tag == "figure":
			img := s.Find("img").First()
			if img.Length() == 0 {
				return
			}
			src, _ := img.Attr("src")
			alt, _ := img.Attr("alt")
			elements = append(elements, talk.PageElement{
				Kind: talk.ElementImage,
				Src:  src,
				Alt:  alt,
			})
		}
	})

	return elements
}

// extractFootnotes pulls the notes list items; talks without a notes
// section yield an empty list, which the assembler's validation reports.
func extractFootnotes(doc *goquery.Document) []talk.PageFootnote {
	var footnotes []talk.PageFootnote

	doc.Find(".notes ol li").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		footnotes = append(footnotes, talk.PageFootnote{
			ID:        id,
			InnerHTML: innerHTML(s),
		})
	})

	return footnotes
}

func innerHTML(s *goquery.Selection) string {
	html, err := s.Html()
	if err != nil {
		return ""
	}
	return html
}
