package talkpage

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"conference-archive/pkg/conference"
	"conference-archive/pkg/talk"
)

// TalkItem is one talk entry from a conference table of contents, carrying
// the session it was listed under.
type TalkItem struct {
	URL     string
	Slug    string
	Session string
	Title   string
	Speaker string
}

// TalkList is the parsed conference table of contents: the session names in
// page order, and the talks under them.
type TalkList struct {
	Sessions []string
	Talks    []TalkItem
}

// SessionFor returns the session a talk slug was listed under.
func (l *TalkList) SessionFor(slug string) (string, bool) {
	for _, item := range l.Talks {
		if item.Slug == slug {
			return item.Session, true
		}
	}
	return "", false
}

// ExtractTalkList walks the conference page's doc-map list. List items whose
// link ends in a talk slug become talks under the most recent session entry;
// everything else opens a new session. Talks listed before any session land
// under "Unknown Session".
func ExtractTalkList(htmlContent string) (*TalkList, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("parse conference page: %w", err)
	}

	items := doc.Find("ul.doc-map > li")
	if items.Length() == 0 {
		return nil, fmt.Errorf("%w: conference doc-map", talk.ErrStructuralMiss)
	}

	list := &TalkList{}
	currentSession := ""

	items.Each(func(_ int, li *goquery.Selection) {
		href, ok := li.Find("a").First().Attr("href")
		if !ok {
			return
		}
		url := href
		if !strings.HasPrefix(url, "http") {
			url = conference.SiteOrigin + url
		}

		slug := lastPathSegment(url)
		if !conference.IsTalkSlug(slug) {
			if name := strings.TrimSpace(li.Find("p.title").First().Text()); name != "" {
				currentSession = name
			} else {
				currentSession = "Unknown Session"
			}
			list.Sessions = append(list.Sessions, currentSession)
			return
		}

		session := currentSession
		if session == "" {
			session = "Unknown Session"
		}
		list.Talks = append(list.Talks, TalkItem{
			URL:     url,
			Slug:    slug,
			Session: session,
			Title:   strings.TrimSpace(li.Find("p.title").First().Text()),
			Speaker: talk.NormalizeSpeaker(strings.TrimSpace(li.Find("p.author").First().Text())),
		})
	})

	return list, nil
}

// lastPathSegment returns the final path segment of a URL with any query or
// fragment stripped.
func lastPathSegment(url string) string {
	for _, sep := range []string{"?", "#"} {
		if i := strings.Index(url, sep); i >= 0 {
			url = url[:i]
		}
	}
	url = strings.TrimRight(url, "/")
	if i := strings.LastIndexByte(url, '/'); i >= 0 {
		return url[i+1:]
	}
	return url
}
