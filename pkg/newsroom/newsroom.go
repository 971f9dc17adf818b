// Package newsroom looks up Church News conference-summary articles for
// talks by scanning the newsroom RSS feed.
package newsroom

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/mmcdole/gofeed"
)

// DefaultFeedURL is the Church News feed scanned for talk summaries.
const DefaultFeedURL = "https://www.thechurchnews.com/arc/outboundfeeds/rss/"

// ErrNotFound indicates the feed carries no summary for the talk.
var ErrNotFound = errors.New("no summary article found")

// Lookup scans a news feed for per-talk summary articles.
type Lookup struct {
	feedParser *gofeed.Parser
	feedURL    string
}

// NewLookup creates a feed lookup. An empty feedURL selects the Church News
// default.
func NewLookup(feedURL string) *Lookup {
	if feedURL == "" {
		feedURL = DefaultFeedURL
	}
	return &Lookup{
		feedParser: gofeed.NewParser(),
		feedURL:    feedURL,
	}
}

// FindSummaryURL returns the link of the feed item covering the given talk.
// An item matches when its title or description contains the talk title;
// ties between multiple matches go to the item that also names the
// speaker's last name.
func (l *Lookup) FindSummaryURL(talkTitle, speaker string) (string, error) {
	feed, err := l.feedParser.ParseURL(l.feedURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse news feed: %w", err)
	}
	if feed == nil || len(feed.Items) == 0 {
		return "", fmt.Errorf("news feed contains no items")
	}

	title := foldForMatch(talkTitle)
	if title == "" {
		return "", ErrNotFound
	}
	lastName := speakerLastName(speaker)

	var fallback string
	for _, item := range feed.Items {
		if item.Link == "" {
			continue
		}
		haystack := foldForMatch(item.Title + " " + item.Description)
		if !strings.Contains(haystack, title) {
			continue
		}
		if lastName != "" && strings.Contains(haystack, lastName) {
			return item.Link, nil
		}
		if fallback == "" {
			fallback = item.Link
		}
	}

	if fallback != "" {
		return fallback, nil
	}
	return "", fmt.Errorf("%w: %q", ErrNotFound, talkTitle)
}

var matchJunk = regexp.MustCompile(`[^a-z0-9 ]+`)

// foldForMatch lowercases and strips punctuation so quote styles and
// trailing exclamation marks never break a title match.
func foldForMatch(s string) string {
	s = matchJunk.ReplaceAllString(strings.ToLower(s), " ")
	return strings.Join(strings.Fields(s), " ")
}

func speakerLastName(speaker string) string {
	fields := strings.Fields(foldForMatch(speaker))
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
