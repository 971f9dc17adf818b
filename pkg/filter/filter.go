// Package filter decides which table-of-contents talk entries a scrape
// should process.
package filter

import (
	"context"
	"fmt"

	"conference-archive/pkg/talkpage"
)

// Filter defines the interface for talk entry filtering
type Filter interface {
	ShouldKeep(ctx context.Context, item talkpage.TalkItem) (bool, error)
}

// FilterTalks applies all filters to a list of talk entries
func FilterTalks(ctx context.Context, items []talkpage.TalkItem, filters ...Filter) ([]talkpage.TalkItem, error) {
	filtered := make([]talkpage.TalkItem, 0, len(items))

	for _, item := range items {
		keep := true
		for _, f := range filters {
			shouldKeep, err := f.ShouldKeep(ctx, item)
			if err != nil {
				return nil, fmt.Errorf("filter error for talk %s: %w", item.URL, err)
			}
			if !shouldKeep {
				keep = false
				break
			}
		}
		if keep {
			filtered = append(filtered, item)
		}
	}

	return filtered, nil
}

// AlreadyArchivedFilter drops talks whose canonical URL is already in the
// archive, so re-runs only fetch what is missing.
type AlreadyArchivedFilter struct {
	archivedURLs map[string]bool
}

// NewAlreadyArchivedFilter creates a filter over a set of archived URLs
// (typically db.Client.GetAllURLs output).
func NewAlreadyArchivedFilter(archivedURLs map[string]bool) *AlreadyArchivedFilter {
	return &AlreadyArchivedFilter{
		archivedURLs: archivedURLs,
	}
}

// ShouldKeep returns false if the talk URL is already archived
func (f *AlreadyArchivedFilter) ShouldKeep(ctx context.Context, item talkpage.TalkItem) (bool, error) {
	return !f.archivedURLs[item.URL], nil
}

// SessionFilter keeps only talks listed under the given session.
type SessionFilter struct {
	session string
}

// NewSessionFilter creates a filter for one session name.
func NewSessionFilter(session string) *SessionFilter {
	return &SessionFilter{session: session}
}

// ShouldKeep returns true if the talk belongs to the configured session
func (f *SessionFilter) ShouldKeep(ctx context.Context, item talkpage.TalkItem) (bool, error) {
	return item.Session == f.session, nil
}
