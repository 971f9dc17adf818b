package conference

import (
	"conference-archive/pkg/talk"
)

// Data is the per-conference archive document persisted as
// "<year>-<month>.json". Session names map to the talks given in them.
type Data struct {
	Conference string                    `json:"conference"`
	Year       string                    `json:"year"`
	Month      string                    `json:"month"`
	Sessions   map[string][]*talk.Record `json:"sessions"`
}

// NewData creates an empty conference document for the given year and month.
func NewData(year, month string) *Data {
	return &Data{
		Conference: Key(year, month),
		Year:       year,
		Month:      capitalize(month),
		Sessions:   map[string][]*talk.Record{},
	}
}

// EnsureSession registers a session name even before any talk lands in it,
// so session headers from the table of contents survive into the document.
func (d *Data) EnsureSession(name string) {
	if d.Sessions == nil {
		d.Sessions = map[string][]*talk.Record{}
	}
	if _, ok := d.Sessions[name]; !ok {
		d.Sessions[name] = []*talk.Record{}
	}
}

// UpsertTalk adds a talk to a session, replacing any existing talk with the
// same title. It reports whether an existing talk was replaced.
func (d *Data) UpsertTalk(session string, rec *talk.Record) bool {
	if d.Sessions == nil {
		d.Sessions = map[string][]*talk.Record{}
	}
	talks := d.Sessions[session]
	for i, existing := range talks {
		if existing.Title == rec.Title {
			talks[i] = rec
			return true
		}
	}
	d.Sessions[session] = append(talks, rec)
	return false
}

// Talks returns every talk in the document, session by session.
func (d *Data) Talks() []*talk.Record {
	var all []*talk.Record
	for _, talks := range d.Sessions {
		all = append(all, talks...)
	}
	return all
}

// Consolidate stamps the derived resources onto every talk: the canonical
// Gospel Library URL and the Saints AI study guide. Resources set earlier
// (YouTube, BYU citation index, Church News) are preserved per name.
func (d *Data) Consolidate() {
	for _, talks := range d.Sessions {
		for _, rec := range talks {
			if rec.Resources == nil {
				rec.Resources = []talk.Resource{}
			}
			if rec.URL == "" {
				continue
			}
			rec.AddResource("Gospel Library", rec.URL)
			rec.AddResource("Saints AI Study Guide", SaintsAIURL(rec.URL))
		}
	}
}
