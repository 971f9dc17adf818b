// Command resourceindex builds and merges conference_resources.json from
// conference documents: Gospel Library URLs always, Church News summaries
// when -feed is set, and manual per-talk resources via -talk.
package main

import (
	"errors"
	"flag"
	"log"
	"strings"

	"conference-archive/pkg/conference"
	"conference-archive/pkg/newsroom"
	"conference-archive/pkg/resourceindex"
	"conference-archive/pkg/talk"
)

func main() {
	var (
		dir   = flag.String("dir", ".", "Directory holding conference documents and the resource index")
		year  = flag.String("year", "", "Conference year, e.g. 2023")
		month = flag.String("month", "", "Conference month (Apr/April or Oct/October)")

		feed    = flag.Bool("feed", false, "Look up Church News summary articles for each talk")
		feedURL = flag.String("feed-url", "", "Override the Church News feed URL")

		talkArg    = flag.String("talk", "", "Talk URL or talk ID (<year>/<mm>/<slug>) for a single-talk resource")
		manualName = flag.String("name", "", "Resource name to set on the -talk entry")
		manualURL  = flag.String("url", "", "Resource URL to set on the -talk entry")
		byuHash    = flag.String("byu", "", "BYU citation-index talk hash to link on the -talk entry")
	)
	flag.Parse()

	if *year == "" || *month == "" {
		log.Fatal("Both -year and -month are required")
	}
	monthCode, err := conference.MonthCode(*month)
	if err != nil {
		log.Fatalf("Invalid month: %v", err)
	}

	store := conference.NewStore(*dir)
	doc, found, err := store.Load(*year, *month)
	if err != nil {
		log.Fatalf("Failed to load conference document: %v", err)
	}
	if !found {
		log.Fatalf("No conference document for %s %s in %s (scrape it first)", *month, *year, *dir)
	}

	index, err := store.LoadResourceIndex()
	if err != nil {
		log.Fatalf("Failed to load resource index: %v", err)
	}

	index = resourceindex.Merge(index, talkRefs(doc), doc.Conference)

	if *feed {
		enrichFromNewsFeed(index, doc, *feedURL)
	}

	if *talkArg != "" {
		talkID := resolveTalkID(*talkArg)
		if *manualName != "" && *manualURL != "" {
			index.SetResource(doc.Conference, talkID, *manualName, *manualURL)
			log.Printf("Set %q on %s", *manualName, talkID)
		}
		if *byuHash != "" {
			confHash, err := conference.Hash(*year, monthCode)
			if err != nil {
				log.Fatalf("Failed to compute conference hash: %v", err)
			}
			index.SetResource(doc.Conference, talkID, "BYU Citation Index", conference.ByuCitationURL(*byuHash, confHash))
			log.Printf("Set BYU citation link on %s", talkID)
		}
	}

	if err := store.SaveResourceIndex(index); err != nil {
		log.Fatalf("Failed to save resource index: %v", err)
	}
	log.Printf("Saved %s", conference.ResourceIndexFile)
}

// talkRefs collects the (talkID, canonical URL) pairs the merge needs.
func talkRefs(doc *conference.Data) []resourceindex.TalkRef {
	var refs []resourceindex.TalkRef
	for _, rec := range doc.Talks() {
		id, err := conference.TalkID(rec.URL)
		if err != nil {
			log.Printf("WARNING: skipping %s: %v", rec.URL, err)
			continue
		}
		refs = append(refs, resourceindex.TalkRef{TalkID: id, CanonicalURL: rec.URL})
	}
	return refs
}

// enrichFromNewsFeed adds a "Church News Summary" resource for every content
// talk the feed covers. Misses are expected and only logged.
func enrichFromNewsFeed(index resourceindex.Index, doc *conference.Data, feedURL string) {
	lookup := newsroom.NewLookup(feedURL)

	for _, rec := range doc.Talks() {
		if talk.IsNonContentTitle(rec.Title) {
			continue
		}
		id, err := conference.TalkID(rec.URL)
		if err != nil {
			continue
		}

		summaryURL, err := lookup.FindSummaryURL(rec.Title, rec.Speaker)
		if errors.Is(err, newsroom.ErrNotFound) {
			log.Printf("No news summary for %q", rec.Title)
			continue
		}
		if err != nil {
			log.Printf("WARNING: news lookup failed for %q: %v", rec.Title, err)
			continue
		}

		index.SetResource(doc.Conference, id, "Church News Summary", summaryURL)
		log.Printf("Linked news summary for %q", rec.Title)
	}
}

// resolveTalkID accepts either a canonical talk URL or a bare talk ID.
func resolveTalkID(arg string) string {
	if strings.HasPrefix(arg, "http") {
		id, err := conference.TalkID(arg)
		if err != nil {
			log.Fatalf("Invalid talk URL: %v", err)
		}
		return id
	}
	return arg
}
