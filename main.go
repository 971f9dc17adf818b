package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"conference-archive/pkg/conference"
	"conference-archive/pkg/db"
	"conference-archive/pkg/filter"
	"conference-archive/pkg/markup"
	"conference-archive/pkg/pipeline"
	"conference-archive/pkg/resourceindex"
	"conference-archive/pkg/scripture"
	"conference-archive/pkg/talk"
	"conference-archive/pkg/talkpage"
)

func main() {
	var (
		workers = flag.Int("workers", 8, "Number of parallel talk workers")
		outDir  = flag.String("out", ".", "Directory for conference JSON documents")

		mongoURI   = flag.String("mongo-uri", "", "Optional MongoDB connection string to also archive talks in Mongo")
		dbName     = flag.String("db", "conference", "MongoDB database name")
		collection = flag.String("collection", "talks", "MongoDB collection name")

		skipExisting = flag.Bool("skip-existing", false, "Skip talks already archived in Mongo (requires -mongo-uri)")
	)
	flag.Parse()
	args := flag.Args()

	ctx := context.Background()

	resolver := scripture.NewResolver(scripture.DefaultBooks())
	normalizer := markup.NewNormalizer(resolver, "")
	assembler := talk.NewAssembler(normalizer)
	store := conference.NewStore(*outDir)

	var savers []pipeline.RecordSaver
	var filters []filter.Filter
	if *mongoURI != "" {
		dbClient := db.NewClient(*mongoURI, *dbName, *collection)
		if err := dbClient.Connect(ctx); err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer dbClient.Close(ctx)
		savers = append(savers, pipeline.NewDBRecordSaver(dbClient))

		if *skipExisting {
			archived, err := dbClient.GetAllURLs(ctx)
			if err != nil {
				log.Fatalf("Failed to load archived URLs: %v", err)
			}
			filters = append(filters, filter.NewAlreadyArchivedFilter(archived))
		}
	} else if *skipExisting {
		log.Fatal("-skip-existing requires -mongo-uri")
	}

	switch {
	case len(args) == 2:
		if err := scrapeConference(ctx, store, assembler, args[0], args[1], *workers, savers, filters); err != nil {
			log.Fatalf("Conference scrape failed: %v", err)
		}
	case len(args) == 1 && strings.HasPrefix(args[0], "https://"):
		if err := scrapeSingleTalk(ctx, store, assembler, args[0], savers); err != nil {
			log.Fatalf("Talk scrape failed: %v", err)
		}
	default:
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  conference-archive [flags] <year> <month>   scrape a whole conference (month: Apr/April or Oct/October)")
		fmt.Fprintln(os.Stderr, "  conference-archive [flags] <talk-url>       scrape one talk into its conference document")
		flag.PrintDefaults()
		os.Exit(2)
	}
}

// scrapeConference scrapes every talk of a conference into its JSON document
// and records the talks in the resource index.
func scrapeConference(ctx context.Context, store *conference.Store, assembler *talk.Assembler, year, month string, workers int, savers []pipeline.RecordSaver, filters []filter.Filter) error {
	monthCode, err := conference.MonthCode(month)
	if err != nil {
		return err
	}

	doc, found, err := store.Load(year, month)
	if err != nil {
		return err
	}
	if !found {
		doc = conference.NewData(year, month)
	}

	lister := pipeline.NewHTTPTalkLister(conference.PageURL(year, monthCode))
	processor := pipeline.NewHTTPTalkProcessor(assembler)

	p := pipeline.NewPipeline(lister, processor, workers, savers...)
	p.SetFilters(filters...)
	if err := p.Run(ctx, doc); err != nil {
		return err
	}

	doc.Consolidate()
	if err := store.Save(doc); err != nil {
		return err
	}
	log.Printf("Saved conference document %s", conference.FileName(year, month))

	return recordTalksInIndex(store, doc)
}

// scrapeSingleTalk scrapes one talk and upserts it into the conference
// document it belongs to, creating the document if needed.
func scrapeSingleTalk(ctx context.Context, store *conference.Store, assembler *talk.Assembler, talkURL string, savers []pipeline.RecordSaver) error {
	year, monthCode, slug, err := conference.ParseTalkURL(talkURL)
	if err != nil {
		return err
	}
	month, err := conference.MonthName(monthCode)
	if err != nil {
		return err
	}

	doc, found, err := store.Load(year, month)
	if err != nil {
		return err
	}
	if !found {
		doc = conference.NewData(year, month)
	}

	// The talk page itself does not name its session; the conference table
	// of contents does.
	session := "Unknown Session"
	lister := pipeline.NewHTTPTalkLister(conference.PageURL(year, monthCode))
	if list, err := lister.ListTalks(ctx); err != nil {
		log.Printf("WARNING: could not list conference sessions: %v", err)
	} else if s, ok := list.SessionFor(slug); ok {
		session = s
	}

	processor := pipeline.NewHTTPTalkProcessor(assembler)
	rec, err := processor.ProcessTalk(ctx, talkpage.TalkItem{URL: talkURL, Slug: slug, Session: session})
	if err != nil {
		return err
	}

	for _, saver := range savers {
		if err := saver.SaveTalk(ctx, doc.Conference, rec); err != nil {
			log.Printf("WARNING: could not archive talk %s: %v", rec.URL, err)
		}
	}

	if replaced := doc.UpsertTalk(session, rec); replaced {
		log.Printf("Replaced existing talk %q in %s", rec.Title, doc.Conference)
	}
	doc.Consolidate()
	if err := store.Save(doc); err != nil {
		return err
	}
	log.Printf("Saved conference document %s", conference.FileName(year, month))

	return recordTalksInIndex(store, doc)
}

// recordTalksInIndex merges the document's talks into the resource index
// (Gospel Library URLs only; enrichment lives in cmd/resourceindex).
func recordTalksInIndex(store *conference.Store, doc *conference.Data) error {
	index, err := store.LoadResourceIndex()
	if err != nil {
		return err
	}

	var refs []resourceindex.TalkRef
	for _, rec := range doc.Talks() {
		id, err := conference.TalkID(rec.URL)
		if err != nil {
			log.Printf("WARNING: skipping resource index entry for %s: %v", rec.URL, err)
			continue
		}
		refs = append(refs, resourceindex.TalkRef{TalkID: id, CanonicalURL: rec.URL})
	}

	index = resourceindex.Merge(index, refs, doc.Conference)
	if err := store.SaveResourceIndex(index); err != nil {
		return err
	}
	log.Printf("Updated %s with %d talks", conference.ResourceIndexFile, len(refs))
	return nil
}
