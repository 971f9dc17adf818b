// Package pipeline orchestrates a conference scrape: list the talks, fetch
// and assemble each one in parallel, and collect the records into the
// conference document.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"sync"

	"conference-archive/pkg/conference"
	"conference-archive/pkg/filter"
	"conference-archive/pkg/talk"
	"conference-archive/pkg/talkpage"
)

// TalkLister produces the conference's table of contents (first step).
type TalkLister interface {
	// ListTalks returns the session names and talk entries for a conference
	ListTalks(ctx context.Context) (*talkpage.TalkList, error)
}

// TalkProcessor turns one table-of-contents entry into an assembled record.
// Handles fetching the page, extracting fields, and assembling the record.
type TalkProcessor interface {
	ProcessTalk(ctx context.Context, item talkpage.TalkItem) (*talk.Record, error)
}

// RecordSaver persists an assembled record to a storage backend, in addition
// to the conference document the pipeline always fills.
type RecordSaver interface {
	SaveTalk(ctx context.Context, conferenceKey string, rec *talk.Record) error
}

// Pipeline runs the scrape: TalkLister → [talk workers] → collector.
type Pipeline struct {
	lister      TalkLister
	processor   TalkProcessor
	savers      []RecordSaver
	filters     []filter.Filter
	workerCount int
}

// NewPipeline creates a pipeline. Savers are optional secondary sinks; the
// conference document passed to Run is always the primary output.
func NewPipeline(lister TalkLister, processor TalkProcessor, workerCount int, savers ...RecordSaver) *Pipeline {
	if workerCount < 1 {
		workerCount = 1
	}
	return &Pipeline{
		lister:      lister,
		processor:   processor,
		savers:      savers,
		workerCount: workerCount,
	}
}

// SetFilters restricts which table-of-contents entries get processed.
func (p *Pipeline) SetFilters(filters ...filter.Filter) {
	p.filters = filters
}

// Run scrapes every talk from the conference list into doc. Worker failures
// on individual talks are logged and skipped; only a failure to list the
// conference aborts the run. The collector loop is the document's single
// writer, so workers never touch doc concurrently.
func (p *Pipeline) Run(ctx context.Context, doc *conference.Data) error {
	list, err := p.lister.ListTalks(ctx)
	if err != nil {
		return fmt.Errorf("list conference talks: %w", err)
	}
	log.Printf("Pipeline: %s has %d sessions, %d talks", doc.Conference, len(list.Sessions), len(list.Talks))

	for _, session := range list.Sessions {
		doc.EnsureSession(session)
	}

	toProcess, err := filter.FilterTalks(ctx, list.Talks, p.filters...)
	if err != nil {
		return fmt.Errorf("filter talks: %w", err)
	}
	if len(toProcess) < len(list.Talks) {
		log.Printf("Pipeline: filters kept %d/%d talks", len(toProcess), len(list.Talks))
	}

	items := make(chan talkpage.TalkItem, len(toProcess))
	records := make(chan *talk.Record, p.workerCount*2)

	var wg sync.WaitGroup
	for i := 0; i < p.workerCount; i++ {
		wg.Add(1)
		go p.runWorker(ctx, i, doc.Conference, items, records, &wg)
	}

	for _, item := range toProcess {
		items <- item
	}
	close(items)

	go func() {
		wg.Wait()
		close(records)
	}()

	collected := 0
	for rec := range records {
		doc.UpsertTalk(rec.Session, rec)
		collected++
	}

	log.Printf("Pipeline: collected %d/%d talks for %s", collected, len(toProcess), doc.Conference)
	return ctx.Err()
}

// runWorker processes table-of-contents entries until the items channel
// drains or the context is cancelled.
func (p *Pipeline) runWorker(ctx context.Context, workerID int, conferenceKey string, items <-chan talkpage.TalkItem, records chan<- *talk.Record, wg *sync.WaitGroup) {
	defer wg.Done()

	for item := range items {
		select {
		case <-ctx.Done():
			log.Printf("Talk worker %d: Context cancelled", workerID)
			return
		default:
		}

		log.Printf("Talk worker %d: Processing %s", workerID, item.URL)
		rec, err := p.processor.ProcessTalk(ctx, item)
		if err != nil {
			log.Printf("Talk worker %d: ERROR processing %s: %v", workerID, item.URL, err)
			continue
		}

		p.saveRecord(ctx, workerID, conferenceKey, rec)

		select {
		case records <- rec:
		case <-ctx.Done():
			log.Printf("Talk worker %d: Context cancelled", workerID)
			return
		}
	}
}

// saveRecord pushes the record to every secondary saver. Saver errors are
// logged but never fail the scrape; the JSON document is the primary output.
func (p *Pipeline) saveRecord(ctx context.Context, workerID int, conferenceKey string, rec *talk.Record) {
	for _, saver := range p.savers {
		if err := saver.SaveTalk(ctx, conferenceKey, rec); err != nil {
			log.Printf("Talk worker %d: ERROR saving %s: %v", workerID, rec.URL, err)
		}
	}
}
