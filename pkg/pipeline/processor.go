package pipeline

import (
	"context"
	"fmt"
	"log"
	"time"

	"conference-archive/pkg/db"
	"conference-archive/pkg/domain"
	"conference-archive/pkg/httpclient"
	"conference-archive/pkg/talk"
	"conference-archive/pkg/talkpage"
)

// HTTPTalkLister implements TalkLister by fetching the conference page and
// parsing its table of contents.
type HTTPTalkLister struct {
	client *httpclient.HTTPClient
	url    string
}

// NewHTTPTalkLister creates a lister for the given conference page URL.
func NewHTTPTalkLister(conferenceURL string) *HTTPTalkLister {
	return &HTTPTalkLister{
		client: httpclient.NewClient(httpclient.BrowserClient),
		url:    conferenceURL,
	}
}

func (l *HTTPTalkLister) ListTalks(ctx context.Context) (*talkpage.TalkList, error) {
	htmlContent, err := l.client.FetchHTML(ctx, l.url)
	if err != nil {
		return nil, fmt.Errorf("fetch conference page: %w", err)
	}
	return talkpage.ExtractTalkList(htmlContent)
}

// HTTPTalkProcessor implements TalkProcessor by fetching the talk page,
// extracting its fields, and running the assembler.
type HTTPTalkProcessor struct {
	client    *httpclient.HTTPClient
	assembler *talk.Assembler
}

// NewHTTPTalkProcessor creates a processor using the given assembler.
func NewHTTPTalkProcessor(assembler *talk.Assembler) *HTTPTalkProcessor {
	return &HTTPTalkProcessor{
		client:    httpclient.NewClient(httpclient.BrowserClient),
		assembler: assembler,
	}
}

func (p *HTTPTalkProcessor) ProcessTalk(ctx context.Context, item talkpage.TalkItem) (*talk.Record, error) {
	htmlContent, err := p.client.FetchHTML(ctx, item.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch talk page: %w", err)
	}

	page, err := talkpage.Extract(htmlContent)
	if err != nil {
		return nil, fmt.Errorf("failed to extract talk page: %w", err)
	}

	rec, err := p.assembler.Assemble(*page, item.Session, item.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble talk: %w", err)
	}

	for _, warning := range talk.Validate(rec) {
		log.Printf("WARNING: %s", warning)
	}
	return rec, nil
}

// DBRecordSaver implements RecordSaver by upserting flat talk documents into
// MongoDB.
type DBRecordSaver struct {
	dbClient *db.Client
}

// NewDBRecordSaver creates a new database record saver
func NewDBRecordSaver(dbClient *db.Client) *DBRecordSaver {
	return &DBRecordSaver{
		dbClient: dbClient,
	}
}

// SaveTalk flattens the record into a TalkDocument and upserts it by URL.
func (s *DBRecordSaver) SaveTalk(ctx context.Context, conferenceKey string, rec *talk.Record) error {
	doc := &domain.TalkDocument{
		URL:          rec.URL,
		Title:        rec.Title,
		Speaker:      rec.Speaker,
		Session:      rec.Session,
		Conference:   conferenceKey,
		FullMarkdown: rec.FullMarkdown,
		CrawledAt:    time.Now(),
	}
	if rec.SpeakerRole != nil {
		doc.SpeakerRole = *rec.SpeakerRole
	}
	return s.dbClient.SaveTalk(ctx, doc)
}
