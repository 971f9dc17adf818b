package replication

import (
	"context"
	"crypto/md5"
	"database/sql"
	"fmt"
	"log"
	"sync"

	"conference-archive/pkg/db"
	"conference-archive/pkg/domain"
)

// Config wires the replication dependencies.
type Config struct {
	Mongo    *db.Client
	Postgres db.DBProvider
}

// Replicator copies the talk archive from MongoDB to Postgres. One-shot,
// copy-everything flow; talks already present in Postgres are skipped.
type Replicator struct {
	mongo *db.Client
	pg    db.DBProvider
}

func NewReplicator(cfg Config) (*Replicator, error) {
	if cfg.Mongo == nil {
		return nil, fmt.Errorf("mongo client is required")
	}
	if cfg.Postgres == nil {
		return nil, fmt.Errorf("postgres client is required")
	}
	return &Replicator{
		mongo: cfg.Mongo,
		pg:    cfg.Postgres,
	}, nil
}

// ReplicateTalksMongoToPostgres reads every talk document from Mongo and
// inserts the ones missing from the Postgres `talk` table. Talks are
// processed in batches so existence checks stay bounded.
func (r *Replicator) ReplicateTalksMongoToPostgres(ctx context.Context) error {
	if err := r.ensureTalkSchema(ctx); err != nil {
		return err
	}

	talks, err := r.mongo.GetAllTalks(ctx)
	if err != nil {
		return err
	}

	log.Printf("Loaded %d talks from Mongo, processing in batches...", len(talks))

	totalProcessed, totalInserted, err := r.processBatches(ctx, talks)
	if err != nil {
		return err
	}

	log.Printf("Replication complete: processed %d talks, inserted %d new talks", totalProcessed, totalInserted)
	return nil
}

// processBatches fans batches out to a small worker pool and returns total
// processed and inserted counts.
func (r *Replicator) processBatches(ctx context.Context, talks []domain.TalkDocument) (int, int, error) {
	const batchSize = 100
	const numWorkers = 5

	type batchJob struct {
		batch      []domain.TalkDocument
		start, end int
	}

	type batchResult struct {
		processed int
		inserted  int
		err       error
	}

	numBatches := (len(talks) + batchSize - 1) / batchSize
	jobs := make(chan batchJob, numBatches)
	results := make(chan batchResult, numBatches)

	for start := 0; start < len(talks); start += batchSize {
		end := start + batchSize
		if end > len(talks) {
			end = len(talks)
		}
		jobs <- batchJob{batch: talks[start:end], start: start, end: end}
	}
	close(jobs)

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				inserted, err := r.processBatch(ctx, job.batch, job.start, job.end)
				results <- batchResult{
					processed: len(job.batch),
					inserted:  inserted,
					err:       err,
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	totalProcessed := 0
	totalInserted := 0
	for result := range results {
		if result.err != nil {
			return totalProcessed, totalInserted, result.err
		}
		totalProcessed += result.processed
		totalInserted += result.inserted
	}

	return totalProcessed, totalInserted, nil
}

// processBatch checks which URLs already exist and inserts the rest.
func (r *Replicator) processBatch(ctx context.Context, batch []domain.TalkDocument, start, end int) (int, error) {
	log.Printf("Processing batch [%d:%d] (%d talks)...", start, end, len(batch))

	existing, err := r.checkURLsExistInPostgres(ctx, batch)
	if err != nil {
		return 0, fmt.Errorf("check existing URLs for batch [%d:%d]: %w", start, end, err)
	}

	toInsert := filterNewTalksByURL(batch, existing)
	if len(toInsert) == 0 {
		return 0, nil
	}

	if err := r.insertTalksTx(ctx, toInsert); err != nil {
		return 0, fmt.Errorf("insert batch [%d:%d]: %w", start, end, err)
	}
	log.Printf("  Inserted %d talks", len(toInsert))

	return len(toInsert), nil
}

func (r *Replicator) ensureTalkSchema(ctx context.Context) error {
	if r.pg.DB() == nil {
		return fmt.Errorf("postgres DB not connected")
	}

	// url is the primary key, which also gives us uniqueness. crawled_at
	// defaults to now() so older Mongo docs missing it can still be inserted.
	const ddl = `
CREATE TABLE IF NOT EXISTS talk (
  url TEXT PRIMARY KEY,
  title TEXT NOT NULL DEFAULT '',
  speaker TEXT NOT NULL DEFAULT '',
  speaker_role TEXT NOT NULL DEFAULT '',
  session TEXT NOT NULL DEFAULT '',
  conference TEXT NOT NULL DEFAULT '',
  full_markdown TEXT NOT NULL DEFAULT '',
  content_hash TEXT NOT NULL DEFAULT '',
  crawled_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`

	if _, err := r.pg.DB().ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create talk table: %w", err)
	}
	return nil
}

// checkURLsExistInPostgres checks which URLs from the given batch already
// exist, keeping memory bounded to the batch.
func (r *Replicator) checkURLsExistInPostgres(ctx context.Context, batch []domain.TalkDocument) (map[string]bool, error) {
	if r.pg.DB() == nil {
		return nil, fmt.Errorf("postgres DB not connected")
	}

	urls := make([]interface{}, 0, len(batch))
	for _, t := range batch {
		if t.URL != "" {
			urls = append(urls, t.URL)
		}
	}
	if len(urls) == 0 {
		return map[string]bool{}, nil
	}

	query, args := buildURLInQuery(urls)

	rows, err := r.pg.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query existing urls: %w", err)
	}
	defer rows.Close()

	set := make(map[string]bool)
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, fmt.Errorf("scan url: %w", err)
		}
		if url != "" {
			set[url] = true
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return set, nil
}

// buildURLInQuery builds a SELECT with an IN clause. The leading comment
// makes each batch's query text unique so pgx does not share a prepared
// statement across worker goroutines.
func buildURLInQuery(urls []interface{}) (string, []interface{}) {
	var hashSuffix string
	if urlStr, ok := urls[0].(string); ok {
		hash := md5.Sum([]byte(urlStr))
		hashSuffix = fmt.Sprintf("%x", hash[:4])
	}

	query := fmt.Sprintf(`/* q_%d_%s */ SELECT url FROM talk WHERE url IN (`, len(urls), hashSuffix)
	args := make([]interface{}, len(urls))
	for i, url := range urls {
		if i > 0 {
			query += ", "
		}
		query += fmt.Sprintf("$%d", i+1)
		args[i] = url
	}
	query += ")"
	return query, args
}

func filterNewTalksByURL(all []domain.TalkDocument, existing map[string]bool) []domain.TalkDocument {
	out := make([]domain.TalkDocument, 0, len(all))
	for _, t := range all {
		if t.URL == "" || existing[t.URL] {
			continue
		}
		out = append(out, t)
	}
	return out
}

// insertTalksTx inserts a batch of talks within a transaction.
func (r *Replicator) insertTalksTx(ctx context.Context, batch []domain.TalkDocument) error {
	tx, err := r.pg.DB().BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// content_hash lets a later pass detect changed talks without comparing
	// the full markdown.
	const insertQuery = `
INSERT INTO talk (url, title, speaker, speaker_role, session, conference, full_markdown, content_hash, crawled_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (url) DO NOTHING`

	stmt, err := tx.PrepareContext(ctx, insertQuery)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range batch {
		if t.URL == "" {
			continue
		}
		contentHash := fmt.Sprintf("%x", md5.Sum([]byte(t.FullMarkdown)))
		if _, err := stmt.ExecContext(ctx, t.URL, t.Title, t.Speaker, t.SpeakerRole, t.Session, t.Conference, t.FullMarkdown, contentHash, t.CrawledAt); err != nil {
			return fmt.Errorf("insert talk url=%q: %w", t.URL, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
