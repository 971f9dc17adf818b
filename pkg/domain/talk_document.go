package domain

import "time"

// TalkDocument is the flat per-talk row stored in the database backends.
// The full structured record lives in the conference JSON documents; this
// carries the searchable fields plus the rendered markdown.
type TalkDocument struct {
	URL          string    `bson:"url"`
	Title        string    `bson:"title"`
	Speaker      string    `bson:"speaker"`
	SpeakerRole  string    `bson:"speaker_role,omitempty"`
	Session      string    `bson:"session"`
	Conference   string    `bson:"conference"`
	FullMarkdown string    `bson:"full_markdown"`
	CrawledAt    time.Time `bson:"crawled_at"`
}
