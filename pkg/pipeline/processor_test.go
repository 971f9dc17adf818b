package pipeline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"conference-archive/pkg/markup"
	"conference-archive/pkg/scripture"
	"conference-archive/pkg/talk"
	"conference-archive/pkg/talkpage"
)

const testTalkHTML = `<html><body>
<h1>Think Celestial!</h1>
<p class="author-name">By President Russell M. Nelson</p>
<p class="author-role">President of the Church</p>
<div class="body-block">
  <p id="p1">My dear brothers and sisters, consider <em>eternity</em>.</p>
  <p id="p2">See <a href="/study/scriptures/bofm/3-ne/11?lang=eng&amp;id=p29">3 Nephi 11:29</a>.</p>
</div>
<div class="notes"><ol><li id="note1">Doctrine and Covenants 14:7.</li></ol></div>
</body></html>`

func newTestProcessor() *HTTPTalkProcessor {
	resolver := scripture.NewResolver(scripture.DefaultBooks())
	normalizer := markup.NewNormalizer(resolver, "")
	return NewHTTPTalkProcessor(talk.NewAssembler(normalizer))
}

func TestHTTPTalkProcessorProcessTalk(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testTalkHTML))
	}))
	defer server.Close()

	processor := newTestProcessor()
	item := talkpage.TalkItem{URL: server.URL, Session: "Sunday Afternoon Session"}

	rec, err := processor.ProcessTalk(context.Background(), item)
	if err != nil {
		t.Fatalf("ProcessTalk failed: %v", err)
	}

	if rec.Title != "Think Celestial!" {
		t.Errorf("Expected title 'Think Celestial!', got '%s'", rec.Title)
	}
	if rec.Speaker != "Russell M. Nelson" {
		t.Errorf("Expected normalized speaker, got '%s'", rec.Speaker)
	}
	if rec.Session != "Sunday Afternoon Session" {
		t.Errorf("Expected session carried onto record, got '%s'", rec.Session)
	}
	if len(rec.Body) != 2 {
		t.Fatalf("Expected 2 body elements, got %d", len(rec.Body))
	}

	second, ok := rec.Body[1].(talk.Paragraph)
	if !ok {
		t.Fatalf("Expected paragraph, got %+v", rec.Body[1])
	}
	if !strings.Contains(second.Markdown, "[[3 Nephi 11#29|3 Nephi 11:29]]") {
		t.Errorf("Expected scripture wiki link in body, got '%s'", second.Markdown)
	}

	if len(rec.Sources) != 1 || rec.Sources[0].Number != 1 {
		t.Errorf("Expected one footnote numbered 1, got %+v", rec.Sources)
	}
}

func TestHTTPTalkProcessorFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	processor := newTestProcessor()
	_, err := processor.ProcessTalk(context.Background(), talkpage.TalkItem{URL: server.URL})
	if err == nil {
		t.Fatal("Expected error for 404 talk page, got nil")
	}
}

func TestHTTPTalkListerListTalks(t *testing.T) {
	pageHTML := `<html><body><ul class="doc-map">
	<li><a href="/study/general-conference/2023/10/saturday-morning-session"><p class="title">Saturday Morning Session</p></a></li>
	<li><a href="/study/general-conference/2023/10/11oaks"><p class="title">Kingdoms of Glory</p><p class="author">President Dallin H. Oaks</p></a></li>
	</ul></body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(pageHTML))
	}))
	defer server.Close()

	lister := NewHTTPTalkLister(server.URL)
	list, err := lister.ListTalks(context.Background())
	if err != nil {
		t.Fatalf("ListTalks failed: %v", err)
	}
	if len(list.Talks) != 1 || list.Talks[0].Slug != "11oaks" {
		t.Errorf("Unexpected talk list: %+v", list.Talks)
	}
}
