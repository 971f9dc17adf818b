package talkpage

import (
	"errors"
	"strings"
	"testing"

	"conference-archive/pkg/talk"
)

const talkPageHTML = `<!DOCTYPE html>
<html>
<head><title>Think Celestial!</title></head>
<body>
<header>
  <img class="posterFallback-x9" src="https://www.churchofjesuschrist.org/imgs/nelson-poster.jpg" alt="poster"/>
  <h1>Think Celestial!</h1>
  <p class="author-name">By President Russell M. Nelson</p>
  <p class="author-role">President of The Church of Jesus Christ of Latter-day Saints</p>
  <p class="subtitle">Sunday Afternoon Session</p>
  <p class="kicker">As you think celestial, your faith will increase.</p>
</header>
<div class="body-block">
  <p id="p1">My dear brothers and sisters, I am grateful.</p>
  <h2>A Pattern for Living</h2>
  <p id="p3">The Lord taught us <em>how</em> to live.</p>
  <figure>
    <img src="https://www.churchofjesuschrist.org/imgs/temple.jpg" alt="Salt Lake Temple"/>
    <figcaption><p>The temple.</p></figcaption>
  </figure>
  <p>A final thought.<sup class="marker"><a href="#note1">1</a></sup></p>
</div>
<footer class="notes">
  <ol>
    <li id="note1">See <a href="/study/scriptures/bofm/3-ne/11?lang=eng&amp;id=p29#p29">3 Nephi 11:29</a>.<a class="backref" href="#note1_ref">&#8617;</a></li>
  </ol>
</footer>
</body>
</html>`

func TestExtract(t *testing.T) {
	page, err := Extract(talkPageHTML)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if page.Title != "Think Celestial!" {
		t.Errorf("Expected title 'Think Celestial!', got '%s'", page.Title)
	}
	if page.Speaker != "By President Russell M. Nelson" {
		t.Errorf("Expected raw speaker byline preserved, got '%s'", page.Speaker)
	}
	if page.Role == nil || !strings.Contains(*page.Role, "President of The Church") {
		t.Errorf("Expected raw role extracted, got %v", page.Role)
	}
	if page.Thumbnail == nil || *page.Thumbnail != "https://www.churchofjesuschrist.org/imgs/nelson-poster.jpg" {
		t.Errorf("Expected posterFallback thumbnail, got %v", page.Thumbnail)
	}
	if page.Subtitle == nil || *page.Subtitle != "Sunday Afternoon Session" {
		t.Errorf("Expected subtitle extracted, got %v", page.Subtitle)
	}
	if page.Kicker == nil || *page.Kicker != "As you think celestial, your faith will increase." {
		t.Errorf("Expected kicker extracted, got %v", page.Kicker)
	}
	if !strings.Contains(page.BodyHTML, "My dear brothers and sisters") {
		t.Error("Expected body HTML captured")
	}
}

func TestExtractBodyElements(t *testing.T) {
	page, err := Extract(talkPageHTML)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	// p1, h2, p3, figure img, figcaption p, final p.
	if len(page.Elements) != 6 {
		t.Fatalf("Expected 6 body elements, got %d: %+v", len(page.Elements), page.Elements)
	}

	if page.Elements[0].Kind != talk.ElementParagraph || page.Elements[0].ID != "p1" {
		t.Errorf("Expected first element paragraph p1, got %+v", page.Elements[0])
	}
	if page.Elements[1].Kind != talk.ElementHeading || page.Elements[1].Level != 2 {
		t.Errorf("Expected h2 heading, got %+v", page.Elements[1])
	}
	if !strings.Contains(page.Elements[2].InnerHTML, "<em>how</em>") {
		t.Errorf("Expected inner HTML with markup intact, got '%s'", page.Elements[2].InnerHTML)
	}
	if page.Elements[3].Kind != talk.ElementImage || page.Elements[3].Alt != "Salt Lake Temple" {
		t.Errorf("Expected figure image, got %+v", page.Elements[3])
	}
	if page.Elements[4].Kind != talk.ElementParagraph || page.Elements[4].ID != "" {
		t.Errorf("Expected figcaption paragraph without id, got %+v", page.Elements[4])
	}
}

func TestExtractFootnotes(t *testing.T) {
	page, err := Extract(talkPageHTML)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if len(page.Footnotes) != 1 {
		t.Fatalf("Expected 1 footnote, got %d", len(page.Footnotes))
	}
	if page.Footnotes[0].ID != "note1" {
		t.Errorf("Expected footnote id 'note1', got '%s'", page.Footnotes[0].ID)
	}
	if !strings.Contains(page.Footnotes[0].InnerHTML, `class="backref"`) {
		t.Error("Expected raw footnote HTML to keep the backref for the normalizer")
	}
}

func TestExtractBodyContentFallback(t *testing.T) {
	html := `<html><body>
	<h1>A Title</h1>
	<div class="body-content"><p>Only paragraph.</p></div>
	</body></html>`

	page, err := Extract(html)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(page.Elements) != 1 || page.Elements[0].Kind != talk.ElementParagraph {
		t.Errorf("Expected one paragraph from .body-content, got %+v", page.Elements)
	}
	if page.Role != nil || page.Subtitle != nil || page.Kicker != nil {
		t.Error("Expected absent optional fields to stay nil")
	}
}

func TestExtractMissingBodyContainer(t *testing.T) {
	_, err := Extract(`<html><body><h1>Title</h1><p>loose text</p></body></html>`)
	if !errors.Is(err, talk.ErrStructuralMiss) {
		t.Errorf("Expected structural miss for missing body container, got %v", err)
	}
}

func TestExtractKickerIntroFallback(t *testing.T) {
	html := `<html><body>
	<h1>Title</h1>
	<div class="body-block">
	  <p class="intro">An intro paragraph standing in for the kicker.</p>
	  <p>Body.</p>
	</div>
	</body></html>`

	page, err := Extract(html)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if page.Kicker == nil || *page.Kicker != "An intro paragraph standing in for the kicker." {
		t.Errorf("Expected intro paragraph as kicker fallback, got %v", page.Kicker)
	}
}
