package scripturemd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCleanKey(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Come Follow Me", "come_follow_me"},
		{"Scripture Central (Book)", "scripture_central_book"},
		{"John's Notes", "johns_notes"},
		{"Study-Guide", "study_guide"},
	}
	for _, tc := range cases {
		if got := CleanKey(tc.name); got != tc.want {
			t.Errorf("CleanKey(%q): expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestFrontmatterKey(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"CFM 2024 3 Nephi 8-11", "cfm_2024_url"},
		{"CFM study plan", "cfm_study_plan_url"},
		{"Church News", "church_news_url"},
	}
	for _, tc := range cases {
		if got := FrontmatterKey(tc.name); got != tc.want {
			t.Errorf("FrontmatterKey(%q): expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestBookNumber(t *testing.T) {
	cases := []struct {
		volume string
		book   string
		want   int
		ok     bool
	}{
		{OldTestament, "Genesis", 1, true},
		{OldTestament, "Malachi", 39, true},
		{NewTestament, "Revelation", 27, true},
		{BookOfMormon, "3 Nephi", 11, true},
		{PearlOfGreatPrice, "Joseph Smith--Matthew", 3, true},
		{PearlOfGreatPrice, "Joseph Smith—Matthew", 3, true}, // em-dash spelling from the source data
		{BookOfMormon, "Hezekiah", 0, false},
		{DoctrineAndCovenants, "Sections", 0, false}, // no order list for this volume
	}
	for _, tc := range cases {
		got, ok := BookNumber(tc.volume, tc.book)
		if got != tc.want || ok != tc.ok {
			t.Errorf("BookNumber(%q, %q): expected (%d, %v), got (%d, %v)",
				tc.volume, tc.book, tc.want, tc.ok, got, ok)
		}
	}
}

func TestPlanChapterFile(t *testing.T) {
	plan, err := PlanChapterFile(BookOfMormon, "3 Nephi", 11)
	if err != nil {
		t.Fatalf("PlanChapterFile failed: %v", err)
	}
	if plan.Dir != filepath.Join("Book of Mormon", "11 3 Nephi") {
		t.Errorf("Unexpected dir: %q", plan.Dir)
	}
	if plan.Name != "3 Nephi 11.md" {
		t.Errorf("Unexpected file name: %q", plan.Name)
	}
	if plan.Book != "3 Nephi" || plan.BookNumber != 11 {
		t.Errorf("Unexpected frontmatter identity: %+v", plan)
	}
}

func TestPlanChapterFileDoctrineAndCovenants(t *testing.T) {
	sections, err := PlanChapterFile(DoctrineAndCovenants, "Sections", 89)
	if err != nil {
		t.Fatalf("PlanChapterFile(Sections) failed: %v", err)
	}
	if sections.Dir != DoctrineAndCovenants || sections.Name != "D&C 89.md" {
		t.Errorf("Unexpected sections plan: %+v", sections)
	}
	if sections.Book != "Doctrine and Covenants" || sections.BookNumber != 1 {
		t.Errorf("Unexpected sections identity: %+v", sections)
	}

	od, err := PlanChapterFile(DoctrineAndCovenants, "Official Declaration 2", 1)
	if err != nil {
		t.Fatalf("PlanChapterFile(OD 2) failed: %v", err)
	}
	if od.Name != "Official Declaration 2.md" || od.Book != "Official Declaration 2" || od.BookNumber != 3 {
		t.Errorf("Unexpected official declaration plan: %+v", od)
	}

	if _, err := PlanChapterFile(DoctrineAndCovenants, "Lectures on Faith", 1); err == nil {
		t.Error("Expected error for unrecognized D&C book, got nil")
	}
}

func TestRenderTop(t *testing.T) {
	resources := []Resource{
		{Name: "CFM 2024 3 Nephi 8-11", URL: "https://cfm.example/3ne"},
		{Name: "Scripture Central", URL: "https://sc.example/3ne11"},
	}

	got := RenderTop(BookOfMormon, "3 Nephi", 11, 11, resources, nil)
	want := `---
publish: true
tags:
  - no-graph
  - Scripture/BoM
cssclasses:
  - scriptures
context_summary: NA
child_summary: NA
summary: NA
volume: Book of Mormon
book: 3 Nephi
book_number: 11
chapter: 11
cfm_2024_url: https://cfm.example/3ne
scripture_central_url: https://sc.example/3ne11
---
>[!Properties]+ Resources
>[CFM 2024 3 Nephi 8-11](https://cfm.example/3ne)    |    [Scripture Central](https://sc.example/3ne11)
>>[!AI]- AI Context
>>NA
>
>>[!AI]- AI Child Summary
>>NA
>
>>[!AI]- AI Summary
>>NA
>
>
`
	if got != want {
		t.Errorf("Unexpected top block:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestRenderTopWithSummaries(t *testing.T) {
	sum := &Summaries{
		Context: "After the destruction, the survivors gather.",
		Child:   "Jesus visits the people.",
		Summary: "Christ appears at the temple in Bountiful.",
		Tags:    "#Faith #Baptism",
	}

	got := RenderTop(BookOfMormon, "3 Nephi", 11, 11, nil, sum)
	for _, fragment := range []string{
		"summary: Christ appears at the temple in Bountiful.\n",
		"context_summary: After the destruction, the survivors gather.\n",
		"child_summary: Jesus visits the people.\n",
		">\n>#Faith #Baptism\n",
	} {
		if !strings.Contains(got, fragment) {
			t.Errorf("Expected top block to contain %q, got:\n%s", fragment, got)
		}
	}
	if strings.Contains(got, "NA") {
		t.Errorf("Expected no NA placeholders with full summaries, got:\n%s", got)
	}
}

func TestRenderVersesSorted(t *testing.T) {
	verses := []Verse{
		{Number: 2, Text: "second verse"},
		{Number: 1, Text: "first verse"},
	}
	want := "###### 1\n1 first verse\n###### 2\n2 second verse\n"
	if got := RenderVerses(verses); got != want {
		t.Errorf("Expected verses %q, got %q", want, got)
	}
}

func TestUpdateContentPreservesVerseBody(t *testing.T) {
	existing := `---
publish: true
chapter: 11
old_resource_url: https://old.example
---
>[!Properties]+ Resources
>[Old](https://old.example)
###### 1
1 first verse ==with a highlight==
###### 2
2 second verse [^note]

[^note]: a reader footnote
`
	top := "---\nchapter: 11\nnew_resource_url: https://new.example\n---\n"
	verses := []Verse{{Number: 1, Text: "regenerated"}, {Number: 2, Text: "regenerated"}}

	got := UpdateContent(existing, top, verses)
	if !strings.HasPrefix(got, top) {
		t.Errorf("Expected rewritten top block, got:\n%s", got)
	}
	if !strings.Contains(got, "==with a highlight==") || !strings.Contains(got, "[^note]: a reader footnote") {
		t.Errorf("Expected verse annotations preserved, got:\n%s", got)
	}
	if strings.Contains(got, "old_resource_url") {
		t.Errorf("Expected old frontmatter replaced, got:\n%s", got)
	}
	if strings.Contains(got, "regenerated") {
		t.Errorf("Expected existing verses kept over regeneration, got:\n%s", got)
	}
}

func TestUpdateContentRegeneratesWithoutVerseHeading(t *testing.T) {
	top := "---\nchapter: 1\n---\n"
	verses := []Verse{{Number: 1, Text: "in the beginning"}}

	got := UpdateContent("", top, verses)
	want := top + "###### 1\n1 in the beginning\n"
	if got != want {
		t.Errorf("Expected %q for a new file, got %q", want, got)
	}

	if got := UpdateContent("just some stray text\n", top, verses); got != want {
		t.Errorf("Expected verse regeneration without a verse heading, got %q", got)
	}
}

func TestLoadVolume(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "book_of_mormon.json")
	doc := `{"Book of Mormon": [{"name": "3 Nephi", "chapters": [
		{"number": 11,
		 "verses": [{"number": 1, "text": "And now it came to pass"}],
		 "chapter_resources": [{"name": "Church News", "url": "https://news.example"}],
		 "ai_resources": {"summary": "Christ appears."}}
	]}]}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	books, err := LoadVolume(path, BookOfMormon)
	if err != nil {
		t.Fatalf("LoadVolume failed: %v", err)
	}
	if len(books) != 1 || books[0].Name != "3 Nephi" {
		t.Fatalf("Unexpected books: %+v", books)
	}
	ch := books[0].Chapters[0]
	if ch.Number != 11 || len(ch.Verses) != 1 || len(ch.Resources) != 1 {
		t.Errorf("Unexpected chapter: %+v", ch)
	}
	if ch.Summaries == nil || ch.Summaries.Summary != "Christ appears." {
		t.Errorf("Unexpected summaries: %+v", ch.Summaries)
	}

	if _, err := LoadVolume(path, OldTestament); err == nil {
		t.Error("Expected error for missing volume key, got nil")
	}
}

func TestUpdateChapterFile(t *testing.T) {
	root := t.TempDir()
	plan, err := PlanChapterFile(BookOfMormon, "3 Nephi", 11)
	if err != nil {
		t.Fatalf("PlanChapterFile failed: %v", err)
	}
	verses := []Verse{{Number: 1, Text: "first verse"}}

	firstTop := RenderTop(BookOfMormon, plan.Book, plan.BookNumber, 11, nil, nil)
	if err := UpdateChapterFile(root, plan, firstTop, verses); err != nil {
		t.Fatalf("First UpdateChapterFile failed: %v", err)
	}

	path := filepath.Join(root, plan.Dir, plan.Name)
	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read written chapter: %v", err)
	}
	annotated := strings.Replace(string(written), "first verse", "first verse ==kept==", 1)
	if err := os.WriteFile(path, []byte(annotated), 0o644); err != nil {
		t.Fatalf("Failed to annotate chapter: %v", err)
	}

	secondTop := RenderTop(BookOfMormon, plan.Book, plan.BookNumber, 11,
		[]Resource{{Name: "Church News", URL: "https://news.example"}}, nil)
	if err := UpdateChapterFile(root, plan, secondTop, verses); err != nil {
		t.Fatalf("Second UpdateChapterFile failed: %v", err)
	}

	final, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read updated chapter: %v", err)
	}
	if !strings.Contains(string(final), "church_news_url: https://news.example") {
		t.Errorf("Expected refreshed frontmatter, got:\n%s", final)
	}
	if !strings.Contains(string(final), "first verse ==kept==") {
		t.Errorf("Expected verse annotation preserved across update, got:\n%s", final)
	}
}
