package scripturemd

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var cfmYear = regexp.MustCompile(`CFM (\d{4})`)

// CleanKey converts a resource name to a frontmatter key fragment:
// lowercased, spaces and hyphens become underscores, apostrophes and
// parentheses are dropped.
func CleanKey(name string) string {
	name = strings.ToLower(name)
	return strings.NewReplacer(" ", "_", "-", "_", "'", "", "(", "", ")", "").Replace(name)
}

// FrontmatterKey derives the frontmatter key for a named resource URL.
// "CFM <year> ..." resources key on the year alone (cfm_2024_url), so a
// chapter carries one Come Follow Me link per year regardless of the
// lesson title after it.
func FrontmatterKey(name string) string {
	if strings.HasPrefix(name, "CFM ") {
		if m := cfmYear.FindStringSubmatch(name); m != nil {
			return fmt.Sprintf("cfm_%s_url", m[1])
		}
	}
	return CleanKey(name) + "_url"
}

func orNA(s string) string {
	if s == "" {
		return "NA"
	}
	return s
}

// RenderTop builds everything above the verse body of a chapter file: the
// frontmatter block and the Resources/AI callouts.
func RenderTop(volume, book string, bookNumber, chapter int, resources []Resource, sum *Summaries) string {
	contextSummary, childSummary, summary, tags := "NA", "NA", "NA", ""
	if sum != nil {
		contextSummary = orNA(sum.Context)
		childSummary = orNA(sum.Child)
		summary = orNA(sum.Summary)
		tags = sum.Tags
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("publish: true\n")
	b.WriteString("tags:\n")
	b.WriteString("  - no-graph\n")
	if tag := volumeTags[volume]; tag != "" {
		fmt.Fprintf(&b, "  - %s\n", tag)
	}
	b.WriteString("cssclasses:\n")
	b.WriteString("  - scriptures\n")
	fmt.Fprintf(&b, "context_summary: %s\n", contextSummary)
	fmt.Fprintf(&b, "child_summary: %s\n", childSummary)
	fmt.Fprintf(&b, "summary: %s\n", summary)
	fmt.Fprintf(&b, "volume: %s\n", volume)
	fmt.Fprintf(&b, "book: %s\n", book)
	fmt.Fprintf(&b, "book_number: %d\n", bookNumber)
	fmt.Fprintf(&b, "chapter: %d\n", chapter)
	for _, res := range resources {
		fmt.Fprintf(&b, "%s: %s\n", FrontmatterKey(res.Name), res.URL)
	}
	b.WriteString("---\n")

	b.WriteString(">[!Properties]+ Resources\n")
	links := make([]string, 0, len(resources))
	for _, res := range resources {
		links = append(links, fmt.Sprintf("[%s](%s)", res.Name, res.URL))
	}
	fmt.Fprintf(&b, ">%s\n", strings.Join(links, "    |    "))

	b.WriteString(">>[!AI]- AI Context\n")
	fmt.Fprintf(&b, ">>%s\n>\n", contextSummary)
	b.WriteString(">>[!AI]- AI Child Summary\n")
	fmt.Fprintf(&b, ">>%s\n>\n", childSummary)
	b.WriteString(">>[!AI]- AI Summary\n")
	fmt.Fprintf(&b, ">>%s\n", summary)
	fmt.Fprintf(&b, ">\n>%s\n", tags)
	return b.String()
}

// RenderVerses writes the verse body: a "###### <n>" heading per verse
// followed by the numbered verse text, in ascending verse order.
func RenderVerses(verses []Verse) string {
	sorted := make([]Verse, len(verses))
	copy(sorted, verses)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Number < sorted[j].Number })

	var b strings.Builder
	for _, v := range sorted {
		fmt.Fprintf(&b, "###### %d\n%d %s\n", v.Number, v.Number, v.Text)
	}
	return b.String()
}

// UpdateContent replaces everything above the first verse heading with a
// freshly rendered top block. Content from "###### 1" down is kept as-is
// so highlights and footnotes inside verses survive. When the heading is
// absent (new or malformed file) the verse body is regenerated.
func UpdateContent(existing, top string, verses []Verse) string {
	if existing != "" {
		lines := strings.SplitAfter(existing, "\n")
		for i, line := range lines {
			if strings.HasPrefix(strings.TrimSpace(line), "###### 1") {
				return top + strings.Join(lines[i:], "")
			}
		}
	}
	return top + RenderVerses(verses)
}
