// Package markup converts raw talk-page HTML fragments into lightly
// formatted markdown text. Scripture links are rewritten as wiki links via
// the scripture resolver; everything else degrades to plain markdown.
package markup

import (
	"fmt"
	"regexp"
	"strings"

	"conference-archive/pkg/scripture"
)

// DefaultOrigin is prefixed onto relative hrefs before link resolution.
const DefaultOrigin = "https://www.churchofjesuschrist.org"

// The rewrite stages run in this order. Each pattern only matches raw tags,
// never its own output, so a second Normalize pass is a no-op.
var (
	emPattern      = regexp.MustCompile(`(?is)<em>(.*?)</em>`)
	italicPattern  = regexp.MustCompile(`(?is)<i>(.*?)</i>`)
	strongPattern  = regexp.MustCompile(`(?is)<strong>(.*?)</strong>`)
	boldPattern    = regexp.MustCompile(`(?is)<b>(.*?)</b>`)
	spanPattern    = regexp.MustCompile(`(?is)<span[^>]*>(.*?)</span>`)
	noteRefPattern = regexp.MustCompile(`(?is)<sup[^>]*><a[^>]+href="#([^"]+)"[^>]*>([^<]+)</a></sup>`)
	backrefPattern = regexp.MustCompile(`(?is)<a[^>]+class="backref"[^>]*>.*?</a>`)
	anchorPattern  = regexp.MustCompile(`(?is)<a[^>]+href="([^"]+)"[^>]*>([^<]+)</a>`)
	tagPattern     = regexp.MustCompile(`<[^>]+>`)
)

// Normalizer rewrites talk markup into markdown text. It is stateless and
// safe for concurrent use.
type Normalizer struct {
	resolver *scripture.Resolver
	origin   string
}

// NewNormalizer creates a normalizer that resolves scripture links with the
// given resolver and absolutizes relative hrefs against origin. An empty
// origin falls back to DefaultOrigin.
func NewNormalizer(resolver *scripture.Resolver, origin string) *Normalizer {
	if origin == "" {
		origin = DefaultOrigin
	}
	return &Normalizer{resolver: resolver, origin: origin}
}

// Normalize applies the rewrite pipeline to a markup fragment. footnote
// selects the footnote-context behavior, which additionally drops the
// back-reference anchors that footnote list items carry.
func (n *Normalizer) Normalize(markup string, footnote bool) string {
	out := markup

	// Emphasis and bold.
	out = emPattern.ReplaceAllString(out, `*${1}*`)
	out = italicPattern.ReplaceAllString(out, `*${1}*`)
	out = strongPattern.ReplaceAllString(out, `**${1}**`)
	out = boldPattern.ReplaceAllString(out, `**${1}**`)

	// Spans are decorative wrappers; keep the inner text.
	out = spanPattern.ReplaceAllString(out, `${1}`)

	// Footnote markers become caret-note back-references.
	out = noteRefPattern.ReplaceAllString(out, `[^ ${1}]`)

	if footnote {
		out = backrefPattern.ReplaceAllString(out, "")
	}

	out = anchorPattern.ReplaceAllStringFunc(out, n.rewriteAnchor)

	// Strip whatever tags remain.
	out = tagPattern.ReplaceAllString(out, "")

	return strings.TrimSpace(out)
}

// rewriteAnchor turns an anchor tag into either a scripture wiki link or a
// plain markdown link with an absolute URL.
func (n *Normalizer) rewriteAnchor(match string) string {
	sub := anchorPattern.FindStringSubmatch(match)
	if sub == nil {
		return match
	}
	href, text := sub[1], sub[2]

	abs := href
	if !strings.HasPrefix(href, "http") {
		abs = n.origin + href
	}

	if link := n.resolver.Resolve(abs, text); link != nil {
		return link.Render()
	}
	return fmt.Sprintf("[%s](%s)", text, abs)
}
