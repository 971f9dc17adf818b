// Package conference handles General Conference identity (keys, month
// codes, talk IDs) and the per-conference JSON documents.
package conference

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// SiteOrigin is the Gospel Library host all canonical talk URLs live on.
const SiteOrigin = "https://www.churchofjesuschrist.org"

// talkURLPattern matches canonical talk URLs and captures year, the URL
// month code, and the talk slug.
var talkURLPattern = regexp.MustCompile(`/general-conference/(\d{4})/(\d{2})/([^/?#]+)`)

// talkSlugPattern matches talk slugs like "12nelson" (day number + name).
var talkSlugPattern = regexp.MustCompile(`(?i)^\d{2}[a-z]+$`)

// MonthCode converts a conference month name to its URL code. General
// Conference is held in April and October only.
func MonthCode(month string) (string, error) {
	switch strings.ToLower(month) {
	case "apr", "april":
		return "04", nil
	case "oct", "october":
		return "10", nil
	}
	return "", fmt.Errorf("invalid month %q: must be Apr/April or Oct/October", month)
}

// MonthName converts a URL month code back to the month name.
func MonthName(code string) (string, error) {
	switch code {
	case "04":
		return "April", nil
	case "10":
		return "October", nil
	}
	return "", fmt.Errorf("invalid month code %q", code)
}

// Key builds the conference key, e.g. "2023-October".
func Key(year, month string) string {
	return year + "-" + capitalize(month)
}

// FileName builds the conference document file name, e.g. "2023-october.json".
func FileName(year, month string) string {
	name := sanitize(year + "-" + strings.ToLower(month))
	return name + ".json"
}

var fileNameJunk = regexp.MustCompile(`(?i)[^a-z0-9\- ]`)

func sanitize(name string) string {
	return fileNameJunk.ReplaceAllString(name, "")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// PageURL builds the Gospel Library page URL listing a conference's talks.
func PageURL(year, monthCode string) string {
	return fmt.Sprintf("%s/study/general-conference/%s/%s?lang=eng", SiteOrigin, year, monthCode)
}

// ParseTalkURL extracts (year, month code, slug) from a canonical talk URL.
func ParseTalkURL(url string) (year, monthCode, slug string, err error) {
	m := talkURLPattern.FindStringSubmatch(url)
	if m == nil {
		return "", "", "", fmt.Errorf("cannot determine conference from URL %s", url)
	}
	return m[1], m[2], m[3], nil
}

// TalkID builds the resource-index talk ID "<year>/<monthCode>/<slug>" from
// a canonical talk URL.
func TalkID(url string) (string, error) {
	year, monthCode, slug, err := ParseTalkURL(url)
	if err != nil {
		return "", err
	}
	return year + "/" + monthCode + "/" + slug, nil
}

// IsTalkSlug reports whether a URL's last path segment names a talk rather
// than a session page.
func IsTalkSlug(segment string) bool {
	return talkSlugPattern.MatchString(segment)
}

// Hash computes the BYU citation-index conference hash: years since 1830,
// offset by 2048 for October conferences, in hex.
func Hash(year string, monthCode string) (string, error) {
	y, err := strconv.Atoi(year)
	if err != nil {
		return "", fmt.Errorf("invalid year %q: %w", year, err)
	}
	n := y - 1830
	if monthCode == "10" {
		n += 2048
	}
	return strconv.FormatInt(int64(n), 16), nil
}

// ByuCitationURL builds the scriptures.byu.edu deep link for a talk.
func ByuCitationURL(talkHash, confHash string) string {
	return fmt.Sprintf("https://scriptures.byu.edu/#:t%s:g%s", talkHash, confHash)
}

// SaintsAIURL derives the Saints AI study-guide URL from a canonical talk
// URL: host swap, query dropped, "/study-guide" appended.
func SaintsAIURL(talkURL string) string {
	url := strings.Replace(talkURL, "www.churchofjesuschrist.org", "saintsai.org", 1)
	if i := strings.IndexByte(url, '?'); i >= 0 {
		url = url[:i]
	}
	return url + "/study-guide"
}
