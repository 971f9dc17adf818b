package talk

import (
	"regexp"
	"strings"
)

var (
	byPrefix        = regexp.MustCompile(`(?i)^by\s+`)
	honorificPrefix = regexp.MustCompile(`(?i)^(elder|president|sister|brother)\s+`)

	ofThePrefix = regexp.MustCompile(`(?i)^of the `)

	quorumVariants = regexp.MustCompile(
		`(?i)Quorum of the (Twelve|12) Apostles|Q_of_12|Council of the 12`)
	seventyVariants = regexp.MustCompile(
		`(?i)Q_of_70|70|Assistant to the Q_of_12|First Council of the Seventy|` +
			`Presidency of the First Q_of_70|Emeritus member of the Seventy|` +
			`Released Member of the Seventy|Former member of the Seventy`)
	presidentVariants = regexp.MustCompile(
		`(?i)President of The Church of Jesus Christ of Latter-day Saints|President of the Church`)
)

// Canonical role strings produced by NormalizeRole.
const (
	RoleQuorumOfTwelve    = "Quorum of the 12"
	RoleSeventy           = "Seventy"
	RolePresidentOfChurch = "President of the Church"
)

// NormalizeSpeaker strips the leading "By " credit and a leading honorific
// (Elder, President, Sister, Brother) from a speaker byline.
func NormalizeSpeaker(speaker string) string {
	speaker = byPrefix.ReplaceAllString(speaker, "")
	speaker = honorificPrefix.ReplaceAllString(speaker, "")
	return strings.TrimSpace(speaker)
}

// NormalizeRole canonicalizes a speaker role. nil stays nil; unrecognized
// text passes through with only the leading "Of the " removed.
func NormalizeRole(role *string) *string {
	if role == nil {
		return nil
	}

	r := strings.TrimSpace(ofThePrefix.ReplaceAllString(*role, ""))
	r = quorumVariants.ReplaceAllString(r, RoleQuorumOfTwelve)
	r = seventyVariants.ReplaceAllString(r, RoleSeventy)
	r = presidentVariants.ReplaceAllString(r, RolePresidentOfChurch)
	return &r
}

// nonContentMarkers flag titles that name sessions or administrative items
// rather than talks; those legitimately have no body or footnotes.
var nonContentMarkers = []string{"session", "auditing", "sustaining", "introduction"}

// IsNonContentTitle reports whether a talk title matches a known
// non-content pattern (session headers, auditing reports, sustainings).
func IsNonContentTitle(title string) bool {
	t := strings.ToLower(title)
	for _, marker := range nonContentMarkers {
		if strings.Contains(t, marker) {
			return true
		}
	}
	return false
}
