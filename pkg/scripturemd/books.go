// Package scripturemd generates and updates the vault's per-chapter
// scripture markdown files: frontmatter with resource links and volume
// tags, the resource callout block, and the verse body. Verse content
// below the first verse heading is preserved across regenerations so
// reader annotations survive.
package scripturemd

import "strings"

// Volume names as they appear in the source JSON exports and the vault
// folder layout.
const (
	OldTestament         = "Old Testament"
	NewTestament         = "New Testament"
	BookOfMormon         = "Book of Mormon"
	PearlOfGreatPrice    = "Pearl of Great Price"
	DoctrineAndCovenants = "Doctrine and Covenants"
)

// Volumes lists the five standard-works volumes in processing order.
var Volumes = []string{
	OldTestament,
	NewTestament,
	BookOfMormon,
	PearlOfGreatPrice,
	DoctrineAndCovenants,
}

// VolumeFiles maps each volume to its source JSON file name.
var VolumeFiles = map[string]string{
	OldTestament:         "old_testament.json",
	NewTestament:         "new_testament.json",
	BookOfMormon:         "book_of_mormon.json",
	PearlOfGreatPrice:    "pearl_of_great_price.json",
	DoctrineAndCovenants: "doctrine_and_covenants.json",
}

// volumeTags maps volumes to the frontmatter tag recorded on each chapter.
var volumeTags = map[string]string{
	OldTestament:         "Scripture/OT",
	NewTestament:         "Scripture/NT",
	BookOfMormon:         "Scripture/BoM",
	DoctrineAndCovenants: "Scripture/DandC",
	PearlOfGreatPrice:    "Scripture/PoGP",
}

// bookOrders holds the canonical book sequence per volume. Positions are
// 1-based in frontmatter and folder names. Doctrine and Covenants has no
// order list; its books are handled by name in PlanChapterFile.
var bookOrders = map[string][]string{
	OldTestament: {
		"Genesis", "Exodus", "Leviticus", "Numbers", "Deuteronomy", "Joshua", "Judges", "Ruth",
		"1 Samuel", "2 Samuel", "1 Kings", "2 Kings", "1 Chronicles", "2 Chronicles", "Ezra",
		"Nehemiah", "Esther", "Job", "Psalms", "Proverbs", "Ecclesiastes", "Song of Solomon",
		"Isaiah", "Jeremiah", "Lamentations", "Ezekiel", "Daniel", "Hosea", "Joel", "Amos",
		"Obadiah", "Jonah", "Micah", "Nahum", "Habakkuk", "Zephaniah", "Haggai", "Zechariah",
		"Malachi",
	},
	NewTestament: {
		"Matthew", "Mark", "Luke", "John", "Acts", "Romans", "1 Corinthians", "2 Corinthians",
		"Galatians", "Ephesians", "Philippians", "Colossians", "1 Thessalonians", "2 Thessalonians",
		"1 Timothy", "2 Timothy", "Titus", "Philemon", "Hebrews", "James", "1 Peter", "2 Peter",
		"1 John", "2 John", "3 John", "Jude", "Revelation",
	},
	BookOfMormon: {
		"1 Nephi", "2 Nephi", "Jacob", "Enos", "Jarom", "Omni", "Words of Mormon", "Mosiah",
		"Alma", "Helaman", "3 Nephi", "4 Nephi", "Mormon", "Ether", "Moroni",
	},
	PearlOfGreatPrice: {
		"Moses", "Abraham", "Joseph Smith--Matthew", "Joseph Smith--History", "Articles of Faith",
	},
}

// normalizeDashes folds the em-dash spelling of a book name into the
// double-hyphen form used in folder and file names.
func normalizeDashes(name string) string {
	return strings.ReplaceAll(name, "—", "--")
}

// BookNumber returns the 1-based position of a book within its volume's
// order list. Source data spells some names with an em dash where the
// order lists use a double hyphen; both spellings match.
func BookNumber(volume, book string) (int, bool) {
	order, ok := bookOrders[volume]
	if !ok {
		return 0, false
	}
	want := normalizeDashes(book)
	for i, name := range order {
		if normalizeDashes(name) == want {
			return i + 1, true
		}
	}
	return 0, false
}
