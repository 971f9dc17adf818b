package scripture

// BookTable maps "<corpus>/<abbreviation>" path keys (as they appear in
// Gospel Library study URLs) to full book names.
type BookTable map[string]string

// DefaultBooks returns the standard works lookup table: Old Testament,
// New Testament, Book of Mormon, Doctrine and Covenants, and Pearl of
// Great Price.
func DefaultBooks() BookTable {
	return BookTable{
		// Old Testament
		"ot/gen":   "Genesis",
		"ot/ex":    "Exodus",
		"ot/lev":   "Leviticus",
		"ot/num":   "Numbers",
		"ot/deut":  "Deuteronomy",
		"ot/josh":  "Joshua",
		"ot/judg":  "Judges",
		"ot/ruth":  "Ruth",
		"ot/1-sam": "1 Samuel",
		"ot/2-sam": "2 Samuel",
		"ot/1-kgs": "1 Kings",
		"ot/2-kgs": "2 Kings",
		"ot/1-chr": "1 Chronicles",
		"ot/2-chr": "2 Chronicles",
		"ot/ezra":  "Ezra",
		"ot/neh":   "Nehemiah",
		"ot/esth":  "Esther",
		"ot/job":   "Job",
		"ot/ps":    "Psalms",
		"ot/prov":  "Proverbs",
		"ot/eccl":  "Ecclesiastes",
		"ot/song":  "Song of Solomon",
		"ot/isa":   "Isaiah",
		"ot/jer":   "Jeremiah",
		"ot/lam":   "Lamentations",
		"ot/ezek":  "Ezekiel",
		"ot/dan":   "Daniel",
		"ot/hosea": "Hosea",
		"ot/joel":  "Joel",
		"ot/amos":  "Amos",
		"ot/obad":  "Obadiah",
		"ot/jonah": "Jonah",
		"ot/micah": "Micah",
		"ot/nahum": "Nahum",
		"ot/hab":   "Habakkuk",
		"ot/zeph":  "Zephaniah",
		"ot/hag":   "Haggai",
		"ot/zech":  "Zechariah",
		"ot/mal":   "Malachi",

		// New Testament
		"nt/matt":   "Matthew",
		"nt/mark":   "Mark",
		"nt/luke":   "Luke",
		"nt/john":   "John",
		"nt/acts":   "Acts",
		"nt/rom":    "Romans",
		"nt/1-cor":  "1 Corinthians",
		"nt/2-cor":  "2 Corinthians",
		"nt/gal":    "Galatians",
		"nt/eph":    "Ephesians",
		"nt/phlp":   "Philippians",
		"nt/col":    "Colossians",
		"nt/1-thes": "1 Thessalonians",
		"nt/2-thes": "2 Thessalonians",
		"nt/1-tim":  "1 Timothy",
		"nt/2-tim":  "2 Timothy",
		"nt/titus":  "Titus",
		"nt/philem": "Philemon",
		"nt/heb":    "Hebrews",
		"nt/james":  "James",
		"nt/1-pet":  "1 Peter",
		"nt/2-pet":  "2 Peter",
		"nt/1-jn":   "1 John",
		"nt/2-jn":   "2 John",
		"nt/3-jn":   "3 John",
		"nt/jude":   "Jude",
		"nt/rev":    "Revelation",

		// Book of Mormon
		"bofm/1-ne":   "1 Nephi",
		"bofm/2-ne":   "2 Nephi",
		"bofm/jacob":  "Jacob",
		"bofm/enos":   "Enos",
		"bofm/jarom":  "Jarom",
		"bofm/omni":   "Omni",
		"bofm/w-of-m": "Words of Mormon",
		"bofm/mosiah": "Mosiah",
		"bofm/alma":   "Alma",
		"bofm/hel":    "Helaman",
		"bofm/3-ne":   "3 Nephi",
		"bofm/4-ne":   "4 Nephi",
		"bofm/morm":   "Mormon",
		"bofm/ether":  "Ether",
		"bofm/moro":   "Moroni",

		// Doctrine and Covenants
		"dc-testament/dc": "D&C",

		// Pearl of Great Price
		"pgp/moses":  "Moses",
		"pgp/abr":    "Abraham",
		"pgp/js-m":   "Joseph Smith—Matthew",
		"pgp/js-h":   "Joseph Smith—History",
		"pgp/a-of-f": "Articles of Faith",
	}
}
