package talk

import "testing"

func TestNormalizeSpeaker(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"By Elder David A. Bednar", "David A. Bednar"},
		{"by President Russell M. Nelson", "Russell M. Nelson"},
		{"Sister Joy D. Jones", "Joy D. Jones"},
		{"Brother Bradley R. Wilcox", "Bradley R. Wilcox"},
		{"BY SISTER AMY A. WRIGHT", "AMY A. WRIGHT"},
		{"Dale G. Renlund", "Dale G. Renlund"},
		{"  By Elder Gerrit W. Gong  ", "Gerrit W. Gong"},
	}

	for _, tc := range cases {
		if got := NormalizeSpeaker(tc.input); got != tc.want {
			t.Errorf("NormalizeSpeaker(%q): expected %q, got %q", tc.input, tc.want, got)
		}
	}
}

func TestNormalizeRole(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Of the Quorum of the Twelve Apostles", "Quorum of the 12"},
		{"Of the Quorum of the 12 Apostles", "Quorum of the 12"},
		{"Council of the 12", "Quorum of the 12"},
		{"Of the Seventy", "Seventy"},
		{"First Council of the Seventy", "Seventy"},
		{"Emeritus member of the Seventy", "Seventy"},
		{"President of The Church of Jesus Christ of Latter-day Saints", "President of the Church"},
		{"President of the Church", "President of the Church"},
		{"Primary General President", "Primary General President"}, // passes through
	}

	for _, tc := range cases {
		got := NormalizeRole(&tc.input)
		if got == nil {
			t.Errorf("NormalizeRole(%q): expected %q, got nil", tc.input, tc.want)
			continue
		}
		if *got != tc.want {
			t.Errorf("NormalizeRole(%q): expected %q, got %q", tc.input, tc.want, *got)
		}
	}
}

func TestNormalizeRoleNil(t *testing.T) {
	if got := NormalizeRole(nil); got != nil {
		t.Errorf("NormalizeRole(nil): expected nil, got %q", *got)
	}
}

func TestIsNonContentTitle(t *testing.T) {
	nonContent := []string{
		"Saturday Morning Session",
		"Church Auditing Department Report, 2022",
		"The Sustaining of Church Officers",
		"Introduction to the 193rd Annual General Conference",
	}
	for _, title := range nonContent {
		if !IsNonContentTitle(title) {
			t.Errorf("Expected %q to be non-content", title)
		}
	}

	content := []string{"Think Celestial!", "Peacemakers Needed"}
	for _, title := range content {
		if IsNonContentTitle(title) {
			t.Errorf("Expected %q to be a content talk", title)
		}
	}
}
