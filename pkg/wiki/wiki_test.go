package wiki

import (
	"testing"
	"time"
)

func TestNextEditionMonth(t *testing.T) {
	for m := 0; m < 12; m++ {
		now := time.Date(2026, time.Month(m+1), 15, 12, 0, 0, 0, time.UTC)
		month, year := NextEditionMonth(now)

		wantMonth, wantYear := m-1, 2026
		if m == 0 {
			wantMonth, wantYear = 11, 2025
		}
		if month != wantMonth || year != wantYear {
			t.Errorf("NextEditionMonth(%s) = %d, %d; want %d, %d", now.Month(), month, year, wantMonth, wantYear)
		}
	}
}

func TestNormalizeAndDisplayTitle(t *testing.T) {
	tests := []struct {
		in, normalized, display string
	}{
		{"Albert Einstein", "Albert_Einstein", "Albert Einstein"},
		{"Albert_Einstein", "Albert_Einstein", "Albert Einstein"},
		{"  Proposed United States acquisition of Greenland ", "Proposed_United_States_acquisition_of_Greenland", "Proposed United States acquisition of Greenland"},
		{"", "", ""},
	}
	for _, tt := range tests {
		if got := NormalizeTitle(tt.in); got != tt.normalized {
			t.Errorf("NormalizeTitle(%q) = %q, want %q", tt.in, got, tt.normalized)
		}
		if got := DisplayTitle(tt.in); got != tt.display {
			t.Errorf("DisplayTitle(%q) = %q, want %q", tt.in, got, tt.display)
		}
	}
}

func TestEscapeTitle(t *testing.T) {
	tests := map[string]string{
		"Albert Einstein": "Albert_Einstein",
		"AC/DC":           "AC%2FDC",
		"Zürich":          "Z%C3%BCrich",
		"C++":             "C++",
		"What?":           "What%3F",
	}
	for in, want := range tests {
		if got := EscapeTitle(in); got != want {
			t.Errorf("EscapeTitle(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestReadableMonth(t *testing.T) {
	if got := ReadableMonth(0); got != "January" {
		t.Errorf("ReadableMonth(0) = %q", got)
	}
	if got := ReadableMonth(11); got != "December" {
		t.Errorf("ReadableMonth(11) = %q", got)
	}
	if got := ReadableMonth(12); got != "" {
		t.Errorf("ReadableMonth(12) = %q, want empty", got)
	}
	if got := ReadableMonth(-1); got != "" {
		t.Errorf("ReadableMonth(-1) = %q, want empty", got)
	}
}

func TestPaddedMonth(t *testing.T) {
	if got := PaddedMonth(0); got != "01" {
		t.Errorf("PaddedMonth(0) = %q", got)
	}
	if got := PaddedMonth(11); got != "12" {
		t.Errorf("PaddedMonth(11) = %q", got)
	}
}

func TestLinks(t *testing.T) {
	if got := TitleToLink("en", "Albert Einstein"); got != "https://en.wikipedia.org/wiki/Albert_Einstein" {
		t.Errorf("TitleToLink() = %q", got)
	}
	if got := TitleToLink("en", "AC/DC"); got != "https://en.wikipedia.org/wiki/AC/DC" {
		t.Errorf("TitleToLink() subpage = %q", got)
	}
	if got := UserPageLink("de", "Jdlrobson"); got != "https://de.wikipedia.org/wiki/User:Jdlrobson" {
		t.Errorf("UserPageLink() = %q", got)
	}
}

func TestWikitextToHTML(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{
			"single link",
			"Readers liked [[ Albert_Einstein ]].",
			`Readers liked [[ <a href="https://en.wikipedia.org/wiki/Albert_Einstein">Albert Einstein</a> ]].`,
		},
		{
			"several links",
			"[[ A ]], [[ B ]] and [[ C ]]",
			`[[ <a href="https://en.wikipedia.org/wiki/A">A</a> ]], [[ <a href="https://en.wikipedia.org/wiki/B">B</a> ]] and [[ <a href="https://en.wikipedia.org/wiki/C">C</a> ]]`,
		},
		{
			"escapes text",
			"1 < 2 & [[ Tom & Jerry ]]",
			`1 &lt; 2 &amp; [[ <a href="https://en.wikipedia.org/wiki/Tom_&amp;_Jerry">Tom &amp; Jerry</a> ]]`,
		},
		{"no links", "plain", "plain"},
		{"bare title stays text", "Readers liked Physics.", "Readers liked Physics."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WikitextToHTML("en", tt.in); got != tt.want {
				t.Errorf("WikitextToHTML() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}
