package edition

// Page is a reference to a wiki article. Title is in underscore form; Image
// stays empty until a thumbnail is found.
type Page struct {
	Title string `json:"title" yaml:"title"`
	Image string `json:"image" yaml:"image"`
	Rank  int    `json:"rank,omitempty" yaml:"rank,omitempty"`
	Views int    `json:"views,omitempty" yaml:"views,omitempty"`
}

// MostReadSection is a ranked list of pages for one month with its caption.
type MostReadSection struct {
	Pages []Page `json:"pages" yaml:"pages"`
	Month int    `json:"month" yaml:"month"` // 0-11
	Year  int    `json:"year" yaml:"year"`
	Text  string `json:"text" yaml:"text"` // caption with [[ wikilinks ]]
	HTML  string `json:"html" yaml:"html"` // caption with HTML links
}

// Question is one trivia item.
type Question struct {
	Page `yaml:",inline"`
	Text string `json:"text" yaml:"text"`
}

// ThankYous is the thank-you ledger.
type ThankYous struct {
	Total int            `json:"total" yaml:"total"`
	Paths []ThankYouPath `json:"paths" yaml:"paths"`
}

// ThankYouPath is one thank-you between two users.
type ThankYouPath struct {
	From    string `json:"from" yaml:"from"`
	To      string `json:"to" yaml:"to"`
	FromURL string `json:"fromUrl" yaml:"fromUrl"`
	ToURL   string `json:"toUrl" yaml:"toUrl"`
}

// BlogPost is one feed entry.
type BlogPost struct {
	Title string `json:"title" yaml:"title"`
	URL   string `json:"url" yaml:"url"`
}

// SocialPost is one social-media highlight.
type SocialPost struct {
	Title string `json:"title" yaml:"title"`
	URL   string `json:"url" yaml:"url"`
	Image string `json:"image,omitempty" yaml:"image,omitempty"`
}

// PotdImage is one picture of the day. Image is the display URL and URL the
// file's description page.
type PotdImage struct {
	Title string `json:"title" yaml:"title"`
	Image string `json:"image" yaml:"image"`
	URL   string `json:"url" yaml:"url"`
}

// Section wraps a list so every edition section has the {pages: [...]} shape.
type Section[T any] struct {
	Pages []T `json:"pages" yaml:"pages"`
}

// NewSection returns a section over items, never with a nil list.
func NewSection[T any](items []T) Section[T] {
	if items == nil {
		items = []T{}
	}
	return Section[T]{Pages: items}
}

// Edition is the aggregate monthly newsletter. Question is nil when the
// question source failed.
type Edition struct {
	Draft           bool                `json:"draft" yaml:"draft"`
	Month           int                 `json:"month" yaml:"month"`
	MonthName       string              `json:"monthName" yaml:"monthName"`
	Year            int                 `json:"year" yaml:"year"`
	Intro           []string            `json:"intro" yaml:"intro"`
	MostRead        MostReadSection     `json:"mostRead" yaml:"mostRead"`
	MostReadArchive MostReadSection     `json:"mostReadArchive" yaml:"mostReadArchive"`
	Question        *Question           `json:"question" yaml:"question"`
	ThankYous       ThankYous           `json:"thankYous" yaml:"thankYous"`
	DiffBlog        Section[BlogPost]   `json:"diffBlog" yaml:"diffBlog"`
	Socials         Section[SocialPost] `json:"socials" yaml:"socials"`
	Potd            Section[PotdImage]  `json:"potd" yaml:"potd"`
}
