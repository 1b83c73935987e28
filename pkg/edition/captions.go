package edition

import (
	"strconv"
	"strings"

	"github.com/matzehuels/wikireader/pkg/wiki"
)

// Intro is the edition's opening paragraphs.
var Intro = []string{
	"Welcome to Wikipedia's monthly newsletter. I hope this finds you well and we wish you a wonderful month ahead!",
	"Let's explore what's been happening in the world of Wikipedia this month!",
}

// Caption templates. $1 is replaced by the linked page titles and $2 by the
// year.
const (
	MostReadText      = "This month saw people reading articles such as $1."
	RetroMostReadText = "In $2 people were reading articles like $1."
)

// LinkList joins page titles for a caption. A single title is inserted
// bare; several become "[[ A ]], [[ B ]] and [[ C ]]".
func LinkList(pages []Page) string {
	switch len(pages) {
	case 0:
		return ""
	case 1:
		return wiki.DisplayTitle(pages[0].Title)
	}

	var b strings.Builder
	for i, p := range pages {
		switch {
		case i == len(pages)-1:
			b.WriteString(" and ")
		case i > 0:
			b.WriteString(", ")
		}
		b.WriteString("[[ ")
		b.WriteString(wiki.DisplayTitle(p.Title))
		b.WriteString(" ]]")
	}
	return b.String()
}

// Caption fills template with the first n pages and year. With no pages
// the caption is empty.
func Caption(template string, pages []Page, n, year int) string {
	if len(pages) == 0 {
		return ""
	}
	if n > 0 && len(pages) > n {
		pages = pages[:n]
	}
	text := strings.Replace(template, "$1", LinkList(pages), 1)
	return strings.Replace(text, "$2", strconv.Itoa(year), 1)
}

func newMostRead(lang, template string, pages []Page, n, month, year int) MostReadSection {
	if pages == nil {
		pages = []Page{}
	}
	text := Caption(template, pages, n, year)
	return MostReadSection{
		Pages: pages,
		Month: month,
		Year:  year,
		Text:  text,
		HTML:  wiki.WikitextToHTML(lang, text),
	}
}
