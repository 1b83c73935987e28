package article

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/matzehuels/wikireader/pkg/config"
	"github.com/matzehuels/wikireader/pkg/errors"
)

// Options controls how article markup is adapted.
type Options struct {
	Lang             string // language edition for absolute links
	Compact          bool   // fold sections into accordions
	SectionsExpanded bool   // accordions start open
}

// OptionsFromConfig derives transform options from the runtime config.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		Lang:             cfg.Lang,
		Compact:          cfg.Skin.Compact(),
		SectionsExpanded: cfg.SectionsExpanded,
	}
}

// reservedPrefixes are namespaces that have no in-app route.
var reservedPrefixes = []string{
	"Special:",
	"File:",
	"Category:",
	"Help:",
	"Wikipedia:",
	"Template:",
	"Talk:",
}

// Transform parses markup and returns the adapted inner HTML of its body.
func Transform(markup string, opts Options) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeParseFailed, err, "parse article markup")
	}

	doc.Find("base").Remove()
	doc.Find(`link[rel="stylesheet"]`).Remove()
	relocateHeadStyles(doc)
	rewriteLinks(doc, opts.Lang)
	secureImages(doc)
	annotateHeadings(doc)
	if opts.Compact {
		foldSections(doc, opts.SectionsExpanded)
	}

	out, err := doc.Find("body").Html()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeParseFailed, err, "render article markup")
	}
	return out, nil
}

// IsReserved reports whether a bare title belongs to a namespace that is
// opened on Wikipedia itself rather than inside the reader.
func IsReserved(title string) bool {
	for _, p := range reservedPrefixes {
		if strings.HasPrefix(title, p) {
			return true
		}
	}
	return false
}

// =============================================================================
// Rewrites
// =============================================================================

func relocateHeadStyles(doc *goquery.Document) {
	body := doc.Find("body").First()
	if body.Length() == 0 {
		return
	}
	bodyNode := body.Get(0)
	anchor := bodyNode.FirstChild

	doc.Find("head style").Each(func(_ int, s *goquery.Selection) {
		n := s.Get(0)
		n.Parent.RemoveChild(n)
		bodyNode.InsertBefore(n, anchor)
	})
}

func rewriteLinks(doc *goquery.Document, lang string) {
	doc.Find(`a[href^="./"]`).Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		title := strings.TrimPrefix(href, "./")

		if IsReserved(title) {
			a.SetAttr("href", "https://"+lang+".wikipedia.org/wiki/"+title)
			a.SetAttr("target", "_blank")
			a.SetAttr("rel", "noopener")
			return
		}
		a.SetAttr("href", "/wiki/"+title)
	})
}

func secureImages(doc *goquery.Document) {
	doc.Find(`img[src^="//"]`).Each(func(_ int, img *goquery.Selection) {
		src, _ := img.Attr("src")
		img.SetAttr("src", "https:"+src)
	})
	doc.Find("img[srcset]").Each(func(_ int, img *goquery.Selection) {
		srcset, _ := img.Attr("srcset")
		img.SetAttr("srcset", secureSrcset(srcset))
	})
}

// secureSrcset prefixes https: to every protocol-relative candidate and
// leaves all other candidates byte-for-byte unchanged.
func secureSrcset(srcset string) string {
	parts := strings.Split(srcset, ",")
	for i, part := range parts {
		trimmed := strings.TrimLeft(part, " \t\n\r\f")
		if strings.HasPrefix(trimmed, "//") {
			parts[i] = part[:len(part)-len(trimmed)] + "https:" + trimmed
		}
	}
	return strings.Join(parts, ",")
}

func annotateHeadings(doc *goquery.Document) {
	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, h *goquery.Selection) {
		level := strings.TrimPrefix(goquery.NodeName(h), "h")
		h.AddClass("mw-heading", "mw-heading"+level)
	})
}

// =============================================================================
// Accordions
// =============================================================================

func foldSections(doc *goquery.Document, expanded bool) {
	doc.Find("body").First().ChildrenFiltered("section").Each(func(_ int, section *goquery.Selection) {
		heading := section.ChildrenFiltered("h2").First()
		if heading.Length() == 0 {
			return
		}
		details := accordion(heading.Text(), expanded)
		content := details.LastChild

		sectionNode := section.Get(0)
		headingNode := heading.Get(0)
		for c := sectionNode.FirstChild; c != nil; c = sectionNode.FirstChild {
			sectionNode.RemoveChild(c)
			if c != headingNode {
				content.AppendChild(c)
			}
		}

		parent := sectionNode.Parent
		parent.InsertBefore(details, sectionNode)
		parent.RemoveChild(sectionNode)
	})
}

// accordion builds
//
//	<details class="cdx-accordion" [open]>
//	  <summary><span class="cdx-accordion__header"><span class="cdx-accordion__header__title">label</span></span></summary>
//	  <div class="cdx-accordion__content"></div>
//	</details>
//
// and returns the details node; its last child is the content wrapper.
func accordion(label string, expanded bool) *html.Node {
	details := element(atom.Details, "cdx-accordion")
	if expanded {
		details.Attr = append(details.Attr, html.Attribute{Key: "open"})
	}

	title := element(atom.Span, "cdx-accordion__header__title")
	title.AppendChild(&html.Node{Type: html.TextNode, Data: label})
	header := element(atom.Span, "cdx-accordion__header")
	header.AppendChild(title)
	summary := element(atom.Summary, "")
	summary.AppendChild(header)

	details.AppendChild(summary)
	details.AppendChild(element(atom.Div, "cdx-accordion__content"))
	return details
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}
