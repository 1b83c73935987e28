package article

import (
	"strings"
	"testing"
)

func transform(t *testing.T, markup string, opts Options) string {
	t.Helper()
	if opts.Lang == "" {
		opts.Lang = "en"
	}
	out, err := Transform(markup, opts)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	return out
}

func TestTransformRemovesBaseAndStylesheets(t *testing.T) {
	markup := `<html><head>
<base href="//en.wikipedia.org/wiki/">
<link rel="stylesheet" href="/w/load.php?modules=a">
<link rel="stylesheet" href="/w/load.php?modules=b">
<link rel="dc:isVersionOf" href="//en.wikipedia.org/wiki/Foo">
</head><body><p>Hi</p></body></html>`

	out := transform(t, markup, Options{})
	if strings.Contains(out, "<base") {
		t.Errorf("output still has <base>: %s", out)
	}
	if strings.Contains(out, "stylesheet") {
		t.Errorf("output still has stylesheet links: %s", out)
	}
	if !strings.Contains(out, "<p>Hi</p>") {
		t.Errorf("body content lost: %s", out)
	}
}

func TestTransformRelocatesHeadStylesInOrder(t *testing.T) {
	markup := `<html><head><style>.a{}</style><style>.b{}</style></head><body><p>Hi</p></body></html>`

	out := transform(t, markup, Options{})
	if want := "<style>.a{}</style><style>.b{}</style><p>Hi</p>"; out != want {
		t.Errorf("got  %s\nwant %s", out, want)
	}
}

func TestTransformLinks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "article",
			in:   `<a href="./Albert_Einstein">Einstein</a>`,
			want: `<a href="/wiki/Albert_Einstein">Einstein</a>`,
		},
		{
			name: "article with fragment",
			in:   `<a href="./Physics#History">h</a>`,
			want: `<a href="/wiki/Physics#History">h</a>`,
		},
		{
			name: "special",
			in:   `<a href="./Special:Foo">s</a>`,
			want: `<a href="https://en.wikipedia.org/wiki/Special:Foo" target="_blank" rel="noopener">s</a>`,
		},
		{
			name: "category",
			in:   `<a href="./Category:Physicists" rel="mw:WikiLink">c</a>`,
			want: `<a href="https://en.wikipedia.org/wiki/Category:Physicists" rel="noopener" target="_blank">c</a>`,
		},
		{
			name: "external untouched",
			in:   `<a href="https://example.org/x">e</a>`,
			want: `<a href="https://example.org/x">e</a>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := transform(t, "<body>"+tt.in+"</body>", Options{})
			if out != tt.want {
				t.Errorf("got  %s\nwant %s", out, tt.want)
			}
		})
	}
}

func TestTransformSpecialLinksUseLanguage(t *testing.T) {
	out := transform(t, `<body><a href="./File:Foo.jpg">f</a></body>`, Options{Lang: "de"})
	if !strings.Contains(out, `href="https://de.wikipedia.org/wiki/File:Foo.jpg"`) {
		t.Errorf("got %s", out)
	}
}

func TestTransformImages(t *testing.T) {
	markup := `<body><img src="//example.org/a.png" srcset="//example.org/a2.png 2x, https://ok.org/b.png 3x"><img src="https://ok.org/c.png"></body>`

	out := transform(t, markup, Options{})
	if !strings.Contains(out, `src="https://example.org/a.png"`) {
		t.Errorf("src not rewritten: %s", out)
	}
	if !strings.Contains(out, `srcset="https://example.org/a2.png 2x, https://ok.org/b.png 3x"`) {
		t.Errorf("srcset not rewritten: %s", out)
	}
	if !strings.Contains(out, `src="https://ok.org/c.png"`) {
		t.Errorf("absolute src changed: %s", out)
	}
}

func TestSecureSrcset(t *testing.T) {
	tests := []struct{ in, want string }{
		{"//a/x.png 1.5x", "https://a/x.png 1.5x"},
		{"//a/x.png 1.5x,//a/y.png 2x", "https://a/x.png 1.5x,https://a/y.png 2x"},
		{"https://a/x.png 2x", "https://a/x.png 2x"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := secureSrcset(tt.in); got != tt.want {
			t.Errorf("secureSrcset(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTransformHeadings(t *testing.T) {
	out := transform(t, `<body><h2 id="History">History</h2><h3 class="x">Early</h3></body>`, Options{})
	if !strings.Contains(out, `<h2 id="History" class="mw-heading mw-heading2">`) {
		t.Errorf("h2 not annotated: %s", out)
	}
	if !strings.Contains(out, `<h3 class="x mw-heading mw-heading3">`) {
		t.Errorf("h3 not annotated: %s", out)
	}
}

const sectioned = `<body>` +
	`<section><p>Lead</p></section>` +
	`<section><h2>History</h2><p>Text</p><section><h3>Early</h3></section></section>` +
	`</body>`

func TestTransformDesktopKeepsSections(t *testing.T) {
	out := transform(t, sectioned, Options{})
	if strings.Contains(out, "<details") {
		t.Errorf("desktop output should not fold sections: %s", out)
	}
}

func TestTransformCompactFoldsSections(t *testing.T) {
	out := transform(t, sectioned, Options{Compact: true})

	want := `<section><p>Lead</p></section>` +
		`<details class="cdx-accordion"><summary><span class="cdx-accordion__header">` +
		`<span class="cdx-accordion__header__title">History</span></span></summary>` +
		`<div class="cdx-accordion__content"><p>Text</p>` +
		`<section><h3 class="mw-heading mw-heading3">Early</h3></section></div></details>`
	if out != want {
		t.Errorf("got  %s\nwant %s", out, want)
	}
}

func TestTransformCompactExpanded(t *testing.T) {
	out := transform(t, sectioned, Options{Compact: true, SectionsExpanded: true})
	if !strings.Contains(out, `<details class="cdx-accordion" open="">`) {
		t.Errorf("expected open accordion: %s", out)
	}
}

func TestIsReserved(t *testing.T) {
	for _, title := range []string{"Special:Random", "File:X.jpg", "Category:A", "Help:B", "Wikipedia:C", "Template:D", "Talk:E"} {
		if !IsReserved(title) {
			t.Errorf("IsReserved(%q) = false", title)
		}
	}
	for _, title := range []string{"Albert_Einstein", "Specialist", "User:Foo"} {
		if IsReserved(title) {
			t.Errorf("IsReserved(%q) = true", title)
		}
	}
}
