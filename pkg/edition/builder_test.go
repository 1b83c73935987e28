package edition

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/wikireader/pkg/config"
	"github.com/matzehuels/wikireader/pkg/integrations/commons"
	"github.com/matzehuels/wikireader/pkg/integrations/wikipedia"
)

const feedURL = "https://diff.example/feed"

func testSources() (Sources, *fakeImages) {
	thumbs := &fakeThumbs{images: map[string]string{
		"Albert_Einstein": "https://img/ae",
		"Marie_Curie":     "https://img/mc",
		"Ada_Lovelace":    "https://img/al",
	}}
	for _, q := range ParseQuestions(defaultQuestions) {
		thumbs.images[q.Title] = "https://img/q/" + q.Title
	}
	images := &fakeImages{
		titles: []string{"File:A.jpg"},
		infos:  []commons.Image{{Title: "File:A.jpg", ThumbURL: "https://up/a.jpg"}},
	}
	return Sources{
		Pageviews: &fakePageviews{articles: []wikipedia.TopArticle{
			{Title: "Main_Page", Rank: 1},
			{Title: "Albert_Einstein", Rank: 2},
			{Title: "Marie_Curie", Rank: 3},
			{Title: "Ada_Lovelace", Rank: 4},
		}},
		Thumbnails: thumbs,
		Images:     images,
		Text:       fakeText{feedURL: rssFeed},
	}, images
}

func testBuilder(cfg config.Config, src Sources) *Builder {
	cfg.Edition.FeedURL = feedURL
	b := NewBuilder(cfg, src, quietLogger())
	b.Now = func() time.Time { return time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC) }
	b.Rand = rand.New(rand.NewPCG(7, 7))
	return b
}

func TestBuild(t *testing.T) {
	src, _ := testSources()
	ed := testBuilder(config.Default(), src).Build(context.Background())

	if !ed.Draft || ed.Month != 8 || ed.Year != 2026 || ed.MonthName != "September" {
		t.Errorf("header = draft:%v month:%d year:%d name:%s", ed.Draft, ed.Month, ed.Year, ed.MonthName)
	}
	if len(ed.Intro) != 2 {
		t.Errorf("intro = %v", ed.Intro)
	}
	if len(ed.MostRead.Pages) != 3 {
		t.Errorf("mostRead pages = %+v", ed.MostRead.Pages)
	}
	if want := "This month saw people reading articles such as [[ Albert Einstein ]], [[ Marie Curie ]] and [[ Ada Lovelace ]]."; ed.MostRead.Text != want {
		t.Errorf("mostRead text = %q", ed.MostRead.Text)
	}
	if ed.MostReadArchive.Year != 2021 || !strings.HasPrefix(ed.MostReadArchive.Text, "In 2021 people") {
		t.Errorf("archive = year %d text %q", ed.MostReadArchive.Year, ed.MostReadArchive.Text)
	}
	if ed.Question == nil || ed.Question.Image == "" {
		t.Errorf("question = %+v", ed.Question)
	}
	if ed.ThankYous.Total != 3203 || len(ed.ThankYous.Paths) != 3 {
		t.Errorf("thankYous = %+v", ed.ThankYous)
	}
	if got := ed.ThankYous.Paths[0].FromURL; got != "https://en.wikipedia.org/wiki/User:Jdlrobson" {
		t.Errorf("fromUrl = %q", got)
	}
	if len(ed.DiffBlog.Pages) != 2 {
		t.Errorf("diffBlog = %+v", ed.DiffBlog)
	}
	if len(ed.Socials.Pages) != 2 {
		t.Errorf("socials = %+v", ed.Socials)
	}
	if len(ed.Potd.Pages) != 1 {
		t.Errorf("potd = %+v", ed.Potd)
	}
}

func TestBuildJanuaryWraps(t *testing.T) {
	src, _ := testSources()
	b := testBuilder(config.Default(), src)
	b.Now = func() time.Time { return time.Date(2027, time.January, 3, 0, 0, 0, 0, time.UTC) }

	ed := b.Build(context.Background())
	if ed.Month != 11 || ed.Year != 2026 || ed.MostReadArchive.Year != 2021 {
		t.Errorf("month=%d year=%d archive=%d", ed.Month, ed.Year, ed.MostReadArchive.Year)
	}
}

func TestBuildIsolatesFailures(t *testing.T) {
	for _, concurrency := range []int{0, 1} {
		src, _ := testSources()
		src.Text = fakeText{}
		cfg := config.Default()
		cfg.Edition.Concurrency = concurrency

		ed := testBuilder(cfg, src).Build(context.Background())

		if ed.DiffBlog.Pages == nil || len(ed.DiffBlog.Pages) != 0 {
			t.Errorf("concurrency %d: diffBlog = %+v, want empty", concurrency, ed.DiffBlog)
		}
		if len(ed.MostRead.Pages) != 3 || ed.Question == nil || len(ed.Potd.Pages) != 1 || len(ed.Socials.Pages) != 2 {
			t.Errorf("concurrency %d: other sections should be populated: %+v", concurrency, ed)
		}
	}
}

func TestBuildAllSourcesDown(t *testing.T) {
	cfg := config.Default()
	cfg.Edition.Questions = "/nonexistent/questions.txt"
	src := Sources{
		Pageviews:  &fakePageviews{err: errUpstream},
		Thumbnails: &fakeThumbs{fail: func([]string) bool { return true }},
		Images:     &fakeImages{err: errUpstream},
		Text:       fakeText{},
	}

	ed := testBuilder(cfg, src).Build(context.Background())

	data, err := json.Marshal(ed)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out := string(data)
	for _, want := range []string{
		`"mostRead":{"pages":[]`,
		`"mostReadArchive":{"pages":[]`,
		`"question":null`,
		`"diffBlog":{"pages":[]}`,
		`"potd":{"pages":[]}`,
		`"draft":true`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("edition JSON missing %s:\n%s", want, out)
		}
	}
	if ed.ThankYous.Total == 0 || len(ed.Socials.Pages) == 0 {
		t.Error("static sections should survive upstream failures")
	}
}

func TestBuildDeterministic(t *testing.T) {
	src, _ := testSources()
	first := testBuilder(config.Default(), src).Build(context.Background())
	src, _ = testSources()
	second := testBuilder(config.Default(), src).Build(context.Background())

	if first.Question.Title != second.Question.Title {
		t.Errorf("same seed picked %s then %s", first.Question.Title, second.Question.Title)
	}
}

func TestLoadResource(t *testing.T) {
	f := fakeText{"https://example.org/q.txt": "text,title\nQ?,T\n"}

	got, err := LoadResource(context.Background(), f, "", "fallback")
	if err != nil || got != "fallback" {
		t.Errorf("embedded: %q, %v", got, err)
	}
	got, err = LoadResource(context.Background(), f, "https://example.org/q.txt", "fallback")
	if err != nil || !strings.HasPrefix(got, "text,title") {
		t.Errorf("remote: %q, %v", got, err)
	}
	if _, err := LoadResource(context.Background(), f, t.TempDir()+"/missing.txt", ""); err == nil {
		t.Error("missing file should fail")
	}
}
