package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wikireader/pkg/cache"
	"github.com/matzehuels/wikireader/pkg/errors"
)

// run executes the root command with args and returns its output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{"WIKIREADER_LANG", "WIKIREADER_SKIN", "WIKIREADER_CACHE", "WIKIREADER_REDIS_ADDR"} {
		t.Setenv(k, "")
	}
	prev := statusOut
	statusOut = io.Discard
	t.Cleanup(func() { statusOut = prev })

	var out bytes.Buffer
	c := New(io.Discard, log.InfoLevel)
	c.SetOutput(&out)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wikireader.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRootCommandSubcommands(t *testing.T) {
	root := New(io.Discard, log.InfoLevel).RootCommand()

	want := []string{"article", "edition", "search", "styles", "serve", "cache", "completion"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestStylesCommand(t *testing.T) {
	cfg := writeConfig(t, "lang = \"de\"\nskin = \"mobile\"\n")

	out, err := run(t, "styles", "--config", cfg)
	if err != nil {
		t.Fatalf("styles: %v", err)
	}
	if !strings.HasPrefix(out, "https://de.wikipedia.org/w/load.php?") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "skin=minerva") {
		t.Errorf("mobile skin not applied: %q", out)
	}

	out, err = run(t, "styles", "--config", cfg, "--skin", "desktop")
	if err != nil {
		t.Fatalf("styles --skin: %v", err)
	}
	if !strings.Contains(out, "skin=vector-2022") {
		t.Errorf("skin override ignored: %q", out)
	}
}

func TestStylesCommandInvalidSkin(t *testing.T) {
	_, err := run(t, "styles", "--skin", "monobook")
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("err = %v, want INVALID_CONFIG", err)
	}
}

func TestArticleCommandInvalidFormat(t *testing.T) {
	_, err := run(t, "article", "Kiwi", "--format", "pdf", "--no-cache")
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("err = %v, want INVALID_FORMAT", err)
	}
}

func TestEditionCommandInvalidMonth(t *testing.T) {
	_, err := run(t, "edition", "--month", "13", "--no-cache")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("err = %v, want INVALID_INPUT", err)
	}
}

func TestCachePathCommand(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, "[cache]\ndir = \""+filepath.ToSlash(dir)+"\"\n")

	out, err := run(t, "cache", "path", "--config", cfg)
	if err != nil {
		t.Fatalf("cache path: %v", err)
	}
	if strings.TrimSpace(out) != filepath.ToSlash(dir) {
		t.Errorf("cache path = %q, want %q", out, dir)
	}
}

func TestCacheClearCommand(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, "[cache]\ndir = \""+filepath.ToSlash(dir)+"\"\n")

	fc, err := cache.NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	for _, k := range []string{"a", "b"} {
		if err := fc.Set(ctx, k, []byte("x"), time.Hour); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := run(t, "cache", "clear", "--config", cfg); err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	if _, ok, _ := fc.Get(ctx, "a"); ok {
		t.Error("entry survived cache clear")
	}
}

func TestWriteOutputFile(t *testing.T) {
	prev := statusOut
	statusOut = io.Discard
	defer func() { statusOut = prev }()

	c := New(io.Discard, log.InfoLevel)
	path := filepath.Join(t.TempDir(), "out", "edition.json")
	if err := c.writeOutput(path, []byte("{}")); err != nil {
		t.Fatalf("writeOutput: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "{}" {
		t.Errorf("file = %q, %v", data, err)
	}
}
