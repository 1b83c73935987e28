package integrations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/matzehuels/wikireader/pkg/cache"
	"github.com/matzehuels/wikireader/pkg/httputil"
)

func testClient(t *testing.T, server *httptest.Server, headers map[string]string) *Client {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return NewClient(c, "test:", time.Hour, headers,
		WithHTTPClient(server.Client()),
		WithRetry(3, time.Millisecond))
}

func TestNewClient(t *testing.T) {
	client := NewClient(nil, "test:", time.Hour, UserAgentHeaders("wikireader/test"))

	if client.http == nil {
		t.Error("NewClient() http client is nil")
	}
	if client.cache == nil {
		t.Error("NewClient() should fall back to a null cache")
	}
	if client.headers["Api-User-Agent"] != "wikireader/test" {
		t.Error("NewClient() headers not set correctly")
	}
	if client.attempts != 3 {
		t.Errorf("attempts = %d, want 3", client.attempts)
	}
}

func TestClientGet(t *testing.T) {
	type response struct {
		Message string `json:"message"`
	}

	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		gotUA = r.Header.Get("Api-User-Agent")
		json.NewEncoder(w).Encode(response{Message: "hello"})
	}))
	defer server.Close()

	client := testClient(t, server, UserAgentHeaders("wikireader/test"))

	var resp response
	if err := client.Get(context.Background(), server.URL, &resp); err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if resp.Message != "hello" {
		t.Errorf("Get() message = %q, want %q", resp.Message, "hello")
	}
	if gotUA != "wikireader/test" {
		t.Errorf("Api-User-Agent = %q", gotUA)
	}
}

func TestClientGetText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>hi</body></html>"))
	}))
	defer server.Close()

	client := testClient(t, server, nil)

	text, err := client.GetText(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("GetText() error: %v", err)
	}
	if text != "<html><body>hi</body></html>" {
		t.Errorf("GetText() = %q", text)
	}
}

func TestClientGet404(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	client := testClient(t, server, nil)

	var resp map[string]string
	err := client.Get(context.Background(), server.URL+"/page?x=1", &resp)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
	if Status(err) != http.StatusNotFound {
		t.Errorf("Status() = %d, want 404", Status(err))
	}
}

func TestClientGet500IsRetryable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := testClient(t, server, nil)

	var resp map[string]string
	err := client.Get(context.Background(), server.URL, &resp)
	if !httputil.IsRetryable(err) {
		t.Errorf("Get() error should be retryable, got %T", err)
	}
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("Get() error = %v, want ErrNetwork", err)
	}
	if Status(err) != 500 {
		t.Errorf("Status() = %d, want 500", Status(err))
	}
}

func TestClientCached(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()
	client := testClient(t, server, nil)

	type payload struct {
		Value string `json:"value"`
	}

	fetchCount := 0
	fetch := func(v *payload) func() error {
		return func() error {
			fetchCount++
			*v = payload{Value: "fetched"}
			return nil
		}
	}

	var first payload
	if err := client.Cached(context.Background(), "key", false, &first, fetch(&first)); err != nil {
		t.Fatalf("Cached() error: %v", err)
	}

	var second payload
	if err := client.Cached(context.Background(), "key", false, &second, fetch(&second)); err != nil {
		t.Fatalf("Cached() error: %v", err)
	}
	if fetchCount != 1 {
		t.Errorf("fetch count = %d, want 1 (second call should hit cache)", fetchCount)
	}
	if second.Value != "fetched" {
		t.Errorf("cached value = %q", second.Value)
	}

	var third payload
	_ = client.Cached(context.Background(), "key", true, &third, fetch(&third))
	if fetchCount != 2 {
		t.Errorf("refresh should bypass cache, fetch count = %d", fetchCount)
	}
}

func TestClientCachedRetries(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()
	client := testClient(t, server, nil)

	calls := 0
	var v string
	err := client.Cached(context.Background(), "flaky", false, &v, func() error {
		calls++
		if calls < 2 {
			return httputil.Retryable(ErrNetwork)
		}
		v = "ok"
		return nil
	})
	if err != nil || v != "ok" || calls != 2 {
		t.Errorf("Cached() = %v, v=%q, calls=%d", err, v, calls)
	}

	calls = 0
	err = client.Cached(context.Background(), "missing", false, &v, func() error {
		calls++
		return ErrNotFound
	})
	if !errors.Is(err, ErrNotFound) || calls != 1 {
		t.Errorf("non-retryable error: got %v after %d calls", err, calls)
	}
}

func TestClientContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()
	client := testClient(t, server, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetText(ctx, server.URL)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("GetText() = %v, want context.Canceled", err)
	}
	if httputil.IsRetryable(err) {
		t.Error("cancellation must not be retried")
	}
}

func TestCheckStatus(t *testing.T) {
	tests := []struct {
		name      string
		code      int
		wantErr   bool
		wantIs    error
		retryable bool
	}{
		{"200 OK", 200, false, nil, false},
		{"204 No Content", 204, false, nil, false},
		{"404 Not Found", 404, true, ErrNotFound, false},
		{"400 Bad Request", 400, true, ErrNetwork, false},
		{"403 Forbidden", 403, true, ErrNetwork, false},
		{"429 Too Many Requests", 429, true, ErrNetwork, true},
		{"500 Internal Server Error", 500, true, ErrNetwork, true},
		{"503 Service Unavailable", 503, true, ErrNetwork, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkStatus(tt.code, "https://en.wikipedia.org/w/api.php?titles=A")
			if (err != nil) != tt.wantErr {
				t.Fatalf("checkStatus() = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantIs != nil && !errors.Is(err, tt.wantIs) {
				t.Errorf("checkStatus() = %v, want %v", err, tt.wantIs)
			}
			if httputil.IsRetryable(err) != tt.retryable {
				t.Errorf("retryable = %v, want %v", httputil.IsRetryable(err), tt.retryable)
			}
		})
	}
}

func TestStatusErrorRedactsQuery(t *testing.T) {
	err := checkStatus(404, "https://en.wikipedia.org/w/api.php?titles=Secret")
	if got := err.Error(); got != "status 404 Not Found from https://en.wikipedia.org/w/api.php" {
		t.Errorf("Error() = %q", got)
	}
}
