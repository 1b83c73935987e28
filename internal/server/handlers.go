package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/wikireader/pkg/errors"
	"github.com/matzehuels/wikireader/pkg/integrations/wikipedia"
	"github.com/matzehuels/wikireader/pkg/wiki"
)

const maxSearchLimit = 50

type articleResponse struct {
	Title string `json:"title"`
	HTML  string `json:"html"`
}

type searchResponse struct {
	Query   string                   `json:"query"`
	Results []wikipedia.SearchResult `json:"results"`
}

type stylesResponse struct {
	URL  string `json:"url"`
	Skin string `json:"skin"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleArticle serves GET /api/article/{title}. Titles may contain
// slashes. ?format=markdown returns text/markdown, ?refresh=1 bypasses the
// cache.
func (s *Server) handleArticle(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "*")
	if r.URL.RawPath != "" {
		if t, err := url.PathUnescape(title); err == nil {
			title = t
		}
	}
	refresh := r.URL.Query().Get("refresh") != ""

	switch format := r.URL.Query().Get("format"); format {
	case "", "html":
		body, err := s.deps.Articles.Fetch(r.Context(), title, refresh)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, articleResponse{Title: wiki.NormalizeTitle(title), HTML: body})
	case "markdown":
		body, err := s.deps.Articles.Markdown(r.Context(), title, refresh)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(body))
	default:
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format))
	}
}

func (s *Server) handleEdition(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.Editions.Build(r.Context()))
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxSearchLimit {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "limit must be between 1 and %d", maxSearchLimit))
			return
		}
		limit = n
	}

	results, err := s.deps.Search.Search(r.Context(), q, limit)
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeNetwork, err, "search failed"))
		return
	}
	writeJSON(w, http.StatusOK, searchResponse{Query: q, Results: results})
}

func (s *Server) handleStyles(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, stylesResponse{
		URL:  wikipedia.StylesURL(s.cfg.Lang, s.cfg.Skin),
		Skin: string(s.cfg.Skin),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
