package handler

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const indexFile = "index.html"

// portalRoots each have their own prebuilt bundle; unknown paths under one of
// them fall back to that portal's index.html before the landing page's.
var portalRoots = []string{"admin", "developer", "client"}

// SPAHandler serves prebuilt frontend bundles from staticDir with
// client-side routing fallback.
type SPAHandler struct {
	staticDir string
}

func NewSPAHandler(staticDir string) *SPAHandler {
	return &SPAHandler{staticDir: staticDir}
}

func (h *SPAHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Cleaning a rooted path drops any ".." that would leave staticDir.
	urlPath := path.Clean("/" + r.URL.Path)

	if urlPath == "/api" || strings.HasPrefix(urlPath, "/api/") {
		http.NotFound(w, r)
		return
	}

	// ServeFile rejects raw paths containing "..", so serve the cleaned one.
	r2 := new(http.Request)
	*r2 = *r
	u := *r.URL
	u.Path = urlPath
	r2.URL = &u
	r = r2

	filePath := filepath.Join(h.staticDir, filepath.FromSlash(urlPath))
	if info, err := os.Stat(filePath); err == nil && !info.IsDir() {
		http.ServeFile(w, r, filePath)
		return
	}

	for _, index := range h.indexCandidates(urlPath) {
		if _, err := os.Stat(index); err == nil {
			http.ServeFile(w, r, index)
			return
		}
	}
	http.NotFound(w, r)
}

func (h *SPAHandler) indexCandidates(urlPath string) []string {
	first, _, _ := strings.Cut(strings.TrimPrefix(urlPath, "/"), "/")
	candidates := make([]string, 0, 2)
	for _, root := range portalRoots {
		if first == root {
			candidates = append(candidates, filepath.Join(h.staticDir, root, indexFile))
			break
		}
	}
	return append(candidates, filepath.Join(h.staticDir, indexFile))
}
