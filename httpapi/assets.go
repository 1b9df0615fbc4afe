package httpapi

import (
	"bytes"
	"embed"
	"fmt"
	"html"
	"io/fs"
	"net/http"
	"strings"
	"time"
)

//go:embed assets
var embeddedAssets embed.FS

const baseHrefPlaceholder = "<!-- BASE_HREF -->"

// pageAssets serves the embedded page. The index is rendered once with the
// base href baked in.
type pageAssets struct {
	files fs.FS
	index []byte
}

func mustPageAssets(baseHref string) *pageAssets {
	files, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		panic(fmt.Sprintf("httpapi: embedded assets: %v", err))
	}
	index, err := fs.ReadFile(files, "index.html")
	if err != nil {
		panic(fmt.Sprintf("httpapi: embedded index: %v", err))
	}
	return &pageAssets{files: files, index: applyBaseHref(index, baseHref)}
}

func (a *pageAssets) serveIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	http.ServeContent(w, r, "index.html", time.Time{}, bytes.NewReader(a.index))
}

func (a *pageAssets) fileHandler() http.Handler {
	files := http.StripPrefix("/assets/", http.FileServerFS(a.files))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=300")
		files.ServeHTTP(w, r)
	})
}

func applyBaseHref(data []byte, baseHref string) []byte {
	replacement := ""
	if strings.TrimSpace(baseHref) != "" {
		replacement = fmt.Sprintf(`<base href="%s" />`, html.EscapeString(baseHref))
	}
	return bytes.ReplaceAll(data, []byte(baseHrefPlaceholder), []byte(replacement))
}
