package httpapi

import (
	"path"
	"strings"
)

// normalizeBasePath turns a configured mount point into "" or "/a/b".
func normalizeBasePath(value string) string {
	trimmed := strings.Trim(strings.TrimSpace(value), "/")
	if trimmed == "" {
		return ""
	}
	return path.Clean("/" + trimmed)
}

// buildBaseHref joins the public URL and mount point for <base href>. The
// result always ends in a slash, or is empty when neither is set.
func buildBaseHref(baseURL, basePath string) string {
	href := strings.TrimRight(strings.TrimSpace(baseURL), "/") + normalizeBasePath(basePath)
	if href == "" {
		return ""
	}
	return href + "/"
}
