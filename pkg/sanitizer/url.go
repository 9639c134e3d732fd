package sanitizer

import "strings"

// NormalizeURL canonicalizes a listing image or host avatar URL before it is
// validated and stored: the scheme is forced to https (the image hosts serve
// both), the host is lowercased, the path keeps its case, and a trailing
// slash is dropped. Input without a scheme is treated as a bare host.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	raw = strings.TrimPrefix(raw, "https://")
	raw = strings.TrimPrefix(raw, "http://")

	host, path, hasPath := strings.Cut(raw, "/")
	normalized := "https://" + strings.ToLower(host)
	if hasPath {
		normalized += "/" + path
	}
	return strings.TrimSuffix(normalized, "/")
}
