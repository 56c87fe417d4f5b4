// Package drivelink rewrites shared file-hosting links into direct view and
// thumbnail URLs. Company sheets store whatever form the uploader pasted, so
// several historical URL shapes have to be accepted.
package drivelink

import "regexp"

var idPatterns = []*regexp.Regexp{
	regexp.MustCompile(`/file/d/([\w-]+)`),
	regexp.MustCompile(`[?&]id=([\w-]+)`),
	regexp.MustCompile(`https://drive\.google\.com/open\?id=([\w-]+)`),
	regexp.MustCompile(`https://drive\.google\.com/uc\?id=([\w-]+)`),
}

// FileID extracts the opaque file id from any accepted link form. The second
// return is false when no pattern matches.
func FileID(url string) (string, bool) {
	for _, pat := range idPatterns {
		if m := pat.FindStringSubmatch(url); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// ViewURL resolves a shared link to the canonical viewable form. Links that
// match no known pattern are returned unchanged, matching the behavior the
// dashboard always had.
func ViewURL(url string) string {
	if id, ok := FileID(url); ok {
		return "https://drive.google.com/uc?export=view&id=" + id
	}
	return url
}

// ThumbnailURL resolves a shared link to its thumbnail form.
func ThumbnailURL(url string) string {
	if id, ok := FileID(url); ok {
		return "https://drive.google.com/thumbnail?id=" + id
	}
	return url
}
