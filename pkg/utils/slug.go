package utils

import (
	"regexp"
	"strings"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// CompanySlug turns a company display name into the URL identifier used by
// dashboard links. "Alimentos del Valle S.A." -> "alimentos_del_valle_s_a".
func CompanySlug(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = nonSlugChars.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}
