package utils

import (
	"strconv"
	"strings"
)

// ParseHours reads a usage-hours cell. The legacy sheets contain blanks,
// comma decimals and free text; anything unparsable counts as zero rather
// than failing the whole computation.
func ParseHours(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// ParseRatedLife reads one rated-life cell, falling back to def when the
// cell is blank or not a number.
func ParseRatedLife(raw string, def float64) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

// ParseYes reports whether a completion cell means "done". The legacy
// sheets hold Spanish values, so "si"/"sí" are accepted alongside "yes".
func ParseYes(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "y", "si", "sí", "true", "1":
		return true
	}
	return false
}
