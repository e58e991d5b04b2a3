package domain

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var idListSeparator = regexp.MustCompile(`[|,;\s]+`)

// ParseIDList splits "1|2, 3" style references. Blanks and non-numbers are dropped.
func ParseIDList(raw string) []int {
	var ids []int
	for _, part := range idListSeparator.Split(strings.TrimSpace(raw), -1) {
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// ParseInt returns fallback when raw is not an integer
func ParseInt(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return n
}

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006-1-2",
	"2006/1/2",
	time.RFC3339,
}

// ParseDate accepts the date formats found in the content sheets; the zero
// time is returned for anything else.
func ParseDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
