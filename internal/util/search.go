package util

import (
	"regexp"
	"strings"
)

// SearchQuery represents the parsed components of a timer filter string such
// as "cat:kitchen status:running tea".
type SearchQuery struct {
	Categories []string
	Status     []string
	Text       []string
}

var (
	categoryRegex = regexp.MustCompile(`(?:cat|category):(\S+)`)
	statusRegex   = regexp.MustCompile(`status:(\w+)`)
)

// ParseSearchQuery breaks down a raw query string into its structured
// components. Values are lower-cased.
func ParseSearchQuery(query string) SearchQuery {
	sq := SearchQuery{}

	extract := func(re *regexp.Regexp) []string {
		matches := re.FindAllStringSubmatch(query, -1)
		if matches == nil {
			return nil
		}
		var values []string
		for _, match := range matches {
			if len(match) > 1 {
				values = append(values, strings.ToLower(match[1]))
			}
		}
		query = re.ReplaceAllString(query, "")
		return values
	}

	sq.Categories = extract(categoryRegex)
	sq.Status = extract(statusRegex)
	for _, word := range strings.Fields(query) {
		sq.Text = append(sq.Text, strings.ToLower(word))
	}
	return sq
}

func (q SearchQuery) Empty() bool {
	return len(q.Categories) == 0 && len(q.Status) == 0 && len(q.Text) == 0
}

// Match reports whether a timer with the given fields satisfies the query.
// Filters of one kind are ORed, different kinds are ANDed, and every text
// word must appear in the name.
func (q SearchQuery) Match(name, category, status string) bool {
	if len(q.Categories) > 0 && !containsFold(q.Categories, category) {
		return false
	}
	if len(q.Status) > 0 && !containsFold(q.Status, status) {
		return false
	}
	lname := strings.ToLower(name)
	for _, word := range q.Text {
		if !strings.Contains(lname, word) {
			return false
		}
	}
	return true
}

func containsFold(values []string, s string) bool {
	for _, v := range values {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
