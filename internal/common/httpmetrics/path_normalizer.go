package httpmetrics

import (
	"regexp"
	"strings"
)

// Generated user ids are short base36 tokens; collapsing them keeps
// metric label cardinality bounded.
var shortIDRegex = regexp.MustCompile(`^[0-9a-z]{7}$`)

func NormalizePath(path string) string {
	if path == "" {
		return "/"
	}

	parts := strings.Split(path, "/")
	for i, part := range parts {
		if part == "" {
			continue
		}
		if shortIDRegex.MatchString(part) && !isRouteWord(part) {
			parts[i] = "{id}"
			continue
		}
		if isNumeric(part) {
			parts[i] = "{param}"
		}
	}

	result := strings.Join(parts, "/")
	if result == "" {
		return "/"
	}

	return result
}

// Static route segments that happen to look like base36 tokens.
var routeWords = map[string]bool{
	"metrics": true,
}

func isRouteWord(s string) bool {
	return routeWords[s]
}

func isNumeric(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
