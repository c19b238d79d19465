// Package matcher implements the tool allow-list patterns accepted by
// --tools and N8N_MCP_TOOLS.
package matcher

import "strings"

// Match reports whether name satisfies pattern. "*" matches everything, a
// pattern ending in "*" or "_" matches by prefix, anything else must match
// exactly.
func Match(pattern, name string) bool {
	pattern = strings.TrimSpace(pattern)
	switch {
	case pattern == "*":
		return true
	case pattern == "":
		return false
	case strings.HasSuffix(pattern, "*"):
		return strings.HasPrefix(name, strings.TrimSuffix(pattern, "*"))
	case strings.HasSuffix(pattern, "_"):
		return strings.HasPrefix(name, pattern)
	}
	return pattern == name
}

// Any reports whether name matches at least one pattern. An empty pattern
// list allows everything.
func Any(patterns []string, name string) bool {
	if len(patterns) == 0 {
		return true
	}
	for _, pattern := range patterns {
		if Match(pattern, name) {
			return true
		}
	}
	return false
}

// Split parses a comma separated pattern list, dropping blanks.
func Split(list string) []string {
	var ret []string
	for _, item := range strings.Split(list, ",") {
		if item = strings.TrimSpace(item); item != "" {
			ret = append(ret, item)
		}
	}
	return ret
}
