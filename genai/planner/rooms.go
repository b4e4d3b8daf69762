package planner

import (
	"regexp"
	"strings"
)

var roomsExpr = regexp.MustCompile(`(?i)\brooms:[ \t]*([^\r\n]*)`)

// ExtractRooms parses a "Rooms: a, b, c" line. It returns an empty list when
// the marker is absent.
func ExtractRooms(text string) []string {
	match := roomsExpr.FindStringSubmatch(text)
	if len(match) < 2 {
		return []string{}
	}
	ret := []string{}
	for _, name := range strings.Split(match[1], ",") {
		if name = strings.TrimSpace(name); name != "" {
			ret = append(ret, name)
		}
	}
	return ret
}
