package navigation

import (
	"strconv"
	"strings"
)

// StartURL returns base with a "start" pagination parameter appended,
// respecting any query string already present. Page one drops the parameter.
func StartURL(base string, start int) string {
	if start <= 1 {
		return base
	}
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + "start=" + strconv.Itoa(start)
}
