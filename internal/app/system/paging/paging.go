// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// PageSize is the default number of rows shown in paged admin lists.
// Kept as an int because call sites add/subtract and then cast to int64 for
// Mongo Find().SetLimit().
const PageSize = 50

// LimitPlusOne returns PageSize+1 as int64 for look-ahead pagination
// (fetch one extra document to detect hasNext).
func LimitPlusOne() int64 { return int64(PageSize + 1) }

// ParseStart extracts the 1-based "start" query parameter.
// Returns 1 if not present or invalid.
func ParseStart(r *http.Request) int {
	s := query.Get(r, "start")
	if s == "" {
		return 1
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Result holds the output of Trim.
type Result struct {
	HasPrev bool
	HasNext bool
}

// Trim computes pagination indicators for a page fetched with PageSize+1
// look-ahead rows, returning how many rows to display and whether previous
// and next pages exist. start is the 1-based index of the first row.
func Trim(fetched, start int) (show int, res Result) {
	res.HasPrev = start > 1
	if fetched > PageSize {
		res.HasNext = true
		return PageSize, res
	}
	return fetched, res
}

// PrevStart returns the "start" value for the previous page.
func PrevStart(start int) int {
	prev := start - PageSize
	if prev < 1 {
		return 1
	}
	return prev
}

// NextStart returns the "start" value for the next page.
func NextStart(start int) int {
	return start + PageSize
}
