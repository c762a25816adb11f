package paging

import (
	"net/http/httptest"
	"testing"
)

func TestParseStart(t *testing.T) {
	tests := []struct {
		url  string
		want int
	}{
		{"/admin/jobs", 1},
		{"/admin/jobs?start=1", 1},
		{"/admin/jobs?start=51", 51},
		{"/admin/jobs?start=0", 1},
		{"/admin/jobs?start=-5", 1},
		{"/admin/jobs?start=abc", 1},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			if got := ParseStart(r); got != tt.want {
				t.Errorf("ParseStart(%q) = %d, want %d", tt.url, got, tt.want)
			}
		})
	}
}

func TestTrim(t *testing.T) {
	tests := []struct {
		name     string
		fetched  int
		start    int
		wantShow int
		wantPrev bool
		wantNext bool
	}{
		{"first page, no more", 10, 1, 10, false, false},
		{"first page, full look-ahead", PageSize + 1, 1, PageSize, false, true},
		{"middle page", PageSize + 1, PageSize + 1, PageSize, true, true},
		{"last partial page", 7, PageSize + 1, 7, true, false},
		{"empty", 0, 1, 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			show, res := Trim(tt.fetched, tt.start)
			if show != tt.wantShow || res.HasPrev != tt.wantPrev || res.HasNext != tt.wantNext {
				t.Errorf("Trim(%d, %d) = (%d, %+v), want (%d, prev=%v next=%v)",
					tt.fetched, tt.start, show, res, tt.wantShow, tt.wantPrev, tt.wantNext)
			}
		})
	}
}

func TestPrevNextStart(t *testing.T) {
	if got := PrevStart(1); got != 1 {
		t.Errorf("PrevStart(1) = %d, want 1", got)
	}
	if got := PrevStart(PageSize + 1); got != 1 {
		t.Errorf("PrevStart(%d) = %d, want 1", PageSize+1, got)
	}
	if got := NextStart(1); got != PageSize+1 {
		t.Errorf("NextStart(1) = %d, want %d", got, PageSize+1)
	}
}
