package errors

import (
	"net/http/httptest"
	"testing"

	"github.com/kstargroup/kstarweb/internal/testutil"
)

// renderTolerant runs fn, swallowing a panic from template rendering, which
// is not initialized in handler tests.
func renderTolerant(fn func()) {
	defer func() { _ = recover() }()
	fn()
}

func TestRenderNotFound_Status(t *testing.T) {
	req := testutil.NewRequest("GET", "/careers/000000000000000000000000")
	rec := httptest.NewRecorder()

	renderTolerant(func() {
		RenderNotFound(rec, req, "That job is no longer listed.", "/careers")
	})

	if rec.Code != 404 {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestRenderBadRequest_DefaultsMessage(t *testing.T) {
	req := testutil.NewRequest("GET", "/admin/volunteers?type=bogus")
	rec := httptest.NewRecorder()

	renderTolerant(func() {
		RenderBadRequest(rec, req, "", "/admin/volunteers")
	})

	if rec.Code != 400 {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestNewPageData_BackURLOverride(t *testing.T) {
	req := testutil.NewRequest("GET", "/forbidden")

	data := newPageData(req, "Access denied", "No.", "/admin/users", "/")
	if data.BackURL != "/admin/users" {
		t.Errorf("BackURL = %q, want explicit override", data.BackURL)
	}
	if data.Title != "Access denied" || data.Message != "No." {
		t.Errorf("unexpected page data: %+v", data)
	}

	data = newPageData(req, "Access denied", "No.", "", "/")
	if data.BackURL == "" {
		t.Error("expected a fallback BackURL when none is supplied")
	}
}
