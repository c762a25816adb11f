package pages_test

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	uierrors "github.com/kstargroup/kstarweb/internal/app/features/errors"
	"github.com/kstargroup/kstarweb/internal/app/features/pages"
	pagestore "github.com/kstargroup/kstarweb/internal/app/store/pages"
	"github.com/kstargroup/kstarweb/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*pages.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	return pages.NewHandler(db, uierrors.NewErrorLogger(logger), logger), db
}

// renderTolerant runs fn, swallowing a panic from template rendering, which
// is not initialized in handler tests.
func renderTolerant(fn func()) {
	defer func() { _ = recover() }()
	fn()
}

func TestHandleEdit_SanitizesAndUpserts(t *testing.T) {
	h, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	form := url.Values{
		"title": {"About Kstar Group"},
		"body":  {`<p>We teach.</p><script>alert("x")</script>`},
	}
	req := httptest.NewRequest("POST", "/admin/pages/about/edit", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = testutil.WithUser(req, testutil.AdminUser())
	req = testutil.WithChiURLParam(req, "slug", "about")
	rec := testutil.NewRecorder()

	h.HandleEdit(rec.ResponseRecorder, req)
	rec.AssertRedirect(t, "/admin/pages")

	p, err := pagestore.New(db).GetBySlug(ctx, "about")
	if err != nil {
		t.Fatalf("load page: %v", err)
	}
	if p.Title != "About Kstar Group" {
		t.Errorf("title: got %q", p.Title)
	}
	if strings.Contains(p.BodyHTML, "<script") {
		t.Errorf("script survived sanitization: %q", p.BodyHTML)
	}
	if !strings.Contains(p.BodyHTML, "<p>We teach.</p>") {
		t.Errorf("paragraph stripped by sanitization: %q", p.BodyHTML)
	}
}

func TestHandleEdit_SecondSaveReplacesContent(t *testing.T) {
	h, db := newTestHandler(t)
	f := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f.CreatePage(ctx, "courses", "Courses")

	form := url.Values{
		"title": {"Our Courses"},
		"body":  {"<p>Updated syllabus.</p>"},
	}
	req := httptest.NewRequest("POST", "/admin/pages/courses/edit", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = testutil.WithUser(req, testutil.AdminUser())
	req = testutil.WithChiURLParam(req, "slug", "courses")
	rec := testutil.NewRecorder()

	h.HandleEdit(rec.ResponseRecorder, req)
	rec.AssertRedirect(t, "/admin/pages")

	p, err := pagestore.New(db).GetBySlug(ctx, "courses")
	if err != nil {
		t.Fatalf("load page: %v", err)
	}
	if p.Title != "Our Courses" {
		t.Errorf("title after update: got %q", p.Title)
	}
	if !strings.Contains(p.BodyHTML, "Updated syllabus") {
		t.Errorf("body after update: got %q", p.BodyHTML)
	}
}

func TestHandleEdit_UnknownSlugRejected(t *testing.T) {
	h, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	form := url.Values{
		"title": {"Rogue"},
		"body":  {"<p>nope</p>"},
	}
	req := httptest.NewRequest("POST", "/admin/pages/rogue/edit", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = testutil.WithUser(req, testutil.AdminUser())
	req = testutil.WithChiURLParam(req, "slug", "rogue")
	rec := testutil.NewRecorder()

	renderTolerant(func() { h.HandleEdit(rec.ResponseRecorder, req) })

	if _, err := pagestore.New(db).GetBySlug(ctx, "rogue"); err != mongo.ErrNoDocuments {
		t.Errorf("rogue slug was stored: err=%v", err)
	}
}
