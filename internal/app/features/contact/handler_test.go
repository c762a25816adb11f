package contact_test

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/kstargroup/kstarweb/internal/app/features/contact"
	uierrors "github.com/kstargroup/kstarweb/internal/app/features/errors"
	contactstore "github.com/kstargroup/kstarweb/internal/app/store/contacts"
	"github.com/kstargroup/kstarweb/internal/app/system/mailer"
	"github.com/kstargroup/kstarweb/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*contact.Handler, *mailer.ConsoleMailer, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	mail := mailer.NewConsole(logger)
	h := contact.NewHandler(db, mail, "info@kstargroup.org", uierrors.NewErrorLogger(logger), logger)
	return h, mail, db
}

// renderTolerant runs fn, swallowing a panic from template rendering, which
// is not initialized in handler tests.
func renderTolerant(fn func()) {
	defer func() { _ = recover() }()
	fn()
}

func TestHandleSubmit_StoresUnreadAndNotifies(t *testing.T) {
	h, mail, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	form := url.Values{
		"name":    {"Jane Doe"},
		"email":   {"jane@example.com"},
		"subject": {"Partnership inquiry"},
		"message": {"I would like to discuss a partnership."},
	}
	req := httptest.NewRequest("POST", "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := testutil.NewRecorder()

	h.HandleSubmit(rec.ResponseRecorder, req)
	rec.AssertRedirect(t, "/contact?sent=1")

	cs := contactstore.New(db)
	subs, err := cs.ListNewestFirst(ctx, false, 0, 0)
	if err != nil {
		t.Fatalf("list submissions: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("submissions stored: got %d, want 1", len(subs))
	}
	sub := subs[0]
	if sub.IsRead {
		t.Error("new submission stored as read")
	}
	if sub.Starred {
		t.Error("new submission stored starred")
	}
	if sub.Email != "jane@example.com" {
		t.Errorf("email: got %q", sub.Email)
	}

	unread, err := cs.CountUnread(ctx)
	if err != nil {
		t.Fatalf("count unread: %v", err)
	}
	if unread != 1 {
		t.Errorf("unread count: got %d, want 1", unread)
	}

	sent := mail.Sent()
	if len(sent) != 1 {
		t.Fatalf("notification mails: got %d, want 1", len(sent))
	}
	if sent[0].To[0].Address != "info@kstargroup.org" {
		t.Errorf("notification recipient: got %q", sent[0].To[0].Address)
	}
}

func TestHandleSubmit_InvalidEmailRejected(t *testing.T) {
	h, mail, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	form := url.Values{
		"name":    {"Jane Doe"},
		"email":   {"not-an-email"},
		"subject": {"Hello"},
		"message": {"Hi"},
	}
	req := httptest.NewRequest("POST", "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := testutil.NewRecorder()

	renderTolerant(func() { h.HandleSubmit(rec.ResponseRecorder, req) })

	n, err := contactstore.New(db).Count(ctx, bson.M{})
	if err != nil {
		t.Fatalf("count submissions: %v", err)
	}
	if n != 0 {
		t.Errorf("submissions stored for invalid form: got %d, want 0", n)
	}
	if len(mail.Sent()) != 0 {
		t.Errorf("notification mails for invalid form: got %d, want 0", len(mail.Sent()))
	}
}

func TestServeSubmission_MarksReadOnce(t *testing.T) {
	h, _, db := newTestHandler(t)
	f := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	sub := f.CreateContact(ctx, "Jane Doe", "jane@example.com", "Partnership inquiry")
	cs := contactstore.New(db)

	open := func() {
		req := testutil.NewAuthenticatedRequest("GET", "/admin/contacts/"+sub.ID.Hex(), testutil.AdminUser())
		req = testutil.WithChiURLParam(req, "id", sub.ID.Hex())
		rec := testutil.NewRecorder()
		renderTolerant(func() { h.ServeSubmission(rec.ResponseRecorder, req) })
	}

	open()
	got, err := cs.GetByID(ctx, sub.ID)
	if err != nil {
		t.Fatalf("reload submission: %v", err)
	}
	if !got.IsRead {
		t.Fatal("submission not marked read after first open")
	}

	// A second open matches nothing; the filtered update only fires on
	// unread documents.
	changed, err := cs.MarkRead(ctx, sub.ID)
	if err != nil {
		t.Fatalf("mark read again: %v", err)
	}
	if changed {
		t.Error("second mark-read modified the document")
	}

	unread, err := cs.CountUnread(ctx)
	if err != nil {
		t.Fatalf("count unread: %v", err)
	}
	if unread != 0 {
		t.Errorf("unread count after open: got %d, want 0", unread)
	}
}

func TestHandleSetStarred_Toggle(t *testing.T) {
	h, _, db := newTestHandler(t)
	f := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	sub := f.CreateContact(ctx, "Jane Doe", "jane@example.com", "Hello")
	cs := contactstore.New(db)

	setStar := func(val string) {
		form := url.Values{"starred": {val}}
		req := httptest.NewRequest("POST", "/admin/contacts/"+sub.ID.Hex()+"/star", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req = testutil.WithUser(req, testutil.AdminUser())
		req = testutil.WithChiURLParam(req, "id", sub.ID.Hex())
		rec := testutil.NewRecorder()
		h.HandleSetStarred(rec.ResponseRecorder, req)
		rec.AssertRedirect(t, "/admin/contacts")
	}

	setStar("1")
	got, err := cs.GetByID(ctx, sub.ID)
	if err != nil {
		t.Fatalf("reload submission: %v", err)
	}
	if !got.Starred {
		t.Error("submission not starred")
	}

	setStar("0")
	got, err = cs.GetByID(ctx, sub.ID)
	if err != nil {
		t.Fatalf("reload submission: %v", err)
	}
	if got.Starred {
		t.Error("submission still starred after unstar")
	}
}

func TestHandleDelete(t *testing.T) {
	h, _, db := newTestHandler(t)
	f := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	sub := f.CreateContact(ctx, "Jane Doe", "jane@example.com", "Hello")

	req := testutil.NewAuthenticatedRequest("POST", "/admin/contacts/"+sub.ID.Hex()+"/delete", testutil.AdminUser())
	req = testutil.WithChiURLParam(req, "id", sub.ID.Hex())
	rec := testutil.NewRecorder()

	h.HandleDelete(rec.ResponseRecorder, req)
	rec.AssertRedirect(t, "/admin/contacts")

	if _, err := contactstore.New(db).GetByID(ctx, sub.ID); err != mongo.ErrNoDocuments {
		t.Errorf("submission still present after delete: err=%v", err)
	}
}
