package volunteer_test

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	uierrors "github.com/kstargroup/kstarweb/internal/app/features/errors"
	"github.com/kstargroup/kstarweb/internal/app/features/volunteer"
	volunteerstore "github.com/kstargroup/kstarweb/internal/app/store/volunteers"
	"github.com/kstargroup/kstarweb/internal/app/system/mailer"
	"github.com/kstargroup/kstarweb/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*volunteer.Handler, *mailer.ConsoleMailer, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	mail := mailer.NewConsole(logger)
	h := volunteer.NewHandler(db, mail, uierrors.NewErrorLogger(logger), logger)
	return h, mail, db
}

// renderTolerant runs fn, swallowing a panic from template rendering, which
// is not initialized in handler tests.
func renderTolerant(fn func()) {
	defer func() { _ = recover() }()
	fn()
}

func TestHandleRegister_StoresAndWelcomes(t *testing.T) {
	h, mail, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	form := url.Values{
		"name":         {"Amina Hassan"},
		"email":        {"amina@example.com"},
		"phone":        {"+255700000002"},
		"type":         {"Partner"},
		"skills":       {"Curriculum design"},
		"availability": {"Weekday evenings"},
	}
	req := httptest.NewRequest("POST", "/volunteer", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := testutil.NewRecorder()

	h.HandleRegister(rec.ResponseRecorder, req)
	rec.AssertRedirect(t, "/volunteer?registered=1")

	regs, err := volunteerstore.New(db).ListNewestFirst(ctx, "", 0, 0)
	if err != nil {
		t.Fatalf("list registrations: %v", err)
	}
	if len(regs) != 1 {
		t.Fatalf("registrations stored: got %d, want 1", len(regs))
	}
	if regs[0].Type != "Partner" {
		t.Errorf("type: got %q, want Partner", regs[0].Type)
	}
	if regs[0].Email != "amina@example.com" {
		t.Errorf("email: got %q", regs[0].Email)
	}

	sent := mail.Sent()
	if len(sent) != 1 {
		t.Fatalf("welcome mails: got %d, want 1", len(sent))
	}
	if sent[0].To[0].Address != "amina@example.com" {
		t.Errorf("welcome recipient: got %q", sent[0].To[0].Address)
	}
}

func TestHandleRegister_UnknownTypeRejected(t *testing.T) {
	h, mail, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	form := url.Values{
		"name":  {"Amina Hassan"},
		"email": {"amina@example.com"},
		"type":  {"Sponsor"},
	}
	req := httptest.NewRequest("POST", "/volunteer", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := testutil.NewRecorder()

	renderTolerant(func() { h.HandleRegister(rec.ResponseRecorder, req) })

	n, err := volunteerstore.New(db).Count(ctx, bson.M{})
	if err != nil {
		t.Fatalf("count registrations: %v", err)
	}
	if n != 0 {
		t.Errorf("registrations stored for unknown type: got %d, want 0", n)
	}
	if len(mail.Sent()) != 0 {
		t.Errorf("welcome mails for rejected form: got %d, want 0", len(mail.Sent()))
	}
}

func TestHandleDelete(t *testing.T) {
	h, _, db := newTestHandler(t)
	f := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	reg := f.CreateVolunteer(ctx, "Amina Hassan", "amina@example.com", "Volunteer")

	req := testutil.NewAuthenticatedRequest("POST", "/admin/volunteers/"+reg.ID.Hex()+"/delete", testutil.AdminUser())
	req = testutil.WithChiURLParam(req, "id", reg.ID.Hex())
	rec := testutil.NewRecorder()

	h.HandleDelete(rec.ResponseRecorder, req)
	rec.AssertRedirect(t, "/admin/volunteers")

	if _, err := volunteerstore.New(db).GetByID(ctx, reg.ID); err != mongo.ErrNoDocuments {
		t.Errorf("registration still present after delete: err=%v", err)
	}
}
