package dashboard_test

import (
	"net/http"
	"testing"

	uierrors "github.com/kstargroup/kstarweb/internal/app/features/errors"
	"github.com/kstargroup/kstarweb/internal/app/features/dashboard"
	"github.com/kstargroup/kstarweb/internal/testutil"
	"go.uber.org/zap"
)

func TestServeDashboard(t *testing.T) {
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	h := dashboard.NewHandler(db, uierrors.NewErrorLogger(logger), logger)

	f := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	job := f.CreateJob(ctx, "Mathematics Teacher", "2030-06-30")
	f.CreateApplication(ctx, job, "Jane Doe", "jane@example.com")
	f.CreateContact(ctx, "John Doe", "john@example.com", "Hello")
	f.CreateVolunteer(ctx, "Amina Hassan", "amina@example.com", "Volunteer")

	req := testutil.NewAuthenticatedRequest("GET", "/admin", testutil.AdminUser())
	rec := testutil.NewRecorder()

	func() {
		defer func() { _ = recover() }()
		h.ServeDashboard(rec.ResponseRecorder, req)
	}()

	// The handler only writes a status itself on a database failure.
	if rec.Code == http.StatusInternalServerError {
		t.Fatalf("dashboard returned 500: %s", rec.Body.String())
	}
}
