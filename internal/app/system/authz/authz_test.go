package authz

import (
	"net/http/httptest"
	"testing"

	"github.com/kstargroup/kstarweb/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserCtx_NoUser(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)

	role, name, id, ok := UserCtx(req)
	if ok {
		t.Error("expected ok=false with no user")
	}
	if role != "visitor" || name != "" || id != primitive.NilObjectID {
		t.Errorf("got (%q, %q, %v), want visitor defaults", role, name, id)
	}
}

func TestUserCtx_MalformedID(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{ID: "not-an-object-id", Name: "X", Role: "admin"})

	_, _, _, ok := UserCtx(req)
	if ok {
		t.Error("expected ok=false for malformed user ID")
	}
}

func TestUserCtx_ValidAdmin(t *testing.T) {
	oid := primitive.NewObjectID()
	req := httptest.NewRequest("GET", "/", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{ID: oid.Hex(), Name: "Asha", Role: "Admin"})

	role, name, id, ok := UserCtx(req)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if role != "admin" {
		t.Errorf("role = %q, want lowercase admin", role)
	}
	if name != "Asha" || id != oid {
		t.Errorf("got (%q, %v)", name, id)
	}
}

func TestIsAdmin(t *testing.T) {
	oid := primitive.NewObjectID()

	admin := auth.WithTestUser(httptest.NewRequest("GET", "/", nil),
		&auth.SessionUser{ID: oid.Hex(), Role: "admin"})
	if !IsAdmin(admin) {
		t.Error("expected IsAdmin=true for admin")
	}

	user := auth.WithTestUser(httptest.NewRequest("GET", "/", nil),
		&auth.SessionUser{ID: oid.Hex(), Role: "user"})
	if IsAdmin(user) {
		t.Error("expected IsAdmin=false for regular user")
	}

	if IsAdmin(httptest.NewRequest("GET", "/", nil)) {
		t.Error("expected IsAdmin=false for anonymous")
	}
}

func TestHasAnyRole(t *testing.T) {
	oid := primitive.NewObjectID()
	req := auth.WithTestUser(httptest.NewRequest("GET", "/", nil),
		&auth.SessionUser{ID: oid.Hex(), Role: "user"})

	if !HasAnyRole(req, "admin", "user") {
		t.Error("expected user role to match")
	}
	if HasAnyRole(req, "admin") {
		t.Error("expected no match against admin only")
	}
}
