package contactstore_test

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	contactstore "github.com/kstargroup/kstarweb/internal/app/store/contacts"
	"github.com/kstargroup/kstarweb/internal/domain/models"
	"github.com/kstargroup/kstarweb/internal/testutil"
)

func TestStore_Create_AlwaysUnread(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := contactstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.ContactSubmission{
		Name:    "Asha",
		Email:   "Asha@Example.com",
		Subject: "Partnership",
		Message: "Hello",
		IsRead:  true, // ignored
		Starred: true, // ignored
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.IsRead || created.Starred {
		t.Error("new submissions must be unread and unstarred")
	}
	if created.Email != "asha@example.com" {
		t.Errorf("email not normalized: %q", created.Email)
	}
}

func TestStore_MarkRead_ExactlyOnce(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := contactstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	sub := fixtures.CreateContact(ctx, "Juma", "juma@example.com", "Question")

	flipped, err := store.MarkRead(ctx, sub.ID)
	if err != nil {
		t.Fatalf("MarkRead failed: %v", err)
	}
	if !flipped {
		t.Error("first MarkRead should flip")
	}

	flipped, err = store.MarkRead(ctx, sub.ID)
	if err != nil {
		t.Fatalf("second MarkRead failed: %v", err)
	}
	if flipped {
		t.Error("second MarkRead should be a no-op")
	}

	got, err := store.GetByID(ctx, sub.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if !got.IsRead {
		t.Error("submission should be read")
	}
}

func TestStore_SetStarred(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := contactstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	sub := fixtures.CreateContact(ctx, "Neema", "neema@example.com", "Hello")

	if err := store.SetStarred(ctx, sub.ID, true); err != nil {
		t.Fatalf("SetStarred failed: %v", err)
	}
	got, _ := store.GetByID(ctx, sub.ID)
	if !got.Starred {
		t.Error("expected starred")
	}

	if err := store.SetStarred(ctx, sub.ID, false); err != nil {
		t.Fatalf("unstar failed: %v", err)
	}
	got, _ = store.GetByID(ctx, sub.ID)
	if got.Starred {
		t.Error("expected unstarred")
	}
}

func TestStore_ListNewestFirst_StarredOnly(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := contactstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateContact(ctx, "Plain", "plain@example.com", "One")
	starred := fixtures.CreateContact(ctx, "Starred", "star@example.com", "Two")
	if err := store.SetStarred(ctx, starred.ID, true); err != nil {
		t.Fatalf("SetStarred failed: %v", err)
	}

	all, err := store.ListNewestFirst(ctx, false, 0, 0)
	if err != nil {
		t.Fatalf("ListNewestFirst failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d submissions, want 2", len(all))
	}

	onlyStarred, err := store.ListNewestFirst(ctx, true, 0, 0)
	if err != nil {
		t.Fatalf("starred list failed: %v", err)
	}
	if len(onlyStarred) != 1 || onlyStarred[0].Name != "Starred" {
		t.Errorf("starred list = %+v", onlyStarred)
	}
}

func TestStore_CountUnread(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := contactstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	a := fixtures.CreateContact(ctx, "A", "a@example.com", "One")
	fixtures.CreateContact(ctx, "B", "b@example.com", "Two")

	n, err := store.CountUnread(ctx)
	if err != nil {
		t.Fatalf("CountUnread failed: %v", err)
	}
	if n != 2 {
		t.Errorf("unread = %d, want 2", n)
	}

	if _, err := store.MarkRead(ctx, a.ID); err != nil {
		t.Fatalf("MarkRead failed: %v", err)
	}

	n, err = store.CountUnread(ctx)
	if err != nil {
		t.Fatalf("CountUnread failed: %v", err)
	}
	if n != 1 {
		t.Errorf("unread = %d, want 1", n)
	}
}
