package pagestore_test

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	pagestore "github.com/kstargroup/kstarweb/internal/app/store/pages"
	"github.com/kstargroup/kstarweb/internal/domain/models"
	"github.com/kstargroup/kstarweb/internal/testutil"
)

func TestStore_Upsert_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := pagestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := store.Upsert(ctx, models.Page{
		Slug:     "about",
		Title:    "About Kstar Group",
		BodyHTML: "<p>About content</p>",
	})
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	saved, err := store.GetBySlug(ctx, "about")
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}
	if saved.Title != "About Kstar Group" {
		t.Errorf("title = %q", saved.Title)
	}
	if saved.BodyHTML != "<p>About content</p>" {
		t.Errorf("body = %q", saved.BodyHTML)
	}
	if saved.CreatedAt.IsZero() || saved.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
}

func TestStore_Upsert_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := pagestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	page := models.Page{
		Slug:     "courses",
		Title:    "Courses",
		BodyHTML: "<p>Original</p>",
	}
	if err := store.Upsert(ctx, page); err != nil {
		t.Fatalf("initial Upsert failed: %v", err)
	}
	first, err := store.GetBySlug(ctx, "courses")
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}

	page.Title = "Our Courses"
	page.BodyHTML = "<p>Updated</p>"
	if err := store.Upsert(ctx, page); err != nil {
		t.Fatalf("update Upsert failed: %v", err)
	}

	saved, err := store.GetBySlug(ctx, "courses")
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}
	if saved.Title != "Our Courses" || saved.BodyHTML != "<p>Updated</p>" {
		t.Errorf("got %+v", saved)
	}
	if !saved.CreatedAt.Equal(first.CreatedAt) {
		t.Error("CreatedAt changed on update")
	}
}

func TestStore_Upsert_RecordsEditor(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := pagestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	editor := primitive.NewObjectID()
	err := store.Upsert(ctx, models.Page{
		Slug:      "faculty",
		Title:     "Faculty",
		BodyHTML:  "<p>Profiles</p>",
		UpdatedBy: editor,
	})
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	saved, err := store.GetBySlug(ctx, "faculty")
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}
	if saved.UpdatedBy != editor {
		t.Error("expected UpdatedBy to be recorded")
	}
}

func TestStore_GetBySlug_Normalizes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := pagestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreatePage(ctx, "about", "About")

	saved, err := store.GetBySlug(ctx, "  ABOUT ")
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}
	if saved.Slug != "about" {
		t.Errorf("slug = %q", saved.Slug)
	}

	if _, err := store.GetBySlug(ctx, "missing"); err != mongo.ErrNoDocuments {
		t.Errorf("missing page: err = %v, want mongo.ErrNoDocuments", err)
	}
}

func TestStore_ListAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := pagestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreatePage(ctx, "faculty", "Faculty")
	fixtures.CreatePage(ctx, "about", "About")

	pages, err := store.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(pages))
	}
	if pages[0].Slug != "about" || pages[1].Slug != "faculty" {
		t.Errorf("pages not sorted by slug: %+v", pages)
	}
}
