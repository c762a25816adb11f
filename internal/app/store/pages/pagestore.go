// internal/app/store/pages/pagestore.go
package pagestore

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kstargroup/kstarweb/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("pages")}
}

// GetBySlug loads a content page by its slug. Returns mongo.ErrNoDocuments
// when the page has not been authored yet.
func (s *Store) GetBySlug(ctx context.Context, slug string) (*models.Page, error) {
	var p models.Page
	if err := s.c.FindOne(ctx, bson.M{"slug": normalizeSlug(slug)}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Upsert creates or replaces the content for a slug. Body HTML arrives
// already sanitized by the handler.
func (s *Store) Upsert(ctx context.Context, p models.Page) error {
	slug := normalizeSlug(p.Slug)
	now := time.Now().UTC()

	set := bson.M{
		"title":      p.Title,
		"body_html":  p.BodyHTML,
		"updated_at": now,
	}
	if p.UpdatedBy != primitive.NilObjectID {
		set["updated_by"] = p.UpdatedBy
	}

	_, err := s.c.UpdateOne(ctx,
		bson.M{"slug": slug},
		bson.M{
			"$set":         set,
			"$setOnInsert": bson.M{"slug": slug, "created_at": now},
		},
		options.Update().SetUpsert(true))
	return err
}

// ListAll returns every authored page sorted by slug.
func (s *Store) ListAll(ctx context.Context) ([]models.Page, error) {
	cur, err := s.c.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "slug", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var pages []models.Page
	if err := cur.All(ctx, &pages); err != nil {
		return nil, err
	}
	return pages, nil
}

func normalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}
