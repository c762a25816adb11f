// internal/app/store/news/newsstore.go
package newsstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
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
	return &Store{c: db.Collection("news_events")}
}

var errBadNewsType = errors.New(`type must be "News"|"Event"`)

// Create inserts a news item or event. Content arrives already sanitized by
// the handler.
func (s *Store) Create(ctx context.Context, n models.NewsEvent) (models.NewsEvent, error) {
	if !models.ValidNewsType(n.Type) {
		return models.NewsEvent{}, errBadNewsType
	}

	now := time.Now().UTC()
	n.ID = primitive.NewObjectID()
	n.TitleCI = text.Fold(n.Title)
	if n.Date.IsZero() {
		n.Date = now
	}
	n.CreatedAt = now
	n.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, n); err != nil {
		return models.NewsEvent{}, err
	}
	return n, nil
}

// GetByID loads an item by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.NewsEvent, error) {
	var n models.NewsEvent
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&n); err != nil {
		return nil, err
	}
	return &n, nil
}

// Update modifies an item's mutable fields and refreshes UpdatedAt.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, n models.NewsEvent) error {
	if !models.ValidNewsType(n.Type) {
		return errBadNewsType
	}

	set := bson.M{
		"title":      n.Title,
		"title_ci":   text.Fold(n.Title),
		"content":    n.Content,
		"type":       n.Type,
		"updated_at": time.Now().UTC(),
	}
	if !n.Date.IsZero() {
		set["date"] = n.Date
	}
	if n.ImageURL != "" {
		set["image_url"] = n.ImageURL
	}

	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

// Delete removes an item by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ListNewestFirst returns items ordered by date descending. itemType narrows
// to "News" or "Event" when non-empty; limit <= 0 returns everything.
func (s *Store) ListNewestFirst(ctx context.Context, itemType string, start, limit int) ([]models.NewsEvent, error) {
	filter := bson.M{}
	if itemType != "" {
		if !models.ValidNewsType(itemType) {
			return nil, errBadNewsType
		}
		filter["type"] = itemType
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	if start > 0 {
		opts.SetSkip(int64(start))
	}
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []models.NewsEvent
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Count returns the number of items matching the given filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}
