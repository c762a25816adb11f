// internal/app/store/contacts/contactstore.go
package contactstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kstargroup/kstarweb/internal/app/system/normalize"
	"github.com/kstargroup/kstarweb/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("contact_submissions")}
}

// Create inserts a contact form submission. New submissions are always
// unread and unstarred.
func (s *Store) Create(ctx context.Context, c models.ContactSubmission) (models.ContactSubmission, error) {
	c.ID = primitive.NewObjectID()
	c.Name = normalize.Name(c.Name)
	c.Email = normalize.Email(c.Email)
	c.IsRead = false
	c.Starred = false
	c.SubmittedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, c); err != nil {
		return models.ContactSubmission{}, err
	}
	return c, nil
}

// GetByID loads a submission by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.ContactSubmission, error) {
	var c models.ContactSubmission
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// MarkRead flips a submission to read. The filter matches only unread
// documents, so concurrent opens write at most once and a read submission
// never flips back.
func (s *Store) MarkRead(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id, "is_read": false},
		bson.M{"$set": bson.M{"is_read": true}})
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

// SetStarred sets the starred flag to the given value.
func (s *Store) SetStarred(ctx context.Context, id primitive.ObjectID, starred bool) error {
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{"starred": starred}})
	return err
}

// Delete removes a submission by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ListNewestFirst returns submissions ordered by submission time descending.
// When starredOnly is true only starred submissions are returned.
// limit <= 0 returns everything.
func (s *Store) ListNewestFirst(ctx context.Context, starredOnly bool, start, limit int) ([]models.ContactSubmission, error) {
	filter := bson.M{}
	if starredOnly {
		filter["starred"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "submitted_at", Value: -1}})
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

	var subs []models.ContactSubmission
	if err := cur.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// CountUnread returns the number of unread submissions. The admin dashboard
// shows this as a badge.
func (s *Store) CountUnread(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"is_read": false})
}

// Count returns the number of submissions matching the given filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}
