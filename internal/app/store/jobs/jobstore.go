// internal/app/store/jobs/jobstore.go
package jobstore

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
	return &Store{c: db.Collection("jobs")}
}

var (
	errBadJobType  = errors.New(`type must be "Full-time"|"Part-time"|"Contract"|"Internship"`)
	errBadDeadline = errors.New("application deadline must be a YYYY-MM-DD date")
)

// Create inserts a new job listing. The deadline string is validated but
// stored verbatim; it is never converted through time.Time.
func (s *Store) Create(ctx context.Context, j models.Job) (models.Job, error) {
	if !models.ValidJobType(j.Type) {
		return models.Job{}, errBadJobType
	}
	if _, err := time.Parse(models.DeadlineLayout, j.ApplicationDeadline); err != nil {
		return models.Job{}, errBadDeadline
	}

	now := time.Now().UTC()
	j.ID = primitive.NewObjectID()
	j.TitleCI = text.Fold(j.Title)
	j.PostedAt = now
	j.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, j); err != nil {
		return models.Job{}, err
	}
	return j, nil
}

// GetByID loads a job listing by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Job, error) {
	var j models.Job
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&j); err != nil {
		return nil, err
	}
	return &j, nil
}

// Update modifies a listing's mutable fields and refreshes UpdatedAt.
// PostedAt is never touched.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, j models.Job) error {
	if !models.ValidJobType(j.Type) {
		return errBadJobType
	}
	if _, err := time.Parse(models.DeadlineLayout, j.ApplicationDeadline); err != nil {
		return errBadDeadline
	}

	set := bson.M{
		"title":                j.Title,
		"title_ci":             text.Fold(j.Title),
		"department":           j.Department,
		"location":             j.Location,
		"type":                 j.Type,
		"description":          j.Description,
		"application_deadline": j.ApplicationDeadline,
		"updated_at":           time.Now().UTC(),
	}
	if j.CoverImageURL != "" {
		set["cover_image_url"] = j.CoverImageURL
	}

	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

// Delete removes a listing by ID. Applications referencing the listing are
// left untouched; they carry a denormalized job title for display.
// Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ListNewestFirst returns listings ordered by posting time descending.
// start/limit implement offset pagination; limit <= 0 returns everything.
func (s *Store) ListNewestFirst(ctx context.Context, start, limit int) ([]models.Job, error) {
	opts := options.Find().SetSort(bson.D{{Key: "posted_at", Value: -1}})
	if start > 0 {
		opts.SetSkip(int64(start))
	}
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var jobs []models.Job
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// Count returns the number of listings matching the given filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}
