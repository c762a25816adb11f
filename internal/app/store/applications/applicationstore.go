// internal/app/store/applications/applicationstore.go
package applicationstore

import (
	"context"
	"errors"
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
	return &Store{c: db.Collection("job_applications")}
}

var errBadStatus = errors.New(`status must be "Pending"|"Received"|"Whitelisted"|"Not Selected"`)

// Create inserts a submitted application. The caller has already uploaded the
// résumé (if any), so ResumePath references a durable object by the time the
// document exists.
func (s *Store) Create(ctx context.Context, a models.JobApplication) (models.JobApplication, error) {
	now := time.Now().UTC()
	a.ID = primitive.NewObjectID()
	a.ApplicantName = normalize.Name(a.ApplicantName)
	a.ApplicantEmail = normalize.Email(a.ApplicantEmail)
	if a.Status == "" {
		a.Status = models.StatusPending
	}
	if !models.ValidApplicationStatus(a.Status) {
		return models.JobApplication{}, errBadStatus
	}
	a.SubmittedAt = now
	a.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, a); err != nil {
		return models.JobApplication{}, err
	}
	return a, nil
}

// GetByID loads an application by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.JobApplication, error) {
	var a models.JobApplication
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// SetStatus moves an application to a new review status. Returns the number
// of documents modified.
func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (int64, error) {
	if !models.ValidApplicationStatus(status) {
		return 0, errBadStatus
	}
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// Delete removes an application by ID. Returns the number of documents
// deleted (0 or 1). The stored résumé object, if any, is the caller's to
// clean up.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ListNewestFirst returns applications ordered by submission time descending,
// optionally restricted to one job. limit <= 0 returns everything.
func (s *Store) ListNewestFirst(ctx context.Context, jobID *primitive.ObjectID, start, limit int) ([]models.JobApplication, error) {
	filter := bson.M{}
	if jobID != nil {
		filter["job_id"] = *jobID
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

	var apps []models.JobApplication
	if err := cur.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// HasApplied reports whether an applicant email already applied to a job.
func (s *Store) HasApplied(ctx context.Context, jobID primitive.ObjectID, email string) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{
		"job_id":          jobID,
		"applicant_email": normalize.Email(email),
	}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Count returns the number of applications matching the given filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}
