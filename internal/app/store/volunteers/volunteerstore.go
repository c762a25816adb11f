// internal/app/store/volunteers/volunteerstore.go
package volunteerstore

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
	return &Store{c: db.Collection("volunteer_registrations")}
}

var errBadVolunteerType = errors.New(`type must be "Volunteer"|"Partner"|"Supporter"`)

// Create inserts a registration from the public volunteer form.
func (s *Store) Create(ctx context.Context, v models.VolunteerRegistration) (models.VolunteerRegistration, error) {
	if !models.ValidVolunteerType(v.Type) {
		return models.VolunteerRegistration{}, errBadVolunteerType
	}

	v.ID = primitive.NewObjectID()
	v.Name = normalize.Name(v.Name)
	v.Email = normalize.Email(v.Email)
	v.RegisteredAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, v); err != nil {
		return models.VolunteerRegistration{}, err
	}
	return v, nil
}

// GetByID loads a registration by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.VolunteerRegistration, error) {
	var v models.VolunteerRegistration
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&v); err != nil {
		return nil, err
	}
	return &v, nil
}

// Delete removes a registration by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ListNewestFirst returns registrations ordered by registration time
// descending. regType narrows to one registration type when non-empty;
// limit <= 0 returns everything.
func (s *Store) ListNewestFirst(ctx context.Context, regType string, start, limit int) ([]models.VolunteerRegistration, error) {
	filter := bson.M{}
	if regType != "" {
		if !models.ValidVolunteerType(regType) {
			return nil, errBadVolunteerType
		}
		filter["type"] = regType
	}

	opts := options.Find().SetSort(bson.D{{Key: "registered_at", Value: -1}})
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

	var regs []models.VolunteerRegistration
	if err := cur.All(ctx, &regs); err != nil {
		return nil, err
	}
	return regs, nil
}

// Count returns the number of registrations matching the given filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}
