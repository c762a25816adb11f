package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kstargroup/kstarweb/internal/domain/models"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a user with the given role. The password hash is a
// placeholder; use the users store when a test needs a real credential.
func (f *Fixtures) CreateUser(ctx context.Context, name, email, role string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	u := models.User{
		ID:           primitive.NewObjectID(),
		FullName:     name,
		FullNameCI:   text.Fold(name),
		Email:        email,
		PasswordHash: "$2a$10$test.placeholder.hash.not.a.real.credential",
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("create user fixture: %v", err)
	}
	return u
}

// CreateJob inserts a job listing with the given title and application
// deadline (in models.DeadlineLayout format).
func (f *Fixtures) CreateJob(ctx context.Context, title, deadline string) models.Job {
	f.t.Helper()

	now := time.Now().UTC()
	j := models.Job{
		ID:                  primitive.NewObjectID(),
		Title:               title,
		TitleCI:             text.Fold(title),
		Department:          "Programs",
		Location:            "Dar es Salaam",
		Type:                models.JobTypeFullTime,
		Description:         "Test posting for " + title,
		ApplicationDeadline: deadline,
		PostedAt:            now,
		UpdatedAt:           now,
	}
	if _, err := f.db.Collection("jobs").InsertOne(ctx, j); err != nil {
		f.t.Fatalf("create job fixture: %v", err)
	}
	return j
}

// CreateApplication inserts a pending application for the given job.
func (f *Fixtures) CreateApplication(ctx context.Context, job models.Job, name, email string) models.JobApplication {
	f.t.Helper()

	now := time.Now().UTC()
	a := models.JobApplication{
		ID:             primitive.NewObjectID(),
		JobID:          job.ID,
		JobTitle:       job.Title,
		ApplicantName:  name,
		ApplicantEmail: email,
		ApplicantPhone: "+255700000000",
		Status:         models.StatusPending,
		SubmittedAt:    now,
		UpdatedAt:      now,
	}
	if _, err := f.db.Collection("job_applications").InsertOne(ctx, a); err != nil {
		f.t.Fatalf("create application fixture: %v", err)
	}
	return a
}

// CreateNewsEvent inserts a news item or event with the given title and type.
func (f *Fixtures) CreateNewsEvent(ctx context.Context, title, itemType string) models.NewsEvent {
	f.t.Helper()

	now := time.Now().UTC()
	n := models.NewsEvent{
		ID:        primitive.NewObjectID(),
		Title:     title,
		TitleCI:   text.Fold(title),
		Content:   "<p>Body of " + title + "</p>",
		Date:      now,
		Type:      itemType,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("news_events").InsertOne(ctx, n); err != nil {
		f.t.Fatalf("create news fixture: %v", err)
	}
	return n
}

// CreateContact inserts an unread contact submission.
func (f *Fixtures) CreateContact(ctx context.Context, name, email, subject string) models.ContactSubmission {
	f.t.Helper()

	c := models.ContactSubmission{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Email:       email,
		Subject:     subject,
		Message:     "Test message from " + name,
		Starred:     false,
		IsRead:      false,
		SubmittedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("contact_submissions").InsertOne(ctx, c); err != nil {
		f.t.Fatalf("create contact fixture: %v", err)
	}
	return c
}

// CreateVolunteer inserts a volunteer registration of the given type.
func (f *Fixtures) CreateVolunteer(ctx context.Context, name, email, regType string) models.VolunteerRegistration {
	f.t.Helper()

	v := models.VolunteerRegistration{
		ID:           primitive.NewObjectID(),
		Name:         name,
		Email:        email,
		Phone:        "+255700000001",
		Type:         regType,
		Skills:       "Data analysis",
		Availability: "Weekends",
		RegisteredAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("volunteer_registrations").InsertOne(ctx, v); err != nil {
		f.t.Fatalf("create volunteer fixture: %v", err)
	}
	return v
}

// CreatePage inserts a content page for the given slug.
func (f *Fixtures) CreatePage(ctx context.Context, slug, title string) models.Page {
	f.t.Helper()

	now := time.Now().UTC()
	p := models.Page{
		ID:        primitive.NewObjectID(),
		Slug:      slug,
		Title:     title,
		BodyHTML:  "<p>Content of " + title + "</p>",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("pages").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("create page fixture: %v", err)
	}
	return p
}
