// internal/domain/models/page.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Page is an editable content page (about, courses, faculty, and any other
// slug an admin creates). BodyHTML is sanitized before storage.
type Page struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Slug     string             `bson:"slug" json:"slug"`
	Title    string             `bson:"title" json:"title"`
	BodyHTML string             `bson:"body_html" json:"body_html"`

	UpdatedBy primitive.ObjectID `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// Well-known page slugs rendered at dedicated public routes.
const (
	PageSlugAbout   = "about"
	PageSlugCourses = "courses"
	PageSlugFaculty = "faculty"
)

// PageSlugs lists the well-known slugs in display order.
var PageSlugs = []string{PageSlugAbout, PageSlugCourses, PageSlugFaculty}
