// internal/domain/models/newsevent.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewsEvent is a news article or event announcement shown on the public
// news page. Content is admin-authored HTML, sanitized before storage.
type NewsEvent struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title    string             `bson:"title" json:"title"`
	TitleCI  string             `bson:"title_ci" json:"title_ci"`
	Content  string             `bson:"content" json:"content"`
	Date     time.Time          `bson:"date" json:"date"`
	Type     string             `bson:"type" json:"type"` // News | Event
	ImageURL string             `bson:"image_url,omitempty" json:"image_url,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// News/event item types.
const (
	NewsTypeNews  = "News"
	NewsTypeEvent = "Event"
)

// ValidNewsType reports whether t is a known news/event type.
func ValidNewsType(t string) bool {
	return t == NewsTypeNews || t == NewsTypeEvent
}
