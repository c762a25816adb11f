// internal/domain/models/contact.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactSubmission is a message sent through the public contact form.
//
// IsRead flips to true the first time an admin opens the submission and never
// flips back; Starred is an admin-toggled flag.
type ContactSubmission struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"`
	Subject string             `bson:"subject" json:"subject"`
	Message string             `bson:"message" json:"message"`

	Starred bool `bson:"starred" json:"starred"`
	IsRead  bool `bson:"is_read" json:"is_read"`

	SubmittedAt time.Time `bson:"submitted_at" json:"submitted_at"`
}
