// internal/domain/models/application.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JobApplication is a submitted application for a job listing.
//
// JobTitle is denormalized from the listing at submission time so that the
// application remains displayable after the listing is deleted (deleting a
// job never cascades to its applications).
type JobApplication struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	JobID    primitive.ObjectID `bson:"job_id" json:"job_id"`
	JobTitle string             `bson:"job_title" json:"job_title"`

	ApplicantName  string `bson:"applicant_name" json:"applicant_name"`
	ApplicantEmail string `bson:"applicant_email" json:"applicant_email"`
	ApplicantPhone string `bson:"applicant_phone" json:"applicant_phone"`

	// ResumePath is the storage path of the uploaded résumé, or "" when the
	// applicant submitted without one. The storage write always precedes the
	// document insert, so a non-empty path references a durable object.
	ResumePath     string `bson:"resume_path,omitempty" json:"resume_path,omitempty"`
	ResumeFileName string `bson:"resume_file_name,omitempty" json:"resume_file_name,omitempty"`

	Status      string    `bson:"status" json:"status"` // see ApplicationStatuses
	SubmittedAt time.Time `bson:"submitted_at" json:"submitted_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// Application statuses.
const (
	StatusPending     = "Pending"
	StatusReceived    = "Received"
	StatusWhitelisted = "Whitelisted"
	StatusNotSelected = "Not Selected"
)

// ApplicationStatuses lists the selectable statuses in display order.
var ApplicationStatuses = []string{StatusPending, StatusReceived, StatusWhitelisted, StatusNotSelected}

// ValidApplicationStatus reports whether s is a known application status.
func ValidApplicationStatus(s string) bool {
	for _, st := range ApplicationStatuses {
		if s == st {
			return true
		}
	}
	return false
}
