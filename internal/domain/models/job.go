// internal/domain/models/job.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeadlineLayout is the wire format for application deadlines. Deadlines are
// calendar dates chosen by an admin, stored as the literal date string so that
// formatting and re-parsing never shifts across timezones.
const DeadlineLayout = "2006-01-02"

// Job is a published job listing shown on the careers pages.
type Job struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	TitleCI     string             `bson:"title_ci" json:"title_ci"` // lowercase, diacritics-stripped
	Department  string             `bson:"department" json:"department"`
	Location    string             `bson:"location" json:"location"`
	Type        string             `bson:"type" json:"type"` // see JobTypes
	Description string             `bson:"description" json:"description"`

	// ApplicationDeadline is a calendar date in DeadlineLayout format.
	ApplicationDeadline string `bson:"application_deadline" json:"application_deadline"`

	CoverImageURL string `bson:"cover_image_url,omitempty" json:"cover_image_url,omitempty"`

	PostedAt  time.Time `bson:"posted_at" json:"posted_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Job types.
const (
	JobTypeFullTime   = "Full-time"
	JobTypePartTime   = "Part-time"
	JobTypeContract   = "Contract"
	JobTypeInternship = "Internship"
)

// JobTypes lists the selectable employment types in display order.
var JobTypes = []string{JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship}

// ValidJobType reports whether t is a known employment type.
func ValidJobType(t string) bool {
	for _, jt := range JobTypes {
		if t == jt {
			return true
		}
	}
	return false
}

// DeadlinePassed reports whether the listing's deadline is strictly before
// today (UTC). A malformed or empty deadline never closes the listing.
func (j Job) DeadlinePassed(now time.Time) bool {
	d, err := time.ParseInLocation(DeadlineLayout, j.ApplicationDeadline, time.UTC)
	if err != nil {
		return false
	}
	today := now.UTC().Truncate(24 * time.Hour)
	return d.Before(today)
}
