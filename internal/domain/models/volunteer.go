// internal/domain/models/volunteer.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VolunteerRegistration is an intake record from the public volunteer form.
type VolunteerRegistration struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Phone        string             `bson:"phone" json:"phone"`
	Type         string             `bson:"type" json:"type"` // see VolunteerTypes
	Skills       string             `bson:"skills" json:"skills"`
	Availability string             `bson:"availability" json:"availability"`

	RegisteredAt time.Time `bson:"registered_at" json:"registered_at"`
}

// Volunteer registration types.
const (
	VolunteerTypeVolunteer = "Volunteer"
	VolunteerTypePartner   = "Partner"
	VolunteerTypeSupporter = "Supporter"
)

// VolunteerTypes lists the selectable registration types in display order.
var VolunteerTypes = []string{VolunteerTypeVolunteer, VolunteerTypePartner, VolunteerTypeSupporter}

// ValidVolunteerType reports whether t is a known registration type.
func ValidVolunteerType(t string) bool {
	for _, vt := range VolunteerTypes {
		if t == vt {
			return true
		}
	}
	return false
}
