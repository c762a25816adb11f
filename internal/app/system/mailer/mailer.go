// Package mailer sends notification email for form submissions.
//
// Delivery failures are logged by callers, never surfaced to the visitor who
// submitted the form; the submission itself is already persisted by then.
package mailer

import (
	"fmt"
	"net/mail"
)

// Message is a single outgoing email.
type Message struct {
	To      []mail.Address
	Subject string
	Text    string
	HTML    string
}

// Mailer delivers messages.
type Mailer interface {
	Send(msg Message) error
}

// ContactNotification builds the admin notification for a new contact
// submission.
func ContactNotification(adminEmail, senderName, senderEmail, subject, message string) Message {
	return Message{
		To:      []mail.Address{{Address: adminEmail}},
		Subject: "New contact submission: " + subject,
		Text: fmt.Sprintf("From: %s <%s>\n\n%s\n\nOpen the admin inbox to reply.",
			senderName, senderEmail, message),
	}
}

// ApplicationReceived builds the confirmation sent to a job applicant.
func ApplicationReceived(applicantName, applicantEmail, jobTitle string) Message {
	return Message{
		To:      []mail.Address{{Name: applicantName, Address: applicantEmail}},
		Subject: "Application received: " + jobTitle,
		Text: fmt.Sprintf("Hello %s,\n\nWe received your application for %s. "+
			"The team reviews applications after the posting closes and will contact you by email.\n\n"+
			"Kstar Group", applicantName, jobTitle),
	}
}

// VolunteerWelcome builds the confirmation sent to a new volunteer, partner,
// or supporter registration.
func VolunteerWelcome(name, email, role string) Message {
	return Message{
		To:      []mail.Address{{Name: name, Address: email}},
		Subject: "Welcome aboard",
		Text: fmt.Sprintf("Hello %s,\n\nThank you for registering as a %s with Kstar Group. "+
			"We will reach out with next steps.\n\nKstar Group", name, role),
	}
}
