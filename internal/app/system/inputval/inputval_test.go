package inputval

import "testing"

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		// Valid emails
		{"user@example.com", true},
		{"user.name@example.com", true},
		{"user+tag@example.com", true},
		{"user@subdomain.example.com", true},
		{"user@localhost", true}, // useful for dev/test environments

		// Empty/whitespace
		{"", false},
		{"   ", false},

		// Missing parts
		{"user", false},
		{"user@", false},
		{"@example.com", false},

		// Malformed
		{".user@example.com", false},
		{"user..name@example.com", false},
		{"user@.example.com", false},

		// Display-name format (rejected)
		{"Jane Doe <jane@example.com>", false},

		// Spaces
		{"user @example.com", false},
		{"user@exam ple.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := IsValidEmail(tt.email); got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

type contactInput struct {
	Name    string `validate:"required,max=120" label:"Name"`
	Email   string `validate:"required,email,max=254" label:"Email"`
	Subject string `validate:"required,max=200" label:"Subject"`
	Message string `validate:"required,max=5000" label:"Message"`
}

func TestValidate_AllValid(t *testing.T) {
	result := Validate(contactInput{
		Name:    "Jane",
		Email:   "jane@x.com",
		Subject: "Hi",
		Message: "Hello",
	})
	if result.HasErrors() {
		t.Errorf("expected no errors, got %q", result.First())
	}
}

func TestValidate_RequiredMissing(t *testing.T) {
	result := Validate(contactInput{Email: "jane@x.com", Subject: "Hi", Message: "Hello"})
	if !result.HasErrors() {
		t.Fatal("expected errors for missing name")
	}
	if got, want := result.First(), "Name is required."; got != want {
		t.Errorf("First() = %q, want %q", got, want)
	}
}

func TestValidate_BadEmail(t *testing.T) {
	result := Validate(contactInput{Name: "Jane", Email: "not-an-email", Subject: "Hi", Message: "Hello"})
	if !result.HasErrors() {
		t.Fatal("expected errors for bad email")
	}
	if got, want := result.First(), "Email must be a valid email address."; got != want {
		t.Errorf("First() = %q, want %q", got, want)
	}
}

func TestValidate_OneOf(t *testing.T) {
	type input struct {
		Type string `validate:"required,oneof=News Event" label:"Type"`
	}

	if result := Validate(input{Type: "News"}); result.HasErrors() {
		t.Errorf("News should validate, got %q", result.First())
	}
	result := Validate(input{Type: "Press"})
	if !result.HasErrors() {
		t.Fatal("expected error for unknown type")
	}
	if got, want := result.First(), "Type must be one of: News, Event."; got != want {
		t.Errorf("First() = %q, want %q", got, want)
	}
}

func TestValidate_MultipleErrorsPreserveOrder(t *testing.T) {
	result := Validate(contactInput{})
	if len(result.Errors) != 4 {
		t.Fatalf("expected 4 errors, got %d", len(result.Errors))
	}
	if result.Errors[0].Field != "Name" {
		t.Errorf("first error field = %q, want Name", result.Errors[0].Field)
	}
}
