// Package normalize provides canonicalizers for user-supplied fields.
// Every value that is compared, stored, or matched should pass through one of
// these so that "Admin ", "ADMIN" and "admin" mean the same thing.
package normalize

import "strings"

// Email lowercases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims a display name, preserving case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Role lowercases and trims a role value.
func Role(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Status lowercases and trims a status value.
func Status(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// QueryParam trims a free-text query parameter, preserving case.
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}

// EnumValue canonicalizes a display enum (job type, news type, volunteer
// type, application status) against the allowed set, matching
// case-insensitively and returning the canonical spelling. Returns "" when
// the value is not in the set.
func EnumValue(s string, allowed []string) string {
	v := strings.TrimSpace(s)
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return a
		}
	}
	return ""
}
