// Package contact validates contact-form submissions.
package contact

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrMissingFields = errors.New("contact: all fields are required")
	ErrInvalidEmail  = errors.New("contact: invalid email address")
)

// Loose on purpose: anything shaped like name@host.tld passes, the
// same bar the original form set.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Message is one contact-form submission.
type Message struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Body  string `json:"message"`
}

// Validate requires every field and a plausible email address.
func (m Message) Validate() error {
	if strings.TrimSpace(m.Name) == "" ||
		strings.TrimSpace(m.Email) == "" ||
		strings.TrimSpace(m.Body) == "" {
		return ErrMissingFields
	}
	if !emailPattern.MatchString(m.Email) {
		return ErrInvalidEmail
	}
	return nil
}
