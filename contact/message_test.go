package contact

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	valid := Message{Name: "Ada", Email: "ada@example.com", Body: "Hi there"}

	cases := []struct {
		name string
		msg  Message
		want error
	}{
		{"valid message", valid, nil},
		{"missing name", Message{Email: valid.Email, Body: valid.Body}, ErrMissingFields},
		{"missing email", Message{Name: valid.Name, Body: valid.Body}, ErrMissingFields},
		{"missing body", Message{Name: valid.Name, Email: valid.Email}, ErrMissingFields},
		{"whitespace only", Message{Name: "  ", Email: valid.Email, Body: valid.Body}, ErrMissingFields},
		{"email without at", Message{Name: valid.Name, Email: "ada.example.com", Body: valid.Body}, ErrInvalidEmail},
		{"email without dot", Message{Name: valid.Name, Email: "ada@example", Body: valid.Body}, ErrInvalidEmail},
		{"email with space", Message{Name: valid.Name, Email: "ada smith@example.com", Body: valid.Body}, ErrInvalidEmail},
		{"short but plausible email", Message{Name: valid.Name, Email: "a@b.c", Body: valid.Body}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.msg.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
