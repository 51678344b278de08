package models

import "time"

// Notification is a transient on-screen message. It fades shortly
// before its removal so the presentation layer can animate it out.
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Fading    bool      `json:"fading"`
	CreatedAt time.Time `json:"created_at"`
}
