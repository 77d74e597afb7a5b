// Package ids generates opaque identifiers for playground objects. Every call
// returns a fresh value; ids are never derived from their input.
package ids

import "github.com/google/uuid"

// NewMessageID returns a fresh chat message id.
func NewMessageID() string {
	return uuid.New().String()
}

// NewToolID returns a fresh tool slot id.
func NewToolID() string {
	return uuid.New().String()
}

// NewInstanceID returns a fresh playground instance id.
func NewInstanceID() string {
	return uuid.New().String()
}
