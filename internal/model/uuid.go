package model

import "github.com/google/uuid"

// generateUUID returns a time-ordered UUID, falling back to a random one.
func generateUUID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
