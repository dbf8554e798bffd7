package main

import "github.com/google/uuid"

// NewID returns a random identifier for a board node.
func NewID() string {
	return uuid.NewString()
}
