package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers used to correlate outgoing
// requests with log entries.
type UUIDGenerator struct{}

// NewUUIDGenerator returns a ready UUIDGenerator.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to a random v4 when the
// clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
