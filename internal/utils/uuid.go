package utils

import "github.com/google/uuid"

// UUIDGenerator produces opaque user identities. UUIDv7 keeps them
// time-sortable; plain v4 is the fallback if v7 generation fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
