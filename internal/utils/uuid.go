package utils

import "github.com/google/uuid"

// UUIDGenerator issues time-sortable identifiers for locally created records
// (logged meals, favorites). V7 keeps list order stable without extra
// timestamps in the cache blobs.
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
