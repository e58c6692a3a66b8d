package utils

import "github.com/google/uuid"

// UUIDGenerator produces random (version 4) UUIDs.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() uuid.UUID {
	return uuid.New()
}

func (g *UUIDGenerator) GenerateString() string {
	return g.Generate().String()
}
