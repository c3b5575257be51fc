package entity

import "github.com/google/uuid"

// Article is a seeded knowledge-base document. Immutable after seeding.
type Article struct {
	Id      uuid.UUID
	Title   string
	Content string
	Tags    []string
}
