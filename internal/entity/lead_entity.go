package entity

import (
	"time"

	"github.com/google/uuid"
)

type Lead struct {
	Id        uuid.UUID
	SfId      string // synthesized external-system identifier
	FirstName string
	LastName  string
	Email     string
	Company   *string
	Status    string
	Score     int
	CreatedAt time.Time
}
