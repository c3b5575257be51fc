package entity

import (
	"time"

	"github.com/google/uuid"
)

type Case struct {
	Id          uuid.UUID
	SfId        string
	Subject     string
	Description *string
	Status      string
	Priority    string
	CreatedAt   time.Time
}
