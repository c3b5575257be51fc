package entity

import (
	"time"

	"github.com/google/uuid"
)

type Conversation struct {
	Id        uuid.UUID
	Channel   string
	UserId    *string
	Status    string
	CreatedAt time.Time
}
