package model

import (
	"time"

	"github.com/google/uuid"
)

type Conversation struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Channel   string    `gorm:"type:varchar(50);default:'web'"`
	UserId    *string   `gorm:"type:varchar(255)"`
	Status    string    `gorm:"type:varchar(50);default:'active'"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Conversation) TableName() string {
	return "conversations"
}
