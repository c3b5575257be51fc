package model

import (
	"time"

	"github.com/google/uuid"
)

type Lead struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SfId      string    `gorm:"type:varchar(50);index"`
	FirstName string    `gorm:"type:varchar(100);not null"`
	LastName  string    `gorm:"type:varchar(100);not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Company   *string   `gorm:"type:varchar(255)"`
	Status    string    `gorm:"type:varchar(50);default:'New'"`
	Score     int       `gorm:"default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Lead) TableName() string {
	return "leads"
}
