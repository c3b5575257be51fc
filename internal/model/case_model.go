package model

import (
	"time"

	"github.com/google/uuid"
)

type Case struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SfId        string    `gorm:"type:varchar(50);index"`
	Subject     string    `gorm:"type:varchar(255);not null"`
	Description *string   `gorm:"type:text"`
	Status      string    `gorm:"type:varchar(50);default:'New'"`
	Priority    string    `gorm:"type:varchar(50);default:'Medium'"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Case) TableName() string {
	return "cases"
}
