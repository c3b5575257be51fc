package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Article struct {
	Id      uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title   string         `gorm:"type:varchar(255);not null"`
	Content string         `gorm:"type:text;not null"`
	Tags    datatypes.JSON `gorm:"type:jsonb"`
}

func (Article) TableName() string {
	return "articles"
}
