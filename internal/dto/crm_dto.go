package dto

import (
	"time"

	"github.com/google/uuid"
)

type LeadResponse struct {
	Id        uuid.UUID `json:"id"`
	SfId      string    `json:"sfId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Company   *string   `json:"company,omitempty"`
	Status    string    `json:"status"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"createdAt"`
}

type CaseResponse struct {
	Id          uuid.UUID `json:"id"`
	SfId        string    `json:"sfId"`
	Subject     string    `json:"subject"`
	Description *string   `json:"description,omitempty"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	CreatedAt   time.Time `json:"createdAt"`
}
