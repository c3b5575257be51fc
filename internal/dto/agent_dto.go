package dto

import (
	"time"

	"crm-agent-be/internal/entity"

	"github.com/google/uuid"
)

type SendMessageRequest struct {
	Text           string     `json:"text" validate:"required"`
	ConversationId *uuid.UUID `json:"conversationId,omitempty"`
	User           *string    `json:"user,omitempty"`
	Channel        string     `json:"channel,omitempty"`
}

// SendMessageResult is the orchestrator's outcome for one turn. The HTTP
// layer exposes reply, conversationId and actions; confidence is a fixed
// constant with no scoring model behind it.
type SendMessageResult struct {
	Reply          string               `json:"reply"`
	ConversationId uuid.UUID            `json:"conversationId"`
	Actions        []entity.AgentAction `json:"actions"`
	Confidence     float64              `json:"confidence"`
}

type SendMessageResponse struct {
	Reply          string               `json:"reply"`
	ConversationId uuid.UUID            `json:"conversationId"`
	Actions        []entity.AgentAction `json:"actions"`
}

type MessageResponse struct {
	Id             uuid.UUID               `json:"id"`
	ConversationId uuid.UUID               `json:"conversationId"`
	Role           string                  `json:"role"`
	Content        string                  `json:"content"`
	Metadata       *entity.MessageMetadata `json:"metadata,omitempty"`
	CreatedAt      time.Time               `json:"createdAt"`
}

// SprintPreviewResponse holds canned analytics values; no real simulation
// runs behind this endpoint.
type SprintPreviewResponse struct {
	BlockersPerMonth int     `json:"blockersPerMonth"`
	ResolutionRate   float64 `json:"resolutionRate"`
	AvgFrequency     float64 `json:"avgFrequency"`
	ResolutionTime   int     `json:"resolutionTime"`
}

// ActionEvent is published for every action an agent turn records; the
// consumer writes the audit trail.
type ActionEvent struct {
	ConversationId uuid.UUID `json:"conversation_id"`
	Intent         string    `json:"intent"`
	ActionType     string    `json:"action_type"`
	Reasoning      string    `json:"reasoning"`
	OccurredAt     time.Time `json:"occurred_at"`
}
