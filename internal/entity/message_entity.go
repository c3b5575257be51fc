package entity

import (
	"time"

	"github.com/google/uuid"
)

// Message is a single turn in a conversation. Messages are append-only;
// ordering within a conversation follows CreatedAt.
type Message struct {
	Id             uuid.UUID
	ConversationId uuid.UUID
	Role           string
	Content        string
	Metadata       *MessageMetadata
	CreatedAt      time.Time
}

// MessageMetadata carries the actions the agent took while producing a
// reply. Only agent messages carry metadata.
type MessageMetadata struct {
	Actions []AgentAction `json:"actions"`
}

// AgentAction records one orchestration side effect. It is never persisted
// on its own, only embedded in a Message's metadata.
type AgentAction struct {
	Type      string      `json:"type"` // createLead | updateCase | queryKnowledge | escalate | none
	Payload   interface{} `json:"payload"`
	Reasoning string      `json:"reasoning"`
}
