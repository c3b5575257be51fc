package constant

const (
	MessageRoleUser   = "user"
	MessageRoleAgent  = "agent"
	MessageRoleSystem = "system"

	ConversationChannelWeb   = "web"
	ConversationChannelSlack = "slack"

	ConversationStatusActive    = "active"
	ConversationStatusClosed    = "closed"
	ConversationStatusEscalated = "escalated"

	// Default user identifier when the channel supplies none
	AnonymousUser = "anon"
)

// Intent labels produced by the keyword classifier. Order of evaluation
// lives in pkg/agent/intent; these are just the labels.
const (
	IntentRefund       = "refund"
	IntentLeadCapture  = "lead_capture"
	IntentSupportIssue = "support_issue"
	IntentUnknown      = "unknown"
)

// Agent action kinds embedded in message metadata.
const (
	ActionCreateLead     = "createLead"
	ActionUpdateCase     = "updateCase"
	ActionQueryKnowledge = "queryKnowledge"
	ActionEscalate       = "escalate"
	ActionNone           = "none"
)

const (
	LeadStatusNew       = "New"
	LeadStatusContacted = "Contacted"
	LeadStatusQualified = "Qualified"
	LeadStatusClosed    = "Closed"

	CaseStatusNew        = "New"
	CaseStatusInProgress = "In Progress"
	CaseStatusClosed     = "Closed"

	CasePriorityLow    = "Low"
	CasePriorityMedium = "Medium"
	CasePriorityHigh   = "High"
)

const (
	CRMModeMock = "mock"
	CRMModeReal = "real"
)

// Fallback reply when no intent matches.
const UnknownIntentReply = "I can help with Sales (create leads) or Support (refunds, issues). How can I assist?"

// Fixed confidence returned with every agent turn. There is no scoring
// model behind this value.
const AgentConfidence = 0.9
