package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"crm-agent-be/internal/constant"
	"crm-agent-be/internal/dto"
	"crm-agent-be/internal/entity"
	"crm-agent-be/internal/pkg/logger"
	"crm-agent-be/internal/pkg/serverutils"
	"crm-agent-be/internal/repository/specification"
	"crm-agent-be/internal/repository/unitofwork"
	"crm-agent-be/pkg/agent/intent"
	"crm-agent-be/pkg/rag"
	"crm-agent-be/pkg/salesforce"

	"github.com/google/uuid"
)

// IAgentService defines the agent orchestration interface
type IAgentService interface {
	ProcessMessage(ctx context.Context, request *dto.SendMessageRequest) (*dto.SendMessageResult, error)
	GetHistory(ctx context.Context, conversationId uuid.UUID) ([]*dto.MessageResponse, error)
	SimulateSprintPreview(ctx context.Context) *dto.SprintPreviewResponse
}

// KnowledgeSearcher answers free-text queries with ranked snippets.
type KnowledgeSearcher interface {
	Query(ctx context.Context, text string) ([]rag.Result, error)
}

// CRMAdapter is the mutation boundary the orchestrator dispatches to.
type CRMAdapter interface {
	CreateLead(ctx context.Context, uow unitofwork.UnitOfWork, input salesforce.LeadInput) (*entity.Lead, error)
	CreateCase(ctx context.Context, uow unitofwork.UnitOfWork, input salesforce.CaseInput) (*entity.Case, error)
}

var nameExtractPattern = regexp.MustCompile(`(?i)name is (\w+)`)

// agentService runs the classify-then-dispatch pipeline: record the user
// message, detect intent, ground against the knowledge base and/or invoke
// the CRM adapter, then persist the reply with the recorded actions. No
// state survives across turns beyond the conversation transcript.
type agentService struct {
	uowFactory unitofwork.RepositoryFactory
	searcher   KnowledgeSearcher
	adapter    CRMAdapter
	publisher  IPublisherService
	logger     logger.ILogger
}

func NewAgentService(
	uowFactory unitofwork.RepositoryFactory,
	searcher KnowledgeSearcher,
	adapter CRMAdapter,
	publisher IPublisherService,
	log logger.ILogger,
) IAgentService {
	return &agentService{
		uowFactory: uowFactory,
		searcher:   searcher,
		adapter:    adapter,
		publisher:  publisher,
		logger:     log,
	}
}

func (as *agentService) ProcessMessage(ctx context.Context, request *dto.SendMessageRequest) (*dto.SendMessageResult, error) {
	if strings.TrimSpace(request.Text) == "" {
		return nil, serverutils.NewValidationError("text is required")
	}

	uow := as.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	conversation, err := as.resolveConversation(ctx, uow, request)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	userMessage := &entity.Message{
		Id:             uuid.New(),
		ConversationId: conversation.Id,
		Role:           constant.MessageRoleUser,
		Content:        request.Text,
		CreatedAt:      now,
	}
	if err := uow.MessageRepository().Create(ctx, userMessage); err != nil {
		return nil, err
	}

	detected := intent.Detect(request.Text)
	as.logger.Debug("agent", "Classified inbound message", map[string]interface{}{
		"conversation_id": conversation.Id,
		"intent":          detected,
	})

	reply, actions, err := as.dispatch(ctx, uow, detected, request.Text)
	if err != nil {
		return nil, err
	}

	agentMessage := &entity.Message{
		Id:             uuid.New(),
		ConversationId: conversation.Id,
		Role:           constant.MessageRoleAgent,
		Content:        reply,
		Metadata:       &entity.MessageMetadata{Actions: actions},
		CreatedAt:      now.Add(1 * time.Millisecond),
	}
	if err := uow.MessageRepository().Create(ctx, agentMessage); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	as.publishActions(ctx, conversation.Id, detected, actions)

	return &dto.SendMessageResult{
		Reply:          reply,
		ConversationId: conversation.Id,
		Actions:        actions,
		Confidence:     constant.AgentConfidence,
	}, nil
}

// resolveConversation loads the referenced conversation or lazily creates
// one when the request carries no id.
func (as *agentService) resolveConversation(ctx context.Context, uow unitofwork.UnitOfWork, request *dto.SendMessageRequest) (*entity.Conversation, error) {
	if request.ConversationId != nil {
		conversation, err := uow.ConversationRepository().FindOne(ctx, specification.ByID{ID: *request.ConversationId})
		if err != nil {
			return nil, err
		}
		if conversation == nil {
			return nil, serverutils.NewNotFoundError("conversation not found")
		}
		return conversation, nil
	}

	userId := constant.AnonymousUser
	if request.User != nil && *request.User != "" {
		userId = *request.User
	}
	channel := request.Channel
	if channel == "" {
		channel = constant.ConversationChannelWeb
	}

	conversation := &entity.Conversation{
		Id:      uuid.New(),
		Channel: channel,
		UserId:  &userId,
		Status:  constant.ConversationStatusActive,
	}
	if err := uow.ConversationRepository().Create(ctx, conversation); err != nil {
		return nil, err
	}
	return conversation, nil
}

// dispatch runs the intent-specific branch and returns the composed reply
// plus the actions taken.
func (as *agentService) dispatch(ctx context.Context, uow unitofwork.UnitOfWork, detected, text string) (string, []entity.AgentAction, error) {
	actions := []entity.AgentAction{}

	switch detected {
	case constant.IntentRefund:
		results, err := as.searcher.Query(ctx, text)
		if err != nil {
			return "", nil, err
		}
		snippets := make([]string, 0, len(results))
		for _, r := range results {
			snippets = append(snippets, r.Snippet)
		}
		policyContext := strings.Join(snippets, "\n")

		actions = append(actions, entity.AgentAction{
			Type:      constant.ActionQueryKnowledge,
			Payload:   map[string]interface{}{"query": text},
			Reasoning: "Checking refund policy",
		})

		if strings.Contains(strings.ToLower(text), "please") {
			actions = append(actions, entity.AgentAction{
				Type:      constant.ActionEscalate,
				Payload:   map[string]interface{}{"reason": "Refund Validation Flow"},
				Reasoning: "Triggering Salesforce Flow: RefundValidation",
			})
			reply := fmt.Sprintf("Based on our policy: \"%s\", I can help. I've started the refund validation process.", policyContext)
			return reply, actions, nil
		}

		reply := fmt.Sprintf("I found some info on refunds: %s. Can you provide your Order ID?", policyContext)
		return reply, actions, nil

	case constant.IntentLeadCapture:
		name := "Guest"
		if match := nameExtractPattern.FindStringSubmatch(text); match != nil {
			name = match[1]
		}

		company := "Inbound Chat"
		lead, err := as.adapter.CreateLead(ctx, uow, salesforce.LeadInput{
			FirstName: name,
			LastName:  "User",
			Email:     "captured@example.com",
			Company:   &company,
		})
		if err != nil {
			return "", nil, err
		}

		actions = append(actions, entity.AgentAction{
			Type:      constant.ActionCreateLead,
			Payload:   lead,
			Reasoning: "Detected sales intent",
		})
		reply := fmt.Sprintf("Thanks %s. I've created a lead record for you (ID: %s) and notified a sales rep.", name, lead.SfId)
		return reply, actions, nil

	case constant.IntentSupportIssue:
		results, err := as.searcher.Query(ctx, text)
		if err != nil {
			return "", nil, err
		}

		if len(results) > 0 && results[0].Score > 0.5 {
			actions = append(actions, entity.AgentAction{
				Type:      constant.ActionQueryKnowledge,
				Payload:   map[string]interface{}{"topMatch": results[0].Title},
				Reasoning: "Found high confidence answer",
			})
			return fmt.Sprintf("Here is what I found: %s", results[0].Snippet), actions, nil
		}

		description := text
		crmCase, err := as.adapter.CreateCase(ctx, uow, salesforce.CaseInput{
			Subject:     "Support Request from Chat",
			Description: &description,
			Priority:    constant.CasePriorityMedium,
		})
		if err != nil {
			return "", nil, err
		}

		actions = append(actions, entity.AgentAction{
			Type:      constant.ActionUpdateCase,
			Payload:   crmCase,
			Reasoning: "Low confidence in RAG, escalating to Case",
		})
		return "I've opened a support case for you. An agent will review it shortly.", actions, nil

	default:
		return constant.UnknownIntentReply, actions, nil
	}
}

// publishActions emits one audit event per recorded action. Publishing
// happens after commit; failures are logged, never surfaced to the caller.
func (as *agentService) publishActions(ctx context.Context, conversationId uuid.UUID, detected string, actions []entity.AgentAction) {
	for _, action := range actions {
		event := &dto.ActionEvent{
			ConversationId: conversationId,
			Intent:         detected,
			ActionType:     action.Type,
			Reasoning:      action.Reasoning,
			OccurredAt:     time.Now(),
		}
		if err := as.publisher.PublishActionEvent(ctx, event); err != nil {
			as.logger.Warn("agent", "Failed to publish action event", map[string]interface{}{
				"conversation_id": conversationId,
				"action_type":     action.Type,
				"error":           err.Error(),
			})
		}
	}
}

func (as *agentService) GetHistory(ctx context.Context, conversationId uuid.UUID) ([]*dto.MessageResponse, error) {
	uow := as.uowFactory.NewUnitOfWork(ctx)

	conversation, err := uow.ConversationRepository().FindOne(ctx, specification.ByID{ID: conversationId})
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, serverutils.NewNotFoundError("conversation not found")
	}

	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.ByConversationID{ConversationID: conversationId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.MessageResponse, 0, len(messages))
	for _, msg := range messages {
		response = append(response, &dto.MessageResponse{
			Id:             msg.Id,
			ConversationId: msg.ConversationId,
			Role:           msg.Role,
			Content:        msg.Content,
			Metadata:       msg.Metadata,
			CreatedAt:      msg.CreatedAt,
		})
	}
	return response, nil
}

// SimulateSprintPreview returns fixed demonstration values.
func (as *agentService) SimulateSprintPreview(ctx context.Context) *dto.SprintPreviewResponse {
	return &dto.SprintPreviewResponse{
		BlockersPerMonth: 12,
		ResolutionRate:   0.85,
		AvgFrequency:     4.2,
		ResolutionTime:   24, // hours
	}
}
