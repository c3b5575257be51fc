package service

import (
	"context"
	"errors"
	"sort"
	"testing"

	"crm-agent-be/internal/constant"
	"crm-agent-be/internal/dto"
	"crm-agent-be/internal/entity"
	"crm-agent-be/internal/pkg/logger"
	"crm-agent-be/internal/pkg/serverutils"
	"crm-agent-be/internal/repository/contract"
	"crm-agent-be/internal/repository/specification"
	"crm-agent-be/internal/repository/unitofwork"
	"crm-agent-be/pkg/rag"
	"crm-agent-be/pkg/salesforce"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is the shared backing state for the in-memory unit of work.
type memStore struct {
	conversations []*entity.Conversation
	messages      []*entity.Message
	leads         []*entity.Lead
	cases         []*entity.Case
	commits       int
	rollbacks     int
}

type memUow struct {
	store *memStore
}

func (u *memUow) Begin(ctx context.Context) error { return nil }
func (u *memUow) Commit() error                   { u.store.commits++; return nil }
func (u *memUow) Rollback() error                 { u.store.rollbacks++; return nil }

func (u *memUow) LeadRepository() contract.LeadRepository                 { return &memLeadRepo{store: u.store} }
func (u *memUow) CaseRepository() contract.CaseRepository                 { return &memCaseRepo{store: u.store} }
func (u *memUow) ConversationRepository() contract.ConversationRepository { return &memConversationRepo{store: u.store} }
func (u *memUow) MessageRepository() contract.MessageRepository           { return &memMessageRepo{store: u.store} }
func (u *memUow) ArticleRepository() contract.ArticleRepository           { return &memArticleRepo{} }

type memFactory struct {
	store *memStore
}

func (f *memFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &memUow{store: f.store}
}

type memConversationRepo struct {
	store *memStore
}

func (r *memConversationRepo) Create(ctx context.Context, conversation *entity.Conversation) error {
	r.store.conversations = append(r.store.conversations, conversation)
	return nil
}

func (r *memConversationRepo) Update(ctx context.Context, conversation *entity.Conversation) error {
	return nil
}

func (r *memConversationRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Conversation, error) {
	id, ok := extractID(specs)
	if !ok {
		return nil, nil
	}
	for _, c := range r.store.conversations {
		if c.Id == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memConversationRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Conversation, error) {
	return r.store.conversations, nil
}

func (r *memConversationRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store.conversations)), nil
}

type memMessageRepo struct {
	store *memStore
}

func (r *memMessageRepo) Create(ctx context.Context, message *entity.Message) error {
	r.store.messages = append(r.store.messages, message)
	return nil
}

func (r *memMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error) {
	var conversationId *uuid.UUID
	for _, spec := range specs {
		if byConv, ok := spec.(specification.ByConversationID); ok {
			id := byConv.ConversationID
			conversationId = &id
		}
	}

	filtered := make([]*entity.Message, 0, len(r.store.messages))
	for _, m := range r.store.messages {
		if conversationId == nil || m.ConversationId == *conversationId {
			filtered = append(filtered, m)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.Before(filtered[j].CreatedAt)
	})
	return filtered, nil
}

func (r *memMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store.messages)), nil
}

type memLeadRepo struct {
	store *memStore
}

func (r *memLeadRepo) Create(ctx context.Context, lead *entity.Lead) error {
	r.store.leads = append(r.store.leads, lead)
	return nil
}

func (r *memLeadRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Lead, error) {
	return nil, nil
}

func (r *memLeadRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Lead, error) {
	return r.store.leads, nil
}

func (r *memLeadRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store.leads)), nil
}

type memCaseRepo struct {
	store *memStore
}

func (r *memCaseRepo) Create(ctx context.Context, c *entity.Case) error {
	r.store.cases = append(r.store.cases, c)
	return nil
}

func (r *memCaseRepo) Update(ctx context.Context, c *entity.Case) error { return nil }

func (r *memCaseRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Case, error) {
	return nil, nil
}

func (r *memCaseRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Case, error) {
	return r.store.cases, nil
}

func (r *memCaseRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store.cases)), nil
}

type memArticleRepo struct{}

func (r *memArticleRepo) Create(ctx context.Context, article *entity.Article) error { return nil }

func (r *memArticleRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Article, error) {
	return nil, nil
}

func (r *memArticleRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

func extractID(specs []specification.Specification) (uuid.UUID, bool) {
	for _, spec := range specs {
		if byID, ok := spec.(specification.ByID); ok {
			return byID.ID, true
		}
	}
	return uuid.Nil, false
}

type stubSearcher struct {
	results []rag.Result
	err     error
	queries []string
}

func (s *stubSearcher) Query(ctx context.Context, text string) ([]rag.Result, error) {
	s.queries = append(s.queries, text)
	return s.results, s.err
}

type stubPublisher struct {
	events []*dto.ActionEvent
	err    error
}

func (p *stubPublisher) PublishActionEvent(ctx context.Context, event *dto.ActionEvent) error {
	p.events = append(p.events, event)
	return p.err
}

type agentFixture struct {
	service   IAgentService
	store     *memStore
	searcher  *stubSearcher
	publisher *stubPublisher
}

func newAgentFixture(t *testing.T, results []rag.Result) *agentFixture {
	t.Helper()

	store := &memStore{}
	searcher := &stubSearcher{results: results}
	publisher := &stubPublisher{}
	adapter := salesforce.NewAdapter(salesforce.NewModeStore(constant.CRMModeMock), logger.NewNopLogger())

	svc := NewAgentService(&memFactory{store: store}, searcher, adapter, publisher, logger.NewNopLogger())
	return &agentFixture{service: svc, store: store, searcher: searcher, publisher: publisher}
}

func TestProcessMessageRequiresText(t *testing.T) {
	fixture := newAgentFixture(t, nil)

	_, err := fixture.service.ProcessMessage(context.Background(), &dto.SendMessageRequest{Text: "   "})
	require.Error(t, err)

	var validationErr *serverutils.ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.Empty(t, fixture.store.messages, "nothing persisted on invalid input")
}

func TestProcessMessageUnknownConversationId(t *testing.T) {
	fixture := newAgentFixture(t, nil)
	missing := uuid.New()

	_, err := fixture.service.ProcessMessage(context.Background(), &dto.SendMessageRequest{
		Text:           "hello",
		ConversationId: &missing,
	})
	require.Error(t, err)

	var notFoundErr *serverutils.NotFoundError
	assert.True(t, errors.As(err, &notFoundErr))
}

func TestProcessMessageCreatesConversationLazily(t *testing.T) {
	fixture := newAgentFixture(t, nil)

	result, err := fixture.service.ProcessMessage(context.Background(), &dto.SendMessageRequest{Text: "hello there"})
	require.NoError(t, err)

	require.Len(t, fixture.store.conversations, 1)
	conversation := fixture.store.conversations[0]
	assert.Equal(t, result.ConversationId, conversation.Id)
	assert.Equal(t, constant.ConversationChannelWeb, conversation.Channel)
	require.NotNil(t, conversation.UserId)
	assert.Equal(t, constant.AnonymousUser, *conversation.UserId)
	assert.Equal(t, constant.ConversationStatusActive, conversation.Status)
}

func TestProcessMessageUnknownIntent(t *testing.T) {
	fixture := newAgentFixture(t, nil)

	result, err := fixture.service.ProcessMessage(context.Background(), &dto.SendMessageRequest{Text: "what is the weather"})
	require.NoError(t, err)

	assert.Equal(t, constant.UnknownIntentReply, result.Reply)
	assert.Empty(t, result.Actions)
	assert.Equal(t, constant.AgentConfidence, result.Confidence)
	assert.Empty(t, fixture.store.leads)
	assert.Empty(t, fixture.store.cases)
	assert.Empty(t, fixture.publisher.events, "no actions means no audit events")

	// both sides of the turn are persisted
	require.Len(t, fixture.store.messages, 2)
	assert.Equal(t, constant.MessageRoleUser, fixture.store.messages[0].Role)
	assert.Equal(t, constant.MessageRoleAgent, fixture.store.messages[1].Role)
	require.NotNil(t, fixture.store.messages[1].Metadata)
	assert.Empty(t, fixture.store.messages[1].Metadata.Actions)
}

func TestProcessMessageRefundWithoutPlease(t *testing.T) {
	fixture := newAgentFixture(t, []rag.Result{
		{Title: "Refund Policy", Snippet: "Refunds are allowed within 30 days...", Score: 2.5},
	})

	result, err := fixture.service.ProcessMessage(context.Background(), &dto.SendMessageRequest{Text: "I want a refund"})
	require.NoError(t, err)

	assert.Contains(t, result.Reply, "I found some info on refunds:")
	assert.Contains(t, result.Reply, "Refunds are allowed within 30 days...")
	assert.Contains(t, result.Reply, "Can you provide your Order ID?")

	require.Len(t, result.Actions, 1)
	assert.Equal(t, constant.ActionQueryKnowledge, result.Actions[0].Type)
}

func TestProcessMessageRefundWithPleaseEscalates(t *testing.T) {
	fixture := newAgentFixture(t, []rag.Result{
		{Title: "Refund Policy", Snippet: "Refunds are allowed within 30 days...", Score: 2.5},
	})

	result, err := fixture.service.ProcessMessage(context.Background(), &dto.SendMessageRequest{Text: "I want a refund please"})
	require.NoError(t, err)

	assert.Contains(t, result.Reply, "I've started the refund validation process.")

	require.Len(t, result.Actions, 2)
	assert.Equal(t, constant.ActionQueryKnowledge, result.Actions[0].Type)
	assert.Equal(t, constant.ActionEscalate, result.Actions[1].Type)
	assert.Equal(t, "Triggering Salesforce Flow: RefundValidation", result.Actions[1].Reasoning)

	require.Len(t, fixture.publisher.events, 2)
	assert.Equal(t, constant.IntentRefund, fixture.publisher.events[0].Intent)
}

func TestProcessMessageLeadCaptureExtractsName(t *testing.T) {
	fixture := newAgentFixture(t, nil)

	result, err := fixture.service.ProcessMessage(context.Background(), &dto.SendMessageRequest{
		Text: "My name is Sam, I'm interested in a demo",
	})
	require.NoError(t, err)

	require.Len(t, fixture.store.leads, 1)
	lead := fixture.store.leads[0]
	assert.Equal(t, "Sam", lead.FirstName)
	assert.Equal(t, "User", lead.LastName)
	assert.Equal(t, "captured@example.com", lead.Email)

	assert.Contains(t, result.Reply, "Thanks Sam.")
	assert.Contains(t, result.Reply, lead.SfId)

	require.Len(t, result.Actions, 1)
	assert.Equal(t, constant.ActionCreateLead, result.Actions[0].Type)
}

func TestProcessMessageLeadCaptureDefaultsToGuest(t *testing.T) {
	fixture := newAgentFixture(t, nil)

	result, err := fixture.service.ProcessMessage(context.Background(), &dto.SendMessageRequest{
		Text: "I'm interested in buying",
	})
	require.NoError(t, err)

	require.Len(t, fixture.store.leads, 1)
	assert.Equal(t, "Guest", fixture.store.leads[0].FirstName)
	assert.Contains(t, result.Reply, "Thanks Guest.")
}

func TestProcessMessageSupportHighConfidenceAnswers(t *testing.T) {
	fixture := newAgentFixture(t, []rag.Result{
		{Title: "Reset Password", Snippet: "Go to settings > security > reset password...", Score: 0.9},
	})

	result, err := fixture.service.ProcessMessage(context.Background(), &dto.SendMessageRequest{
		Text: "I forgot my password, help",
	})
	require.NoError(t, err)

	assert.Equal(t, "Here is what I found: Go to settings > security > reset password...", result.Reply)
	require.Len(t, result.Actions, 1)
	assert.Equal(t, constant.ActionQueryKnowledge, result.Actions[0].Type)
	assert.Empty(t, fixture.store.cases, "no case opened when the knowledge base answers")
}

func TestProcessMessageSupportLowConfidenceOpensCase(t *testing.T) {
	fixture := newAgentFixture(t, []rag.Result{
		{Title: "Pricing Tiers", Snippet: "We have Free, Pro...", Score: 0.2},
	})

	result, err := fixture.service.ProcessMessage(context.Background(), &dto.SendMessageRequest{
		Text: "my integration is broken",
	})
	require.NoError(t, err)

	assert.Equal(t, "I've opened a support case for you. An agent will review it shortly.", result.Reply)

	require.Len(t, fixture.store.cases, 1)
	crmCase := fixture.store.cases[0]
	assert.Equal(t, "Support Request from Chat", crmCase.Subject)
	require.NotNil(t, crmCase.Description)
	assert.Equal(t, "my integration is broken", *crmCase.Description)
	assert.Equal(t, constant.CasePriorityMedium, crmCase.Priority)

	require.Len(t, result.Actions, 1)
	assert.Equal(t, constant.ActionUpdateCase, result.Actions[0].Type)
}

func TestProcessMessageSearcherFailureAborts(t *testing.T) {
	fixture := newAgentFixture(t, nil)
	fixture.searcher.err = errors.New("index unavailable")

	_, err := fixture.service.ProcessMessage(context.Background(), &dto.SendMessageRequest{Text: "I want a refund"})
	require.Error(t, err)
	assert.Zero(t, fixture.store.commits, "turn must not commit when a branch fails")
}

func TestProcessMessagePublishFailureDoesNotFailTurn(t *testing.T) {
	fixture := newAgentFixture(t, []rag.Result{
		{Title: "Refund Policy", Snippet: "Refunds are allowed...", Score: 2.0},
	})
	fixture.publisher.err = errors.New("broker down")

	result, err := fixture.service.ProcessMessage(context.Background(), &dto.SendMessageRequest{Text: "refund please"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Reply)
}

func TestProcessMessageContinuesExistingConversation(t *testing.T) {
	fixture := newAgentFixture(t, nil)

	first, err := fixture.service.ProcessMessage(context.Background(), &dto.SendMessageRequest{Text: "hello"})
	require.NoError(t, err)

	second, err := fixture.service.ProcessMessage(context.Background(), &dto.SendMessageRequest{
		Text:           "still here",
		ConversationId: &first.ConversationId,
	})
	require.NoError(t, err)

	assert.Equal(t, first.ConversationId, second.ConversationId)
	assert.Len(t, fixture.store.conversations, 1)
	assert.Len(t, fixture.store.messages, 4)
}

func TestGetHistoryReturnsOrderedTurn(t *testing.T) {
	fixture := newAgentFixture(t, nil)

	result, err := fixture.service.ProcessMessage(context.Background(), &dto.SendMessageRequest{Text: "hello"})
	require.NoError(t, err)

	history, err := fixture.service.GetHistory(context.Background(), result.ConversationId)
	require.NoError(t, err)
	require.Len(t, history, 2)

	assert.Equal(t, constant.MessageRoleUser, history[0].Role)
	assert.Equal(t, "hello", history[0].Content)
	assert.Equal(t, constant.MessageRoleAgent, history[1].Role)
	assert.True(t, history[0].CreatedAt.Before(history[1].CreatedAt))
}

func TestGetHistoryUnknownConversation(t *testing.T) {
	fixture := newAgentFixture(t, nil)

	_, err := fixture.service.GetHistory(context.Background(), uuid.New())
	require.Error(t, err)

	var notFoundErr *serverutils.NotFoundError
	assert.True(t, errors.As(err, &notFoundErr))
}

func TestSimulateSprintPreviewFixedValues(t *testing.T) {
	fixture := newAgentFixture(t, nil)

	preview := fixture.service.SimulateSprintPreview(context.Background())
	assert.Equal(t, 12, preview.BlockersPerMonth)
	assert.Equal(t, 0.85, preview.ResolutionRate)
	assert.Equal(t, 4.2, preview.AvgFrequency)
	assert.Equal(t, 24, preview.ResolutionTime)
}
