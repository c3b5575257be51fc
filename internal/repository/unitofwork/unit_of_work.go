package unitofwork

import (
	"context"

	"crm-agent-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	LeadRepository() contract.LeadRepository
	CaseRepository() contract.CaseRepository
	ConversationRepository() contract.ConversationRepository
	MessageRepository() contract.MessageRepository
	ArticleRepository() contract.ArticleRepository
}
