package seeder

import (
	"context"

	"crm-agent-be/internal/constant"
	"crm-agent-be/internal/entity"
	"crm-agent-be/internal/pkg/logger"
	"crm-agent-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Seeder populates the knowledge base and the CRM store with fixed
// demonstration rows. Seeding is idempotent: each block is skipped when
// its table already has data.
type Seeder struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func New(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) *Seeder {
	return &Seeder{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *Seeder) Seed(ctx context.Context) error {
	if err := s.seedArticles(ctx); err != nil {
		return err
	}
	if err := s.seedLeads(ctx); err != nil {
		return err
	}
	return s.seedCases(ctx)
}

func (s *Seeder) seedArticles(ctx context.Context) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	count, err := uow.ArticleRepository().Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		s.logger.Debug("seeder", "Articles already seeded, skipping", nil)
		return nil
	}

	articles := []entity.Article{
		{
			Id:      uuid.New(),
			Title:   "Refund Policy",
			Content: "Refunds are available within 30 days of purchase. Use the Refund Validation Flow.",
			Tags:    []string{"refund", "policy"},
		},
		{
			Id:      uuid.New(),
			Title:   "Reset Password",
			Content: "Go to settings > security > reset password. An email will be sent.",
			Tags:    []string{"password", "account"},
		},
		{
			Id:      uuid.New(),
			Title:   "Pricing Tiers",
			Content: "We have Free, Pro ($29/mo), and Enterprise plans.",
			Tags:    []string{"pricing", "sales"},
		},
	}

	for i := range articles {
		if err := uow.ArticleRepository().Create(ctx, &articles[i]); err != nil {
			return err
		}
	}

	s.logger.Info("seeder", "Seeded knowledge base", map[string]interface{}{"articles": len(articles)})
	return nil
}

func (s *Seeder) seedLeads(ctx context.Context) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	count, err := uow.LeadRepository().Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	techCorp := "TechCorp"
	startupIO := "StartupIO"
	avengers := "Avengers Inc"
	leads := []entity.Lead{
		{Id: uuid.New(), SfId: "LEAD-001", FirstName: "Alice", LastName: "Johnson", Email: "alice@techcorp.com", Company: &techCorp, Status: constant.LeadStatusNew, Score: 85},
		{Id: uuid.New(), SfId: "LEAD-002", FirstName: "Bob", LastName: "Smith", Email: "bob@startup.io", Company: &startupIO, Status: constant.LeadStatusContacted, Score: 60},
		{Id: uuid.New(), SfId: "LEAD-003", FirstName: "Carol", LastName: "Danvers", Email: "carol@marvel.com", Company: &avengers, Status: constant.LeadStatusQualified, Score: 95},
	}

	for i := range leads {
		if err := uow.LeadRepository().Create(ctx, &leads[i]); err != nil {
			return err
		}
	}

	s.logger.Info("seeder", "Seeded demo leads", map[string]interface{}{"leads": len(leads)})
	return nil
}

func (s *Seeder) seedCases(ctx context.Context) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	count, err := uow.CaseRepository().Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	loginDesc := "User cannot login to dashboard"
	billingDesc := "Clarification on invoice #1234"
	cases := []entity.Case{
		{Id: uuid.New(), SfId: "CASE-001", Subject: "Login Issue", Description: &loginDesc, Status: constant.CaseStatusNew, Priority: constant.CasePriorityHigh},
		{Id: uuid.New(), SfId: "CASE-002", Subject: "Billing Question", Description: &billingDesc, Status: constant.CaseStatusInProgress, Priority: constant.CasePriorityMedium},
	}

	for i := range cases {
		if err := uow.CaseRepository().Create(ctx, &cases[i]); err != nil {
			return err
		}
	}

	s.logger.Info("seeder", "Seeded demo cases", map[string]interface{}{"cases": len(cases)})
	return nil
}
