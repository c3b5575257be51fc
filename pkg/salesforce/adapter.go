package salesforce

import (
	"context"
	"fmt"
	"math/rand"

	"crm-agent-be/internal/constant"
	"crm-agent-be/internal/entity"
	"crm-agent-be/internal/pkg/logger"
	"crm-agent-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// LeadInput carries the caller-supplied lead fields. Zero values take
// documented defaults on create.
type LeadInput struct {
	FirstName string
	LastName  string
	Email     string
	Company   *string
	Status    string
	Score     int
}

// CaseInput carries the caller-supplied case fields.
type CaseInput struct {
	Subject     string
	Description *string
	Status      string
	Priority    string
}

// Adapter is the single choke point for CRM-record mutations. It decides
// between the mock path (local store only) and the real path (external
// call stub, then local store) from the mode flag, read fresh on every
// call. Every call writes exactly one new row; store failures propagate
// to the caller with no retry.
type Adapter struct {
	modeStore *ModeStore
	logger    logger.ILogger
}

func NewAdapter(modeStore *ModeStore, log logger.ILogger) *Adapter {
	return &Adapter{
		modeStore: modeStore,
		logger:    log,
	}
}

func (a *Adapter) Mode() string {
	return a.modeStore.Get()
}

func (a *Adapter) CreateLead(ctx context.Context, uow unitofwork.UnitOfWork, input LeadInput) (*entity.Lead, error) {
	if a.Mode() == constant.CRMModeReal {
		// Stub for real connectivity. A real integration defines its own
		// retry/backoff policy; this path never fails.
		a.logger.Info("salesforce-adapter", "Would connect to Salesforce to create Lead", map[string]interface{}{
			"first_name": input.FirstName,
			"last_name":  input.LastName,
		})
	}

	lead := &entity.Lead{
		Id:        uuid.New(),
		SfId:      synthesizeId("MOCK"),
		FirstName: defaultString(input.FirstName, "Unknown"),
		LastName:  defaultString(input.LastName, "Unknown"),
		Email:     defaultString(input.Email, "unknown@example.com"),
		Company:   input.Company,
		Status:    defaultString(input.Status, constant.LeadStatusNew),
		Score:     input.Score,
	}

	if err := uow.LeadRepository().Create(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

func (a *Adapter) CreateCase(ctx context.Context, uow unitofwork.UnitOfWork, input CaseInput) (*entity.Case, error) {
	if a.Mode() == constant.CRMModeReal {
		a.logger.Info("salesforce-adapter", "Would connect to Salesforce to create Case", map[string]interface{}{
			"subject": input.Subject,
		})
	}

	crmCase := &entity.Case{
		Id:          uuid.New(),
		SfId:        synthesizeId("CASE"),
		Subject:     defaultString(input.Subject, "No Subject"),
		Description: input.Description,
		Status:      defaultString(input.Status, constant.CaseStatusNew),
		Priority:    defaultString(input.Priority, constant.CasePriorityMedium),
	}

	if err := uow.CaseRepository().Create(ctx, crmCase); err != nil {
		return nil, err
	}
	return crmCase, nil
}

// CallApexAction is a mock of invoking an Apex class over REST. It never
// performs network I/O.
func (a *Adapter) CallApexAction(actionName string, params map[string]interface{}) map[string]interface{} {
	a.logger.Info("salesforce-adapter", "Calling Apex Action", map[string]interface{}{
		"action": actionName,
		"params": params,
	})
	return map[string]interface{}{
		"success": true,
		"message": "Mock Apex Execution",
	}
}

// synthesizeId mimics an external-system identifier. Unique per record in
// practice but not guaranteed globally unique in this mock.
func synthesizeId(prefix string) string {
	return fmt.Sprintf("%s-%04d", prefix, rand.Intn(10000))
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
