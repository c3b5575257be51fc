package service

import (
	"context"

	"crm-agent-be/internal/dto"
	"crm-agent-be/internal/repository/specification"
	"crm-agent-be/internal/repository/unitofwork"
)

// ICRMService exposes read access to the locally persisted CRM records.
type ICRMService interface {
	GetLeads(ctx context.Context) ([]*dto.LeadResponse, error)
	GetCases(ctx context.Context) ([]*dto.CaseResponse, error)
}

type crmService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCRMService(uowFactory unitofwork.RepositoryFactory) ICRMService {
	return &crmService{
		uowFactory: uowFactory,
	}
}

func (cs *crmService) GetLeads(ctx context.Context) ([]*dto.LeadResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	leads, err := uow.LeadRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.LeadResponse, 0, len(leads))
	for _, lead := range leads {
		response = append(response, &dto.LeadResponse{
			Id:        lead.Id,
			SfId:      lead.SfId,
			FirstName: lead.FirstName,
			LastName:  lead.LastName,
			Email:     lead.Email,
			Company:   lead.Company,
			Status:    lead.Status,
			Score:     lead.Score,
			CreatedAt: lead.CreatedAt,
		})
	}
	return response, nil
}

func (cs *crmService) GetCases(ctx context.Context) ([]*dto.CaseResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	cases, err := uow.CaseRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.CaseResponse, 0, len(cases))
	for _, c := range cases {
		response = append(response, &dto.CaseResponse{
			Id:          c.Id,
			SfId:        c.SfId,
			Subject:     c.Subject,
			Description: c.Description,
			Status:      c.Status,
			Priority:    c.Priority,
			CreatedAt:   c.CreatedAt,
		})
	}
	return response, nil
}
