package mapper

import (
	"crm-agent-be/internal/entity"
	"crm-agent-be/internal/model"
)

type CRMMapper struct{}

func NewCRMMapper() *CRMMapper {
	return &CRMMapper{}
}

func (m *CRMMapper) LeadToEntity(l *model.Lead) *entity.Lead {
	if l == nil {
		return nil
	}
	return &entity.Lead{
		Id:        l.Id,
		SfId:      l.SfId,
		FirstName: l.FirstName,
		LastName:  l.LastName,
		Email:     l.Email,
		Company:   l.Company,
		Status:    l.Status,
		Score:     l.Score,
		CreatedAt: l.CreatedAt,
	}
}

func (m *CRMMapper) LeadToModel(l *entity.Lead) *model.Lead {
	if l == nil {
		return nil
	}
	return &model.Lead{
		Id:        l.Id,
		SfId:      l.SfId,
		FirstName: l.FirstName,
		LastName:  l.LastName,
		Email:     l.Email,
		Company:   l.Company,
		Status:    l.Status,
		Score:     l.Score,
		CreatedAt: l.CreatedAt,
	}
}

func (m *CRMMapper) CaseToEntity(c *model.Case) *entity.Case {
	if c == nil {
		return nil
	}
	return &entity.Case{
		Id:          c.Id,
		SfId:        c.SfId,
		Subject:     c.Subject,
		Description: c.Description,
		Status:      c.Status,
		Priority:    c.Priority,
		CreatedAt:   c.CreatedAt,
	}
}

func (m *CRMMapper) CaseToModel(c *entity.Case) *model.Case {
	if c == nil {
		return nil
	}
	return &model.Case{
		Id:          c.Id,
		SfId:        c.SfId,
		Subject:     c.Subject,
		Description: c.Description,
		Status:      c.Status,
		Priority:    c.Priority,
		CreatedAt:   c.CreatedAt,
	}
}
