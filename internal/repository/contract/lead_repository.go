package contract

import (
	"context"

	"crm-agent-be/internal/entity"
	"crm-agent-be/internal/repository/specification"
)

type LeadRepository interface {
	Create(ctx context.Context, lead *entity.Lead) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Lead, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Lead, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
