package contract

import (
	"context"

	"crm-agent-be/internal/entity"
	"crm-agent-be/internal/repository/specification"
)

type ArticleRepository interface {
	Create(ctx context.Context, article *entity.Article) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Article, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
