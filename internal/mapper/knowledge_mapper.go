package mapper

import (
	"encoding/json"

	"crm-agent-be/internal/entity"
	"crm-agent-be/internal/model"

	"gorm.io/datatypes"
)

type KnowledgeMapper struct{}

func NewKnowledgeMapper() *KnowledgeMapper {
	return &KnowledgeMapper{}
}

func (m *KnowledgeMapper) ArticleToEntity(a *model.Article) *entity.Article {
	if a == nil {
		return nil
	}

	var tags []string
	if len(a.Tags) > 0 {
		_ = json.Unmarshal(a.Tags, &tags)
	}

	return &entity.Article{
		Id:      a.Id,
		Title:   a.Title,
		Content: a.Content,
		Tags:    tags,
	}
}

func (m *KnowledgeMapper) ArticleToModel(a *entity.Article) *model.Article {
	if a == nil {
		return nil
	}

	var tags datatypes.JSON
	if len(a.Tags) > 0 {
		if raw, err := json.Marshal(a.Tags); err == nil {
			tags = raw
		}
	}

	return &model.Article{
		Id:      a.Id,
		Title:   a.Title,
		Content: a.Content,
		Tags:    tags,
	}
}
