package search

import (
	"context"
	"sync"

	"crm-agent-be/internal/pkg/logger"
	"crm-agent-be/internal/repository/memory"
	"crm-agent-be/internal/repository/unitofwork"
	"crm-agent-be/pkg/rag"
)

const topResults = 3

// Service answers free-text queries against the seeded knowledge base.
// The inverted index is built lazily on first query and can be rebuilt
// at any time; rebuilding from the same article set is idempotent.
type Service struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *memory.QueryCache
	logger     logger.ILogger

	mu    sync.RWMutex
	index *rag.Index
}

func NewService(uowFactory unitofwork.RepositoryFactory, cache *memory.QueryCache, log logger.ILogger) *Service {
	return &Service{
		uowFactory: uowFactory,
		cache:      cache,
		logger:     log,
	}
}

// Rebuild constructs a fresh index from the current article snapshot and
// swaps it in. Safe to call redundantly.
func (s *Service) Rebuild(ctx context.Context) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	articles, err := uow.ArticleRepository().FindAll(ctx)
	if err != nil {
		return err
	}

	docs := make([]rag.Document, 0, len(articles))
	for _, a := range articles {
		docs = append(docs, rag.Document{
			ID:      a.Id.String(),
			Title:   a.Title,
			Content: a.Content,
			Tags:    a.Tags,
		})
	}

	ix := rag.Build(docs)

	s.mu.Lock()
	s.index = ix
	s.mu.Unlock()

	s.cache.Flush()
	s.logger.Info("knowledge-search", "Rebuilt knowledge index", map[string]interface{}{
		"articles": len(docs),
	})
	return nil
}

// Query returns the top ranked snippets for the given text. Never fails
// on an empty query; returns an empty slice when nothing matches.
func (s *Service) Query(ctx context.Context, text string) ([]rag.Result, error) {
	if cached, found := s.cache.Get(text); found {
		results := make([]rag.Result, len(cached))
		for i, c := range cached {
			results[i] = rag.Result{Title: c.Title, Snippet: c.Snippet, Score: c.Score}
		}
		return results, nil
	}

	s.mu.RLock()
	ix := s.index
	s.mu.RUnlock()

	if ix == nil {
		if err := s.Rebuild(ctx); err != nil {
			return nil, err
		}
		s.mu.RLock()
		ix = s.index
		s.mu.RUnlock()
	}

	results := ix.Query(text, topResults)

	cached := make([]memory.CachedResult, len(results))
	for i, r := range results {
		cached[i] = memory.CachedResult{Title: r.Title, Snippet: r.Snippet, Score: r.Score}
	}
	s.cache.Save(text, cached)

	return results, nil
}
