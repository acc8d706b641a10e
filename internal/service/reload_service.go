package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/codeconfidence/internal/db"
	"github.com/codeconfidence/internal/metrics"
	"go.uber.org/zap"
)

// ContentLoader produces the full document set from a content directory.
type ContentLoader interface {
	Load(dir string) ([]db.Document, error)
}

// ReloadService re-runs the content pipeline and swaps the stored set.
type ReloadService struct {
	loader ContentLoader
	docs   *DocumentService
	dir    string
	logger *zap.Logger

	mu sync.Mutex
}

// NewReloadService 创建内容重载服务。
func NewReloadService(loader ContentLoader, docs *DocumentService, dir string, logger *zap.Logger) *ReloadService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReloadService{loader: loader, docs: docs, dir: dir, logger: logger}
}

// Reload loads every document and replaces the stored set. On failure the
// previous set stays in place. Concurrent calls run one at a time.
func (s *ReloadService) Reload(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	docs, err := s.loader.Load(s.dir)
	if err == nil {
		err = ctx.Err()
	}
	if err == nil {
		err = s.docs.Replace(docs)
	}
	metrics.ObserveReload(len(docs), err)
	if err != nil {
		s.logger.Error("content reload failed", zap.String("dir", s.dir), zap.Error(err))
		return 0, fmt.Errorf("reload %s: %w", s.dir, err)
	}

	s.logger.Info("content reloaded", zap.String("dir", s.dir), zap.Int("documents", len(docs)))
	return len(docs), nil
}
