package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"maintenance-system/internal/metrics"
	apperrors "maintenance-system/pkg/errors"

	"go.uber.org/zap"
)

// CachedSheetStore wraps a SheetStore with two layers the raw workbook does
// not have:
//
//   - a bounded-staleness read cache in Redis (every dashboard interaction
//     recomputes from scratch, so uncached reads would hammer the workbook);
//   - an in-process last-known snapshot per worksheet, served when the
//     backend read fails, so a broken or locked workbook degrades the
//     dashboard to stale data instead of crashing it.
//
// Writes never touch the cache: they go straight to the backend, invalidate
// the worksheet's cache key on success, and fail loudly when the backend is
// down. Nothing is queued for later.
type CachedSheetStore struct {
	backend SheetStore
	cache   CacheRepositoryInterface
	ttl     time.Duration
	logger  *zap.Logger

	mu        sync.RWMutex
	snapshots map[string][]Row
	offline   bool
}

func NewCachedSheetStore(backend SheetStore, cache CacheRepositoryInterface, ttl time.Duration, logger *zap.Logger) *CachedSheetStore {
	return &CachedSheetStore{
		backend:   backend,
		cache:     cache,
		ttl:       ttl,
		logger:    logger,
		snapshots: make(map[string][]Row),
	}
}

// Offline reports whether the last backend read failed and reads are being
// served from snapshots.
func (s *CachedSheetStore) Offline() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.offline
}

func cacheKey(table string) string {
	return "sheet:rows:" + table
}

func (s *CachedSheetStore) ReadRows(ctx context.Context, table string) ([]Row, error) {
	if cached, err := s.cache.Get(ctx, cacheKey(table)); err == nil {
		var rows []Row
		if err := json.Unmarshal([]byte(cached), &rows); err == nil {
			metrics.SheetCacheHitsTotal.WithLabelValues(table).Inc()
			return rows, nil
		}
		// A corrupt cache entry is dropped and re-read from the backend.
		_ = s.cache.Del(ctx, cacheKey(table))
	} else if err != ErrCacheMiss {
		s.logger.Warn("sheet cache read failed, going to backend", zap.String("sheet", table), zap.Error(err))
	}

	rows, err := s.backend.ReadRows(ctx, table)
	if err != nil {
		metrics.SheetReadsTotal.WithLabelValues(table, "error").Inc()
		metrics.OfflineFallbacksTotal.WithLabelValues(table).Inc()
		s.logger.Warn("backend read failed, serving last-known snapshot",
			zap.String("sheet", table), zap.Error(err))

		s.mu.Lock()
		s.offline = true
		snapshot := s.snapshots[table]
		s.mu.Unlock()

		if snapshot == nil {
			snapshot = []Row{}
		}
		return snapshot, nil
	}
	metrics.SheetReadsTotal.WithLabelValues(table, "ok").Inc()

	s.mu.Lock()
	s.offline = false
	s.snapshots[table] = rows
	s.mu.Unlock()

	if encoded, err := json.Marshal(rows); err == nil {
		if err := s.cache.Set(ctx, cacheKey(table), encoded, s.ttl); err != nil {
			s.logger.Warn("sheet cache write failed", zap.String("sheet", table), zap.Error(err))
		}
	}

	return rows, nil
}

func (s *CachedSheetStore) AppendRow(ctx context.Context, table string, values []string) error {
	if err := s.backend.AppendRow(ctx, table, values); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStoreOffline, err)
	}
	if err := s.cache.Del(ctx, cacheKey(table)); err != nil {
		s.logger.Warn("sheet cache invalidation failed", zap.String("sheet", table), zap.Error(err))
	}
	return nil
}

func (s *CachedSheetStore) UpdateCell(ctx context.Context, table string, rowIndex, colIndex int, value string) error {
	if err := s.backend.UpdateCell(ctx, table, rowIndex, colIndex, value); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStoreOffline, err)
	}
	if err := s.cache.Del(ctx, cacheKey(table)); err != nil {
		s.logger.Warn("sheet cache invalidation failed", zap.String("sheet", table), zap.Error(err))
	}
	return nil
}
