package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	apperrors "maintenance-system/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSheetStore struct {
	mu       sync.Mutex
	rows     map[string][]Row
	fail     bool
	readHits int
}

func (f *fakeSheetStore) ReadRows(ctx context.Context, table string) ([]Row, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.readHits++
	if f.fail {
		return nil, errors.New("workbook locked")
	}
	return f.rows[table], nil
}

func (f *fakeSheetStore) AppendRow(ctx context.Context, table string, values []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("workbook locked")
	}
	header := SheetHeaders[table]
	row := make(Row, len(header))
	for i, key := range header {
		if i < len(values) {
			row[key] = values[i]
		} else {
			row[key] = ""
		}
	}
	if f.rows == nil {
		f.rows = make(map[string][]Row)
	}
	f.rows[table] = append(f.rows[table], row)
	return nil
}

func (f *fakeSheetStore) UpdateCell(ctx context.Context, table string, rowIndex, colIndex int, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("workbook locked")
	}
	rows := f.rows[table]
	if rowIndex < 1 || rowIndex > len(rows) {
		return apperrors.ErrNotFound
	}
	header := SheetHeaders[table]
	if colIndex < 1 || colIndex > len(header) {
		return apperrors.ErrNotFound
	}
	rows[rowIndex-1][header[colIndex-1]] = value
	return nil
}

func (f *fakeSheetStore) setFail(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail = fail
}

type memoryCache struct {
	mu    sync.Mutex
	items map[string]string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: make(map[string]string)}
}

func (c *memoryCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = fmt.Sprintf("%s", value)
	return nil
}

func (c *memoryCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.items[key]
	if !ok {
		return "", ErrCacheMiss
	}
	return v, nil
}

func (c *memoryCache) Del(ctx context.Context, key ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range key {
		delete(c.items, k)
	}
	return nil
}

func TestCachedStoreSecondReadComesFromCache(t *testing.T) {
	backend := &fakeSheetStore{rows: map[string][]Row{
		"companies": {{"company": "acme"}},
	}}
	store := NewCachedSheetStore(backend, newMemoryCache(), time.Minute, zap.NewNop())
	ctx := context.Background()

	rows, err := store.ReadRows(ctx, "companies")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	rows, err = store.ReadRows(ctx, "companies")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "acme", rows[0]["company"])

	assert.Equal(t, 1, backend.readHits)
}

func TestCachedStoreServesSnapshotWhenBackendDies(t *testing.T) {
	backend := &fakeSheetStore{rows: map[string][]Row{
		"companies": {{"company": "acme"}},
	}}
	cache := newMemoryCache()
	store := NewCachedSheetStore(backend, cache, time.Minute, zap.NewNop())
	ctx := context.Background()

	_, err := store.ReadRows(ctx, "companies")
	require.NoError(t, err)
	assert.False(t, store.Offline())

	backend.setFail(true)
	require.NoError(t, cache.Del(ctx, cacheKey("companies")))

	rows, err := store.ReadRows(ctx, "companies")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "acme", rows[0]["company"])
	assert.True(t, store.Offline())

	backend.setFail(false)
	_, err = store.ReadRows(ctx, "companies")
	require.NoError(t, err)
	assert.False(t, store.Offline())
}

func TestCachedStoreColdFailureReadsAsEmpty(t *testing.T) {
	backend := &fakeSheetStore{fail: true}
	store := NewCachedSheetStore(backend, newMemoryCache(), time.Minute, zap.NewNop())

	rows, err := store.ReadRows(context.Background(), "companies")
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.True(t, store.Offline())
}

func TestCachedStoreWriteFailureIsStoreOffline(t *testing.T) {
	backend := &fakeSheetStore{fail: true}
	store := NewCachedSheetStore(backend, newMemoryCache(), time.Minute, zap.NewNop())
	ctx := context.Background()

	err := store.AppendRow(ctx, "companies", []string{"acme"})
	assert.ErrorIs(t, err, apperrors.ErrStoreOffline)

	err = store.UpdateCell(ctx, "tasks", 1, 6, "yes")
	assert.ErrorIs(t, err, apperrors.ErrStoreOffline)
}

func TestCachedStoreWriteInvalidatesCache(t *testing.T) {
	backend := &fakeSheetStore{rows: map[string][]Row{
		"companies": {{"company": "acme"}},
	}}
	store := NewCachedSheetStore(backend, newMemoryCache(), time.Minute, zap.NewNop())
	ctx := context.Background()

	_, err := store.ReadRows(ctx, "companies")
	require.NoError(t, err)

	require.NoError(t, store.AppendRow(ctx, "companies", []string{"globex"}))

	rows, err := store.ReadRows(ctx, "companies")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "globex", rows[1]["company"])
}
