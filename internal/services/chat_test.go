package services

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/repositories"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeChatRepository struct {
	messages []entities.ChatMessage
}

func (f *fakeChatRepository) GetByCompany(ctx context.Context, company string) ([]entities.ChatMessage, error) {
	var out []entities.ChatMessage
	for _, m := range f.messages {
		if strings.EqualFold(m.Company, company) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeChatRepository) Append(ctx context.Context, message entities.ChatMessage) error {
	f.messages = append(f.messages, message)
	return nil
}

type fakeCache struct {
	items map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{items: make(map[string]string)}
}

func (c *fakeCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	c.items[key] = fmt.Sprintf("%v", value)
	return nil
}

func (c *fakeCache) Get(ctx context.Context, key string) (string, error) {
	v, ok := c.items[key]
	if !ok {
		return "", repositories.ErrCacheMiss
	}
	return v, nil
}

func (c *fakeCache) Del(ctx context.Context, key ...string) error {
	for _, k := range key {
		delete(c.items, k)
	}
	return nil
}

func newTestChatService(repo *fakeChatRepository, cache *fakeCache) *ChatService {
	svc := NewChatService(repo, cache, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC) }
	return svc
}

func TestChatFeedUnreadWatermark(t *testing.T) {
	repo := &fakeChatRepository{messages: []entities.ChatMessage{
		{ID: "m-1", SentAt: "2026-03-01T09:00:00Z", User: "tech", Message: "pump inspected", Company: "acme"},
		{ID: "m-2", SentAt: "2026-03-01T10:00:00Z", User: "client", Message: "thanks", Company: "acme"},
	}}
	svc := newTestChatService(repo, newFakeCache())
	ctx := context.Background()
	session := service.SessionContext{Login: "jdoe", Company: "acme"}

	feed, err := svc.Feed(ctx, session, "acme")
	require.NoError(t, err)
	require.Len(t, feed.Messages, 2)
	assert.True(t, feed.HasUnread)

	// The first read advanced the watermark; nothing new since.
	feed, err = svc.Feed(ctx, session, "acme")
	require.NoError(t, err)
	assert.False(t, feed.HasUnread)

	repo.messages = append(repo.messages, entities.ChatMessage{
		ID: "m-3", SentAt: "2026-03-01T11:00:00Z", User: "tech", Message: "filter swapped", Company: "acme",
	})
	feed, err = svc.Feed(ctx, session, "acme")
	require.NoError(t, err)
	assert.True(t, feed.HasUnread)
}

func TestChatFeedWatermarkIsPerUser(t *testing.T) {
	repo := &fakeChatRepository{messages: []entities.ChatMessage{
		{ID: "m-1", SentAt: "2026-03-01T09:00:00Z", User: "tech", Message: "pump inspected", Company: "acme"},
	}}
	svc := newTestChatService(repo, newFakeCache())
	ctx := context.Background()

	feed, err := svc.Feed(ctx, service.SessionContext{Login: "jdoe", Company: "acme"}, "acme")
	require.NoError(t, err)
	assert.True(t, feed.HasUnread)

	// A different login still sees the message as unread.
	feed, err = svc.Feed(ctx, service.SessionContext{Login: "asmith", Company: "acme"}, "acme")
	require.NoError(t, err)
	assert.True(t, feed.HasUnread)
}

func TestChatFeedShowsTrailingMessagesOnly(t *testing.T) {
	repo := &fakeChatRepository{}
	for i := 0; i < ChatFeedLimit+5; i++ {
		repo.messages = append(repo.messages, entities.ChatMessage{
			ID:      fmt.Sprintf("m-%03d", i),
			SentAt:  fmt.Sprintf("2026-03-01T09:%02d:00Z", i),
			User:    "tech",
			Message: "tick",
			Company: "acme",
		})
	}
	svc := newTestChatService(repo, newFakeCache())

	feed, err := svc.Feed(context.Background(), service.SessionContext{Login: "jdoe"}, "acme")
	require.NoError(t, err)
	require.Len(t, feed.Messages, ChatFeedLimit)
	assert.Equal(t, "m-005", feed.Messages[0].ID)
}

func TestPostMessageMarksOwnMessageRead(t *testing.T) {
	repo := &fakeChatRepository{}
	cache := newFakeCache()
	svc := newTestChatService(repo, cache)
	ctx := context.Background()
	session := service.SessionContext{Login: "jdoe", Company: "acme"}

	posted, err := svc.PostMessage(ctx, session, dto.PostMessageDTO{Company: "acme", Message: "belt replaced"})
	require.NoError(t, err)
	assert.NotEmpty(t, posted.ID)
	assert.Equal(t, "jdoe", posted.User)

	feed, err := svc.Feed(ctx, session, "acme")
	require.NoError(t, err)
	assert.False(t, feed.HasUnread)
}

func TestChatForbiddenForOtherCompany(t *testing.T) {
	svc := newTestChatService(&fakeChatRepository{}, newFakeCache())
	session := service.SessionContext{Login: "gx", Company: "globex"}

	_, err := svc.Feed(context.Background(), session, "acme")
	assert.ErrorIs(t, err, apperrors.ErrForbiddenCompany)

	_, err = svc.PostMessage(context.Background(), session, dto.PostMessageDTO{Company: "acme", Message: "hi"})
	assert.ErrorIs(t, err, apperrors.ErrForbiddenCompany)
}
