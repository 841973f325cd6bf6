package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"campus-lms/biz/infrastructure/config"
	"campus-lms/biz/infrastructure/consts"
	"campus-lms/biz/infrastructure/redis"

	gozero_redis "github.com/zeromicro/go-zero/core/stores/redis"
)

const chatSessionCachePrefix = "chat_session"

// ChatMessage 会话中的一条消息
type ChatMessage struct {
	Role      string    `json:"role"` // user/assistant
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatSession 按用户维护的会话，首次发消息时创建，显式清除或过期后销毁
type ChatSession struct {
	SessionID  string         `json:"sessionId"`
	UserID     string         `json:"userId"`
	Messages   []*ChatMessage `json:"messages"`
	CreateTime time.Time      `json:"createTime"`
}

type IChatSessionCacheMapper interface {
	Get(ctx context.Context, userID string) (*ChatSession, error)
	Set(ctx context.Context, session *ChatSession) error
	Delete(ctx context.Context, userID string) error
}

type ChatSessionCacheMapper struct {
	rds *gozero_redis.Redis
}

func NewChatSessionCacheMapper(config *config.Config) *ChatSessionCacheMapper {
	return &ChatSessionCacheMapper{
		rds: redis.GetRedis(config),
	}
}

// Get 读取用户会话，不存在时返回 ErrSessionExpire
func (m *ChatSessionCacheMapper) Get(ctx context.Context, userID string) (*ChatSession, error) {
	cacheKey := m.buildCacheKey(userID)

	cachedData, err := m.rds.GetCtx(ctx, cacheKey)
	if err != nil {
		return nil, err
	}
	if cachedData == "" {
		return nil, consts.ErrSessionExpire
	}

	var session ChatSession
	if err := json.Unmarshal([]byte(cachedData), &session); err != nil {
		return nil, fmt.Errorf("unmarshal cached session failed: %w", err)
	}
	return &session, nil
}

// Set 写入会话并续期
func (m *ChatSessionCacheMapper) Set(ctx context.Context, session *ChatSession) error {
	cacheKey := m.buildCacheKey(session.UserID)

	sessionBytes, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session failed: %w", err)
	}
	return m.rds.SetexCtx(ctx, cacheKey, string(sessionBytes), consts.ChatSessionTTL)
}

// Delete 清除会话
func (m *ChatSessionCacheMapper) Delete(ctx context.Context, userID string) error {
	cacheKey := m.buildCacheKey(userID)
	_, err := m.rds.DelCtx(ctx, cacheKey)
	return err
}

// buildCacheKey 构造缓存key
func (m *ChatSessionCacheMapper) buildCacheKey(userID string) string {
	return fmt.Sprintf("%s:%s", chatSessionCachePrefix, userID)
}
