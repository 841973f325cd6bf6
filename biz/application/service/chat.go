package service

import (
	"context"
	"time"

	"campus-lms/biz/adaptor"
	"campus-lms/biz/application/dto/lms"
	"campus-lms/biz/infrastructure/cache"
	"campus-lms/biz/infrastructure/consts"
	"campus-lms/biz/infrastructure/repository/user"
	"campus-lms/biz/infrastructure/util"
	"campus-lms/biz/infrastructure/util/log"

	"github.com/google/uuid"
	"github.com/google/wire"
	"github.com/mitchellh/mapstructure"
)

const fallbackReply = "The learning assistant is temporarily unavailable. Please try again later."

// chatReply 外部AI服务的应答格式
type chatReply struct {
	Reply string `mapstructure:"reply"`
}

type IChatService interface {
	SendMessage(ctx context.Context, req *lms.SendMessageReq) (*lms.SendMessageResp, error)
	GetHistory(ctx context.Context, req *lms.GetChatHistoryReq) (*lms.GetChatHistoryResp, error)
	ClearSession(ctx context.Context, req *lms.ClearChatReq) (*lms.Response, error)
}

type ChatService struct {
	ChatSessionCacheMapper *cache.ChatSessionCacheMapper
	UserMapper             *user.MongoMapper
}

var ChatServiceSet = wire.NewSet(
	wire.Struct(new(ChatService), "*"),
	wire.Bind(new(IChatService), new(*ChatService)),
)

// SendMessage 学习助手对话
// 会话按用户维护，首次发消息时创建；外部服务不可用时返回兜底回复而不报错
func (s *ChatService) SendMessage(ctx context.Context, req *lms.SendMessageReq) (*lms.SendMessageResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if _, err := activeUser(ctx, s.UserMapper, userMeta); err != nil {
		return nil, err
	}
	if req.Message == "" {
		return nil, consts.ErrInvalidParams
	}

	session, err := s.ChatSessionCacheMapper.Get(ctx, userMeta.GetUserId())
	if err != nil {
		session = &cache.ChatSession{
			SessionID:  uuid.New().String(),
			UserID:     userMeta.GetUserId(),
			Messages:   []*cache.ChatMessage{},
			CreateTime: time.Now(),
		}
	}
	session.Messages = append(session.Messages, &cache.ChatMessage{
		Role:      "user",
		Content:   req.Message,
		Timestamp: time.Now(),
	})

	history := make([]map[string]string, 0, len(session.Messages))
	for _, m := range session.Messages {
		history = append(history, map[string]string{
			"role":    m.Role,
			"content": m.Content,
		})
	}

	reply := fallbackReply
	fallback := true
	resp, err := util.GetHttpClient().ChatCompletion(ctx, history)
	if err == nil {
		var parsed chatReply
		if err := mapstructure.Decode(resp, &parsed); err == nil && parsed.Reply != "" {
			reply = parsed.Reply
			fallback = false
		}
	}

	session.Messages = append(session.Messages, &cache.ChatMessage{
		Role:      "assistant",
		Content:   reply,
		Timestamp: time.Now(),
	})
	if err := s.ChatSessionCacheMapper.Set(ctx, session); err != nil {
		log.CtxError(ctx, "保存会话失败: %v", err)
		return nil, consts.ErrChatBackend
	}

	return &lms.SendMessageResp{
		SessionId: session.SessionID,
		Reply:     reply,
		Fallback:  fallback,
	}, nil
}

// GetHistory 拉取当前会话历史，无会话时返回空列表
func (s *ChatService) GetHistory(ctx context.Context, _ *lms.GetChatHistoryReq) (*lms.GetChatHistoryResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if _, err := activeUser(ctx, s.UserMapper, userMeta); err != nil {
		return nil, err
	}

	session, err := s.ChatSessionCacheMapper.Get(ctx, userMeta.GetUserId())
	if err != nil {
		return &lms.GetChatHistoryResp{Messages: []*cache.ChatMessage{}}, nil
	}
	return &lms.GetChatHistoryResp{
		SessionId: session.SessionID,
		Messages:  session.Messages,
	}, nil
}

// ClearSession 清除当前会话
func (s *ChatService) ClearSession(ctx context.Context, _ *lms.ClearChatReq) (*lms.Response, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if _, err := activeUser(ctx, s.UserMapper, userMeta); err != nil {
		return nil, err
	}

	if err := s.ChatSessionCacheMapper.Delete(ctx, userMeta.GetUserId()); err != nil {
		log.CtxError(ctx, "清除会话失败: %v", err)
		return nil, consts.ErrChatBackend
	}
	return &lms.Response{Message: "Chat session cleared"}, nil
}
