package lms

import "campus-lms/biz/infrastructure/cache"

type SendMessageReq struct {
	Message string `json:"message"`
}

type SendMessageResp struct {
	SessionId string `json:"sessionId"`
	Reply     string `json:"reply"`
	Fallback  bool   `json:"fallback"` // 外部服务不可用时为兜底回复
}

type GetChatHistoryReq struct{}

type GetChatHistoryResp struct {
	SessionId string               `json:"sessionId"`
	Messages  []*cache.ChatMessage `json:"messages"`
}

type ClearChatReq struct{}
