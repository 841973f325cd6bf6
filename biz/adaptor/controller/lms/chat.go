package lms

import (
	"context"

	"campus-lms/biz/adaptor"
	"campus-lms/biz/application/dto/lms"
	"campus-lms/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

// SendChatMessage .
// @router /api/chat/message [POST]
func SendChatMessage(ctx context.Context, c *app.RequestContext) {
	var req lms.SendMessageReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BindError(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.ChatService.SendMessage(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetChatHistory .
// @router /api/chat/history [GET]
func GetChatHistory(ctx context.Context, c *app.RequestContext) {
	var req lms.GetChatHistoryReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BindError(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.ChatService.GetHistory(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ClearChat .
// @router /api/chat/clear [POST]
func ClearChat(ctx context.Context, c *app.RequestContext) {
	var req lms.ClearChatReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BindError(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.ChatService.ClearSession(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
