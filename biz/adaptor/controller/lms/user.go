package lms

import (
	"context"

	"campus-lms/biz/adaptor"
	"campus-lms/biz/application/dto/lms"
	"campus-lms/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

// ListUsers .
// @router /api/users [GET]
func ListUsers(ctx context.Context, c *app.RequestContext) {
	var req lms.ListUsersReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BindError(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.UserService.ListUsers(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetUser .
// @router /api/users/:id [GET]
func GetUser(ctx context.Context, c *app.RequestContext) {
	var req lms.GetUserReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BindError(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.UserService.GetUser(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// CreateUser .
// @router /api/users [POST]
func CreateUser(ctx context.Context, c *app.RequestContext) {
	var req lms.CreateUserReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BindError(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.UserService.CreateUser(ctx, &req)
	adaptor.PostProcessCreated(ctx, c, &req, resp, err)
}

// UpdateUser .
// @router /api/users/:id [PUT]
func UpdateUser(ctx context.Context, c *app.RequestContext) {
	var req lms.UpdateUserReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BindError(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.UserService.UpdateUser(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// DeleteUser .
// @router /api/users/:id [DELETE]
func DeleteUser(ctx context.Context, c *app.RequestContext) {
	var req lms.DeleteUserReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BindError(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.UserService.DeleteUser(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
