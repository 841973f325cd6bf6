package lms

import (
	"context"

	"campus-lms/biz/adaptor"
	"campus-lms/biz/application/dto/lms"
	"campus-lms/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

// Register .
// @router /api/auth/register [POST]
func Register(ctx context.Context, c *app.RequestContext) {
	var req lms.RegisterReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BindError(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.AuthService.Register(ctx, &req)
	adaptor.PostProcessCreated(ctx, c, &req, resp, err)
}

// Login .
// @router /api/auth/login [POST]
func Login(ctx context.Context, c *app.RequestContext) {
	var req lms.LoginReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BindError(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.AuthService.Login(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetProfile .
// @router /api/auth/profile [GET]
func GetProfile(ctx context.Context, c *app.RequestContext) {
	var req lms.GetProfileReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BindError(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.AuthService.GetProfile(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// UpdateProfile .
// @router /api/auth/profile [PUT]
func UpdateProfile(ctx context.Context, c *app.RequestContext) {
	var req lms.UpdateProfileReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BindError(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.AuthService.UpdateProfile(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ChangePassword .
// @router /api/auth/change-password [PUT]
func ChangePassword(ctx context.Context, c *app.RequestContext) {
	var req lms.ChangePasswordReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BindError(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.AuthService.ChangePassword(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// CheckEmail .
// @router /api/auth/check-email [POST]
func CheckEmail(ctx context.Context, c *app.RequestContext) {
	var req lms.CheckEmailReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BindError(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.AuthService.CheckEmail(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// CheckName .
// @router /api/auth/check-name [POST]
func CheckName(ctx context.Context, c *app.RequestContext) {
	var req lms.CheckNameReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BindError(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.AuthService.CheckName(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// VerifyToken .
// @router /api/auth/verify-token [POST]
func VerifyToken(ctx context.Context, c *app.RequestContext) {
	var req lms.VerifyTokenReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BindError(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.AuthService.VerifyToken(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
