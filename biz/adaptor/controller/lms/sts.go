package lms

import (
	"context"

	"campus-lms/biz/adaptor"
	"campus-lms/biz/application/dto/lms"
	"campus-lms/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

// GenUploadURL .
// @router /api/sts/upload-url [POST]
func GenUploadURL(ctx context.Context, c *app.RequestContext) {
	var req lms.UploadURLReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BindError(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.StsService.GenUploadURL(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
