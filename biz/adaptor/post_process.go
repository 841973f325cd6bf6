package adaptor

import (
	"context"
	"net/http"

	"campus-lms/biz/infrastructure/util"
	"campus-lms/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type errorBody struct {
	Message string `json:"message"`
}

// PostProcess 统一出口：成功返回业务对象，失败按错误码映射HTTP状态
func PostProcess(ctx context.Context, c *app.RequestContext, req, resp any, err error) {
	log.CtxInfo(ctx, "[%s] req=%s, err=%v", c.Path(), util.JSONF(req), err)
	if err == nil {
		c.JSON(http.StatusOK, resp)
		return
	}

	s, ok := status.FromError(err)
	if !ok {
		log.CtxError(ctx, "internal error: %v", err)
		c.JSON(http.StatusInternalServerError, errorBody{Message: "server error"})
		return
	}
	c.JSON(httpStatus(s.Code()), errorBody{Message: s.Message()})
}

// PostProcessCreated 创建成功时返回201
func PostProcessCreated(ctx context.Context, c *app.RequestContext, req, resp any, err error) {
	if err == nil {
		log.CtxInfo(ctx, "[%s] req=%s", c.Path(), util.JSONF(req))
		c.JSON(http.StatusCreated, resp)
		return
	}
	PostProcess(ctx, c, req, resp, err)
}

// httpStatus 错误码到HTTP状态的映射
// AlreadyExists 按旧有接口语义返回400而非409
func httpStatus(code codes.Code) int {
	switch code {
	case codes.InvalidArgument, codes.AlreadyExists:
		return http.StatusBadRequest
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// BindError 参数绑定失败
func BindError(c *app.RequestContext, err error) {
	c.JSON(http.StatusBadRequest, errorBody{Message: err.Error()})
}
