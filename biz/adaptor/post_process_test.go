package adaptor

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"campus-lms/biz/infrastructure/consts"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/stretchr/testify/assert"
)

func TestPostProcessStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "成功返回200", err: nil, want: http.StatusOK},
		{name: "参数错误返回400", err: consts.ErrInvalidParams, want: http.StatusBadRequest},
		{name: "重复提交返回400", err: consts.ErrAlreadySubmitted, want: http.StatusBadRequest},
		{name: "未认证返回401", err: consts.ErrNotAuthentication, want: http.StatusUnauthorized},
		{name: "停用账号返回401", err: consts.ErrInactiveAccount, want: http.StatusUnauthorized},
		{name: "越权返回403", err: consts.ErrForbidden, want: http.StatusForbidden},
		{name: "未找到返回404", err: consts.ErrNotFound, want: http.StatusNotFound},
		{name: "未知错误返回500", err: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := app.NewContext(0)
			PostProcess(context.Background(), c, nil, map[string]string{"message": "ok"}, tt.err)
			assert.Equal(t, tt.want, c.Response.StatusCode())
		})
	}
}

func TestPostProcessCreated(t *testing.T) {
	c := app.NewContext(0)
	PostProcessCreated(context.Background(), c, nil, map[string]string{"message": "ok"}, nil)
	assert.Equal(t, http.StatusCreated, c.Response.StatusCode())

	c = app.NewContext(0)
	PostProcessCreated(context.Background(), c, nil, nil, consts.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, c.Response.StatusCode())
}
