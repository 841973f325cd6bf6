package log

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/logx"
)

// 基于 go-zero logx 的简单封装

func Info(format string, v ...any) {
	logx.Info(fmt.Sprintf(format, v...))
}

func Error(format string, v ...any) {
	logx.Error(fmt.Sprintf(format, v...))
}

func CtxInfo(ctx context.Context, format string, v ...any) {
	logx.WithContext(ctx).Info(fmt.Sprintf(format, v...))
}

func CtxError(ctx context.Context, format string, v ...any) {
	logx.WithContext(ctx).Error(fmt.Sprintf(format, v...))
}
