package log

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"
)

// 对 logx 的薄封装，统一成 printf 风格

func Info(format string, args ...any) {
	logx.Infof(format, args...)
}

func Error(format string, args ...any) {
	logx.Errorf(format, args...)
}

func CtxInfo(ctx context.Context, format string, args ...any) {
	logx.WithContext(ctx).Infof(format, args...)
}

func CtxError(ctx context.Context, format string, args ...any) {
	logx.WithContext(ctx).Errorf(format, args...)
}
