package adaptor

import (
	"context"
	"errors"
	"kadai-note/biz/infrastructure/consts"
	"kadai-note/biz/infrastructure/util/log"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"
	"google.golang.org/grpc/codes"
)

// PostProcess 统一的响应出口：成功返回 resp，
// Errno 按 {code, msg} 返回给前端弹窗展示，其余错误一律归为未知错误
func PostProcess(ctx context.Context, c *app.RequestContext, resp any, err error) {
	if err == nil {
		c.JSON(http.StatusOK, resp)
		return
	}

	log.CtxError(ctx, "request failed, err=%v", err)

	var en *consts.Errno
	if errors.As(err, &en) {
		status := en.GRPCStatus()
		c.JSON(http.StatusOK, map[string]any{
			"code": int64(status.Code()),
			"msg":  status.Message(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, map[string]any{
		"code": int64(codes.Unknown),
		"msg":  consts.ErrCall.Error(),
	})
}
