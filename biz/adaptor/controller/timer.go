package controller

import (
	"context"

	"kadai-note/biz/adaptor"
	"kadai-note/biz/application/dto/note/show"
	"kadai-note/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// StartTimer .
func StartTimer(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.TimerService.Start(adaptor.InjectContext(ctx, c))
	adaptor.PostProcess(ctx, c, resp, err)
}

// PauseTimer .
func PauseTimer(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.TimerService.Pause(adaptor.InjectContext(ctx, c))
	adaptor.PostProcess(ctx, c, resp, err)
}

// ResumeTimer .
func ResumeTimer(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.TimerService.Resume(adaptor.InjectContext(ctx, c))
	adaptor.PostProcess(ctx, c, resp, err)
}

// StopTimer .
func StopTimer(ctx context.Context, c *app.RequestContext) {
	var req show.TimerStopReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.TimerService.Stop(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// TimerStatus .
func TimerStatus(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.TimerService.Status(adaptor.InjectContext(ctx, c))
	adaptor.PostProcess(ctx, c, resp, err)
}
