package controller

import (
	"context"

	"kadai-note/biz/adaptor"
	"kadai-note/biz/application/dto/note/show"
	"kadai-note/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// ListStudyLog .
func ListStudyLog(ctx context.Context, c *app.RequestContext) {
	var req show.ListStudyLogReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.StudyLogService.ListStudyLog(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// DeleteStudyLog .
func DeleteStudyLog(ctx context.Context, c *app.RequestContext) {
	var req show.DeleteStudyLogReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.StudyLogService.DeleteStudyLog(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// WeeklyChart .
func WeeklyChart(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.StudyLogService.WeeklyChart(adaptor.InjectContext(ctx, c))
	adaptor.PostProcess(ctx, c, resp, err)
}
