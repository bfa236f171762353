package controller

import (
	"context"

	"kadai-note/biz/adaptor"
	"kadai-note/biz/application/dto/note/show"
	"kadai-note/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// GetSchedule .
func GetSchedule(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.ScheduleService.GetSchedule(adaptor.InjectContext(ctx, c))
	adaptor.PostProcess(ctx, c, resp, err)
}

// SaveSchedule .
func SaveSchedule(ctx context.Context, c *app.RequestContext) {
	var req show.SaveScheduleReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.ScheduleService.SaveSchedule(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// MarkAttendance .
func MarkAttendance(ctx context.Context, c *app.RequestContext) {
	var req show.MarkAttendanceReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.ScheduleService.MarkAttendance(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// ResetSubject .
func ResetSubject(ctx context.Context, c *app.RequestContext) {
	var req show.ResetSubjectReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.ScheduleService.ResetSubject(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// GetAttendance .
func GetAttendance(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.ScheduleService.GetAttendance(adaptor.InjectContext(ctx, c))
	adaptor.PostProcess(ctx, c, resp, err)
}
