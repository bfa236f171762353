package controller

import (
	"context"

	"kadai-note/biz/adaptor"
	"kadai-note/biz/application/dto/note/show"
	"kadai-note/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// CreateClass .
func CreateClass(ctx context.Context, c *app.RequestContext) {
	var req show.CreateClassReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.CreateClass(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// ListClasses .
func ListClasses(ctx context.Context, c *app.RequestContext) {
	var req show.ListClassesReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.ListClasses(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// DeleteClass .
func DeleteClass(ctx context.Context, c *app.RequestContext) {
	var req show.DeleteClassReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.DeleteClass(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// GetMemo .
func GetMemo(ctx context.Context, c *app.RequestContext) {
	var req show.GetMemoReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.GetMemo(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// SaveMemo .
func SaveMemo(ctx context.Context, c *app.RequestContext) {
	var req show.SaveMemoReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.SaveMemo(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, resp, err)
}
