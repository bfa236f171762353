package controller

import (
	"context"

	"kadai-note/biz/adaptor"
	"kadai-note/biz/application/dto/note/show"
	"kadai-note/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// CreateKadai .
func CreateKadai(ctx context.Context, c *app.RequestContext) {
	var req show.CreateKadaiReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.KadaiService.CreateKadai(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// ListKadai .
func ListKadai(ctx context.Context, c *app.RequestContext) {
	var req show.ListKadaiReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.KadaiService.ListKadai(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// DoneKadai .
func DoneKadai(ctx context.Context, c *app.RequestContext) {
	var req show.DoneKadaiReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.KadaiService.DoneKadai(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// DeleteKadai .
func DeleteKadai(ctx context.Context, c *app.RequestContext) {
	var req show.DeleteKadaiReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.KadaiService.DeleteKadai(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, resp, err)
}
