package controller

import (
	"context"
	"io"
	"net/http"

	"kadai-note/biz/adaptor"
	"kadai-note/biz/application/dto/note/show"
	infconsts "kadai-note/biz/infrastructure/consts"
	"kadai-note/biz/infrastructure/util/log"
	"kadai-note/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// UploadAttachments 接收 multipart 表单，字段 classId + 若干 files
func UploadAttachments(ctx context.Context, c *app.RequestContext) {
	form, err := c.MultipartForm()
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	classId := c.PostForm("classId")

	var blobs [][]byte
	for _, fh := range form.File["files"] {
		f, err := fh.Open()
		if err != nil {
			c.String(consts.StatusBadRequest, err.Error())
			return
		}
		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			c.String(consts.StatusBadRequest, err.Error())
			return
		}
		blobs = append(blobs, data)
	}

	p := provider.Get()
	resp, err := p.AttachmentService.Upload(adaptor.InjectContext(ctx, c), classId, blobs)
	adaptor.PostProcess(ctx, c, resp, err)
}

// ListAttachments .
func ListAttachments(ctx context.Context, c *app.RequestContext) {
	var req show.ListAttachmentsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.AttachmentService.ListAttachments(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// DeleteAttachment .
func DeleteAttachment(ctx context.Context, c *app.RequestContext) {
	var req show.DeleteAttachmentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.AttachmentService.DeleteAttachment(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// ReleaseAttachment .
func ReleaseAttachment(ctx context.Context, c *app.RequestContext) {
	var req show.ReleaseAttachmentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.AttachmentService.ReleaseAttachment(adaptor.InjectContext(ctx, c), &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// FetchAttachment 凭临时令牌取附件本体，令牌失效返回 404
func FetchAttachment(ctx context.Context, c *app.RequestContext) {
	token := c.Param("token")

	p := provider.Get()
	data, err := p.AttachmentService.Fetch(adaptor.InjectContext(ctx, c), token)
	if err != nil {
		log.CtxInfo(ctx, "附件取回失败 token=%s: %v", token, err)
		c.JSON(consts.StatusNotFound, map[string]any{
			"code": 404,
			"msg":  infconsts.ErrAttachmentGone.Error(),
		})
		return
	}

	c.Data(consts.StatusOK, http.DetectContentType(data), data)
}
