package service

import (
	"context"
	"kadai-note/biz/adaptor"
	"kadai-note/biz/application/dto/note/show"
	"kadai-note/biz/infrastructure/cache"
	"kadai-note/biz/infrastructure/consts"
	"kadai-note/biz/infrastructure/repository/attachment"
	"kadai-note/biz/infrastructure/util/log"

	"github.com/google/uuid"
	"github.com/google/wire"
)

type IAttachmentService interface {
	Upload(ctx context.Context, classId string, blobs [][]byte) (*show.Response, error)
	ListAttachments(ctx context.Context, req *show.ListAttachmentsReq) (*show.ListAttachmentsResp, error)
	DeleteAttachment(ctx context.Context, req *show.DeleteAttachmentReq) (*show.Response, error)
	ReleaseAttachment(ctx context.Context, req *show.ReleaseAttachmentReq) (*show.Response, error)
	Fetch(ctx context.Context, token string) ([]byte, error)
}

// AttachmentService 授业的图片附件。
// 附件本体在本机的 SQLite 里，按授业id存取，不跟随用户账号；
// 对外只发放带过期时间的临时链接，不直接暴露存储位置
type AttachmentService struct {
	AttachmentMapper *attachment.SQLiteMapper
	TokenMapper      *cache.AttachmentTokenMapper
}

var AttachmentServiceSet = wire.NewSet(
	wire.Struct(new(AttachmentService), "*"),
	wire.Bind(new(IAttachmentService), new(*AttachmentService)),
)

// Upload 把若干张图片追加到授业附件的末尾，一次事务完成
func (s *AttachmentService) Upload(ctx context.Context, classId string, blobs [][]byte) (*show.Response, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if classId == "" {
		return nil, consts.ErrInvalidParams
	}

	if err := s.AttachmentMapper.Append(ctx, classId, blobs); err != nil {
		log.CtxError(ctx, "保存图片失败: %v", err)
		return nil, consts.ErrSaveAttachment
	}

	return &show.Response{Code: 0, Msg: "图片已保存"}, nil
}

// ListAttachments 按保存顺序返回附件的临时链接。
// 每次调用都发放新令牌，旧令牌到期自动失效
func (s *AttachmentService) ListAttachments(ctx context.Context, req *show.ListAttachmentsReq) (*show.ListAttachmentsResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if req.ClassId == "" {
		return nil, consts.ErrInvalidParams
	}

	blobs, err := s.AttachmentMapper.List(ctx, req.ClassId)
	if err != nil {
		log.CtxError(ctx, "读取图片失败: %v", err)
		return nil, consts.ErrGetAttachment
	}

	infos := make([]*show.AttachmentInfo, 0, len(blobs))
	for i := range blobs {
		token := uuid.New().String()
		err = s.TokenMapper.Set(ctx, token, &cache.AttachmentRef{
			ClassID:  req.ClassId,
			Position: i,
		})
		if err != nil {
			log.CtxError(ctx, "登记图片令牌失败: %v", err)
			return nil, consts.ErrGetAttachment
		}
		infos = append(infos, &show.AttachmentInfo{
			Index: i,
			Url:   "/api/attachment/" + token,
			Token: token,
		})
	}

	return &show.ListAttachmentsResp{
		Attachments: infos,
		Total:       int64(len(infos)),
	}, nil
}

// DeleteAttachment 删除指定序号的一张图片，其余图片保持相对顺序。
// 序号越界时视为成功，什么都不改
func (s *AttachmentService) DeleteAttachment(ctx context.Context, req *show.DeleteAttachmentReq) (*show.Response, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if req.ClassId == "" {
		return nil, consts.ErrInvalidParams
	}

	if err := s.AttachmentMapper.DeleteAt(ctx, req.ClassId, req.Index); err != nil {
		log.CtxError(ctx, "删除图片失败: %v", err)
		return nil, consts.ErrDeleteAttachment
	}

	return &show.Response{Code: 0, Msg: "已删除"}, nil
}

// ReleaseAttachment 客户端不再展示某张图片时主动吊销其令牌
func (s *AttachmentService) ReleaseAttachment(ctx context.Context, req *show.ReleaseAttachmentReq) (*show.Response, error) {
	if req.Token == "" {
		return nil, consts.ErrInvalidParams
	}
	if err := s.TokenMapper.Delete(ctx, req.Token); err != nil {
		log.CtxError(ctx, "吊销图片令牌失败: %v", err)
	}
	return &show.Response{Code: 0, Msg: "ok"}, nil
}

// Fetch 用临时令牌取附件内容。令牌过期、被吊销或附件已被删除都视为链接失效
func (s *AttachmentService) Fetch(ctx context.Context, token string) ([]byte, error) {
	ref, err := s.TokenMapper.Get(ctx, token)
	if err != nil {
		return nil, consts.ErrAttachmentGone
	}
	data, err := s.AttachmentMapper.Get(ctx, ref.ClassID, ref.Position)
	if err != nil {
		return nil, consts.ErrAttachmentGone
	}
	return data, nil
}
