package service

import (
	"context"
	"kadai-note/biz/adaptor"
	"kadai-note/biz/application/dto/note/show"
	"kadai-note/biz/infrastructure/consts"
	"kadai-note/biz/infrastructure/repository/kadai"
	"kadai-note/biz/infrastructure/util/log"
	"math"
	"strings"
	"time"

	"github.com/google/wire"
	"github.com/samber/lo"
)

type IKadaiService interface {
	CreateKadai(ctx context.Context, req *show.CreateKadaiReq) (*show.Response, error)
	ListKadai(ctx context.Context, req *show.ListKadaiReq) (*show.ListKadaiResp, error)
	DoneKadai(ctx context.Context, req *show.DoneKadaiReq) (*show.Response, error)
	DeleteKadai(ctx context.Context, req *show.DeleteKadaiReq) (*show.Response, error)
}

type KadaiService struct {
	KadaiMapper *kadai.MongoMapper
}

var KadaiServiceSet = wire.NewSet(
	wire.Struct(new(KadaiService), "*"),
	wire.Bind(new(IKadaiService), new(*KadaiService)),
)

// CreateKadai 添加课题
func (s *KadaiService) CreateKadai(ctx context.Context, req *show.CreateKadaiReq) (*show.Response, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	// 课题名和截止日都是必填
	if strings.TrimSpace(req.Title) == "" || req.Due <= 0 {
		return nil, consts.ErrEmptyTitle
	}

	k := &kadai.Kadai{
		UID:   meta.GetUserId(),
		Title: strings.TrimSpace(req.Title),
		Due:   time.Unix(req.Due, 0),
		Done:  false,
	}
	if err := s.KadaiMapper.Insert(ctx, k); err != nil {
		log.CtxError(ctx, "添加课题失败: %v", err)
		return nil, consts.ErrCreateKadai
	}

	return &show.Response{Code: 0, Msg: "添加成功"}, nil
}

// ListKadai 按完成状态获取课题列表，截止日升序。
// 未完成的课题带上由截止日派生的紧急程度
func (s *KadaiService) ListKadai(ctx context.Context, req *show.ListKadaiReq) (*show.ListKadaiResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	kadais, err := s.KadaiMapper.FindByUID(ctx, meta.GetUserId(), req.Done)
	if err != nil {
		log.CtxError(ctx, "获取课题列表失败: %v", err)
		return nil, consts.ErrGetKadaiList
	}

	now := time.Now()
	infos := lo.Map(kadais, func(k *kadai.Kadai, _ int) *show.KadaiInfo {
		info := &show.KadaiInfo{
			Id:        k.ID.Hex(),
			Title:     k.Title,
			Due:       k.Due.Unix(),
			Done:      k.Done,
			CreatedAt: k.CreatedAt.Unix(),
		}
		if k.DoneAt != nil {
			info.DoneAt = k.DoneAt.Unix()
		}
		if !k.Done {
			info.Urgency = UrgencyBucket(k.Due, now)
			info.Color = consts.UrgencyColors[info.Urgency]
		}
		return info
	})

	return &show.ListKadaiResp{
		Kadais: infos,
		Total:  int64(len(infos)),
	}, nil
}

// DoneKadai 标记课题完成。重复标记只是覆盖同样的完成状态
func (s *KadaiService) DoneKadai(ctx context.Context, req *show.DoneKadaiReq) (*show.Response, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	if err := s.KadaiMapper.MarkDone(ctx, meta.GetUserId(), req.Id); err != nil {
		log.CtxError(ctx, "完成课题失败: %v", err)
		return nil, consts.ErrDoneKadai
	}

	return &show.Response{Code: 0, Msg: "已完成"}, nil
}

// DeleteKadai 删除课题
func (s *KadaiService) DeleteKadai(ctx context.Context, req *show.DeleteKadaiReq) (*show.Response, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	if err := s.KadaiMapper.Delete(ctx, meta.GetUserId(), req.Id); err != nil {
		log.CtxError(ctx, "删除课题失败: %v", err)
		return nil, consts.ErrDeleteKadai
	}

	return &show.Response{Code: 0, Msg: "已删除"}, nil
}

// UrgencyBucket 由截止日与当前时刻的整日差计算紧急程度。
// 差按天向上取整：已过期 critical，一天以内 high，三天以内 medium，其余 normal
func UrgencyBucket(due, now time.Time) string {
	diffDays := int(math.Ceil(due.Sub(now).Hours() / 24))
	switch {
	case diffDays < 0:
		return consts.UrgencyCritical
	case diffDays <= 1:
		return consts.UrgencyHigh
	case diffDays <= 3:
		return consts.UrgencyMedium
	default:
		return consts.UrgencyNormal
	}
}
