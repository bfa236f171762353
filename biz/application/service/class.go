package service

import (
	"context"
	"kadai-note/biz/adaptor"
	"kadai-note/biz/application/dto/note/show"
	"kadai-note/biz/infrastructure/consts"
	"kadai-note/biz/infrastructure/repository/attachment"
	"kadai-note/biz/infrastructure/repository/class"
	"kadai-note/biz/infrastructure/util"
	"kadai-note/biz/infrastructure/util/log"
	"sort"
	"strings"

	"github.com/google/wire"
	"github.com/samber/lo"
)

type IClassService interface {
	CreateClass(ctx context.Context, req *show.CreateClassReq) (*show.CreateClassResp, error)
	ListClasses(ctx context.Context, req *show.ListClassesReq) (*show.ListClassesResp, error)
	DeleteClass(ctx context.Context, req *show.DeleteClassReq) (*show.Response, error)
	GetMemo(ctx context.Context, req *show.GetMemoReq) (*show.GetMemoResp, error)
	SaveMemo(ctx context.Context, req *show.SaveMemoReq) (*show.Response, error)
}

type ClassService struct {
	ClassMapper      *class.MongoMapper
	AttachmentMapper *attachment.SQLiteMapper
}

var ClassServiceSet = wire.NewSet(
	wire.Struct(new(ClassService), "*"),
	wire.Bind(new(IClassService), new(*ClassService)),
)

// CreateClass 添加授业。名字允许重复，只有id唯一
func (s *ClassService) CreateClass(ctx context.Context, req *show.CreateClassReq) (*show.CreateClassResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, consts.ErrEmptyName
	}

	c := &class.Class{
		UID:  meta.GetUserId(),
		Name: name,
	}
	if err := s.ClassMapper.Insert(ctx, c); err != nil {
		log.CtxError(ctx, "添加授业失败: %v", err)
		return nil, consts.ErrCreateClass
	}

	return &show.CreateClassResp{ClassId: c.ID.Hex()}, nil
}

// ListClasses 获取授业列表，按日语排序规则排序，忽略大小写
func (s *ClassService) ListClasses(ctx context.Context, req *show.ListClassesReq) (*show.ListClassesResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	classes, err := s.ClassMapper.FindByUID(ctx, meta.GetUserId())
	if err != nil {
		log.CtxError(ctx, "获取授业列表失败: %v", err)
		return nil, consts.ErrGetClassList
	}

	infos := lo.Map(classes, func(c *class.Class, _ int) *show.ClassInfo {
		return &show.ClassInfo{
			Id:        c.ID.Hex(),
			Name:      c.Name,
			HasMemo:   c.Memo != "",
			CreatedAt: c.CreatedAt.Unix(),
		}
	})
	sort.SliceStable(infos, func(i, j int) bool {
		return util.CompareJa(infos[i].Name, infos[j].Name) < 0
	})

	return &show.ListClassesResp{
		Classes: infos,
		Total:   int64(len(infos)),
	}, nil
}

// DeleteClass 删除授业，本机的图片附件一并级联删除。
// 确认步骤在前端完成，这里直接删。
// 出席统计按科目名留存，不级联，重置交给时间割页面
func (s *ClassService) DeleteClass(ctx context.Context, req *show.DeleteClassReq) (*show.Response, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	if err := s.ClassMapper.Delete(ctx, meta.GetUserId(), req.Id); err != nil {
		log.CtxError(ctx, "删除授业失败: %v", err)
		return nil, consts.ErrDeleteClass
	}
	if err := s.AttachmentMapper.DeleteAll(ctx, req.Id); err != nil {
		// 授业记录已删，附件清理失败只记日志，残留随下一次删除清掉
		log.CtxError(ctx, "级联删除附件失败: %v", err)
	}

	return &show.Response{Code: 0, Msg: "已删除"}, nil
}

// GetMemo 读取授业备忘
func (s *ClassService) GetMemo(ctx context.Context, req *show.GetMemoReq) (*show.GetMemoResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	c, err := s.ClassMapper.FindOne(ctx, meta.GetUserId(), req.ClassId)
	if err != nil {
		log.CtxError(ctx, "读取备忘失败: %v", err)
		return nil, consts.ErrGetMemo
	}

	return &show.GetMemoResp{
		ClassId: c.ID.Hex(),
		Name:    c.Name,
		Memo:    c.Memo,
	}, nil
}

// SaveMemo 保存授业备忘。只合并 memo 一个字段，记录的其余字段保持不变
func (s *ClassService) SaveMemo(ctx context.Context, req *show.SaveMemoReq) (*show.Response, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	if err := s.ClassMapper.UpdateMemo(ctx, meta.GetUserId(), req.ClassId, req.Memo); err != nil {
		log.CtxError(ctx, "保存备忘失败: %v", err)
		return nil, consts.ErrSaveMemo
	}

	return &show.Response{Code: 0, Msg: "备忘已保存"}, nil
}
