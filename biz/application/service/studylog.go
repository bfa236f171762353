package service

import (
	"context"
	"time"

	"kadai-note/biz/adaptor"
	"kadai-note/biz/application/dto/note/show"
	"kadai-note/biz/infrastructure/consts"
	"kadai-note/biz/infrastructure/repository/studylog"
	"kadai-note/biz/infrastructure/util/log"
	"kadai-note/biz/infrastructure/util/page"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"github.com/samber/lo"
)

type IStudyLogService interface {
	ListStudyLog(ctx context.Context, req *show.ListStudyLogReq) (*show.ListStudyLogResp, error)
	DeleteStudyLog(ctx context.Context, req *show.DeleteStudyLogReq) (*show.Response, error)
	WeeklyChart(ctx context.Context) (*show.WeeklyChartResp, error)
}

type StudyLogService struct {
	StudyLogMapper *studylog.MongoMapper
}

var StudyLogServiceSet = wire.NewSet(
	wire.Struct(new(StudyLogService), "*"),
	wire.Bind(new(IStudyLogService), new(*StudyLogService)),
)

// ListStudyLog 学习记录按发生时刻倒序分页
func (s *StudyLogService) ListStudyLog(ctx context.Context, req *show.ListStudyLogReq) (*show.ListStudyLogResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	skip, limit := page.ParsePageOpt(req.PaginationOptions)
	logs, total, err := s.StudyLogMapper.FindByUID(ctx, meta.GetUserId(), skip, limit)
	if err != nil {
		log.CtxError(ctx, "读取学习记录失败: %v", err)
		return nil, consts.ErrGetStudyLog
	}

	infos := lo.Map(logs, func(l *studylog.StudyLog, _ int) *show.StudyLogInfo {
		info := &show.StudyLogInfo{}
		_ = copier.Copy(info, l)
		info.Id = l.ID.Hex()
		info.Date = l.Date.Unix()
		info.CreatedAt = l.CreatedAt.Unix()
		return info
	})

	return &show.ListStudyLogResp{
		Logs:  infos,
		Total: total,
	}, nil
}

func (s *StudyLogService) DeleteStudyLog(ctx context.Context, req *show.DeleteStudyLogReq) (*show.Response, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if err := s.StudyLogMapper.Delete(ctx, meta.GetUserId(), req.Id); err != nil {
		log.CtxError(ctx, "删除学习记录失败: %v", err)
		return nil, consts.ErrDeleteStudyLog
	}
	return &show.Response{Code: 0, Msg: "已删除"}, nil
}

// WeeklyChart 最近七天（含今天）的学习时长柱状图数据，
// 窗口从六天前的零点开始
func (s *StudyLogService) WeeklyChart(ctx context.Context) (*show.WeeklyChartResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	now := time.Now()
	since := startOfDay(now.AddDate(0, 0, -6))
	logs, err := s.StudyLogMapper.FindSince(ctx, meta.GetUserId(), since)
	if err != nil {
		log.CtxError(ctx, "读取学习记录失败: %v", err)
		return nil, consts.ErrGetStudyLog
	}

	return &show.WeeklyChartResp{
		Labels:  consts.ChartWeekdays,
		Minutes: BucketWeekly(logs),
	}, nil
}

// BucketWeekly 把学习记录按曜日归桶，月曜在头、日曜在尾，
// 单位为分钟，保留小数
func BucketWeekly(logs []*studylog.StudyLog) []float64 {
	minutes := make([]float64, len(consts.ChartWeekdays))
	for _, l := range logs {
		idx := (int(l.Date.Weekday()) + 6) % 7
		minutes[idx] += float64(l.Seconds) / 60
	}
	return minutes
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
