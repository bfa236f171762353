package service

import (
	"context"
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"

	"kadai-note/biz/adaptor"
	"kadai-note/biz/application/dto/note/show"
	"kadai-note/biz/infrastructure/consts"
	"kadai-note/biz/infrastructure/repository/class"
	"kadai-note/biz/infrastructure/repository/schedule"
	"kadai-note/biz/infrastructure/util"
	"kadai-note/biz/infrastructure/util/log"

	"github.com/google/wire"
)

type IScheduleService interface {
	GetSchedule(ctx context.Context) (*show.GetScheduleResp, error)
	SaveSchedule(ctx context.Context, req *show.SaveScheduleReq) (*show.Response, error)
	MarkAttendance(ctx context.Context, req *show.MarkAttendanceReq) (*show.GetAttendanceResp, error)
	ResetSubject(ctx context.Context, req *show.ResetSubjectReq) (*show.GetAttendanceResp, error)
	GetAttendance(ctx context.Context) (*show.GetAttendanceResp, error)
}

// ScheduleService 时间割与出欠。
// 每个用户只有一份聚合文档，打刻用 $inc 在服务端自增，
// 同一用户内再用互斥锁串行化，跨设备双击也不会丢计数
type ScheduleService struct {
	ScheduleMapper *schedule.MongoMapper
	ClassMapper    *class.MongoMapper
	userLocks      sync.Map // uid -> *sync.Mutex
}

var ScheduleServiceSet = wire.NewSet(
	wire.Struct(new(ScheduleService), "ScheduleMapper", "ClassMapper"),
	wire.Bind(new(IScheduleService), new(*ScheduleService)),
)

func (s *ScheduleService) lockUser(uid string) *sync.Mutex {
	mu, _ := s.userLocks.LoadOrStore(uid, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// GetSchedule 返回渲染时间割画面需要的全部数据：
// 曜日列、时间行、可选科目、格子内容和出欠汇总
func (s *ScheduleService) GetSchedule(ctx context.Context) (*show.GetScheduleResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	resp := &show.GetScheduleResp{
		Days:     consts.Weekdays,
		Hours:    consts.DefaultHours,
		Subjects: []string{},
		Grid:     map[string]map[string]string{},
		Summary:  []*show.SubjectSummary{},
	}

	classes, err := s.ClassMapper.FindByUID(ctx, meta.GetUserId())
	if err != nil {
		log.CtxError(ctx, "读取科目列表失败: %v", err)
		return nil, consts.ErrGetSchedule
	}
	for _, c := range classes {
		resp.Subjects = append(resp.Subjects, c.Name)
	}
	util.SortJa(resp.Subjects)

	ws, err := s.ScheduleMapper.FindOne(ctx, meta.GetUserId())
	if errors.Is(err, consts.ErrNotFound) {
		return resp, nil
	}
	if err != nil {
		log.CtxError(ctx, "读取时间割失败: %v", err)
		return nil, consts.ErrGetSchedule
	}

	if len(ws.Schedule) > 0 {
		resp.Grid = ws.Schedule
		resp.Hours = DeriveHours(ws.Schedule)
	}
	resp.Summary = Summarize(ws.Attendance)
	return resp, nil
}

// SaveSchedule 整张表覆盖保存，出欠计数不动
func (s *ScheduleService) SaveSchedule(ctx context.Context, req *show.SaveScheduleReq) (*show.Response, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if req.Grid == nil {
		return nil, consts.ErrInvalidParams
	}

	mu := s.lockUser(meta.GetUserId())
	mu.Lock()
	defer mu.Unlock()

	if err := s.ScheduleMapper.UpsertSchedule(ctx, meta.GetUserId(), req.Grid); err != nil {
		log.CtxError(ctx, "保存时间割失败: %v", err)
		return nil, consts.ErrSaveSchedule
	}
	return &show.Response{Code: 0, Msg: "时间割已保存"}, nil
}

// MarkAttendance 给某一格的科目打一次出席或欠席，返回最新汇总。
// 没填科目的格子不能打刻
func (s *ScheduleService) MarkAttendance(ctx context.Context, req *show.MarkAttendanceReq) (*show.GetAttendanceResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if strings.TrimSpace(req.Subject) == "" {
		return nil, consts.ErrEmptySubject
	}
	if req.Status != consts.StatusPresent && req.Status != consts.StatusAbsent {
		return nil, consts.ErrInvalidStatus
	}

	mu := s.lockUser(meta.GetUserId())
	mu.Lock()
	defer mu.Unlock()

	if err := s.ScheduleMapper.IncAttendance(ctx, meta.GetUserId(), req.Subject, req.Status); err != nil {
		log.CtxError(ctx, "出欠打刻失败: %v", err)
		return nil, consts.ErrMarkClass
	}
	return s.attendance(ctx, meta.GetUserId())
}

// ResetSubject 把单个科目的出欠计数清零。
// 科目从未打刻过时什么都不写，直接返回当前汇总
func (s *ScheduleService) ResetSubject(ctx context.Context, req *show.ResetSubjectReq) (*show.GetAttendanceResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if strings.TrimSpace(req.Subject) == "" {
		return nil, consts.ErrEmptySubject
	}

	mu := s.lockUser(meta.GetUserId())
	mu.Lock()
	defer mu.Unlock()

	ws, err := s.ScheduleMapper.FindOne(ctx, meta.GetUserId())
	if errors.Is(err, consts.ErrNotFound) {
		return &show.GetAttendanceResp{Summary: []*show.SubjectSummary{}}, nil
	}
	if err != nil {
		log.CtxError(ctx, "读取出欠失败: %v", err)
		return nil, consts.ErrGetSchedule
	}
	if _, ok := ws.Attendance[req.Subject]; ok {
		if err = s.ScheduleMapper.ResetAttendance(ctx, meta.GetUserId(), req.Subject); err != nil {
			log.CtxError(ctx, "清零出欠失败: %v", err)
			return nil, consts.ErrResetSubject
		}
	}
	return s.attendance(ctx, meta.GetUserId())
}

func (s *ScheduleService) GetAttendance(ctx context.Context) (*show.GetAttendanceResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	return s.attendance(ctx, meta.GetUserId())
}

func (s *ScheduleService) attendance(ctx context.Context, uid string) (*show.GetAttendanceResp, error) {
	ws, err := s.ScheduleMapper.FindOne(ctx, uid)
	if errors.Is(err, consts.ErrNotFound) {
		return &show.GetAttendanceResp{Summary: []*show.SubjectSummary{}}, nil
	}
	if err != nil {
		log.CtxError(ctx, "读取出欠失败: %v", err)
		return nil, consts.ErrGetSchedule
	}
	return &show.GetAttendanceResp{Summary: Summarize(ws.Attendance)}, nil
}

// Summarize 把出欠计数折算成百分率汇总，科目按日语排序。
// 一次都没打刻过的科目出席率记 0
func Summarize(attendance map[string]*Tally) []*show.SubjectSummary {
	subjects := make([]string, 0, len(attendance))
	for name := range attendance {
		subjects = append(subjects, name)
	}
	util.SortJa(subjects)

	summary := make([]*show.SubjectSummary, 0, len(subjects))
	for _, name := range subjects {
		t := attendance[name]
		if t == nil {
			t = &Tally{}
		}
		total := t.Present + t.Absent
		var rate float64
		if total > 0 {
			rate = math.Round(float64(t.Present)/float64(total)*1000) / 10
		}
		summary = append(summary, &show.SubjectSummary{
			Subject: name,
			Present: t.Present,
			Absent:  t.Absent,
			Rate:    rate,
		})
	}
	return summary
}

// Tally 与存储层的计数结构保持同形，方便直接传入 Summarize
type Tally = schedule.Tally

// DeriveHours 从保存过的格子里恢复时间行。
// 任何一个曜日出现过的时间都算，按钟点数值排序；
// 一条都没有时退回默认时间
func DeriveHours(grid map[string]map[string]string) []string {
	seen := map[string]bool{}
	for _, row := range grid {
		for hour := range row {
			seen[hour] = true
		}
	}
	if len(seen) == 0 {
		return consts.DefaultHours
	}
	hours := make([]string, 0, len(seen))
	for hour := range seen {
		hours = append(hours, hour)
	}
	sort.Slice(hours, func(i, j int) bool {
		return clockMinutes(hours[i]) < clockMinutes(hours[j])
	})
	return hours
}

// clockMinutes 把 "9:00" 这样的时间标签换算成分钟数用于排序，
// 解析不了的排到最后
func clockMinutes(hour string) int {
	parts := strings.SplitN(hour, ":", 2)
	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return math.MaxInt32
	}
	m := 0
	if len(parts) == 2 {
		m, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
	}
	return h*60 + m
}
