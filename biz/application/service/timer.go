package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"kadai-note/biz/adaptor"
	"kadai-note/biz/application/dto/note/show"
	"kadai-note/biz/infrastructure/consts"
	"kadai-note/biz/infrastructure/repository/studylog"
	"kadai-note/biz/infrastructure/util/log"

	"github.com/google/wire"
)

const (
	TimerStateIdle    = "idle"
	TimerStateRunning = "running"
	TimerStatePaused  = "paused"
)

type ITimerService interface {
	Start(ctx context.Context) (*show.TimerStatusResp, error)
	Pause(ctx context.Context) (*show.TimerStatusResp, error)
	Resume(ctx context.Context) (*show.TimerStatusResp, error)
	Stop(ctx context.Context, req *show.TimerStopReq) (*show.TimerStopResp, error)
	Status(ctx context.Context) (*show.TimerStatusResp, error)
}

// TimerService 学习计时。计时状态放在内存里，按用户各一只秒表；
// 只有停止时才落一条学习记录，进程重启等于计时作废
type TimerService struct {
	StudyLogMapper *studylog.MongoMapper

	mu       sync.Mutex
	watches  map[string]*Stopwatch
	interval time.Duration
}

func NewTimerService(studyLogMapper *studylog.MongoMapper) *TimerService {
	return &TimerService{
		StudyLogMapper: studyLogMapper,
		watches:        map[string]*Stopwatch{},
		interval:       time.Second,
	}
}

var TimerServiceSet = wire.NewSet(
	NewTimerService,
	wire.Bind(new(ITimerService), new(*TimerService)),
)

func (s *TimerService) watch(uid string) *Stopwatch {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.watches[uid]
	if !ok {
		w = NewStopwatch(s.interval)
		s.watches[uid] = w
	}
	return w
}

func (s *TimerService) Start(ctx context.Context) (*show.TimerStatusResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	w := s.watch(meta.GetUserId())
	w.Start()
	state, seconds := w.Snapshot()
	return &show.TimerStatusResp{State: state, Seconds: seconds}, nil
}

func (s *TimerService) Pause(ctx context.Context) (*show.TimerStatusResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	w := s.watch(meta.GetUserId())
	if !w.Pause() {
		return nil, consts.ErrTimerNotRunning
	}
	state, seconds := w.Snapshot()
	return &show.TimerStatusResp{State: state, Seconds: seconds}, nil
}

func (s *TimerService) Resume(ctx context.Context) (*show.TimerStatusResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	w := s.watch(meta.GetUserId())
	if !w.Resume() {
		return nil, consts.ErrTimerNotRunning
	}
	state, seconds := w.Snapshot()
	return &show.TimerStatusResp{State: state, Seconds: seconds}, nil
}

// Stop 结束计时并落一条学习记录。科目留空记为占位科目，
// 零秒的会话也照常记录
func (s *TimerService) Stop(ctx context.Context, req *show.TimerStopReq) (*show.TimerStopResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	w := s.watch(meta.GetUserId())
	seconds, ok := w.Stop()
	if !ok {
		return nil, consts.ErrTimerNotRunning
	}

	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		subject = consts.DefaultSubject
	}
	err := s.StudyLogMapper.Insert(ctx, &studylog.StudyLog{
		UID:     meta.GetUserId(),
		Subject: subject,
		Seconds: seconds,
		Date:    time.Now(),
	})
	if err != nil {
		log.CtxError(ctx, "保存学习记录失败: %v", err)
		return nil, consts.ErrSaveStudyLog
	}

	return &show.TimerStopResp{
		Code:    0,
		Msg:     "学习记录已保存",
		Subject: subject,
		Seconds: seconds,
	}, nil
}

func (s *TimerService) Status(ctx context.Context) (*show.TimerStatusResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	state, seconds := s.watch(meta.GetUserId()).Snapshot()
	return &show.TimerStatusResp{State: state, Seconds: seconds}, nil
}

// Stopwatch 秒表。计数按整秒跳动，暂停期间不走字；
// interval 为 0 时不起后台协程，由调用方手动 Tick
type Stopwatch struct {
	mu       sync.Mutex
	state    string
	seconds  int64
	interval time.Duration
	stopCh   chan struct{}
}

func NewStopwatch(interval time.Duration) *Stopwatch {
	return &Stopwatch{
		state:    TimerStateIdle,
		interval: interval,
	}
}

// Start 从零开始计时。已经在走或暂停中时不重置
func (w *Stopwatch) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != TimerStateIdle {
		return
	}
	w.state = TimerStateRunning
	w.seconds = 0
	if w.interval > 0 {
		w.stopCh = make(chan struct{})
		go w.run(w.stopCh)
	}
}

func (w *Stopwatch) run(stopCh chan struct{}) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			w.Tick()
		case <-stopCh:
			return
		}
	}
}

// Tick 推进一秒，只在运行态生效
func (w *Stopwatch) Tick() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == TimerStateRunning {
		w.seconds++
	}
}

func (w *Stopwatch) Pause() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != TimerStateRunning {
		return false
	}
	w.state = TimerStatePaused
	return true
}

func (w *Stopwatch) Resume() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != TimerStatePaused {
		return false
	}
	w.state = TimerStateRunning
	return true
}

// Stop 结束计时并回到待机，返回累计秒数。
// 待机状态下停止返回 false
func (w *Stopwatch) Stop() (int64, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == TimerStateIdle {
		return 0, false
	}
	if w.stopCh != nil {
		close(w.stopCh)
		w.stopCh = nil
	}
	seconds := w.seconds
	w.state = TimerStateIdle
	w.seconds = 0
	return seconds, true
}

func (w *Stopwatch) Snapshot() (string, int64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state, w.seconds
}
