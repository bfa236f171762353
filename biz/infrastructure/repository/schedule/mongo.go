package schedule

import (
	"context"
	"errors"
	"fmt"
	"kadai-note/biz/infrastructure/config"
	"kadai-note/biz/infrastructure/consts"
	"kadai-note/biz/infrastructure/util/log"
	"strings"
	"time"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	prefixScheduleCacheKey = "cache:weeklySchedule"
	ScheduleCollectionName = "weeklySchedule"
)

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewScheduleMongoMapper collection: %s", ScheduleCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, ScheduleCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

// subjectPathSafe 判断科目名能否直接拼进点分更新路径：
// 带点号会被 Mongo 拆成嵌套字段，$ 开头会被当成操作符
func subjectPathSafe(subject string) bool {
	return !strings.Contains(subject, ".") && !strings.HasPrefix(subject, "$")
}

// seedSchedule 新用户的聚合文档，两棵子树都从空映射起步
func seedSchedule(oid primitive.ObjectID, now time.Time) *WeeklySchedule {
	return &WeeklySchedule{
		ID:         oid,
		Schedule:   map[string]map[string]string{},
		Attendance: map[string]*Tally{},
		UpdateTime: now,
	}
}

// scheduleSetUpdate 只合并 schedule 子树的更新文档，attendance 不碰
func scheduleSetUpdate(grid map[string]map[string]string, now time.Time) bson.M {
	return bson.M{
		"$set": bson.M{
			"schedule":    grid,
			"update_time": now,
		},
	}
}

// attendanceIncUpdate 构造单科目出欠自增的更新文档。
// 科目名没法作为路径的一段时返回 false，调用方退回整树合并
func attendanceIncUpdate(subject, status string, now time.Time) (bson.M, bool) {
	if !subjectPathSafe(subject) {
		return nil, false
	}
	return bson.M{
		"$inc": bson.M{
			fmt.Sprintf("attendance.%s.%s", subject, status): 1,
		},
		"$set": bson.M{
			"update_time": now,
		},
	}, true
}

// attendanceResetUpdate 构造单科目计数清零的更新文档，科目行保留
func attendanceResetUpdate(subject string, now time.Time) (bson.M, bool) {
	if !subjectPathSafe(subject) {
		return nil, false
	}
	return bson.M{
		"$set": bson.M{
			fmt.Sprintf("attendance.%s", subject): &Tally{},
			"update_time":                         now,
		},
	}, true
}

// bumpTally 在内存里给一个科目的计数加一，不存在的计数从零起步。
// 键保持原样，带点号的科目名也不会被拆开
func bumpTally(attendance map[string]*Tally, subject, status string) map[string]*Tally {
	if attendance == nil {
		attendance = map[string]*Tally{}
	}
	t := attendance[subject]
	if t == nil {
		t = &Tally{}
		attendance[subject] = t
	}
	if status == consts.StatusAbsent {
		t.Absent++
	} else {
		t.Present++
	}
	return attendance
}

func (m *MongoMapper) FindOne(ctx context.Context, uid string) (*WeeklySchedule, error) {
	oid, err := primitive.ObjectIDFromHex(uid)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var ws WeeklySchedule
	err = m.conn.FindOneNoCache(ctx, &ws, bson.M{
		consts.ID: oid,
	})
	switch {
	case err == nil:
		return &ws, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

// EnsureExists 保证用户的聚合文档存在，供打刻前调用。
// 并发下的重复插入按重复键错误忽略
func (m *MongoMapper) EnsureExists(ctx context.Context, uid string) error {
	_, err := m.FindOne(ctx, uid)
	if err == nil {
		return nil
	}
	if !errors.Is(err, consts.ErrNotFound) {
		return err
	}
	oid, err := primitive.ObjectIDFromHex(uid)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.InsertOneNoCache(ctx, seedSchedule(oid, time.Now()))
	if mongo.IsDuplicateKeyError(err) {
		return nil
	}
	return err
}

// UpsertSchedule 只合并 schedule 子树，attendance 保持原样
func (m *MongoMapper) UpsertSchedule(ctx context.Context, uid string, grid map[string]map[string]string) error {
	if err := m.EnsureExists(ctx, uid); err != nil {
		return err
	}
	oid, err := primitive.ObjectIDFromHex(uid)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.UpdateByIDNoCache(ctx, oid, scheduleSetUpdate(grid, time.Now()))
	return err
}

// IncAttendance 对单个科目的出欠计数做服务端原子自增，
// 不存在的计数从零开始，其余字段不受影响。
// 科目名带点号或以 $ 开头时没法走点分路径，退回整棵 attendance
// 子树的读改写；同一用户的打刻在服务层已串行化，不会互相覆盖
func (m *MongoMapper) IncAttendance(ctx context.Context, uid string, subject string, status string) error {
	if err := m.EnsureExists(ctx, uid); err != nil {
		return err
	}
	oid, err := primitive.ObjectIDFromHex(uid)
	if err != nil {
		return consts.ErrInvalidObjectId
	}

	if update, ok := attendanceIncUpdate(subject, status, time.Now()); ok {
		_, err = m.conn.UpdateByIDNoCache(ctx, oid, update)
		return err
	}

	ws, err := m.FindOne(ctx, uid)
	if err != nil {
		return err
	}
	_, err = m.conn.UpdateByIDNoCache(ctx, oid, bson.M{
		"$set": bson.M{
			"attendance":  bumpTally(ws.Attendance, subject, status),
			"update_time": time.Now(),
		},
	})
	return err
}

// ResetAttendance 把单个科目的计数清零，科目行保留
func (m *MongoMapper) ResetAttendance(ctx context.Context, uid string, subject string) error {
	oid, err := primitive.ObjectIDFromHex(uid)
	if err != nil {
		return consts.ErrInvalidObjectId
	}

	if update, ok := attendanceResetUpdate(subject, time.Now()); ok {
		_, err = m.conn.UpdateByIDNoCache(ctx, oid, update)
		return err
	}

	ws, err := m.FindOne(ctx, uid)
	if err != nil {
		return err
	}
	if ws.Attendance == nil {
		ws.Attendance = map[string]*Tally{}
	}
	ws.Attendance[subject] = &Tally{}
	_, err = m.conn.UpdateByIDNoCache(ctx, oid, bson.M{
		"$set": bson.M{
			"attendance":  ws.Attendance,
			"update_time": time.Now(),
		},
	})
	return err
}
