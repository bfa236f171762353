package schedule

import (
	"testing"
	"time"

	"kadai-note/biz/infrastructure/consts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSubjectPathSafe(t *testing.T) {
	assert.True(t, subjectPathSafe("数学"))
	assert.True(t, subjectPathSafe("プログラミングI"))
	assert.True(t, subjectPathSafe("C#入門"))
	// 点号会被拆成嵌套字段
	assert.False(t, subjectPathSafe("英語4.0"))
	// $ 开头会被当成操作符
	assert.False(t, subjectPathSafe("$where"))
}

func TestScheduleSetUpdateTouchesOnlySchedule(t *testing.T) {
	now := time.Now()
	grid := map[string]map[string]string{"月曜": {"9:00": "数学"}}

	update := scheduleSetUpdate(grid, now)
	// 只有 $set，没有别的操作符
	require.Len(t, update, 1)
	set, ok := update["$set"].(bson.M)
	require.True(t, ok)
	// 只碰 schedule 和 update_time，attendance 保持原样
	assert.Len(t, set, 2)
	assert.Equal(t, grid, set["schedule"])
	assert.Equal(t, now, set["update_time"])
	_, hasAttendance := set["attendance"]
	assert.False(t, hasAttendance)
}

func TestAttendanceIncUpdate(t *testing.T) {
	now := time.Now()

	update, ok := attendanceIncUpdate("数学", consts.StatusPresent, now)
	require.True(t, ok)
	inc, isM := update["$inc"].(bson.M)
	require.True(t, isM)
	// 自增只落在这一个计数上
	assert.Len(t, inc, 1)
	assert.Equal(t, 1, inc["attendance.数学.present"])
	// $set 只更新时间戳，schedule 子树不碰
	set := update["$set"].(bson.M)
	assert.Len(t, set, 1)
	assert.Equal(t, now, set["update_time"])

	update, ok = attendanceIncUpdate("数学", consts.StatusAbsent, now)
	require.True(t, ok)
	assert.Equal(t, 1, update["$inc"].(bson.M)["attendance.数学.absent"])
}

func TestAttendanceIncUpdateRejectsUnsafeNames(t *testing.T) {
	// 带点号的科目名拼进点分路径会让计数落到拆开的嵌套键下，必须走整树合并
	_, ok := attendanceIncUpdate("英語4.0", consts.StatusPresent, time.Now())
	assert.False(t, ok)
	_, ok = attendanceResetUpdate("英語4.0", time.Now())
	assert.False(t, ok)
}

func TestAttendanceResetUpdate(t *testing.T) {
	now := time.Now()

	update, ok := attendanceResetUpdate("数学", now)
	require.True(t, ok)
	require.Len(t, update, 1)
	set := update["$set"].(bson.M)
	assert.Len(t, set, 2)
	// 科目行保留，计数归零
	assert.Equal(t, &Tally{}, set["attendance.数学"])
	assert.Equal(t, now, set["update_time"])
	_, hasSchedule := set["schedule"]
	assert.False(t, hasSchedule)
}

func TestBumpTally(t *testing.T) {
	// 空聚合上第一次打刻从零起步
	att := bumpTally(nil, "数学", consts.StatusPresent)
	require.NotNil(t, att["数学"])
	assert.Equal(t, int64(1), att["数学"].Present)
	assert.Equal(t, int64(0), att["数学"].Absent)

	att = bumpTally(att, "数学", consts.StatusAbsent)
	assert.Equal(t, int64(1), att["数学"].Present)
	assert.Equal(t, int64(1), att["数学"].Absent)

	// 带点号的科目名保持字面键，不被拆开
	att = bumpTally(att, "英語4.0", consts.StatusPresent)
	require.NotNil(t, att["英語4.0"])
	assert.Equal(t, int64(1), att["英語4.0"].Present)
	_, split := att["英語4"]
	assert.False(t, split)
}

func TestSeedSchedule(t *testing.T) {
	oid := primitive.NewObjectID()
	ws := seedSchedule(oid, time.Now())

	assert.Equal(t, oid, ws.ID)
	// 两棵子树都是空映射而不是 nil，后续合并不用判空
	require.NotNil(t, ws.Schedule)
	require.NotNil(t, ws.Attendance)
	assert.Empty(t, ws.Schedule)
	assert.Empty(t, ws.Attendance)
}
