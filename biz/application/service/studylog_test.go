package service

import (
	"testing"
	"time"

	"kadai-note/biz/infrastructure/consts"
	"kadai-note/biz/infrastructure/repository/studylog"

	"github.com/stretchr/testify/assert"
)

func TestBucketWeeklyEmpty(t *testing.T) {
	minutes := BucketWeekly(nil)
	assert.Len(t, minutes, len(consts.ChartWeekdays))
	for _, m := range minutes {
		assert.Equal(t, 0.0, m)
	}
}

func TestBucketWeekly(t *testing.T) {
	monday := time.Date(2025, 6, 2, 10, 0, 0, 0, time.Local) // 月曜
	logs := []*studylog.StudyLog{
		{Subject: "数学", Seconds: 1800, Date: monday},
		{Subject: "英語", Seconds: 600, Date: monday},
		{Subject: "数学", Seconds: 90, Date: monday.AddDate(0, 0, 2)},  // 水曜
		{Subject: "物理", Seconds: 3600, Date: monday.AddDate(0, 0, 6)}, // 日曜
	}

	minutes := BucketWeekly(logs)
	assert.Equal(t, 40.0, minutes[0])  // 月：1800+600 秒
	assert.Equal(t, 0.0, minutes[1])   // 火
	assert.Equal(t, 1.5, minutes[2])   // 水：90 秒保留小数
	assert.Equal(t, 60.0, minutes[6])  // 日
}

func TestStartOfDay(t *testing.T) {
	v := time.Date(2025, 6, 2, 23, 59, 58, 123, time.Local)
	got := startOfDay(v)
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, 0, got.Minute())
	assert.Equal(t, v.Day(), got.Day())
}
