package service

import (
	"testing"

	"kadai-note/biz/infrastructure/consts"
	"kadai-note/biz/infrastructure/repository/schedule"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	summary := Summarize(map[string]*schedule.Tally{
		"数学":  {Present: 3, Absent: 1},
		"英語":  {Present: 0, Absent: 0},
		"経済学": {Present: 1, Absent: 2},
	})

	assert.Len(t, summary, 3)

	byName := map[string]struct {
		present int64
		absent  int64
		rate    float64
	}{}
	for _, s := range summary {
		byName[s.Subject] = struct {
			present int64
			absent  int64
			rate    float64
		}{s.Present, s.Absent, s.Rate}
	}

	assert.Equal(t, int64(3), byName["数学"].present)
	assert.Equal(t, 75.0, byName["数学"].rate)
	// 一次都没打刻过的科目出席率记 0
	assert.Equal(t, 0.0, byName["英語"].rate)
	// 1/3 保留一位小数
	assert.Equal(t, 33.3, byName["経済学"].rate)
}

func TestSummarizeSortedJa(t *testing.T) {
	summary := Summarize(map[string]*schedule.Tally{
		"物理": {Present: 1},
		"英語": {Present: 1},
		"数学": {Present: 1},
	})
	names := make([]string, 0, len(summary))
	for _, s := range summary {
		names = append(names, s.Subject)
	}
	assert.Equal(t, []string{"数学", "物理", "英語"}, names)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Empty(t, Summarize(nil))
	assert.Empty(t, Summarize(map[string]*schedule.Tally{}))
}

func TestDeriveHours(t *testing.T) {
	// 没保存过任何格子时退回默认时间
	assert.Equal(t, consts.DefaultHours, DeriveHours(nil))
	assert.Equal(t, consts.DefaultHours, DeriveHours(map[string]map[string]string{}))

	hours := DeriveHours(map[string]map[string]string{
		"月曜": {"13:00": "数学", "9:00": "英語"},
		"火曜": {"10:30": "物理"},
	})
	assert.Equal(t, []string{"9:00", "10:30", "13:00"}, hours)
}
