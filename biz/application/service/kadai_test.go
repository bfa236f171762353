package service

import (
	"testing"
	"time"

	"kadai-note/biz/infrastructure/consts"

	"github.com/stretchr/testify/assert"
)

func TestUrgencyBucket(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		due  time.Time
		want string
	}{
		{"昨天截止", now.AddDate(0, 0, -1), consts.UrgencyCritical},
		// 不足一天的超时向上取整为 0，仍按一天以内处理
		{"一小时前截止", now.Add(-time.Hour), consts.UrgencyHigh},
		{"此刻截止", now, consts.UrgencyHigh},
		{"今晚截止", now.Add(10 * time.Hour), consts.UrgencyHigh},
		{"明天截止", now.Add(24 * time.Hour), consts.UrgencyHigh},
		{"后天截止", now.AddDate(0, 0, 2), consts.UrgencyMedium},
		{"三天后截止", now.Add(72 * time.Hour), consts.UrgencyMedium},
		{"十天后截止", now.AddDate(0, 0, 10), consts.UrgencyNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UrgencyBucket(tt.due, now))
		})
	}
}

func TestUrgencyColorsCoverAllBuckets(t *testing.T) {
	for _, u := range []string{
		consts.UrgencyCritical,
		consts.UrgencyHigh,
		consts.UrgencyMedium,
		consts.UrgencyNormal,
	} {
		assert.NotEmpty(t, consts.UrgencyColors[u])
	}
}
