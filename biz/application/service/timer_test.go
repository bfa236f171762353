package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// interval 传 0 时秒表不起后台协程，测试里手动 Tick 推进
func tickN(w *Stopwatch, n int) {
	for i := 0; i < n; i++ {
		w.Tick()
	}
}

func TestStopwatchFullCycle(t *testing.T) {
	w := NewStopwatch(0)
	state, seconds := w.Snapshot()
	assert.Equal(t, TimerStateIdle, state)
	assert.Equal(t, int64(0), seconds)

	w.Start()
	tickN(w, 5)

	assert.True(t, w.Pause())
	// 暂停期间不走字
	tickN(w, 3)
	state, seconds = w.Snapshot()
	assert.Equal(t, TimerStatePaused, state)
	assert.Equal(t, int64(5), seconds)

	assert.True(t, w.Resume())
	tickN(w, 2)

	total, ok := w.Stop()
	assert.True(t, ok)
	assert.Equal(t, int64(7), total)

	state, seconds = w.Snapshot()
	assert.Equal(t, TimerStateIdle, state)
	assert.Equal(t, int64(0), seconds)
}

func TestStopwatchZeroDurationStop(t *testing.T) {
	w := NewStopwatch(0)
	w.Start()
	total, ok := w.Stop()
	assert.True(t, ok)
	assert.Equal(t, int64(0), total)
}

func TestStopwatchStopWhenIdle(t *testing.T) {
	w := NewStopwatch(0)
	_, ok := w.Stop()
	assert.False(t, ok)
}

func TestStopwatchInvalidTransitions(t *testing.T) {
	w := NewStopwatch(0)
	assert.False(t, w.Pause())
	assert.False(t, w.Resume())

	w.Start()
	assert.False(t, w.Resume())

	assert.True(t, w.Pause())
	assert.False(t, w.Pause())
}

func TestStopwatchRestartFromZero(t *testing.T) {
	w := NewStopwatch(0)
	w.Start()
	tickN(w, 4)
	total, ok := w.Stop()
	assert.True(t, ok)
	assert.Equal(t, int64(4), total)

	w.Start()
	tickN(w, 2)
	state, seconds := w.Snapshot()
	assert.Equal(t, TimerStateRunning, state)
	assert.Equal(t, int64(2), seconds)
}

func TestStopwatchStartWhileRunningNoReset(t *testing.T) {
	w := NewStopwatch(0)
	w.Start()
	tickN(w, 3)
	// 重复 start 不清零
	w.Start()
	_, seconds := w.Snapshot()
	assert.Equal(t, int64(3), seconds)
}
