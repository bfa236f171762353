package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortJa(t *testing.T) {
	subjects := []string{"べんきょう", "アート", "数学", "えいご"}
	SortJa(subjects)
	// 假名在前、汉字在后，且不区分平片假名的先后层级
	assert.Equal(t, []string{"アート", "えいご", "べんきょう", "数学"}, subjects)
}

func TestCompareJa(t *testing.T) {
	assert.Negative(t, CompareJa("あ", "ん"))
	assert.Positive(t, CompareJa("ん", "あ"))
	assert.Zero(t, CompareJa("数学", "数学"))
}
