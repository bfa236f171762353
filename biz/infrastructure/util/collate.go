package util

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// 授业名、科目名统一按日语排序规则排序，忽略大小写，
// 对应旧版前端的 localeCompare(..., "ja", { sensitivity: "base" })
var jaCollator = collate.New(language.Japanese, collate.IgnoreCase)

// SortJa 原地按日语排序规则排序字符串切片
func SortJa(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		return jaCollator.CompareString(names[i], names[j]) < 0
	})
}

// CompareJa 按日语排序规则比较两个字符串
func CompareJa(a, b string) int {
	return jaCollator.CompareString(a, b)
}
