package show

// GetScheduleReq 拉取时间割画面所需的全部数据
type GetScheduleReq struct{}

type GetScheduleResp struct {
	// Days 固定的曜日列
	Days []string `json:"days"`
	// Hours 时间标签，保存过的以保存的键集合为准，否则用默认值
	Hours []string `json:"hours"`
	// Subjects 可选科目名，按日语排序规则排好，渲染时的一次性快照
	Subjects []string `json:"subjects"`
	// Grid 曜日 -> 时间 -> 科目名
	Grid map[string]map[string]string `json:"grid"`
	// Summary 各科目出席汇总
	Summary []*SubjectSummary `json:"summary"`
}

type SaveScheduleReq struct {
	// Grid 曜日 -> 时间 -> 科目名（空串为未选）
	Grid map[string]map[string]string `json:"grid" form:"grid"`
}

type MarkAttendanceReq struct {
	Day     string `json:"day" form:"day"`
	Time    string `json:"time" form:"time"`
	Status  string `json:"status" form:"status"` // present / absent
	Subject string `json:"subject" form:"subject"`
}

type ResetSubjectReq struct {
	Subject string `json:"subject" form:"subject"`
}

type GetAttendanceReq struct{}

// SubjectSummary 单个科目的出席汇总，Rate 为百分数，保留一位小数
type SubjectSummary struct {
	Subject string  `json:"subject"`
	Present int64   `json:"present"`
	Absent  int64   `json:"absent"`
	Rate    float64 `json:"rate"`
}

type GetAttendanceResp struct {
	Summary []*SubjectSummary `json:"summary"`
}
