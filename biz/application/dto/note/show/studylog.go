package show

import "kadai-note/biz/application/dto/basic"

type ListStudyLogReq struct {
	PaginationOptions *basic.PaginationOptions `json:"paginationOptions,omitempty" form:"paginationOptions"`
}

type StudyLogInfo struct {
	Id        string `json:"id"`
	Subject   string `json:"subject"`
	Seconds   int64  `json:"seconds"`
	Date      int64  `json:"date"`
	CreatedAt int64  `json:"createdAt"`
}

type ListStudyLogResp struct {
	Logs  []*StudyLogInfo `json:"logs"`
	Total int64           `json:"total"`
}

type DeleteStudyLogReq struct {
	Id string `json:"id" form:"id"`
}

type WeeklyChartReq struct{}

// WeeklyChartResp 周一到周日的固定顺序，Minutes 与 Labels 一一对应，可直接画柱状图
type WeeklyChartResp struct {
	Labels  []string  `json:"labels"`
	Minutes []float64 `json:"minutes"`
}
