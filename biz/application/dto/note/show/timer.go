package show

type TimerStartReq struct{}

type TimerPauseReq struct{}

type TimerResumeReq struct{}

type TimerStopReq struct {
	// Subject 学习科目，留空时记为占位科目
	Subject string `json:"subject" form:"subject"`
}

type TimerStopResp struct {
	Code    int64  `json:"code"`
	Msg     string `json:"msg"`
	Subject string `json:"subject"`
	Seconds int64  `json:"seconds"`
}

type TimerStatusReq struct{}

type TimerStatusResp struct {
	// State idle / running / paused
	State   string `json:"state"`
	Seconds int64  `json:"seconds"`
}
