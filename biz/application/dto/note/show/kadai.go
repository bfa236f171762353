package show

type CreateKadaiReq struct {
	Title string `json:"title" form:"title"`
	Due   int64  `json:"due" form:"due"` // 截止日，Unix秒
}

type ListKadaiReq struct {
	Done bool `json:"done" form:"done" query:"done"`
}

type KadaiInfo struct {
	Id        string `json:"id"`
	Title     string `json:"title"`
	Due       int64  `json:"due"`
	Done      bool   `json:"done"`
	CreatedAt int64  `json:"createdAt"`
	DoneAt    int64  `json:"doneAt,omitempty"`
	// Urgency 由截止日派生的紧急程度，仅用于展示
	Urgency string `json:"urgency,omitempty"`
	Color   string `json:"color,omitempty"`
}

type ListKadaiResp struct {
	Kadais []*KadaiInfo `json:"kadais"`
	Total  int64        `json:"total"`
}

type DoneKadaiReq struct {
	Id string `json:"id" form:"id"`
}

type DeleteKadaiReq struct {
	Id string `json:"id" form:"id"`
}
