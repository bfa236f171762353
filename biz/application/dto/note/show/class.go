package show

type CreateClassReq struct {
	Name string `json:"name" form:"name"`
}

type CreateClassResp struct {
	ClassId string `json:"classId"`
}

type ListClassesReq struct{}

type ClassInfo struct {
	Id        string `json:"id"`
	Name      string `json:"name"`
	HasMemo   bool   `json:"hasMemo"`
	CreatedAt int64  `json:"createdAt"`
}

type ListClassesResp struct {
	Classes []*ClassInfo `json:"classes"`
	Total   int64        `json:"total"`
}

type DeleteClassReq struct {
	Id string `json:"id" form:"id"`
}

type GetMemoReq struct {
	ClassId string `json:"classId" form:"classId" query:"classId"`
}

type GetMemoResp struct {
	ClassId string `json:"classId"`
	Name    string `json:"name"`
	Memo    string `json:"memo"`
}

type SaveMemoReq struct {
	ClassId string `json:"classId" form:"classId"`
	Memo    string `json:"memo" form:"memo"`
}
