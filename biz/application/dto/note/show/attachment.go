package show

type ListAttachmentsReq struct {
	ClassId string `json:"classId" form:"classId" query:"classId"`
}

// AttachmentInfo 一个附件的临时访问地址，过期后需要重新 list
type AttachmentInfo struct {
	Index int    `json:"index"`
	Url   string `json:"url"`
	Token string `json:"token"`
}

type ListAttachmentsResp struct {
	Attachments []*AttachmentInfo `json:"attachments"`
	Total       int64             `json:"total"`
}

type DeleteAttachmentReq struct {
	ClassId string `json:"classId" form:"classId"`
	Index   int    `json:"index" form:"index"`
}

// ReleaseAttachmentReq 客户端不再展示某个附件时主动吊销其令牌
type ReleaseAttachmentReq struct {
	Token string `json:"token" form:"token"`
}
