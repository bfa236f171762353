package basic

// UserMeta 从JWT里解出的用户会话信息
type UserMeta struct {
	UserId          string `json:"userId" mapstructure:"userId"`
	AppId           int64  `json:"appId" mapstructure:"appId"`
	DeviceId        string `json:"deviceId" mapstructure:"deviceId"`
	SessionUserId   string `json:"sessionUserId" mapstructure:"sessionUserId"`
	SessionAppId    int64  `json:"sessionAppId" mapstructure:"sessionAppId"`
	SessionDeviceId string `json:"sessionDeviceId" mapstructure:"sessionDeviceId"`
}

func (m *UserMeta) GetUserId() string {
	if m == nil {
		return ""
	}
	if m.SessionUserId != "" {
		return m.SessionUserId
	}
	return m.UserId
}

// PaginationOptions 分页参数
type PaginationOptions struct {
	Page  *int64 `json:"page,omitempty" form:"page" query:"page"`
	Limit *int64 `json:"limit,omitempty" form:"limit" query:"limit"`
}
