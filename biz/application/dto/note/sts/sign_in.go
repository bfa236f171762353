package sts

// SignInResp 认证中台登录接口的 data 字段
type SignInResp struct {
	UserId  string  `json:"userId" mapstructure:"userId"`
	Name    string  `json:"name" mapstructure:"name"`
	Avatar  string  `json:"avatar" mapstructure:"avatar"`
	Options *string `json:"options" mapstructure:"options"` // 可选参数
}
