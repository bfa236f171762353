package show

// Response 通用响应
type Response struct {
	Code int64  `json:"code"`
	Msg  string `json:"msg"`
}

type SignInReq struct {
	AuthType   string  `json:"authType" form:"authType" vd:"len($)>0"`
	AuthId     string  `json:"authId" form:"authId" vd:"len($)>0"`
	VerifyCode *string `json:"verifyCode,omitempty" form:"verifyCode"`
	Password   *string `json:"password,omitempty" form:"password"`
}

type SignInResp struct {
	Id           string `json:"id"`
	Name         string `json:"name"`
	Avatar       string `json:"avatar,omitempty"`
	AccessToken  string `json:"accessToken"`
	AccessExpire int64  `json:"accessExpire"`
}

type SendVerifyCodeReq struct {
	AuthType string `json:"authType" form:"authType" vd:"len($)>0"`
	AuthId   string `json:"authId" form:"authId" vd:"len($)>0"`
	Type     int64  `json:"type" form:"type"` // 1 登录验证码 2 注册验证码
}

type GetUserInfoReq struct{}

type GetUserInfoResp struct {
	Code    int64        `json:"code"`
	Msg     string       `json:"msg"`
	Payload *UserPayload `json:"payload,omitempty"`
}

type UserPayload struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
	Phone  string `json:"phone,omitempty"`
}

type UpdateUserInfoReq struct {
	Name   *string `json:"name,omitempty" form:"name"`
	Avatar *string `json:"avatar,omitempty" form:"avatar"`
}
