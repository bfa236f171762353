package util

import (
	"encoding/json"
	"kadai-note/biz/application/dto/note/show"
)

// JSONF 把任意对象序列化成字符串，仅用于日志
func JSONF(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}

// Succeed 构造通用成功响应
func Succeed(msg string) (*show.Response, error) {
	return &show.Response{
		Code: 0,
		Msg:  msg,
	}, nil
}
