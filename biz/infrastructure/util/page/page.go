package page

import "kadai-note/biz/application/dto/basic"

// ParsePageOpt 解析分页参数
func ParsePageOpt(p *basic.PaginationOptions) (skip int64, limit int64) {
	// 设置分页参数
	skip = int64(0)
	limit = int64(20) // 默认限制为20条数据

	if p != nil && p.Page != nil && p.Limit != nil {
		skip = (*p.Page - 1) * *p.Limit
		limit = *p.Limit
	}
	return skip, limit
}
