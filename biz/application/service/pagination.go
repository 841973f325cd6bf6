package service

import (
	"campus-lms/biz/application/dto/basic"
	"campus-lms/biz/infrastructure/consts"
)

// parsePagination 解析分页参数，缺省第1页每页10条
func parsePagination(p *basic.PaginationOptions) (page, pageSize int64) {
	page = consts.DefaultPage
	pageSize = consts.DefaultPageSize
	if p != nil {
		if p.Page != nil && *p.Page > 0 {
			page = *p.Page
		}
		if p.Limit != nil && *p.Limit > 0 {
			pageSize = *p.Limit
		}
	}
	return page, pageSize
}

func totalPages(total, pageSize int64) int64 {
	if pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
