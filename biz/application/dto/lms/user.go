package lms

import "campus-lms/biz/application/dto/basic"

// UserInfo 管理端用户视图
type UserInfo struct {
	Id            string `json:"id"`
	Email         string `json:"email"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Role          string `json:"role"`
	Status        string `json:"status"`
	Avatar        string `json:"avatar"`
	LastLoginDate int64  `json:"lastLoginDate"`
	CreateTime    int64  `json:"createTime"`
}

type ListUsersReq struct {
	Search            string                   `query:"search"`
	Role              string                   `query:"role"`
	PaginationOptions *basic.PaginationOptions `json:"paginationOptions,omitempty"`
}

type ListUsersResp struct {
	Users       []*UserInfo `json:"users"`
	Total       int64       `json:"total"`
	TotalPages  int64       `json:"totalPages"`
	CurrentPage int64       `json:"currentPage"`
}

type GetUserReq struct {
	Id string `path:"id"`
}

type GetUserResp struct {
	User *UserInfo `json:"user"`
}

type CreateUserReq struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	Status    string `json:"status"` // 缺省为active
}

type CreateUserResp struct {
	Message string    `json:"message"`
	User    *UserInfo `json:"user"`
}

type UpdateUserReq struct {
	Id        string  `path:"id"`
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Role      *string `json:"role,omitempty"`   // 仅管理员
	Status    *string `json:"status,omitempty"` // 仅管理员
}

type UpdateUserResp struct {
	Message string    `json:"message"`
	User    *UserInfo `json:"user"`
}

type DeleteUserReq struct {
	Id string `path:"id"`
}
