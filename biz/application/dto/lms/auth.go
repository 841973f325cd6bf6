package lms

import "campus-lms/biz/infrastructure/repository/user"

// AuthUser 登录态返回的用户摘要
type AuthUser struct {
	Id        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	Avatar    string `json:"avatar"`
}

type RegisterReq struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"` // 缺省为student
}

type RegisterResp struct {
	Message      string    `json:"message"`
	Token        string    `json:"token"`
	AccessExpire int64     `json:"accessExpire"`
	User         *AuthUser `json:"user"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResp struct {
	Message      string    `json:"message"`
	Token        string    `json:"token"`
	AccessExpire int64     `json:"accessExpire"`
	User         *AuthUser `json:"user"`
}

type GetProfileReq struct{}

type GetProfileResp struct {
	*user.User
}

type UpdateProfileReq struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Email     *string `json:"email,omitempty"`
	Avatar    *string `json:"avatar,omitempty"`
}

type UpdateProfileResp struct {
	Message string     `json:"message"`
	User    *user.User `json:"user"`
}

type ChangePasswordReq struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type CheckEmailReq struct {
	Email string `json:"email"`
}

type CheckNameReq struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type CheckExistsResp struct {
	Exists bool `json:"exists"`
}

type VerifyTokenReq struct{}

type VerifyTokenResp struct {
	Valid bool      `json:"valid"`
	User  *AuthUser `json:"user"`
}
