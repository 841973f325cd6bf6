package service

import (
	"context"

	"campus-lms/biz/application/dto/basic"
	"campus-lms/biz/infrastructure/consts"
	"campus-lms/biz/infrastructure/repository/user"
)

// userLoader 鉴权复核时按id加载账号
type userLoader interface {
	FindOne(ctx context.Context, id string) (*user.User, error)
}

// activeUser 每个请求重新加载账号，令牌只作身份声明
// 账号不存在或已停用时一律拒绝，避免停用账号靠未过期令牌续命
func activeUser(ctx context.Context, loader userLoader, userMeta *basic.UserMeta) (*user.User, error) {
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	u, err := loader.FindOne(ctx, userMeta.GetUserId())
	if err != nil {
		return nil, consts.ErrNotAuthentication
	}
	if u.Status != consts.StatusActive {
		return nil, consts.ErrInactiveAccount
	}
	return u, nil
}
