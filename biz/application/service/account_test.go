package service

import (
	"context"
	"testing"

	"campus-lms/biz/application/dto/basic"
	"campus-lms/biz/infrastructure/consts"
	"campus-lms/biz/infrastructure/repository/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserLoader map[string]*user.User

func (f fakeUserLoader) FindOne(_ context.Context, id string) (*user.User, error) {
	u, ok := f[id]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return u, nil
}

func TestActiveUser(t *testing.T) {
	loader := fakeUserLoader{
		"stu-1": {Role: consts.RoleStudent, Status: consts.StatusActive},
		"stu-2": {Role: consts.RoleStudent, Status: consts.StatusInactive},
	}

	t.Run("在册账号放行", func(t *testing.T) {
		u, err := activeUser(context.Background(), loader, &basic.UserMeta{UserId: "stu-1", Role: consts.RoleStudent})
		require.NoError(t, err)
		assert.Equal(t, consts.StatusActive, u.Status)
	})

	t.Run("未携带身份拒绝", func(t *testing.T) {
		_, err := activeUser(context.Background(), loader, &basic.UserMeta{})
		assert.ErrorIs(t, err, consts.ErrNotAuthentication)
	})

	t.Run("账号已删除时未过期令牌同样失效", func(t *testing.T) {
		_, err := activeUser(context.Background(), loader, &basic.UserMeta{UserId: "gone", Role: consts.RoleStudent})
		assert.ErrorIs(t, err, consts.ErrNotAuthentication)
	})

	t.Run("停用账号凭未过期令牌一律拒绝", func(t *testing.T) {
		_, err := activeUser(context.Background(), loader, &basic.UserMeta{UserId: "stu-2", Role: consts.RoleStudent})
		assert.ErrorIs(t, err, consts.ErrInactiveAccount)
	})
}
