package service

import (
	"context"
	"errors"

	"campus-lms/biz/adaptor"
	"campus-lms/biz/application/dto/lms"
	"campus-lms/biz/infrastructure/consts"
	"campus-lms/biz/infrastructure/repository/user"
	"campus-lms/biz/infrastructure/util"
	"campus-lms/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"golang.org/x/crypto/bcrypt"
)

type IUserService interface {
	ListUsers(ctx context.Context, req *lms.ListUsersReq) (*lms.ListUsersResp, error)
	GetUser(ctx context.Context, req *lms.GetUserReq) (*lms.GetUserResp, error)
	CreateUser(ctx context.Context, req *lms.CreateUserReq) (*lms.CreateUserResp, error)
	UpdateUser(ctx context.Context, req *lms.UpdateUserReq) (*lms.UpdateUserResp, error)
	DeleteUser(ctx context.Context, req *lms.DeleteUserReq) (*lms.Response, error)
}

type UserService struct {
	UserMapper *user.MongoMapper
}

var UserServiceSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),
)

// ListUsers 管理端用户列表
func (s *UserService) ListUsers(ctx context.Context, req *lms.ListUsersReq) (*lms.ListUsersResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if _, err := activeUser(ctx, s.UserMapper, userMeta); err != nil {
		return nil, err
	}
	if !consts.HasRole(userMeta.GetRole(), consts.RoleAdmin) {
		return nil, consts.ErrForbidden
	}

	page, pageSize := parsePagination(req.PaginationOptions)
	users, total, err := s.UserMapper.FindMany(ctx, req.Search, req.Role, page, pageSize)
	if err != nil {
		log.Error("获取用户列表失败: %v", err)
		return nil, consts.ErrUpdate
	}

	infos := make([]*lms.UserInfo, 0, len(users))
	for _, u := range users {
		infos = append(infos, userInfo(u))
	}
	return &lms.ListUsersResp{
		Users:       infos,
		Total:       total,
		TotalPages:  totalPages(total, pageSize),
		CurrentPage: page,
	}, nil
}

// GetUser 查看用户，仅本人或管理员
func (s *UserService) GetUser(ctx context.Context, req *lms.GetUserReq) (*lms.GetUserResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if _, err := activeUser(ctx, s.UserMapper, userMeta); err != nil {
		return nil, err
	}
	if !consts.IsOwnerOrAdmin(userMeta.GetUserId(), req.Id, userMeta.GetRole()) {
		return nil, consts.ErrForbidden
	}

	u, err := s.UserMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &lms.GetUserResp{User: userInfo(u)}, nil
}

// CreateUser 管理员创建用户
func (s *UserService) CreateUser(ctx context.Context, req *lms.CreateUserReq) (*lms.CreateUserResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if _, err := activeUser(ctx, s.UserMapper, userMeta); err != nil {
		return nil, err
	}
	if !consts.HasRole(userMeta.GetRole(), consts.RoleAdmin) {
		return nil, consts.ErrForbidden
	}

	email := util.NormalizeEmail(req.Email)
	if !util.ValidateEmail(email) || req.FirstName == "" || req.LastName == "" {
		return nil, consts.ErrInvalidParams
	}
	if !consts.HasRole(req.Role, consts.RoleAdmin, consts.RoleInstructor, consts.RoleStudent, consts.RoleContentCreator) {
		return nil, consts.ErrInvalidRole
	}
	if _, err := s.UserMapper.FindByEmail(ctx, email); err == nil {
		return nil, consts.ErrEmailTaken
	} else if !errors.Is(err, consts.ErrNotFound) {
		return nil, consts.ErrSignUp
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("密码加密失败: %v", err)
		return nil, consts.ErrSignUp
	}

	status := req.Status
	if status == "" {
		status = consts.StatusActive
	}
	u := &user.User{
		Email:           email,
		Password:        string(hash),
		FirstName:       util.TrimName(req.FirstName),
		LastName:        util.TrimName(req.LastName),
		Role:            req.Role,
		Status:          status,
		EnrolledCourses: []*user.CourseRef{},
	}
	if err := s.UserMapper.Insert(ctx, u); err != nil {
		log.Error("创建用户失败: %v", err)
		return nil, consts.ErrSignUp
	}

	return &lms.CreateUserResp{
		Message: "User created successfully",
		User:    userInfo(u),
	}, nil
}

// UpdateUser 修改用户
// 非管理员只能改自己的姓名与邮箱；角色与状态仅管理员可改
func (s *UserService) UpdateUser(ctx context.Context, req *lms.UpdateUserReq) (*lms.UpdateUserResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if _, err := activeUser(ctx, s.UserMapper, userMeta); err != nil {
		return nil, err
	}
	isAdmin := consts.HasRole(userMeta.GetRole(), consts.RoleAdmin)
	if !consts.IsOwnerOrAdmin(userMeta.GetUserId(), req.Id, userMeta.GetRole()) {
		return nil, consts.ErrForbidden
	}

	u, err := s.UserMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	if req.FirstName != nil {
		u.FirstName = util.TrimName(*req.FirstName)
	}
	if req.LastName != nil {
		u.LastName = util.TrimName(*req.LastName)
	}
	if req.Email != nil {
		email := util.NormalizeEmail(*req.Email)
		if !util.ValidateEmail(email) {
			return nil, consts.ErrInvalidParams
		}
		if email != u.Email {
			if _, err := s.UserMapper.FindByEmail(ctx, email); err == nil {
				return nil, consts.ErrEmailTaken
			}
			u.Email = email
		}
	}
	if req.Role != nil {
		if !isAdmin {
			return nil, consts.ErrForbidden
		}
		if !consts.HasRole(*req.Role, consts.RoleAdmin, consts.RoleInstructor, consts.RoleStudent, consts.RoleContentCreator) {
			return nil, consts.ErrInvalidRole
		}
		u.Role = *req.Role
	}
	if req.Status != nil {
		if !isAdmin {
			return nil, consts.ErrForbidden
		}
		if *req.Status != consts.StatusActive && *req.Status != consts.StatusInactive {
			return nil, consts.ErrInvalidParams
		}
		u.Status = *req.Status
	}

	if err := s.UserMapper.Update(ctx, u); err != nil {
		log.Error("更新用户失败: %v", err)
		return nil, consts.ErrUpdate
	}
	return &lms.UpdateUserResp{
		Message: "User updated successfully",
		User:    userInfo(u),
	}, nil
}

// DeleteUser 管理员删除用户，不允许删除自己
func (s *UserService) DeleteUser(ctx context.Context, req *lms.DeleteUserReq) (*lms.Response, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if _, err := activeUser(ctx, s.UserMapper, userMeta); err != nil {
		return nil, err
	}
	if !consts.HasRole(userMeta.GetRole(), consts.RoleAdmin) {
		return nil, consts.ErrForbidden
	}
	if req.Id == userMeta.GetUserId() {
		return nil, consts.ErrDeleteSelf
	}

	if _, err := s.UserMapper.FindOne(ctx, req.Id); err != nil {
		return nil, consts.ErrNotFound
	}
	if err := s.UserMapper.Delete(ctx, req.Id); err != nil {
		log.Error("删除用户失败: %v", err)
		return nil, consts.ErrUpdate
	}
	return &lms.Response{Message: "User deleted successfully"}, nil
}

func userInfo(u *user.User) *lms.UserInfo {
	info := new(lms.UserInfo)
	_ = copier.Copy(info, u)
	info.Id = u.ID.Hex()
	info.CreateTime = u.CreateTime.Unix()
	if !u.LastLoginDate.IsZero() {
		info.LastLoginDate = u.LastLoginDate.Unix()
	}
	return info
}
