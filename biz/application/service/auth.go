package service

import (
	"context"
	"errors"
	"time"

	"campus-lms/biz/adaptor"
	"campus-lms/biz/application/dto/lms"
	"campus-lms/biz/infrastructure/consts"
	"campus-lms/biz/infrastructure/repository/user"
	"campus-lms/biz/infrastructure/util"
	"campus-lms/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc/codes"
)

type IAuthService interface {
	Register(ctx context.Context, req *lms.RegisterReq) (*lms.RegisterResp, error)
	Login(ctx context.Context, req *lms.LoginReq) (*lms.LoginResp, error)
	GetProfile(ctx context.Context, req *lms.GetProfileReq) (*lms.GetProfileResp, error)
	UpdateProfile(ctx context.Context, req *lms.UpdateProfileReq) (*lms.UpdateProfileResp, error)
	ChangePassword(ctx context.Context, req *lms.ChangePasswordReq) (*lms.Response, error)
	VerifyToken(ctx context.Context, req *lms.VerifyTokenReq) (*lms.VerifyTokenResp, error)
	CheckEmail(ctx context.Context, req *lms.CheckEmailReq) (*lms.CheckExistsResp, error)
	CheckName(ctx context.Context, req *lms.CheckNameReq) (*lms.CheckExistsResp, error)
}

type AuthService struct {
	UserMapper *user.MongoMapper
}

var AuthServiceSet = wire.NewSet(
	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),
)

// Register 注册用户
func (s *AuthService) Register(ctx context.Context, req *lms.RegisterReq) (*lms.RegisterResp, error) {
	email := util.NormalizeEmail(req.Email)
	if !util.ValidateEmail(email) {
		return nil, consts.ErrInvalidParams
	}

	// 姓名与口令策略校验
	if errs := util.ValidateName(req.FirstName); len(errs) > 0 {
		return nil, consts.NewErrno(codes.InvalidArgument, errors.New(errs[0]))
	}
	if errs := util.ValidateName(req.LastName); len(errs) > 0 {
		return nil, consts.NewErrno(codes.InvalidArgument, errors.New(errs[0]))
	}
	if errs := util.ValidatePassword(req.Password); len(errs) > 0 {
		return nil, consts.NewErrno(codes.InvalidArgument, errors.New(errs[0]))
	}

	role := req.Role
	if role == "" {
		role = consts.RoleStudent
	}
	if !consts.HasRole(role, consts.RoleAdmin, consts.RoleInstructor, consts.RoleStudent, consts.RoleContentCreator) {
		return nil, consts.ErrInvalidRole
	}

	// 邮箱唯一
	if _, err := s.UserMapper.FindByEmail(ctx, email); err == nil {
		return nil, consts.ErrEmailTaken
	} else if !errors.Is(err, consts.ErrNotFound) {
		return nil, consts.ErrSignUp
	}

	// 姓名组合唯一
	firstName := util.TrimName(req.FirstName)
	lastName := util.TrimName(req.LastName)
	if _, err := s.UserMapper.FindByName(ctx, firstName, lastName); err == nil {
		return nil, consts.ErrNameTaken
	} else if !errors.Is(err, consts.ErrNotFound) {
		return nil, consts.ErrSignUp
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("密码加密失败: %v", err)
		return nil, consts.ErrSignUp
	}

	u := &user.User{
		Email:           email,
		Password:        string(hash),
		FirstName:       firstName,
		LastName:        lastName,
		Role:            role,
		Status:          consts.StatusActive,
		EnrolledCourses: []*user.CourseRef{},
	}
	if err := s.UserMapper.Insert(ctx, u); err != nil {
		log.Error("注册用户失败: %v", err)
		return nil, consts.ErrSignUp
	}

	token, expire, err := adaptor.GenerateJwtToken(u.ID.Hex(), u.Role)
	if err != nil {
		log.Error("签发令牌失败: %v", err)
		return nil, consts.ErrSignUp
	}

	return &lms.RegisterResp{
		Message:      "User registered successfully",
		Token:        token,
		AccessExpire: expire,
		User:         authUser(u),
	}, nil
}

// Login 登录
// 停用账号无论口令是否正确一律拒绝
func (s *AuthService) Login(ctx context.Context, req *lms.LoginReq) (*lms.LoginResp, error) {
	email := util.NormalizeEmail(req.Email)
	if !util.ValidateEmail(email) || req.Password == "" {
		return nil, consts.ErrInvalidParams
	}

	u, err := s.UserMapper.FindByEmail(ctx, email)
	if err != nil {
		return nil, consts.ErrSignIn
	}
	if u.Status != consts.StatusActive {
		return nil, consts.ErrInactiveAccount
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return nil, consts.ErrSignIn
	}

	// 记录最近登录时间
	u.LastLoginDate = time.Now()
	if err := s.UserMapper.Update(ctx, u); err != nil {
		log.Error("更新登录时间失败: %v", err)
	}

	token, expire, err := adaptor.GenerateJwtToken(u.ID.Hex(), u.Role)
	if err != nil {
		log.Error("签发令牌失败: %v", err)
		return nil, consts.ErrSignIn
	}

	return &lms.LoginResp{
		Message:      "Login successful",
		Token:        token,
		AccessExpire: expire,
		User:         authUser(u),
	}, nil
}

// GetProfile 当前用户详情
func (s *AuthService) GetProfile(ctx context.Context, _ *lms.GetProfileReq) (*lms.GetProfileResp, error) {
	u, err := activeUser(ctx, s.UserMapper, adaptor.ExtractUserMeta(ctx))
	if err != nil {
		return nil, err
	}
	return &lms.GetProfileResp{User: u}, nil
}

// UpdateProfile 修改个人资料，角色与口令不在此接口修改
func (s *AuthService) UpdateProfile(ctx context.Context, req *lms.UpdateProfileReq) (*lms.UpdateProfileResp, error) {
	u, err := activeUser(ctx, s.UserMapper, adaptor.ExtractUserMeta(ctx))
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		if errs := util.ValidateName(*req.FirstName); len(errs) > 0 {
			return nil, consts.NewErrno(codes.InvalidArgument, errors.New(errs[0]))
		}
		u.FirstName = util.TrimName(*req.FirstName)
	}
	if req.LastName != nil {
		if errs := util.ValidateName(*req.LastName); len(errs) > 0 {
			return nil, consts.NewErrno(codes.InvalidArgument, errors.New(errs[0]))
		}
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
	if req.Avatar != nil {
		u.Avatar = *req.Avatar
	}

	if err := s.UserMapper.Update(ctx, u); err != nil {
		log.Error("更新资料失败: %v", err)
		return nil, consts.ErrUpdate
	}
	return &lms.UpdateProfileResp{
		Message: "Profile updated successfully",
		User:    u,
	}, nil
}

// ChangePassword 修改口令，需校验当前口令
// 新口令只做最短长度校验，完整口令策略只在注册时生效
func (s *AuthService) ChangePassword(ctx context.Context, req *lms.ChangePasswordReq) (*lms.Response, error) {
	u, err := activeUser(ctx, s.UserMapper, adaptor.ExtractUserMeta(ctx))
	if err != nil {
		return nil, err
	}

	if !util.ValidatePasswordChange(req.NewPassword) {
		return nil, consts.ErrWeakPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.CurrentPassword)); err != nil {
		return nil, consts.ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Error("密码加密失败: %v", err)
		return nil, consts.ErrUpdate
	}
	u.Password = string(hash)
	if err := s.UserMapper.Update(ctx, u); err != nil {
		log.Error("修改口令失败: %v", err)
		return nil, consts.ErrUpdate
	}
	return &lms.Response{Message: "Password changed successfully"}, nil
}

// VerifyToken 校验令牌有效性并回传用户摘要
func (s *AuthService) VerifyToken(ctx context.Context, _ *lms.VerifyTokenReq) (*lms.VerifyTokenResp, error) {
	u, err := activeUser(ctx, s.UserMapper, adaptor.ExtractUserMeta(ctx))
	if err != nil {
		return nil, err
	}

	return &lms.VerifyTokenResp{
		Valid: true,
		User:  authUser(u),
	}, nil
}

// CheckEmail 注册前探测邮箱是否已被占用
func (s *AuthService) CheckEmail(ctx context.Context, req *lms.CheckEmailReq) (*lms.CheckExistsResp, error) {
	email := util.NormalizeEmail(req.Email)
	if email == "" {
		return nil, consts.ErrInvalidParams
	}

	if _, err := s.UserMapper.FindByEmail(ctx, email); err == nil {
		return &lms.CheckExistsResp{Exists: true}, nil
	} else if !errors.Is(err, consts.ErrNotFound) {
		return nil, consts.ErrSignUp
	}
	return &lms.CheckExistsResp{Exists: false}, nil
}

// CheckName 注册前探测姓名组合是否已被占用
func (s *AuthService) CheckName(ctx context.Context, req *lms.CheckNameReq) (*lms.CheckExistsResp, error) {
	firstName := util.TrimName(req.FirstName)
	lastName := util.TrimName(req.LastName)
	if firstName == "" || lastName == "" {
		return nil, consts.ErrInvalidParams
	}

	if _, err := s.UserMapper.FindByName(ctx, firstName, lastName); err == nil {
		return &lms.CheckExistsResp{Exists: true}, nil
	} else if !errors.Is(err, consts.ErrNotFound) {
		return nil, consts.ErrSignUp
	}
	return &lms.CheckExistsResp{Exists: false}, nil
}

func authUser(u *user.User) *lms.AuthUser {
	au := new(lms.AuthUser)
	_ = copier.Copy(au, u)
	au.Id = u.ID.Hex()
	return au
}
