package consts

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Errno struct {
	err  error
	code codes.Code
}

// GRPCStatus 实现 GRPCStatus 方法
func (en *Errno) GRPCStatus() *status.Status {
	return status.New(en.code, en.err.Error())
}

// 实现 Error 方法
func (en *Errno) Error() string {
	return en.err.Error()
}

func (en *Errno) Code() codes.Code {
	return en.code
}

// NewErrno 创建自定义错误
func NewErrno(code codes.Code, err error) *Errno {
	return &Errno{
		err:  err,
		code: code,
	}
}

// 通用错误
var (
	ErrForbidden         = NewErrno(codes.PermissionDenied, errors.New("access denied"))
	ErrNotAuthentication = NewErrno(codes.Unauthenticated, errors.New("not authentication"))
	ErrNotFound          = NewErrno(codes.NotFound, errors.New("not found"))
	ErrInvalidObjectId   = NewErrno(codes.InvalidArgument, errors.New("无效的id"))
	ErrInvalidParams     = NewErrno(codes.InvalidArgument, errors.New("参数错误"))
	ErrUpdate            = NewErrno(codes.Internal, errors.New("更新失败"))
)

// 账号相关
var (
	ErrSignUp           = NewErrno(codes.Internal, errors.New("注册失败，请重试"))
	ErrSignIn           = NewErrno(codes.Unauthenticated, errors.New("邮箱或密码错误"))
	ErrEmailTaken       = NewErrno(codes.AlreadyExists, errors.New("该邮箱已注册"))
	ErrNameTaken        = NewErrno(codes.AlreadyExists, errors.New("该姓名组合已被使用"))
	ErrInactiveAccount  = NewErrno(codes.Unauthenticated, errors.New("账号已停用，请联系管理员"))
	ErrWrongPassword    = NewErrno(codes.InvalidArgument, errors.New("当前密码不正确"))
	ErrWeakPassword     = NewErrno(codes.InvalidArgument, errors.New("新密码至少需要6个字符"))
	ErrDeleteSelf       = NewErrno(codes.InvalidArgument, errors.New("不能删除自己的账号"))
	ErrInvalidRole      = NewErrno(codes.InvalidArgument, errors.New("无效的角色"))
)

// 课程相关
var (
	ErrCreateCourse       = NewErrno(codes.Internal, errors.New("创建课程失败"))
	ErrGetCourseList      = NewErrno(codes.Internal, errors.New("获取课程列表失败"))
	ErrCourseNotPublished = NewErrno(codes.InvalidArgument, errors.New("课程尚未发布"))
	ErrCourseFull         = NewErrno(codes.InvalidArgument, errors.New("课程人数已满"))
	ErrAlreadyEnrolled    = NewErrno(codes.AlreadyExists, errors.New("已报名该课程"))
	ErrNotEnrolled        = NewErrno(codes.PermissionDenied, errors.New("请先报名课程"))
	ErrCourseHasStudents  = NewErrno(codes.InvalidArgument, errors.New("课程仍有学生报名，无法删除"))
	ErrInvalidRating      = NewErrno(codes.InvalidArgument, errors.New("评分必须在1到5之间"))
)

// 作业相关
var (
	ErrCreateAssignment       = NewErrno(codes.Internal, errors.New("创建作业失败"))
	ErrGetAssignmentList      = NewErrno(codes.Internal, errors.New("获取作业列表失败"))
	ErrAssignmentNotPublished = NewErrno(codes.InvalidArgument, errors.New("作业尚未发布"))
	ErrAlreadySubmitted       = NewErrno(codes.AlreadyExists, errors.New("作业已提交，不允许多次提交"))
	ErrSubmitAssignment       = NewErrno(codes.Internal, errors.New("提交作业失败"))
	ErrGradeAssignment        = NewErrno(codes.Internal, errors.New("批改作业失败"))
	ErrSubmissionNotFound     = NewErrno(codes.NotFound, errors.New("提交记录不存在"))
	ErrPointsOutOfRange       = NewErrno(codes.InvalidArgument, errors.New("分数不能超过作业满分"))
	ErrNegativePoints         = NewErrno(codes.InvalidArgument, errors.New("分数不能为负数"))
	ErrAssignmentHasSubs      = NewErrno(codes.InvalidArgument, errors.New("作业已有提交记录，请先完成全部批改再删除"))
)

// 会话/外部服务相关
var (
	ErrChatBackend   = NewErrno(codes.Internal, errors.New("AI服务暂不可用"))
	ErrSessionExpire = NewErrno(codes.NotFound, errors.New("会话不存在或已过期"))
	ErrSignURL       = NewErrno(codes.Internal, errors.New("生成上传凭证失败"))
)
