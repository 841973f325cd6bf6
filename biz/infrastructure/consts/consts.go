package consts

var PageSize int64 = 10

// 角色
const (
	RoleAdmin          = "admin"
	RoleInstructor     = "instructor"
	RoleStudent        = "student"
	RoleContentCreator = "content_creator"
)

// 账号状态
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// 提交状态
const (
	SubmissionSubmitted = "submitted"
	SubmissionGraded    = "graded"
	SubmissionReturned  = "returned" // 保留的枚举值，流程中暂无入口
)

// 作业类型
var AssignmentTypes = []string{"quiz", "project", "essay", "presentation", "other"}

// 课程分类与难度
var (
	CourseCategories = []string{"Programming", "Design", "Business", "Marketing", "Data Science", "Other"}
	CourseLevels     = []string{"Beginner", "Intermediate", "Advanced"}
)

// 数据库相关
const (
	ID           = "_id"
	Email        = "email"
	Role         = "role"
	InstructorID = "instructor_id"
	CourseID     = "course_id"
	IsPublished  = "is_published"
	DueDate      = "due_date"
	CreateTime   = "create_time"
	In           = "$in"
	Or           = "$or"
	Regex        = "$regex"
	Options      = "$options"
	Gte          = "$gte"
	Lte          = "$lte"
)

// HasRole 判断角色是否在允许的角色列表中
func HasRole(role string, allowed ...string) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}

// IsOwnerOrAdmin 资源归属校验：本人或管理员
// 全部授权逻辑都由 HasRole 与 IsOwnerOrAdmin 两个谓词组合而成
func IsOwnerOrAdmin(actorID, ownerID, role string) bool {
	return actorID == ownerID || role == RoleAdmin
}

// 默认值
const (
	DefaultPage     int64 = 1
	DefaultPageSize int64 = 10
	ChatSessionTTL        = 3600 * 24 // 会话缓存一天
)
