package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CourseRef 用户侧的报名记录，与课程侧的报名列表互为镜像
type CourseRef struct {
	CourseID       string    `bson:"course_id" json:"courseId"`
	EnrollmentDate time.Time `bson:"enrollment_date" json:"enrollmentDate"`
	Progress       int64     `bson:"progress" json:"progress"`
}

type User struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email           string             `bson:"email" json:"email"`
	Password        string             `bson:"password" json:"-"` // bcrypt哈希
	FirstName       string             `bson:"first_name" json:"firstName"`
	LastName        string             `bson:"last_name" json:"lastName"`
	Role            string             `bson:"role" json:"role"` // admin/instructor/student/content_creator
	Status          string             `bson:"status" json:"status"`
	Avatar          string             `bson:"avatar" json:"avatar"`
	EnrolledCourses []*CourseRef       `bson:"enrolled_courses" json:"enrolledCourses"`
	LastLoginDate   time.Time          `bson:"last_login_date,omitempty" json:"lastLoginDate"`
	CreateTime      time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime      time.Time          `bson:"update_time" json:"updateTime"`
}

// IsEnrolled 是否已报名指定课程
func (u *User) IsEnrolled(courseID string) bool {
	for _, ref := range u.EnrolledCourses {
		if ref.CourseID == courseID {
			return true
		}
	}
	return false
}

// EnrolledCourseIDs 返回已报名的课程id列表
func (u *User) EnrolledCourseIDs() []string {
	ids := make([]string, 0, len(u.EnrolledCourses))
	for _, ref := range u.EnrolledCourses {
		ids = append(ids, ref.CourseID)
	}
	return ids
}

// AddCourseRef 记录报名，重复报名忽略
func (u *User) AddCourseRef(courseID string, now time.Time) {
	if u.IsEnrolled(courseID) {
		return
	}
	u.EnrolledCourses = append(u.EnrolledCourses, &CourseRef{
		CourseID:       courseID,
		EnrollmentDate: now,
		Progress:       0,
	})
}

// RemoveCourseRef 移除报名记录
func (u *User) RemoveCourseRef(courseID string) {
	refs := make([]*CourseRef, 0, len(u.EnrolledCourses))
	for _, ref := range u.EnrolledCourses {
		if ref.CourseID != courseID {
			refs = append(refs, ref)
		}
	}
	u.EnrolledCourses = refs
}

// FullName 姓名拼接，用于展示
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
