package service

import (
	"testing"

	"campus-lms/biz/application/dto/basic"
	"campus-lms/biz/infrastructure/consts"
	"campus-lms/biz/infrastructure/repository/assignment"
	"campus-lms/biz/infrastructure/repository/user"

	"github.com/stretchr/testify/assert"
)

func newEnrolledStudent(courseIDs ...string) *user.User {
	u := &user.User{
		Role:            consts.RoleStudent,
		Status:          consts.StatusActive,
		EnrolledCourses: []*user.CourseRef{},
	}
	for _, id := range courseIDs {
		u.EnrolledCourses = append(u.EnrolledCourses, &user.CourseRef{CourseID: id})
	}
	return u
}

func TestBuildListFilter(t *testing.T) {
	student := &basic.UserMeta{UserId: "stu-1", Role: consts.RoleStudent}

	t.Run("学生不指定课程时限定在报名集合内", func(t *testing.T) {
		filter := buildListFilter(student, newEnrolledStudent("c1", "c2"), "")
		assert.Equal(t, []string{"c1", "c2"}, filter.CourseIDs)
		assert.True(t, filter.PublishedOnly)
		assert.Empty(t, filter.InstructorID)
	})

	t.Run("学生指定已报名课程", func(t *testing.T) {
		filter := buildListFilter(student, newEnrolledStudent("c1", "c2"), "c2")
		assert.Equal(t, []string{"c2"}, filter.CourseIDs)
		assert.True(t, filter.PublishedOnly)
	})

	t.Run("学生指定未报名课程时命中空集而非报错", func(t *testing.T) {
		filter := buildListFilter(student, newEnrolledStudent("c1"), "c9")
		assert.NotNil(t, filter.CourseIDs)
		assert.Len(t, filter.CourseIDs, 0)
		assert.True(t, filter.PublishedOnly)
	})

	t.Run("未报名任何课程的学生得到空集", func(t *testing.T) {
		filter := buildListFilter(student, newEnrolledStudent(), "")
		assert.NotNil(t, filter.CourseIDs)
		assert.Len(t, filter.CourseIDs, 0)
	})

	t.Run("讲师限定为本人名下", func(t *testing.T) {
		meta := &basic.UserMeta{UserId: "ins-1", Role: consts.RoleInstructor}
		filter := buildListFilter(meta, &user.User{Role: consts.RoleInstructor}, "c1")
		assert.Equal(t, "ins-1", filter.InstructorID)
		assert.Equal(t, "c1", filter.CourseID)
		assert.Nil(t, filter.CourseIDs)
		assert.False(t, filter.PublishedOnly)
	})

	t.Run("管理员不裁剪", func(t *testing.T) {
		meta := &basic.UserMeta{UserId: "adm-1", Role: consts.RoleAdmin}
		filter := buildListFilter(meta, &user.User{Role: consts.RoleAdmin}, "c1")
		assert.Empty(t, filter.InstructorID)
		assert.Equal(t, "c1", filter.CourseID)
		assert.Nil(t, filter.CourseIDs)
		assert.False(t, filter.PublishedOnly)
	})
}

func TestOwnSubmissions(t *testing.T) {
	subs := []*assignment.Submission{
		{StudentID: "stu-1"},
		{StudentID: "stu-2"},
		{StudentID: "stu-1"},
	}

	kept := ownSubmissions(subs, "stu-1")
	assert.Len(t, kept, 2)
	for _, sub := range kept {
		assert.Equal(t, "stu-1", sub.StudentID)
	}

	assert.Empty(t, ownSubmissions(subs, "stu-9"))
}
