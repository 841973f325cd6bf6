package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseRefs(t *testing.T) {
	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	u := &User{FirstName: "Alice", LastName: "Chen"}

	assert.False(t, u.IsEnrolled("c1"))
	assert.Empty(t, u.EnrolledCourseIDs())

	u.AddCourseRef("c1", now)
	u.AddCourseRef("c2", now)
	assert.True(t, u.IsEnrolled("c1"))
	assert.Equal(t, []string{"c1", "c2"}, u.EnrolledCourseIDs())

	// 重复添加不产生重复记录
	u.AddCourseRef("c1", now.Add(time.Hour))
	assert.Len(t, u.EnrolledCourses, 2)
	require.NotNil(t, u.EnrolledCourses[0])
	assert.Equal(t, now, u.EnrolledCourses[0].EnrollmentDate)

	u.RemoveCourseRef("c1")
	assert.False(t, u.IsEnrolled("c1"))
	assert.Equal(t, []string{"c2"}, u.EnrolledCourseIDs())

	// 移除不存在的课程是无操作
	u.RemoveCourseRef("c9")
	assert.Len(t, u.EnrolledCourses, 1)
}

func TestFullName(t *testing.T) {
	u := &User{FirstName: "Alice", LastName: "Chen"}
	assert.Equal(t, "Alice Chen", u.FullName())
}
