package course

import (
	"testing"
	"time"

	"campus-lms/biz/infrastructure/consts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCourse(maxStudents int64) *Course {
	return &Course{
		Title:            "Go 程序设计",
		InstructorID:     "inst-1",
		Category:         "Programming",
		Level:            "Beginner",
		MaxStudents:      maxStudents,
		IsPublished:      true,
		EnrolledStudents: []*Enrollment{},
		Ratings:          []*Rating{},
	}
}

func TestEnroll(t *testing.T) {
	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	t.Run("未发布课程不可报名", func(t *testing.T) {
		c := newTestCourse(10)
		c.IsPublished = false
		assert.ErrorIs(t, c.Enroll("stu-1", now), consts.ErrCourseNotPublished)
	})

	t.Run("正常报名", func(t *testing.T) {
		c := newTestCourse(10)
		require.NoError(t, c.Enroll("stu-1", now))
		assert.Equal(t, int64(1), c.EnrollmentCount())
		e := c.EnrollmentOf("stu-1")
		require.NotNil(t, e)
		assert.Equal(t, int64(0), e.Progress)
		assert.Equal(t, now, e.EnrollmentDate)
	})

	t.Run("重复报名被拒", func(t *testing.T) {
		c := newTestCourse(10)
		require.NoError(t, c.Enroll("stu-1", now))
		assert.ErrorIs(t, c.Enroll("stu-1", now), consts.ErrAlreadyEnrolled)
		assert.Equal(t, int64(1), c.EnrollmentCount())
	})

	t.Run("满员拒绝", func(t *testing.T) {
		c := newTestCourse(2)
		require.NoError(t, c.Enroll("stu-1", now))
		require.NoError(t, c.Enroll("stu-2", now))
		assert.True(t, c.IsFull())
		assert.ErrorIs(t, c.Enroll("stu-3", now), consts.ErrCourseFull)
	})

	t.Run("退课后可重新报名", func(t *testing.T) {
		c := newTestCourse(1)
		require.NoError(t, c.Enroll("stu-1", now))
		c.Unenroll("stu-1")
		assert.False(t, c.IsEnrolled("stu-1"))
		assert.NoError(t, c.Enroll("stu-2", now))
	})
}

func TestUnenrollMissingStudent(t *testing.T) {
	c := newTestCourse(10)
	require.NoError(t, c.Enroll("stu-1", time.Now()))

	// 不存在的学生退课是无操作
	c.Unenroll("stu-2")
	assert.Equal(t, int64(1), c.EnrollmentCount())
}

func TestTogglePublishKeepsFirstDate(t *testing.T) {
	c := newTestCourse(10)
	c.IsPublished = false

	first := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c.TogglePublish(first)
	assert.True(t, c.IsPublished)
	assert.Equal(t, first, c.PublishedDate)

	c.TogglePublish(first.Add(time.Hour))
	c.TogglePublish(first.Add(2 * time.Hour))
	assert.True(t, c.IsPublished)
	assert.Equal(t, first, c.PublishedDate)
}

func TestAddRating(t *testing.T) {
	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	t.Run("评分范围校验", func(t *testing.T) {
		c := newTestCourse(10)
		assert.ErrorIs(t, c.AddRating("stu-1", 0, "", now), consts.ErrInvalidRating)
		assert.ErrorIs(t, c.AddRating("stu-1", 6, "", now), consts.ErrInvalidRating)
		assert.Empty(t, c.Ratings)
	})

	t.Run("均分保留一位小数", func(t *testing.T) {
		c := newTestCourse(10)
		require.NoError(t, c.AddRating("stu-1", 5, "great", now))
		require.NoError(t, c.AddRating("stu-2", 4, "", now))
		require.NoError(t, c.AddRating("stu-3", 4, "", now))
		assert.Equal(t, 4.3, c.AverageRating)
	})

	t.Run("同一学生重复评分以最新为准", func(t *testing.T) {
		c := newTestCourse(10)
		require.NoError(t, c.AddRating("stu-1", 2, "meh", now))
		require.NoError(t, c.AddRating("stu-1", 5, "much better", now.Add(time.Hour)))

		assert.Len(t, c.Ratings, 1)
		assert.Equal(t, int64(5), c.Ratings[0].Rating)
		assert.Equal(t, "much better", c.Ratings[0].Review)
		assert.Equal(t, 5.0, c.AverageRating)
	})
}
