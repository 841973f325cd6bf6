package assignment

import (
	"testing"
	"time"

	"campus-lms/biz/infrastructure/consts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAssignment(maxAttempts int64, due time.Time) *Assignment {
	return &Assignment{
		Title:       "期中项目",
		CourseID:    "course-1",
		MaxPoints:   100,
		DueDate:     due,
		Submissions: []*Submission{},
		Settings: Settings{
			AllowLateSubmissions: true,
			MaxAttempts:          maxAttempts,
		},
		IsPublished: true,
	}
}

func TestPlaceSubmission(t *testing.T) {
	due := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	content := Content{Text: "my answer"}

	t.Run("未发布时拒绝提交", func(t *testing.T) {
		a := newTestAssignment(1, due)
		a.IsPublished = false
		_, err := a.PlaceSubmission("stu-1", content, due.Add(-time.Hour))
		assert.ErrorIs(t, err, consts.ErrAssignmentNotPublished)
	})

	t.Run("按期提交", func(t *testing.T) {
		a := newTestAssignment(1, due)
		sub, err := a.PlaceSubmission("stu-1", content, due.Add(-time.Hour))
		require.NoError(t, err)
		assert.False(t, sub.IsLate)
		assert.Equal(t, consts.SubmissionSubmitted, sub.Status)
		assert.False(t, sub.ID.IsZero())
		assert.Len(t, a.Submissions, 1)
	})

	t.Run("迟交打标", func(t *testing.T) {
		a := newTestAssignment(1, due)
		sub, err := a.PlaceSubmission("stu-1", content, due.Add(time.Minute))
		require.NoError(t, err)
		assert.True(t, sub.IsLate)
	})

	t.Run("单次提交限制下重复提交被拒", func(t *testing.T) {
		a := newTestAssignment(1, due)
		_, err := a.PlaceSubmission("stu-1", content, due.Add(-time.Hour))
		require.NoError(t, err)
		_, err = a.PlaceSubmission("stu-1", content, due.Add(-time.Minute))
		assert.ErrorIs(t, err, consts.ErrAlreadySubmitted)
		assert.Len(t, a.Submissions, 1)
	})

	t.Run("允许多次提交时替换旧提交", func(t *testing.T) {
		a := newTestAssignment(3, due)
		first, err := a.PlaceSubmission("stu-1", Content{Text: "v1"}, due.Add(-2*time.Hour))
		require.NoError(t, err)
		second, err := a.PlaceSubmission("stu-1", Content{Text: "v2"}, due.Add(-time.Hour))
		require.NoError(t, err)

		assert.Len(t, a.Submissions, 1)
		assert.Equal(t, "v2", a.Submissions[0].Content.Text)
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("替换不影响其他学生的提交", func(t *testing.T) {
		a := newTestAssignment(3, due)
		_, err := a.PlaceSubmission("stu-1", Content{Text: "a"}, due.Add(-time.Hour))
		require.NoError(t, err)
		_, err = a.PlaceSubmission("stu-2", Content{Text: "b"}, due.Add(-time.Hour))
		require.NoError(t, err)
		_, err = a.PlaceSubmission("stu-1", Content{Text: "a2"}, due.Add(-time.Minute))
		require.NoError(t, err)

		assert.Len(t, a.Submissions, 2)
		assert.NotNil(t, a.SubmissionOf("stu-2"))
		assert.Equal(t, "a2", a.SubmissionOf("stu-1").Content.Text)
	})
}

func TestGradeSubmission(t *testing.T) {
	due := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now := due.Add(24 * time.Hour)

	setup := func() (*Assignment, *Submission) {
		a := newTestAssignment(1, due)
		sub, err := a.PlaceSubmission("stu-1", Content{Text: "x"}, due.Add(-time.Hour))
		require.NoError(t, err)
		return a, sub
	}

	t.Run("正常批改", func(t *testing.T) {
		a, sub := setup()
		graded, err := a.GradeSubmission(sub.ID.Hex(), "inst-1", 85, "well done", now)
		require.NoError(t, err)
		assert.Equal(t, 85.0, graded.Grade.Points)
		assert.Equal(t, "inst-1", graded.Grade.GradedBy)
		assert.Equal(t, consts.SubmissionGraded, graded.Status)
	})

	t.Run("提交不存在", func(t *testing.T) {
		a, _ := setup()
		_, err := a.GradeSubmission("ffffffffffffffffffffffff", "inst-1", 85, "", now)
		assert.ErrorIs(t, err, consts.ErrSubmissionNotFound)
	})

	t.Run("分数越界", func(t *testing.T) {
		a, sub := setup()
		_, err := a.GradeSubmission(sub.ID.Hex(), "inst-1", -1, "", now)
		assert.ErrorIs(t, err, consts.ErrNegativePoints)
		_, err = a.GradeSubmission(sub.ID.Hex(), "inst-1", 101, "", now)
		assert.ErrorIs(t, err, consts.ErrPointsOutOfRange)
		assert.Nil(t, sub.Grade)
		assert.Equal(t, consts.SubmissionSubmitted, sub.Status)
	})

	t.Run("边界分数允许", func(t *testing.T) {
		a, sub := setup()
		_, err := a.GradeSubmission(sub.ID.Hex(), "inst-1", 0, "", now)
		assert.NoError(t, err)
		_, err = a.GradeSubmission(sub.ID.Hex(), "inst-1", 100, "", now)
		assert.NoError(t, err)
	})

	t.Run("重复批改直接覆盖", func(t *testing.T) {
		a, sub := setup()
		_, err := a.GradeSubmission(sub.ID.Hex(), "inst-1", 60, "first pass", now)
		require.NoError(t, err)
		graded, err := a.GradeSubmission(sub.ID.Hex(), "inst-2", 90, "regraded", now.Add(time.Hour))
		require.NoError(t, err)

		assert.Equal(t, 90.0, graded.Grade.Points)
		assert.Equal(t, "inst-2", graded.Grade.GradedBy)
		assert.Equal(t, "regraded", graded.Grade.Feedback)
	})
}

func TestTogglePublish(t *testing.T) {
	due := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	a := newTestAssignment(1, due)
	a.IsPublished = false

	first := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	a.TogglePublish(first)
	assert.True(t, a.IsPublished)
	assert.Equal(t, first, a.PublishDate)

	a.TogglePublish(first.Add(time.Hour))
	assert.False(t, a.IsPublished)

	// 再次发布不改写首次发布时间
	a.TogglePublish(first.Add(2 * time.Hour))
	assert.True(t, a.IsPublished)
	assert.Equal(t, first, a.PublishDate)
}

func TestRefreshLateMarks(t *testing.T) {
	due := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	a := newTestAssignment(2, due)
	onTime, err := a.PlaceSubmission("stu-1", Content{}, due.Add(-time.Hour))
	require.NoError(t, err)
	late, err := a.PlaceSubmission("stu-2", Content{}, due.Add(time.Hour))
	require.NoError(t, err)

	// 截止时间延后，原迟交应洗白
	a.DueDate = due.Add(2 * time.Hour)
	a.RefreshLateMarks()
	assert.False(t, onTime.IsLate)
	assert.False(t, late.IsLate)

	// 截止时间提前，全部变为迟交
	a.DueDate = due.Add(-2 * time.Hour)
	a.RefreshLateMarks()
	assert.True(t, onTime.IsLate)
	assert.True(t, late.IsLate)
}

func TestDerivedStats(t *testing.T) {
	due := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	a := newTestAssignment(1, due)
	assert.Equal(t, int64(0), a.SubmissionCount())
	assert.Equal(t, 0.0, a.AverageGrade())

	s1, err := a.PlaceSubmission("stu-1", Content{}, due.Add(-time.Hour))
	require.NoError(t, err)
	s2, err := a.PlaceSubmission("stu-2", Content{}, due.Add(-time.Hour))
	require.NoError(t, err)
	_, err = a.PlaceSubmission("stu-3", Content{}, due.Add(-time.Hour))
	require.NoError(t, err)

	_, err = a.GradeSubmission(s1.ID.Hex(), "inst-1", 80, "", due)
	require.NoError(t, err)
	_, err = a.GradeSubmission(s2.ID.Hex(), "inst-1", 85.5, "", due)
	require.NoError(t, err)

	assert.Equal(t, int64(3), a.SubmissionCount())
	assert.Equal(t, int64(2), a.GradedCount())
	assert.Equal(t, 82.75, a.AverageGrade())
}

func TestIsOverdue(t *testing.T) {
	due := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	a := newTestAssignment(1, due)
	assert.False(t, a.IsOverdue(due))
	assert.True(t, a.IsOverdue(due.Add(time.Second)))
}
