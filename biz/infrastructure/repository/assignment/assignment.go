package assignment

import (
	"math"
	"time"

	"campus-lms/biz/infrastructure/consts"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Attachment struct {
	Filename string `bson:"filename" json:"filename"`
	URL      string `bson:"url" json:"url"`
	FileType string `bson:"file_type" json:"fileType"`
}

type Content struct {
	Text        string        `bson:"text" json:"text"`
	Attachments []*Attachment `bson:"attachments" json:"attachments"`
}

type Grade struct {
	Points     float64   `bson:"points" json:"points"`
	Feedback   string    `bson:"feedback" json:"feedback"`
	GradedBy   string    `bson:"graded_by" json:"gradedBy"`
	GradedDate time.Time `bson:"graded_date" json:"gradedDate"`
}

// Submission 作业内嵌的提交记录，顺序即提交顺序
type Submission struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID      string             `bson:"student_id" json:"studentId"`
	SubmissionDate time.Time          `bson:"submission_date" json:"submissionDate"`
	Content        Content            `bson:"content" json:"content"`
	Grade          *Grade             `bson:"grade,omitempty" json:"grade,omitempty"`
	IsLate         bool               `bson:"is_late" json:"isLate"`
	Status         string             `bson:"status" json:"status"` // submitted/graded/returned
}

type Settings struct {
	AllowLateSubmissions bool   `bson:"allow_late_submissions" json:"allowLateSubmissions"`
	LatePenalty          int64  `bson:"late_penalty" json:"latePenalty"` // 0-100
	MaxAttempts          int64  `bson:"max_attempts" json:"maxAttempts"` // >=1
	TimeLimit            *int64 `bson:"time_limit,omitempty" json:"timeLimit,omitempty"`
}

type Assignment struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Instructions string             `bson:"instructions" json:"instructions"`
	CourseID     string             `bson:"course_id" json:"courseId"`
	InstructorID string             `bson:"instructor_id" json:"instructorId"`
	Type         string             `bson:"type" json:"type"` // quiz/project/essay/presentation/other
	MaxPoints    int64              `bson:"max_points" json:"maxPoints"`
	DueDate      time.Time          `bson:"due_date" json:"dueDate"`
	Attachments  []*Attachment      `bson:"attachments" json:"attachments"`
	Submissions  []*Submission      `bson:"submissions" json:"submissions"`
	Settings     Settings           `bson:"settings" json:"settings"`
	IsPublished  bool               `bson:"is_published" json:"isPublished"`
	PublishDate  time.Time          `bson:"publish_date,omitempty" json:"publishDate"`
	CreateTime   time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime   time.Time          `bson:"update_time" json:"updateTime"`
}

func (a *Assignment) SubmissionOf(studentID string) *Submission {
	for _, s := range a.Submissions {
		if s.StudentID == studentID {
			return s
		}
	}
	return nil
}

func (a *Assignment) SubmissionByID(submissionID string) *Submission {
	for _, s := range a.Submissions {
		if s.ID.Hex() == submissionID {
			return s
		}
	}
	return nil
}

// PlaceSubmission 学生提交
// maxAttempts=1 时重复提交直接拒绝；maxAttempts>1 时替换旧提交而不保留历史，
// 次数上限本身不做约束（沿用既有行为）
func (a *Assignment) PlaceSubmission(studentID string, content Content, now time.Time) (*Submission, error) {
	if !a.IsPublished {
		return nil, consts.ErrAssignmentNotPublished
	}
	if existing := a.SubmissionOf(studentID); existing != nil {
		if a.Settings.MaxAttempts == 1 {
			return nil, consts.ErrAlreadySubmitted
		}
		a.removeSubmissionOf(studentID)
	}
	sub := &Submission{
		ID:             primitive.NewObjectID(),
		StudentID:      studentID,
		SubmissionDate: now,
		Content:        content,
		IsLate:         now.After(a.DueDate),
		Status:         consts.SubmissionSubmitted,
	}
	a.Submissions = append(a.Submissions, sub)
	return sub, nil
}

func (a *Assignment) removeSubmissionOf(studentID string) {
	subs := make([]*Submission, 0, len(a.Submissions))
	for _, s := range a.Submissions {
		if s.StudentID != studentID {
			subs = append(subs, s)
		}
	}
	a.Submissions = subs
}

// GradeSubmission 批改：覆盖旧成绩，状态置为已批改
func (a *Assignment) GradeSubmission(submissionID, graderID string, points float64, feedback string, now time.Time) (*Submission, error) {
	sub := a.SubmissionByID(submissionID)
	if sub == nil {
		return nil, consts.ErrSubmissionNotFound
	}
	if points < 0 {
		return nil, consts.ErrNegativePoints
	}
	if points > float64(a.MaxPoints) {
		return nil, consts.ErrPointsOutOfRange
	}
	sub.Grade = &Grade{
		Points:     points,
		Feedback:   feedback,
		GradedBy:   graderID,
		GradedDate: now,
	}
	sub.Status = consts.SubmissionGraded
	return sub, nil
}

// TogglePublish 发布开关，首次发布时记录发布时间
func (a *Assignment) TogglePublish(now time.Time) {
	a.IsPublished = !a.IsPublished
	if a.IsPublished && a.PublishDate.IsZero() {
		a.PublishDate = now
	}
}

// RefreshLateMarks 每次保存时对全部提交重算迟交标记
func (a *Assignment) RefreshLateMarks() {
	for _, s := range a.Submissions {
		s.IsLate = s.SubmissionDate.After(a.DueDate)
	}
}

func (a *Assignment) SubmissionCount() int64 {
	return int64(len(a.Submissions))
}

func (a *Assignment) GradedCount() int64 {
	var n int64
	for _, s := range a.Submissions {
		if s.Status == consts.SubmissionGraded {
			n++
		}
	}
	return n
}

// AverageGrade 已批改提交的平均分，保留两位小数
func (a *Assignment) AverageGrade() float64 {
	var sum float64
	var n int64
	for _, s := range a.Submissions {
		if s.Grade != nil {
			sum += s.Grade.Points
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return math.Round(sum/float64(n)*100) / 100
}

func (a *Assignment) IsOverdue(now time.Time) bool {
	return now.After(a.DueDate)
}
