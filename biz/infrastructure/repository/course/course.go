package course

import (
	"math"
	"time"

	"campus-lms/biz/infrastructure/consts"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Resource struct {
	Title string `bson:"title" json:"title"`
	Type  string `bson:"type" json:"type"` // pdf/video/link/document
	URL   string `bson:"url" json:"url"`
}

type Lesson struct {
	Title       string      `bson:"title" json:"title"`
	Description string      `bson:"description" json:"description"`
	VideoURL    string      `bson:"video_url" json:"videoUrl"`
	Duration    int64       `bson:"duration" json:"duration"`
	Resources   []*Resource `bson:"resources" json:"resources"`
}

type SyllabusWeek struct {
	Week        int64     `bson:"week" json:"week"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Lessons     []*Lesson `bson:"lessons" json:"lessons"`
}

type CompletedLesson struct {
	Week          int64     `bson:"week" json:"week"`
	LessonIndex   int64     `bson:"lesson_index" json:"lessonIndex"`
	CompletedDate time.Time `bson:"completed_date" json:"completedDate"`
}

// Enrollment 课程内嵌的报名记录，顺序即报名顺序
type Enrollment struct {
	StudentID        string             `bson:"student_id" json:"studentId"`
	EnrollmentDate   time.Time          `bson:"enrollment_date" json:"enrollmentDate"`
	Progress         int64              `bson:"progress" json:"progress"`
	CompletedLessons []*CompletedLesson `bson:"completed_lessons" json:"completedLessons"`
}

type Rating struct {
	StudentID string    `bson:"student_id" json:"studentId"`
	Rating    int64     `bson:"rating" json:"rating"`
	Review    string    `bson:"review" json:"review"`
	Date      time.Time `bson:"date" json:"date"`
}

type Duration struct {
	Weeks        int64 `bson:"weeks" json:"weeks"`
	HoursPerWeek int64 `bson:"hours_per_week" json:"hoursPerWeek"`
}

type Course struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title              string             `bson:"title" json:"title"`
	Description        string             `bson:"description" json:"description"`
	InstructorID       string             `bson:"instructor_id" json:"instructorId"`
	Category           string             `bson:"category" json:"category"`
	Level              string             `bson:"level" json:"level"` // Beginner/Intermediate/Advanced
	Duration           Duration           `bson:"duration" json:"duration"`
	MaxStudents        int64              `bson:"max_students" json:"maxStudents"`
	Price              float64            `bson:"price" json:"price"`
	Thumbnail          string             `bson:"thumbnail" json:"thumbnail"`
	Syllabus           []*SyllabusWeek    `bson:"syllabus" json:"syllabus"`
	Prerequisites      []string           `bson:"prerequisites" json:"prerequisites"`
	LearningObjectives []string           `bson:"learning_objectives" json:"learningObjectives"`
	Tags               []string           `bson:"tags" json:"tags"`
	IsPublished        bool               `bson:"is_published" json:"isPublished"`
	PublishedDate      time.Time          `bson:"published_date,omitempty" json:"publishedDate"`
	EnrolledStudents   []*Enrollment      `bson:"enrolled_students" json:"enrolledStudents"`
	Ratings            []*Rating          `bson:"ratings" json:"ratings"`
	AverageRating      float64            `bson:"average_rating" json:"averageRating"`
	CreateTime         time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime         time.Time          `bson:"update_time" json:"updateTime"`
}

func (c *Course) EnrollmentCount() int64 {
	return int64(len(c.EnrolledStudents))
}

// IsFull 容量只在报名时校验，不做存储约束
func (c *Course) IsFull() bool {
	return int64(len(c.EnrolledStudents)) >= c.MaxStudents
}

func (c *Course) EnrollmentOf(studentID string) *Enrollment {
	for _, e := range c.EnrolledStudents {
		if e.StudentID == studentID {
			return e
		}
	}
	return nil
}

func (c *Course) IsEnrolled(studentID string) bool {
	return c.EnrollmentOf(studentID) != nil
}

// Enroll 报名：要求已发布、未满员、未重复报名
func (c *Course) Enroll(studentID string, now time.Time) error {
	if !c.IsPublished {
		return consts.ErrCourseNotPublished
	}
	if c.IsFull() {
		return consts.ErrCourseFull
	}
	if c.IsEnrolled(studentID) {
		return consts.ErrAlreadyEnrolled
	}
	c.EnrolledStudents = append(c.EnrolledStudents, &Enrollment{
		StudentID:        studentID,
		EnrollmentDate:   now,
		Progress:         0,
		CompletedLessons: []*CompletedLesson{},
	})
	return nil
}

// Unenroll 退课，不存在时不报错
func (c *Course) Unenroll(studentID string) {
	enrollments := make([]*Enrollment, 0, len(c.EnrolledStudents))
	for _, e := range c.EnrolledStudents {
		if e.StudentID != studentID {
			enrollments = append(enrollments, e)
		}
	}
	c.EnrolledStudents = enrollments
}

// TogglePublish 发布开关，首次发布时记录发布时间
func (c *Course) TogglePublish(now time.Time) {
	c.IsPublished = !c.IsPublished
	if c.IsPublished && c.PublishedDate.IsZero() {
		c.PublishedDate = now
	}
}

// AddRating 评分，同一学生重复评分以最新为准
func (c *Course) AddRating(studentID string, rating int64, review string, now time.Time) error {
	if rating < 1 || rating > 5 {
		return consts.ErrInvalidRating
	}
	for _, r := range c.Ratings {
		if r.StudentID == studentID {
			r.Rating = rating
			r.Review = review
			r.Date = now
			c.UpdateAverageRating()
			return nil
		}
	}
	c.Ratings = append(c.Ratings, &Rating{
		StudentID: studentID,
		Rating:    rating,
		Review:    review,
		Date:      now,
	})
	c.UpdateAverageRating()
	return nil
}

// UpdateAverageRating 重新计算均分，保留一位小数
func (c *Course) UpdateAverageRating() {
	if len(c.Ratings) == 0 {
		c.AverageRating = 0
		return
	}
	var sum int64
	for _, r := range c.Ratings {
		sum += r.Rating
	}
	c.AverageRating = math.Round(float64(sum)/float64(len(c.Ratings))*10) / 10
}
