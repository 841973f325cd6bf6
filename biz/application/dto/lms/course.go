package lms

import (
	"campus-lms/biz/application/dto/basic"
	"campus-lms/biz/infrastructure/repository/course"
)

// CourseInfo 目录列表视图
type CourseInfo struct {
	Id              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	InstructorId    string   `json:"instructorId"`
	InstructorName  string   `json:"instructorName"`
	Category        string   `json:"category"`
	Level           string   `json:"level"`
	WeekCount       int64    `json:"weekCount"`
	HoursPerWeek    int64    `json:"hoursPerWeek"`
	MaxStudents     int64    `json:"maxStudents"`
	Price           float64  `json:"price"`
	Thumbnail       string   `json:"thumbnail"`
	Tags            []string `json:"tags"`
	IsPublished     bool     `json:"isPublished"`
	EnrollmentCount int64    `json:"enrollmentCount"`
	IsFull          bool     `json:"isFull"`
	AverageRating   float64  `json:"averageRating"`
	CreateTime      int64    `json:"createTime"`
}

type ListCoursesReq struct {
	Search            string                   `query:"search"`
	Category          string                   `query:"category"`
	Level             string                   `query:"level"`
	Published         string                   `query:"published"` // 缺省 "true"
	PaginationOptions *basic.PaginationOptions `json:"paginationOptions,omitempty"`
}

type ListCoursesResp struct {
	Courses     []*CourseInfo `json:"courses"`
	Total       int64         `json:"total"`
	TotalPages  int64         `json:"totalPages"`
	CurrentPage int64         `json:"currentPage"`
}

type GetCourseReq struct {
	Id string `path:"id"`
}

// GetCourseResp 详情返回完整聚合及派生字段
type GetCourseResp struct {
	*course.Course
	EnrollmentCount int64 `json:"enrollmentCount"`
	IsFull          bool  `json:"isFull"`
}

type CreateCourseReq struct {
	Title              string                 `json:"title"`
	Description        string                 `json:"description"`
	Category           string                 `json:"category"`
	Level              string                 `json:"level"`
	Duration           course.Duration        `json:"duration"`
	MaxStudents        int64                  `json:"maxStudents"`
	Price              float64                `json:"price"`
	Thumbnail          string                 `json:"thumbnail"`
	Syllabus           []*course.SyllabusWeek `json:"syllabus"`
	Prerequisites      []string               `json:"prerequisites"`
	LearningObjectives []string               `json:"learningObjectives"`
	Tags               []string               `json:"tags"`
}

type CreateCourseResp struct {
	Message string         `json:"message"`
	Course  *course.Course `json:"course"`
}

type UpdateCourseReq struct {
	Id                 string                 `path:"id"`
	Title              *string                `json:"title,omitempty"`
	Description        *string                `json:"description,omitempty"`
	Category           *string                `json:"category,omitempty"`
	Level              *string                `json:"level,omitempty"`
	Duration           *course.Duration       `json:"duration,omitempty"`
	MaxStudents        *int64                 `json:"maxStudents,omitempty"`
	Price              *float64               `json:"price,omitempty"`
	Thumbnail          *string                `json:"thumbnail,omitempty"`
	Syllabus           []*course.SyllabusWeek `json:"syllabus,omitempty"`
	Prerequisites      []string               `json:"prerequisites,omitempty"`
	LearningObjectives []string               `json:"learningObjectives,omitempty"`
	Tags               []string               `json:"tags,omitempty"`
}

type UpdateCourseResp struct {
	Message string         `json:"message"`
	Course  *course.Course `json:"course"`
}

type DeleteCourseReq struct {
	Id string `path:"id"`
}

type EnrollCourseReq struct {
	Id string `path:"id"`
}

type UnenrollCourseReq struct {
	Id string `path:"id"`
}

type PublishCourseReq struct {
	Id string `path:"id"`
}

type PublishCourseResp struct {
	Message     string `json:"message"`
	IsPublished bool   `json:"isPublished"`
}

type RateCourseReq struct {
	Id     string `path:"id"`
	Rating int64  `json:"rating"`
	Review string `json:"review"`
}

type RateCourseResp struct {
	Message       string  `json:"message"`
	AverageRating float64 `json:"averageRating"`
}

type ListInstructorCoursesReq struct {
	InstructorId string `path:"instructorId"`
}

type ListInstructorCoursesResp struct {
	Courses []*CourseInfo `json:"courses"`
}
