package lms

import (
	"campus-lms/biz/application/dto/basic"
	"campus-lms/biz/infrastructure/repository/assignment"
)

// AssignmentInfo 列表视图
type AssignmentInfo struct {
	Id              string  `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	CourseId        string  `json:"courseId"`
	CourseTitle     string  `json:"courseTitle"`
	InstructorId    string  `json:"instructorId"`
	Type            string  `json:"type"`
	MaxPoints       int64   `json:"maxPoints"`
	DueDate         int64   `json:"dueDate"`
	IsPublished     bool    `json:"isPublished"`
	SubmissionCount int64   `json:"submissionCount"`
	GradedCount     int64   `json:"gradedCount"`
	AverageGrade    float64 `json:"averageGrade"`
}

type ListAssignmentsReq struct {
	CourseId          string                   `query:"courseId"`
	DueDate           string                   `query:"dueDate"` // YYYY-MM-DD
	PaginationOptions *basic.PaginationOptions `json:"paginationOptions,omitempty"`
}

type ListAssignmentsResp struct {
	Assignments []*AssignmentInfo `json:"assignments"`
	Total       int64             `json:"total"`
	TotalPages  int64             `json:"totalPages"`
	CurrentPage int64             `json:"currentPage"`
}

type GetAssignmentReq struct {
	Id string `path:"id"`
}

// GetAssignmentResp 详情返回完整聚合及派生字段
// 学生视角下 submissions 只保留本人提交
type GetAssignmentResp struct {
	*assignment.Assignment
	SubmissionCount int64   `json:"submissionCount"`
	GradedCount     int64   `json:"gradedCount"`
	AverageGrade    float64 `json:"averageGrade"`
}

type CreateAssignmentReq struct {
	Title        string                   `json:"title"`
	Description  string                   `json:"description"`
	Instructions string                   `json:"instructions"`
	CourseId     string                   `json:"courseId"`
	Type         string                   `json:"type"`
	MaxPoints    int64                    `json:"maxPoints"`
	DueDate      int64                    `json:"dueDate"` // unix秒
	Attachments  []*assignment.Attachment `json:"attachments,omitempty"`
	Settings     *assignment.Settings     `json:"settings,omitempty"`
}

type CreateAssignmentResp struct {
	Message    string                 `json:"message"`
	Assignment *assignment.Assignment `json:"assignment"`
}

type UpdateAssignmentReq struct {
	Id           string                   `path:"id"`
	Title        *string                  `json:"title,omitempty"`
	Description  *string                  `json:"description,omitempty"`
	Instructions *string                  `json:"instructions,omitempty"`
	Type         *string                  `json:"type,omitempty"`
	MaxPoints    *int64                   `json:"maxPoints,omitempty"`
	DueDate      *int64                   `json:"dueDate,omitempty"`
	Attachments  []*assignment.Attachment `json:"attachments,omitempty"`
	Settings     *assignment.Settings     `json:"settings,omitempty"`
}

type UpdateAssignmentResp struct {
	Message    string                 `json:"message"`
	Assignment *assignment.Assignment `json:"assignment"`
}

type DeleteAssignmentReq struct {
	Id string `path:"id"`
}

type SubmitAssignmentReq struct {
	Id      string             `path:"id"`
	Content assignment.Content `json:"content"`
}

type SubmitAssignmentResp struct {
	Message      string `json:"message"`
	SubmissionId string `json:"submissionId"`
	IsLate       bool   `json:"isLate"`
}

type GradeAssignmentReq struct {
	Id           string  `path:"id"`
	SubmissionId string  `path:"submissionId"`
	Points       float64 `json:"points"`
	Feedback     string  `json:"feedback"`
}

type GradeAssignmentResp struct {
	Message string            `json:"message"`
	Grade   *assignment.Grade `json:"grade"`
}

type PublishAssignmentReq struct {
	Id string `path:"id"`
}

type PublishAssignmentResp struct {
	Message     string `json:"message"`
	IsPublished bool   `json:"isPublished"`
}
