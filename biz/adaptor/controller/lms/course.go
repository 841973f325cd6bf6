package lms

import (
	"context"

	"campus-lms/biz/adaptor"
	"campus-lms/biz/application/dto/lms"
	"campus-lms/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

// ListCourses .
// @router /api/courses [GET]
func ListCourses(ctx context.Context, c *app.RequestContext) {
	var req lms.ListCoursesReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BindError(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.CourseService.ListCourses(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetCourse .
// @router /api/courses/:id [GET]
func GetCourse(ctx context.Context, c *app.RequestContext) {
	var req lms.GetCourseReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BindError(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.CourseService.GetCourse(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// CreateCourse .
// @router /api/courses [POST]
func CreateCourse(ctx context.Context, c *app.RequestContext) {
	var req lms.CreateCourseReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BindError(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.CourseService.CreateCourse(ctx, &req)
	adaptor.PostProcessCreated(ctx, c, &req, resp, err)
}

// UpdateCourse .
// @router /api/courses/:id [PUT]
func UpdateCourse(ctx context.Context, c *app.RequestContext) {
	var req lms.UpdateCourseReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BindError(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.CourseService.UpdateCourse(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// DeleteCourse .
// @router /api/courses/:id [DELETE]
func DeleteCourse(ctx context.Context, c *app.RequestContext) {
	var req lms.DeleteCourseReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BindError(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.CourseService.DeleteCourse(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// EnrollCourse .
// @router /api/courses/:id/enroll [POST]
func EnrollCourse(ctx context.Context, c *app.RequestContext) {
	var req lms.EnrollCourseReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BindError(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.CourseService.Enroll(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// UnenrollCourse .
// @router /api/courses/:id/unenroll [POST]
func UnenrollCourse(ctx context.Context, c *app.RequestContext) {
	var req lms.UnenrollCourseReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BindError(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.CourseService.Unenroll(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// PublishCourse .
// @router /api/courses/:id/publish [POST]
func PublishCourse(ctx context.Context, c *app.RequestContext) {
	var req lms.PublishCourseReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BindError(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.CourseService.TogglePublish(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// RateCourse .
// @router /api/courses/:id/rate [POST]
func RateCourse(ctx context.Context, c *app.RequestContext) {
	var req lms.RateCourseReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BindError(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.CourseService.RateCourse(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListInstructorCourses .
// @router /api/courses/instructor/:instructorId [GET]
func ListInstructorCourses(ctx context.Context, c *app.RequestContext) {
	var req lms.ListInstructorCoursesReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BindError(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.CourseService.ListInstructorCourses(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
