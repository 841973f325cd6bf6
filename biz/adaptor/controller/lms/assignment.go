package lms

import (
	"context"

	"campus-lms/biz/adaptor"
	"campus-lms/biz/application/dto/lms"
	"campus-lms/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

// ListAssignments .
// @router /api/assignments [GET]
func ListAssignments(ctx context.Context, c *app.RequestContext) {
	var req lms.ListAssignmentsReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BindError(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.AssignmentService.ListAssignments(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetAssignment .
// @router /api/assignments/:id [GET]
func GetAssignment(ctx context.Context, c *app.RequestContext) {
	var req lms.GetAssignmentReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BindError(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.AssignmentService.GetAssignment(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// CreateAssignment .
// @router /api/assignments [POST]
func CreateAssignment(ctx context.Context, c *app.RequestContext) {
	var req lms.CreateAssignmentReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BindError(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.AssignmentService.CreateAssignment(ctx, &req)
	adaptor.PostProcessCreated(ctx, c, &req, resp, err)
}

// UpdateAssignment .
// @router /api/assignments/:id [PUT]
func UpdateAssignment(ctx context.Context, c *app.RequestContext) {
	var req lms.UpdateAssignmentReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BindError(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.AssignmentService.UpdateAssignment(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// DeleteAssignment .
// @router /api/assignments/:id [DELETE]
func DeleteAssignment(ctx context.Context, c *app.RequestContext) {
	var req lms.DeleteAssignmentReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BindError(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.AssignmentService.DeleteAssignment(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// SubmitAssignment .
// @router /api/assignments/:id/submit [POST]
func SubmitAssignment(ctx context.Context, c *app.RequestContext) {
	var req lms.SubmitAssignmentReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BindError(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.AssignmentService.Submit(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GradeAssignment .
// @router /api/assignments/:id/grade/:submissionId [POST]
func GradeAssignment(ctx context.Context, c *app.RequestContext) {
	var req lms.GradeAssignmentReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BindError(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.AssignmentService.Grade(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// PublishAssignment .
// @router /api/assignments/:id/publish [POST]
func PublishAssignment(ctx context.Context, c *app.RequestContext) {
	var req lms.PublishAssignmentReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BindError(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.AssignmentService.TogglePublish(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
