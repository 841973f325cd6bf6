package service

import (
	"context"
	"time"

	"campus-lms/biz/adaptor"
	"campus-lms/biz/application/dto/basic"
	"campus-lms/biz/application/dto/lms"
	"campus-lms/biz/infrastructure/consts"
	"campus-lms/biz/infrastructure/repository/assignment"
	"campus-lms/biz/infrastructure/repository/course"
	"campus-lms/biz/infrastructure/repository/user"
	"campus-lms/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/samber/lo"
)

type IAssignmentService interface {
	ListAssignments(ctx context.Context, req *lms.ListAssignmentsReq) (*lms.ListAssignmentsResp, error)
	GetAssignment(ctx context.Context, req *lms.GetAssignmentReq) (*lms.GetAssignmentResp, error)
	CreateAssignment(ctx context.Context, req *lms.CreateAssignmentReq) (*lms.CreateAssignmentResp, error)
	UpdateAssignment(ctx context.Context, req *lms.UpdateAssignmentReq) (*lms.UpdateAssignmentResp, error)
	DeleteAssignment(ctx context.Context, req *lms.DeleteAssignmentReq) (*lms.Response, error)
	Submit(ctx context.Context, req *lms.SubmitAssignmentReq) (*lms.SubmitAssignmentResp, error)
	Grade(ctx context.Context, req *lms.GradeAssignmentReq) (*lms.GradeAssignmentResp, error)
	TogglePublish(ctx context.Context, req *lms.PublishAssignmentReq) (*lms.PublishAssignmentResp, error)
}

type AssignmentService struct {
	AssignmentMapper *assignment.MongoMapper
	CourseMapper     *course.MongoMapper
	UserMapper       *user.MongoMapper
}

var AssignmentServiceSet = wire.NewSet(
	wire.Struct(new(AssignmentService), "*"),
	wire.Bind(new(IAssignmentService), new(*AssignmentService)),
)

// ListAssignments 按角色裁剪的作业列表
// 学生只看到已报名课程的已发布作业，讲师只看到自己创建的作业，管理员不裁剪。
// 越权数据从结果中静默省略，而不是报错。
func (s *AssignmentService) ListAssignments(ctx context.Context, req *lms.ListAssignmentsReq) (*lms.ListAssignmentsResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	u, err := activeUser(ctx, s.UserMapper, userMeta)
	if err != nil {
		return nil, err
	}

	filter := buildListFilter(userMeta, u, req.CourseId)
	if t, perr := time.Parse("2006-01-02", req.DueDate); req.DueDate != "" && perr == nil {
		filter.DueDate = &t
	}

	page, pageSize := parsePagination(req.PaginationOptions)
	assignments, total, err := s.AssignmentMapper.FindMany(ctx, filter, page, pageSize)
	if err != nil {
		log.Error("获取作业列表失败: %v", err)
		return nil, consts.ErrGetAssignmentList
	}

	infos := make([]*lms.AssignmentInfo, 0, len(assignments))
	for _, a := range assignments {
		infos = append(infos, s.assignmentInfo(ctx, a))
	}
	return &lms.ListAssignmentsResp{
		Assignments: infos,
		Total:       total,
		TotalPages:  totalPages(total, pageSize),
		CurrentPage: page,
	}, nil
}

// buildListFilter 按角色组装查询条件
func buildListFilter(userMeta *basic.UserMeta, u *user.User, courseID string) assignment.AssignmentFilter {
	filter := assignment.AssignmentFilter{}

	switch userMeta.GetRole() {
	case consts.RoleStudent:
		enrolled := u.EnrolledCourseIDs()
		if courseID != "" {
			// 指定课程时也必须在报名范围内
			if !lo.Contains(enrolled, courseID) {
				enrolled = []string{}
			} else {
				enrolled = []string{courseID}
			}
		}
		filter.CourseIDs = enrolled
		filter.PublishedOnly = true
	case consts.RoleInstructor:
		filter.InstructorID = userMeta.GetUserId()
		filter.CourseID = courseID
	default:
		filter.CourseID = courseID
	}
	return filter
}

// ownSubmissions 学生视角只保留本人提交
func ownSubmissions(subs []*assignment.Submission, studentID string) []*assignment.Submission {
	return lo.Filter(subs, func(sub *assignment.Submission, _ int) bool {
		return sub.StudentID == studentID
	})
}

// GetAssignment 作业详情
// 学生视角下要求已发布且已报名，且只保留本人提交
func (s *AssignmentService) GetAssignment(ctx context.Context, req *lms.GetAssignmentReq) (*lms.GetAssignmentResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	u, err := activeUser(ctx, s.UserMapper, userMeta)
	if err != nil {
		return nil, err
	}

	a, err := s.AssignmentMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	// 派生字段按完整提交集合计算，再做视角裁剪
	resp := &lms.GetAssignmentResp{
		Assignment:      a,
		SubmissionCount: a.SubmissionCount(),
		GradedCount:     a.GradedCount(),
		AverageGrade:    a.AverageGrade(),
	}

	switch userMeta.GetRole() {
	case consts.RoleStudent:
		if !a.IsPublished || !u.IsEnrolled(a.CourseID) {
			return nil, consts.ErrForbidden
		}
		a.Submissions = ownSubmissions(a.Submissions, userMeta.GetUserId())
	case consts.RoleInstructor:
		if a.InstructorID != userMeta.GetUserId() {
			return nil, consts.ErrForbidden
		}
	}
	return resp, nil
}

// CreateAssignment 创建作业，只能针对自己名下的课程（管理员除外）
func (s *AssignmentService) CreateAssignment(ctx context.Context, req *lms.CreateAssignmentReq) (*lms.CreateAssignmentResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if _, err := activeUser(ctx, s.UserMapper, userMeta); err != nil {
		return nil, err
	}
	if !consts.HasRole(userMeta.GetRole(), consts.RoleInstructor, consts.RoleAdmin) {
		return nil, consts.ErrForbidden
	}

	if req.Title == "" || req.Description == "" || req.Instructions == "" ||
		!lo.Contains(consts.AssignmentTypes, req.Type) ||
		req.MaxPoints < 1 || req.DueDate <= 0 {
		return nil, consts.ErrInvalidParams
	}

	c, err := s.CourseMapper.FindOne(ctx, req.CourseId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if !consts.IsOwnerOrAdmin(userMeta.GetUserId(), c.InstructorID, userMeta.GetRole()) {
		return nil, consts.ErrForbidden
	}

	settings := assignment.Settings{
		AllowLateSubmissions: true,
		MaxAttempts:          1,
	}
	if req.Settings != nil {
		settings = *req.Settings
		if settings.MaxAttempts < 1 || settings.LatePenalty < 0 || settings.LatePenalty > 100 {
			return nil, consts.ErrInvalidParams
		}
	}

	a := &assignment.Assignment{
		Title:        req.Title,
		Description:  req.Description,
		Instructions: req.Instructions,
		CourseID:     req.CourseId,
		InstructorID: userMeta.GetUserId(),
		Type:         req.Type,
		MaxPoints:    req.MaxPoints,
		DueDate:      time.Unix(req.DueDate, 0),
		Attachments:  req.Attachments,
		Submissions:  []*assignment.Submission{},
		Settings:     settings,
	}
	if err := s.AssignmentMapper.Insert(ctx, a); err != nil {
		log.Error("创建作业失败: %v", err)
		return nil, consts.ErrCreateAssignment
	}

	return &lms.CreateAssignmentResp{
		Message:    "Assignment created successfully",
		Assignment: a,
	}, nil
}

// UpdateAssignment 编辑作业；归属讲师、课程与提交集合不可经此修改
func (s *AssignmentService) UpdateAssignment(ctx context.Context, req *lms.UpdateAssignmentReq) (*lms.UpdateAssignmentResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if _, err := activeUser(ctx, s.UserMapper, userMeta); err != nil {
		return nil, err
	}

	a, err := s.AssignmentMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if !consts.IsOwnerOrAdmin(userMeta.GetUserId(), a.InstructorID, userMeta.GetRole()) {
		return nil, consts.ErrForbidden
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, consts.ErrInvalidParams
		}
		a.Title = *req.Title
	}
	if req.Description != nil {
		a.Description = *req.Description
	}
	if req.Instructions != nil {
		a.Instructions = *req.Instructions
	}
	if req.Type != nil {
		if !lo.Contains(consts.AssignmentTypes, *req.Type) {
			return nil, consts.ErrInvalidParams
		}
		a.Type = *req.Type
	}
	if req.MaxPoints != nil {
		if *req.MaxPoints < 1 {
			return nil, consts.ErrInvalidParams
		}
		a.MaxPoints = *req.MaxPoints
	}
	if req.DueDate != nil {
		if *req.DueDate <= 0 {
			return nil, consts.ErrInvalidParams
		}
		a.DueDate = time.Unix(*req.DueDate, 0)
	}
	if req.Attachments != nil {
		a.Attachments = req.Attachments
	}
	if req.Settings != nil {
		if req.Settings.MaxAttempts < 1 || req.Settings.LatePenalty < 0 || req.Settings.LatePenalty > 100 {
			return nil, consts.ErrInvalidParams
		}
		a.Settings = *req.Settings
	}

	if err := s.AssignmentMapper.Update(ctx, a); err != nil {
		log.Error("更新作业失败: %v", err)
		return nil, consts.ErrUpdate
	}
	return &lms.UpdateAssignmentResp{
		Message:    "Assignment updated successfully",
		Assignment: a,
	}, nil
}

// DeleteAssignment 删除作业，存在任何提交记录时拒绝
func (s *AssignmentService) DeleteAssignment(ctx context.Context, req *lms.DeleteAssignmentReq) (*lms.Response, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if _, err := activeUser(ctx, s.UserMapper, userMeta); err != nil {
		return nil, err
	}

	a, err := s.AssignmentMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if !consts.IsOwnerOrAdmin(userMeta.GetUserId(), a.InstructorID, userMeta.GetRole()) {
		return nil, consts.ErrForbidden
	}
	if len(a.Submissions) > 0 {
		return nil, consts.ErrAssignmentHasSubs
	}

	if err := s.AssignmentMapper.Delete(ctx, req.Id); err != nil {
		log.Error("删除作业失败: %v", err)
		return nil, consts.ErrUpdate
	}
	return &lms.Response{Message: "Assignment deleted successfully"}, nil
}

// Submit 学生提交作业
// 报名校验以课程侧报名列表为准
func (s *AssignmentService) Submit(ctx context.Context, req *lms.SubmitAssignmentReq) (*lms.SubmitAssignmentResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if _, err := activeUser(ctx, s.UserMapper, userMeta); err != nil {
		return nil, err
	}
	if !consts.HasRole(userMeta.GetRole(), consts.RoleStudent) {
		return nil, consts.ErrForbidden
	}

	a, err := s.AssignmentMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	c, err := s.CourseMapper.FindOne(ctx, a.CourseID)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if !c.IsEnrolled(userMeta.GetUserId()) {
		return nil, consts.ErrNotEnrolled
	}

	sub, err := a.PlaceSubmission(userMeta.GetUserId(), req.Content, time.Now())
	if err != nil {
		return nil, err
	}
	if err := s.AssignmentMapper.Update(ctx, a); err != nil {
		log.Error("保存提交失败: %v", err)
		return nil, consts.ErrSubmitAssignment
	}

	log.CtxInfo(ctx, "作业提交成功 [AssignmentID: %s, StudentID: %s, IsLate: %v]",
		a.ID.Hex(), userMeta.GetUserId(), sub.IsLate)

	return &lms.SubmitAssignmentResp{
		Message:      "Assignment submitted successfully",
		SubmissionId: sub.ID.Hex(),
		IsLate:       sub.IsLate,
	}, nil
}

// Grade 批改提交，重复批改直接覆盖
func (s *AssignmentService) Grade(ctx context.Context, req *lms.GradeAssignmentReq) (*lms.GradeAssignmentResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if _, err := activeUser(ctx, s.UserMapper, userMeta); err != nil {
		return nil, err
	}
	if !consts.HasRole(userMeta.GetRole(), consts.RoleInstructor, consts.RoleAdmin) {
		return nil, consts.ErrForbidden
	}

	a, err := s.AssignmentMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if !consts.IsOwnerOrAdmin(userMeta.GetUserId(), a.InstructorID, userMeta.GetRole()) {
		return nil, consts.ErrForbidden
	}

	sub, err := a.GradeSubmission(req.SubmissionId, userMeta.GetUserId(), req.Points, req.Feedback, time.Now())
	if err != nil {
		return nil, err
	}
	if err := s.AssignmentMapper.Update(ctx, a); err != nil {
		log.Error("保存批改失败: %v", err)
		return nil, consts.ErrGradeAssignment
	}

	return &lms.GradeAssignmentResp{
		Message: "Assignment graded successfully",
		Grade:   sub.Grade,
	}, nil
}

// TogglePublish 发布开关，首次发布记录发布时间
func (s *AssignmentService) TogglePublish(ctx context.Context, req *lms.PublishAssignmentReq) (*lms.PublishAssignmentResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if _, err := activeUser(ctx, s.UserMapper, userMeta); err != nil {
		return nil, err
	}

	a, err := s.AssignmentMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if !consts.IsOwnerOrAdmin(userMeta.GetUserId(), a.InstructorID, userMeta.GetRole()) {
		return nil, consts.ErrForbidden
	}

	a.TogglePublish(time.Now())
	if err := s.AssignmentMapper.Update(ctx, a); err != nil {
		log.Error("更新发布状态失败: %v", err)
		return nil, consts.ErrUpdate
	}

	message := "Assignment unpublished successfully"
	if a.IsPublished {
		message = "Assignment published successfully"
	}
	return &lms.PublishAssignmentResp{
		Message:     message,
		IsPublished: a.IsPublished,
	}, nil
}

func (s *AssignmentService) assignmentInfo(ctx context.Context, a *assignment.Assignment) *lms.AssignmentInfo {
	info := &lms.AssignmentInfo{
		Id:              a.ID.Hex(),
		Title:           a.Title,
		Description:     a.Description,
		CourseId:        a.CourseID,
		InstructorId:    a.InstructorID,
		Type:            a.Type,
		MaxPoints:       a.MaxPoints,
		DueDate:         a.DueDate.Unix(),
		IsPublished:     a.IsPublished,
		SubmissionCount: a.SubmissionCount(),
		GradedCount:     a.GradedCount(),
		AverageGrade:    a.AverageGrade(),
	}
	if c, err := s.CourseMapper.FindOne(ctx, a.CourseID); err == nil {
		info.CourseTitle = c.Title
	}
	return info
}
