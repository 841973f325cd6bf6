package service

import (
	"context"
	"time"

	"campus-lms/biz/adaptor"
	"campus-lms/biz/application/dto/lms"
	"campus-lms/biz/infrastructure/consts"
	"campus-lms/biz/infrastructure/repository/course"
	"campus-lms/biz/infrastructure/repository/user"
	"campus-lms/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/samber/lo"
)

type ICourseService interface {
	ListCourses(ctx context.Context, req *lms.ListCoursesReq) (*lms.ListCoursesResp, error)
	GetCourse(ctx context.Context, req *lms.GetCourseReq) (*lms.GetCourseResp, error)
	CreateCourse(ctx context.Context, req *lms.CreateCourseReq) (*lms.CreateCourseResp, error)
	UpdateCourse(ctx context.Context, req *lms.UpdateCourseReq) (*lms.UpdateCourseResp, error)
	DeleteCourse(ctx context.Context, req *lms.DeleteCourseReq) (*lms.Response, error)
	Enroll(ctx context.Context, req *lms.EnrollCourseReq) (*lms.Response, error)
	Unenroll(ctx context.Context, req *lms.UnenrollCourseReq) (*lms.Response, error)
	TogglePublish(ctx context.Context, req *lms.PublishCourseReq) (*lms.PublishCourseResp, error)
	RateCourse(ctx context.Context, req *lms.RateCourseReq) (*lms.RateCourseResp, error)
	ListInstructorCourses(ctx context.Context, req *lms.ListInstructorCoursesReq) (*lms.ListInstructorCoursesResp, error)
}

type CourseService struct {
	CourseMapper *course.MongoMapper
	UserMapper   *user.MongoMapper
}

var CourseServiceSet = wire.NewSet(
	wire.Struct(new(CourseService), "*"),
	wire.Bind(new(ICourseService), new(*CourseService)),
)

// ListCourses 课程目录，公开接口，缺省只展示已发布课程
func (s *CourseService) ListCourses(ctx context.Context, req *lms.ListCoursesReq) (*lms.ListCoursesResp, error) {
	page, pageSize := parsePagination(req.PaginationOptions)

	filter := course.CourseFilter{
		Search:        req.Search,
		Category:      req.Category,
		Level:         req.Level,
		PublishedOnly: req.Published != "false",
	}
	courses, total, err := s.CourseMapper.FindMany(ctx, filter, page, pageSize)
	if err != nil {
		log.Error("获取课程列表失败: %v", err)
		return nil, consts.ErrGetCourseList
	}

	infos := make([]*lms.CourseInfo, 0, len(courses))
	for _, c := range courses {
		infos = append(infos, s.courseInfo(ctx, c))
	}
	return &lms.ListCoursesResp{
		Courses:     infos,
		Total:       total,
		TotalPages:  totalPages(total, pageSize),
		CurrentPage: page,
	}, nil
}

// GetCourse 课程详情
func (s *CourseService) GetCourse(ctx context.Context, req *lms.GetCourseReq) (*lms.GetCourseResp, error) {
	c, err := s.CourseMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &lms.GetCourseResp{
		Course:          c,
		EnrollmentCount: c.EnrollmentCount(),
		IsFull:          c.IsFull(),
	}, nil
}

// CreateCourse 创建课程，讲师或管理员
func (s *CourseService) CreateCourse(ctx context.Context, req *lms.CreateCourseReq) (*lms.CreateCourseResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if _, err := activeUser(ctx, s.UserMapper, userMeta); err != nil {
		return nil, err
	}
	if !consts.HasRole(userMeta.GetRole(), consts.RoleInstructor, consts.RoleAdmin) {
		return nil, consts.ErrForbidden
	}

	if req.Title == "" || req.Description == "" ||
		!lo.Contains(consts.CourseCategories, req.Category) ||
		!lo.Contains(consts.CourseLevels, req.Level) ||
		req.Duration.Weeks < 1 || req.Duration.HoursPerWeek < 1 ||
		req.MaxStudents < 1 || req.Price < 0 {
		return nil, consts.ErrInvalidParams
	}

	c := &course.Course{
		Title:              req.Title,
		Description:        req.Description,
		InstructorID:       userMeta.GetUserId(),
		Category:           req.Category,
		Level:              req.Level,
		Duration:           req.Duration,
		MaxStudents:        req.MaxStudents,
		Price:              req.Price,
		Thumbnail:          req.Thumbnail,
		Syllabus:           req.Syllabus,
		Prerequisites:      req.Prerequisites,
		LearningObjectives: req.LearningObjectives,
		Tags:               req.Tags,
		EnrolledStudents:   []*course.Enrollment{},
		Ratings:            []*course.Rating{},
	}
	if err := s.CourseMapper.Insert(ctx, c); err != nil {
		log.Error("创建课程失败: %v", err)
		return nil, consts.ErrCreateCourse
	}

	return &lms.CreateCourseResp{
		Message: "Course created successfully",
		Course:  c,
	}, nil
}

// UpdateCourse 编辑课程，仅归属讲师或管理员；讲师归属不可变更
func (s *CourseService) UpdateCourse(ctx context.Context, req *lms.UpdateCourseReq) (*lms.UpdateCourseResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if _, err := activeUser(ctx, s.UserMapper, userMeta); err != nil {
		return nil, err
	}

	c, err := s.CourseMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if !consts.IsOwnerOrAdmin(userMeta.GetUserId(), c.InstructorID, userMeta.GetRole()) {
		return nil, consts.ErrForbidden
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, consts.ErrInvalidParams
		}
		c.Title = *req.Title
	}
	if req.Description != nil {
		c.Description = *req.Description
	}
	if req.Category != nil {
		if !lo.Contains(consts.CourseCategories, *req.Category) {
			return nil, consts.ErrInvalidParams
		}
		c.Category = *req.Category
	}
	if req.Level != nil {
		if !lo.Contains(consts.CourseLevels, *req.Level) {
			return nil, consts.ErrInvalidParams
		}
		c.Level = *req.Level
	}
	if req.Duration != nil {
		if req.Duration.Weeks < 1 || req.Duration.HoursPerWeek < 1 {
			return nil, consts.ErrInvalidParams
		}
		c.Duration = *req.Duration
	}
	if req.MaxStudents != nil {
		if *req.MaxStudents < 1 {
			return nil, consts.ErrInvalidParams
		}
		c.MaxStudents = *req.MaxStudents
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, consts.ErrInvalidParams
		}
		c.Price = *req.Price
	}
	if req.Thumbnail != nil {
		c.Thumbnail = *req.Thumbnail
	}
	if req.Syllabus != nil {
		c.Syllabus = req.Syllabus
	}
	if req.Prerequisites != nil {
		c.Prerequisites = req.Prerequisites
	}
	if req.LearningObjectives != nil {
		c.LearningObjectives = req.LearningObjectives
	}
	if req.Tags != nil {
		c.Tags = req.Tags
	}

	if err := s.CourseMapper.Update(ctx, c); err != nil {
		log.Error("更新课程失败: %v", err)
		return nil, consts.ErrUpdate
	}
	return &lms.UpdateCourseResp{
		Message: "Course updated successfully",
		Course:  c,
	}, nil
}

// DeleteCourse 删除课程，存在报名学生时拒绝
func (s *CourseService) DeleteCourse(ctx context.Context, req *lms.DeleteCourseReq) (*lms.Response, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if _, err := activeUser(ctx, s.UserMapper, userMeta); err != nil {
		return nil, err
	}

	c, err := s.CourseMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if !consts.IsOwnerOrAdmin(userMeta.GetUserId(), c.InstructorID, userMeta.GetRole()) {
		return nil, consts.ErrForbidden
	}
	if len(c.EnrolledStudents) > 0 {
		return nil, consts.ErrCourseHasStudents
	}

	if err := s.CourseMapper.Delete(ctx, req.Id); err != nil {
		log.Error("删除课程失败: %v", err)
		return nil, consts.ErrUpdate
	}
	return &lms.Response{Message: "Course deleted successfully"}, nil
}

// Enroll 报名课程，课程与用户两侧互为镜像
func (s *CourseService) Enroll(ctx context.Context, req *lms.EnrollCourseReq) (*lms.Response, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	u, err := activeUser(ctx, s.UserMapper, userMeta)
	if err != nil {
		return nil, err
	}

	c, err := s.CourseMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	now := time.Now()
	if err := c.Enroll(userMeta.GetUserId(), now); err != nil {
		return nil, err
	}
	if err := s.CourseMapper.Update(ctx, c); err != nil {
		log.Error("保存报名失败: %v", err)
		return nil, consts.ErrUpdate
	}

	// 镜像到用户侧
	u.AddCourseRef(c.ID.Hex(), now)
	if err := s.UserMapper.Update(ctx, u); err != nil {
		log.Error("镜像报名记录失败: %v", err)
	}

	return &lms.Response{Message: "Successfully enrolled in course"}, nil
}

// Unenroll 退课，两侧同时移除
func (s *CourseService) Unenroll(ctx context.Context, req *lms.UnenrollCourseReq) (*lms.Response, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	u, err := activeUser(ctx, s.UserMapper, userMeta)
	if err != nil {
		return nil, err
	}

	c, err := s.CourseMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	c.Unenroll(userMeta.GetUserId())
	if err := s.CourseMapper.Update(ctx, c); err != nil {
		log.Error("保存退课失败: %v", err)
		return nil, consts.ErrUpdate
	}

	u.RemoveCourseRef(c.ID.Hex())
	if err := s.UserMapper.Update(ctx, u); err != nil {
		log.Error("镜像退课记录失败: %v", err)
	}

	return &lms.Response{Message: "Successfully unenrolled from course"}, nil
}

// TogglePublish 发布开关
func (s *CourseService) TogglePublish(ctx context.Context, req *lms.PublishCourseReq) (*lms.PublishCourseResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if _, err := activeUser(ctx, s.UserMapper, userMeta); err != nil {
		return nil, err
	}

	c, err := s.CourseMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if !consts.IsOwnerOrAdmin(userMeta.GetUserId(), c.InstructorID, userMeta.GetRole()) {
		return nil, consts.ErrForbidden
	}

	c.TogglePublish(time.Now())
	if err := s.CourseMapper.Update(ctx, c); err != nil {
		log.Error("更新发布状态失败: %v", err)
		return nil, consts.ErrUpdate
	}

	message := "Course unpublished successfully"
	if c.IsPublished {
		message = "Course published successfully"
	}
	return &lms.PublishCourseResp{
		Message:     message,
		IsPublished: c.IsPublished,
	}, nil
}

// RateCourse 已报名学生评分，重复评分取最新
func (s *CourseService) RateCourse(ctx context.Context, req *lms.RateCourseReq) (*lms.RateCourseResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if _, err := activeUser(ctx, s.UserMapper, userMeta); err != nil {
		return nil, err
	}

	c, err := s.CourseMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if !c.IsEnrolled(userMeta.GetUserId()) {
		return nil, consts.ErrNotEnrolled
	}

	if err := c.AddRating(userMeta.GetUserId(), req.Rating, req.Review, time.Now()); err != nil {
		return nil, err
	}
	if err := s.CourseMapper.Update(ctx, c); err != nil {
		log.Error("保存评分失败: %v", err)
		return nil, consts.ErrUpdate
	}

	return &lms.RateCourseResp{
		Message:       "Course rated successfully",
		AverageRating: c.AverageRating,
	}, nil
}

// ListInstructorCourses 讲师主页课程列表，仅已发布
func (s *CourseService) ListInstructorCourses(ctx context.Context, req *lms.ListInstructorCoursesReq) (*lms.ListInstructorCoursesResp, error) {
	courses, err := s.CourseMapper.FindByInstructor(ctx, req.InstructorId)
	if err != nil {
		log.Error("获取讲师课程失败: %v", err)
		return nil, consts.ErrGetCourseList
	}

	infos := make([]*lms.CourseInfo, 0, len(courses))
	for _, c := range courses {
		infos = append(infos, s.courseInfo(ctx, c))
	}
	return &lms.ListInstructorCoursesResp{Courses: infos}, nil
}

func (s *CourseService) courseInfo(ctx context.Context, c *course.Course) *lms.CourseInfo {
	info := &lms.CourseInfo{
		Id:              c.ID.Hex(),
		Title:           c.Title,
		Description:     c.Description,
		InstructorId:    c.InstructorID,
		Category:        c.Category,
		Level:           c.Level,
		WeekCount:       c.Duration.Weeks,
		HoursPerWeek:    c.Duration.HoursPerWeek,
		MaxStudents:     c.MaxStudents,
		Price:           c.Price,
		Thumbnail:       c.Thumbnail,
		Tags:            c.Tags,
		IsPublished:     c.IsPublished,
		EnrollmentCount: c.EnrollmentCount(),
		IsFull:          c.IsFull(),
		AverageRating:   c.AverageRating,
		CreateTime:      c.CreateTime.Unix(),
	}
	if instructor, err := s.UserMapper.FindOne(ctx, c.InstructorID); err == nil {
		info.InstructorName = instructor.FullName()
	}
	return info
}
