package main

import (
	handler "campus-lms/biz/adaptor/controller"
	"campus-lms/biz/adaptor/controller/lms"

	"github.com/cloudwego/hertz/pkg/app/server"
)

// customizeRegister registers customize routers.
func customizedRegister(r *server.Hertz) {
	r.GET("/ping", handler.Ping)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", lms.Register)
			auth.POST("/login", lms.Login)
			auth.POST("/check-email", lms.CheckEmail)
			auth.POST("/check-name", lms.CheckName)
			auth.GET("/profile", lms.GetProfile)
			auth.PUT("/profile", lms.UpdateProfile)
			auth.PUT("/change-password", lms.ChangePassword)
			auth.POST("/verify-token", lms.VerifyToken)
		}

		users := api.Group("/users")
		{
			users.GET("", lms.ListUsers)
			users.POST("", lms.CreateUser)
			users.GET("/:id", lms.GetUser)
			users.PUT("/:id", lms.UpdateUser)
			users.DELETE("/:id", lms.DeleteUser)
		}

		courses := api.Group("/courses")
		{
			courses.GET("", lms.ListCourses)
			courses.POST("", lms.CreateCourse)
			courses.GET("/instructor/:instructorId", lms.ListInstructorCourses)
			courses.GET("/:id", lms.GetCourse)
			courses.PUT("/:id", lms.UpdateCourse)
			courses.DELETE("/:id", lms.DeleteCourse)
			courses.POST("/:id/enroll", lms.EnrollCourse)
			courses.POST("/:id/unenroll", lms.UnenrollCourse)
			courses.POST("/:id/publish", lms.PublishCourse)
			courses.POST("/:id/rate", lms.RateCourse)
		}

		assignments := api.Group("/assignments")
		{
			assignments.GET("", lms.ListAssignments)
			assignments.POST("", lms.CreateAssignment)
			assignments.GET("/:id", lms.GetAssignment)
			assignments.PUT("/:id", lms.UpdateAssignment)
			assignments.DELETE("/:id", lms.DeleteAssignment)
			assignments.POST("/:id/submit", lms.SubmitAssignment)
			assignments.POST("/:id/grade/:submissionId", lms.GradeAssignment)
			assignments.POST("/:id/publish", lms.PublishAssignment)
		}

		chat := api.Group("/chat")
		{
			chat.POST("/message", lms.SendChatMessage)
			chat.GET("/history", lms.GetChatHistory)
			chat.POST("/clear", lms.ClearChat)
		}

		sts := api.Group("/sts")
		{
			sts.POST("/upload-url", lms.GenUploadURL)
		}
	}
}
