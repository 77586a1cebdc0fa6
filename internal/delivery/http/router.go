package http

import (
	"github.com/gin-gonic/gin"
)

func InitRouter(handler *Handler) *gin.Engine {
	r := gin.Default()

	// Static front-end assets and the landing page for unauthenticated
	// root requests
	r.Static("/public", "./public")
	r.GET("/", func(c *gin.Context) {
		c.File("./public/index.html")
	})

	api := r.Group("/api")
	{
		api.GET("", handler.APIRoot)

		// Course catalog
		api.POST("/courses", handler.CreateCourse)
		api.GET("/courses", handler.GetAllCourses)
		api.GET("/courses/:id", handler.GetCourseByID)

		// Student directory
		api.POST("/students/register", handler.Register)
		api.POST("/students/login", handler.Login)
		api.POST("/enroll", handler.Enroll)
		api.GET("/students/:studentId/enrolled", handler.GetEnrolledCourses)

		// Progress tracker
		api.POST("/progress", handler.SaveProgress)
		api.GET("/progress/:studentId", handler.GetStudentProgress)
		api.GET("/progress/:studentId/:courseId", handler.GetCourseProgress)
	}

	// Requires a valid session token
	protected := api.Group("/")
	protected.Use(AuthMiddleware())
	{
		protected.GET("/students/me", handler.GetProfile)
	}

	return r
}
