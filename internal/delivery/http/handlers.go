package http

import (
	"errors"
	"fmt"
	"net/http"

	"coursehub-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	AuthUsecase     domain.AuthUsecase
	CourseUsecase   domain.CourseUsecase
	ProgressUsecase domain.ProgressUsecase
}

func NewHandler(au domain.AuthUsecase, cu domain.CourseUsecase, pu domain.ProgressUsecase) *Handler {
	return &Handler{
		AuthUsecase:     au,
		CourseUsecase:   cu,
		ProgressUsecase: pu,
	}
}

// ========== UTILITY FUNCTIONS ==========

func formatValidationErrors(err error) gin.H {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		errors := make(map[string]string)
		for _, f := range ve {
			errors[f.Field()] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", f.Field(), f.Tag())
		}
		return gin.H{"error": "Validation failed", "details": errors}
	}
	return gin.H{"error": "Invalid request: " + err.Error()}
}

// errorStatus maps a usecase error onto the response status conventions:
// 400 for client-caused conflicts, 401 for failed login, 404 for missing
// course/student, 500 for anything the store threw.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrUsernameTaken), errors.Is(err, domain.ErrAlreadyEnrolled):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrStudentNotFound), errors.Is(err, domain.ErrCourseNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ========== ROOT ==========

func (h *Handler) APIRoot(c *gin.Context) {
	c.String(http.StatusOK, "Course delivery API is running")
}

// ========== COURSE HANDLERS ==========

func (h *Handler) CreateCourse(c *gin.Context) {
	var course domain.Course
	if err := c.ShouldBindJSON(&course); err != nil {
		c.JSON(http.StatusBadRequest, formatValidationErrors(err))
		return
	}

	if err := h.CourseUsecase.CreateCourse(c.Request.Context(), &course); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, course)
}

func (h *Handler) GetAllCourses(c *gin.Context) {
	courses, err := h.CourseUsecase.GetAllCourses(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, courses)
}

func (h *Handler) GetCourseByID(c *gin.Context) {
	course, err := h.CourseUsecase.GetCourseByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, course)
}

// ========== STUDENT HANDLERS ==========

func (h *Handler) Register(c *gin.Context) {
	var creds struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, formatValidationErrors(err))
		return
	}

	if err := h.AuthUsecase.Register(c.Request.Context(), creds.Username, creds.Password); err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Student registered successfully"})
}

func (h *Handler) Login(c *gin.Context) {
	var creds struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, formatValidationErrors(err))
		return
	}

	student, token, err := h.AuthUsecase.Login(c.Request.Context(), creds.Username, creds.Password)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.SetCookie("token", token, 86400, "/", "", false, false)

	c.JSON(http.StatusOK, gin.H{
		"id":       student.ID.Hex(),
		"username": student.Username,
		"token":    token,
	})
}

func (h *Handler) GetProfile(c *gin.Context) {
	studentID, err := getStudentID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	student, err := h.AuthUsecase.GetStudentByID(c.Request.Context(), studentID)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, student)
}

// ========== ENROLLMENT HANDLERS ==========

func (h *Handler) Enroll(c *gin.Context) {
	var req struct {
		StudentID string `json:"studentId" binding:"required"`
		CourseID  string `json:"courseId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, formatValidationErrors(err))
		return
	}

	if err := h.CourseUsecase.EnrollStudent(c.Request.Context(), req.StudentID, req.CourseID); err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Enrolled successfully"})
}

func (h *Handler) GetEnrolledCourses(c *gin.Context) {
	courses, err := h.CourseUsecase.GetEnrolledCourses(c.Request.Context(), c.Param("studentId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, courses)
}

// ========== PROGRESS HANDLERS ==========

func (h *Handler) SaveProgress(c *gin.Context) {
	var progress domain.Progress
	if err := c.ShouldBindJSON(&progress); err != nil {
		c.JSON(http.StatusBadRequest, formatValidationErrors(err))
		return
	}

	saved, err := h.ProgressUsecase.SaveProgress(c.Request.Context(), &progress)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, saved)
}

func (h *Handler) GetStudentProgress(c *gin.Context) {
	records, err := h.ProgressUsecase.GetStudentProgress(c.Request.Context(), c.Param("studentId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, records)
}

func (h *Handler) GetCourseProgress(c *gin.Context) {
	progress, err := h.ProgressUsecase.GetCourseProgress(
		c.Request.Context(), c.Param("studentId"), c.Param("courseId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, progress)
}
