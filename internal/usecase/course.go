package usecase

import (
	"context"
	"errors"
	"time"

	"coursehub-backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type courseUsecase struct {
	courseRepo  domain.CourseRepository
	studentRepo domain.StudentRepository
}

func NewCourseUsecase(cr domain.CourseRepository, sr domain.StudentRepository) domain.CourseUsecase {
	return &courseUsecase{
		courseRepo:  cr,
		studentRepo: sr,
	}
}

func (uc *courseUsecase) CreateCourse(ctx context.Context, course *domain.Course) error {
	if course.Lessons == nil {
		course.Lessons = []domain.Lesson{}
	}
	course.CreatedAt = time.Now()
	return uc.courseRepo.Create(ctx, course)
}

func (uc *courseUsecase) GetAllCourses(ctx context.Context) ([]domain.Course, error) {
	return uc.courseRepo.GetAll(ctx)
}

func (uc *courseUsecase) GetCourseByID(ctx context.Context, id string) (*domain.Course, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id cannot match any document.
		return nil, domain.ErrCourseNotFound
	}
	return uc.courseRepo.GetByID(ctx, objID)
}

// ========== ENROLLMENT ==========

func (uc *courseUsecase) EnrollStudent(ctx context.Context, studentID, courseID string) error {
	studentObjID, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return domain.ErrStudentNotFound
	}
	courseObjID, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return domain.ErrCourseNotFound
	}

	if _, err := uc.studentRepo.GetByID(ctx, studentObjID); err != nil {
		return err
	}
	if _, err := uc.courseRepo.GetByID(ctx, courseObjID); err != nil {
		return err
	}

	// Membership check and append happen in one conditional write.
	return uc.studentRepo.AddEnrollment(ctx, studentObjID, courseObjID)
}

// GetEnrolledCourses expands the student's enrolledCourses references into
// full course documents. An unknown student yields an empty list, not a
// not-found.
func (uc *courseUsecase) GetEnrolledCourses(ctx context.Context, studentID string) ([]domain.Course, error) {
	studentObjID, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return []domain.Course{}, nil
	}

	student, err := uc.studentRepo.GetByID(ctx, studentObjID)
	if errors.Is(err, domain.ErrStudentNotFound) {
		return []domain.Course{}, nil
	}
	if err != nil {
		return nil, err
	}

	return uc.courseRepo.GetByIDs(ctx, student.EnrolledCourses)
}
