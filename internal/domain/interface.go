package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CourseRepository interface {
	Create(ctx context.Context, course *Course) error
	GetAll(ctx context.Context) ([]Course, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*Course, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]Course, error)
}

type StudentRepository interface {
	Create(ctx context.Context, student *Student) error
	GetByUsername(ctx context.Context, username string) (*Student, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*Student, error)
	// AddEnrollment appends courseID to the student's enrolledCourses only
	// if it is not already present. Returns ErrAlreadyEnrolled otherwise.
	AddEnrollment(ctx context.Context, studentID, courseID primitive.ObjectID) error
}

type ProgressRepository interface {
	// Upsert replaces the mutable fields of the document matching
	// (studentID, courseID), inserting it if absent, and returns the
	// resulting document.
	Upsert(ctx context.Context, progress *Progress) (*Progress, error)
	GetByStudent(ctx context.Context, studentID primitive.ObjectID) ([]Progress, error)
	GetByStudentAndCourse(ctx context.Context, studentID, courseID primitive.ObjectID) (*Progress, error)
}

type AuthUsecase interface {
	Register(ctx context.Context, username, password string) error
	// Login returns the authenticated student and a signed session token.
	Login(ctx context.Context, username, password string) (*Student, string, error)
	GetStudentByID(ctx context.Context, id primitive.ObjectID) (*Student, error)
}

type CourseUsecase interface {
	CreateCourse(ctx context.Context, course *Course) error
	GetAllCourses(ctx context.Context) ([]Course, error)
	GetCourseByID(ctx context.Context, id string) (*Course, error)
	EnrollStudent(ctx context.Context, studentID, courseID string) error
	GetEnrolledCourses(ctx context.Context, studentID string) ([]Course, error)
}

type ProgressUsecase interface {
	SaveProgress(ctx context.Context, progress *Progress) (*Progress, error)
	GetStudentProgress(ctx context.Context, studentID string) ([]Progress, error)
	GetCourseProgress(ctx context.Context, studentID, courseID string) (*Progress, error)
}
