package usecase_test

import (
	"context"
	"testing"

	"coursehub-backend/internal/domain"
	"coursehub-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockCourseRepo struct {
	mock.Mock
}

func (m *MockCourseRepo) Create(ctx context.Context, course *domain.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockCourseRepo) GetAll(ctx context.Context) ([]domain.Course, error) {
	args := m.Called(ctx)
	courses, _ := args.Get(0).([]domain.Course)
	return courses, args.Error(1)
}

func (m *MockCourseRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Course, error) {
	args := m.Called(ctx, id)
	course, _ := args.Get(0).(*domain.Course)
	return course, args.Error(1)
}

func (m *MockCourseRepo) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Course, error) {
	args := m.Called(ctx, ids)
	courses, _ := args.Get(0).([]domain.Course)
	return courses, args.Error(1)
}

func TestGetCourseByIDMalformed(t *testing.T) {
	uc := usecase.NewCourseUsecase(new(MockCourseRepo), new(MockStudentRepo))

	_, err := uc.GetCourseByID(context.Background(), "definitely-not-hex")

	assert.ErrorIs(t, err, domain.ErrCourseNotFound)
}

func TestEnrollStudent(t *testing.T) {
	studentID := primitive.NewObjectID()
	courseID := primitive.NewObjectID()
	student := &domain.Student{ID: studentID, Username: "alice"}
	course := &domain.Course{ID: courseID, Title: "Intro to Go"}

	t.Run("appends when not yet enrolled", func(t *testing.T) {
		courseRepo := new(MockCourseRepo)
		studentRepo := new(MockStudentRepo)
		uc := usecase.NewCourseUsecase(courseRepo, studentRepo)

		studentRepo.On("GetByID", mock.Anything, studentID).Return(student, nil).Once()
		courseRepo.On("GetByID", mock.Anything, courseID).Return(course, nil).Once()
		studentRepo.On("AddEnrollment", mock.Anything, studentID, courseID).Return(nil).Once()

		err := uc.EnrollStudent(context.Background(), studentID.Hex(), courseID.Hex())

		assert.NoError(t, err)
		studentRepo.AssertExpectations(t)
	})

	t.Run("repeat enrollment conflicts", func(t *testing.T) {
		courseRepo := new(MockCourseRepo)
		studentRepo := new(MockStudentRepo)
		uc := usecase.NewCourseUsecase(courseRepo, studentRepo)

		studentRepo.On("GetByID", mock.Anything, studentID).Return(student, nil).Once()
		courseRepo.On("GetByID", mock.Anything, courseID).Return(course, nil).Once()
		studentRepo.On("AddEnrollment", mock.Anything, studentID, courseID).
			Return(domain.ErrAlreadyEnrolled).Once()

		err := uc.EnrollStudent(context.Background(), studentID.Hex(), courseID.Hex())

		assert.ErrorIs(t, err, domain.ErrAlreadyEnrolled)
	})

	t.Run("unknown student is not found", func(t *testing.T) {
		courseRepo := new(MockCourseRepo)
		studentRepo := new(MockStudentRepo)
		uc := usecase.NewCourseUsecase(courseRepo, studentRepo)

		studentRepo.On("GetByID", mock.Anything, studentID).
			Return(nil, domain.ErrStudentNotFound).Once()

		err := uc.EnrollStudent(context.Background(), studentID.Hex(), courseID.Hex())

		assert.ErrorIs(t, err, domain.ErrStudentNotFound)
		studentRepo.AssertNotCalled(t, "AddEnrollment", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("malformed student id is not found", func(t *testing.T) {
		uc := usecase.NewCourseUsecase(new(MockCourseRepo), new(MockStudentRepo))

		err := uc.EnrollStudent(context.Background(), "bogus", courseID.Hex())

		assert.ErrorIs(t, err, domain.ErrStudentNotFound)
	})

	t.Run("unknown course is not found", func(t *testing.T) {
		courseRepo := new(MockCourseRepo)
		studentRepo := new(MockStudentRepo)
		uc := usecase.NewCourseUsecase(courseRepo, studentRepo)

		studentRepo.On("GetByID", mock.Anything, studentID).Return(student, nil).Once()
		courseRepo.On("GetByID", mock.Anything, courseID).
			Return(nil, domain.ErrCourseNotFound).Once()

		err := uc.EnrollStudent(context.Background(), studentID.Hex(), courseID.Hex())

		assert.ErrorIs(t, err, domain.ErrCourseNotFound)
	})
}

func TestGetEnrolledCourses(t *testing.T) {
	t.Run("expands references into course documents", func(t *testing.T) {
		courseRepo := new(MockCourseRepo)
		studentRepo := new(MockStudentRepo)
		uc := usecase.NewCourseUsecase(courseRepo, studentRepo)

		courseID := primitive.NewObjectID()
		student := &domain.Student{
			ID:              primitive.NewObjectID(),
			Username:        "alice",
			EnrolledCourses: []primitive.ObjectID{courseID},
		}
		studentRepo.On("GetByID", mock.Anything, student.ID).Return(student, nil).Once()
		courseRepo.On("GetByIDs", mock.Anything, student.EnrolledCourses).
			Return([]domain.Course{{ID: courseID, Title: "Intro to Go"}}, nil).Once()

		courses, err := uc.GetEnrolledCourses(context.Background(), student.ID.Hex())

		assert.NoError(t, err)
		assert.Len(t, courses, 1)
		assert.Equal(t, "Intro to Go", courses[0].Title)
	})

	t.Run("unknown student yields empty list", func(t *testing.T) {
		courseRepo := new(MockCourseRepo)
		studentRepo := new(MockStudentRepo)
		uc := usecase.NewCourseUsecase(courseRepo, studentRepo)

		studentID := primitive.NewObjectID()
		studentRepo.On("GetByID", mock.Anything, studentID).
			Return(nil, domain.ErrStudentNotFound).Once()

		courses, err := uc.GetEnrolledCourses(context.Background(), studentID.Hex())

		assert.NoError(t, err)
		assert.Empty(t, courses)
		assert.NotNil(t, courses)
	})

	t.Run("malformed student id yields empty list", func(t *testing.T) {
		uc := usecase.NewCourseUsecase(new(MockCourseRepo), new(MockStudentRepo))

		courses, err := uc.GetEnrolledCourses(context.Background(), "bogus")

		assert.NoError(t, err)
		assert.Empty(t, courses)
	})
}
