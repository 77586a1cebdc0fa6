package usecase

import (
	"context"
	"time"

	"coursehub-backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type progressUsecase struct {
	progressRepo domain.ProgressRepository
}

func NewProgressUsecase(pr domain.ProgressRepository) domain.ProgressUsecase {
	return &progressUsecase{progressRepo: pr}
}

// SaveProgress upserts the (studentId, courseId) document, fully replacing
// completedLessons, quizResults and completionPercentage.
func (uc *progressUsecase) SaveProgress(ctx context.Context, progress *domain.Progress) (*domain.Progress, error) {
	if progress.CompletedLessons == nil {
		progress.CompletedLessons = []string{}
	}
	if progress.QuizResults == nil {
		progress.QuizResults = []domain.QuizResult{}
	}
	progress.UpdatedAt = time.Now()

	return uc.progressRepo.Upsert(ctx, progress)
}

func (uc *progressUsecase) GetStudentProgress(ctx context.Context, studentID string) ([]domain.Progress, error) {
	studentObjID, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return []domain.Progress{}, nil
	}
	return uc.progressRepo.GetByStudent(ctx, studentObjID)
}

// GetCourseProgress never reports not-found: when nothing has been saved for
// the pair it returns the empty-progress default shape.
func (uc *progressUsecase) GetCourseProgress(ctx context.Context, studentID, courseID string) (*domain.Progress, error) {
	studentObjID, _ := primitive.ObjectIDFromHex(studentID)
	courseObjID, _ := primitive.ObjectIDFromHex(courseID)

	progress, err := uc.progressRepo.GetByStudentAndCourse(ctx, studentObjID, courseObjID)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		return domain.EmptyProgress(studentObjID, courseObjID), nil
	}
	return progress, nil
}
