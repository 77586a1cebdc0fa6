package usecase

import (
	"context"
	"errors"
	"time"

	"coursehub-backend/internal/domain"
	"coursehub-backend/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type authUsecase struct {
	studentRepo domain.StudentRepository
}

func NewAuthUsecase(sr domain.StudentRepository) domain.AuthUsecase {
	return &authUsecase{studentRepo: sr}
}

func (uc *authUsecase) Register(ctx context.Context, username, password string) error {
	existing, err := uc.studentRepo.GetByUsername(ctx, username)
	if err != nil && !errors.Is(err, domain.ErrStudentNotFound) {
		return err
	}
	if existing != nil {
		return domain.ErrUsernameTaken
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	student := &domain.Student{
		Username:        username,
		Password:        hashed,
		EnrolledCourses: []primitive.ObjectID{},
		CreatedAt:       time.Now(),
	}

	// The unique index on username backstops the pre-check above; a racing
	// duplicate insert still comes back as ErrUsernameTaken.
	return uc.studentRepo.Create(ctx, student)
}

func (uc *authUsecase) Login(ctx context.Context, username, password string) (*domain.Student, string, error) {
	student, err := uc.studentRepo.GetByUsername(ctx, username)
	if errors.Is(err, domain.ErrStudentNotFound) {
		return nil, "", domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if !utils.CheckPasswordHash(password, student.Password) {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(student.ID.Hex(), student.Username)
	if err != nil {
		return nil, "", err
	}
	return student, token, nil
}

func (uc *authUsecase) GetStudentByID(ctx context.Context, id primitive.ObjectID) (*domain.Student, error) {
	return uc.studentRepo.GetByID(ctx, id)
}
