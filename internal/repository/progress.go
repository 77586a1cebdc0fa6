package repository

import (
	"context"
	"coursehub-backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type progressRepo struct {
	db *mongo.Database
}

func NewProgressRepository(db *mongo.Database) domain.ProgressRepository {
	return &progressRepo{db}
}

func (r *progressRepo) collection() *mongo.Collection {
	return r.db.Collection("progress")
}

// Upsert overwrites the three mutable fields of the (studentId, courseId)
// document, inserting it when absent. One FindOneAndUpdate, no
// read-then-write.
func (r *progressRepo) Upsert(ctx context.Context, progress *domain.Progress) (*domain.Progress, error) {
	filter := bson.M{
		"studentId": progress.StudentID,
		"courseId":  progress.CourseID,
	}
	update := bson.M{
		"$set": bson.M{
			"completedLessons":     progress.CompletedLessons,
			"quizResults":          progress.QuizResults,
			"completionPercentage": progress.CompletionPercentage,
			"updatedAt":            progress.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"studentId": progress.StudentID,
			"courseId":  progress.CourseID,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var saved domain.Progress
	if err := r.collection().FindOneAndUpdate(ctx, filter, update, opts).Decode(&saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *progressRepo) GetByStudent(ctx context.Context, studentID primitive.ObjectID) ([]domain.Progress, error) {
	cursor, err := r.collection().Find(ctx, bson.M{"studentId": studentID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []domain.Progress{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// GetByStudentAndCourse returns nil, nil when no document exists; callers
// substitute the empty-progress default.
func (r *progressRepo) GetByStudentAndCourse(ctx context.Context, studentID, courseID primitive.ObjectID) (*domain.Progress, error) {
	filter := bson.M{"studentId": studentID, "courseId": courseID}

	var progress domain.Progress
	err := r.collection().FindOne(ctx, filter).Decode(&progress)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &progress, nil
}
