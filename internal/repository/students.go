package repository

import (
	"context"
	"coursehub-backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type studentRepo struct {
	db *mongo.Database
}

func NewStudentRepository(db *mongo.Database) domain.StudentRepository {
	return &studentRepo{db}
}

func (r *studentRepo) collection() *mongo.Collection {
	return r.db.Collection("students")
}

func (r *studentRepo) Create(ctx context.Context, student *domain.Student) error {
	res, err := r.collection().InsertOne(ctx, student)
	if mongo.IsDuplicateKeyError(err) {
		// unique index on username, see config.ConnectDB
		return domain.ErrUsernameTaken
	}
	if err != nil {
		return err
	}
	student.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *studentRepo) GetByUsername(ctx context.Context, username string) (*domain.Student, error) {
	var student domain.Student
	err := r.collection().FindOne(ctx, bson.M{"username": username}).Decode(&student)
	if err == mongo.ErrNoDocuments {
		return nil, domain.ErrStudentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Student, error) {
	var student domain.Student
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&student)
	if err == mongo.ErrNoDocuments {
		return nil, domain.ErrStudentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// AddEnrollment appends courseID in a single conditional update: the filter
// only matches while courseID is absent from enrolledCourses, so two
// concurrent enrolls cannot both append.
func (r *studentRepo) AddEnrollment(ctx context.Context, studentID, courseID primitive.ObjectID) error {
	filter := bson.M{
		"_id":             studentID,
		"enrolledCourses": bson.M{"$ne": courseID},
	}
	update := bson.M{"$addToSet": bson.M{"enrolledCourses": courseID}}

	res, err := r.collection().UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		// The student exists (caller checked), so the filter missed on
		// the membership condition.
		return domain.ErrAlreadyEnrolled
	}
	return nil
}
