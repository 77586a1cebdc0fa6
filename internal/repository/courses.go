package repository

import (
	"context"
	"coursehub-backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type courseRepo struct {
	db *mongo.Database
}

func NewCourseRepository(db *mongo.Database) domain.CourseRepository {
	return &courseRepo{db}
}

func (r *courseRepo) collection() *mongo.Collection {
	return r.db.Collection("courses")
}

func (r *courseRepo) Create(ctx context.Context, course *domain.Course) error {
	res, err := r.collection().InsertOne(ctx, course)
	if err != nil {
		return err
	}
	course.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *courseRepo) GetAll(ctx context.Context) ([]domain.Course, error) {
	cursor, err := r.collection().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	courses := []domain.Course{}
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Course, error) {
	var course domain.Course
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&course)
	if err == mongo.ErrNoDocuments {
		return nil, domain.ErrCourseNotFound
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepo) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Course, error) {
	if len(ids) == 0 {
		return []domain.Course{}, nil
	}

	cursor, err := r.collection().Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	courses := []domain.Course{}
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}
