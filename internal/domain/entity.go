package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LessonType string

const (
	TypeVideo LessonType = "video"
	TypePDF   LessonType = "pdf"
	TypeQuiz  LessonType = "quiz"
)

// Lesson lives inside its parent Course document; it has no identity of
// its own.
type Lesson struct {
	Title      string     `json:"title" bson:"title"`
	Type       LessonType `json:"type" bson:"type"` // open set: video, pdf, quiz, ...
	ContentURL string     `json:"contentUrl" bson:"contentUrl"`
}

// Course - immutable after creation, no update or delete route exists.
type Course struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Lessons     []Lesson           `json:"lessons" bson:"lessons"` // stored order is the supplied order
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

type Student struct {
	ID              primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Username        string               `json:"username" bson:"username"`
	Password        string               `json:"-" bson:"password"`
	EnrolledCourses []primitive.ObjectID `json:"enrolledCourses" bson:"enrolledCourses"`
	CreatedAt       time.Time            `json:"createdAt" bson:"createdAt"`
}

type QuizResult struct {
	QuizID string `json:"quizId" bson:"quizId"`
	Score  int    `json:"score" bson:"score"`
	Total  int    `json:"total" bson:"total"`
}

// Progress - completion state for one (student, course) pair. Saves fully
// replace completedLessons, quizResults and completionPercentage; the
// percentage is caller-supplied, not derived from completedLessons.
type Progress struct {
	ID                   primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	StudentID            primitive.ObjectID `json:"studentId" bson:"studentId"`
	CourseID             primitive.ObjectID `json:"courseId" bson:"courseId"`
	CompletedLessons     []string           `json:"completedLessons" bson:"completedLessons"`
	QuizResults          []QuizResult       `json:"quizResults" bson:"quizResults"`
	CompletionPercentage float64            `json:"completionPercentage" bson:"completionPercentage"`
	UpdatedAt            time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// EmptyProgress is what a progress lookup returns when nothing has been
// saved yet: empty lists and a zero percentage, never a not-found.
func EmptyProgress(studentID, courseID primitive.ObjectID) *Progress {
	return &Progress{
		StudentID:            studentID,
		CourseID:             courseID,
		CompletedLessons:     []string{},
		QuizResults:          []QuizResult{},
		CompletionPercentage: 0,
	}
}
