package repository

import (
	"context"
	"errors"
	"time"

	"github.com/careermind/interviewprep/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const interviewQuestionsCollection = "interview_questions"

// questionDocument mirrors the interview_questions collection layout.
type questionDocument struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Question         string             `bson:"question"`
	Category         string             `bson:"category"`
	Type             string             `bson:"type"`
	Difficulty       string             `bson:"difficulty"`
	Tags             []string           `bson:"tags"`
	ExpectedKeywords []string           `bson:"expectedKeywords"`
	CreatedAt        time.Time          `bson:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt"`
}

func (d questionDocument) toModel() model.Question {
	return model.Question{
		ID:               d.ID.Hex(),
		Question:         d.Question,
		Category:         d.Category,
		Type:             d.Type,
		Difficulty:       d.Difficulty,
		Tags:             d.Tags,
		ExpectedKeywords: d.ExpectedKeywords,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

type mongoQuestionRepository struct {
	coll *mongo.Collection
}

func NewMongoQuestionRepository(db *mongo.Database) QuestionRepository {
	return &mongoQuestionRepository{coll: db.Collection(interviewQuestionsCollection)}
}

func (r *mongoQuestionRepository) Create(ctx context.Context, question *model.Question) error {
	now := time.Now().UTC()
	doc := questionDocument{
		Question:         question.Question,
		Category:         question.Category,
		Type:             question.Type,
		Difficulty:       question.Difficulty,
		Tags:             question.Tags,
		ExpectedKeywords: question.ExpectedKeywords,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		question.ID = oid.Hex()
	}
	question.CreatedAt = now
	question.UpdatedAt = now
	return nil
}

func (r *mongoQuestionRepository) FindByID(ctx context.Context, id string) (*model.Question, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Not an ObjectID, so it cannot name a document in this collection.
		return nil, ErrNotFound
	}
	var doc questionDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	q := doc.toModel()
	return &q, nil
}

func (r *mongoQuestionRepository) FindAll(ctx context.Context, filter QuestionFilter) ([]model.Question, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Difficulty != "" {
		query["difficulty"] = filter.Difficulty
	}
	cur, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var docs []questionDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	questions := make([]model.Question, 0, len(docs))
	for _, d := range docs {
		questions = append(questions, d.toModel())
	}
	return questions, nil
}

func (r *mongoQuestionRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.D{})
}
