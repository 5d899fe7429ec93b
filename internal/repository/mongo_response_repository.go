package repository

import (
	"context"
	"time"

	"github.com/careermind/interviewprep/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const interviewResponsesCollection = "interview_responses"

type feedbackDocument struct {
	Score           int      `bson:"score"`
	Strengths       []string `bson:"strengths"`
	Weaknesses      []string `bson:"weaknesses"`
	Feedback        string   `bson:"feedback"`
	Suggestions     []string `bson:"suggestions"`
	KeywordsCovered []string `bson:"keywordsCovered"`
}

type responseDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UserID     string             `bson:"userId"`
	QuestionID string             `bson:"questionId"`
	Question   string             `bson:"question"`
	Category   string             `bson:"category"`
	Answer     string             `bson:"answer"`
	Feedback   feedbackDocument   `bson:"feedback"`
	TimeSpent  int                `bson:"timeSpent"`
	CreatedAt  time.Time          `bson:"createdAt"`
}

func (d responseDocument) toModel() model.ResponseRecord {
	fb := model.Feedback{
		Score:           d.Feedback.Score,
		Strengths:       d.Feedback.Strengths,
		Weaknesses:      d.Feedback.Weaknesses,
		Feedback:        d.Feedback.Feedback,
		Suggestions:     d.Feedback.Suggestions,
		KeywordsCovered: d.Feedback.KeywordsCovered,
	}
	fb.Normalize()
	return model.ResponseRecord{
		ID:         d.ID.Hex(),
		UserID:     d.UserID,
		QuestionID: d.QuestionID,
		Question:   d.Question,
		Category:   d.Category,
		Answer:     d.Answer,
		Feedback:   fb,
		TimeSpent:  d.TimeSpent,
		CreatedAt:  d.CreatedAt,
	}
}

type mongoResponseRepository struct {
	coll *mongo.Collection
}

func NewMongoResponseRepository(db *mongo.Database) ResponseRepository {
	return &mongoResponseRepository{coll: db.Collection(interviewResponsesCollection)}
}

func (r *mongoResponseRepository) Create(ctx context.Context, record *model.ResponseRecord) error {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	doc := responseDocument{
		UserID:     record.UserID,
		QuestionID: record.QuestionID,
		Question:   record.Question,
		Category:   record.Category,
		Answer:     record.Answer,
		Feedback: feedbackDocument{
			Score:           record.Feedback.Score,
			Strengths:       record.Feedback.Strengths,
			Weaknesses:      record.Feedback.Weaknesses,
			Feedback:        record.Feedback.Feedback,
			Suggestions:     record.Feedback.Suggestions,
			KeywordsCovered: record.Feedback.KeywordsCovered,
		},
		TimeSpent: record.TimeSpent,
		CreatedAt: record.CreatedAt,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		record.ID = oid.Hex()
	}
	return nil
}

func (r *mongoResponseRepository) FindByUser(ctx context.Context, userID string, limit int) ([]model.ResponseRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cur, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	var docs []responseDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	records := make([]model.ResponseRecord, 0, len(docs))
	for _, d := range docs {
		records = append(records, d.toModel())
	}
	return records, nil
}
