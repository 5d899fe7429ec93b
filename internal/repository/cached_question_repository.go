package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/careermind/interviewprep/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const questionCacheKeyPrefix = "interview:question:"

// cachedQuestionRepository is a read-through Redis cache in front of another
// QuestionRepository. Questions are immutable once seeded, so entries are only
// ever expired by TTL. Redis failures degrade to the underlying store.
type cachedQuestionRepository struct {
	next  QuestionRepository
	redis *redis.Client
	ttl   time.Duration
}

func NewCachedQuestionRepository(next QuestionRepository, client *redis.Client, ttl time.Duration) QuestionRepository {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &cachedQuestionRepository{next: next, redis: client, ttl: ttl}
}

func questionCacheKey(id string) string {
	return questionCacheKeyPrefix + id
}

func (r *cachedQuestionRepository) Create(ctx context.Context, question *model.Question) error {
	return r.next.Create(ctx, question)
}

func (r *cachedQuestionRepository) FindByID(ctx context.Context, id string) (*model.Question, error) {
	key := questionCacheKey(id)
	raw, err := r.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var q model.Question
		if uErr := json.Unmarshal(raw, &q); uErr == nil {
			return &q, nil
		}
		log.Warn().Str("key", key).Msg("Discarding undecodable cached question")
	case !errors.Is(err, redis.Nil):
		log.Warn().Err(err).Str("questionID", id).Msg("Question cache read failed, using store")
	}

	q, err := r.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if data, mErr := json.Marshal(q); mErr == nil {
		if sErr := r.redis.Set(ctx, key, data, r.ttl).Err(); sErr != nil {
			log.Warn().Err(sErr).Str("questionID", id).Msg("Question cache write failed")
		}
	}
	return q, nil
}

func (r *cachedQuestionRepository) FindAll(ctx context.Context, filter QuestionFilter) ([]model.Question, error) {
	return r.next.FindAll(ctx, filter)
}

func (r *cachedQuestionRepository) Count(ctx context.Context) (int64, error) {
	return r.next.Count(ctx)
}
