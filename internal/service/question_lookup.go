package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/lakshya-prep/lakshya/internal/cache"
	"github.com/lakshya-prep/lakshya/internal/model"
	"github.com/lakshya-prep/lakshya/internal/repository"
	"github.com/rs/zerolog/log"
)

// lookupBatchSize caps how many question ids one storage round trip may
// resolve. Larger id sets are chunked and merged.
const lookupBatchSize = 10

const questionCacheTTL = 6 * time.Hour

// QuestionLookup resolves question ids to records in batches. Missing ids are
// simply absent from the returned map, never an error.
type QuestionLookup interface {
	Resolve(ctx context.Context, ids []string) (map[string]model.Question, error)
}

type questionLookup struct {
	questionRepo repository.QuestionRepository
	redis        *cache.RedisClient // nil disables caching
}

func NewQuestionLookup(questionRepo repository.QuestionRepository, redis *cache.RedisClient) QuestionLookup {
	return &questionLookup{questionRepo: questionRepo, redis: redis}
}

// chunkIDs splits ids into slices of at most size elements, preserving order.
func chunkIDs(ids []string, size int) [][]string {
	var chunks [][]string
	for i := 0; i < len(ids); i += size {
		end := i + size
		if end > len(ids) {
			end = len(ids)
		}
		chunks = append(chunks, ids[i:end])
	}
	return chunks
}

func (l *questionLookup) Resolve(ctx context.Context, ids []string) (map[string]model.Question, error) {
	resolved := make(map[string]model.Question, len(ids))
	if len(ids) == 0 {
		return resolved, nil
	}

	missing := l.fromCache(ctx, ids, resolved)

	for _, chunk := range chunkIDs(missing, lookupBatchSize) {
		questions, err := l.questionRepo.FindByIDs(chunk)
		if err != nil {
			return nil, err
		}
		for _, q := range questions {
			resolved[q.ID] = q
		}
		l.toCache(ctx, questions)
	}
	return resolved, nil
}

// fromCache fills resolved with cache hits and returns the ids still missing.
// Any cache failure degrades to a full storage read.
func (l *questionLookup) fromCache(ctx context.Context, ids []string, resolved map[string]model.Question) []string {
	if l.redis == nil {
		return ids
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = questionCacheKey(id)
	}
	vals, err := l.redis.MGet(ctx, keys...)
	if err != nil {
		log.Warn().Err(err).Msg("Question cache read failed, falling back to storage")
		return ids
	}

	var missing []string
	for i, raw := range vals {
		if raw == "" {
			missing = append(missing, ids[i])
			continue
		}
		var q model.Question
		if err := json.Unmarshal([]byte(raw), &q); err != nil {
			missing = append(missing, ids[i])
			continue
		}
		resolved[q.ID] = q
	}
	return missing
}

func (l *questionLookup) toCache(ctx context.Context, questions []model.Question) {
	if l.redis == nil || len(questions) == 0 {
		return
	}
	pairs := make(map[string]string, len(questions))
	for _, q := range questions {
		raw, err := json.Marshal(q)
		if err != nil {
			continue
		}
		pairs[questionCacheKey(q.ID)] = string(raw)
	}
	if err := l.redis.SetAll(ctx, pairs, questionCacheTTL); err != nil {
		log.Warn().Err(err).Msg("Question cache write failed")
	}
}

func questionCacheKey(id string) string {
	return "question:" + id
}
