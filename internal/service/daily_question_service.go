package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/lakshya-prep/lakshya/internal/dto"
	"github.com/lakshya-prep/lakshya/internal/repository"
	"github.com/rs/zerolog/log"
)

var ErrNoDailyQuestions = errors.New("no daily questions seeded")

// DailyQuestionService picks the question of the day deterministically: the
// days-since-epoch count modulo the eligible pool size selects a serial
// number, so every client sees the same question without any stored rotation
// state.
type DailyQuestionService interface {
	TodayQuestion(userID string) (*dto.DailyQuestionDTO, error)
}

type dailyQuestionService struct {
	questionRepo repository.QuestionRepository
	solveRepo    repository.DailySolveRepository
	streakRepo   repository.StreakRepository
	now          Clock
}

func NewDailyQuestionService(
	questionRepo repository.QuestionRepository,
	solveRepo repository.DailySolveRepository,
	streakRepo repository.StreakRepository,
) DailyQuestionService {
	return &dailyQuestionService{
		questionRepo: questionRepo,
		solveRepo:    solveRepo,
		streakRepo:   streakRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func dailyIndex(now time.Time, total int64) int {
	days := now.Unix() / (24 * 60 * 60)
	return int(days % total)
}

// TodayQuestion returns today's question with the answer key stripped,
// merged with the caller's solve state. userID may be empty for anonymous
// callers, who get the question with zeroed state.
func (s *dailyQuestionService) TodayQuestion(userID string) (*dto.DailyQuestionDTO, error) {
	total, err := s.questionRepo.CountDailyEligible()
	if err != nil {
		return nil, fmt.Errorf("failed to count daily-eligible questions: %w", err)
	}
	if total == 0 {
		return nil, ErrNoDailyQuestions
	}

	now := s.now()
	question, err := s.questionRepo.FindByDailySerial(dailyIndex(now, total))
	if err != nil {
		log.Error().Err(err).Int64("eligible", total).Msg("TodayQuestion: serial lookup failed")
		return nil, fmt.Errorf("%w: daily serial missing", ErrQuestionNotFound)
	}

	out := dto.DailyQuestionDTO{
		Question: toSafeQuestion(*question),
	}

	if userID != "" {
		solve, err := s.solveRepo.Find(userID, dateString(now))
		if err != nil {
			return nil, fmt.Errorf("failed to read daily solve state: %w", err)
		}
		if solve != nil {
			out.WasCorrect = solve.IsCorrect
			out.Attempts = solve.Attempts
			// The day is locked only once answered correctly.
			out.HasSolved = solve.IsCorrect
		}

		streak, err := s.streakRepo.Find(userID)
		if err != nil {
			return nil, fmt.Errorf("failed to read streak: %w", err)
		}
		if streak != nil {
			out.Streak = streak.StreakCount
		}
	}

	return &out, nil
}
