package service

import (
	"fmt"
	"time"

	"github.com/lakshya-prep/lakshya/internal/dto"
	"github.com/lakshya-prep/lakshya/internal/model"
	"github.com/lakshya-prep/lakshya/internal/repository"
	"github.com/rs/zerolog/log"
)

// streakUpdateRetries bounds the optimistic-concurrency loop. Conflicts are
// expected only when the same user submits from two clients at once, so a
// handful of retries is plenty.
const streakUpdateRetries = 10

// Clock returns the current time; injectable so date-boundary behavior is
// testable.
type Clock func() time.Time

// StreakService owns the daily-question solve flow and the per-user streak
// ledger. A wrong answer never breaks a streak and never writes the streak
// row; a correct answer advances it exactly once per UTC day, race-free.
type StreakService interface {
	SubmitDailyAnswer(userID, questionID string, selectedIndex int) (*dto.DailySubmitResultDTO, error)
	CurrentStreak(userID string) (int, error)
}

type streakService struct {
	questionRepo repository.QuestionRepository
	streakRepo   repository.StreakRepository
	solveRepo    repository.DailySolveRepository
	grading      GradingService
	now          Clock
}

func NewStreakService(
	questionRepo repository.QuestionRepository,
	streakRepo repository.StreakRepository,
	solveRepo repository.DailySolveRepository,
	grading GradingService,
) StreakService {
	return &streakService{
		questionRepo: questionRepo,
		streakRepo:   streakRepo,
		solveRepo:    solveRepo,
		grading:      grading,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func dateString(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

func (s *streakService) SubmitDailyAnswer(userID, questionID string, selectedIndex int) (*dto.DailySubmitResultDTO, error) {
	now := s.now()
	today := dateString(now)

	// Once solved correctly, the day is locked: replays succeed without
	// re-grading or touching the streak.
	existing, err := s.solveRepo.Find(userID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to read daily solve state: %w", err)
	}
	if existing != nil && existing.IsCorrect {
		streak, err := s.storedStreak(userID)
		if err != nil {
			return nil, err
		}
		return &dto.DailySubmitResultDTO{
			Success:       true,
			IsCorrect:     true,
			NewStreak:     streak,
			Attempts:      existing.Attempts,
			AlreadySolved: true,
		}, nil
	}

	question, err := s.questionRepo.FindByID(questionID)
	if err != nil {
		log.Warn().Err(err).Str("questionID", questionID).Msg("SubmitDailyAnswer: question lookup failed")
		return nil, fmt.Errorf("%w: %s", ErrQuestionNotFound, questionID)
	}

	isCorrect, err := s.grading.EvaluateDailyAnswer(question, selectedIndex)
	if err != nil {
		return nil, err
	}

	attempts := 1
	if existing != nil {
		attempts = existing.Attempts + 1
	}
	solve := model.DailySolve{
		UserID:      userID,
		Date:        today,
		QuestionID:  questionID,
		IsCorrect:   isCorrect,
		Attempts:    attempts,
		SubmittedAt: now,
	}
	if err := s.solveRepo.Save(&solve); err != nil {
		return nil, fmt.Errorf("failed to record daily solve: %w", err)
	}

	newStreak := 0
	if isCorrect {
		newStreak, err = s.advanceStreak(userID, now)
		if err != nil {
			return nil, err
		}
	} else {
		newStreak, err = s.storedStreak(userID)
		if err != nil {
			return nil, err
		}
	}

	return &dto.DailySubmitResultDTO{
		Success:   true,
		IsCorrect: isCorrect,
		NewStreak: newStreak,
		Attempts:  attempts,
	}, nil
}

// advanceStreak is the serialized read-modify-write at the heart of the
// ledger: read state and version, compute the next streak from today and
// yesterday, conditionally write, and retry on a lost race. Same-day replay
// is idempotent.
func (s *streakService) advanceStreak(userID string, now time.Time) (int, error) {
	today := dateString(now)
	yesterday := dateString(now.AddDate(0, 0, -1))

	for attempt := 0; attempt < streakUpdateRetries; attempt++ {
		current, err := s.streakRepo.Find(userID)
		if err != nil {
			return 0, fmt.Errorf("failed to read streak: %w", err)
		}

		var next model.UserStreak
		next.UserID = userID
		next.LastStreakDate = today

		switch {
		case current == nil:
			next.StreakCount = 1
		case current.LastStreakDate == today:
			// Already counted today.
			next.StreakCount = current.StreakCount
		case current.LastStreakDate == yesterday:
			next.StreakCount = current.StreakCount + 1
		default:
			next.StreakCount = 1
		}

		var applied bool
		if current == nil {
			applied, err = s.streakRepo.Insert(&next)
		} else {
			applied, err = s.streakRepo.UpdateConditional(&next, current.Version)
		}
		if err != nil {
			return 0, fmt.Errorf("failed to write streak: %w", err)
		}
		if applied {
			return next.StreakCount, nil
		}
		log.Debug().Str("userID", userID).Int("retry", attempt+1).Msg("Streak write conflict, retrying")
	}
	return 0, fmt.Errorf("streak update for user %s did not converge after %d retries", userID, streakUpdateRetries)
}

func (s *streakService) storedStreak(userID string) (int, error) {
	current, err := s.streakRepo.Find(userID)
	if err != nil {
		return 0, fmt.Errorf("failed to read streak: %w", err)
	}
	if current == nil {
		return 0, nil
	}
	return current.StreakCount, nil
}

// CurrentStreak reports the user's streak, counting it as active only when
// the last correct solve was today or yesterday.
func (s *streakService) CurrentStreak(userID string) (int, error) {
	current, err := s.streakRepo.Find(userID)
	if err != nil {
		return 0, fmt.Errorf("failed to read streak: %w", err)
	}
	if current == nil || current.LastStreakDate == "" {
		return 0, nil
	}

	now := s.now()
	today := dateString(now)
	yesterday := dateString(now.AddDate(0, 0, -1))
	if current.LastStreakDate == today || current.LastStreakDate == yesterday {
		return current.StreakCount, nil
	}
	return 0, nil
}
