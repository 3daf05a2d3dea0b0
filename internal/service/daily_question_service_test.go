package service

import (
	"errors"
	"testing"
	"time"

	"github.com/lakshya-prep/lakshya/internal/model"
)

func newDailyFixture(t *testing.T, now time.Time, eligible int) (*dailyQuestionService, *fakeSolveRepo, *fakeStreakRepo) {
	t.Helper()
	questions := newFakeQuestionRepo()
	for i := 0; i < eligible; i++ {
		q := mcq("daily-"+string(rune('a'+i)), "Reasoning", 4, 1)
		serial := i
		q.DailySerial = &serial
		questions.questions[q.ID] = q
	}
	// Bank questions without a serial stay out of the rotation.
	questions.questions["q-bank"] = mcq("q-bank", "Maths", 4, 0)

	solves := newFakeSolveRepo()
	streaks := newFakeStreakRepo()
	svc := NewDailyQuestionService(questions, solves, streaks).(*dailyQuestionService)
	svc.now = func() time.Time { return now }
	return svc, solves, streaks
}

func TestDailyIndex(t *testing.T) {
	tests := []struct {
		name  string
		now   time.Time
		total int64
		want  int
	}{
		{name: "epoch", now: time.Unix(0, 0), total: 5, want: 0},
		{name: "wraps by pool size", now: time.Unix(7*86400, 0), total: 5, want: 2},
		{name: "time of day is irrelevant", now: time.Unix(7*86400+23*3600, 0), total: 5, want: 2},
		{name: "next day advances", now: time.Unix(8*86400, 0), total: 5, want: 3},
		{name: "single question pool", now: time.Unix(1234*86400, 0), total: 1, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dailyIndex(tt.now, tt.total); got != tt.want {
				t.Errorf("dailyIndex = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTodayQuestionDeterministicSelection(t *testing.T) {
	// 2025-03-10 is day 20157 since the epoch; 20157 % 5 picks serial 2.
	svc, _, _ := newDailyFixture(t, streakNow, 5)

	first, err := svc.TodayQuestion("")
	if err != nil {
		t.Fatalf("TodayQuestion: %v", err)
	}
	if first.Question.ID != "daily-c" {
		t.Errorf("question = %s, want daily-c (serial 2)", first.Question.ID)
	}
	if len(first.Question.Options) != 4 {
		t.Errorf("options = %v, want all 4", first.Question.Options)
	}

	// Same day, different caller: identical question.
	second, err := svc.TodayQuestion("user-9")
	if err != nil {
		t.Fatalf("TodayQuestion: %v", err)
	}
	if second.Question.ID != first.Question.ID {
		t.Errorf("selection differs across callers: %s vs %s", second.Question.ID, first.Question.ID)
	}

	// Anonymous callers get zeroed solve state.
	if first.HasSolved || first.WasCorrect || first.Streak != 0 || first.Attempts != 0 {
		t.Errorf("anonymous state = %+v, want zeroed", first)
	}
}

func TestTodayQuestionMergesSolveState(t *testing.T) {
	tests := []struct {
		name           string
		solve          *model.DailySolve
		wantHasSolved  bool
		wantWasCorrect bool
		wantAttempts   int
	}{
		{
			name: "correct solve locks the day",
			solve: &model.DailySolve{
				UserID: "user-1", Date: "2025-03-10", IsCorrect: true, Attempts: 2,
			},
			wantHasSolved:  true,
			wantWasCorrect: true,
			wantAttempts:   2,
		},
		{
			name: "wrong attempts leave the day open",
			solve: &model.DailySolve{
				UserID: "user-1", Date: "2025-03-10", IsCorrect: false, Attempts: 3,
			},
			wantAttempts: 3,
		},
		{
			name: "yesterday's solve does not count",
			solve: &model.DailySolve{
				UserID: "user-1", Date: "2025-03-09", IsCorrect: true, Attempts: 1,
			},
		},
		{name: "no solve"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, solves, streaks := newDailyFixture(t, streakNow, 5)
			if tt.solve != nil {
				solves.Save(tt.solve)
			}
			streaks.rows["user-1"] = model.UserStreak{
				UserID: "user-1", StreakCount: 4, LastStreakDate: "2025-03-09", Version: 1,
			}

			got, err := svc.TodayQuestion("user-1")
			if err != nil {
				t.Fatalf("TodayQuestion: %v", err)
			}
			if got.HasSolved != tt.wantHasSolved {
				t.Errorf("has solved = %v, want %v", got.HasSolved, tt.wantHasSolved)
			}
			if got.WasCorrect != tt.wantWasCorrect {
				t.Errorf("was correct = %v, want %v", got.WasCorrect, tt.wantWasCorrect)
			}
			if got.Attempts != tt.wantAttempts {
				t.Errorf("attempts = %d, want %d", got.Attempts, tt.wantAttempts)
			}
			if got.Streak != 4 {
				t.Errorf("streak = %d, want 4", got.Streak)
			}
		})
	}
}

func TestTodayQuestionEmptyPool(t *testing.T) {
	svc, _, _ := newDailyFixture(t, streakNow, 0)

	if _, err := svc.TodayQuestion("user-1"); !errors.Is(err, ErrNoDailyQuestions) {
		t.Errorf("err = %v, want ErrNoDailyQuestions", err)
	}
}
