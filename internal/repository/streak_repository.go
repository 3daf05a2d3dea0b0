package repository

import (
	"errors"

	"github.com/lakshya-prep/lakshya/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StreakRepository exposes the primitives the streak ledger's
// optimistic-concurrency loop needs: a plain read, a create-if-absent, and a
// version-guarded update. Both writes report whether they actually applied so
// the ledger can detect a racing writer and retry.
type StreakRepository interface {
	Find(userID string) (*model.UserStreak, error)
	Insert(streak *model.UserStreak) (bool, error)
	UpdateConditional(streak *model.UserStreak, expectedVersion int64) (bool, error)
}

type streakRepository struct {
	db *gorm.DB
}

func NewStreakRepository(db *gorm.DB) StreakRepository {
	return &streakRepository{db: db}
}

// Find returns (nil, nil) when the user has no streak row yet.
func (r *streakRepository) Find(userID string) (*model.UserStreak, error) {
	var streak model.UserStreak
	err := r.db.First(&streak, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &streak, nil
}

// Insert creates the row only if it does not exist. Returns false when a
// concurrent writer got there first.
func (r *streakRepository) Insert(streak *model.UserStreak) (bool, error) {
	streak.Version = 1
	tx := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(streak)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

// UpdateConditional applies the new state only if the stored version still
// matches expectedVersion. Returns false on a lost race.
func (r *streakRepository) UpdateConditional(streak *model.UserStreak, expectedVersion int64) (bool, error) {
	tx := r.db.Model(&model.UserStreak{}).
		Where("user_id = ? AND version = ?", streak.UserID, expectedVersion).
		Updates(map[string]interface{}{
			"streak_count":     streak.StreakCount,
			"last_streak_date": streak.LastStreakDate,
			"version":          expectedVersion + 1,
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}
