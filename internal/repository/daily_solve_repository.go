package repository

import (
	"errors"

	"github.com/lakshya-prep/lakshya/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DailySolveRepository interface {
	Find(userID, date string) (*model.DailySolve, error)
	Save(solve *model.DailySolve) error
}

type dailySolveRepository struct {
	db *gorm.DB
}

func NewDailySolveRepository(db *gorm.DB) DailySolveRepository {
	return &dailySolveRepository{db: db}
}

// Find returns (nil, nil) when the user has not attempted today's question.
func (r *dailySolveRepository) Find(userID, date string) (*model.DailySolve, error) {
	var solve model.DailySolve
	err := r.db.First(&solve, "user_id = ? AND date = ?", userID, date).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &solve, nil
}

func (r *dailySolveRepository) Save(solve *model.DailySolve) error {
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(solve).Error
}
