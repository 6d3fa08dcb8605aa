package repository

import (
	"context"
	"errors"

	"github.com/lshigami/toeic-practice-api/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HistoryRepository interface {
	Upsert(ctx context.Context, history *model.History) (created bool, err error)
	FindSaveSlot(ctx context.Context, userID, testID uint) (*model.History, error)
	FindByID(ctx context.Context, id uint) (*model.History, error)
	FindSubmittedByUser(ctx context.Context, userID uint, limit int) ([]model.History, error)
}

type historyRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

var upsertColumns = []string{"Answers", "PartIDs", "Type", "Status", "PracticeDuration", "ExamDuration", "SaveSlot", "CreatedAt"}

// Upsert overwrites the user's save row for the test if there is one, otherwise inserts.
// A concurrent insert of the same save row fails on the save_slot unique index; the
// loser retries once and then finds the winner's row.
func (r *historyRepository) Upsert(ctx context.Context, history *model.History) (bool, error) {
	created, err := r.upsertOnce(ctx, history)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		created, err = r.upsertOnce(ctx, history)
	}
	return created, err
}

func (r *historyRepository) upsertOnce(ctx context.Context, history *model.History) (bool, error) {
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx.Where("user_id = ? AND test_id = ? AND status = ?", history.UserID, history.TestID, model.HistoryStatusSave)
		if tx.Dialector.Name() != "sqlite" {
			query = query.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var existing model.History
		err := query.Order("create_at DESC, id DESC").First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			history.ID = 0
			created = true
			return tx.Create(history).Error
		}
		if err != nil {
			return err
		}

		history.ID = existing.ID
		return tx.Model(&existing).Select(upsertColumns).Updates(history).Error
	})
	return created, err
}

func (r *historyRepository) FindSaveSlot(ctx context.Context, userID, testID uint) (*model.History, error) {
	var history model.History
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND test_id = ? AND status = ?", userID, testID, model.HistoryStatusSave).
		Order("create_at DESC, id DESC").
		First(&history).Error
	if err != nil {
		return nil, err
	}
	return &history, nil
}

func (r *historyRepository) FindByID(ctx context.Context, id uint) (*model.History, error) {
	var history model.History
	if err := r.db.WithContext(ctx).First(&history, id).Error; err != nil {
		return nil, err
	}
	return &history, nil
}

func (r *historyRepository) FindSubmittedByUser(ctx context.Context, userID uint, limit int) ([]model.History, error) {
	var histories []model.History
	query := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, model.HistoryStatusSubmit).
		Order("create_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&histories).Error
	return histories, err
}
