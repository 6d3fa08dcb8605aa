package repository

import (
	"context"

	"github.com/lshigami/toeic-practice-api/internal/model"
	"gorm.io/gorm"
)

type TestRepository interface {
	Create(ctx context.Context, test *model.Test, parts []model.Part) error
	FindByID(ctx context.Context, id uint) (*model.Test, error)
	FindAll(ctx context.Context) ([]model.Test, error)
	FindParts(ctx context.Context, testID uint) ([]model.Part, error)
	FindPart(ctx context.Context, testID, partID uint) (*model.Part, error)
	FindPartsWithContent(ctx context.Context, partIDs []uint) ([]model.Part, error)
	CountQuestionsByPart(ctx context.Context, partIDs []uint) (map[uint]int, error)
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

// Create stores the test, its parts with their media, questions and answers, and the
// test-part links in one transaction.
func (r *testRepository) Create(ctx context.Context, test *model.Test, parts []model.Part) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(test).Error; err != nil {
			return err
		}
		for i := range parts {
			part := &parts[i]
			medias := part.Medias
			part.Medias = nil
			if err := tx.Create(part).Error; err != nil {
				return err
			}
			for j := range medias {
				medias[j].PartID = part.ID
				for k := range medias[j].Questions {
					medias[j].Questions[k].PartID = part.ID
				}
			}
			if len(medias) > 0 {
				if err := tx.Create(&medias).Error; err != nil {
					return err
				}
			}
			part.Medias = medias
			if err := tx.Create(&model.TestPart{TestID: test.ID, PartID: part.ID}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *testRepository) FindByID(ctx context.Context, id uint) (*model.Test, error) {
	var test model.Test
	if err := r.db.WithContext(ctx).First(&test, id).Error; err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) FindAll(ctx context.Context) ([]model.Test, error) {
	var tests []model.Test
	err := r.db.WithContext(ctx).Order("id ASC").Find(&tests).Error
	return tests, err
}

func (r *testRepository) linkedPartIDs(ctx context.Context, testID uint) *gorm.DB {
	return r.db.WithContext(ctx).Model(&model.TestPart{}).Select("part_id").Where("test_id = ?", testID)
}

// FindParts returns the parts linked to a test ordered by their label.
func (r *testRepository) FindParts(ctx context.Context, testID uint) ([]model.Part, error) {
	var parts []model.Part
	err := r.db.WithContext(ctx).
		Where("id IN (?)", r.linkedPartIDs(ctx, testID)).
		Order("part_order ASC, id ASC").
		Find(&parts).Error
	return parts, err
}

func (r *testRepository) FindPart(ctx context.Context, testID, partID uint) (*model.Part, error) {
	var part model.Part
	err := r.db.WithContext(ctx).
		Where("id = ? AND id IN (?)", partID, r.linkedPartIDs(ctx, testID)).
		First(&part).Error
	if err != nil {
		return nil, err
	}
	return &part, nil
}

func (r *testRepository) FindPartsWithContent(ctx context.Context, partIDs []uint) ([]model.Part, error) {
	if len(partIDs) == 0 {
		return nil, nil
	}
	var parts []model.Part
	err := r.db.WithContext(ctx).
		Preload("Medias", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Medias.Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_number ASC")
		}).
		Preload("Medias.Questions.Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Where("id IN ?", partIDs).
		Order("part_order ASC, id ASC").
		Find(&parts).Error
	return parts, err
}

func (r *testRepository) CountQuestionsByPart(ctx context.Context, partIDs []uint) (map[uint]int, error) {
	counts := make(map[uint]int, len(partIDs))
	if len(partIDs) == 0 {
		return counts, nil
	}
	var rows []struct {
		PartID        uint
		QuestionCount int
	}
	err := r.db.WithContext(ctx).Model(&model.Question{}).
		Select("part_id, COUNT(*) AS question_count").
		Where("part_id IN ?", partIDs).
		Group("part_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.PartID] = row.QuestionCount
	}
	return counts, nil
}
