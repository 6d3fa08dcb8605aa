package repository

import (
	"context"

	"github.com/lshigami/toeic-practice-api/internal/model"
	"github.com/lshigami/toeic-practice-api/internal/scoring"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	FindByID(ctx context.Context, id uint) (*model.Question, error)
	FindMedia(ctx context.Context, id uint) (*model.Media, error)
	FindAnswerFacts(ctx context.Context, answerIDs []uint) ([]scoring.AnswerFact, error)
	UpdateTranslateJSON(ctx context.Context, id uint, data datatypes.JSON) error
	UpdateExplainJSON(ctx context.Context, id uint, data datatypes.JSON) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) FindByID(ctx context.Context, id uint) (*model.Question, error) {
	var question model.Question
	err := r.db.WithContext(ctx).
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		First(&question, id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindMedia(ctx context.Context, id uint) (*model.Media, error) {
	var media model.Media
	if err := r.db.WithContext(ctx).First(&media, id).Error; err != nil {
		return nil, err
	}
	return &media, nil
}

// FindAnswerFacts resolves answer ids to their question, part, number and flag.
// Unknown ids are simply absent from the result.
func (r *questionRepository) FindAnswerFacts(ctx context.Context, answerIDs []uint) ([]scoring.AnswerFact, error) {
	if len(answerIDs) == 0 {
		return nil, nil
	}
	db := r.db.WithContext(ctx)

	var answers []model.Answer
	if err := db.Select("id", "question_id", "is_correct").Where("id IN ?", answerIDs).Find(&answers).Error; err != nil {
		return nil, err
	}
	if len(answers) == 0 {
		return nil, nil
	}

	questionIDs := make([]uint, 0, len(answers))
	seen := make(map[uint]bool, len(answers))
	for _, a := range answers {
		if !seen[a.QuestionID] {
			seen[a.QuestionID] = true
			questionIDs = append(questionIDs, a.QuestionID)
		}
	}
	var questions []model.Question
	if err := db.Select("id", "part_id", "question_number").Where("id IN ?", questionIDs).Find(&questions).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]model.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	facts := make([]scoring.AnswerFact, 0, len(answers))
	for _, a := range answers {
		q, ok := byID[a.QuestionID]
		if !ok {
			continue
		}
		facts = append(facts, scoring.AnswerFact{
			AnswerID:       a.ID,
			QuestionID:     q.ID,
			PartID:         q.PartID,
			QuestionNumber: q.QuestionNumber,
			IsCorrect:      a.IsCorrect,
		})
	}
	return facts, nil
}

func (r *questionRepository) UpdateTranslateJSON(ctx context.Context, id uint, data datatypes.JSON) error {
	return r.db.WithContext(ctx).Model(&model.Question{ID: id}).Update("question_translate_json", data).Error
}

func (r *questionRepository) UpdateExplainJSON(ctx context.Context, id uint, data datatypes.JSON) error {
	return r.db.WithContext(ctx).Model(&model.Question{ID: id}).Update("question_explain_json", data).Error
}
