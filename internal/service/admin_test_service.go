package service

import (
	"context"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/toeic-practice-api/internal/apperror"
	"github.com/lshigami/toeic-practice-api/internal/dto"
	"github.com/lshigami/toeic-practice-api/internal/model"
	"github.com/lshigami/toeic-practice-api/internal/repository"
	"github.com/lshigami/toeic-practice-api/internal/scoring"
	"github.com/rs/zerolog/log"
)

const defaultTestDuration = 120

// listeningParts hold questions 1-100, the other parts 101-200.
var listeningParts = map[string]bool{"Part 1": true, "Part 2": true, "Part 3": true, "Part 4": true}

type AdminTestService interface {
	CreateTest(ctx context.Context, req dto.TestCreateDTO) (*dto.TestDetailResponse, error)
}

type adminTestService struct {
	testRepo repository.TestRepository
}

func NewAdminTestService(testRepo repository.TestRepository) AdminTestService {
	return &adminTestService{testRepo: testRepo}
}

func (s *adminTestService) CreateTest(ctx context.Context, req dto.TestCreateDTO) (*dto.TestDetailResponse, error) {
	if err := validateTestContent(req); err != nil {
		return nil, err
	}

	parts := make([]model.Part, 0, len(req.Parts))
	for _, pDto := range req.Parts {
		var part model.Part
		if err := copier.Copy(&part, &pDto); err != nil {
			log.Error().Err(err).Str("partOrder", pDto.PartOrder).Msg("Failed to copy PartCreateDTO to Part model")
			return nil, apperror.Wrap(apperror.KindInternal, "error preparing test content", err)
		}
		parts = append(parts, part)
	}

	duration := req.Duration
	if duration <= 0 {
		duration = defaultTestDuration
	}
	test := &model.Test{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Duration:    duration,
	}
	if err := s.testRepo.Create(ctx, test, parts); err != nil {
		log.Error().Err(err).Str("title", test.Title).Msg("Failed to create test in database")
		return nil, storeErr(err, "test "+test.Title)
	}
	log.Info().Uint("testID", test.ID).Str("title", test.Title).Int("parts", len(parts)).Msg("Test created")

	resp := &dto.TestDetailResponse{
		TestID:    test.ID,
		TestTitle: test.Title,
		PartList:  make([]dto.PartDetailResponse, 0, len(parts)),
	}
	for _, p := range parts {
		resp.PartList = append(resp.PartList, toPartDetail(p))
	}
	return resp, nil
}

func validateTestContent(req dto.TestCreateDTO) error {
	if strings.TrimSpace(req.Title) == "" {
		return apperror.Validation("test title is required")
	}
	if len(req.Parts) == 0 {
		return apperror.Validation("a test must have at least one part")
	}

	orders := make(map[string]bool, len(req.Parts))
	numbers := make(map[int]bool)
	for _, p := range req.Parts {
		if orders[p.PartOrder] {
			return apperror.Validation("duplicate part %q", p.PartOrder)
		}
		orders[p.PartOrder] = true
		listening := listeningParts[p.PartOrder]

		for _, m := range p.Medias {
			for _, q := range m.Questions {
				if q.QuestionNumber < 1 || q.QuestionNumber > 200 {
					return apperror.Validation("question number %d is out of range 1-200", q.QuestionNumber)
				}
				if listening != (q.QuestionNumber <= scoring.ListeningUpperBound) {
					return apperror.Validation("question %d does not belong in %s", q.QuestionNumber, p.PartOrder)
				}
				if numbers[q.QuestionNumber] {
					return apperror.Validation("duplicate question number %d", q.QuestionNumber)
				}
				numbers[q.QuestionNumber] = true

				if len(q.Answers) < 2 {
					return apperror.Validation("question %d must have at least 2 answers", q.QuestionNumber)
				}
				correct := 0
				for _, a := range q.Answers {
					if a.IsCorrect {
						correct++
					}
				}
				if correct != 1 {
					return apperror.Validation("question %d must have exactly one correct answer, got %d", q.QuestionNumber, correct)
				}
			}
		}
	}
	return nil
}
