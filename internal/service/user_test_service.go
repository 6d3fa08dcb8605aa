package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/lshigami/toeic-practice-api/internal/apperror"
	"github.com/lshigami/toeic-practice-api/internal/dto"
	"github.com/lshigami/toeic-practice-api/internal/model"
	"github.com/lshigami/toeic-practice-api/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// MediaStore opens stored media files by the key saved in the database.
type MediaStore interface {
	Open(key string) (*os.File, fs.FileInfo, error)
}

// AudioFile is an opened part audio. The caller closes Content.
type AudioFile struct {
	Name    string
	Content *os.File
	Info    fs.FileInfo
}

type UserTestService interface {
	GetAllTests(ctx context.Context) ([]dto.TestSummaryResponse, error)
	GetTestDetails(ctx context.Context, testID uint, partIDs []uint) (*dto.TestDetailResponse, error)
	GetPartAudioURL(ctx context.Context, testID, partID uint) (*dto.AudioURLResponse, error)
	OpenPartAudio(ctx context.Context, testID, partID uint) (*AudioFile, error)
}

type userTestService struct {
	testRepo repository.TestRepository
	media    MediaStore
}

func NewUserTestService(testRepo repository.TestRepository, media MediaStore) UserTestService {
	return &userTestService{testRepo: testRepo, media: media}
}

func (s *userTestService) GetAllTests(ctx context.Context) ([]dto.TestSummaryResponse, error) {
	tests, err := s.testRepo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get all tests from repository")
		return nil, storeErr(err, "tests")
	}

	summaries := make([]dto.TestSummaryResponse, 0, len(tests))
	for _, t := range tests {
		parts, err := s.testRepo.FindParts(ctx, t.ID)
		if err != nil {
			log.Error().Err(err).Uint("testID", t.ID).Msg("Failed to get parts of test")
			return nil, storeErr(err, "parts")
		}
		counts, err := s.testRepo.CountQuestionsByPart(ctx, partIDsOf(parts))
		if err != nil {
			return nil, storeErr(err, "questions")
		}

		summary := dto.TestSummaryResponse{
			TestID:          t.ID,
			TestTitle:       t.Title,
			TestDuration:    t.Duration,
			TestDescription: t.Description,
			PartList:        make([]dto.PartSummaryResponse, 0, len(parts)),
		}
		for _, p := range parts {
			summary.PartList = append(summary.PartList, dto.PartSummaryResponse{
				PartID:        p.ID,
				PartOrder:     p.PartOrder,
				PartTitle:     p.Title,
				TotalQuestion: counts[p.ID],
			})
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// GetTestDetails returns the full content tree. A non-empty partIDs limits it to those parts.
func (s *userTestService) GetTestDetails(ctx context.Context, testID uint, partIDs []uint) (*dto.TestDetailResponse, error) {
	test, err := s.testRepo.FindByID(ctx, testID)
	if err != nil {
		log.Error().Err(err).Uint("testID", testID).Msg("Failed to get test details from repository")
		return nil, storeErr(err, fmt.Sprintf("test %d", testID))
	}
	parts, err := s.testRepo.FindParts(ctx, testID)
	if err != nil {
		return nil, storeErr(err, "parts")
	}

	ids := partIDsOf(parts)
	if len(partIDs) > 0 {
		linked := make(map[uint]bool, len(ids))
		for _, id := range ids {
			linked[id] = true
		}
		ids = ids[:0]
		seen := make(map[uint]bool, len(partIDs))
		for _, id := range partIDs {
			if !linked[id] {
				return nil, apperror.NotFound("part %d is not part of test %d", id, testID)
			}
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}

	content, err := s.testRepo.FindPartsWithContent(ctx, ids)
	if err != nil {
		log.Error().Err(err).Uint("testID", testID).Msg("Failed to load test content")
		return nil, storeErr(err, "test content")
	}

	resp := &dto.TestDetailResponse{
		TestID:    test.ID,
		TestTitle: test.Title,
		PartList:  make([]dto.PartDetailResponse, 0, len(content)),
	}
	for _, p := range content {
		resp.PartList = append(resp.PartList, toPartDetail(p))
	}
	return resp, nil
}

// GetPartAudioURL returns the stream path of a part's audio, or nil when the part has none.
func (s *userTestService) GetPartAudioURL(ctx context.Context, testID, partID uint) (*dto.AudioURLResponse, error) {
	part, err := s.testRepo.FindPart(ctx, testID, partID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &dto.AudioURLResponse{}, nil
		}
		return nil, storeErr(err, "part")
	}
	if part.AudioURL == nil || *part.AudioURL == "" {
		return &dto.AudioURLResponse{}, nil
	}
	url := fmt.Sprintf("tests/%d/parts/%d/audio/stream", testID, partID)
	return &dto.AudioURLResponse{AudioStreamURL: &url}, nil
}

func (s *userTestService) OpenPartAudio(ctx context.Context, testID, partID uint) (*AudioFile, error) {
	part, err := s.testRepo.FindPart(ctx, testID, partID)
	if err != nil {
		return nil, storeErr(err, fmt.Sprintf("part %d of test %d", partID, testID))
	}
	if part.AudioURL == nil || *part.AudioURL == "" {
		return nil, apperror.NotFound("part %d has no audio", partID)
	}

	f, info, err := s.media.Open(*part.AudioURL)
	if err != nil {
		log.Warn().Err(err).Uint("partID", partID).Str("audioURL", *part.AudioURL).Msg("Failed to open part audio")
		if apperror.KindOf(err) != apperror.KindInternal {
			return nil, err
		}
		return nil, apperror.Wrap(apperror.KindInternal, "failed to open audio file", err)
	}
	return &AudioFile{Name: filepath.Base(f.Name()), Content: f, Info: info}, nil
}

func toPartDetail(p model.Part) dto.PartDetailResponse {
	part := dto.PartDetailResponse{
		PartID:            p.ID,
		PartOrder:         p.PartOrder,
		PartTitle:         p.Title,
		PartAudioURL:      p.AudioURL,
		MediaQuestionList: make([]dto.MediaQuestionDetailResponse, 0, len(p.Medias)),
	}
	for _, m := range p.Medias {
		media := dto.MediaQuestionDetailResponse{
			MediaQuestionID:            m.ID,
			MediaQuestionName:          m.Name,
			MediaQuestionMainParagraph: m.ParagraphMain,
			MediaQuestionAudioScript:   m.AudioScript,
			QuestionList:               make([]dto.QuestionDetailResponse, 0, len(m.Questions)),
		}
		for _, q := range m.Questions {
			question := dto.QuestionDetailResponse{
				QuestionID:      q.ID,
				QuestionNumber:  q.QuestionNumber,
				QuestionContent: q.Content,
				AnswerList:      make([]dto.AnswerDetailResponse, 0, len(q.Answers)),
			}
			for _, a := range q.Answers {
				question.AnswerList = append(question.AnswerList, dto.AnswerDetailResponse{
					AnswerID:  a.ID,
					Content:   a.Content,
					IsCorrect: a.IsCorrect,
				})
			}
			media.QuestionList = append(media.QuestionList, question)
		}
		part.MediaQuestionList = append(part.MediaQuestionList, media)
	}
	return part
}

func partIDsOf(parts []model.Part) []uint {
	ids := make([]uint, 0, len(parts))
	for _, p := range parts {
		ids = append(ids, p.ID)
	}
	return ids
}
