package service

import (
	"context"
	"encoding/json"

	"github.com/lshigami/toeic-practice-api/internal/ai"
	"github.com/lshigami/toeic-practice-api/internal/apperror"
	"github.com/lshigami/toeic-practice-api/internal/dto"
	"github.com/lshigami/toeic-practice-api/internal/model"
	"github.com/lshigami/toeic-practice-api/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

// TextClient generates text with model fallback. *ai.Client implements it.
type TextClient interface {
	GenerateText(ctx context.Context, prompt string) (text string, model string, err error)
	Models() []string
}

type GeminiService interface {
	TranslateQuestion(ctx context.Context, req dto.TranslateQuestionRequest) (*dto.TranslateQuestionResponse, error)
	ExplainQuestion(ctx context.Context, req dto.ExplainQuestionRequest) (*dto.ExplainQuestionResponse, error)
	GetMediaImage(ctx context.Context, mediaID uint) (*dto.ImageResponse, error)
	GetAudioScript(ctx context.Context, mediaID uint) (*dto.AudioScriptResponse, error)
	Health(ctx context.Context) (*dto.HealthResponse, error)
}

type geminiService struct {
	client       TextClient
	questionRepo repository.QuestionRepository
}

func NewGeminiService(client TextClient, questionRepo repository.QuestionRepository) GeminiService {
	return &geminiService{client: client, questionRepo: questionRepo}
}

// TranslateQuestion answers from the question's cached translation when it is in the
// requested language, otherwise asks the model and replaces the cache.
func (s *geminiService) TranslateQuestion(ctx context.Context, req dto.TranslateQuestionRequest) (*dto.TranslateQuestionResponse, error) {
	if _, err := ai.LanguageName(req.LanguageID); err != nil {
		return nil, err
	}
	question, err := s.questionRepo.FindByID(ctx, req.QuestionID)
	if err != nil {
		return nil, storeErr(err, "question")
	}

	var cached dto.TranslateQuestionResponse
	if cacheHit(question.TranslateJSON, req.LanguageID, &cached) {
		return &cached, nil
	}

	block := ai.QuestionBlock{QuestionID: question.ID, QuestionContent: question.Content}
	for _, a := range question.Answers {
		block.AnswerList = append(block.AnswerList, a.Content)
	}
	prompt, err := ai.BuildTranslationPrompt(block, req.LanguageID)
	if err != nil {
		return nil, err
	}

	var resp dto.TranslateQuestionResponse
	if err := s.generateJSON(ctx, prompt, &resp); err != nil {
		log.Error().Err(err).Uint("questionID", question.ID).Str("language", req.LanguageID).Msg("TranslateQuestion: generation failed")
		return nil, err
	}
	resp.QuestionID = question.ID
	resp.LanguageID = req.LanguageID

	s.storeCache(ctx, question.ID, resp, s.questionRepo.UpdateTranslateJSON)
	return &resp, nil
}

func (s *geminiService) ExplainQuestion(ctx context.Context, req dto.ExplainQuestionRequest) (*dto.ExplainQuestionResponse, error) {
	if _, err := ai.LanguageName(req.LanguageID); err != nil {
		return nil, err
	}
	question, err := s.questionRepo.FindByID(ctx, req.QuestionID)
	if err != nil {
		return nil, storeErr(err, "question")
	}

	var cached dto.ExplainQuestionResponse
	if cacheHit(question.ExplainJSON, req.LanguageID, &cached) {
		return &cached, nil
	}

	block := explainBlock(question)
	prompt, err := ai.BuildExplainPrompt(block, req.LanguageID)
	if err != nil {
		return nil, err
	}

	var resp dto.ExplainQuestionResponse
	if err := s.generateJSON(ctx, prompt, &resp); err != nil {
		log.Error().Err(err).Uint("questionID", question.ID).Str("language", req.LanguageID).Msg("ExplainQuestion: generation failed")
		return nil, err
	}
	resp.QuestionID = question.ID
	resp.LanguageID = req.LanguageID
	if resp.IncorrectAnswerReason == nil {
		resp.IncorrectAnswerReason = map[string]string{}
	}

	s.storeCache(ctx, question.ID, resp, s.questionRepo.UpdateExplainJSON)
	return &resp, nil
}

func (s *geminiService) GetMediaImage(ctx context.Context, mediaID uint) (*dto.ImageResponse, error) {
	media, err := s.questionRepo.FindMedia(ctx, mediaID)
	if err != nil {
		return nil, storeErr(err, "media")
	}
	if media.ParagraphMain == "" {
		return nil, apperror.NotFound("image not found")
	}
	return &dto.ImageResponse{Img: media.ParagraphMain}, nil
}

func (s *geminiService) GetAudioScript(ctx context.Context, mediaID uint) (*dto.AudioScriptResponse, error) {
	media, err := s.questionRepo.FindMedia(ctx, mediaID)
	if err != nil {
		return nil, storeErr(err, "media")
	}
	if media.AudioScript == nil || *media.AudioScript == "" {
		return nil, apperror.NotFound("audio script not found")
	}
	return &dto.AudioScriptResponse{Script: *media.AudioScript}, nil
}

func (s *geminiService) Health(ctx context.Context) (*dto.HealthResponse, error) {
	_, model, err := s.client.GenerateText(ctx, "Reply with the single word OK.")
	if err != nil {
		return nil, err
	}
	return &dto.HealthResponse{Status: "ok", Message: "AI service is available", Model: model}, nil
}

func (s *geminiService) generateJSON(ctx context.Context, prompt string, v any) error {
	text, model, err := s.client.GenerateText(ctx, prompt)
	if err != nil {
		return err
	}
	if err := ai.DecodeJSON(text, v); err != nil {
		log.Warn().Str("model", model).Msg("generateJSON: model returned malformed JSON")
		return err
	}
	return nil
}

// storeCache persists a generated answer. A failed write only costs a later regeneration.
func (s *geminiService) storeCache(ctx context.Context, questionID uint, v any, update func(context.Context, uint, datatypes.JSON) error) {
	data, err := json.Marshal(v)
	if err == nil {
		err = update(ctx, questionID, datatypes.JSON(data))
	}
	if err != nil {
		log.Warn().Err(err).Uint("questionID", questionID).Msg("Failed to cache AI response")
	}
}

// cacheHit decodes a cache column into v when it holds an answer in the wanted language.
func cacheHit(raw datatypes.JSON, language string, v any) bool {
	if len(raw) == 0 {
		return false
	}
	var head struct {
		LanguageID string `json:"language_id"`
	}
	if err := json.Unmarshal(raw, &head); err != nil || head.LanguageID != language {
		return false
	}
	return json.Unmarshal(raw, v) == nil
}

func explainBlock(q *model.Question) ai.ExplainBlock {
	block := ai.ExplainBlock{QuestionID: q.ID, QuestionContent: q.Content}
	for _, a := range q.Answers {
		correct := 0
		if a.IsCorrect {
			correct = 1
		}
		block.AnswerList = append(block.AnswerList, ai.ExplainAnswer{IsCorrect: correct, AnswerContent: a.Content})
	}
	return block
}

var _ TextClient = (*ai.Client)(nil)
