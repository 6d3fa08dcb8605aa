package service

import (
	"context"
	"strings"
	"testing"

	"github.com/lshigami/toeic-practice-api/internal/apperror"
	"github.com/lshigami/toeic-practice-api/internal/dto"
	"github.com/lshigami/toeic-practice-api/internal/model"
	"github.com/lshigami/toeic-practice-api/internal/scoring"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type fakeQuestionRepo struct {
	questions map[uint]*model.Question
	medias    map[uint]*model.Media
}

func (r *fakeQuestionRepo) FindByID(_ context.Context, id uint) (*model.Question, error) {
	q, ok := r.questions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *q
	return &copied, nil
}

func (r *fakeQuestionRepo) FindMedia(_ context.Context, id uint) (*model.Media, error) {
	m, ok := r.medias[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (r *fakeQuestionRepo) FindAnswerFacts(context.Context, []uint) ([]scoring.AnswerFact, error) {
	return nil, nil
}

func (r *fakeQuestionRepo) UpdateTranslateJSON(_ context.Context, id uint, data datatypes.JSON) error {
	r.questions[id].TranslateJSON = data
	return nil
}

func (r *fakeQuestionRepo) UpdateExplainJSON(_ context.Context, id uint, data datatypes.JSON) error {
	r.questions[id].ExplainJSON = data
	return nil
}

type fakeTextClient struct {
	reply   string
	err     error
	prompts []string
}

func (c *fakeTextClient) GenerateText(_ context.Context, prompt string) (string, string, error) {
	c.prompts = append(c.prompts, prompt)
	if c.err != nil {
		return "", "", c.err
	}
	return c.reply, "gemini-2.5-flash", nil
}

func (c *fakeTextClient) Models() []string { return []string{"gemini-2.5-flash"} }

func newQuestionFixture() *fakeQuestionRepo {
	script := "Man: Where is the meeting?"
	return &fakeQuestionRepo{
		questions: map[uint]*model.Question{
			12: {
				ID:      12,
				Content: "Where is the meeting?",
				Answers: []model.Answer{
					{ID: 1, Content: "(A) In room 1", IsCorrect: true},
					{ID: 2, Content: "(B) At noon"},
				},
			},
		},
		medias: map[uint]*model.Media{
			3: {ID: 3, ParagraphMain: "data:image/png;base64,AAAA", AudioScript: &script},
			4: {ID: 4},
		},
	}
}

func TestTranslateQuestionUsesCachePerLanguage(t *testing.T) {
	repo := newQuestionFixture()
	client := &fakeTextClient{reply: "```json\n{\"question_id\": 12, \"question_content\": \"Cuộc họp ở đâu?\", \"answer_list\": [\"(A) Ở phòng 1\", \"(B) Vào buổi trưa\"], \"language_id\": \"vi\"}\n```"}
	svc := NewGeminiService(client, repo)
	ctx := context.Background()
	req := dto.TranslateQuestionRequest{QuestionID: 12, LanguageID: "vi"}

	resp, err := svc.TranslateQuestion(ctx, req)
	if err != nil {
		t.Fatalf("TranslateQuestion: %v", err)
	}
	if resp.QuestionContent != "Cuộc họp ở đâu?" || len(resp.AnswerList) != 2 || resp.LanguageID != "vi" {
		t.Errorf("unexpected translation %+v", resp)
	}
	if !strings.Contains(client.prompts[0], "Vietnamese") {
		t.Errorf("prompt does not name the target language: %s", client.prompts[0])
	}

	if _, err := svc.TranslateQuestion(ctx, req); err != nil {
		t.Fatalf("cached TranslateQuestion: %v", err)
	}
	if len(client.prompts) != 1 {
		t.Errorf("expected cached answer to be reused, model called %d times", len(client.prompts))
	}

	client.reply = `{"question_id": 12, "question_content": "会議はどこですか？", "answer_list": [], "language_id": "ja"}`
	resp, err = svc.TranslateQuestion(ctx, dto.TranslateQuestionRequest{QuestionID: 12, LanguageID: "ja"})
	if err != nil || resp.LanguageID != "ja" || len(client.prompts) != 2 {
		t.Errorf("expected a new language to regenerate, got %+v, %v", resp, err)
	}
	if !strings.Contains(string(repo.questions[12].TranslateJSON), `"language_id":"ja"`) {
		t.Errorf("cache not replaced: %s", repo.questions[12].TranslateJSON)
	}
}

func TestExplainQuestion(t *testing.T) {
	repo := newQuestionFixture()
	client := &fakeTextClient{reply: `{"language_id": "en", "question_id": 12, "question_need": "a place", "question_ask": "where the meeting is", "correct_answer_reason": "it names a room", "incorrect_answer_reason": {"(B) At noon": "it is a time"}}`}
	svc := NewGeminiService(client, repo)

	resp, err := svc.ExplainQuestion(context.Background(), dto.ExplainQuestionRequest{QuestionID: 12, LanguageID: "en"})
	if err != nil {
		t.Fatalf("ExplainQuestion: %v", err)
	}
	if resp.QuestionNeed != "a place" || resp.IncorrectAnswerReason["(B) At noon"] != "it is a time" {
		t.Errorf("unexpected explanation %+v", resp)
	}
	if !strings.Contains(client.prompts[0], `"is_correct":1`) {
		t.Errorf("prompt does not flag the correct answer: %s", client.prompts[0])
	}
	if len(repo.questions[12].ExplainJSON) == 0 {
		t.Error("explanation not cached")
	}
}

func TestGeminiServiceErrors(t *testing.T) {
	repo := newQuestionFixture()
	client := &fakeTextClient{reply: "I cannot answer that"}
	svc := NewGeminiService(client, repo)
	ctx := context.Background()

	if _, err := svc.TranslateQuestion(ctx, dto.TranslateQuestionRequest{QuestionID: 12, LanguageID: "fr"}); !apperror.Is(err, apperror.KindValidation) {
		t.Errorf("expected unsupported language to fail validation, got %v", err)
	}
	if _, err := svc.TranslateQuestion(ctx, dto.TranslateQuestionRequest{QuestionID: 99, LanguageID: "vi"}); !apperror.Is(err, apperror.KindNotFound) {
		t.Errorf("expected unknown question to be not found, got %v", err)
	}
	if _, err := svc.ExplainQuestion(ctx, dto.ExplainQuestionRequest{QuestionID: 12, LanguageID: "vi"}); !apperror.Is(err, apperror.KindUpstreamUnavailable) {
		t.Errorf("expected malformed model output to be an upstream error, got %v", err)
	}
	if len(repo.questions[12].ExplainJSON) != 0 {
		t.Error("malformed output must not be cached")
	}

	client.err = apperror.Upstream("all AI models are unavailable", nil)
	if _, err := svc.Health(ctx); !apperror.Is(err, apperror.KindUpstreamUnavailable) {
		t.Errorf("expected health check to report unavailable, got %v", err)
	}
}

func TestMediaLookups(t *testing.T) {
	svc := NewGeminiService(&fakeTextClient{}, newQuestionFixture())
	ctx := context.Background()

	img, err := svc.GetMediaImage(ctx, 3)
	if err != nil || !strings.HasPrefix(img.Img, "data:image/png") {
		t.Errorf("GetMediaImage = %+v, %v", img, err)
	}
	script, err := svc.GetAudioScript(ctx, 3)
	if err != nil || script.Script == "" {
		t.Errorf("GetAudioScript = %+v, %v", script, err)
	}
	if _, err := svc.GetMediaImage(ctx, 4); !apperror.Is(err, apperror.KindNotFound) {
		t.Errorf("expected empty image to be not found, got %v", err)
	}
	if _, err := svc.GetAudioScript(ctx, 4); !apperror.Is(err, apperror.KindNotFound) {
		t.Errorf("expected missing script to be not found, got %v", err)
	}
	if _, err := svc.GetAudioScript(ctx, 5); !apperror.Is(err, apperror.KindNotFound) {
		t.Errorf("expected unknown media to be not found, got %v", err)
	}
}
