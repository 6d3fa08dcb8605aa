package dto

type AnswerDetailResponse struct {
	AnswerID  uint   `json:"answer_id"`
	Content   string `json:"content"`
	IsCorrect bool   `json:"is_correct"`
}

type QuestionDetailResponse struct {
	QuestionID      uint                   `json:"question_id"`
	QuestionNumber  int                    `json:"question_number"`
	QuestionContent string                 `json:"question_content"`
	AnswerList      []AnswerDetailResponse `json:"answer_list"`
}

type MediaQuestionDetailResponse struct {
	MediaQuestionID            uint                     `json:"media_question_id"`
	MediaQuestionName          string                   `json:"media_question_name"`
	MediaQuestionMainParagraph string                   `json:"media_question_main_paragraph"`
	MediaQuestionAudioScript   *string                  `json:"media_question_audio_script"`
	QuestionList               []QuestionDetailResponse `json:"question_list"`
}

type PartDetailResponse struct {
	PartID            uint                          `json:"part_id"`
	PartOrder         string                        `json:"part_order"`
	PartTitle         string                        `json:"part_title"`
	PartAudioURL      *string                       `json:"part_audio_url"`
	MediaQuestionList []MediaQuestionDetailResponse `json:"media_question_list"`
}

type TestDetailResponse struct {
	TestID    uint                 `json:"test_id"`
	TestTitle string               `json:"test_title"`
	PartList  []PartDetailResponse `json:"part_list"`
}

type PartSummaryResponse struct {
	PartID        uint   `json:"part_id"`
	PartOrder     string `json:"part_order"`
	PartTitle     string `json:"part_title"`
	TotalQuestion int    `json:"total_question"`
}

// TestSummaryResponse is used for listing tests available to users.
type TestSummaryResponse struct {
	TestID          uint                  `json:"test_id"`
	TestTitle       string                `json:"test_title"`
	TestDuration    int                   `json:"test_duration"`
	TestDescription string                `json:"test_description"`
	PartList        []PartSummaryResponse `json:"part_list"`
}

type AudioURLResponse struct {
	AudioStreamURL *string `json:"audio_stream_url"`
}

type TranslateQuestionResponse struct {
	QuestionID      uint     `json:"question_id"`
	QuestionContent string   `json:"question_content"`
	AnswerList      []string `json:"answer_list"`
	LanguageID      string   `json:"language_id"`
}

type ExplainQuestionResponse struct {
	QuestionID            uint              `json:"question_id"`
	QuestionAsk           string            `json:"question_ask"`
	QuestionNeed          string            `json:"question_need"`
	CorrectAnswerReason   string            `json:"correct_answer_reason"`
	IncorrectAnswerReason map[string]string `json:"incorrect_answer_reason"`
	LanguageID            string            `json:"language_id"`
}

type ImageResponse struct {
	Img string `json:"img"`
}

type AudioScriptResponse struct {
	Script string `json:"script"`
}
