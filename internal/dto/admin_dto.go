package dto

// AnswerCreateDTO is one option of a question.
type AnswerCreateDTO struct {
	Content   string `json:"content" binding:"required"`
	IsCorrect bool   `json:"is_correct"`
}

type QuestionCreateDTO struct {
	QuestionNumber int               `json:"question_number" binding:"required,min=1,max=200"`
	Content        string            `json:"content"`
	Answers        []AnswerCreateDTO `json:"answers" binding:"required,min=2,dive"`
}

// MediaCreateDTO groups questions sharing a passage, picture or conversation.
type MediaCreateDTO struct {
	Name          string              `json:"name"`
	ParagraphMain string              `json:"paragraph_main"`
	AudioScript   *string             `json:"audio_script"`
	Questions     []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

type PartCreateDTO struct {
	PartOrder string           `json:"part_order" binding:"required,oneof='Part 1' 'Part 2' 'Part 3' 'Part 4' 'Part 5' 'Part 6' 'Part 7'"`
	Title     string           `json:"title"`
	AudioURL  *string          `json:"audio_url"`
	Medias    []MediaCreateDTO `json:"medias" binding:"required,min=1,dive"`
}

// TestCreateDTO is for admin to create a new test with all its content.
type TestCreateDTO struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description,omitempty"`
	Duration    int             `json:"duration" binding:"omitempty,min=1"`
	Parts       []PartCreateDTO `json:"parts" binding:"required,min=1,max=7,dive"`
}
