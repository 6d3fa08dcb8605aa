package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lshigami/toeic-practice-api/internal/apperror"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// SupportedLanguages are the language ids accepted for translation and explanation.
var SupportedLanguages = []string{"vi", "ja", "en"}

// QuestionBlock is the translation input sent to the model.
type QuestionBlock struct {
	QuestionID      uint     `json:"question_id"`
	QuestionContent string   `json:"question_content"`
	AnswerList      []string `json:"answer_list"`
}

type ExplainAnswer struct {
	IsCorrect     int    `json:"is_correct"`
	AnswerContent string `json:"answer_content"`
}

// ExplainBlock is the explanation input sent to the model.
type ExplainBlock struct {
	QuestionID      uint            `json:"question_id"`
	QuestionContent string          `json:"question_content"`
	AnswerList      []ExplainAnswer `json:"answer_list"`
}

// LanguageName returns the English name of a supported language id, e.g. "vi" -> "Vietnamese".
func LanguageName(id string) (string, error) {
	supported := false
	for _, l := range SupportedLanguages {
		if l == id {
			supported = true
			break
		}
	}
	if !supported {
		return "", apperror.Validation("invalid language code %q, must be one of %v", id, SupportedLanguages)
	}
	tag, err := language.Parse(id)
	if err != nil {
		return "", apperror.Validation("invalid language code %q", id)
	}
	return display.English.Tags().Name(tag), nil
}

func BuildTranslationPrompt(block QuestionBlock, languageID string) (string, error) {
	target, err := LanguageName(languageID)
	if err != nil {
		return "", err
	}
	input, err := json.Marshal(block)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("You are a JSON translator.\n")
	sb.WriteString(fmt.Sprintf("Given a JSON object, translate all string values into %s while keeping the JSON structure, keys, and formatting exactly the same.\n", target))
	sb.WriteString("Do not add or remove anything from the original object's structure.\n")
	sb.WriteString(fmt.Sprintf("After translating, add a new field named \"language_id\" with the value of \"%s\" to the top level of the JSON object.\n\n", languageID))
	writeJSONOnlyRules(&sb)
	sb.WriteString("Input: ")
	sb.Write(input)
	sb.WriteString("\n")
	return sb.String(), nil
}

func BuildExplainPrompt(block ExplainBlock, languageID string) (string, error) {
	target, err := LanguageName(languageID)
	if err != nil {
		return "", err
	}
	input, err := json.Marshal(block)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("You are an educational reasoning generator for TOEIC questions.\n")
	sb.WriteString("Given the JSON input below, analyze the question (\"question_content\") and provide concise explanations for:\n")
	sb.WriteString("- What the question is asking for.\n")
	sb.WriteString("- What the question means or focuses on.\n")
	sb.WriteString("- Why the correct answer is correct.\n")
	sb.WriteString("- Why each incorrect answer is wrong.\n\n")
	sb.WriteString(fmt.Sprintf("Write all explanations in %s.\n\n", target))
	sb.WriteString("Return the result in the following JSON format:\n")
	sb.WriteString(fmt.Sprintf(`{"language_id": "%s", "question_id": <same question_id>, "question_need": "<what the question needs>", "question_ask": "<what the question asks>", "correct_answer_reason": "<why the correct answer is correct>", "incorrect_answer_reason": {"<answer content>": "<why this option is incorrect>"}}`, languageID))
	sb.WriteString("\n\nKeep the original answer labels exactly as they appear in the input.\n")
	writeJSONOnlyRules(&sb)
	sb.WriteString("Input: ")
	sb.Write(input)
	sb.WriteString("\n")
	return sb.String(), nil
}

func writeJSONOnlyRules(sb *strings.Builder) {
	sb.WriteString("CRITICAL: Your response must be ONLY a raw JSON object.\n")
	sb.WriteString("- DO NOT wrap it in markdown code blocks\n")
	sb.WriteString("- DO NOT add any explanatory text before or after the JSON\n")
	sb.WriteString("- Start your response with { and end with }\n\n")
}

// CleanModelResponse strips a surrounding markdown code fence, if any.
func CleanModelResponse(resp string) string {
	cleaned := strings.TrimSpace(resp)
	if !strings.HasPrefix(cleaned, "```") {
		return cleaned
	}
	lines := strings.Split(cleaned, "\n")
	lines = lines[1:]
	if n := len(lines); n > 0 && strings.TrimSpace(lines[n-1]) == "```" {
		lines = lines[:n-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// DecodeJSON cleans a model response and decodes it into v.
func DecodeJSON(resp string, v any) error {
	if err := json.Unmarshal([]byte(CleanModelResponse(resp)), v); err != nil {
		return apperror.Wrap(apperror.KindUpstreamUnavailable, "AI returned malformed JSON", err)
	}
	return nil
}
