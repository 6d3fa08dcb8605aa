// Package scoring computes aggregate results for a progress record.
// Every function here is pure; callers resolve metadata from the store first.
package scoring

import (
	"math"

	"github.com/lshigami/toeic-practice-api/internal/apperror"
)

type Mode string

const (
	ModeExam     Mode = "exam"
	ModePractice Mode = "practice"
)

// ListeningUpperBound is the last question number of the listening section.
const ListeningUpperBound = 100

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeExam, ModePractice:
		return Mode(s), nil
	}
	return "", apperror.Validation("invalid test type %q, expected exam or practice", s)
}

// PartMeta describes a part linked to a test.
type PartMeta struct {
	ID            uint
	Order         string
	QuestionCount int
}

// AnswerFact is what the store knows about one answer id.
type AnswerFact struct {
	AnswerID       uint
	QuestionID     uint
	PartID         uint
	QuestionNumber int
	IsCorrect      bool
}

// Lookup maps answer id to its fact.
type Lookup map[uint]AnswerFact

// Sheet maps question id to the chosen answer id.
type Sheet map[uint]uint

type Tally struct {
	Correct   int
	Incorrect int
}

type SectionTally struct {
	Listening int
	Reading   int
}

type PartResult struct {
	PartID        uint
	PartOrder     string
	TotalQuestion int
	Correct       int
	Incorrect     int
	NoAnswer      int
}

type Input struct {
	Mode          Mode
	PartSelection []uint
	Answers       Sheet
}

type Metadata struct {
	Parts   []PartMeta
	Answers Lookup
}

type Result struct {
	TotalQuestion    int
	Correct          int
	Incorrect        int
	NoAnswer         int
	CorrectListening int
	CorrectReading   int
	Accuracy         float64
	ByPart           []PartResult
}

// ScopeParts returns the parts an attempt covers, in the order of parts.
// Exam mode ignores the selection.
func ScopeParts(mode Mode, parts []PartMeta, selection []uint) ([]PartMeta, error) {
	switch mode {
	case ModeExam:
		return parts, nil
	case ModePractice:
	default:
		return nil, apperror.Validation("invalid test type %q", string(mode))
	}

	if len(selection) == 0 {
		return nil, apperror.Validation("practice mode requires at least one part")
	}
	linked := make(map[uint]bool, len(parts))
	for _, p := range parts {
		linked[p.ID] = true
	}
	selected := make(map[uint]bool, len(selection))
	for _, id := range selection {
		if !linked[id] {
			return nil, apperror.NotFound("part %d is not part of this test", id)
		}
		selected[id] = true
	}

	scope := make([]PartMeta, 0, len(selected))
	for _, p := range parts {
		if selected[p.ID] {
			scope = append(scope, p)
		}
	}
	return scope, nil
}

func TotalQuestionCount(mode Mode, parts []PartMeta, selection []uint) (int, error) {
	scope, err := ScopeParts(mode, parts, selection)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, p := range scope {
		total += p.QuestionCount
	}
	return total, nil
}

// resolve returns the fact behind a chosen answer, if it belongs to the keyed question.
func resolve(questionID, answerID uint, lookup Lookup) (AnswerFact, bool) {
	fact, ok := lookup[answerID]
	if !ok || fact.QuestionID != questionID {
		return AnswerFact{}, false
	}
	return fact, true
}

// Correctness counts chosen answers by their flag. Unresolvable answers count as neither.
func Correctness(sheet Sheet, lookup Lookup) Tally {
	var t Tally
	for qid, aid := range sheet {
		fact, ok := resolve(qid, aid, lookup)
		if !ok {
			continue
		}
		if fact.IsCorrect {
			t.Correct++
		} else {
			t.Incorrect++
		}
	}
	return t
}

func CorrectnessBySection(sheet Sheet, lookup Lookup) SectionTally {
	var s SectionTally
	for qid, aid := range sheet {
		fact, ok := resolve(qid, aid, lookup)
		if !ok || !fact.IsCorrect {
			continue
		}
		switch {
		case fact.QuestionNumber >= 1 && fact.QuestionNumber <= ListeningUpperBound:
			s.Listening++
		case fact.QuestionNumber > ListeningUpperBound:
			s.Reading++
		}
	}
	return s
}

// CorrectnessByPart returns one entry per part in scope, answered or not.
func CorrectnessByPart(sheet Sheet, lookup Lookup, scope []PartMeta) []PartResult {
	tallies := make(map[uint]*Tally, len(scope))
	for _, p := range scope {
		tallies[p.ID] = &Tally{}
	}
	for qid, aid := range sheet {
		fact, ok := resolve(qid, aid, lookup)
		if !ok {
			continue
		}
		t, inScope := tallies[fact.PartID]
		if !inScope {
			continue
		}
		if fact.IsCorrect {
			t.Correct++
		} else {
			t.Incorrect++
		}
	}

	results := make([]PartResult, 0, len(scope))
	for _, p := range scope {
		t := tallies[p.ID]
		results = append(results, PartResult{
			PartID:        p.ID,
			PartOrder:     p.Order,
			TotalQuestion: p.QuestionCount,
			Correct:       t.Correct,
			Incorrect:     t.Incorrect,
			NoAnswer:      noAnswer(p.QuestionCount, t.Correct+t.Incorrect),
		})
	}
	return results
}

// Accuracy is correct/total as a percentage with two decimals, 0 for an empty total.
func Accuracy(correct, totalQuestion int) float64 {
	if totalQuestion <= 0 || correct <= 0 {
		return 0
	}
	pct := math.Round(float64(correct)/float64(totalQuestion)*10000) / 100
	return math.Min(pct, 100)
}

func noAnswer(total, answered int) int {
	if answered > total {
		return 0
	}
	return total - answered
}

// Within keeps only the facts whose part is in scope.
func (l Lookup) Within(scope []PartMeta) Lookup {
	ids := make(map[uint]bool, len(scope))
	for _, p := range scope {
		ids[p.ID] = true
	}
	out := make(Lookup, len(l))
	for id, fact := range l {
		if ids[fact.PartID] {
			out[id] = fact
		}
	}
	return out
}

// Score runs the full computation. Answers outside the scoped parts are not scored,
// so correct + incorrect + no_answer always equals the total.
func Score(in Input, md Metadata) (*Result, error) {
	scope, err := ScopeParts(in.Mode, md.Parts, in.PartSelection)
	if err != nil {
		return nil, err
	}
	lookup := md.Answers.Within(scope)

	total := 0
	for _, p := range scope {
		total += p.QuestionCount
	}
	tally := Correctness(in.Answers, lookup)
	sections := CorrectnessBySection(in.Answers, lookup)

	return &Result{
		TotalQuestion:    total,
		Correct:          tally.Correct,
		Incorrect:        tally.Incorrect,
		NoAnswer:         noAnswer(total, tally.Correct+tally.Incorrect),
		CorrectListening: sections.Listening,
		CorrectReading:   sections.Reading,
		Accuracy:         Accuracy(tally.Correct, total),
		ByPart:           CorrectnessByPart(in.Answers, lookup, scope),
	}, nil
}
