package service

import (
	"context"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/lshigami/toeic-practice-api/internal/apperror"
	"github.com/lshigami/toeic-practice-api/internal/dto"
	"github.com/lshigami/toeic-practice-api/internal/model"
	"github.com/lshigami/toeic-practice-api/internal/repository"
	"gorm.io/gorm"
)

func newHistoryService(t *testing.T, db *gorm.DB, c *clock) *historyService {
	t.Helper()
	svc := NewHistoryService(
		repository.NewHistoryRepository(db),
		repository.NewTestRepository(db),
		repository.NewQuestionRepository(db),
		NewScoreConverterService(),
		testConfig(),
	).(*historyService)
	svc.now = c.Now
	return svc
}

func idStr(id uint) string { return strconv.FormatUint(uint64(id), 10) }

// answer picks the correct or the first incorrect answer of question n.
func (s *seededTest) answer(n int, correct bool) (string, string) {
	q := s.questions[n]
	for _, a := range q.Answers {
		if a.IsCorrect == correct {
			return idStr(q.ID), idStr(a.ID)
		}
	}
	return idStr(q.ID), "0"
}

func intPtr(v int) *int { return &v }

func TestUpsertProgressIsIdempotentPerTest(t *testing.T) {
	db := newTestDB(t)
	c := &clock{t: time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)}
	svc := newHistoryService(t, db, c)
	ctx := context.Background()
	seeded := seedTest(t, db, "ETS 2024 Test 1", listeningSeeds...)

	q, a := seeded.answer(1, true)
	req := dto.HistoryCreateRequest{
		DataProgress: map[string]string{q: a},
		Type:         "exam",
		ExamDuration: intPtr(600),
		TestID:       seeded.test.ID,
		Status:       model.HistoryStatusSave,
	}

	first, err := svc.UpsertProgress(ctx, 7, req)
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	if first.Message != "History exam successfully" || first.Status != "save" {
		t.Errorf("unexpected response %+v", first)
	}

	c.Advance(time.Minute)
	q2, a2 := seeded.answer(2, false)
	req.DataProgress[q2] = a2
	second, err := svc.UpsertProgress(ctx, 7, req)
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if second.HistoryID != first.HistoryID {
		t.Errorf("save created a second row: %d != %d", second.HistoryID, first.HistoryID)
	}

	saved, err := svc.GetSavedProgress(ctx, 7, seeded.test.ID)
	if err != nil || saved == nil {
		t.Fatalf("GetSavedProgress = %v, %v", saved, err)
	}
	if len(saved.DataProgress) != 2 || saved.ExamDuration != 600 || saved.PracticeDuration != 0 {
		t.Errorf("unexpected saved progress %+v", saved)
	}
	if !saved.CreateAt.Equal(c.t) {
		t.Errorf("create_at = %v, want %v", saved.CreateAt, c.t)
	}

	var count int64
	db.Model(&model.History{}).Where("user_id = ? AND test_id = ?", 7, seeded.test.ID).Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly one history row, got %d", count)
	}

	req.Status = model.HistoryStatusSubmit
	submitted, err := svc.UpsertProgress(ctx, 7, req)
	if err != nil || submitted.HistoryID != first.HistoryID {
		t.Fatalf("submit = %+v, %v", submitted, err)
	}
	saved, err = svc.GetSavedProgress(ctx, 7, seeded.test.ID)
	if err != nil || saved != nil {
		t.Errorf("expected no saved progress after submit, got %+v, %v", saved, err)
	}
}

func TestUpsertProgressValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newHistoryService(t, db, &clock{t: time.Now()})
	seeded := seedTest(t, db, "Test 1", readingSeeds...)
	other := seedTest(t, db, "Test 2", partSeed{"Part 5", 101, 2})

	part5 := idStr(seeded.partID("Part 5"))
	tests := []struct {
		name string
		req  dto.HistoryCreateRequest
		kind apperror.Kind
	}{
		{"unknown type", dto.HistoryCreateRequest{Type: "FullTest", TestID: seeded.test.ID, Status: "save"}, apperror.KindValidation},
		{"unknown status", dto.HistoryCreateRequest{Type: "exam", TestID: seeded.test.ID, Status: "draft"}, apperror.KindValidation},
		{"practice without parts", dto.HistoryCreateRequest{Type: "practice", TestID: seeded.test.ID, Status: "save"}, apperror.KindValidation},
		{"non numeric answer", dto.HistoryCreateRequest{Type: "exam", DataProgress: map[string]string{"q1": "3"}, TestID: seeded.test.ID, Status: "save"}, apperror.KindValidation},
		{"non numeric part", dto.HistoryCreateRequest{Type: "practice", PartIDList: []string{"Part 5"}, TestID: seeded.test.ID, Status: "save"}, apperror.KindValidation},
		{"unknown test", dto.HistoryCreateRequest{Type: "exam", TestID: 9999, Status: "save"}, apperror.KindNotFound},
		{"part of another test", dto.HistoryCreateRequest{Type: "practice", PartIDList: []string{part5, idStr(other.partID("Part 5"))}, TestID: seeded.test.ID, Status: "save"}, apperror.KindNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpsertProgress(context.Background(), 1, tt.req)
			if got := apperror.KindOf(err); err == nil || got != tt.kind {
				t.Errorf("err = %v (kind %v), want kind %v", err, got, tt.kind)
			}
		})
	}
}

func TestGetSubmittedDetailExamScenario(t *testing.T) {
	db := newTestDB(t)
	c := &clock{t: time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)}
	svc := newHistoryService(t, db, c)
	ctx := context.Background()
	seeded := seedTest(t, db, "Listening Test", listeningSeeds...)

	answers := map[string]string{}
	for n := 1; n <= 40; n++ {
		q, a := seeded.answer(n, true)
		answers[q] = a
	}
	for n := 41; n <= 50; n++ {
		q, a := seeded.answer(n, false)
		answers[q] = a
	}
	created, err := svc.UpsertProgress(ctx, 3, dto.HistoryCreateRequest{
		DataProgress: answers,
		Type:         "exam",
		TestID:       seeded.test.ID,
		Status:       model.HistoryStatusSubmit,
	})
	if err != nil {
		t.Fatalf("UpsertProgress: %v", err)
	}

	detail, err := svc.GetSubmittedDetail(ctx, 3, created.HistoryID)
	if err != nil {
		t.Fatalf("GetSubmittedDetail: %v", err)
	}
	if detail.TotalQuestion != 100 || detail.CorrectCount != 40 || detail.IncorrectCount != 10 || detail.NoAnswer != 50 {
		t.Errorf("unexpected counts %+v", detail)
	}
	if detail.CorrectListening != 40 || detail.CorrectReading != 0 || detail.Accuracy != 40 {
		t.Errorf("listening=%d reading=%d accuracy=%v", detail.CorrectListening, detail.CorrectReading, detail.Accuracy)
	}
	if detail.TestName != "Listening Test" || len(detail.ResultByPart) != 4 {
		t.Errorf("unexpected detail %+v", detail)
	}
	sum := 0
	for _, p := range detail.ResultByPart {
		if p.CorrectCount+p.IncorrectCount+p.NoAnswer != p.TotalQuestion {
			t.Errorf("%s does not add up: %+v", p.PartOrder, p)
		}
		sum += p.TotalQuestion
	}
	if sum != 100 {
		t.Errorf("part totals sum to %d", sum)
	}
	if detail.EstimatedScore == nil || detail.EstimatedScore.Reading != 5 || detail.EstimatedScore.Total != detail.EstimatedScore.Listening+5 {
		t.Errorf("unexpected estimated score %+v", detail.EstimatedScore)
	}

	if _, err := svc.GetSubmittedDetail(ctx, 4, created.HistoryID); !apperror.Is(err, apperror.KindNotFound) {
		t.Errorf("expected another user's history to be not found, got %v", err)
	}
	if _, err := svc.GetSubmittedDetail(ctx, 3, 424242); !apperror.Is(err, apperror.KindNotFound) {
		t.Errorf("expected unknown history to be not found, got %v", err)
	}
}

func TestGetSubmittedDetailPracticeUnanswered(t *testing.T) {
	db := newTestDB(t)
	svc := newHistoryService(t, db, &clock{t: time.Now()})
	ctx := context.Background()
	seeded := seedTest(t, db, "Full Test", append(listeningSeeds, readingSeeds...)...)

	created, err := svc.UpsertProgress(ctx, 3, dto.HistoryCreateRequest{
		Type:             "practice",
		PartIDList:       []string{idStr(seeded.partID("Part 5"))},
		PracticeDuration: intPtr(300),
		TestID:           seeded.test.ID,
		Status:           model.HistoryStatusSubmit,
	})
	if err != nil {
		t.Fatalf("UpsertProgress: %v", err)
	}

	detail, err := svc.GetSubmittedDetail(ctx, 3, created.HistoryID)
	if err != nil {
		t.Fatalf("GetSubmittedDetail: %v", err)
	}
	if detail.TotalQuestion != 30 || detail.CorrectCount != 0 || detail.NoAnswer != 30 || detail.Accuracy != 0 {
		t.Errorf("unexpected detail %+v", detail)
	}
	if len(detail.ResultByPart) != 1 || detail.ResultByPart[0].PartOrder != "Part 5" {
		t.Errorf("unexpected parts %+v", detail.ResultByPart)
	}
	if detail.EstimatedScore != nil {
		t.Errorf("practice results carry no estimated score, got %+v", detail.EstimatedScore)
	}
}

func TestListSubmittedHistoryNewestFirst(t *testing.T) {
	db := newTestDB(t)
	c := &clock{t: time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)}
	svc := newHistoryService(t, db, c)
	ctx := context.Background()
	seeded := seedTest(t, db, "Reading Test", readingSeeds...)
	empty := seedTest(t, db, "Empty Test")

	q, a := seeded.answer(101, true)
	for i := 0; i < 15; i++ {
		c.Advance(time.Minute)
		_, err := svc.UpsertProgress(ctx, 5, dto.HistoryCreateRequest{
			DataProgress: map[string]string{q: a},
			Type:         "practice",
			PartIDList:   []string{idStr(seeded.partID("Part 5")), idStr(seeded.partID("Part 7"))},
			TestID:       seeded.test.ID,
			Status:       model.HistoryStatusSubmit,
		})
		if err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}

	list, err := svc.ListSubmittedHistory(ctx, 5)
	if err != nil {
		t.Fatalf("ListSubmittedHistory: %v", err)
	}
	if len(list) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i].CreateAt.After(list[i-1].CreateAt) {
			t.Errorf("entry %d is newer than entry %d", i, i-1)
		}
	}
	latest := list[0]
	if !latest.CreateAt.Equal(c.t) {
		t.Errorf("newest entry at %v, want %v", latest.CreateAt, c.t)
	}
	if latest.Score != "1/84" {
		t.Errorf("score = %q, want 1/84", latest.Score)
	}
	if fmt.Sprint(latest.PartOrderList) != "[Part 5 Part 7]" {
		t.Errorf("part orders = %v", latest.PartOrderList)
	}

	c.Advance(time.Minute)
	if _, err := svc.UpsertProgress(ctx, 6, dto.HistoryCreateRequest{
		Type:   "exam",
		TestID: empty.test.ID,
		Status: model.HistoryStatusSubmit,
	}); err != nil {
		t.Fatalf("submit empty test: %v", err)
	}
	list, err = svc.ListSubmittedHistory(ctx, 6)
	if err != nil || len(list) != 1 {
		t.Fatalf("ListSubmittedHistory(6) = %v, %v", list, err)
	}
	if list[0].Score != "0/0" || len(list[0].PartOrderList) != 0 {
		t.Errorf("unexpected empty-test summary %+v", list[0])
	}

	list, err = svc.ListSubmittedHistory(ctx, 99)
	if err != nil || len(list) != 0 {
		t.Errorf("expected empty list for a new user, got %v, %v", list, err)
	}
}

func TestListSubmittedHistoryKeepsDeletedTests(t *testing.T) {
	db := newTestDB(t)
	c := &clock{t: time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)}
	svc := newHistoryService(t, db, c)
	ctx := context.Background()
	kept := seedTest(t, db, "Kept Test", readingSeeds...)
	removed := seedTest(t, db, "Removed Test", readingSeeds...)

	for _, seeded := range []*seededTest{kept, removed} {
		c.Advance(time.Minute)
		q, a := seeded.answer(101, true)
		_, err := svc.UpsertProgress(ctx, 7, dto.HistoryCreateRequest{
			DataProgress: map[string]string{q: a},
			Type:         "exam",
			TestID:       seeded.test.ID,
			Status:       model.HistoryStatusSubmit,
		})
		if err != nil {
			t.Fatalf("submit on %s: %v", seeded.test.Title, err)
		}
	}
	if err := db.Delete(&model.Test{}, removed.test.ID).Error; err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	list, err := svc.ListSubmittedHistory(ctx, 7)
	if err != nil {
		t.Fatalf("ListSubmittedHistory: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(list))
	}
	gone, live := list[0], list[1]
	if gone.TestID != removed.test.ID || gone.TestName != "" || gone.Score != "0/0" || len(gone.PartOrderList) != 0 {
		t.Errorf("unexpected summary for deleted test %+v", gone)
	}
	if live.TestID != kept.test.ID || live.TestName != "Kept Test" || live.Score != "1/100" {
		t.Errorf("unexpected summary for kept test %+v", live)
	}
}

func TestScoreConverter(t *testing.T) {
	conv := NewScoreConverterService()
	tests := []struct {
		correct            int
		listening, reading int
	}{
		{0, 5, 5},
		{100, 495, 495},
		{60, 300, 275},
	}
	for _, tt := range tests {
		l, err := conv.ConvertListening(tt.correct)
		if err != nil || l != tt.listening {
			t.Errorf("ConvertListening(%d) = %d, %v, want %d", tt.correct, l, err, tt.listening)
		}
		r, err := conv.ConvertReading(tt.correct)
		if err != nil || r != tt.reading {
			t.Errorf("ConvertReading(%d) = %d, %v, want %d", tt.correct, r, err, tt.reading)
		}
	}
	if _, err := conv.ConvertListening(101); err == nil {
		t.Error("expected error above 100 correct answers")
	}

	prev := 0
	for n := 0; n <= 100; n++ {
		l, _ := conv.ConvertListening(n)
		if l < prev || l%5 != 0 {
			t.Fatalf("listening score %d for %d correct is not monotonic multiple of 5", l, n)
		}
		prev = l
	}
}
