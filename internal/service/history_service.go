package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/lshigami/toeic-practice-api/config"
	"github.com/lshigami/toeic-practice-api/internal/apperror"
	"github.com/lshigami/toeic-practice-api/internal/dto"
	"github.com/lshigami/toeic-practice-api/internal/model"
	"github.com/lshigami/toeic-practice-api/internal/repository"
	"github.com/lshigami/toeic-practice-api/internal/scoring"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type HistoryService interface {
	UpsertProgress(ctx context.Context, userID uint, req dto.HistoryCreateRequest) (*dto.HistoryCreateResponse, error)
	GetSavedProgress(ctx context.Context, userID, testID uint) (*dto.HistoryResponse, error)
	ListSubmittedHistory(ctx context.Context, userID uint) ([]dto.HistoryResultListResponse, error)
	GetSubmittedDetail(ctx context.Context, userID, historyID uint) (*dto.HistoryResultDetailResponse, error)
}

type historyService struct {
	historyRepo  repository.HistoryRepository
	testRepo     repository.TestRepository
	questionRepo repository.QuestionRepository
	converter    ScoreConverterService
	listLimit    int
	now          func() time.Time
}

func NewHistoryService(
	historyRepo repository.HistoryRepository,
	testRepo repository.TestRepository,
	questionRepo repository.QuestionRepository,
	converter ScoreConverterService,
	cfg *config.Config,
) HistoryService {
	limit := cfg.History.ListLimit
	if limit <= 0 {
		limit = 10
	}
	return &historyService{
		historyRepo:  historyRepo,
		testRepo:     testRepo,
		questionRepo: questionRepo,
		converter:    converter,
		listLimit:    limit,
		now:          time.Now,
	}
}

func (s *historyService) UpsertProgress(ctx context.Context, userID uint, req dto.HistoryCreateRequest) (*dto.HistoryCreateResponse, error) {
	mode, err := scoring.ParseMode(req.Type)
	if err != nil {
		return nil, err
	}
	if req.Status != model.HistoryStatusSave && req.Status != model.HistoryStatusSubmit {
		return nil, apperror.Validation("invalid status %q, expected save or submit", req.Status)
	}
	if _, err := parseSheet(req.DataProgress, true); err != nil {
		return nil, err
	}
	selection, err := parseIDList(req.PartIDList, true)
	if err != nil {
		return nil, err
	}

	partIDs := req.PartIDList
	switch mode {
	case scoring.ModePractice:
		if len(selection) == 0 {
			return nil, apperror.Validation("practice mode requires at least one part in part_id_list")
		}
	case scoring.ModeExam:
		// exam covers every part of the test
		partIDs = []string{}
		selection = nil
	}

	if _, err := s.testRepo.FindByID(ctx, req.TestID); err != nil {
		return nil, storeErr(err, fmt.Sprintf("test %d", req.TestID))
	}
	if len(selection) > 0 {
		parts, err := s.testRepo.FindParts(ctx, req.TestID)
		if err != nil {
			log.Error().Err(err).Uint("testID", req.TestID).Msg("UpsertProgress: failed to load parts")
			return nil, storeErr(err, "parts")
		}
		if _, err := scoring.ScopeParts(mode, partMetas(parts, nil), selection); err != nil {
			return nil, err
		}
	}

	answers := req.DataProgress
	if answers == nil {
		answers = map[string]string{}
	}
	history := &model.History{
		UserID:           userID,
		TestID:           req.TestID,
		Answers:          datatypes.NewJSONType(answers),
		PartIDs:          datatypes.NewJSONType(nonNil(partIDs)),
		Type:             string(mode),
		Status:           req.Status,
		PracticeDuration: intOrZero(req.PracticeDuration),
		ExamDuration:     intOrZero(req.ExamDuration),
		CreatedAt:        s.now().UTC(),
	}
	if req.Status == model.HistoryStatusSave {
		key := model.SaveSlotKey(userID, req.TestID)
		history.SaveSlot = &key
	}

	created, err := s.historyRepo.Upsert(ctx, history)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Uint("testID", req.TestID).Msg("UpsertProgress: failed to store history")
		return nil, storeErr(err, "history")
	}
	log.Info().
		Uint("historyID", history.ID).
		Uint("userID", userID).
		Uint("testID", req.TestID).
		Str("status", req.Status).
		Bool("created", created).
		Msg("History stored")

	return &dto.HistoryCreateResponse{
		HistoryID: history.ID,
		Status:    history.Status,
		Message:   fmt.Sprintf("History %s successfully", req.Type),
	}, nil
}

func (s *historyService) GetSavedProgress(ctx context.Context, userID, testID uint) (*dto.HistoryResponse, error) {
	history, err := s.historyRepo.FindSaveSlot(ctx, userID, testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Error().Err(err).Uint("userID", userID).Uint("testID", testID).Msg("GetSavedProgress: failed to load save slot")
		return nil, storeErr(err, "history")
	}
	return toHistoryResponse(history), nil
}

func (s *historyService) ListSubmittedHistory(ctx context.Context, userID uint) ([]dto.HistoryResultListResponse, error) {
	histories, err := s.historyRepo.FindSubmittedByUser(ctx, userID, s.listLimit)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("ListSubmittedHistory: failed to load histories")
		return nil, storeErr(err, "history")
	}

	titles := make(map[uint]*string)
	results := make([]dto.HistoryResultListResponse, 0, len(histories))
	for i := range histories {
		h := &histories[i]
		title, ok := titles[h.TestID]
		if !ok {
			test, err := s.testRepo.FindByID(ctx, h.TestID)
			switch {
			case err == nil:
				title = &test.Title
			case errors.Is(err, gorm.ErrRecordNotFound):
				log.Warn().Uint("testID", h.TestID).Uint("userID", userID).Msg("ListSubmittedHistory: test no longer exists")
			default:
				return nil, storeErr(err, fmt.Sprintf("test %d", h.TestID))
			}
			titles[h.TestID] = title
		}

		summary := dto.HistoryResultListResponse{
			HistoryID:        h.ID,
			Score:            "0/0",
			TestID:           h.TestID,
			TestType:         h.Type,
			PracticeDuration: h.PracticeDuration,
			ExamDuration:     h.ExamDuration,
			PartIDList:       nonNil(h.PartIDs.Data()),
			PartOrderList:    []string{},
			CreateAt:         h.CreatedAt,
		}
		if title == nil {
			results = append(results, summary)
			continue
		}
		summary.TestName = *title

		in := scoringInput(h)
		md, err := s.loadMetadata(ctx, h.TestID, in.Answers)
		if err != nil {
			if !apperror.Is(err, apperror.KindNotFound) {
				return nil, err
			}
			log.Warn().Err(err).Uint("historyID", h.ID).Msg("ListSubmittedHistory: history metadata missing")
			results = append(results, summary)
			continue
		}

		res, err := scoring.Score(in, md)
		if err != nil {
			log.Warn().Err(err).Uint("historyID", h.ID).Msg("ListSubmittedHistory: history cannot be scored")
		} else if res.TotalQuestion > 0 {
			summary.Score = fmt.Sprintf("%d/%d", res.Correct, res.TotalQuestion)
		}
		summary.PartOrderList = partOrderList(in, md.Parts)
		results = append(results, summary)
	}
	return results, nil
}

// GetSubmittedDetail scores a history against the current test content. Histories of
// other users are reported as not found.
func (s *historyService) GetSubmittedDetail(ctx context.Context, userID, historyID uint) (*dto.HistoryResultDetailResponse, error) {
	h, err := s.historyRepo.FindByID(ctx, historyID)
	if err != nil {
		return nil, storeErr(err, fmt.Sprintf("history %d", historyID))
	}
	if h.UserID != userID {
		return nil, apperror.NotFound("history %d not found", historyID)
	}

	test, err := s.testRepo.FindByID(ctx, h.TestID)
	if err != nil {
		return nil, storeErr(err, fmt.Sprintf("test %d", h.TestID))
	}
	in := scoringInput(h)
	md, err := s.loadMetadata(ctx, h.TestID, in.Answers)
	if err != nil {
		return nil, err
	}
	res, err := scoring.Score(in, md)
	if err != nil {
		log.Error().Err(err).Uint("historyID", historyID).Msg("GetSubmittedDetail: failed to score history")
		return nil, err
	}

	resp := &dto.HistoryResultDetailResponse{
		HistoryID:        h.ID,
		TestID:           h.TestID,
		TestType:         h.Type,
		TestName:         test.Title,
		CorrectCount:     res.Correct,
		IncorrectCount:   res.Incorrect,
		CorrectListening: res.CorrectListening,
		CorrectReading:   res.CorrectReading,
		NoAnswer:         res.NoAnswer,
		TotalQuestion:    res.TotalQuestion,
		Accuracy:         res.Accuracy,
		PracticeDuration: h.PracticeDuration,
		ExamDuration:     h.ExamDuration,
		CreateAt:         h.CreatedAt,
		DataProgress:     nonNilMap(h.Answers.Data()),
		PartIDList:       nonNil(h.PartIDs.Data()),
		ResultByPart:     make([]dto.PartResultDetail, 0, len(res.ByPart)),
	}
	for _, p := range res.ByPart {
		resp.ResultByPart = append(resp.ResultByPart, dto.PartResultDetail{
			PartOrder:      p.PartOrder,
			TotalQuestion:  p.TotalQuestion,
			CorrectCount:   p.Correct,
			IncorrectCount: p.Incorrect,
			NoAnswer:       p.NoAnswer,
		})
	}

	if in.Mode == scoring.ModeExam {
		estimate, err := s.converter.Estimate(res.CorrectListening, res.CorrectReading)
		if err != nil {
			log.Warn().Err(err).Uint("historyID", historyID).Msg("GetSubmittedDetail: failed to estimate scaled score")
		} else {
			resp.EstimatedScore = estimate
		}
	}
	return resp, nil
}

// loadMetadata resolves the test's parts, their question counts and the chosen answers.
func (s *historyService) loadMetadata(ctx context.Context, testID uint, sheet scoring.Sheet) (scoring.Metadata, error) {
	parts, err := s.testRepo.FindParts(ctx, testID)
	if err != nil {
		log.Error().Err(err).Uint("testID", testID).Msg("loadMetadata: failed to load parts")
		return scoring.Metadata{}, storeErr(err, "parts")
	}
	ids := make([]uint, 0, len(parts))
	for _, p := range parts {
		ids = append(ids, p.ID)
	}
	counts, err := s.testRepo.CountQuestionsByPart(ctx, ids)
	if err != nil {
		log.Error().Err(err).Uint("testID", testID).Msg("loadMetadata: failed to count questions")
		return scoring.Metadata{}, storeErr(err, "questions")
	}

	answerIDs := make([]uint, 0, len(sheet))
	for _, aid := range sheet {
		answerIDs = append(answerIDs, aid)
	}
	sort.Slice(answerIDs, func(i, j int) bool { return answerIDs[i] < answerIDs[j] })
	facts, err := s.questionRepo.FindAnswerFacts(ctx, answerIDs)
	if err != nil {
		log.Error().Err(err).Uint("testID", testID).Msg("loadMetadata: failed to resolve answers")
		return scoring.Metadata{}, storeErr(err, "answers")
	}

	lookup := make(scoring.Lookup, len(facts))
	for _, f := range facts {
		lookup[f.AnswerID] = f
	}
	return scoring.Metadata{Parts: partMetas(parts, counts), Answers: lookup}, nil
}

func partMetas(parts []model.Part, counts map[uint]int) []scoring.PartMeta {
	metas := make([]scoring.PartMeta, 0, len(parts))
	for _, p := range parts {
		metas = append(metas, scoring.PartMeta{ID: p.ID, Order: p.PartOrder, QuestionCount: counts[p.ID]})
	}
	return metas
}

// scoringInput reads a stored history leniently: malformed entries are skipped.
func scoringInput(h *model.History) scoring.Input {
	sheet, _ := parseSheet(h.Answers.Data(), false)
	selection, _ := parseIDList(h.PartIDs.Data(), false)
	mode := scoring.Mode(h.Type)
	if mode == scoring.ModeExam {
		selection = nil
	}
	return scoring.Input{Mode: mode, PartSelection: selection, Answers: sheet}
}

// partOrderList names the parts an attempt covers, every part when nothing was selected.
func partOrderList(in scoring.Input, parts []scoring.PartMeta) []string {
	scope := parts
	if in.Mode == scoring.ModePractice && len(in.PartSelection) > 0 {
		selected := make(map[uint]bool, len(in.PartSelection))
		for _, id := range in.PartSelection {
			selected[id] = true
		}
		scope = scope[:0:0]
		for _, p := range parts {
			if selected[p.ID] {
				scope = append(scope, p)
			}
		}
	}
	orders := make([]string, 0, len(scope))
	for _, p := range scope {
		orders = append(orders, p.Order)
	}
	return orders
}

// parseSheet converts {"question id": "answer id"} into a Sheet. In strict mode any
// non-numeric key or value is a validation error, otherwise it is skipped.
func parseSheet(raw map[string]string, strict bool) (scoring.Sheet, error) {
	sheet := make(scoring.Sheet, len(raw))
	for k, v := range raw {
		qid, errQ := strconv.ParseUint(k, 10, 64)
		aid, errA := strconv.ParseUint(v, 10, 64)
		if errQ != nil || errA != nil || qid == 0 || aid == 0 {
			if strict {
				return nil, apperror.Validation("invalid data_progress entry %q: %q, expected numeric ids", k, v)
			}
			continue
		}
		sheet[uint(qid)] = uint(aid)
	}
	return sheet, nil
}

func parseIDList(raw []string, strict bool) ([]uint, error) {
	ids := make([]uint, 0, len(raw))
	for _, v := range raw {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil || id == 0 {
			if strict {
				return nil, apperror.Validation("invalid part id %q", v)
			}
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

func toHistoryResponse(h *model.History) *dto.HistoryResponse {
	return &dto.HistoryResponse{
		ID:               h.ID,
		DataProgress:     nonNilMap(h.Answers.Data()),
		Type:             h.Type,
		PartIDList:       nonNil(h.PartIDs.Data()),
		PracticeDuration: h.PracticeDuration,
		ExamDuration:     h.ExamDuration,
		TestID:           h.TestID,
		UserID:           h.UserID,
		CreateAt:         h.CreatedAt,
		Status:           h.Status,
	}
}

func intOrZero(v *int) int {
	if v == nil || *v < 0 {
		return 0
	}
	return *v
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilMap(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}
