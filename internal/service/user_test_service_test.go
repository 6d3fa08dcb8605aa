package service

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/lshigami/toeic-practice-api/internal/apperror"
	"github.com/lshigami/toeic-practice-api/internal/dto"
	"github.com/lshigami/toeic-practice-api/internal/repository"
	"github.com/lshigami/toeic-practice-api/internal/storage"
	"gorm.io/gorm"
)

func newCatalog(t *testing.T, db *gorm.DB) (UserTestService, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewFSStore(dir)
	if err != nil {
		t.Fatalf("NewFSStore: %v", err)
	}
	return NewUserTestService(repository.NewTestRepository(db), store), dir
}

func TestGetAllTestsAndDetails(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newCatalog(t, db)
	ctx := context.Background()
	seeded := seedTest(t, db, "ETS 2024 Test 1", listeningSeeds...)
	other := seedTest(t, db, "ETS 2024 Test 2", readingSeeds...)

	summaries, err := svc.GetAllTests(ctx)
	if err != nil {
		t.Fatalf("GetAllTests: %v", err)
	}
	if len(summaries) != 2 || len(summaries[0].PartList) != 4 || summaries[0].PartList[2].TotalQuestion != 39 {
		t.Fatalf("unexpected summaries %+v", summaries)
	}

	detail, err := svc.GetTestDetails(ctx, seeded.test.ID, nil)
	if err != nil {
		t.Fatalf("GetTestDetails: %v", err)
	}
	if len(detail.PartList) != 4 {
		t.Fatalf("expected 4 parts, got %d", len(detail.PartList))
	}
	first := detail.PartList[0].MediaQuestionList[0].QuestionList[0]
	if first.QuestionNumber != 1 || len(first.AnswerList) != 3 || !first.AnswerList[0].IsCorrect {
		t.Errorf("unexpected first question %+v", first)
	}

	part3 := seeded.partID("Part 3")
	filtered, err := svc.GetTestDetails(ctx, seeded.test.ID, []uint{part3, part3})
	if err != nil || len(filtered.PartList) != 1 || filtered.PartList[0].PartID != part3 {
		t.Errorf("filtered details = %+v, %v", filtered, err)
	}

	if _, err := svc.GetTestDetails(ctx, seeded.test.ID, []uint{other.partID("Part 5")}); !apperror.Is(err, apperror.KindNotFound) {
		t.Errorf("expected foreign part to be not found, got %v", err)
	}
	if _, err := svc.GetTestDetails(ctx, 777, nil); !apperror.Is(err, apperror.KindNotFound) {
		t.Errorf("expected unknown test to be not found, got %v", err)
	}
}

func TestPartAudio(t *testing.T) {
	db := newTestDB(t)
	svc, dir := newCatalog(t, db)
	ctx := context.Background()
	seeded := seedTest(t, db, "Audio Test", partSeed{"Part 1", 1, 6}, partSeed{"Part 5", 101, 30})

	part1, part5 := seeded.partID("Part 1"), seeded.partID("Part 5")
	audioURL := "assets/Test_1/part1.mp3"
	if err := db.Table("toeicapp_part").Where("id = ?", part1).Update("audio_url", audioURL).Error; err != nil {
		t.Fatalf("set audio url: %v", err)
	}

	url, err := svc.GetPartAudioURL(ctx, seeded.test.ID, part1)
	if err != nil || url.AudioStreamURL == nil {
		t.Fatalf("GetPartAudioURL = %+v, %v", url, err)
	}
	url, err = svc.GetPartAudioURL(ctx, seeded.test.ID, part5)
	if err != nil || url.AudioStreamURL != nil {
		t.Errorf("reading part should have no audio, got %+v, %v", url, err)
	}

	if _, err := svc.OpenPartAudio(ctx, seeded.test.ID, part1); !apperror.Is(err, apperror.KindNotFound) {
		t.Errorf("expected missing file to be not found, got %v", err)
	}

	if err := os.MkdirAll(filepath.Join(dir, "Test_1"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "Test_1", "part1.mp3"), []byte("ID3audio"), 0o644); err != nil {
		t.Fatal(err)
	}
	audio, err := svc.OpenPartAudio(ctx, seeded.test.ID, part1)
	if err != nil {
		t.Fatalf("OpenPartAudio: %v", err)
	}
	defer audio.Content.Close()
	data, _ := io.ReadAll(audio.Content)
	if string(data) != "ID3audio" || audio.Name != "part1.mp3" {
		t.Errorf("unexpected audio %q named %q", data, audio.Name)
	}

	if _, err := svc.OpenPartAudio(ctx, seeded.test.ID, part5); !apperror.Is(err, apperror.KindNotFound) {
		t.Errorf("expected part without audio to be not found, got %v", err)
	}
}

func TestAdminCreateTest(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminTestService(repository.NewTestRepository(db))
	ctx := context.Background()

	audio := "assets/New_Test/part1.mp3"
	req := dto.TestCreateDTO{
		Title: "New Test",
		Parts: []dto.PartCreateDTO{
			{
				PartOrder: "Part 1",
				AudioURL:  &audio,
				Medias: []dto.MediaCreateDTO{{
					Name: "Photo 1",
					Questions: []dto.QuestionCreateDTO{{
						QuestionNumber: 1,
						Answers:        []dto.AnswerCreateDTO{{Content: "(A)", IsCorrect: true}, {Content: "(B)"}},
					}},
				}},
			},
			{
				PartOrder: "Part 5",
				Medias: []dto.MediaCreateDTO{{
					Questions: []dto.QuestionCreateDTO{{
						QuestionNumber: 101,
						Content:        "The report ___ yesterday.",
						Answers:        []dto.AnswerCreateDTO{{Content: "(A) was sent", IsCorrect: true}, {Content: "(B) send"}},
					}},
				}},
			},
		},
	}

	created, err := svc.CreateTest(ctx, req)
	if err != nil {
		t.Fatalf("CreateTest: %v", err)
	}
	if created.TestID == 0 || len(created.PartList) != 2 {
		t.Fatalf("unexpected response %+v", created)
	}
	q := created.PartList[1].MediaQuestionList[0].QuestionList[0]
	if q.QuestionID == 0 || q.QuestionNumber != 101 || len(q.AnswerList) != 2 || q.AnswerList[0].AnswerID == 0 {
		t.Errorf("question not stored with ids: %+v", q)
	}

	catalog, _ := newCatalog(t, db)
	detail, err := catalog.GetTestDetails(ctx, created.TestID, nil)
	if err != nil || len(detail.PartList) != 2 || detail.PartList[0].PartAudioURL == nil {
		t.Errorf("created test not readable: %+v, %v", detail, err)
	}

	if _, err := svc.CreateTest(ctx, req); !apperror.Is(err, apperror.KindConflict) {
		t.Errorf("expected duplicate title to conflict, got %v", err)
	}

	bad := func(mutate func(r *dto.TestCreateDTO)) dto.TestCreateDTO {
		r := dto.TestCreateDTO{Title: "Bad", Parts: []dto.PartCreateDTO{{
			PartOrder: "Part 5",
			Medias: []dto.MediaCreateDTO{{Questions: []dto.QuestionCreateDTO{{
				QuestionNumber: 101,
				Answers:        []dto.AnswerCreateDTO{{Content: "(A)", IsCorrect: true}, {Content: "(B)"}},
			}}}},
		}}}
		mutate(&r)
		return r
	}
	invalid := map[string]dto.TestCreateDTO{
		"duplicate part": bad(func(r *dto.TestCreateDTO) { r.Parts = append(r.Parts, r.Parts[0]) }),
		"two correct answers": bad(func(r *dto.TestCreateDTO) {
			r.Parts[0].Medias[0].Questions[0].Answers[1].IsCorrect = true
		}),
		"listening number in reading part": bad(func(r *dto.TestCreateDTO) {
			r.Parts[0].Medias[0].Questions[0].QuestionNumber = 50
		}),
		"single answer": bad(func(r *dto.TestCreateDTO) {
			r.Parts[0].Medias[0].Questions[0].Answers = r.Parts[0].Medias[0].Questions[0].Answers[:1]
		}),
	}
	for name, r := range invalid {
		if _, err := svc.CreateTest(ctx, r); !apperror.Is(err, apperror.KindValidation) {
			t.Errorf("%s: expected validation error, got %v", name, err)
		}
	}
}
