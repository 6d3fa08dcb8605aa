package service

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/lshigami/toeic-practice-api/config"
	"github.com/lshigami/toeic-practice-api/database"
	"github.com/lshigami/toeic-practice-api/internal/model"
	"github.com/lshigami/toeic-practice-api/internal/repository"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), database.GormConfig())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type partSeed struct {
	order       string
	firstNumber int
	count       int
}

// seededTest keeps the ids the tests answer with.
type seededTest struct {
	test  *model.Test
	parts []model.Part
	// question number -> question
	questions map[int]model.Question
}

func (s *seededTest) partID(order string) uint {
	for _, p := range s.parts {
		if p.PartOrder == order {
			return p.ID
		}
	}
	return 0
}

func seedTest(t *testing.T, db *gorm.DB, title string, seeds ...partSeed) *seededTest {
	t.Helper()
	parts := make([]model.Part, 0, len(seeds))
	for _, s := range seeds {
		media := model.Media{Name: s.order + " media"}
		for n := s.firstNumber; n < s.firstNumber+s.count; n++ {
			media.Questions = append(media.Questions, model.Question{
				QuestionNumber: n,
				Content:        "question",
				Answers: []model.Answer{
					{Content: "(A) right", IsCorrect: true},
					{Content: "(B) wrong"},
					{Content: "(C) wrong"},
				},
			})
		}
		parts = append(parts, model.Part{PartOrder: s.order, Medias: []model.Media{media}})
	}
	test := &model.Test{Title: title, Duration: 120}
	if err := repository.NewTestRepository(db).Create(context.Background(), test, parts); err != nil {
		t.Fatalf("create test: %v", err)
	}

	seeded := &seededTest{test: test, parts: parts, questions: map[int]model.Question{}}
	for _, p := range parts {
		for _, m := range p.Medias {
			for _, q := range m.Questions {
				seeded.questions[q.QuestionNumber] = q
			}
		}
	}
	return seeded
}

var listeningSeeds = []partSeed{
	{"Part 1", 1, 6},
	{"Part 2", 7, 25},
	{"Part 3", 32, 39},
	{"Part 4", 71, 30},
}

var readingSeeds = []partSeed{
	{"Part 5", 101, 30},
	{"Part 6", 131, 16},
	{"Part 7", 147, 54},
}

func testConfig() *config.Config {
	return &config.Config{
		JWT:     config.JWT{Secret: "test-secret", AccessTTL: 5 * time.Minute, RefreshTTL: 24 * time.Hour},
		OTP:     config.OTP{Length: 6, ExpiresIn: 5 * time.Minute},
		History: config.History{ListLimit: 10},
	}
}

// clock is a settable time source for services.
type clock struct{ t time.Time }

func (c *clock) Now() time.Time { return c.t }

func (c *clock) Advance(d time.Duration) { c.t = c.t.Add(d) }
