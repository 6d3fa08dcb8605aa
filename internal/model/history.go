package model

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

const (
	HistoryStatusSave   = "save"
	HistoryStatusSubmit = "submit"
)

// History is a user's progress on a test. A user has at most one "save" row per test;
// SaveSlot carries a unique key while the row is a save and is NULL once submitted.
type History struct {
	ID               uint                                  `gorm:"primarykey" json:"id"`
	UserID           uint                                  `json:"user_id" gorm:"not null;index:idx_history_user_status"`
	TestID           uint                                  `json:"test_id" gorm:"not null;index"`
	Answers          datatypes.JSONType[map[string]string] `json:"data_progress" gorm:"column:dataprogress"`
	PartIDs          datatypes.JSONType[[]string]          `json:"part_id_list" gorm:"column:part"`
	Type             string                                `json:"type" gorm:"size:20;not null"` // exam or practice
	Status           string                                `json:"status" gorm:"size:10;not null;index:idx_history_user_status"`
	PracticeDuration int                                   `json:"practice_duration" gorm:"not null;default:0"`
	ExamDuration     int                                   `json:"exam_duration" gorm:"not null;default:0"`
	SaveSlot         *string                               `json:"-" gorm:"size:64;uniqueIndex"`
	CreatedAt        time.Time                             `json:"create_at" gorm:"column:create_at;index"`
}

func SaveSlotKey(userID, testID uint) string {
	return fmt.Sprintf("%d:%d", userID, testID)
}
