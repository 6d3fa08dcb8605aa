package model

import (
	"time"

	"gorm.io/datatypes"
)

type Question struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	PartID         uint           `json:"part_id" gorm:"not null;index"`
	MediaID        uint           `json:"media_id" gorm:"not null;index"`
	QuestionNumber int            `json:"question_number" gorm:"not null"` // 1-100 listening, 101-200 reading
	Content        string         `json:"content" gorm:"type:text"`
	Answers        []Answer       `json:"answers,omitempty" gorm:"foreignKey:QuestionID"`
	TranslateJSON  datatypes.JSON `json:"-" gorm:"column:question_translate_json"`
	ExplainJSON    datatypes.JSON `json:"-" gorm:"column:question_explain_json"`
	CreatedAt      time.Time      `json:"created_at"`
}
