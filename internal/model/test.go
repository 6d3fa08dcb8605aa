package model

import (
	"time"

	"gorm.io/gorm"
)

type Test struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       string         `json:"title" gorm:"size:255;not null;uniqueIndex"` // "ETS 2024 Test 1"
	Description string         `json:"description,omitempty" gorm:"type:text"`
	Duration    int            `json:"duration" gorm:"not null;default:120"` // minutes
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TestPart links a test to the parts it contains.
type TestPart struct {
	TestID uint `gorm:"primaryKey;autoIncrement:false"`
	PartID uint `gorm:"primaryKey;autoIncrement:false;index"`
}

type Part struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	PartOrder string    `json:"part_order" gorm:"size:20;not null"` // "Part 1" .. "Part 7"
	Title     string    `json:"title" gorm:"size:255"`
	AudioURL  *string   `json:"audio_url,omitempty" gorm:"size:512"` // only listening parts carry audio
	Medias    []Media   `json:"medias,omitempty" gorm:"foreignKey:PartID"`
	CreatedAt time.Time `json:"created_at"`
}

// Media groups the questions that share a passage, picture or conversation.
type Media struct {
	ID            uint       `gorm:"primarykey" json:"id"`
	PartID        uint       `json:"part_id" gorm:"not null;index"`
	Name          string     `json:"name" gorm:"size:255"`
	ParagraphMain string     `json:"paragraph_main" gorm:"type:text"` // text or base64 image
	AudioScript   *string    `json:"audio_script,omitempty" gorm:"type:text"`
	Questions     []Question `json:"questions,omitempty" gorm:"foreignKey:MediaID"`
}
