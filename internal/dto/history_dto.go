package dto

import "time"

type HistoryCreateResponse struct {
	HistoryID uint   `json:"history_id"`
	Status    string `json:"status"`
	Message   string `json:"message"`
}

// HistoryResponse is the stored progress record as saved by the user.
type HistoryResponse struct {
	ID               uint              `json:"id"`
	DataProgress     map[string]string `json:"data_progress"`
	Type             string            `json:"type"`
	PartIDList       []string          `json:"part_id_list"`
	PracticeDuration int               `json:"practice_duration"`
	ExamDuration     int               `json:"exam_duration"`
	TestID           uint              `json:"test_id"`
	UserID           uint              `json:"user_id"`
	CreateAt         time.Time         `json:"create_at"`
	Status           string            `json:"status"`
}

type PartResultDetail struct {
	PartOrder      string `json:"part_order"`
	TotalQuestion  int    `json:"total_question"`
	CorrectCount   int    `json:"correct_count"`
	IncorrectCount int    `json:"incorrect_count"`
	NoAnswer       int    `json:"no_answer"`
}

// EstimatedScore is the approximate TOEIC scaled score of a full exam.
type EstimatedScore struct {
	Listening int `json:"listening"`
	Reading   int `json:"reading"`
	Total     int `json:"total"`
}

type HistoryResultDetailResponse struct {
	HistoryID        uint               `json:"history_id"`
	TestID           uint               `json:"test_id"`
	TestType         string             `json:"test_type"`
	TestName         string             `json:"test_name"`
	CorrectCount     int                `json:"correct_count"`
	IncorrectCount   int                `json:"incorrect_count"`
	CorrectListening int                `json:"correct_listening"`
	CorrectReading   int                `json:"correct_reading"`
	NoAnswer         int                `json:"no_answer"`
	TotalQuestion    int                `json:"total_question"`
	Accuracy         float64            `json:"accuracy"`
	PracticeDuration int                `json:"practice_duration"`
	ExamDuration     int                `json:"exam_duration"`
	CreateAt         time.Time          `json:"create_at"`
	DataProgress     map[string]string  `json:"data_progress"`
	PartIDList       []string           `json:"part_id_list"`
	ResultByPart     []PartResultDetail `json:"result_by_part"`
	EstimatedScore   *EstimatedScore    `json:"estimated_score,omitempty"`
}

type HistoryResultListResponse struct {
	HistoryID        uint      `json:"history_id"`
	Score            string    `json:"score"`
	TestID           uint      `json:"test_id"`
	TestType         string    `json:"test_type"`
	TestName         string    `json:"test_name"`
	PracticeDuration int       `json:"practice_duration"`
	ExamDuration     int       `json:"exam_duration"`
	PartIDList       []string  `json:"part_id_list"`
	PartOrderList    []string  `json:"part_order_list"`
	CreateAt         time.Time `json:"create_at"`
}
