package dto

// RegisterRequest creates a new account with the "user" role.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=150"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest accepts either a username or an email as credential.
type LoginRequest struct {
	Credential string `json:"credential" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type TokenRequest struct {
	Token string `json:"token" binding:"required"`
}

type OtpRequest struct {
	Credential     string `json:"credential" binding:"required"`
	CredentialType string `json:"credential_type" binding:"required,oneof=email phone"`
	Purpose        string `json:"purpose" binding:"required,oneof=reset_password verify_account verify_email verify_phone two_factor_auth"`
}

type VerifyOtpRequest struct {
	OTP     string `json:"otp" binding:"required"`
	Purpose string `json:"purpose" binding:"required,oneof=reset_password verify_account verify_email verify_phone two_factor_auth"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// HistoryCreateRequest saves or submits progress on a test.
// DataProgress maps question id to the chosen answer id, both as decimal strings.
type HistoryCreateRequest struct {
	DataProgress     map[string]string `json:"data_progress"`
	Type             string            `json:"type" binding:"required"`
	PartIDList       []string          `json:"part_id_list"`
	PracticeDuration *int              `json:"practice_duration"`
	ExamDuration     *int              `json:"exam_duration"`
	TestID           uint              `json:"test_id" binding:"required"`
	Status           string            `json:"status" binding:"required,oneof=save submit"`
}

type TranslateQuestionRequest struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	LanguageID string `json:"language_id" binding:"required"`
}

type ExplainQuestionRequest struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	LanguageID string `json:"language_id" binding:"required"`
}

type MediaRequest struct {
	MediaID    uint   `json:"media_id" binding:"required"`
	LanguageID string `json:"language_id"`
}
