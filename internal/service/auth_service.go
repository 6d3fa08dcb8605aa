package service

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/toeic-practice-api/config"
	"github.com/lshigami/toeic-practice-api/internal/apperror"
	"github.com/lshigami/toeic-practice-api/internal/dto"
	"github.com/lshigami/toeic-practice-api/internal/model"
	"github.com/lshigami/toeic-practice-api/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const MinPasswordLength = 6

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.UserResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	RequestOTP(ctx context.Context, req dto.OtpRequest) (*dto.OtpResponse, error)
	VerifyOTP(ctx context.Context, req dto.VerifyOtpRequest) (*dto.VerifyOtpResponse, error)
	ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) (*dto.MessageResponse, error)
	Me(ctx context.Context, userID uint) (*dto.UserResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   TokenService
	mailer   MailService
	otp      config.OTP
	now      func() time.Time
}

func NewAuthService(userRepo repository.UserRepository, tokens TokenService, mailer MailService, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		mailer:   mailer,
		otp:      cfg.OTP,
		now:      time.Now,
	}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, storeErr(err, "user")
	}
	if exists {
		return nil, apperror.Conflict("username or email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "failed to hash password", err)
	}
	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleUser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		log.Error().Err(err).Str("username", username).Msg("Register: failed to create user")
		return nil, storeErr(err, "user")
	}
	log.Info().Uint("userID", user.ID).Str("username", username).Msg("User registered")

	resp, err := s.withTokens(user)
	if err != nil {
		return nil, err
	}
	return &dto.RegisterResponse{Message: "User registered successfully", User: *resp}, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByCredential(ctx, strings.TrimSpace(req.Credential))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("user not found")
		}
		return nil, storeErr(err, "user")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.Validation("invalid password")
	}
	return s.withTokens(user)
}

func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	claims, err := s.tokens.Parse(refreshToken, TokenTypeRefresh)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Unauthorized("user no longer exists")
		}
		return nil, storeErr(err, "user")
	}
	pair, err := s.tokens.IssuePair(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken, TokenType: BearerTokenType}, nil
}

// RequestOTP stores a fresh OTP on the user and emails it. A failed delivery clears the OTP again.
func (s *authService) RequestOTP(ctx context.Context, req dto.OtpRequest) (*dto.OtpResponse, error) {
	if req.CredentialType != "email" {
		return nil, apperror.Validation("OTP delivery by %s is not supported", req.CredentialType)
	}
	user, err := s.userRepo.FindByCredential(ctx, strings.ToLower(strings.TrimSpace(req.Credential)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("user not found")
		}
		return nil, storeErr(err, "user")
	}

	if err := s.userRepo.UpdateFields(ctx, user.ID, clearedOTP()); err != nil {
		return nil, storeErr(err, "user")
	}
	otp, err := generateOTP(s.otp.Length)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "failed to generate OTP", err)
	}
	now := s.now().UTC()
	expireAt := now.Add(s.otp.ExpiresIn)
	err = s.userRepo.UpdateFields(ctx, user.ID, map[string]interface{}{
		"otp":            otp,
		"otp_purpose":    req.Purpose,
		"otp_is_used":    false,
		"otp_expire_at":  expireAt,
		"otp_created_at": now,
	})
	if err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("RequestOTP: failed to store OTP")
		return nil, storeErr(err, "user")
	}

	minutes := int(s.otp.ExpiresIn / time.Minute)
	if err := s.mailer.SendOTP(ctx, user.Email, otp, req.Purpose, minutes); err != nil {
		if clearErr := s.userRepo.UpdateFields(ctx, user.ID, clearedOTP()); clearErr != nil {
			log.Error().Err(clearErr).Uint("userID", user.ID).Msg("RequestOTP: failed to clear OTP after mail failure")
		}
		if apperror.Is(err, apperror.KindUpstreamUnavailable) {
			return nil, err
		}
		return nil, apperror.Upstream("failed to send OTP email", err)
	}

	return &dto.OtpResponse{
		Success:          true,
		Message:          "OTP has been sent to your email",
		EmailSent:        true,
		ExpiresInMinutes: minutes,
	}, nil
}

func (s *authService) VerifyOTP(ctx context.Context, req dto.VerifyOtpRequest) (*dto.VerifyOtpResponse, error) {
	user, err := s.userRepo.FindByActiveOTP(ctx, strings.TrimSpace(req.OTP), req.Purpose, s.now().UTC())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Validation("invalid or expired OTP")
		}
		return nil, storeErr(err, "user")
	}
	expireAt := s.now().Add(s.otp.ExpiresIn)
	if user.OTPExpireAt != nil {
		expireAt = *user.OTPExpireAt
	}

	if err := s.userRepo.UpdateFields(ctx, user.ID, clearedOTP()); err != nil {
		return nil, storeErr(err, "user")
	}
	token, err := s.tokens.IssuePurposeToken(user.ID, user.Username, req.Purpose, expireAt)
	if err != nil {
		return nil, err
	}
	return &dto.VerifyOtpResponse{Success: true, Token: token, Message: "OTP verified successfully"}, nil
}

func (s *authService) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) (*dto.MessageResponse, error) {
	claims, err := s.tokens.Parse(req.Token, TokenTypePurpose)
	if err != nil {
		return nil, err
	}
	if claims.Purpose != OTPPurposeResetPassword {
		return nil, apperror.Unauthorized("token is not valid for password reset")
	}
	if err := validatePassword(req.NewPassword); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "failed to hash password", err)
	}
	fields := clearedOTP()
	fields["password"] = string(hash)
	if err := s.userRepo.UpdateFields(ctx, claims.UserID, fields); err != nil {
		log.Error().Err(err).Uint("userID", claims.UserID).Msg("ResetPassword: failed to update password")
		return nil, storeErr(err, "user")
	}
	log.Info().Uint("userID", claims.UserID).Msg("Password reset")
	return &dto.MessageResponse{Message: "Password has been reset successfully"}, nil
}

func (s *authService) Me(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, storeErr(err, "user")
	}
	var resp dto.UserResponse
	if err := copier.Copy(&resp, user); err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "error preparing user response", err)
	}
	return &resp, nil
}

func (s *authService) withTokens(user *model.User) (*dto.UserResponse, error) {
	pair, err := s.tokens.IssuePair(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, err
	}
	var resp dto.UserResponse
	if err := copier.Copy(&resp, user); err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "error preparing user response", err)
	}
	resp.AccessToken = pair.AccessToken
	resp.RefreshToken = pair.RefreshToken
	resp.TokenType = BearerTokenType
	return &resp, nil
}

func validatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return apperror.Validation("password must be at least %d characters", MinPasswordLength)
	}
	return nil
}

func clearedOTP() map[string]interface{} {
	return map[string]interface{}{
		"otp":            nil,
		"otp_purpose":    nil,
		"otp_is_used":    false,
		"otp_expire_at":  nil,
		"otp_created_at": nil,
	}
}

func generateOTP(length int) (string, error) {
	if length <= 0 {
		length = 6
	}
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
