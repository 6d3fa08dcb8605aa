package service

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lshigami/toeic-practice-api/config"
	"github.com/lshigami/toeic-practice-api/internal/apperror"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
	TokenTypePurpose = "purpose"

	BearerTokenType = "bearer"
)

// Claims is the payload of every token this service issues. Subject is the username.
type Claims struct {
	UserID    uint   `json:"user_id"`
	Role      string `json:"role,omitempty"`
	TokenType string `json:"token_type"`
	Purpose   string `json:"purpose,omitempty"`
	jwt.RegisteredClaims
}

type TokenService interface {
	IssuePair(userID uint, username, role string) (*TokenPair, error)
	IssuePurposeToken(userID uint, username, purpose string, expiresAt time.Time) (string, error)
	Parse(token, wantType string) (*Claims, error)
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type tokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewTokenService(cfg *config.Config) TokenService {
	return &tokenService{
		secret:     []byte(cfg.JWT.Secret),
		accessTTL:  cfg.JWT.AccessTTL,
		refreshTTL: cfg.JWT.RefreshTTL,
		now:        time.Now,
	}
}

func (s *tokenService) IssuePair(userID uint, username, role string) (*TokenPair, error) {
	now := s.now()
	access, err := s.sign(Claims{UserID: userID, Role: role, TokenType: TokenTypeAccess}, username, now, now.Add(s.accessTTL))
	if err != nil {
		return nil, err
	}
	refresh, err := s.sign(Claims{UserID: userID, Role: role, TokenType: TokenTypeRefresh}, username, now, now.Add(s.refreshTTL))
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// IssuePurposeToken proves a verified OTP. It expires together with the OTP.
func (s *tokenService) IssuePurposeToken(userID uint, username, purpose string, expiresAt time.Time) (string, error) {
	return s.sign(Claims{UserID: userID, TokenType: TokenTypePurpose, Purpose: purpose}, username, s.now(), expiresAt)
}

func (s *tokenService) sign(claims Claims, subject string, issuedAt, expiresAt time.Time) (string, error) {
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   subject,
		ID:        strconv.FormatInt(issuedAt.UnixNano(), 36),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", apperror.Wrap(apperror.KindInternal, "failed to sign token", err)
	}
	return signed, nil
}

// Parse validates signature, expiry and token type.
func (s *tokenService) Parse(tokenString, wantType string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperror.Wrap(apperror.KindUnauthorized, "token has expired", err)
		}
		return nil, apperror.Wrap(apperror.KindUnauthorized, "invalid token", err)
	}
	if !token.Valid {
		return nil, apperror.Unauthorized("invalid token")
	}
	if claims.TokenType != wantType {
		return nil, apperror.Unauthorized("invalid token type %q, expected %s", claims.TokenType, wantType)
	}
	if claims.UserID == 0 {
		return nil, apperror.Unauthorized("token has no user")
	}
	return claims, nil
}
