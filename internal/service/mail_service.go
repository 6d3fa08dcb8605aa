package service

import (
	"context"
	"fmt"

	"github.com/lshigami/toeic-practice-api/config"
	"github.com/lshigami/toeic-practice-api/internal/apperror"
	"github.com/rs/zerolog/log"
	"github.com/wneessen/go-mail"
)

const (
	OTPPurposeResetPassword = "reset_password"
	OTPPurposeVerifyAccount = "verify_account"
)

// MailService delivers one-time passwords by email.
type MailService interface {
	SendOTP(ctx context.Context, to, otp, purpose string, expiryMinutes int) error
}

type mailService struct {
	cfg config.SMTP
}

func NewMailService(cfg *config.Config) MailService {
	return &mailService{cfg: cfg.SMTP}
}

func (s *mailService) SendOTP(ctx context.Context, to, otp, purpose string, expiryMinutes int) error {
	if s.cfg.Sender == "" {
		return apperror.Upstream("email delivery is not configured", nil)
	}

	msg, err := buildOTPMessage(s.cfg.Sender, to, otp, purpose, expiryMinutes)
	if err != nil {
		return apperror.Validation("invalid email address %q", to)
	}

	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.cfg.Sender),
		mail.WithPassword(s.cfg.Password),
	}
	if s.cfg.Port == 465 {
		opts = append(opts, mail.WithSSLPort(false))
	} else {
		opts = append(opts, mail.WithTLSPortPolicy(mail.TLSMandatory))
	}
	client, err := mail.NewClient(s.cfg.Server, opts...)
	if err != nil {
		return apperror.Upstream("failed to create mail client", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		log.Error().Err(err).Str("to", to).Str("purpose", purpose).Msg("SendOTP: failed to send email")
		return apperror.Upstream("failed to send email", err)
	}
	log.Info().Str("to", to).Str("purpose", purpose).Msg("OTP email sent")
	return nil
}

func buildOTPMessage(sender, to, otp, purpose string, expiryMinutes int) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.FromFormat("TOEIC Practice", sender); err != nil {
		return nil, err
	}
	if err := msg.To(to); err != nil {
		return nil, err
	}

	subject, title := "Your TOEIC Practice verification code", "Verification Code"
	if purpose == OTPPurposeResetPassword {
		subject, title = "Reset your TOEIC Practice password", "Password Reset"
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf(otpPlainBody, title, otp, expiryMinutes))
	msg.AddAlternativeString(mail.TypeTextHTML, fmt.Sprintf(otpHTMLBody, title, otp, expiryMinutes))
	return msg, nil
}

const otpPlainBody = `TOEIC Practice - %s

Your code is: %s

This code will expire in %d minutes.
Never share this code with anyone. If you didn't request it, please ignore this email.
`

const otpHTMLBody = `<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>TOEIC Practice - %s</h2>
  <p>Your code is:</p>
  <p style="font-size: 32px; font-weight: bold; letter-spacing: 6px; font-family: monospace;">%s</p>
  <p>This code will expire in %d minutes.</p>
  <p style="color: #666;">Never share this code with anyone. If you didn't request it, please ignore this email.</p>
</body>
</html>`
