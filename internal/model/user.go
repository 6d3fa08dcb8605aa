package model

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	Username     string     `json:"username" gorm:"size:150;not null;uniqueIndex"`
	Email        string     `json:"email" gorm:"size:254;not null;uniqueIndex"`
	PasswordHash string     `json:"-" gorm:"column:password;size:255;not null"`
	Role         string     `json:"role" gorm:"size:20;not null;default:user"`
	DateJoined   time.Time  `json:"date_joined" gorm:"autoCreateTime"`
	OTP          *string    `json:"-" gorm:"column:otp;size:10;index"`
	OTPPurpose   *string    `json:"-" gorm:"column:otp_purpose;size:32"`
	OTPIsUsed    bool       `json:"-" gorm:"column:otp_is_used;not null;default:false"`
	OTPExpireAt  *time.Time `json:"-" gorm:"column:otp_expire_at"`
	OTPCreatedAt *time.Time `json:"-" gorm:"column:otp_created_at"`
	UpdatedAt    time.Time  `json:"-"`
}
