package domain

import "time"

type VerificationLevel string

const (
	VerificationBasic      VerificationLevel = "BASIC"
	VerificationIDVerified VerificationLevel = "ID_VERIFIED"
	VerificationPremium    VerificationLevel = "PREMIUM"
)

type User struct {
	ID                string
	Email             string
	FullName          string
	Phone             string
	VerificationLevel VerificationLevel
	TrustScore        int
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type UserRepository interface {
	CreateUser(user *User) error
	GetUserByID(userID string) (*User, error)
	UpdateVerificationLevel(userID string, level VerificationLevel) error
	UpdateTrustScore(userID string, score int) error
	DeactivateUser(userID string) error
}
