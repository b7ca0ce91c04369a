package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles.
const (
	RoleAdmin     = "admin"
	RoleLeadGuide = "lead-guide"
	RoleGuide     = "guide"
	RoleUser      = "user"
)

// User represents a user in the system.
type User struct {
	ID                   primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Name                 string             `json:"name" bson:"name" example:"John Doe"`
	Email                string             `json:"email" bson:"email" example:"user@example.com"`
	Role                 string             `json:"role" bson:"role" example:"user"`
	Photo                string             `json:"photo,omitempty" bson:"photo,omitempty"`
	Password             string             `json:"-" bson:"password"` // "-" = never include in JSON response
	PasswordChangedAt    time.Time          `json:"-" bson:"passwordChangedAt,omitempty"`
	PasswordResetToken   string             `json:"-" bson:"passwordResetToken,omitempty"`
	PasswordResetExpires time.Time          `json:"-" bson:"passwordResetExpires,omitempty"`
	CreatedAt            time.Time          `json:"-" bson:"createdAt"`
}

// PasswordChangedAfter reports whether the password was changed after the
// given token issue time. Users who never changed their password always
// return false.
func (u *User) PasswordChangedAfter(issuedAt time.Time) bool {
	if u.PasswordChangedAt.IsZero() {
		return false
	}
	return issuedAt.Before(u.PasswordChangedAt)
}

// SignupRequest is the payload for creating a user account. PasswordConfirm
// is write-only and checked against Password only at signup, never persisted.
type SignupRequest struct {
	Name            string `json:"name" binding:"required,min=2" example:"John Doe"`
	Email           string `json:"email" binding:"required,email" example:"user@example.com"`
	Role            string `json:"role" binding:"omitempty,oneof=admin lead-guide guide user" example:"user"`
	Photo           string `json:"photo" binding:"omitempty"`
	Password        string `json:"password" binding:"required,min=8" example:"secret1234"`
	PasswordConfirm string `json:"passwordConfirm" binding:"required,eqfield=Password" example:"secret1234"`
}

// LoginRequest is the payload for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"secret1234"`
}

// ForgotPasswordRequest is the payload for requesting a reset link.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email" example:"user@example.com"`
}

// ResetPasswordRequest is the payload for consuming a reset token.
type ResetPasswordRequest struct {
	Password        string `json:"password" binding:"required,min=8" example:"newsecret1"`
	PasswordConfirm string `json:"passwordConfirm" binding:"required,eqfield=Password" example:"newsecret1"`
}

// AuthResponse is the response after signup, login, or password reset.
type AuthResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
	User  *User  `json:"user,omitempty"`
}
