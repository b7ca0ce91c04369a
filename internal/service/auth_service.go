package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	apperrors "tours-api/internal/errors"
	"tours-api/internal/mail"
	"tours-api/internal/models"
	"tours-api/internal/repository"
	"tours-api/pkg/auth"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// resetTokenTTL is the validity window of a password-reset token.
const resetTokenTTL = 10 * time.Minute

// AuthService handles authentication business logic.
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager *auth.JWTManager
	mailer     mail.Mailer
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, jwtManager *auth.JWTManager, mailer mail.Mailer) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		mailer:     mailer,
	}
}

// Signup creates a new user account and returns a signed token. The password
// confirmation is checked here and then discarded, never persisted.
func (s *AuthService) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	if req.Password != req.PasswordConfirm {
		return nil, apperrors.BadRequest("passwordConfirm does not match the entered password")
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Role:     role,
		Photo:    req.Photo,
		Password: hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.jwtManager.GenerateToken(user.ID.Hex())
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, User: user}, nil
}

// Login authenticates a user and returns a signed token. Unknown emails and
// wrong passwords are indistinguishable to the client.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := auth.CheckPassword(req.Password, user.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(user.ID.Hex())
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token}, nil
}

// AuthenticateToken verifies a bearer token and returns the user it belongs
// to. Fails when the token is invalid or expired, when the user no longer
// exists, or when the password was changed after the token was issued.
func (s *AuthService) AuthenticateToken(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.jwtManager.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, apperrors.New(http.StatusUnauthorized, "the user belonging to this token no longer exists")
	}

	if claims.IssuedAt != nil && user.PasswordChangedAfter(claims.IssuedAt.Time) {
		return nil, apperrors.ErrPasswordChanged
	}

	return user, nil
}

// ForgotPassword generates a reset token, persists only its hash with a
// 10-minute expiry, and emails the raw token as a reset link. When the email
// cannot be sent, the reset fields are cleared and a server error reported.
func (s *AuthService) ForgotPassword(ctx context.Context, req *models.ForgotPasswordRequest, resetBaseURL string) error {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return err
	}

	rawToken, tokenHash, err := auth.GenerateResetToken()
	if err != nil {
		return err
	}

	if err := s.userRepo.SetResetToken(ctx, user.ID, tokenHash, time.Now().Add(resetTokenTTL)); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/users/reset-password/%s", resetBaseURL, rawToken)
	body := mail.ResetPasswordBody(resetURL)

	if err := s.mailer.Send(user.Email, "Your password reset link, valid for 10 minutes.", body); err != nil {
		_ = s.userRepo.ClearResetToken(ctx, user.ID)
		return apperrors.ErrEmailSendFailed
	}

	return nil
}

// ResetPassword consumes a raw reset token: it matches the stored hash within
// the expiry window, sets the new password, clears the reset fields so the
// token is single-use, and returns a fresh signed token.
func (s *AuthService) ResetPassword(ctx context.Context, rawToken string, req *models.ResetPasswordRequest) (*models.AuthResponse, error) {
	if req.Password != req.PasswordConfirm {
		return nil, apperrors.BadRequest("passwordConfirm does not match the entered password")
	}

	user, err := s.userRepo.FindByResetToken(ctx, auth.HashResetToken(rawToken))
	if err != nil {
		return nil, err
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	// Backdate a second so the freshly issued token is not older than the
	// recorded change.
	changedAt := time.Now().Add(-time.Second)
	if err := s.userRepo.UpdatePassword(ctx, user.ID, hashedPassword, changedAt); err != nil {
		return nil, err
	}

	token, err := s.jwtManager.GenerateToken(user.ID.Hex())
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, User: user}, nil
}
