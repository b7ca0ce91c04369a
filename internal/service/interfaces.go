package service

import (
	"context"
	"net/url"

	"tours-api/internal/models"
)

// TourServicer defines the interface for tour business logic.
type TourServicer interface {
	ListTours(ctx context.Context, params url.Values) ([]models.TourView, error)
	CreateTour(ctx context.Context, req *models.CreateTourRequest) (*models.Tour, error)
	GetTour(ctx context.Context, id string) (*models.Tour, error)
	UpdateTour(ctx context.Context, id string, req *models.UpdateTourRequest) (*models.Tour, error)
	DeleteTour(ctx context.Context, id string) error
	TopCheapest(ctx context.Context) ([]models.Tour, error)
	Stats(ctx context.Context) ([]models.TourStats, error)
	MonthlyPlan(ctx context.Context, year int) ([]models.MonthlyPlanEntry, error)
	CoverDownloadURL(ctx context.Context, id string) (*models.PresignedURLResponse, error)
	CoverUploadURL(ctx context.Context, id, contentType string) (*models.PresignedURLResponse, error)
}

// AuthServicer defines the interface for authentication business logic.
type AuthServicer interface {
	Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	AuthenticateToken(ctx context.Context, token string) (*models.User, error)
	ForgotPassword(ctx context.Context, req *models.ForgotPasswordRequest, resetBaseURL string) error
	ResetPassword(ctx context.Context, rawToken string, req *models.ResetPasswordRequest) (*models.AuthResponse, error)
}

// UserServicer defines the interface for user business logic.
type UserServicer interface {
	GetAllUsers(ctx context.Context) ([]models.User, error)
}
