// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"
	"net/url"

	"tours-api/internal/models"
)

// MockTourService is a mock implementation of TourServicer.
type MockTourService struct {
	ListToursFunc        func(ctx context.Context, params url.Values) ([]models.TourView, error)
	CreateTourFunc       func(ctx context.Context, req *models.CreateTourRequest) (*models.Tour, error)
	GetTourFunc          func(ctx context.Context, id string) (*models.Tour, error)
	UpdateTourFunc       func(ctx context.Context, id string, req *models.UpdateTourRequest) (*models.Tour, error)
	DeleteTourFunc       func(ctx context.Context, id string) error
	TopCheapestFunc      func(ctx context.Context) ([]models.Tour, error)
	StatsFunc            func(ctx context.Context) ([]models.TourStats, error)
	MonthlyPlanFunc      func(ctx context.Context, year int) ([]models.MonthlyPlanEntry, error)
	CoverDownloadURLFunc func(ctx context.Context, id string) (*models.PresignedURLResponse, error)
	CoverUploadURLFunc   func(ctx context.Context, id, contentType string) (*models.PresignedURLResponse, error)
}

func (m *MockTourService) ListTours(ctx context.Context, params url.Values) ([]models.TourView, error) {
	if m.ListToursFunc != nil {
		return m.ListToursFunc(ctx, params)
	}
	return nil, nil
}

func (m *MockTourService) CreateTour(ctx context.Context, req *models.CreateTourRequest) (*models.Tour, error) {
	if m.CreateTourFunc != nil {
		return m.CreateTourFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockTourService) GetTour(ctx context.Context, id string) (*models.Tour, error) {
	if m.GetTourFunc != nil {
		return m.GetTourFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTourService) UpdateTour(ctx context.Context, id string, req *models.UpdateTourRequest) (*models.Tour, error) {
	if m.UpdateTourFunc != nil {
		return m.UpdateTourFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockTourService) DeleteTour(ctx context.Context, id string) error {
	if m.DeleteTourFunc != nil {
		return m.DeleteTourFunc(ctx, id)
	}
	return nil
}

func (m *MockTourService) TopCheapest(ctx context.Context) ([]models.Tour, error) {
	if m.TopCheapestFunc != nil {
		return m.TopCheapestFunc(ctx)
	}
	return nil, nil
}

func (m *MockTourService) Stats(ctx context.Context) ([]models.TourStats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx)
	}
	return nil, nil
}

func (m *MockTourService) MonthlyPlan(ctx context.Context, year int) ([]models.MonthlyPlanEntry, error) {
	if m.MonthlyPlanFunc != nil {
		return m.MonthlyPlanFunc(ctx, year)
	}
	return nil, nil
}

func (m *MockTourService) CoverDownloadURL(ctx context.Context, id string) (*models.PresignedURLResponse, error) {
	if m.CoverDownloadURLFunc != nil {
		return m.CoverDownloadURLFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTourService) CoverUploadURL(ctx context.Context, id, contentType string) (*models.PresignedURLResponse, error) {
	if m.CoverUploadURLFunc != nil {
		return m.CoverUploadURLFunc(ctx, id, contentType)
	}
	return nil, nil
}

// MockAuthService is a mock implementation of AuthServicer.
type MockAuthService struct {
	SignupFunc            func(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error)
	LoginFunc             func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	AuthenticateTokenFunc func(ctx context.Context, token string) (*models.User, error)
	ForgotPasswordFunc    func(ctx context.Context, req *models.ForgotPasswordRequest, resetBaseURL string) error
	ResetPasswordFunc     func(ctx context.Context, rawToken string, req *models.ResetPasswordRequest) (*models.AuthResponse, error)
}

func (m *MockAuthService) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) AuthenticateToken(ctx context.Context, token string) (*models.User, error) {
	if m.AuthenticateTokenFunc != nil {
		return m.AuthenticateTokenFunc(ctx, token)
	}
	return nil, nil
}

func (m *MockAuthService) ForgotPassword(ctx context.Context, req *models.ForgotPasswordRequest, resetBaseURL string) error {
	if m.ForgotPasswordFunc != nil {
		return m.ForgotPasswordFunc(ctx, req, resetBaseURL)
	}
	return nil
}

func (m *MockAuthService) ResetPassword(ctx context.Context, rawToken string, req *models.ResetPasswordRequest) (*models.AuthResponse, error) {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, rawToken, req)
	}
	return nil, nil
}

// MockUserService is a mock implementation of UserServicer.
type MockUserService struct {
	GetAllUsersFunc func(ctx context.Context) ([]models.User, error)
}

func (m *MockUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	if m.GetAllUsersFunc != nil {
		return m.GetAllUsersFunc(ctx)
	}
	return nil, nil
}
