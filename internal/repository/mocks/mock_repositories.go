// Package mocks provides mock implementations of repository interfaces for testing.
package mocks

import (
	"context"
	"time"

	"tours-api/internal/models"
	"tours-api/internal/query"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockTourRepository is a mock implementation of TourRepository.
type MockTourRepository struct {
	CreateFunc      func(ctx context.Context, tour *models.Tour) error
	FindAllFunc     func(ctx context.Context, opts *query.Options) ([]models.Tour, error)
	FindByIDFunc    func(ctx context.Context, id primitive.ObjectID) (*models.Tour, error)
	UpdateFunc      func(ctx context.Context, id primitive.ObjectID, update *models.UpdateTourRequest) (*models.Tour, error)
	DeleteFunc      func(ctx context.Context, id primitive.ObjectID) error
	TopCheapestFunc func(ctx context.Context, limit int64) ([]models.Tour, error)
	StatsFunc       func(ctx context.Context) ([]models.TourStats, error)
	MonthlyPlanFunc func(ctx context.Context, year int) ([]models.MonthlyPlanEntry, error)
}

func (m *MockTourRepository) Create(ctx context.Context, tour *models.Tour) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tour)
	}
	return nil
}

func (m *MockTourRepository) FindAll(ctx context.Context, opts *query.Options) ([]models.Tour, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, opts)
	}
	return nil, nil
}

func (m *MockTourRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Tour, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTourRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateTourRequest) (*models.Tour, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, update)
	}
	return nil, nil
}

func (m *MockTourRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockTourRepository) TopCheapest(ctx context.Context, limit int64) ([]models.Tour, error) {
	if m.TopCheapestFunc != nil {
		return m.TopCheapestFunc(ctx, limit)
	}
	return nil, nil
}

func (m *MockTourRepository) Stats(ctx context.Context) ([]models.TourStats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx)
	}
	return nil, nil
}

func (m *MockTourRepository) MonthlyPlan(ctx context.Context, year int) ([]models.MonthlyPlanEntry, error) {
	if m.MonthlyPlanFunc != nil {
		return m.MonthlyPlanFunc(ctx, year)
	}
	return nil, nil
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	CreateFunc           func(ctx context.Context, user *models.User) error
	FindByIDFunc         func(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmailFunc      func(ctx context.Context, email string) (*models.User, error)
	FindAllFunc          func(ctx context.Context) ([]models.User, error)
	SetResetTokenFunc    func(ctx context.Context, id primitive.ObjectID, tokenHash string, expires time.Time) error
	FindByResetTokenFunc func(ctx context.Context, tokenHash string) (*models.User, error)
	ClearResetTokenFunc  func(ctx context.Context, id primitive.ObjectID) error
	UpdatePasswordFunc   func(ctx context.Context, id primitive.ObjectID, passwordHash string, changedAt time.Time) error
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockUserRepository) SetResetToken(ctx context.Context, id primitive.ObjectID, tokenHash string, expires time.Time) error {
	if m.SetResetTokenFunc != nil {
		return m.SetResetTokenFunc(ctx, id, tokenHash, expires)
	}
	return nil
}

func (m *MockUserRepository) FindByResetToken(ctx context.Context, tokenHash string) (*models.User, error) {
	if m.FindByResetTokenFunc != nil {
		return m.FindByResetTokenFunc(ctx, tokenHash)
	}
	return nil, nil
}

func (m *MockUserRepository) ClearResetToken(ctx context.Context, id primitive.ObjectID) error {
	if m.ClearResetTokenFunc != nil {
		return m.ClearResetTokenFunc(ctx, id)
	}
	return nil
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string, changedAt time.Time) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, id, passwordHash, changedAt)
	}
	return nil
}
