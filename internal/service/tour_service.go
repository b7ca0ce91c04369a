// Package service contains business logic for the application.
package service

import (
	"context"
	"net/url"
	"time"

	"tours-api/internal/cache"
	apperrors "tours-api/internal/errors"
	"tours-api/internal/models"
	"tours-api/internal/query"
	"tours-api/internal/repository"
	"tours-api/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	tourCacheTTL      = 15 * time.Minute
	aggregateCacheTTL = 5 * time.Minute
	presignExpiry     = 15 * time.Minute
	topCheapestLimit  = 5
)

// TourService handles business logic for tour operations.
type TourService struct {
	repo    repository.TourRepository
	cache   cache.Cache
	storage storage.Storage
}

// NewTourService creates a new TourService.
func NewTourService(repo repository.TourRepository, cache cache.Cache, storage storage.Storage) *TourService {
	return &TourService{
		repo:    repo,
		cache:   cache,
		storage: storage,
	}
}

// ListTours translates raw query parameters and returns matching tours as
// JSON views. When the client limited fields, each view carries only the
// allow-listed keys.
func (s *TourService) ListTours(ctx context.Context, params url.Values) ([]models.TourView, error) {
	opts, err := query.Translate(params)
	if err != nil {
		return nil, err
	}

	tours, err := s.repo.FindAll(ctx, opts)
	if err != nil {
		return nil, err
	}

	views := make([]models.TourView, len(tours))
	for i := range tours {
		views[i] = tours[i].View(opts.Fields)
	}
	return views, nil
}

// CreateTour validates and persists a new tour.
func (s *TourService) CreateTour(ctx context.Context, req *models.CreateTourRequest) (*models.Tour, error) {
	if req.PriceDiscount > 0 && req.PriceDiscount >= req.Price {
		return nil, apperrors.BadRequest("discount price must be lower than regular price")
	}

	ratingsAverage := 4.0
	if req.RatingsAverage != nil {
		ratingsAverage = *req.RatingsAverage
	}

	tour := &models.Tour{
		Name:            req.Name,
		Duration:        req.Duration,
		MaxGroupSize:    req.MaxGroupSize,
		Difficulty:      req.Difficulty,
		RatingsAverage:  ratingsAverage,
		RatingsQuantity: req.RatingsQuantity,
		Price:           req.Price,
		PriceDiscount:   req.PriceDiscount,
		Summary:         req.Summary,
		Description:     req.Description,
		ImageCover:      req.ImageCover,
		Images:          req.Images,
		StartDates:      req.StartDates,
		SecretTour:      req.SecretTour,
	}

	if err := s.repo.Create(ctx, tour); err != nil {
		return nil, err
	}

	s.invalidateAggregates(ctx)

	return tour, nil
}

// GetTour retrieves a tour by ID (with caching).
func (s *TourService) GetTour(ctx context.Context, id string) (*models.Tour, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrInvalidTourID
	}

	cacheKey := cache.TourCacheKey(id)
	var tour models.Tour
	found, err := s.cache.Get(ctx, cacheKey, &tour)
	if err == nil && found {
		return &tour, nil // Cache hit
	}

	dbTour, err := s.repo.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}

	// Cache is best effort
	_ = s.cache.Set(ctx, cacheKey, dbTour, tourCacheTTL)

	return dbTour, nil
}

// UpdateTour applies a partial patch with validators re-run. The
// discount/price invariant is re-checked against the effective values.
func (s *TourService) UpdateTour(ctx context.Context, id string, req *models.UpdateTourRequest) (*models.Tour, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrInvalidTourID
	}

	if req.PriceDiscount != nil || req.Price != nil {
		current, err := s.repo.FindByID(ctx, objectID)
		if err != nil {
			return nil, err
		}

		price := current.Price
		if req.Price != nil {
			price = *req.Price
		}
		discount := current.PriceDiscount
		if req.PriceDiscount != nil {
			discount = *req.PriceDiscount
		}
		if discount > 0 && discount >= price {
			return nil, apperrors.BadRequest("discount price must be lower than regular price")
		}
	}

	tour, err := s.repo.Update(ctx, objectID, req)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, cache.TourCacheKey(id))
	s.invalidateAggregates(ctx)

	return tour, nil
}

// DeleteTour removes a tour.
func (s *TourService) DeleteTour(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrInvalidTourID
	}

	if err := s.repo.Delete(ctx, objectID); err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, cache.TourCacheKey(id))
	s.invalidateAggregates(ctx)

	return nil
}

// TopCheapest returns the five cheapest tours, best rated first on ties.
func (s *TourService) TopCheapest(ctx context.Context) ([]models.Tour, error) {
	return s.repo.TopCheapest(ctx, topCheapestLimit)
}

// Stats returns the per-difficulty aggregation (with caching).
func (s *TourService) Stats(ctx context.Context) ([]models.TourStats, error) {
	var stats []models.TourStats
	found, err := s.cache.Get(ctx, cache.StatsCacheKey, &stats)
	if err == nil && found {
		return stats, nil
	}

	stats, err = s.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Set(ctx, cache.StatsCacheKey, stats, aggregateCacheTTL)

	return stats, nil
}

// MonthlyPlan returns the per-month start-date aggregation for a year (with
// caching).
func (s *TourService) MonthlyPlan(ctx context.Context, year int) ([]models.MonthlyPlanEntry, error) {
	cacheKey := cache.MonthlyPlanCacheKey(year)
	var plan []models.MonthlyPlanEntry
	found, err := s.cache.Get(ctx, cacheKey, &plan)
	if err == nil && found {
		return plan, nil
	}

	plan, err = s.repo.MonthlyPlan(ctx, year)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Set(ctx, cacheKey, plan, aggregateCacheTTL)

	return plan, nil
}

// CoverDownloadURL returns a pre-signed URL for fetching a tour's cover image.
func (s *TourService) CoverDownloadURL(ctx context.Context, id string) (*models.PresignedURLResponse, error) {
	tour, err := s.GetTour(ctx, id)
	if err != nil {
		return nil, err
	}

	url, err := s.storage.PresignDownload(ctx, tour.ImageCover, presignExpiry)
	if err != nil {
		return nil, err
	}

	return &models.PresignedURLResponse{
		URL:       url,
		ExpiresIn: int(presignExpiry.Seconds()),
	}, nil
}

// CoverUploadURL returns a pre-signed URL for uploading a tour's cover image.
func (s *TourService) CoverUploadURL(ctx context.Context, id, contentType string) (*models.PresignedURLResponse, error) {
	tour, err := s.GetTour(ctx, id)
	if err != nil {
		return nil, err
	}

	url, err := s.storage.PresignUpload(ctx, tour.ImageCover, contentType, presignExpiry)
	if err != nil {
		return nil, err
	}

	return &models.PresignedURLResponse{
		URL:       url,
		ExpiresIn: int(presignExpiry.Seconds()),
	}, nil
}

// invalidateAggregates drops cached aggregations after a write (best effort).
// Monthly-plan entries are keyed per year, so they go through a pattern scan.
func (s *TourService) invalidateAggregates(ctx context.Context) {
	_ = s.cache.Delete(ctx, cache.StatsCacheKey)
	_ = s.cache.DeleteByPattern(ctx, cache.MonthlyPlanCachePattern)
}
