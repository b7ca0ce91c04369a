// Package repository provides data access operations for the application.
package repository

import (
	"context"
	"errors"
	"time"

	apperrors "tours-api/internal/errors"
	"tours-api/internal/models"
	"tours-api/internal/query"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TourRepository defines the interface for tour data operations
type TourRepository interface {
	Create(ctx context.Context, tour *models.Tour) error
	FindAll(ctx context.Context, opts *query.Options) ([]models.Tour, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Tour, error)
	Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateTourRequest) (*models.Tour, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	TopCheapest(ctx context.Context, limit int64) ([]models.Tour, error)
	Stats(ctx context.Context) ([]models.TourStats, error)
	MonthlyPlan(ctx context.Context, year int) ([]models.MonthlyPlanEntry, error)
}

// tourRepository implements TourRepository using MongoDB
type tourRepository struct {
	collection *mongo.Collection
}

// NewTourRepository creates a new TourRepository and ensures the unique name
// index exists.
func NewTourRepository(db *mongo.Database) TourRepository {
	repo := &tourRepository{
		collection: db.Collection("tours"),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, _ = repo.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return repo
}

// secretTourFilter excludes secret tours. It is merged into every find filter
// and prepended to every aggregation, so secret tours can never leak
// regardless of what the client filters on.
var secretTourFilter = bson.M{"secretTour": bson.M{"$ne": true}}

// withSecretFilter merges the secret-tour exclusion into a filter without
// mutating the original.
func withSecretFilter(filter bson.M) bson.M {
	merged := bson.M{"secretTour": bson.M{"$ne": true}}
	for k, v := range filter {
		if k == "secretTour" {
			continue // not overridable from the outside
		}
		merged[k] = v
	}
	return merged
}

// beforeSave runs the pre-save pipeline stages: slug derivation from the name.
func beforeSave(tour *models.Tour) {
	tour.Slug = models.Slugify(tour.Name)
}

// afterLoad runs the post-load pipeline stages: derived durationWeeks.
func afterLoad(tour *models.Tour) {
	tour.DurationWeeks = float64(tour.Duration) / 7
}

// Create inserts a new tour into the database
func (r *tourRepository) Create(ctx context.Context, tour *models.Tour) error {
	beforeSave(tour)
	tour.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, tour)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrTourNameTaken
		}
		return err
	}

	tour.ID = result.InsertedID.(primitive.ObjectID)
	afterLoad(tour)
	return nil
}

// FindAll returns tours matching the translated query options. The secret
// tour exclusion is always applied before the client's filter.
func (r *tourRepository) FindAll(ctx context.Context, opts *query.Options) ([]models.Tour, error) {
	findOpts := options.Find().
		SetSort(opts.Sort).
		SetProjection(opts.Projection).
		SetSkip(opts.Skip).
		SetLimit(opts.Limit)

	cursor, err := r.collection.Find(ctx, withSecretFilter(opts.Filter), findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tours []models.Tour
	if err := cursor.All(ctx, &tours); err != nil {
		return nil, err
	}

	// Return empty slice instead of nil
	if tours == nil {
		tours = []models.Tour{}
	}

	for i := range tours {
		afterLoad(&tours[i])
	}

	return tours, nil
}

// FindByID finds a tour by its ID
func (r *tourRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Tour, error) {
	var tour models.Tour

	err := r.collection.FindOne(ctx, withSecretFilter(bson.M{"_id": id})).Decode(&tour)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTourNotFound
		}
		return nil, err
	}

	afterLoad(&tour)
	return &tour, nil
}

// Update applies a partial patch to a tour. The slug is recomputed whenever
// the name changes.
func (r *tourRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateTourRequest) (*models.Tour, error) {
	updateDoc := bson.M{}

	if update.Name != nil {
		updateDoc["name"] = *update.Name
		updateDoc["slug"] = models.Slugify(*update.Name)
	}
	if update.Duration != nil {
		updateDoc["duration"] = *update.Duration
	}
	if update.MaxGroupSize != nil {
		updateDoc["maxGroupSize"] = *update.MaxGroupSize
	}
	if update.Difficulty != nil {
		updateDoc["difficulty"] = *update.Difficulty
	}
	if update.RatingsAverage != nil {
		updateDoc["ratingsAverage"] = *update.RatingsAverage
	}
	if update.RatingsQuantity != nil {
		updateDoc["ratingsQuantity"] = *update.RatingsQuantity
	}
	if update.Price != nil {
		updateDoc["price"] = *update.Price
	}
	if update.PriceDiscount != nil {
		updateDoc["priceDiscount"] = *update.PriceDiscount
	}
	if update.Summary != nil {
		updateDoc["summary"] = *update.Summary
	}
	if update.Description != nil {
		updateDoc["description"] = *update.Description
	}
	if update.ImageCover != nil {
		updateDoc["imageCover"] = *update.ImageCover
	}
	if update.Images != nil {
		updateDoc["images"] = *update.Images
	}
	if update.StartDates != nil {
		updateDoc["startDates"] = *update.StartDates
	}
	if update.SecretTour != nil {
		updateDoc["secretTour"] = *update.SecretTour
	}

	// An empty patch is a no-op; the server rejects an empty $set, so
	// return the unchanged document instead.
	if len(updateDoc) == 0 {
		var tour models.Tour
		if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&tour); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, apperrors.ErrTourNotFound
			}
			return nil, err
		}
		afterLoad(&tour)
		return &tour, nil
	}

	var tour models.Tour
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updateDoc},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&tour)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTourNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrTourNameTaken
		}
		return nil, err
	}

	afterLoad(&tour)
	return &tour, nil
}

// Delete removes a tour from the database
func (r *tourRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrTourNotFound
	}

	return nil
}

// TopCheapest returns the cheapest tours, ties broken by rating descending.
func (r *tourRepository) TopCheapest(ctx context.Context, limit int64) ([]models.Tour, error) {
	findOpts := options.Find().
		SetSort(bson.D{{Key: "price", Value: 1}, {Key: "ratingsAverage", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, withSecretFilter(bson.M{}), findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tours []models.Tour
	if err := cursor.All(ctx, &tours); err != nil {
		return nil, err
	}
	if tours == nil {
		tours = []models.Tour{}
	}

	for i := range tours {
		afterLoad(&tours[i])
	}

	return tours, nil
}

// Stats aggregates well-rated tours grouped by uppercased difficulty.
func (r *tourRepository) Stats(ctx context.Context) ([]models.TourStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: secretTourFilter}},
		{{Key: "$match", Value: bson.M{"ratingsAverage": bson.M{"$gte": 4.5}}}},
		{{Key: "$group", Value: bson.M{
			"_id":        bson.M{"$toUpper": "$difficulty"},
			"numTours":   bson.M{"$sum": 1},
			"numRatings": bson.M{"$sum": "$ratingsQuantity"},
			"avgRating":  bson.M{"$avg": "$ratingsAverage"},
			"minRating":  bson.M{"$min": "$ratingsAverage"},
			"maxRating":  bson.M{"$max": "$ratingsAverage"},
			"avgPrice":   bson.M{"$avg": "$price"},
			"minPrice":   bson.M{"$min": "$price"},
			"maxPrice":   bson.M{"$max": "$price"},
		}}},
		{{Key: "$sort", Value: bson.M{"avgPrice": 1}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var stats []models.TourStats
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, err
	}
	if stats == nil {
		stats = []models.TourStats{}
	}

	return stats, nil
}

// MonthlyPlan expands start dates within the given year and groups them by
// calendar month, busiest months first.
func (r *tourRepository) MonthlyPlan(ctx context.Context, year int) ([]models.MonthlyPlanEntry, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: secretTourFilter}},
		{{Key: "$unwind", Value: "$startDates"}},
		{{Key: "$match", Value: bson.M{
			"startDates": bson.M{"$gte": from, "$lte": to},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":           bson.M{"$month": "$startDates"},
			"numTourStarts": bson.M{"$sum": 1},
			"tours":         bson.M{"$push": "$name"},
		}}},
		{{Key: "$addFields", Value: bson.M{"month": "$_id"}}},
		{{Key: "$project", Value: bson.M{"_id": 0}}},
		{{Key: "$sort", Value: bson.M{"numTourStarts": -1}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var plan []models.MonthlyPlanEntry
	if err := cursor.All(ctx, &plan); err != nil {
		return nil, err
	}
	if plan == nil {
		plan = []models.MonthlyPlanEntry{}
	}

	return plan, nil
}
