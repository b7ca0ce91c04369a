// Package models defines data structures for the application.
package models

import (
	"encoding/json"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tour difficulty levels.
const (
	DifficultyEasy      = "easy"
	DifficultyMedium    = "medium"
	DifficultyDifficult = "difficult"
)

// Tour represents a tour in the system. Slug and DurationWeeks are derived:
// the slug is recomputed by the repository on every save, and durationWeeks
// is computed after load and never persisted.
type Tour struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Name            string             `json:"name" bson:"name" example:"The Forest Hiker"`
	Slug            string             `json:"slug" bson:"slug" example:"the-forest-hiker"`
	Duration        int                `json:"duration" bson:"duration" example:"5"`
	DurationWeeks   float64            `json:"durationWeeks" bson:"-" example:"0.714"`
	MaxGroupSize    int                `json:"maxGroupSize" bson:"maxGroupSize" example:"25"`
	Difficulty      string             `json:"difficulty" bson:"difficulty" example:"easy"`
	RatingsAverage  float64            `json:"ratingsAverage" bson:"ratingsAverage" example:"4.7"`
	RatingsQuantity int                `json:"ratingsQuantity" bson:"ratingsQuantity" example:"37"`
	Price           float64            `json:"price" bson:"price" example:"397"`
	PriceDiscount   float64            `json:"priceDiscount,omitempty" bson:"priceDiscount,omitempty" example:"150"`
	Summary         string             `json:"summary" bson:"summary" example:"Breathtaking hike through the Canadian Banff National Park"`
	Description     string             `json:"description,omitempty" bson:"description,omitempty"`
	ImageCover      string             `json:"imageCover" bson:"imageCover" example:"tour-1-cover.jpg"`
	Images          []string           `json:"images,omitempty" bson:"images,omitempty"`
	StartDates      []time.Time        `json:"startDates,omitempty" bson:"startDates,omitempty"`
	SecretTour      bool               `json:"-" bson:"secretTour"`
	CreatedAt       time.Time          `json:"-" bson:"createdAt"`
}

// Slugify derives the URL slug from a tour name: lowercased, spaces replaced
// with hyphens.
func Slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

// TourView is the JSON object for a tour, possibly restricted to a field
// allow-list. Field limiting has to happen here and not only in the database
// projection: decoding into the fixed Tour struct would re-materialize every
// unselected field as its zero value.
type TourView map[string]interface{}

// View renders the tour as a JSON object. With a non-empty fields allow-list
// only those keys survive; otherwise the full object is returned.
func (t *Tour) View(fields []string) TourView {
	data, err := json.Marshal(t)
	if err != nil {
		return TourView{}
	}

	var view TourView
	if err := json.Unmarshal(data, &view); err != nil {
		return TourView{}
	}

	if len(fields) == 0 {
		return view
	}

	allowed := make(map[string]bool, len(fields))
	for _, f := range fields {
		allowed[f] = true
	}
	for key := range view {
		if !allowed[key] {
			delete(view, key)
		}
	}
	return view
}

// CreateTourRequest is the payload for creating a tour.
type CreateTourRequest struct {
	Name            string      `json:"name" binding:"required,min=5,max=40" example:"The Forest Hiker"`
	Duration        int         `json:"duration" binding:"required,min=1" example:"5"`
	MaxGroupSize    int         `json:"maxGroupSize" binding:"required,min=1" example:"25"`
	Difficulty      string      `json:"difficulty" binding:"required,difficulty" example:"easy"`
	RatingsAverage  *float64    `json:"ratingsAverage" binding:"omitempty,min=1,max=5" example:"4.7"`
	RatingsQuantity int         `json:"ratingsQuantity" binding:"omitempty,min=0" example:"37"`
	Price           float64     `json:"price" binding:"required,gt=0" example:"397"`
	PriceDiscount   float64     `json:"priceDiscount" binding:"omitempty,gt=0,ltfield=Price" example:"150"`
	Summary         string      `json:"summary" binding:"required" example:"Breathtaking hike"`
	Description     string      `json:"description" binding:"omitempty"`
	ImageCover      string      `json:"imageCover" binding:"required" example:"tour-1-cover.jpg"`
	Images          []string    `json:"images" binding:"omitempty"`
	StartDates      []time.Time `json:"startDates" binding:"omitempty"`
	SecretTour      bool        `json:"secretTour"`
}

// UpdateTourRequest is the payload for partially updating a tour. Validators
// re-run on the provided fields; the discount/price invariant is re-checked
// by the service against the effective price.
type UpdateTourRequest struct {
	Name            *string      `json:"name" binding:"omitempty,min=5,max=40"`
	Duration        *int         `json:"duration" binding:"omitempty,min=1"`
	MaxGroupSize    *int         `json:"maxGroupSize" binding:"omitempty,min=1"`
	Difficulty      *string      `json:"difficulty" binding:"omitempty,difficulty"`
	RatingsAverage  *float64     `json:"ratingsAverage" binding:"omitempty,min=1,max=5"`
	RatingsQuantity *int         `json:"ratingsQuantity" binding:"omitempty,min=0"`
	Price           *float64     `json:"price" binding:"omitempty,gt=0"`
	PriceDiscount   *float64     `json:"priceDiscount" binding:"omitempty,gt=0"`
	Summary         *string      `json:"summary" binding:"omitempty"`
	Description     *string      `json:"description" binding:"omitempty"`
	ImageCover      *string      `json:"imageCover" binding:"omitempty"`
	Images          *[]string    `json:"images" binding:"omitempty"`
	StartDates      *[]time.Time `json:"startDates" binding:"omitempty"`
	SecretTour      *bool        `json:"secretTour" binding:"omitempty"`
}

// TourStats is one aggregation bucket of the tour-stats endpoint, grouped by
// uppercased difficulty.
type TourStats struct {
	Difficulty string  `json:"difficulty" bson:"_id"`
	NumTours   int     `json:"numTours" bson:"numTours"`
	NumRatings int     `json:"numRatings" bson:"numRatings"`
	AvgRating  float64 `json:"avgRating" bson:"avgRating"`
	MinRating  float64 `json:"minRating" bson:"minRating"`
	MaxRating  float64 `json:"maxRating" bson:"maxRating"`
	AvgPrice   float64 `json:"avgPrice" bson:"avgPrice"`
	MinPrice   float64 `json:"minPrice" bson:"minPrice"`
	MaxPrice   float64 `json:"maxPrice" bson:"maxPrice"`
}

// MonthlyPlanEntry is one month of the monthly-plan aggregation.
type MonthlyPlanEntry struct {
	Month         int      `json:"month" bson:"month"`
	NumTourStarts int      `json:"numTourStarts" bson:"numTourStarts"`
	Tours         []string `json:"tours" bson:"tours"`
}

// PresignedURLResponse carries a pre-signed S3 URL for a tour image.
type PresignedURLResponse struct {
	URL       string `json:"url"`
	ExpiresIn int    `json:"expiresIn" example:"900"`
}
