package repository

import (
	"context"
	"net/url"
	"testing"
	"time"

	apperrors "tours-api/internal/errors"
	"tours-api/internal/models"
	"tours-api/internal/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTour(name string, price float64) *models.Tour {
	return &models.Tour{
		Name:            name,
		Duration:        5,
		MaxGroupSize:    25,
		Difficulty:      models.DifficultyEasy,
		RatingsAverage:  4.7,
		RatingsQuantity: 37,
		Price:           price,
		Summary:         "A test tour",
		ImageCover:      "cover.jpg",
	}
}

func translateQuery(t *testing.T, raw string) *query.Options {
	t.Helper()
	values, err := url.ParseQuery(raw)
	require.NoError(t, err)
	opts, err := query.Translate(values)
	require.NoError(t, err)
	return opts
}

func TestTourRepository_Create(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewTourRepository(tdb.Database)
	ctx := context.Background()

	t.Run("successfully creates tour with derived slug", func(t *testing.T) {
		tdb.ClearCollection(t, "tours")

		tour := newTour("The Forest Hiker", 397)
		err := repo.Create(ctx, tour)

		require.NoError(t, err)
		assert.False(t, tour.ID.IsZero())
		assert.Equal(t, "the-forest-hiker", tour.Slug)
		assert.NotZero(t, tour.CreatedAt)
		assert.InDelta(t, 5.0/7.0, tour.DurationWeeks, 0.001)
	})

	t.Run("returns error for duplicate name", func(t *testing.T) {
		tdb.ClearCollection(t, "tours")

		require.NoError(t, repo.Create(ctx, newTour("The Sea Explorer", 497)))
		err := repo.Create(ctx, newTour("The Sea Explorer", 597))

		assert.Equal(t, apperrors.ErrTourNameTaken, err)
	})
}

func TestTourRepository_FindAll(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewTourRepository(tdb.Database)
	ctx := context.Background()

	seed := func(t *testing.T) {
		tdb.ClearCollection(t, "tours")

		cheap := newTour("The Forest Hiker", 397)
		mid := newTour("The Sea Explorer", 497)
		mid.Difficulty = models.DifficultyMedium
		mid.Duration = 7
		pricey := newTour("The Snow Adventurer", 997)
		pricey.Difficulty = models.DifficultyDifficult

		require.NoError(t, repo.Create(ctx, cheap))
		require.NoError(t, repo.Create(ctx, mid))
		require.NoError(t, repo.Create(ctx, pricey))
	}

	t.Run("equality filter", func(t *testing.T) {
		seed(t)

		tours, err := repo.FindAll(ctx, translateQuery(t, "difficulty=easy"))

		require.NoError(t, err)
		require.Len(t, tours, 1)
		assert.Equal(t, "The Forest Hiker", tours[0].Name)
	})

	t.Run("operator filter", func(t *testing.T) {
		seed(t)

		tours, err := repo.FindAll(ctx, translateQuery(t, "price[gte]=400&price[lt]=1000"))

		require.NoError(t, err)
		assert.Len(t, tours, 2)
	})

	t.Run("sort ascending and descending", func(t *testing.T) {
		seed(t)

		tours, err := repo.FindAll(ctx, translateQuery(t, "sort=-price"))

		require.NoError(t, err)
		require.Len(t, tours, 3)
		assert.Equal(t, "The Snow Adventurer", tours[0].Name)
		assert.Equal(t, "The Forest Hiker", tours[2].Name)
	})

	t.Run("pagination", func(t *testing.T) {
		seed(t)

		tours, err := repo.FindAll(ctx, translateQuery(t, "sort=price&page=2&limit=2"))

		require.NoError(t, err)
		require.Len(t, tours, 1)
		assert.Equal(t, "The Snow Adventurer", tours[0].Name)
	})

	t.Run("secret tours are always excluded", func(t *testing.T) {
		seed(t)

		secret := newTour("The Hidden Gem", 297)
		secret.SecretTour = true
		require.NoError(t, repo.Create(ctx, secret))

		tours, err := repo.FindAll(ctx, translateQuery(t, ""))
		require.NoError(t, err)
		assert.Len(t, tours, 3)

		// The exclusion cannot be overridden from the query string.
		tours, err = repo.FindAll(ctx, translateQuery(t, "secretTour=true"))
		require.NoError(t, err)
		assert.Len(t, tours, 3)
	})

	t.Run("empty result is an empty slice", func(t *testing.T) {
		tdb.ClearCollection(t, "tours")

		tours, err := repo.FindAll(ctx, translateQuery(t, ""))

		require.NoError(t, err)
		assert.NotNil(t, tours)
		assert.Len(t, tours, 0)
	})
}

func TestTourRepository_FindByID(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewTourRepository(tdb.Database)
	ctx := context.Background()

	t.Run("finds existing tour with derived fields", func(t *testing.T) {
		tdb.ClearCollection(t, "tours")

		tour := newTour("The Forest Hiker", 397)
		require.NoError(t, repo.Create(ctx, tour))

		found, err := repo.FindByID(ctx, tour.ID)

		require.NoError(t, err)
		assert.Equal(t, tour.ID, found.ID)
		assert.Equal(t, "the-forest-hiker", found.Slug)
		assert.InDelta(t, 5.0/7.0, found.DurationWeeks, 0.001)
	})

	t.Run("returns error for non-existent tour", func(t *testing.T) {
		tdb.ClearCollection(t, "tours")

		found, err := repo.FindByID(ctx, primitive.NewObjectID())

		assert.Nil(t, found)
		assert.Equal(t, apperrors.ErrTourNotFound, err)
	})

	t.Run("secret tour behaves as missing", func(t *testing.T) {
		tdb.ClearCollection(t, "tours")

		secret := newTour("The Hidden Gem", 297)
		secret.SecretTour = true
		require.NoError(t, repo.Create(ctx, secret))

		_, err := repo.FindByID(ctx, secret.ID)

		assert.Equal(t, apperrors.ErrTourNotFound, err)
	})
}

func TestTourRepository_Update(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewTourRepository(tdb.Database)
	ctx := context.Background()

	t.Run("updates provided fields only", func(t *testing.T) {
		tdb.ClearCollection(t, "tours")

		tour := newTour("The Forest Hiker", 397)
		require.NoError(t, repo.Create(ctx, tour))

		price := 450.0
		updated, err := repo.Update(ctx, tour.ID, &models.UpdateTourRequest{Price: &price})

		require.NoError(t, err)
		assert.Equal(t, 450.0, updated.Price)
		assert.Equal(t, "The Forest Hiker", updated.Name)
	})

	t.Run("empty patch returns the unchanged document", func(t *testing.T) {
		tdb.ClearCollection(t, "tours")

		tour := newTour("The Forest Hiker", 397)
		require.NoError(t, repo.Create(ctx, tour))

		updated, err := repo.Update(ctx, tour.ID, &models.UpdateTourRequest{})

		require.NoError(t, err)
		assert.Equal(t, "The Forest Hiker", updated.Name)
		assert.Equal(t, 397.0, updated.Price)
		assert.Equal(t, "the-forest-hiker", updated.Slug)
	})

	t.Run("empty patch on missing tour is not found", func(t *testing.T) {
		tdb.ClearCollection(t, "tours")

		_, err := repo.Update(ctx, primitive.NewObjectID(), &models.UpdateTourRequest{})

		assert.Equal(t, apperrors.ErrTourNotFound, err)
	})

	t.Run("recomputes slug when name changes", func(t *testing.T) {
		tdb.ClearCollection(t, "tours")

		tour := newTour("The Forest Hiker", 397)
		require.NoError(t, repo.Create(ctx, tour))

		name := "The Mountain Biker"
		updated, err := repo.Update(ctx, tour.ID, &models.UpdateTourRequest{Name: &name})

		require.NoError(t, err)
		assert.Equal(t, "the-mountain-biker", updated.Slug)
	})

	t.Run("returns error when renaming to an existing name", func(t *testing.T) {
		tdb.ClearCollection(t, "tours")

		first := newTour("The Forest Hiker", 397)
		second := newTour("The Sea Explorer", 497)
		require.NoError(t, repo.Create(ctx, first))
		require.NoError(t, repo.Create(ctx, second))

		taken := "The Forest Hiker"
		_, err := repo.Update(ctx, second.ID, &models.UpdateTourRequest{Name: &taken})

		assert.Equal(t, apperrors.ErrTourNameTaken, err)
	})

	t.Run("returns error for non-existent tour", func(t *testing.T) {
		tdb.ClearCollection(t, "tours")

		price := 450.0
		_, err := repo.Update(ctx, primitive.NewObjectID(), &models.UpdateTourRequest{Price: &price})

		assert.Equal(t, apperrors.ErrTourNotFound, err)
	})
}

func TestTourRepository_Delete(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewTourRepository(tdb.Database)
	ctx := context.Background()

	t.Run("deletes existing tour", func(t *testing.T) {
		tdb.ClearCollection(t, "tours")

		tour := newTour("The Forest Hiker", 397)
		require.NoError(t, repo.Create(ctx, tour))

		require.NoError(t, repo.Delete(ctx, tour.ID))

		_, err := repo.FindByID(ctx, tour.ID)
		assert.Equal(t, apperrors.ErrTourNotFound, err)
	})

	t.Run("returns error for non-existent tour", func(t *testing.T) {
		tdb.ClearCollection(t, "tours")

		err := repo.Delete(ctx, primitive.NewObjectID())

		assert.Equal(t, apperrors.ErrTourNotFound, err)
	})
}

func TestTourRepository_TopCheapest(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewTourRepository(tdb.Database)
	ctx := context.Background()
	tdb.ClearCollection(t, "tours")

	cheapLow := newTour("Budget Stroll", 100)
	cheapLow.RatingsAverage = 4.0
	cheapHigh := newTour("Budget Delight", 100)
	cheapHigh.RatingsAverage = 4.9
	mid := newTour("Mid Ramble", 300)
	pricey := newTour("Grand Voyage", 900)

	for _, tour := range []*models.Tour{cheapLow, cheapHigh, mid, pricey} {
		require.NoError(t, repo.Create(ctx, tour))
	}

	tours, err := repo.TopCheapest(ctx, 3)

	require.NoError(t, err)
	require.Len(t, tours, 3)
	// Cheapest first, rating breaks the tie.
	assert.Equal(t, "Budget Delight", tours[0].Name)
	assert.Equal(t, "Budget Stroll", tours[1].Name)
	assert.Equal(t, "Mid Ramble", tours[2].Name)
}

func TestTourRepository_Stats(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewTourRepository(tdb.Database)
	ctx := context.Background()
	tdb.ClearCollection(t, "tours")

	easy1 := newTour("Easy One", 300)
	easy1.RatingsAverage = 4.6
	easy2 := newTour("Easy Two", 500)
	easy2.RatingsAverage = 4.8
	hard := newTour("Hard One", 900)
	hard.Difficulty = models.DifficultyDifficult
	hard.RatingsAverage = 4.5
	lowRated := newTour("Low Rated", 100)
	lowRated.RatingsAverage = 3.9
	secret := newTour("Hidden", 100)
	secret.RatingsAverage = 5.0
	secret.SecretTour = true

	for _, tour := range []*models.Tour{easy1, easy2, hard, lowRated, secret} {
		require.NoError(t, repo.Create(ctx, tour))
	}

	stats, err := repo.Stats(ctx)

	require.NoError(t, err)
	require.Len(t, stats, 2)

	// Sorted by average price ascending: EASY (400) before DIFFICULT (900).
	assert.Equal(t, "EASY", stats[0].Difficulty)
	assert.Equal(t, 2, stats[0].NumTours)
	assert.InDelta(t, 400, stats[0].AvgPrice, 0.001)
	assert.InDelta(t, 4.7, stats[0].AvgRating, 0.001)
	assert.InDelta(t, 4.6, stats[0].MinRating, 0.001)
	assert.InDelta(t, 4.8, stats[0].MaxRating, 0.001)

	assert.Equal(t, "DIFFICULT", stats[1].Difficulty)
	assert.Equal(t, 1, stats[1].NumTours)
}

func TestTourRepository_MonthlyPlan(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewTourRepository(tdb.Database)
	ctx := context.Background()
	tdb.ClearCollection(t, "tours")

	date := func(month time.Month, day int) time.Time {
		return time.Date(2026, month, day, 9, 0, 0, 0, time.UTC)
	}

	forest := newTour("The Forest Hiker", 397)
	forest.StartDates = []time.Time{date(time.April, 25), date(time.July, 20), date(time.October, 5)}
	sea := newTour("The Sea Explorer", 497)
	sea.StartDates = []time.Time{date(time.June, 19), date(time.July, 20)}
	lastYear := newTour("Old Departure", 297)
	lastYear.StartDates = []time.Time{time.Date(2025, time.July, 1, 9, 0, 0, 0, time.UTC)}
	secret := newTour("Hidden", 100)
	secret.SecretTour = true
	secret.StartDates = []time.Time{date(time.July, 1)}

	for _, tour := range []*models.Tour{forest, sea, lastYear, secret} {
		require.NoError(t, repo.Create(ctx, tour))
	}

	plan, err := repo.MonthlyPlan(ctx, 2026)

	require.NoError(t, err)
	require.Len(t, plan, 4)

	// July has two starts and sorts first.
	assert.Equal(t, 7, plan[0].Month)
	assert.Equal(t, 2, plan[0].NumTourStarts)
	assert.ElementsMatch(t, []string{"The Forest Hiker", "The Sea Explorer"}, plan[0].Tours)

	for _, entry := range plan[1:] {
		assert.Equal(t, 1, entry.NumTourStarts)
	}
}
