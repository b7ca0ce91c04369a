package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	apperrors "tours-api/internal/errors"
	"tours-api/internal/middleware"
	"tours-api/internal/models"
	servicemocks "tours-api/internal/service/mocks"
	"tours-api/internal/validator"
	"tours-api/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTourRouter(svc *servicemocks.MockTourService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validator.RegisterCustomValidators()

	h := NewTourHandler(svc)
	r := gin.New()
	r.Use(middleware.ErrorHandler(false))

	tours := r.Group("/tours")
	tours.GET("", h.ListTours)
	tours.POST("", h.CreateTour)
	tours.GET("/top-cheapest-tours", h.TopCheapestTours)
	tours.GET("/tour-stats", h.TourStats)
	tours.GET("/monthly-plan/:year", h.MonthlyPlan)
	tours.GET("/:id", h.GetTour)
	tours.PATCH("/:id", h.UpdateTour)
	tours.DELETE("/:id", h.DeleteTour)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestTourHandler_ListTours(t *testing.T) {
	t.Run("passes raw query values through", func(t *testing.T) {
		var gotParams url.Values
		svc := &servicemocks.MockTourService{
			ListToursFunc: func(ctx context.Context, params url.Values) ([]models.TourView, error) {
				gotParams = params
				tours := []models.Tour{{Name: "The Forest Hiker"}, {Name: "The Sea Explorer"}}
				return []models.TourView{tours[0].View(nil), tours[1].View(nil)}, nil
			},
		}

		w := do(newTourRouter(svc), http.MethodGet, "/tours?difficulty=easy&price[lt]=1000&sort=price", "")
		assert.Equal(t, http.StatusOK, w.Code)

		resp := decodeResponse(t, w)
		require.NotNil(t, resp.Count)
		assert.Equal(t, 2, *resp.Count)
		assert.Equal(t, "easy", gotParams.Get("difficulty"))
		assert.Equal(t, "1000", gotParams.Get("price[lt]"))
	})

	t.Run("field-limited views reach the client unexpanded", func(t *testing.T) {
		svc := &servicemocks.MockTourService{
			ListToursFunc: func(ctx context.Context, params url.Values) ([]models.TourView, error) {
				tour := models.Tour{Name: "The Forest Hiker", Price: 397}
				return []models.TourView{tour.View([]string{"name", "price"})}, nil
			},
		}

		w := do(newTourRouter(svc), http.MethodGet, "/tours?fields=name,price", "")
		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data []map[string]interface{} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Data, 1)
		assert.Equal(t, map[string]interface{}{"name": "The Forest Hiker", "price": 397.0}, resp.Data[0])
	})

	t.Run("bad query becomes a 400", func(t *testing.T) {
		svc := &servicemocks.MockTourService{
			ListToursFunc: func(ctx context.Context, params url.Values) ([]models.TourView, error) {
				return nil, apperrors.ErrBadQuery
			},
		}

		w := do(newTourRouter(svc), http.MethodGet, "/tours?price[between]=1", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTourHandler_CreateTour(t *testing.T) {
	validBody := `{
		"name": "The Forest Hiker",
		"duration": 5,
		"maxGroupSize": 25,
		"difficulty": "easy",
		"price": 397,
		"summary": "Breathtaking hike",
		"imageCover": "tour-1-cover.jpg"
	}`

	t.Run("created", func(t *testing.T) {
		svc := &servicemocks.MockTourService{
			CreateTourFunc: func(ctx context.Context, req *models.CreateTourRequest) (*models.Tour, error) {
				return &models.Tour{ID: primitive.NewObjectID(), Name: req.Name, Slug: "the-forest-hiker"}, nil
			},
		}

		w := do(newTourRouter(svc), http.MethodPost, "/tours", validBody)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, decodeResponse(t, w).Success)
	})

	t.Run("validation failures are 400s", func(t *testing.T) {
		svc := &servicemocks.MockTourService{
			CreateTourFunc: func(ctx context.Context, req *models.CreateTourRequest) (*models.Tour, error) {
				t.Fatal("service should not be reached")
				return nil, nil
			},
		}
		r := newTourRouter(svc)

		bodies := map[string]string{
			"name too short":     `{"name":"Hi","duration":5,"maxGroupSize":25,"difficulty":"easy","price":397,"summary":"s","imageCover":"c.jpg"}`,
			"bad difficulty":     `{"name":"The Forest Hiker","duration":5,"maxGroupSize":25,"difficulty":"extreme","price":397,"summary":"s","imageCover":"c.jpg"}`,
			"rating over 5":      `{"name":"The Forest Hiker","duration":5,"maxGroupSize":25,"difficulty":"easy","ratingsAverage":5.5,"price":397,"summary":"s","imageCover":"c.jpg"}`,
			"discount not lower": `{"name":"The Forest Hiker","duration":5,"maxGroupSize":25,"difficulty":"easy","price":397,"priceDiscount":397,"summary":"s","imageCover":"c.jpg"}`,
			"malformed json":     `{"name":`,
		}

		for name, body := range bodies {
			t.Run(name, func(t *testing.T) {
				w := do(r, http.MethodPost, "/tours", body)
				assert.Equal(t, http.StatusBadRequest, w.Code)
			})
		}
	})

	t.Run("duplicate name is a 400", func(t *testing.T) {
		svc := &servicemocks.MockTourService{
			CreateTourFunc: func(ctx context.Context, req *models.CreateTourRequest) (*models.Tour, error) {
				return nil, apperrors.ErrTourNameTaken
			},
		}

		w := do(newTourRouter(svc), http.MethodPost, "/tours", validBody)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTourHandler_GetTour(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := &servicemocks.MockTourService{
			GetTourFunc: func(ctx context.Context, id string) (*models.Tour, error) {
				return &models.Tour{Name: "The Forest Hiker"}, nil
			},
		}

		w := do(newTourRouter(svc), http.MethodGet, "/tours/507f1f77bcf86cd799439011", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &servicemocks.MockTourService{
			GetTourFunc: func(ctx context.Context, id string) (*models.Tour, error) {
				return nil, apperrors.ErrTourNotFound
			},
		}

		w := do(newTourRouter(svc), http.MethodGet, "/tours/507f1f77bcf86cd799439011", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		svc := &servicemocks.MockTourService{
			GetTourFunc: func(ctx context.Context, id string) (*models.Tour, error) {
				return nil, apperrors.ErrInvalidTourID
			},
		}

		w := do(newTourRouter(svc), http.MethodGet, "/tours/xyz", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTourHandler_UpdateTour(t *testing.T) {
	t.Run("patched", func(t *testing.T) {
		svc := &servicemocks.MockTourService{
			UpdateTourFunc: func(ctx context.Context, id string, req *models.UpdateTourRequest) (*models.Tour, error) {
				require.NotNil(t, req.Price)
				return &models.Tour{Price: *req.Price}, nil
			},
		}

		w := do(newTourRouter(svc), http.MethodPatch, "/tours/507f1f77bcf86cd799439011", `{"price": 450}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("validators re-run on provided fields", func(t *testing.T) {
		svc := &servicemocks.MockTourService{
			UpdateTourFunc: func(ctx context.Context, id string, req *models.UpdateTourRequest) (*models.Tour, error) {
				t.Fatal("service should not be reached")
				return nil, nil
			},
		}

		w := do(newTourRouter(svc), http.MethodPatch, "/tours/507f1f77bcf86cd799439011", `{"difficulty": "extreme"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTourHandler_DeleteTour(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		svc := &servicemocks.MockTourService{}

		w := do(newTourRouter(svc), http.MethodDelete, "/tours/507f1f77bcf86cd799439011", "")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.Bytes())
	})

	t.Run("not found", func(t *testing.T) {
		svc := &servicemocks.MockTourService{
			DeleteTourFunc: func(ctx context.Context, id string) error {
				return apperrors.ErrTourNotFound
			},
		}

		w := do(newTourRouter(svc), http.MethodDelete, "/tours/507f1f77bcf86cd799439011", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTourHandler_Aggregations(t *testing.T) {
	t.Run("top cheapest", func(t *testing.T) {
		svc := &servicemocks.MockTourService{
			TopCheapestFunc: func(ctx context.Context) ([]models.Tour, error) {
				return []models.Tour{{Name: "The Forest Hiker"}}, nil
			},
		}

		w := do(newTourRouter(svc), http.MethodGet, "/tours/top-cheapest-tours", "")
		assert.Equal(t, http.StatusOK, w.Code)

		resp := decodeResponse(t, w)
		require.NotNil(t, resp.Count)
		assert.Equal(t, 1, *resp.Count)
	})

	t.Run("tour stats", func(t *testing.T) {
		svc := &servicemocks.MockTourService{
			StatsFunc: func(ctx context.Context) ([]models.TourStats, error) {
				return []models.TourStats{{Difficulty: "EASY"}}, nil
			},
		}

		w := do(newTourRouter(svc), http.MethodGet, "/tours/tour-stats", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("monthly plan", func(t *testing.T) {
		svc := &servicemocks.MockTourService{
			MonthlyPlanFunc: func(ctx context.Context, year int) ([]models.MonthlyPlanEntry, error) {
				assert.Equal(t, 2026, year)
				return []models.MonthlyPlanEntry{{Month: 7, NumTourStarts: 2}}, nil
			},
		}

		w := do(newTourRouter(svc), http.MethodGet, "/tours/monthly-plan/2026", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("monthly plan rejects non-numeric year", func(t *testing.T) {
		svc := &servicemocks.MockTourService{
			MonthlyPlanFunc: func(ctx context.Context, year int) ([]models.MonthlyPlanEntry, error) {
				t.Fatal("service should not be reached")
				return nil, nil
			},
		}

		w := do(newTourRouter(svc), http.MethodGet, "/tours/monthly-plan/not-a-year", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
