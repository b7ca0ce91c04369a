// Package handler contains HTTP handlers for the API.
package handler

import (
	"strconv"

	apperrors "tours-api/internal/errors"
	"tours-api/internal/middleware"
	"tours-api/internal/models"
	"tours-api/internal/service"
	"tours-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// TourHandler handles HTTP requests for tour operations.
type TourHandler struct {
	service service.TourServicer
}

// NewTourHandler creates a new TourHandler.
func NewTourHandler(service service.TourServicer) *TourHandler {
	return &TourHandler{service: service}
}

// ListTours godoc
// @Summary      List tours
// @Description  List tours with query-string filtering, sorting, field limiting, and pagination
// @Tags         tours
// @Accept       json
// @Produce      json
// @Param        sort    query     string  false  "Comma-separated sort fields, '-' prefix for descending"
// @Param        fields  query     string  false  "Comma-separated fields to include"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Page size (default 100)"
// @Success      200     {object}  response.Response{data=[]models.Tour}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Security     BearerAuth
// @Router       /tours [get]
func (h *TourHandler) ListTours(c *gin.Context) {
	tours, err := h.service.ListTours(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	response.List(c, len(tours), tours)
}

// CreateTour godoc
// @Summary      Create tour
// @Description  Create a new tour
// @Tags         tours
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateTourRequest  true  "Tour details"
// @Success      201      {object}  response.Response{data=models.Tour}
// @Failure      400      {object}  response.Response
// @Router       /tours [post]
func (h *TourHandler) CreateTour(c *gin.Context) {
	var req models.CreateTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Abort(c, err)
		return
	}

	tour, err := h.service.CreateTour(c.Request.Context(), &req)
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	response.Created(c, tour)
}

// GetTour godoc
// @Summary      Get tour by ID
// @Tags         tours
// @Produce      json
// @Param        id   path      string  true  "Tour ID"
// @Success      200  {object}  response.Response{data=models.Tour}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /tours/{id} [get]
func (h *TourHandler) GetTour(c *gin.Context) {
	tour, err := h.service.GetTour(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	response.Success(c, tour)
}

// UpdateTour godoc
// @Summary      Update tour
// @Description  Apply a partial patch to a tour, re-running validators
// @Tags         tours
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Tour ID"
// @Param        request  body      models.UpdateTourRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=models.Tour}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /tours/{id} [patch]
func (h *TourHandler) UpdateTour(c *gin.Context) {
	var req models.UpdateTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Abort(c, err)
		return
	}

	tour, err := h.service.UpdateTour(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	response.Success(c, tour)
}

// DeleteTour godoc
// @Summary      Delete tour
// @Description  Remove a tour, restricted to admin and lead-guide roles
// @Tags         tours
// @Param        id  path  string  true  "Tour ID"
// @Success      204  "No Content"
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /tours/{id} [delete]
func (h *TourHandler) DeleteTour(c *gin.Context) {
	if err := h.service.DeleteTour(c.Request.Context(), c.Param("id")); err != nil {
		middleware.Abort(c, err)
		return
	}

	response.NoContent(c)
}

// TopCheapestTours godoc
// @Summary      Top five cheapest tours
// @Description  Cheapest tours first, ties broken by rating descending
// @Tags         tours
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.Tour}
// @Router       /tours/top-cheapest-tours [get]
func (h *TourHandler) TopCheapestTours(c *gin.Context) {
	tours, err := h.service.TopCheapest(c.Request.Context())
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	response.List(c, len(tours), tours)
}

// TourStats godoc
// @Summary      Tour statistics
// @Description  Aggregate stats grouped by difficulty
// @Tags         tours
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.TourStats}
// @Router       /tours/tour-stats [get]
func (h *TourHandler) TourStats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	response.Success(c, stats)
}

// MonthlyPlan godoc
// @Summary      Monthly plan
// @Description  Tour starts per calendar month for a year, busiest first
// @Tags         tours
// @Produce      json
// @Param        year  path      int  true  "Year"
// @Success      200   {object}  response.Response{data=[]models.MonthlyPlanEntry}
// @Failure      400   {object}  response.Response
// @Router       /tours/monthly-plan/{year} [get]
func (h *TourHandler) MonthlyPlan(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		middleware.Abort(c, apperrors.BadRequest("year must be a number"))
		return
	}

	plan, err := h.service.MonthlyPlan(c.Request.Context(), year)
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	response.Success(c, plan)
}

// CoverDownloadURL godoc
// @Summary      Pre-signed cover image download URL
// @Tags         tours
// @Produce      json
// @Param        id   path      string  true  "Tour ID"
// @Success      200  {object}  response.Response{data=models.PresignedURLResponse}
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /tours/{id}/cover-url [get]
func (h *TourHandler) CoverDownloadURL(c *gin.Context) {
	result, err := h.service.CoverDownloadURL(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	response.Success(c, result)
}

// CoverUploadURL godoc
// @Summary      Pre-signed cover image upload URL
// @Tags         tours
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Tour ID"
// @Success      200  {object}  response.Response{data=models.PresignedURLResponse}
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /tours/{id}/cover-upload-url [post]
func (h *TourHandler) CoverUploadURL(c *gin.Context) {
	contentType := c.DefaultQuery("contentType", "image/jpeg")

	result, err := h.service.CoverUploadURL(c.Request.Context(), c.Param("id"), contentType)
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	response.Success(c, result)
}
