package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dailydiet/dailydiet/internal/diet"
	"github.com/dailydiet/dailydiet/pkg/logger"
	"github.com/dailydiet/dailydiet/pkg/metrics"
	"github.com/dailydiet/dailydiet/pkg/middleware"
)

// CreateMealRequest is the creation body. IsPartOfDiet is a pointer so
// `false` still satisfies the required binding.
type CreateMealRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description" binding:"required"`
	IsPartOfDiet *bool  `json:"isPartOfDiet" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time" binding:"required"`
}

// UpdateMealRequest is the partial-update body: absent fields stay untouched.
type UpdateMealRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	IsPartOfDiet *bool   `json:"isPartOfDiet"`
	Date         *string `json:"date"`
	Time         *string `json:"time"`
}

// DietHandler holds dependencies for the diet endpoints
type DietHandler struct {
	dietSvc *diet.Service
	auth    gin.HandlerFunc
}

func NewDietHandler(d *diet.Service, auth gin.HandlerFunc) *DietHandler {
	return &DietHandler{dietSvc: d, auth: auth}
}

// Register routes under /diet; every route runs the identity resolver first
func (h *DietHandler) Register(rg *gin.RouterGroup) {
	d := rg.Group("/diet")
	d.Use(h.auth)
	d.POST("", h.Create)
	d.GET("", h.List)
	d.GET("/summary", h.Summary)
	d.GET("/:id", h.Get)
	d.PUT("/:id", h.Update)
	d.DELETE("/:id", h.Delete)
}

func (h *DietHandler) Create(c *gin.Context) {
	var req CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString(middleware.UserIDKey)
	_, err := h.dietSvc.Create(c.Request.Context(), userID,
		req.Name, req.Description, *req.IsPartOfDiet, req.Date, req.Time)
	if err != nil {
		logger.Errorf("diet create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create diet"})
		return
	}

	metrics.MealsCreated.Inc()
	c.JSON(http.StatusCreated, gin.H{"message": "Diet created successfully!"})
}

func (h *DietHandler) Update(c *gin.Context) {
	var req UpdateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString(middleware.UserIDKey)
	fields := diet.UpdateFields{
		Name:         req.Name,
		Description:  req.Description,
		IsPartOfDiet: req.IsPartOfDiet,
		Date:         req.Date,
		Time:         req.Time,
	}
	if err := h.dietSvc.Update(c.Request.Context(), userID, c.Param("id"), fields); err != nil {
		if errors.Is(err, diet.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "diet not found"})
			return
		}
		logger.Errorf("diet update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update diet"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *DietHandler) Delete(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)
	if err := h.dietSvc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, diet.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "diet not found"})
			return
		}
		logger.Errorf("diet delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete diet"})
		return
	}

	metrics.MealsDeleted.Inc()
	c.Status(http.StatusNoContent)
}

func (h *DietHandler) Get(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)
	m, err := h.dietSvc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, diet.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "diet not found"})
			return
		}
		logger.Errorf("diet lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load diet"})
		return
	}

	c.JSON(http.StatusOK, m)
}

func (h *DietHandler) List(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)
	meals, err := h.dietSvc.List(c.Request.Context(), userID)
	if err != nil {
		logger.Errorf("diet list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list diet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"diet": meals})
}

func (h *DietHandler) Summary(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)
	s, err := h.dietSvc.Summary(c.Request.Context(), userID)
	if err != nil {
		logger.Errorf("diet summary failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build summary"})
		return
	}

	c.JSON(http.StatusOK, s)
}
