package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/krystiangaleczka-tech/beautysalonapp/internal/httperr"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`

	DurationMinutes    int `json:"duration_minutes" binding:"required,min=1"`
	PreparationMinutes int `json:"preparation_minutes"`
	CleanupMinutes     int `json:"cleanup_minutes"`

	Price float64 `json:"price" binding:"required"`
}

type UpdateServiceRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`

	DurationMinutes    *int `json:"duration_minutes,omitempty"`
	PreparationMinutes *int `json:"preparation_minutes,omitempty"`
	CleanupMinutes     *int `json:"cleanup_minutes,omitempty"`

	Price  *float64 `json:"price,omitempty"`
	Active *bool    `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	category := strings.ToLower(strings.TrimSpace(c.Query("category")))
	activeStr := strings.TrimSpace(c.Query("active"))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Session(&gorm.Session{})

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	if activeStr != "" {
		if activeStr == "true" {
			q = q.Where("active = ?", true)
		} else if activeStr == "false" {
			q = q.Where("active = ?", false)
		}
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.
		Order("id ASC").
		Find(&services).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_services"})
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Price < 0 {
		httperr.BadRequest(c, httperr.CodeInvalidPrice, "Price must not be negative.")
		return
	}
	if req.PreparationMinutes < 0 || req.CleanupMinutes < 0 {
		httperr.BadRequest(c, httperr.CodeInvalidDuration, "Blocked time must not be negative.")
		return
	}

	service := models.Service{
		Name:               req.Name,
		Description:        req.Description,
		Category:           strings.ToLower(req.Category),
		DurationMinutes:    req.DurationMinutes,
		PreparationMinutes: req.PreparationMinutes,
		CleanupMinutes:     req.CleanupMinutes,
		Price:              req.Price,
		Active:             true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_service"})
		return
	}

	c.JSON(http.StatusCreated, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var service models.Service
	if err := h.db.First(&service, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "service_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_service"})
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Price != nil && *req.Price < 0 {
		httperr.BadRequest(c, httperr.CodeInvalidPrice, "Price must not be negative.")
		return
	}
	if req.DurationMinutes != nil && *req.DurationMinutes <= 0 {
		httperr.BadRequest(c, httperr.CodeInvalidDuration, "Duration must be positive.")
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Category != nil {
		service.Category = strings.ToLower(*req.Category)
	}
	if req.DurationMinutes != nil {
		service.DurationMinutes = *req.DurationMinutes
	}
	if req.PreparationMinutes != nil {
		service.PreparationMinutes = *req.PreparationMinutes
	}
	if req.CleanupMinutes != nil {
		service.CleanupMinutes = *req.CleanupMinutes
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.Save(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_service"})
		return
	}

	c.JSON(http.StatusOK, service)
}
