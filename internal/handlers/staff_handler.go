package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/krystiangaleczka-tech/beautysalonapp/internal/middleware"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/models"
)

type StaffHandler struct {
	db *gorm.DB
}

func NewStaffHandler(db *gorm.DB) *StaffHandler {
	return &StaffHandler{db: db}
}

type UpdateStaffRequest struct {
	FirstName             *string `json:"first_name,omitempty"`
	LastName              *string `json:"last_name,omitempty"`
	Phone                 *string `json:"phone,omitempty"`
	Specialization        *string `json:"specialization,omitempty"`
	IsAcceptingNewClients *bool   `json:"is_accepting_new_clients,omitempty"`
}

func (h *StaffHandler) List(c *gin.Context) {
	q := h.db.Session(&gorm.Session{})

	if c.Query("accepting") == "true" {
		q = q.Where("is_accepting_new_clients = ?", true)
	}

	var staff []models.StaffProfile
	if err := q.
		Order("last_name ASC, first_name ASC").
		Find(&staff).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_staff"})
		return
	}

	c.JSON(http.StatusOK, staff)
}

func (h *StaffHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var staff models.StaffProfile
	if err := h.db.First(&staff, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "staff_not_found"})
		return
	}

	c.JSON(http.StatusOK, staff)
}

// Me returns the authenticated staff member's own profile.
func (h *StaffHandler) Me(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextStaffID).(uint)

	var staff models.StaffProfile
	if err := h.db.First(&staff, staffID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "staff_not_found"})
		return
	}

	c.JSON(http.StatusOK, staff)
}

func (h *StaffHandler) UpdateMe(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextStaffID).(uint)

	var staff models.StaffProfile
	if err := h.db.First(&staff, staffID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "staff_not_found"})
		return
	}

	var req UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.FirstName != nil {
		staff.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		staff.LastName = *req.LastName
	}
	if req.Phone != nil {
		staff.Phone = *req.Phone
	}
	if req.Specialization != nil {
		staff.Specialization = *req.Specialization
	}
	if req.IsAcceptingNewClients != nil {
		staff.IsAcceptingNewClients = *req.IsAcceptingNewClients
	}

	if err := h.db.Save(&staff).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_staff"})
		return
	}

	c.JSON(http.StatusOK, staff)
}
