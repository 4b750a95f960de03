package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/krystiangaleczka-tech/beautysalonapp/internal/domain/scheduling"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/httperr"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/models"
)

type WorkingHoursHandler struct {
	db *gorm.DB
}

func NewWorkingHoursHandler(db *gorm.DB) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db}
}

type WorkingDayConfig struct {
	DayOfWeek   int    `json:"day_of_week" binding:"required,min=1,max=7"`
	IsAvailable bool   `json:"is_available"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	BreakStart  string `json:"break_start_time"`
	BreakEnd    string `json:"break_end_time"`
}

type WorkingHoursUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required"`
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	staffID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_staff_id", "Invalid staff id.")
		return
	}

	var hours []models.WorkingHours
	if err := h.db.
		Where("staff_profile_id = ?", staffID).
		Order("day_of_week ASC").
		Find(&hours).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_working_hours"})
		return
	}

	c.JSON(http.StatusOK, hours)
}

// Update replaces the staff member's whole weekly template. Every
// submitted day is validated before anything is written.
func (h *WorkingHoursHandler) Update(c *gin.Context) {
	staffID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_staff_id", "Invalid staff id.")
		return
	}

	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var toCreate []models.WorkingHours
	for _, d := range req.Days {
		wh := models.WorkingHours{
			StaffProfileID: uint(staffID),
			DayOfWeek:      d.DayOfWeek,
			IsAvailable:    d.IsAvailable,
			StartTime:      d.StartTime,
			EndTime:        d.EndTime,
			BreakStartTime: d.BreakStart,
			BreakEndTime:   d.BreakEnd,
		}

		if err := scheduling.ValidateWorkingHours(&wh); err != nil {
			if httperr.WriteBusiness(c, err) {
				return
			}
			httperr.BadRequest(c, "invalid_working_hours", err.Error())
			return
		}

		toCreate = append(toCreate, wh)
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("staff_profile_id = ?", staffID).
			Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}

		if len(toCreate) > 0 {
			return tx.Create(&toCreate).Error
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_working_hours"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
