package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/krystiangaleczka-tech/beautysalonapp/internal/httperr"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/models"
)

type NotificationHandler struct {
	db *gorm.DB
}

func NewNotificationHandler(db *gorm.DB) *NotificationHandler {
	return &NotificationHandler{db: db}
}

// List returns delivery records, newest first, with optional filters.
func (h *NotificationHandler) List(c *gin.Context) {
	kind := c.Query("kind")
	status := c.Query("status")

	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", "50")

	page, _ := strconv.Atoi(pageStr)
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(limitStr)
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit

	q := h.db.Model(&models.Notification{})

	if kind != "" {
		q = q.Where("kind = ?", kind)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if s := c.Query("client_id"); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_client_id", "Invalid client id.")
			return
		}
		q = q.Where("client_id = ?", id)
	}
	if s := c.Query("appointment_id"); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment id.")
			return
		}
		q = q.Where("appointment_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "notification_count_failed", "Could not count notifications.")
		return
	}

	var notifications []models.Notification
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notifications).Error; err != nil {

		httperr.Internal(c, "notification_list_failed", "Could not list notifications.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":          page,
		"limit":         limit,
		"total":         total,
		"notifications": notifications,
	})
}
