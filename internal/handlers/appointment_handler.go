package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/krystiangaleczka-tech/beautysalonapp/internal/domain/scheduling"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/httperr"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/httpresp"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/middleware"
	ucAppointment "github.com/krystiangaleczka-tech/beautysalonapp/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC      *ucAppointment.CreateAppointment
	rescheduleUC  *ucAppointment.RescheduleAppointment
	transitionUC  *ucAppointment.TransitionAppointment
	availUC       *ucAppointment.GetAvailability
	listByDateUC  *ucAppointment.ListAppointmentsByDate
	listByMonthUC *ucAppointment.ListAppointmentsByMonth

	repo scheduling.Repository
	tz   string
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	rescheduleUC *ucAppointment.RescheduleAppointment,
	transitionUC *ucAppointment.TransitionAppointment,
	availUC *ucAppointment.GetAvailability,
	listByDateUC *ucAppointment.ListAppointmentsByDate,
	listByMonthUC *ucAppointment.ListAppointmentsByMonth,
	repo scheduling.Repository,
	tz string,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:      createUC,
		rescheduleUC:  rescheduleUC,
		transitionUC:  transitionUC,
		availUC:       availUC,
		listByDateUC:  listByDateUC,
		listByMonthUC: listByMonthUC,
		repo:          repo,
		tz:            tz,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID       uint   `json:"client_id" binding:"required"`
	ServiceID      uint   `json:"service_id" binding:"required"`
	StaffProfileID uint   `json:"staff_profile_id" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time" binding:"required"`
	Notes          string `json:"notes"`
}

type RescheduleAppointmentRequest struct {
	Date              string `json:"date" binding:"required"`
	Time              string `json:"time" binding:"required"`
	NewStaffProfileID uint   `json:"new_staff_profile_id"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextStaffID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClientID:       req.ClientID,
		ServiceID:      req.ServiceID,
		StaffProfileID: req.StaffProfileID,
		Date:           req.Date,
		Time:           req.Time,
		Notes:          req.Notes,
		ActorStaffID:   &staffID,
	})
	if err != nil {
		if httperr.WriteBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_create_appointment", "Could not create the appointment.")
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// GET
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	mode := scheduling.Active
	if c.Query("include_deleted") == "true" {
		mode = scheduling.IncludingDeleted
	}

	ap, getErr := h.repo.GetAppointment(c.Request.Context(), uint(id), mode)
	if getErr != nil {
		httperr.NotFound(c, httperr.CodeNotFound, "Appointment not found.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "The date query parameter is required.")
		return
	}

	date, err := parseDateInSalon(h.tz, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	staffID := uint(0)
	if s := c.Query("staff_id"); s != "" {
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_staff_id", "Invalid staff id.")
			return
		}
		staffID = uint(n)
	}

	status := c.Query("status")
	if status != "" && !scheduling.IsValidStatus(status) {
		httperr.BadRequest(c, "invalid_status", "Unknown appointment status.")
		return
	}

	out, err := h.listByDateUC.Execute(c.Request.Context(), staffID, date, status)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Year and month are required.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Invalid year.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Invalid month.")
		return
	}

	staffID := uint(0)
	if s := c.Query("staff_id"); s != "" {
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_staff_id", "Invalid staff id.")
			return
		}
		staffID = uint(n)
	}

	status := c.Query("status")
	if status != "" && !scheduling.IsValidStatus(status) {
		httperr.BadRequest(c, "invalid_status", "Unknown appointment status.")
		return
	}

	out, err := h.listByMonthUC.Execute(c.Request.Context(), staffID, year, month, status)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	c.JSON(200, gin.H{
		"year":         year,
		"month":        month,
		"appointments": out,
	})
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	staffStr := c.Query("staff_id")
	serviceStr := c.Query("service_id")
	dateStr := c.Query("date")

	if staffStr == "" || serviceStr == "" || dateStr == "" {
		httperr.BadRequest(c, "missing_parameters", "staff_id, service_id and date are required.")
		return
	}

	staffID, err := strconv.ParseUint(staffStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_staff_id", "Invalid staff id.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Invalid service id.")
		return
	}

	date, err := parseDateInSalon(h.tz, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	slots, err := h.availUC.Execute(c.Request.Context(), uint(staffID), uint(serviceID), date)
	if err != nil {
		if httperr.WriteBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_get_availability", "Could not compute availability.")
		return
	}

	c.JSON(200, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

// ======================================================
// STATUS + RESCHEDULE
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextStaffID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, ucErr := h.transitionUC.Execute(c.Request.Context(), ucAppointment.TransitionAppointmentInput{
		AppointmentID: uint(id),
		Target:        req.Status,
		Reason:        req.Reason,
		ActorStaffID:  &staffID,
	})
	if ucErr != nil {
		if httperr.WriteBusiness(c, ucErr) {
			return
		}
		httperr.Internal(c, "failed_to_update_status", "Could not update the appointment status.")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextStaffID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, ucErr := h.rescheduleUC.Execute(c.Request.Context(), ucAppointment.RescheduleAppointmentInput{
		AppointmentID:     uint(id),
		Date:              req.Date,
		Time:              req.Time,
		NewStaffProfileID: req.NewStaffProfileID,
		ActorStaffID:      &staffID,
	})
	if ucErr != nil {
		if httperr.WriteBusiness(c, ucErr) {
			return
		}
		httperr.Internal(c, "failed_to_reschedule", "Could not reschedule the appointment.")
		return
	}

	httpresp.OK(c, ap)
}
