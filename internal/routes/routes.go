package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/krystiangaleczka-tech/beautysalonapp/internal/audit"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/bookinglock"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/config"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/handlers"
	infraRepo "github.com/krystiangaleczka-tech/beautysalonapp/internal/infra/repository"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/middleware"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/notification"
	ucAppointment "github.com/krystiangaleczka-tech/beautysalonapp/internal/usecase/appointment"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	redisClient *redis.Client,
	notifyDispatcher *notification.Dispatcher,
	cfg *config.Config,
) {

	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	schedulingRepo := infraRepo.NewSchedulingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var locker bookinglock.Locker = bookinglock.Noop{}
	if redisClient != nil {
		locker = bookinglock.NewRedisStaffLocker(redisClient, 5*time.Second)
	}

	// ======================================================
	// USE CASES (APPOINTMENTS)
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		schedulingRepo,
		locker,
		notifyDispatcher,
		auditDispatcher,
		cfg.SalonTimezone,
	)

	rescheduleAppointmentUC := ucAppointment.NewRescheduleAppointment(
		schedulingRepo,
		locker,
		auditDispatcher,
		cfg.SalonTimezone,
	)

	transitionAppointmentUC := ucAppointment.NewTransitionAppointment(
		schedulingRepo,
		notifyDispatcher,
		auditDispatcher,
		cfg.SalonTimezone,
	)

	availabilityUC := ucAppointment.NewGetAvailability(
		schedulingRepo,
		cfg.SalonTimezone,
	)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(
		schedulingRepo,
		cfg.SalonTimezone,
	)

	listAppointmentsByMonthUC := ucAppointment.NewListAppointmentsByMonth(
		schedulingRepo,
		cfg.SalonTimezone,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	staffHandler := handlers.NewStaffHandler(db)

	serviceHandler := handlers.NewServiceHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		rescheduleAppointmentUC,
		transitionAppointmentUC,
		availabilityUC,
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
		schedulingRepo,
		cfg.SalonTimezone,
	)

	notificationHandler := handlers.NewNotificationHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PUBLIC AVAILABILITY
		// ------------------------------
		api.GET("/availability", appointmentHandler.Availability)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", staffHandler.Me)
			secured.PATCH("/me", staffHandler.UpdateMe)

			secured.GET("/staff", staffHandler.List)
			secured.GET("/staff/:id", staffHandler.Get)
			secured.GET("/staff/:id/working-hours", workingHoursHandler.Get)
			secured.PUT("/staff/:id/working-hours", workingHoursHandler.Update)

			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.GET("/clients/:id", clientHandler.Get)
			secured.PATCH("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Delete)

			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.PATCH("/services/:id", serviceHandler.Update)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.ListByDate)
			secured.GET("/appointments/month", appointmentHandler.ListByMonth)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
			secured.PATCH("/appointments/:id/reschedule", appointmentHandler.Reschedule)

			secured.GET("/notifications", notificationHandler.List)
			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
