package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/krystiangaleczka-tech/beautysalonapp/internal/config"
	dbpkg "github.com/krystiangaleczka-tech/beautysalonapp/internal/db"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/notification"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/reminder"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	mailer := notification.NewSMTPMailer(cfg)
	notifier := notification.NewService(db, mailer)
	notifyDispatcher := notification.NewDispatcher(notifier)

	reminderScheduler := reminder.NewScheduler(db, notifier, notifyDispatcher, cfg)
	if err := reminderScheduler.Start(); err != nil {
		log.Fatalf("failed to start reminder scheduler: %v", err)
	}
	defer reminderScheduler.Stop()

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, redisClient, notifyDispatcher, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
