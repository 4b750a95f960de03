package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/krystiangaleczka-tech/beautysalonapp/internal/config"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.StaffProfile{},
		&models.Client{},
		&models.Service{},
		&models.WorkingHours{},
		&models.Appointment{},
		&models.Notification{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Storage-level backstop against double bookings: no two non-cancelled
	// appointments of one staff member may overlap in time, whatever the
	// application layer managed to race through.
	db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`)
	db.Exec(`
        DO $$
        BEGIN
            IF NOT EXISTS (
                SELECT 1 FROM pg_constraint WHERE conname = 'no_staff_time_overlap'
            ) THEN
                ALTER TABLE appointments
                ADD CONSTRAINT no_staff_time_overlap
                EXCLUDE USING gist (
                    staff_profile_id WITH =,
                    tsrange(scheduled_start_time, scheduled_end_time) WITH &&
                )
                WHERE (status <> 'cancelled' AND deleted_at IS NULL);
            END IF;
        END
        $$
    `)

	return db
}
