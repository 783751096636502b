package database

import (
	"log"
	"strings"

	"resort-backend/internal/domain"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// Registers the pure-Go "sqlite" database/sql driver.
	_ "modernc.org/sqlite"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate applies the schema in parent-before-child order, then the partial
// unique index that guarantees at most one completed payment per booking.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Resort{},
		&domain.RoomType{},
		&domain.Room{},
		&domain.RoomDetail{},
		&domain.Booking{},
		&domain.Discount{},
		&domain.Payment{},
		&domain.Review{},
		&domain.ReviewReply{},
		&domain.Notification{},
		&domain.Contact{},
	); err != nil {
		return err
	}

	// Partial indexes work the same on PostgreSQL and SQLite.
	return db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_payments_completed_booking
		 ON payments (booking_id) WHERE status = 'completed'`,
	).Error
}
