package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"resort-backend/internal/database"
	"resort-backend/internal/domain"
)

// Seeds a development database with an admin account, a small catalog and
// one active discount. Safe to re-run: existing rows are left alone.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "resort.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	var userCount int64
	db.Model(&domain.User{}).Count(&userCount)
	if userCount > 0 {
		log.Println("database already seeded, nothing to do")
		return
	}

	hash := func(pw string) string {
		h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal(err)
		}
		return string(h)
	}

	users := []domain.User{
		{Username: "admin", Email: "admin@resort.local", PasswordHash: hash("admin123"), FullName: "Administrator", Role: domain.RoleAdmin, IsActive: true},
		{Username: "frontdesk", Email: "frontdesk@resort.local", PasswordHash: hash("staff123"), FullName: "Front Desk", Role: domain.RoleStaff, IsActive: true},
		{Username: "guest", Email: "guest@example.com", PasswordHash: hash("guest123"), FullName: "Demo Guest", Role: domain.RoleGuest, IsActive: true},
	}
	if err := db.Create(&users).Error; err != nil {
		log.Fatal(err)
	}

	resorts := []domain.Resort{
		{Name: "Coral Bay Resort"},
		{Name: "Palm Cove Retreat"},
	}
	if err := db.Create(&resorts).Error; err != nil {
		log.Fatal(err)
	}

	types := []domain.RoomType{
		{Name: "Standard", PricePerNight: 80},
		{Name: "Deluxe", PricePerNight: 140},
		{Name: "Suite", PricePerNight: 260},
	}
	if err := db.Create(&types).Error; err != nil {
		log.Fatal(err)
	}

	rooms := []domain.Room{
		{ResortID: resorts[0].ID, RoomTypeID: types[0].ID, Location: "A-101", Status: domain.RoomAvailable, Category: "garden view"},
		{ResortID: resorts[0].ID, RoomTypeID: types[1].ID, Location: "A-201", Status: domain.RoomAvailable, Category: "sea view"},
		{ResortID: resorts[0].ID, RoomTypeID: types[2].ID, Location: "A-301", Status: domain.RoomAvailable, Category: "sea view"},
		{ResortID: resorts[1].ID, RoomTypeID: types[0].ID, Location: "B-101", Status: domain.RoomAvailable, Category: "garden view"},
		{ResortID: resorts[1].ID, RoomTypeID: types[1].ID, Location: "B-102", Status: domain.RoomMaintenance, Category: "pool view"},
	}
	if err := db.Create(&rooms).Error; err != nil {
		log.Fatal(err)
	}

	suitePrice := 220.0
	details := []domain.RoomDetail{
		{RoomID: rooms[1].ID, Description: "Corner deluxe with balcony", NumBed: "2"},
		{RoomID: rooms[2].ID, Description: "Top floor suite, discounted for the season", NumBed: "3", PricePerNight: &suitePrice},
	}
	if err := db.Create(&details).Error; err != nil {
		log.Fatal(err)
	}

	now := time.Now()
	discount := domain.Discount{
		Code:         "WELCOME10",
		Name:         "Welcome discount",
		Description:  "10% off the first booking",
		DiscountType: domain.DiscountPercent,
		Value:        10,
		UsageLimit:   100,
		ValidFrom:    now,
		ValidUntil:   now.AddDate(1, 0, 0),
		Status:       domain.DiscountActive,
	}
	if err := db.Create(&discount).Error; err != nil {
		log.Fatal(err)
	}

	log.Println("seed complete: 3 users, 2 resorts, 5 rooms, 1 discount")
}
