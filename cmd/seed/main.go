package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"salonbook/internal/database"
	"salonbook/internal/domain"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "salonbook.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Salon{},
		&domain.SalonService{},
		&domain.CoverageZone{},
		&domain.Booking{},
		&domain.Review{},
		&domain.Payment{},
		&domain.StripeAccount{},
		&domain.Plan{},
		&domain.Subscription{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// The slot uniqueness constraint has a partial WHERE clause AutoMigrate
	// cannot express, so it is created directly.
	db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_no_double_booking
		ON bookings (salon_id, booking_date, start_time)
		WHERE status IN ('pending', 'confirmed')`)

	// Cleanup in FK-safe order.
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM subscriptions")
	db.Exec("DELETE FROM coverage_zones")
	db.Exec("DELETE FROM salon_services")
	db.Exec("DELETE FROM stripe_accounts")
	db.Exec("DELETE FROM salons")
	db.Exec("DELETE FROM users")
	db.Exec("DELETE FROM subscription_plans")

	// ================== PLANS ==================
	log.Println("Creating plans...")
	yearlyStarter := int64(29900 * 10)
	yearlyPro := int64(59900 * 10)
	yearlyPremium := int64(99900 * 10)
	plans := []domain.Plan{
		{
			ID: domain.PlanFree, Name: "Free", Description: "Get started with the basics",
			PriceMonthlyCents: 0, CommissionRateBps: 2000,
			MaxServices: 3, MaxCoverageZones: 1, IsActive: true,
		},
		{
			ID: domain.PlanStarter, Name: "Starter", Description: "For growing salons",
			PriceMonthlyCents: 29900, PriceYearlyCents: &yearlyStarter, CommissionRateBps: 1500,
			MaxServices: 10, MaxCoverageZones: 3, IsActive: true,
		},
		{
			ID: domain.PlanPro, Name: "Pro", Description: "Lower commission, more reach",
			PriceMonthlyCents: 59900, PriceYearlyCents: &yearlyPro, CommissionRateBps: 1200,
			MaxServices: 30, MaxCoverageZones: 10, PrioritySearch: true, IsActive: true,
		},
		{
			ID: domain.PlanPremium, Name: "Premium", Description: "Everything, lowest commission",
			PriceMonthlyCents: 99900, PriceYearlyCents: &yearlyPremium, CommissionRateBps: 1000,
			MaxServices: -1, MaxCoverageZones: -1, PrioritySearch: true, AnalyticsAdvanced: true, IsActive: true,
		},
	}
	for i := range plans {
		db.Create(&plans[i])
	}

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@salonbook.fr",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Admin",
	}
	db.Create(&admin)

	clients := []domain.User{}
	clientNames := []string{"Anna", "Bella", "Chloe"}
	for i, name := range clientNames {
		hash, _ := bcrypt.GenerateFromPassword([]byte("client123"), bcrypt.DefaultCost)
		client := domain.User{
			Email:        fmt.Sprintf("client%d@example.com", i+1),
			PasswordHash: string(hash),
			Role:         domain.RoleClient,
			Name:         name,
			Phone:        fmt.Sprintf("+33 6 12 34 56 %02d", i+10),
		}
		db.Create(&client)
		clients = append(clients, client)
	}

	owners := []domain.User{}
	for i := 0; i < 3; i++ {
		hash, _ := bcrypt.GenerateFromPassword([]byte("owner123"), bcrypt.DefaultCost)
		owner := domain.User{
			Email:        fmt.Sprintf("owner%d@example.com", i+1),
			PasswordHash: string(hash),
			Role:         domain.RoleSalonOwner,
			Name:         fmt.Sprintf("Owner %d", i+1),
		}
		db.Create(&owner)
		owners = append(owners, owner)
	}

	// ================== SALONS ==================
	log.Println("Creating salons...")
	cities := []struct {
		name     string
		lat, lon float64
	}{
		{"Paris", 48.8566, 2.3522},
		{"Lyon", 45.7640, 4.8357},
		{"Marseille", 43.2965, 5.3698},
	}
	salons := make([]domain.Salon, 0, 5)
	for i := 0; i < 5; i++ {
		owner := owners[i%len(owners)]
		city := cities[i%len(cities)]
		salon := domain.Salon{
			OwnerID:     owner.ID,
			Name:        fmt.Sprintf("Salon %d", i+1),
			Description: "A modern salon with experienced stylists",
			City:        city.name,
			Address:     fmt.Sprintf("%d Rue de la Paix", i+10),
			Latitude:    city.lat + rand.Float64()*0.02 - 0.01,
			Longitude:   city.lon + rand.Float64()*0.02 - 0.01,
			Phone:       fmt.Sprintf("+33 1 40 00 00 %02d", i+10),
			IsActive:    true,
		}
		db.Create(&salon)
		salons = append(salons, salon)
	}

	// ================== SERVICES ==================
	log.Println("Creating services...")
	catalog := []struct {
		name     string
		duration int
		price    int64
	}{
		{"Haircut", 60, 4500},
		{"Coloring", 120, 9500},
		{"Blow-dry", 30, 2500},
	}
	for _, salon := range salons {
		for _, item := range catalog {
			db.Create(&domain.SalonService{
				SalonID:         salon.ID,
				Name:            item.name,
				DurationMinutes: item.duration,
				PriceCents:      item.price,
				IsActive:        true,
			})
		}
	}

	// ================== COVERAGE ZONES ==================
	log.Println("Creating coverage zones...")
	for i, salon := range salons {
		db.Create(&domain.CoverageZone{
			SalonID:            salon.ID,
			City:               salon.City,
			Latitude:           salon.Latitude,
			Longitude:          salon.Longitude,
			RadiusKm:           5 + float64(i),
			AdditionalFeeCents: int64(500 * (i%2 + 1)),
		})
	}

	// ================== SUBSCRIPTIONS ==================
	// First salon on starter so commission differences show up in demos.
	log.Println("Creating subscriptions...")
	db.Create(&domain.Subscription{
		ID:            "seed-sub-starter",
		SalonID:       salons[0].ID,
		PlanID:        domain.PlanStarter,
		Status:        domain.SubscriptionActive,
		BillingPeriod: domain.BillingMonthly,
		StartedAt:     time.Now(),
		AutoRenew:     true,
	})

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")
	slots := []struct {
		start, end string
	}{
		{"09:00", "10:00"},
		{"10:00", "11:00"},
		{"11:00", "12:30"},
		{"14:00", "15:00"},
	}
	statuses := []domain.BookingStatus{
		domain.BookingCompleted, domain.BookingConfirmed, domain.BookingPending,
	}
	for i := 0; i < 10; i++ {
		salon := salons[i%len(salons)]
		client := clients[i%len(clients)]
		slot := slots[i%len(slots)]

		days := i - 5 // past and future
		date := time.Now().UTC().AddDate(0, 0, days).Truncate(24 * time.Hour)

		status := statuses[i%len(statuses)]
		if days < 0 && status != domain.BookingCompleted {
			status = domain.BookingCompleted
		}

		db.Create(&domain.Booking{
			SalonID:         salon.ID,
			ServiceID:       salon.ID*3 - 2, // first service of the salon
			ClientID:        client.ID,
			BookingDate:     date,
			StartTime:       slot.start,
			EndTime:         slot.end,
			Status:          status,
			TotalPriceCents: 4500,
			PaymentMethod:   domain.PayDeposit,
		})
	}

	// ================== REVIEWS ==================
	log.Println("Creating reviews...")
	for i, salon := range salons {
		client := clients[i%len(clients)]
		db.Create(&domain.Review{
			SalonID:  salon.ID,
			ClientID: client.ID,
			Rating:   3 + i%3,
			Comment:  "Great experience, will come back",
		})
		db.Model(&domain.Salon{}).Where("id = ?", salon.ID).
			Updates(map[string]any{"rating": 3 + i%3, "reviews_count": 1})
	}

	log.Println("Seed completed")
	log.Println("Admin: admin@salonbook.fr / admin123")
	log.Println("Clients: client1..3@example.com / client123")
	log.Println("Owners: owner1..3@example.com / owner123")
}
