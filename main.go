package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"github.com/barbersalon/salon-api/availability"
	"github.com/barbersalon/salon-api/cache"
	"github.com/barbersalon/salon-api/controllers"
	"github.com/barbersalon/salon-api/cron"
	"github.com/barbersalon/salon-api/db"
	"github.com/barbersalon/salon-api/routes"
	"github.com/barbersalon/salon-api/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	// best-effort keeps the original check-then-create window; transactional
	// closes it at the store level.
	transactional := os.Getenv("CONSISTENCY_MODE") == "transactional"

	var st store.Store
	if os.Getenv("STORE_BACKEND") == "memory" {
		mem := store.NewMemory(transactional)
		if err := db.SeedStore(context.Background(), mem); err != nil {
			log.Fatal("Failed to seed in-memory store: ", err)
		}
		st = mem
		log.Println("Using in-memory store")
	} else {
		gdb, err := db.Init()
		if err != nil {
			log.Fatal(err)
		}
		if err := db.Migrate(gdb); err != nil {
			log.Fatal("Failed to run migrations: ", err)
		}
		if os.Getenv("SEED_DB") == "true" {
			if err := db.Seed(gdb); err != nil {
				log.Fatal("Failed to seed database: ", err)
			}
		}
		st = store.NewGorm(gdb, transactional)
	}

	slots := cache.NewSlotCache(os.Getenv("REDIS_ADDR"), 5*time.Minute)
	engine := availability.NewEngine(st)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	staffCtl := controllers.NewStaffController(st)
	contactCtl := controllers.NewContactController(st)

	routes.SetupAuthRoutes(app, controllers.NewAuthController(st))
	routes.SetupServiceRoutes(app, controllers.NewServiceController(st))
	routes.SetupStaffRoutes(app, staffCtl)
	routes.SetupBookingRoutes(app, controllers.NewBookingController(st, engine, slots))
	routes.SetupContactRoutes(app, contactCtl)
	routes.SetupAdminRoutes(app, controllers.NewAdminController(st, engine, slots), staffCtl, contactCtl)

	if _, err := cron.StartReminderJob(st); err != nil {
		log.Fatal("Failed to start reminder job: ", err)
	}

	if err := app.Listen(":8000"); err != nil {
		log.Fatal(err)
	}
}
