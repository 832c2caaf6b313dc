package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/skghosh/socialdev-backend/internal/config"
	"github.com/skghosh/socialdev-backend/internal/handler"
	"github.com/skghosh/socialdev-backend/internal/middleware"
	"github.com/skghosh/socialdev-backend/internal/models"
	"github.com/skghosh/socialdev-backend/internal/repository"
	"github.com/skghosh/socialdev-backend/internal/service"
	"github.com/skghosh/socialdev-backend/pkg/database"
	"github.com/skghosh/socialdev-backend/pkg/email"
	"github.com/skghosh/socialdev-backend/pkg/logger"
	"github.com/skghosh/socialdev-backend/pkg/payment"
	"github.com/skghosh/socialdev-backend/pkg/utils"
)

func main() {
	// .env is optional outside development
	_ = godotenv.Load()

	cfg := config.LoadConfig()

	zlog, err := logger.New(cfg.LogEnv)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	db := database.NewDatabase()

	if err := db.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.JoinRecord{},
	); err != nil {
		zlog.Fatalw("database migration failed", "error", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	joinRepo := repository.NewJoinRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	// Email service
	emailService := email.NewEmailService()

	// Stripe service
	stripeService := payment.NewStripeService(cfg.StripeSecretKey)

	// Services
	authService := service.NewAuthService(userRepo, emailService, zlog)
	userService := service.NewUserService(userRepo)
	joinService := service.NewJoinService(joinRepo, eventRepo)
	eventService := service.NewEventService(eventRepo, userRepo, joinService)
	statsService := service.NewStatsService(statsRepo)
	paymentService := service.NewPaymentService(stripeService)

	validator := utils.NewValidator()

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator)
	userHandler := handler.NewUserHandler(userService, validator)
	eventHandler := handler.NewEventHandler(eventService, validator)
	joinHandler := handler.NewJoinHandler(joinService, validator)
	statsHandler := handler.NewStatsHandler(statsService)
	paymentHandler := handler.NewPaymentHandler(paymentService, validator)

	// Router
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE",
		AllowCredentials: true,
	}))
	app.Use(fiberlogger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Social Development Events Server is Running!")
	})

	api := app.Group("/api")

	protected := middleware.Protected(userService)
	adminOnly := middleware.AdminOnly()

	// Auth
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Users
	api.Post("/users", userHandler.UpsertUser)
	api.Get("/users/role/:email", protected, userHandler.GetUserRole)
	api.Get("/users", protected, adminOnly, userHandler.GetAllUsers)
	api.Patch("/users/status/:id", protected, adminOnly, userHandler.UpdateUserStatus)

	// Events. Static segments must be registered before /events/:id.
	api.Post("/events", protected, eventHandler.CreateEvent)
	api.Get("/events/upcoming", eventHandler.GetUpcomingEvents)
	api.Get("/events/manage", protected, eventHandler.GetManagedEvents)
	api.Get("/events/organizer/:email", protected, eventHandler.GetOrganizerEvents)
	api.Get("/events/:id", eventHandler.GetEvent)
	api.Put("/events/:id", protected, eventHandler.UpdateEvent)
	api.Patch("/events/:id", protected, eventHandler.UpdateEvent)
	api.Delete("/events/:id", protected, eventHandler.DeleteEvent)

	// Joins
	api.Post("/join-event", protected, joinHandler.JoinEvent)
	api.Get("/joined-events/check", joinHandler.CheckMembership)
	api.Get("/joined-events/:email", protected, joinHandler.GetJoinedEvents)
	api.Patch("/joined-events/:id/status", protected, adminOnly, joinHandler.UpdateJoinStatus)
	api.Delete("/joined-events/:id", protected, adminOnly, joinHandler.DeleteJoin)

	// Admin dashboard
	api.Get("/admin-stats", protected, adminOnly, statsHandler.GetAdminStats)
	api.Get("/recent-joins", protected, adminOnly, joinHandler.GetRecentJoins)
	api.Get("/all-joined-events", protected, adminOnly, joinHandler.GetAllJoins)
	api.Get("/donations", protected, adminOnly, joinHandler.GetDonations)

	// Payments
	api.Post("/create-payment-intent", protected, paymentHandler.CreatePaymentIntent)

	zlog.Infow("server starting", "port", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
