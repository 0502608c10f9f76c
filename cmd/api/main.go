package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-nexus-crm/internal/fixture"
	"go-nexus-crm/internal/handler"
	"go-nexus-crm/internal/middleware"
	"go-nexus-crm/internal/remote"
	"go-nexus-crm/internal/repository"
	"go-nexus-crm/internal/service"
	"go-nexus-crm/internal/session"
	"go-nexus-crm/internal/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Repositories (in-memory collections)
	userRepo := repository.NewUserRepo()
	roleRepo := repository.NewRoleRepo()
	authorityRepo := repository.NewAuthorityRepo()
	leadRepo := repository.NewLeadRepo()
	companyRepo := repository.NewCompanyRepo()
	notifRepo := repository.NewNotificationRepo()

	// 3. Session store (the single durable record) and trap state
	sessionFile := os.Getenv("SESSION_FILE")
	if sessionFile == "" {
		sessionFile = ".nexus_session.json"
	}
	sessions := session.NewStore(sessionFile)
	trapService := service.NewTrapService()

	// 4. Seed collections per profile
	seedCollections(userRepo, roleRepo, authorityRepo, leadRepo, companyRepo, notifRepo, trapService)

	// 5. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 6. Dependency Injection (Wiring Layers)
	passphrase := os.Getenv("LOGIN_PASSPHRASE")
	if passphrase == "" {
		passphrase = "password"
	}
	authService, err := service.NewAuthService(userRepo, sessions, passphrase)
	if err != nil {
		log.Fatal("Failed to initialize auth service: ", err)
	}
	userService := service.NewUserService(userRepo, roleRepo, authorityRepo)
	leadService := service.NewLeadService(leadRepo)
	companyService := service.NewCompanyService(companyRepo, userRepo)
	notificationService := service.NewNotificationService(notifRepo, sessions, wsHub)
	dashService := service.NewDashboardService(leadRepo, companyRepo)

	authHandler := handler.NewAuthHandler(authService)
	trapHandler := handler.NewTrapHandler(trapService)
	userHandler := handler.NewUserHandler(userService)
	roleHandler := handler.NewRoleHandler(roleRepo, authorityRepo, userService)
	leadHandler := handler.NewLeadHandler(leadService)
	companyHandler := handler.NewCompanyHandler(companyService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	dashHandler := handler.NewDashboardHandler(dashService)

	// 7. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Nexus CRM v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS
	// Outage pre-emption: while active, every route (login included)
	// resolves to the trap view. Only the reset route stays reachable.
	app.Use(middleware.Trap(trapService, "/api/v1/trap/reset"))

	// 8. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)
	auth.Get("/session", authHandler.Session)

	api.Get("/trap", trapHandler.Status)
	api.Post("/trap/trigger", trapHandler.Trigger)
	api.Post("/trap/reset", trapHandler.Reset)

	// ============ PROTECTED ROUTES ============
	// All routes below require authentication
	protected := api.Group("", middleware.RequireAuth(sessions))

	// Dashboard (any authenticated role)
	protected.Get("/dashboard", dashHandler.GetDashboardStats)

	// User management (ADMIN and SUPERUSER only; role-gated, not redirected)
	users := protected.Group("/users", middleware.RequireRole("ADMIN", "SUPERUSER"))
	users.Get("/", userHandler.GetUsers)
	users.Get("/assignable", userHandler.GetAssignableUsers)
	users.Get("/:id", userHandler.GetUser)
	users.Post("/", userHandler.CreateUser)
	users.Put("/:id", userHandler.UpdateUser)
	users.Put("/:id/status", userHandler.ToggleUserStatus)
	users.Put("/:id/authorities", userHandler.UpdateUserAuthorities)

	// Roles and authorities (managed from the same screen as users). The
	// gate is attached per-route: an empty-prefix group would register it
	// as middleware on /api/v1 and catch every route added below.
	manageRBAC := middleware.RequireRole("ADMIN", "SUPERUSER")
	protected.Get("/roles", manageRBAC, roleHandler.GetRoles)
	protected.Post("/roles", manageRBAC, roleHandler.CreateRole)
	protected.Get("/authorities", manageRBAC, roleHandler.GetAuthorities)
	protected.Post("/authorities", manageRBAC, roleHandler.CreateAuthority)

	// Leads (any authenticated role; EMPLOYEE sees own assignments only)
	protected.Get("/leads", leadHandler.GetLeads)
	protected.Post("/leads", leadHandler.CreateLead)
	protected.Post("/leads/import", leadHandler.ImportLead)
	protected.Put("/leads/:id", leadHandler.UpdateLead)

	// Partner companies (SUPERUSER only)
	companies := protected.Group("/companies", middleware.RequireRole("SUPERUSER"))
	companies.Get("/", companyHandler.GetCompanies)
	companies.Post("/", companyHandler.CreateCompany)

	// Notifications
	protected.Get("/notifications", notificationHandler.GetNotifications)
	protected.Post("/notifications", notificationHandler.SendNotification)
	protected.Put("/notifications/:id/read", notificationHandler.MarkNotificationRead)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// Root resolves to the dashboard; unknown paths redirect home
	app.Get("/", middleware.RequireAuth(sessions), dashHandler.GetDashboardStats)
	app.Use(func(c *fiber.Ctx) error {
		return c.Redirect("/", fiber.StatusFound)
	})

	// 9. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	wsHub.Stop()

	log.Println("Server exited")
}

// seedCollections fills the in-memory stores. The profile flag is the whole
// deployment configuration surface: "local" takes everything from fixtures,
// "remote" fetches users from the admin API and keeps the rest local. A
// failed remote fetch trips the trap state instead of dying unhandled.
func seedCollections(
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	authorityRepo repository.AuthorityRepository,
	leadRepo repository.LeadRepository,
	companyRepo repository.CompanyRepository,
	notifRepo repository.NotificationRepository,
	trapService service.TrapService,
) {
	authorityRepo.SetAll(fixture.Authorities())
	roleRepo.SetAll(fixture.Roles())
	leadRepo.SetAll(fixture.Leads())
	companyRepo.SetAll(fixture.Companies())
	notifRepo.SetAll(fixture.Notifications())

	profile := os.Getenv("PROFILE_ACTIVE")
	if profile == "" {
		profile = "local"
	}
	log.Printf("Profile active: %s", profile)

	if profile == "local" {
		userRepo.SetAll(fixture.Users())
		return
	}

	client := remote.NewUsersClient(
		os.Getenv("CRM_USERS_API_ENDPOINT"),
		os.Getenv("CRM_USERS_API_TOKEN"),
	)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	users, err := client.FetchUsers(ctx)
	if err != nil {
		log.Printf("Warning: remote user listing failed: %v", err)
		trapService.Trigger("remote user listing failed")
		return
	}
	userRepo.SetAll(users)
	log.Printf("Loaded %d users from remote listing", len(users))
}
