package api

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/staffdeck/hr-admin-api/internal/api/handler"
	"github.com/staffdeck/hr-admin-api/internal/api/middleware"
	"github.com/staffdeck/hr-admin-api/internal/core/domain"
	"github.com/staffdeck/hr-admin-api/internal/core/service"
	"github.com/staffdeck/hr-admin-api/internal/infrastructure/db/postgres"
	redisdb "github.com/staffdeck/hr-admin-api/internal/infrastructure/db/redis"
	"github.com/staffdeck/hr-admin-api/internal/infrastructure/mail"
	"github.com/staffdeck/hr-admin-api/internal/infrastructure/storage"
	"github.com/staffdeck/hr-admin-api/internal/offerletter"
)

// Options carries the shared dependencies the router needs to assemble the
// handler graph.
type Options struct {
	Pool      *pgxpool.Pool
	Redis     *redis.Client
	JWTSecret string
	PhotoDir  string
	Mail      mail.Config
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("hradmin"))

	// --- Infrastructure ---
	photos, err := storage.NewPhotoStore(opts.PhotoDir)
	if err != nil {
		return nil, err
	}
	employeeRepo := postgres.NewEmployeeRepository(opts.Pool)
	adminRepo := postgres.NewAdminRepository(opts.Pool)
	attendanceRepo := postgres.NewAttendanceRepository(opts.Pool)
	salaryRepo := postgres.NewSalaryRepository(opts.Pool)
	mailer := mail.NewMailer(opts.Mail)
	renderer := offerletter.NewChromeRenderer(0)
	guard := redisdb.NewSendGuard(opts.Redis)

	// --- Services ---
	authService := service.NewAuthService(employeeRepo, adminRepo, opts.JWTSecret, time.Hour)
	employeeService := service.NewEmployeeService(employeeRepo, photos, opts.Logger)
	attendanceService := service.NewAttendanceService(attendanceRepo)
	salaryService := service.NewSalaryService(salaryRepo)
	offerService := service.NewOfferLetterService(employeeRepo, renderer, mailer, guard, opts.Logger)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	attendanceHandler := handler.NewAttendanceHandler(attendanceService)
	salaryHandler := handler.NewSalaryHandler(salaryService)
	offerHandler := handler.NewOfferLetterHandler(offerService)
	healthHandler := handler.NewHealthHandler(opts.Pool, opts.Redis)

	auth := middleware.Auth(opts.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Open routes: logins, health, metrics ---
	e.POST("/employee/api/login", authHandler.EmployeeLogin)
	e.POST("/api/login", authHandler.AdminLogin)
	e.GET("/api/health", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Admin management surface ---
	admin := e.Group("/api", auth, adminOnly)
	admin.POST("/employees", employeeHandler.Create)
	admin.GET("/employees", employeeHandler.List)
	admin.GET("/employees/full", employeeHandler.ListFull)
	admin.GET("/employeesdata", employeeHandler.ListDirectory)
	admin.PUT("/employees/:id", employeeHandler.Update)
	admin.DELETE("/employees/:id", employeeHandler.Delete)
	admin.POST("/employees/:id/send-offer-letter", offerHandler.Send)
	admin.POST("/attendance", attendanceHandler.Mark)
	admin.GET("/attendance/history/:id", attendanceHandler.History)
	admin.POST("/salary", salaryHandler.Mark)
	admin.GET("/salary/history/:id", salaryHandler.History)
	admin.GET("/salary/status/:id", salaryHandler.Status)

	// --- Employee self-service surface (self-or-admin scoped) ---
	self := e.Group("/employee/api", auth)
	self.GET("/profile", employeeHandler.Profile)
	self.GET("/attendance/history/:id", attendanceHandler.History)
	self.GET("/salary/history/:id", salaryHandler.History)

	return e, nil
}
