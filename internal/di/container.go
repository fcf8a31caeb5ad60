package di

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/gateway"
	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/handler"
	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/middleware"
	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/repository"
	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/service"
	pkgmw "github.com/PramudithaWeerakoon/radio-reservation-service/pkg/middleware"
)

// Config carries the externally constructed dependencies into the container
type Config struct {
	Pool     *pgxpool.Pool
	Gateway  gateway.CheckoutGateway
	Notifier service.Notifier

	JWTSecret   string
	HireDeposit float64
	Currency    string

	// DB and Redis feed the readiness probe; Redis also backs idempotency
	DB          handler.Pinger
	Redis       handler.Pinger
	RedisClient pkgmw.RedisClient
}

// Container wires repositories, services and handlers
type Container struct {
	EventRepository   repository.EventRepository
	BookingRepository repository.BookingRepository
	HireRepository    repository.HireRepository

	EventService   *service.EventService
	BookingService *service.BookingService
	HireService    *service.HireService
	PaymentService *service.PaymentService

	EventHandler   *handler.EventHandler
	BookingHandler *handler.BookingHandler
	HireHandler    *handler.HireHandler
	PaymentHandler *handler.PaymentHandler
	HealthHandler  *handler.HealthHandler

	jwtSecret   string
	redisClient pkgmw.RedisClient
}

// New builds the full dependency graph
func New(cfg *Config) *Container {
	eventRepo := repository.NewPostgresEventRepository(cfg.Pool)
	bookingRepo := repository.NewPostgresBookingRepository(cfg.Pool)
	hireRepo := repository.NewPostgresHireRepository(cfg.Pool)

	eventSvc := service.NewEventService(eventRepo)
	bookingSvc := service.NewBookingService(bookingRepo, cfg.Notifier)
	hireSvc := service.NewHireService(hireRepo, cfg.Notifier)
	paymentSvc := service.NewPaymentService(hireRepo, cfg.Gateway, cfg.HireDeposit, cfg.Currency)

	return &Container{
		EventRepository:   eventRepo,
		BookingRepository: bookingRepo,
		HireRepository:    hireRepo,

		EventService:   eventSvc,
		BookingService: bookingSvc,
		HireService:    hireSvc,
		PaymentService: paymentSvc,

		EventHandler:   handler.NewEventHandler(eventSvc),
		BookingHandler: handler.NewBookingHandler(bookingSvc),
		HireHandler:    handler.NewHireHandler(hireSvc),
		PaymentHandler: handler.NewPaymentHandler(paymentSvc),
		HealthHandler:  handler.NewHealthHandler(cfg.DB, cfg.Redis),

		jwtSecret:   cfg.JWTSecret,
		redisClient: cfg.RedisClient,
	}
}

// RegisterRoutes mounts the HTTP surface on the engine
func (c *Container) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", c.HealthHandler.Health)
	r.GET("/ready", c.HealthHandler.Ready)

	r.Use(middleware.Identify(c.jwtSecret))

	var idem gin.HandlerFunc
	if c.redisClient != nil {
		idem = pkgmw.Idempotency(&pkgmw.IdempotencyConfig{Redis: c.redisClient})
	} else {
		idem = func(gc *gin.Context) { gc.Next() }
	}

	r.GET("/events", c.EventHandler.List)
	r.GET("/events/:id", c.EventHandler.Get)
	r.POST("/events", middleware.RequireRole(middleware.RoleAdmin), c.EventHandler.Create)

	r.POST("/bookings/create", idem, c.BookingHandler.Create)
	r.GET("/bookings/:id", c.BookingHandler.Get)
	r.PATCH("/bookings/:id", middleware.RequireRole(middleware.RoleAdmin), c.BookingHandler.UpdateStatus)

	r.POST("/hire/create", middleware.RequireUser(), idem, c.HireHandler.Create)
	r.GET("/hire/payment/success", c.HireHandler.SuccessPage)
	r.GET("/hire/payment/canceled", c.HireHandler.CancelPage)
	r.GET("/hire/:id", c.HireHandler.Get)
	r.PATCH("/hire/:id", middleware.RequireRole(middleware.RoleAdmin), c.HireHandler.Update)
	r.PATCH("/hire/:id/success", c.HireHandler.PaymentSuccess)

	r.POST("/payment/checkout", middleware.RequireUser(), c.PaymentHandler.Checkout)
}
