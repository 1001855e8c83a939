package bootstrap

import (
	"time"

	"customer-notes-be/internal/config"
	"customer-notes-be/internal/controller"
	"customer-notes-be/internal/pkg/logger"
	"customer-notes-be/internal/pkg/metrics"
	"customer-notes-be/internal/pkg/ratelimit"
	"customer-notes-be/internal/pkg/security"
	"customer-notes-be/internal/pkg/serverutils"
	"customer-notes-be/internal/repository/unitofwork"
	"customer-notes-be/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController       controller.IAuthController
	CustomerController   controller.ICustomerController
	NoteController       controller.INoteController
	MonitoringController controller.IMonitoringController

	// Request-scoped middleware
	AuthMiddleware fiber.Handler

	// Cross-cutting facades (exposed for the server and main.go)
	Logger          logger.ILogger
	Metrics         *metrics.Collector
	RateLimiter     *ratelimit.Limiter
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	collector := metrics.NewCollector()
	limiter := ratelimit.New(cfg.RateLimit.RequestsPerMinute, time.Minute)
	credentials := security.NewCredentials(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
		cfg.Auth.BcryptCost,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	publisherService := service.NewPublisherService(pubSub, cfg.App.EventTopic)
	consumerService := service.NewConsumerService(pubSub, cfg.App.EventTopic, sysLogger)

	// 3. Services
	authService := service.NewAuthService(uowFactory, credentials, publisherService)
	customerService := service.NewCustomerService(uowFactory, publisherService)
	noteService := service.NewNoteService(uowFactory, publisherService, collector)

	// 4. Controllers
	return &Container{
		AuthController:       controller.NewAuthController(authService),
		CustomerController:   controller.NewCustomerController(customerService),
		NoteController:       controller.NewNoteController(noteService),
		MonitoringController: controller.NewMonitoringController(collector),

		AuthMiddleware: serverutils.NewAuthMiddleware(credentials, uowFactory),

		Logger:          sysLogger,
		Metrics:         collector,
		RateLimiter:     limiter,
		ConsumerService: consumerService,
	}
}
