package router

import (
	"github.com/oksasatya/yokoo-bicycle/internal/application"
	"github.com/oksasatya/yokoo-bicycle/internal/container"
	pginfra "github.com/oksasatya/yokoo-bicycle/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/yokoo-bicycle/internal/interface/http"
	"github.com/oksasatya/yokoo-bicycle/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the
// router registry. Called once during application startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	cfg := container.GetConfig()

	accountSvc := application.NewAccountService(pginfra.NewAccountRepository(pool), logger)
	catalogSvc := application.NewCatalogService(pginfra.NewBicycleRepository(pool), container.GetGCS(), cfg.GCSBucket, logger)
	bookingSvc := application.NewBookingService(pginfra.NewBookingRepository(pool), container.GetRabbitPub(), logger)
	feedbackSvc := application.NewFeedbackService(pginfra.NewReviewRepository(pool), pginfra.NewContactRepository(pool))

	r.Add(modules.NewHealthModule())
	r.Add(modules.NewCatalogModule(handlers.NewBicycleHandler(catalogSvc, logger)))
	r.Add(modules.NewBookingModule(handlers.NewBookingHandler(bookingSvc, logger)))
	r.Add(modules.NewAccountModule(handlers.NewAccountHandler(accountSvc, logger), container.GetIDVerifier()))
	r.Add(modules.NewFeedbackModule(handlers.NewFeedbackHandler(feedbackSvc, logger)))
}
