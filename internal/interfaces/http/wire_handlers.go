package http

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"gympoint/internal/interfaces/http/handlers"
	"gympoint/internal/interfaces/http/handlers/registration"
	"gympoint/internal/shared/logger"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	healthHandler       *handlers.HealthHandler
	registrationHandler *registration.RegistrationHandler
}

func newHandlers(ucs *allUseCases, policy registration.StatusPolicy, checks map[string]handlers.Pinger, log logger.Interface) *allHandlers {
	return &allHandlers{
		healthHandler: handlers.NewHealthHandler(checks, log),
		registrationHandler: registration.NewRegistrationHandler(
			ucs.createRegistrationUC,
			ucs.listRegistrationsUC,
			ucs.updateRegistrationUC,
			ucs.cancelRegistrationUC,
			policy,
			log,
		),
	}
}

func healthChecks(db *gorm.DB, redisClient *redis.Client) map[string]handlers.Pinger {
	checks := map[string]handlers.Pinger{
		"database": handlers.PingerFunc(func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}),
	}
	if redisClient != nil {
		checks["redis"] = handlers.PingerFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	}
	return checks
}
