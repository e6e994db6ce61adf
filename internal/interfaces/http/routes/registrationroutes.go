package routes

import (
	"github.com/gin-gonic/gin"

	"gympoint/internal/interfaces/http/handlers/registration"
)

// RegistrationRouteConfig holds dependencies for registration routes.
type RegistrationRouteConfig struct {
	RegistrationHandler *registration.RegistrationHandler
}

// SetupRegistrationRoutes configures registration routes.
// GET takes a student ID, PUT and DELETE take a registration ID.
func SetupRegistrationRoutes(engine *gin.Engine, cfg *RegistrationRouteConfig) {
	registrations := engine.Group("/registrations")
	{
		registrations.POST("", cfg.RegistrationHandler.CreateRegistration)
		registrations.GET("/:id", cfg.RegistrationHandler.ListRegistrations)
		registrations.PUT("/:id", cfg.RegistrationHandler.UpdateRegistration)
		registrations.DELETE("/:id", cfg.RegistrationHandler.CancelRegistration)
	}
}
