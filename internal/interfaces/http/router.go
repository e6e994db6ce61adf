package http

import (
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"gympoint/internal/interfaces/http/middleware"
	"gympoint/internal/interfaces/http/routes"

	_ "gympoint/docs"
)

// SetupRoutes configures middleware and all HTTP routes.
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.ErrorHandler(c.log))

	c.engine.GET("/health", c.hdlrs.healthHandler.HealthCheck)
	c.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRegistrationRoutes(c.engine, &routes.RegistrationRouteConfig{
		RegistrationHandler: c.hdlrs.registrationHandler,
	})
}
