// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"
	"github.com/packsmart/packsmart-service/config"
	"github.com/packsmart/packsmart-service/internal/http"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
// Catalogue validation failures abort initialization.
func InitializeApp(cfg config.Config) (*gin.Engine, error) {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	// Initialize the packing engine (catalogue and pure services)
	engine, err := InitializeEngine(cfg.Cache)
	if err != nil {
		return nil, err
	}

	// Initialize database components (MongoDB repositories and services)
	dbComponents := InitializeDatabase(cfg.Database)

	// Initialize router components (handlers and configuration)
	routerComponents := InitializeRouter(engine, dbComponents, cfg)

	return http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config), nil
}
