// Package main is the entry point for the packsmart-service application.
//
// @title           Pack Smart API
// @version         1.0.0
// @description     API for scaling packing templates, estimating luggage weight
//
//	and suggesting companion items for trips. Includes trip management,
//	packing progress gamification and traveller utilities.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/packsmart/packsmart-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 JWT access token. Format: "Bearer {token}".
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Used when JWT authentication is disabled.
//
// @tag.name        Packing
// @tag.description Template scaling, weight estimation and suggestion operations
//
// @tag.name        Catalogue
// @tag.description Read-only access to templates, airline rules and achievements
//
// @tag.name        Trips
// @tag.description Trip management endpoints
//
// @tag.name        Items
// @tag.description Trip item endpoints
//
// @tag.name        Auth
// @tag.description Authentication and subscription tier endpoints
//
// @tag.name        Travel
// @tag.description Traveller utility endpoints
//
// @tag.name        Gamification
// @tag.description Packing progress and achievement endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/packsmart/packsmart-service/docs" // swagger docs

	"github.com/packsmart/packsmart-service/config"
	"github.com/packsmart/packsmart-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	router, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Initialization error")
	}

	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
