// Package main Game Store API
//
// Game Store is a digital storefront where users buy games with a coin
// balance, keep a library of what they own, review games they bought, and
// connect with friends. Administrators curate the catalog, categories and
// discounts, and moderate the community.
//
//	Schemes: http, https
//	Host: localhost:8080
//	BasePath: /api/v1
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- bearer
package main

import (
	"context"

	_ "github.com/pressplay/gamestore/docs"
	"github.com/pressplay/gamestore/internal/app"
)

// @title Game Store API Service
// @version 1.0
// @description Game Store is a digital storefront with coin balances, game libraries, wishlists, reviews and friends.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	ctx := context.Background()
	application := app.NewApplication(ctx)
	application.Setup()
}
