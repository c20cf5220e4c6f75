package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/gaurabwebdev/bistro-boss-server/configs"
	"github.com/gaurabwebdev/bistro-boss-server/middlewares"
	"github.com/gaurabwebdev/bistro-boss-server/routes"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("BISTRO-BOSS is running on", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
