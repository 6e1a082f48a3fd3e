package main

import (
	"fmt"
	"log"

	"dineinn/configs"
	"dineinn/middlewares"
	"dineinn/repository"
	"dineinn/routes"
	"dineinn/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectDB(cfg)
	db := configs.DB()
	configs.SetupDatabase()

	if err := configs.SeedDemo(cfg); err != nil {
		log.Fatalf("seed demo failed: %v", err)
	}

	// order feed for owner dashboards
	hub := ws.NewOrderHub(repository.NewRestaurantRepository(db))
	go hub.Run()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, db, cfg, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
