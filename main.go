package main

import (
	"fmt"
	"log"

	"github.com/DonAdhyatma/fe-final-project/configs"
	"github.com/DonAdhyatma/fe-final-project/middlewares"
	"github.com/DonAdhyatma/fe-final-project/routes"
	"github.com/DonAdhyatma/fe-final-project/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate + seed
	configs.SetupDatabase()
	if err := configs.SeedUsers(); err != nil {
		log.Fatalf("seed users failed: %v", err)
	}
	if err := configs.SeedMenus(); err != nil {
		log.Fatalf("seed menus failed: %v", err)
	}

	// live order feed
	hub := ws.NewOrderHub()
	go hub.Run()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("POS backend running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
