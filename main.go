package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"github.com/vineetbagga004/Viral-Nation-Assessment/auth"
	"github.com/vineetbagga004/Viral-Nation-Assessment/config"
	"github.com/vineetbagga004/Viral-Nation-Assessment/database"
	"github.com/vineetbagga004/Viral-Nation-Assessment/graph"
	"github.com/vineetbagga004/Viral-Nation-Assessment/repositories"
	"github.com/vineetbagga004/Viral-Nation-Assessment/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	var users repositories.UserStore = database.NewUserStore(db)
	var movies repositories.MovieStore = database.NewMovieStore(db)

	// The movie list cache is optional; without Redis every read goes
	// straight to Postgres.
	if cfg.RedisAddr != "" {
		rdb, err := database.ConnectRedis(context.Background(), cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		movies = database.NewMovieCache(rdb, movies)
	}

	tokens := auth.NewTokenService(cfg.AppSecret, cfg.TokenTTL)

	schema := graph.NewSchema(&graph.Resolver{
		Users:  users,
		Movies: movies,
		Tokens: tokens,
	})

	app := fiber.New()
	routes.SetupRoutes(app, schema, tokens)

	log.Printf("Starting server on port %s...", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
