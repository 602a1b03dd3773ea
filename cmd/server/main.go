package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/figmm/event-seat-reservation/internal/config"
	"github.com/figmm/event-seat-reservation/internal/database"
	"github.com/figmm/event-seat-reservation/internal/handler"
	"github.com/figmm/event-seat-reservation/internal/queue"
	"github.com/figmm/event-seat-reservation/internal/repository"
	"github.com/figmm/event-seat-reservation/internal/router"
	queue_publisher "github.com/figmm/event-seat-reservation/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatalf("schema: %v", err)
	}
	cancel()

	usuarios := repository.NewUsuarioRepo(db)
	mesas := repository.NewMesaRepo(db)
	asientos := repository.NewAsientoRepo(db)
	reservas := repository.NewReservaRepo(db)

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; cache and rate limiting disabled")
	}

	reservaHandler := handler.NewReservaHandler(usuarios, mesas, asientos, reservas)
	reservaHandler.PublicarConfirmada = queue_publisher.PublishReservaConfirmada

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAcceso(e, handler.NewAccessHandler(usuarios, reservas), rdb)
	router.RegisterVenue(e, handler.NewVenueHandler(mesas, asientos, reservas), rdb)
	router.RegisterReservas(e, reservaHandler)

	// Organizer notification log fed from the broker; runs until the
	// process exits and reconnects on its own.
	go func() {
		if err := queue.StartReservaConsumer(); err != nil {
			log.Printf("reserva consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
