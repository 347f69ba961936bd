package main // Entry point for the academy administration API

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/academyhq/academy-admin/internal/config"
	"github.com/academyhq/academy-admin/internal/database"
	"github.com/academyhq/academy-admin/internal/handler"
	"github.com/academyhq/academy-admin/internal/queue"
	"github.com/academyhq/academy-admin/internal/repository"
	"github.com/academyhq/academy-admin/internal/router"
)

func main() {
	// .env is optional; real deployments set the variables directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer func() { _ = db.Close() }()

	// Redis is optional; caching and rate limiting degrade to no-ops
	// when the client is nil.
	rdb := config.NewRedisClient()

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	venues := repository.NewVenueRepo(db)
	players := repository.NewPlayerRepo(db)
	coaches := repository.NewCoachRepo(db)
	attendance := repository.NewAttendanceRepo(db)

	h := &router.Handlers{
		Auth:       handler.NewAuthHandler(cfg, users, tokens),
		Venues:     handler.NewVenueHandler(venues),
		Players:    handler.NewPlayerHandler(players),
		Coaches:    handler.NewCoachHandler(coaches),
		Attendance: handler.NewAttendanceHandler(attendance),
		CoachDash:  handler.NewCoachDashboardHandler(attendance),
		ParentDash: handler.NewParentDashboardHandler(attendance),
	}

	// Background consumer mirrors attendance events to logs/attendance.log.
	// It reconnects on its own; a missing broker only disables the mirror.
	go func() {
		if err := queue.StartAttendanceConsumer(); err != nil {
			log.Printf("attendance consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(echomw.CORS())

	router.RegisterRoutes(e)
	router.RegisterAPI(e, h, cfg.JWTSecret, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
