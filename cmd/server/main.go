package main

import (
    "log"

    "github.com/joho/godotenv"
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/railway-ticketing/internal/config"
    "github.com/iliyamo/railway-ticketing/internal/database"
    "github.com/iliyamo/railway-ticketing/internal/handler"
    "github.com/iliyamo/railway-ticketing/internal/middleware"
    "github.com/iliyamo/railway-ticketing/internal/queue"
    "github.com/iliyamo/railway-ticketing/internal/repository"
    "github.com/iliyamo/railway-ticketing/internal/router"
    "github.com/iliyamo/railway-ticketing/internal/service"
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

    // Redis is optional: without it caching and rate limiting disable
    // themselves and the API still serves.
    rdb := config.NewRedisClient()
    if rdb == nil {
        log.Println("redis unavailable; cache and rate limiter disabled")
    }

    stations := repository.NewStationRepo(db)
    trains := repository.NewTrainRepo(db)
    tickets := repository.NewTicketRepo(db)
    logs := repository.NewVerificationLogRepo(db)
    staff := repository.NewStaffRepo(db)
    reports := repository.NewReportRepo(db)

    issuer := &service.Issuer{Stations: stations, Trains: trains, Tickets: tickets}
    verifier := &service.Verifier{Tickets: tickets, Logs: logs}
    resolver := &service.RouteResolver{Trains: trains}

    authH := handler.NewAuthHandler(cfg, staff)
    stationH := handler.NewStationHandler(stations)
    trainH := handler.NewTrainHandler(trains)
    staffH := handler.NewStaffHandler(cfg, staff)
    dataH := handler.NewDataHandler(tickets, logs)
    reportH := handler.NewReportHandler(tickets, logs, reports, "reports")
    ticketH := handler.NewTicketHandler(issuer, tickets)
    searchH := handler.NewTrainSearchHandler(resolver)
    verifyH := handler.NewVerifyHandler(verifier, logs, tickets)

    // Background consumer turning broker events into audit log files.
    go func() {
        if err := queue.StartTicketConsumer(); err != nil {
            log.Printf("ticket consumer stopped: %v", err)
        }
    }()

    e := echo.New()
    e.HideBanner = true
    e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
    cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

    router.RegisterRoutes(e)
    router.RegisterAuth(e, authH, cfg.JWTSecret)
    router.RegisterAdmin(e, cfg.JWTSecret, stationH, trainH, staffH, dataH, reportH)
    router.RegisterTicketing(e, cfg.JWTSecret, cache, ticketH, searchH, stationH)
    router.RegisterVerification(e, cfg.JWTSecret, verifyH)

    addr := ":" + cfg.Port
    log.Printf("listening on %s (env=%s)", addr, cfg.Env)
    if err := e.Start(addr); err != nil {
        log.Fatal(err)
    }
}
