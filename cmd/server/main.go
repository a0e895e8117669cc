package main

import (
    "log"

    "github.com/joho/godotenv"
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-room-reservation/internal/booking"
    "github.com/iliyamo/hotel-room-reservation/internal/config"
    "github.com/iliyamo/hotel-room-reservation/internal/database"
    "github.com/iliyamo/hotel-room-reservation/internal/handler"
    "github.com/iliyamo/hotel-room-reservation/internal/queue"
    "github.com/iliyamo/hotel-room-reservation/internal/report"
    "github.com/iliyamo/hotel-room-reservation/internal/repository"
    "github.com/iliyamo/hotel-room-reservation/internal/router"
    "github.com/iliyamo/hotel-room-reservation/internal/service"
)

func main() {
    // .env is optional; real deployments set the environment directly.
    _ = godotenv.Load()
    cfg := config.Load()

    db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
    if err != nil {
        log.Fatalf("database: %v", err)
    }
    defer func() { _ = db.Close() }()

    rdb := config.NewRedisClient()
    if rdb == nil {
        log.Printf("redis unavailable; rate limiting and response caching disabled")
    }

    hotelRepo := repository.NewHotelRepo(db)
    roomRepo := repository.NewRoomRepo(db)
    bookingRepo := repository.NewBookingRepo(db)
    userRepo := repository.NewUserRepo(db)
    contactRepo := repository.NewContactRepo(db)

    engine := booking.New(roomRepo, bookingRepo, userRepo, service.MockPayments{})
    reports := report.New(roomRepo, bookingRepo)

    h := router.Handlers{
        Auth:    handler.NewAuthHandler(cfg, userRepo),
        Hotels:  handler.NewHotelHandler(hotelRepo),
        Rooms:   handler.NewRoomHandler(roomRepo, hotelRepo),
        Booking: handler.NewBookingHandler(engine, bookingRepo, roomRepo, hotelRepo),
        Reports: handler.NewReportHandler(reports),
        Contact: handler.NewContactHandler(contactRepo),
    }

    e := echo.New()
    e.HideBanner = true
    router.Register(e, cfg, rdb, h)

    // background consumer writing the booking audit log
    go func() {
        if err := queue.StartBookingConsumer(); err != nil {
            log.Printf("booking consumer stopped: %v", err)
        }
    }()

    addr := ":" + cfg.Port
    log.Printf("listening on %s (env=%s)", addr, cfg.Env)
    if err := e.Start(addr); err != nil {
        log.Fatal(err)
    }
}
