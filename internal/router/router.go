// Package router defines how HTTP routes are registered for the API.
package router

import (
    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/iliyamo/hotel-room-reservation/internal/config"
    "github.com/iliyamo/hotel-room-reservation/internal/handler"
    "github.com/iliyamo/hotel-room-reservation/internal/middleware"
    "github.com/iliyamo/hotel-room-reservation/internal/model"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
    Auth    *handler.AuthHandler
    Hotels  *handler.HotelHandler
    Rooms   *handler.RoomHandler
    Booking *handler.BookingHandler
    Reports *handler.ReportHandler
    Contact *handler.ContactHandler
}

// Register mounts all routes on the Echo instance.
//
// Public routes: health, auth, the hotel catalog (optionally cached) and
// the contact form.  Authenticated routes live under /v1 behind JWTAuth;
// admin routes additionally require the ADMIN role.
func Register(e *echo.Echo, cfg config.Config, rdb *redis.Client, h Handlers) {
    e.Use(middleware.RateLimit(config.LoadRateLimitConfig(), rdb))

    e.GET("/healthz", handler.Health)

    // auth
    e.POST("/v1/auth/register", h.Auth.Register)
    e.POST("/v1/auth/login", h.Auth.Login)

    // public catalog; responses are caller-independent, so cacheable
    cache := middleware.CacheGET(config.LoadCacheConfig(), rdb)
    e.GET("/v1/hotels", h.Hotels.Search, cache)
    e.GET("/v1/hotels/:id", h.Hotels.Get, cache)
    e.GET("/v1/hotels/:id/rooms", h.Rooms.ListByHotel, cache)

    // public contact form
    e.POST("/v1/contact", h.Contact.Submit)

    // authenticated routes
    auth := e.Group("/v1")
    auth.Use(middleware.JWTAuth(cfg.JWTSecret))
    auth.Use(middleware.RequireRole(model.RoleUser, model.RoleAdmin))
    auth.GET("/me", h.Auth.Me)
    auth.POST("/bookings", h.Booking.Create)
    auth.GET("/bookings/me", h.Booking.ListMine)
    auth.DELETE("/bookings/:id", h.Booking.Cancel)

    // admin routes
    admin := e.Group("/v1/admin")
    admin.Use(middleware.JWTAuth(cfg.JWTSecret))
    admin.Use(middleware.RequireRole(model.RoleAdmin))
    admin.POST("/hotels", h.Hotels.Create)
    admin.PUT("/hotels/:id", h.Hotels.Update)
    admin.DELETE("/hotels/:id", h.Hotels.Delete)
    admin.POST("/rooms", h.Rooms.Create)
    admin.PUT("/rooms/:id", h.Rooms.Update)
    admin.DELETE("/rooms/:id", h.Rooms.Delete)
    admin.GET("/bookings", h.Booking.ListAll)
    admin.GET("/contact", h.Contact.ListAll)
    admin.GET("/reports/revenue", h.Reports.Revenue)
    admin.GET("/reports/occupancy", h.Reports.Occupancy)
}
