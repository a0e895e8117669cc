package handler

import (
    "errors"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-room-reservation/internal/booking"
    "github.com/iliyamo/hotel-room-reservation/internal/model"
    "github.com/iliyamo/hotel-room-reservation/internal/repository"
)

// RoomHandler serves room listings for a hotel and the admin room CRUD.
type RoomHandler struct {
    Rooms  *repository.RoomRepo
    Hotels *repository.HotelRepo
}

// NewRoomHandler constructs a RoomHandler.
func NewRoomHandler(rooms *repository.RoomRepo, hotels *repository.HotelRepo) *RoomHandler {
    if rooms == nil || hotels == nil {
        panic("nil repository passed to NewRoomHandler")
    }
    return &RoomHandler{Rooms: rooms, Hotels: hotels}
}

// ListByHotel handles GET /v1/hotels/:id/rooms.
func (h *RoomHandler) ListByHotel(c echo.Context) error {
    hotelID, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hotel id"})
    }
    ctx := c.Request().Context()
    if _, err := h.Hotels.GetByID(ctx, hotelID); err != nil {
        if errors.Is(err, repository.ErrHotelNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "hotel not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    rooms, err := h.Rooms.ListByHotel(ctx, hotelID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, rooms)
}

type roomReq struct {
    HotelID    uint64 `json:"hotel_id"`
    RoomType   string `json:"room_type"`
    PriceCents int64  `json:"price_cents"`
    Amenities  string `json:"amenities"`
    Available  bool   `json:"is_available"`
}

// Create handles POST /v1/admin/rooms.
func (h *RoomHandler) Create(c echo.Context) error {
    var req roomReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if req.HotelID == 0 || req.RoomType == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "hotel_id and room_type are required"})
    }
    if req.PriceCents < 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "price_cents must be non-negative"})
    }
    ctx := c.Request().Context()
    if _, err := h.Hotels.GetByID(ctx, req.HotelID); err != nil {
        if errors.Is(err, repository.ErrHotelNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "hotel not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    room := &model.Room{HotelID: req.HotelID, RoomType: req.RoomType, PriceCents: req.PriceCents, Amenities: req.Amenities, Available: req.Available}
    if err := h.Rooms.Create(ctx, room); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusCreated, room)
}

// Update handles PUT /v1/admin/rooms/:id.  Price changes apply only to
// future bookings; existing totals are frozen.
func (h *RoomHandler) Update(c echo.Context) error {
    id, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
    }
    var req roomReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if req.PriceCents < 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "price_cents must be non-negative"})
    }
    room := &model.Room{ID: id, HotelID: req.HotelID, RoomType: req.RoomType, PriceCents: req.PriceCents, Amenities: req.Amenities, Available: req.Available}
    if err := h.Rooms.Update(c.Request().Context(), room); err != nil {
        if errors.Is(err, booking.ErrRoomNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, room)
}

// Delete handles DELETE /v1/admin/rooms/:id.
func (h *RoomHandler) Delete(c echo.Context) error {
    id, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
    }
    if err := h.Rooms.Delete(c.Request().Context(), id); err != nil {
        if errors.Is(err, booking.ErrRoomNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.NoContent(http.StatusNoContent)
}
