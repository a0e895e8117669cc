package handler

import (
    "context"
    "errors"
    "log"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-room-reservation/internal/booking"
    "github.com/iliyamo/hotel-room-reservation/internal/model"
    "github.com/iliyamo/hotel-room-reservation/internal/queue"
    "github.com/iliyamo/hotel-room-reservation/internal/repository"
    "github.com/iliyamo/hotel-room-reservation/internal/service"
)

// BookingViewer supplies the joined booking/room/hotel projection used for a
// user's history listing.  Implemented by *repository.BookingRepo.
type BookingViewer interface {
    ViewByUser(ctx context.Context, userID uint64) ([]repository.BookingView, error)
}

// HotelNamer resolves the display name for an event payload.  Implemented by
// *repository.HotelRepo.
type HotelNamer interface {
    GetByID(ctx context.Context, id uint64) (*model.Hotel, error)
}

// BookingHandler exposes the reservation engine over HTTP.  The JWT
// middleware has already authenticated the caller; the user id on the
// booking is taken from the token, never from the request body.
type BookingHandler struct {
    Engine *booking.Engine
    Views  BookingViewer
    Rooms  booking.RoomStore
    Hotels HotelNamer

    // publish sends the booking-confirmed event; swapped out in tests.
    publish func(ctx context.Context, ev queue.BookingConfirmedEvent) error
}

// NewBookingHandler constructs a BookingHandler wired to the RabbitMQ
// publisher.  Views, Rooms and Hotels may be nil in reduced deployments;
// the affected features degrade individually.
func NewBookingHandler(e *booking.Engine, views BookingViewer, rooms booking.RoomStore, hotels HotelNamer) *BookingHandler {
    if e == nil {
        panic("nil engine passed to NewBookingHandler")
    }
    return &BookingHandler{
        Engine:  e,
        Views:   views,
        Rooms:   rooms,
        Hotels:  hotels,
        publish: service.PublishBookingConfirmed,
    }
}

type bookReq struct {
    RoomID   uint64 `json:"room_id"`
    CheckIn  string `json:"check_in"`  // YYYY-MM-DD
    CheckOut string `json:"check_out"` // YYYY-MM-DD
}

// Create handles POST /v1/bookings.
func (h *BookingHandler) Create(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    var req bookReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if req.RoomID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "room_id is required"})
    }
    checkIn, err := parseDate(req.CheckIn)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_in must be YYYY-MM-DD"})
    }
    checkOut, err := parseDate(req.CheckOut)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_out must be YYYY-MM-DD"})
    }

    b, err := h.Engine.Book(c.Request().Context(), userID, req.RoomID, checkIn, checkOut)
    switch {
    case err == nil:
    case errors.Is(err, booking.ErrInvalidDateRange):
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    case errors.Is(err, booking.ErrUserNotFound), errors.Is(err, booking.ErrRoomNotFound):
        return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
    case errors.Is(err, booking.ErrRoomUnavailable):
        return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
    default:
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }

    h.publishConfirmed(*b)
    return c.JSON(http.StatusCreated, toBookingResp(*b))
}

// Cancel handles DELETE /v1/bookings/:id.  Users may cancel only their own
// bookings; admins may cancel any.
func (h *BookingHandler) Cancel(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
    }

    ctx := c.Request().Context()
    if role, _ := c.Get("role").(string); role != "ADMIN" {
        mine, err := h.Engine.ListByUser(ctx, userID)
        if err != nil {
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
        }
        owned := false
        for _, b := range mine {
            if b.ID == id {
                owned = true
                break
            }
        }
        if !owned {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
        }
    }

    if err := h.Engine.Cancel(ctx, id); err != nil {
        if errors.Is(err, booking.ErrBookingNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.NoContent(http.StatusNoContent)
}

// ListMine handles GET /v1/bookings/me, returning the caller's history with
// hotel name and room type joined in when the viewer is available.
func (h *BookingHandler) ListMine(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    ctx := c.Request().Context()

    if h.Views != nil {
        views, err := h.Views.ViewByUser(ctx, userID)
        if err != nil {
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
        }
        out := make([]echo.Map, 0, len(views))
        for _, v := range views {
            r := toBookingResp(v.Booking)
            out = append(out, echo.Map{
                "booking":    r,
                "hotel_name": v.HotelName,
                "room_type":  v.RoomType,
            })
        }
        return c.JSON(http.StatusOK, out)
    }

    list, err := h.Engine.ListByUser(ctx, userID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    out := make([]bookingResp, 0, len(list))
    for _, b := range list {
        out = append(out, toBookingResp(b))
    }
    return c.JSON(http.StatusOK, out)
}

// ListAll handles GET /v1/admin/bookings.
func (h *BookingHandler) ListAll(c echo.Context) error {
    list, err := h.Engine.ListAll(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    out := make([]bookingResp, 0, len(list))
    for _, b := range list {
        out = append(out, toBookingResp(b))
    }
    return c.JSON(http.StatusOK, out)
}

// publishConfirmed emits the booking.confirmed event in the background.  The
// booking has already committed; publish errors are logged by the publisher
// and otherwise ignored.
func (h *BookingHandler) publishConfirmed(b model.Booking) {
    if h.publish == nil {
        return
    }
    go func() {
        ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
        defer cancel()

        ev := queue.BookingConfirmedEvent{
            BookingID:  b.ID,
            UserID:     b.UserID,
            RoomID:     b.RoomID,
            CheckIn:    b.CheckIn.Format(dateLayout),
            CheckOut:   b.CheckOut.Format(dateLayout),
            TotalCents: b.TotalCents,
            BookedAt:   time.Now().UTC().Format(time.RFC3339),
        }
        if n := b.CheckOut.Sub(b.CheckIn); n > 0 {
            ev.Nights = int(n / (24 * time.Hour))
        }
        if h.Rooms != nil {
            if room, err := h.Rooms.GetRoom(ctx, b.RoomID); err == nil {
                ev.RoomType = room.RoomType
                if h.Hotels != nil {
                    if hotel, err := h.Hotels.GetByID(ctx, room.HotelID); err == nil {
                        ev.HotelName = hotel.Name
                    }
                }
            }
        }
        if err := h.publish(ctx, ev); err != nil {
            log.Printf("booking %d: publish confirmed event: %v", b.ID, err)
        }
    }()
}
