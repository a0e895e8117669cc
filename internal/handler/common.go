// Package handler implements the HTTP surface on top of the reservation and
// reporting engines.  Handlers translate transport concerns (path params,
// JSON bodies, status codes) and leave all business rules to the engines.
package handler

import (
    "errors"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-room-reservation/internal/model"
)

const dateLayout = "2006-01-02"

// getUserID extracts the authenticated user id stored in the context by the
// JWT middleware.  The claim arrives as a float64 after JSON decoding, but
// other numeric forms are tolerated.
func getUserID(c echo.Context) (uint64, error) {
    switch t := c.Get("user_id").(type) {
    case uint64:
        return t, nil
    case int:
        return uint64(t), nil
    case int64:
        return uint64(t), nil
    case float64:
        return uint64(t), nil
    case string:
        if n, err := strconv.ParseUint(t, 10, 64); err == nil {
            return n, nil
        }
    }
    return 0, errors.New("invalid user_id in context")
}

// pathID parses a positive numeric path parameter.
func pathID(c echo.Context, name string) (uint64, bool) {
    id, err := strconv.ParseUint(c.Param(name), 10, 64)
    if err != nil || id == 0 {
        return 0, false
    }
    return id, true
}

// parseDate parses a YYYY-MM-DD calendar date.
func parseDate(s string) (time.Time, error) {
    return time.Parse(dateLayout, s)
}

// bookingResp is the JSON shape of a booking in responses.
type bookingResp struct {
    ID         uint64  `json:"id"`
    UserID     uint64  `json:"user_id"`
    RoomID     uint64  `json:"room_id"`
    CheckIn    string  `json:"check_in"`
    CheckOut   string  `json:"check_out"`
    TotalCents int64   `json:"total_cents"`
    Status     string  `json:"status"`
    PaymentRef *string `json:"payment_ref,omitempty"`
}

func toBookingResp(b model.Booking) bookingResp {
    return bookingResp{
        ID:         b.ID,
        UserID:     b.UserID,
        RoomID:     b.RoomID,
        CheckIn:    b.CheckIn.Format(dateLayout),
        CheckOut:   b.CheckOut.Format(dateLayout),
        TotalCents: b.TotalCents,
        Status:     string(b.Status),
        PaymentRef: b.PaymentRef,
    }
}
