package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-room-reservation/internal/booking"
	"github.com/iliyamo/hotel-room-reservation/internal/interval"
	"github.com/iliyamo/hotel-room-reservation/internal/model"
	"github.com/iliyamo/hotel-room-reservation/internal/queue"
)

// fakeStore backs the engine in handler tests without a database.
type fakeStore struct {
	nextID   uint64
	rooms    map[uint64]model.Room
	users    map[uint64]bool
	bookings map[uint64]model.Booking
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextID: 1, rooms: map[uint64]model.Room{}, users: map[uint64]bool{}, bookings: map[uint64]model.Booking{}}
}

func (s *fakeStore) GetRoom(_ context.Context, id uint64) (*model.Room, error) {
	r, ok := s.rooms[id]
	if !ok {
		return nil, booking.ErrRoomNotFound
	}
	return &r, nil
}

func (s *fakeStore) UserExists(_ context.Context, id uint64) (bool, error) { return s.users[id], nil }

func (s *fakeStore) FindConfirmedOverlapping(_ context.Context, roomID uint64, start, end time.Time) ([]model.Booking, error) {
	var out []model.Booking
	for _, b := range s.bookings {
		if b.RoomID == roomID && b.Status == model.StatusConfirmed && interval.Overlaps(b.CheckIn, b.CheckOut, start, end) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *fakeStore) Create(_ context.Context, b *model.Booking) error {
	b.ID = s.nextID
	s.nextID++
	s.bookings[b.ID] = *b
	return nil
}

func (s *fakeStore) GetByID(_ context.Context, id uint64) (*model.Booking, error) {
	b, ok := s.bookings[id]
	if !ok {
		return nil, booking.ErrBookingNotFound
	}
	return &b, nil
}

func (s *fakeStore) UpdateStatus(_ context.Context, id uint64, status model.BookingStatus) error {
	b, ok := s.bookings[id]
	if !ok {
		return booking.ErrBookingNotFound
	}
	b.Status = status
	s.bookings[id] = b
	return nil
}

func (s *fakeStore) ListByUser(_ context.Context, userID uint64) ([]model.Booking, error) {
	var out []model.Booking
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *fakeStore) ListAll(_ context.Context) ([]model.Booking, error) {
	out := make([]model.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, b)
	}
	return out, nil
}

type stubPayments struct{}

func (stubPayments) Charge(context.Context, uint64, int64) (string, error) { return "pay_stub", nil }

// asUser injects the auth context the JWT middleware normally provides.
func asUser(uid uint64, role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("user_id", float64(uid))
			c.Set("role", role)
			return next(c)
		}
	}
}

func newTestHandler() (*BookingHandler, *fakeStore) {
	s := newFakeStore()
	s.users[1] = true
	s.users[2] = true
	s.rooms[10] = model.Room{ID: 10, HotelID: 1, RoomType: "suite", PriceCents: 20_000, Available: true}
	e := booking.New(s, s, s, stubPayments{})
	h := NewBookingHandler(e, nil, s, nil)
	h.publish = func(context.Context, queue.BookingConfirmedEvent) error { return nil }
	return h, s
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateBookingEndpoint(t *testing.T) {
	h, _ := newTestHandler()
	e := echo.New()
	e.POST("/v1/bookings", h.Create, asUser(1, model.RoleUser))

	rec := doJSON(e, http.MethodPost, "/v1/bookings",
		`{"room_id":10,"check_in":"2024-01-10","check_out":"2024-01-15"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp bookingResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(5*20_000), resp.TotalCents)
	assert.Equal(t, "CONFIRMED", resp.Status)
	assert.Equal(t, uint64(1), resp.UserID)
}

func TestCreateBookingConflict(t *testing.T) {
	h, _ := newTestHandler()
	e := echo.New()
	e.POST("/v1/bookings", h.Create, asUser(1, model.RoleUser))

	rec := doJSON(e, http.MethodPost, "/v1/bookings",
		`{"room_id":10,"check_in":"2024-01-10","check_out":"2024-01-15"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodPost, "/v1/bookings",
		`{"room_id":10,"check_in":"2024-01-12","check_out":"2024-01-18"}`)
	assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
}

func TestCreateBookingValidation(t *testing.T) {
	h, _ := newTestHandler()
	e := echo.New()
	e.POST("/v1/bookings", h.Create, asUser(1, model.RoleUser))

	// reversed dates
	rec := doJSON(e, http.MethodPost, "/v1/bookings",
		`{"room_id":10,"check_in":"2024-01-15","check_out":"2024-01-10"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// malformed date
	rec = doJSON(e, http.MethodPost, "/v1/bookings",
		`{"room_id":10,"check_in":"Jan 10","check_out":"2024-01-15"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// unknown room
	rec = doJSON(e, http.MethodPost, "/v1/bookings",
		`{"room_id":99,"check_in":"2024-01-10","check_out":"2024-01-15"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCancelBookingEndpoint(t *testing.T) {
	h, s := newTestHandler()
	e := echo.New()
	e.POST("/v1/bookings", h.Create, asUser(1, model.RoleUser))
	e.DELETE("/v1/bookings/:id", h.Cancel, asUser(1, model.RoleUser))

	rec := doJSON(e, http.MethodPost, "/v1/bookings",
		`{"room_id":10,"check_in":"2024-01-10","check_out":"2024-01-15"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodDelete, "/v1/bookings/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, model.StatusCanceled, s.bookings[1].Status)

	// unknown id
	rec = doJSON(e, http.MethodDelete, "/v1/bookings/42", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCancelSomeoneElsesBookingIsHidden(t *testing.T) {
	h, _ := newTestHandler()
	e := echo.New()
	e.POST("/v1/bookings", h.Create, asUser(1, model.RoleUser))
	// user 2 attempts the cancel
	e.DELETE("/v1/bookings/:id", h.Cancel, asUser(2, model.RoleUser))

	rec := doJSON(e, http.MethodPost, "/v1/bookings",
		`{"room_id":10,"check_in":"2024-01-10","check_out":"2024-01-15"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodDelete, "/v1/bookings/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code) // not 403: existence is not leaked
}

func TestListMineEndpoint(t *testing.T) {
	h, _ := newTestHandler()
	e := echo.New()
	e.POST("/v1/bookings", h.Create, asUser(1, model.RoleUser))
	e.GET("/v1/bookings/me", h.ListMine, asUser(1, model.RoleUser))

	doJSON(e, http.MethodPost, "/v1/bookings", `{"room_id":10,"check_in":"2024-01-10","check_out":"2024-01-12"}`)
	doJSON(e, http.MethodPost, "/v1/bookings", `{"room_id":10,"check_in":"2024-02-10","check_out":"2024-02-12"}`)

	rec := doJSON(e, http.MethodGet, "/v1/bookings/me", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []bookingResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 2)
}
