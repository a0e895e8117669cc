package handler

import (
    "errors"
    "net/http"
    "strconv"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-room-reservation/internal/model"
    "github.com/iliyamo/hotel-room-reservation/internal/repository"
)

// HotelHandler serves the public hotel catalog and the admin CRUD surface.
type HotelHandler struct {
    Hotels *repository.HotelRepo
}

// NewHotelHandler constructs a HotelHandler.
func NewHotelHandler(hotels *repository.HotelRepo) *HotelHandler {
    if hotels == nil {
        panic("nil repository passed to NewHotelHandler")
    }
    return &HotelHandler{Hotels: hotels}
}

// Search handles GET /v1/hotels with optional location, price_min_cents,
// price_max_cents and room_type query filters.
func (h *HotelHandler) Search(c echo.Context) error {
    f := repository.SearchFilter{
        Location: c.QueryParam("location"),
        RoomType: c.QueryParam("room_type"),
    }
    if s := c.QueryParam("price_min_cents"); s != "" {
        if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 {
            f.PriceMinCents = n
        }
    }
    if s := c.QueryParam("price_max_cents"); s != "" {
        if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 {
            f.PriceMaxCents = n
        }
    }
    hotels, err := h.Hotels.Search(c.Request().Context(), f)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, hotels)
}

// Get handles GET /v1/hotels/:id.
func (h *HotelHandler) Get(c echo.Context) error {
    id, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hotel id"})
    }
    hotel, err := h.Hotels.GetByID(c.Request().Context(), id)
    if err != nil {
        if errors.Is(err, repository.ErrHotelNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "hotel not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, hotel)
}

type hotelReq struct {
    Name        string  `json:"name"`
    Location    string  `json:"location"`
    Description string  `json:"description"`
    Rating      float64 `json:"rating"`
}

// Create handles POST /v1/admin/hotels.
func (h *HotelHandler) Create(c echo.Context) error {
    var req hotelReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if req.Name == "" || req.Location == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and location are required"})
    }
    hotel := &model.Hotel{Name: req.Name, Location: req.Location, Description: req.Description, Rating: req.Rating}
    if err := h.Hotels.Create(c.Request().Context(), hotel); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusCreated, hotel)
}

// Update handles PUT /v1/admin/hotels/:id.
func (h *HotelHandler) Update(c echo.Context) error {
    id, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hotel id"})
    }
    var req hotelReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    hotel := &model.Hotel{ID: id, Name: req.Name, Location: req.Location, Description: req.Description, Rating: req.Rating}
    if err := h.Hotels.Update(c.Request().Context(), hotel); err != nil {
        if errors.Is(err, repository.ErrHotelNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "hotel not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, hotel)
}

// Delete handles DELETE /v1/admin/hotels/:id.
func (h *HotelHandler) Delete(c echo.Context) error {
    id, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hotel id"})
    }
    if err := h.Hotels.Delete(c.Request().Context(), id); err != nil {
        if errors.Is(err, repository.ErrHotelNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "hotel not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.NoContent(http.StatusNoContent)
}
