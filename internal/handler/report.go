package handler

import (
    "errors"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-room-reservation/internal/booking"
    "github.com/iliyamo/hotel-room-reservation/internal/report"
)

// ReportHandler exposes the reporting engine to admins.  Both endpoints are
// read-only; windows arrive as start_date/end_date query parameters.
type ReportHandler struct {
    Engine *report.Engine
}

// NewReportHandler constructs a ReportHandler.
func NewReportHandler(e *report.Engine) *ReportHandler {
    if e == nil {
        panic("nil engine passed to NewReportHandler")
    }
    return &ReportHandler{Engine: e}
}

// Revenue handles GET /v1/admin/reports/revenue.
func (h *ReportHandler) Revenue(c echo.Context) error {
    start, err := parseDate(c.QueryParam("start_date"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_date must be YYYY-MM-DD"})
    }
    end, err := parseDate(c.QueryParam("end_date"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "end_date must be YYYY-MM-DD"})
    }
    rev, err := h.Engine.Revenue(c.Request().Context(), start, end)
    if err != nil {
        if errors.Is(err, booking.ErrInvalidDateRange) {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "end_date must not precede start_date"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, rev)
}

// Occupancy handles GET /v1/admin/reports/occupancy.
func (h *ReportHandler) Occupancy(c echo.Context) error {
    start, err := parseDate(c.QueryParam("start_date"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_date must be YYYY-MM-DD"})
    }
    end, err := parseDate(c.QueryParam("end_date"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "end_date must be YYYY-MM-DD"})
    }
    occ, err := h.Engine.Occupancy(c.Request().Context(), start, end)
    if err != nil {
        if errors.Is(err, booking.ErrInvalidDateRange) {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "end_date must not precede start_date"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, occ)
}
