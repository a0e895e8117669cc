package handler

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-room-reservation/internal/model"
    "github.com/iliyamo/hotel-room-reservation/internal/repository"
)

// ContactHandler accepts contact-form submissions and lists them for admins.
type ContactHandler struct {
    Messages *repository.ContactRepo
}

// NewContactHandler constructs a ContactHandler.
func NewContactHandler(messages *repository.ContactRepo) *ContactHandler {
    if messages == nil {
        panic("nil repository passed to NewContactHandler")
    }
    return &ContactHandler{Messages: messages}
}

type contactReq struct {
    Name    string `json:"name"`
    Email   string `json:"email"`
    Subject string `json:"subject"`
    Body    string `json:"body"`
}

// Submit handles POST /v1/contact.  No authentication: the form is public.
func (h *ContactHandler) Submit(c echo.Context) error {
    var req contactReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Email = strings.TrimSpace(req.Email)
    if req.Name == "" || req.Email == "" || req.Body == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, email and body are required"})
    }
    m := &model.ContactMessage{Name: req.Name, Email: req.Email, Subject: req.Subject, Body: req.Body}
    if err := h.Messages.Create(c.Request().Context(), m); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusCreated, echo.Map{"id": m.ID})
}

// ListAll handles GET /v1/admin/contact.
func (h *ContactHandler) ListAll(c echo.Context) error {
    msgs, err := h.Messages.ListAll(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, msgs)
}
