package handler

import (
    "errors"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-room-reservation/internal/booking"
    "github.com/iliyamo/hotel-room-reservation/internal/config"
    "github.com/iliyamo/hotel-room-reservation/internal/model"
    "github.com/iliyamo/hotel-room-reservation/internal/repository"
    "github.com/iliyamo/hotel-room-reservation/internal/utils"
)

// AuthHandler bundles dependencies for the register/login endpoints.
type AuthHandler struct {
    Cfg   config.Config
    Users *repository.UserRepo
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(cfg config.Config, users *repository.UserRepo) *AuthHandler {
    return &AuthHandler{Cfg: cfg, Users: users}
}

type registerReq struct {
    Email    string `json:"email"`
    Password string `json:"password"`
}
type loginReq struct {
    Email    string `json:"email"`
    Password string `json:"password"`
}
type authResp struct {
    User struct {
        ID    uint64 `json:"id"`
        Email string `json:"email"`
        Role  string `json:"role"`
    } `json:"user"`
    Token   string    `json:"token"`
    Expires time.Time `json:"expires"`
}

func (h *AuthHandler) respond(c echo.Context, status int, u *model.User) error {
    tok, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Role, h.Cfg.AccessTTLMin)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to issue token"})
    }
    var resp authResp
    resp.User.ID = u.ID
    resp.User.Email = u.Email
    resp.User.Role = u.Role
    resp.Token = tok.Token
    resp.Expires = tok.Exp
    return c.JSON(status, resp)
}

// Register handles POST /v1/auth/register.  New accounts always get the
// USER role; admins are promoted out of band.
func (h *AuthHandler) Register(c echo.Context) error {
    var req registerReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Email = strings.ToLower(strings.TrimSpace(req.Email))
    if req.Email == "" || req.Password == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
    }
    hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to hash password"})
    }
    u := &model.User{Email: req.Email, PasswordHash: hash, Role: model.RoleUser}
    if err := h.Users.Create(c.Request().Context(), u); err != nil {
        if errors.Is(err, repository.ErrDuplicateEmail) {
            return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return h.respond(c, http.StatusCreated, u)
}

// Login handles POST /v1/auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
    var req loginReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    u, err := h.Users.GetByEmail(c.Request().Context(), strings.TrimSpace(req.Email))
    if err != nil {
        if errors.Is(err, booking.ErrUserNotFound) {
            return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    if !utils.VerifyPassword(u.PasswordHash, req.Password) {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
    }
    return h.respond(c, http.StatusOK, u)
}

// Me handles GET /v1/me, echoing the authenticated account.
func (h *AuthHandler) Me(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    u, err := h.Users.GetByID(c.Request().Context(), userID)
    if err != nil {
        if errors.Is(err, booking.ErrUserNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"id": u.ID, "email": u.Email, "role": u.Role})
}
