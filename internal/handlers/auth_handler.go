package handlers

import (
	"errors"
	"time"

	"employee-admin/internal/flash"
	mw "employee-admin/internal/middleware"
	"employee-admin/internal/pkg/validation"
	"employee-admin/internal/services"
	"employee-admin/internal/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler handles registration, login, logout and the landing page.
type AuthHandler struct {
	authService   services.AuthService
	sessionSecret string
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService services.AuthService, sessionSecret string) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		sessionSecret: sessionSecret,
	}
}

// RegisterRequest defines the expected form fields for registration
type RegisterRequest struct {
	Name     string `form:"name" validate:"required"`
	Email    string `form:"email" validate:"required"`
	Phone    string `form:"phone" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// LoginRequest defines the expected form fields for login
type LoginRequest struct {
	Email    string `form:"email" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// Home handles GET / requests
func (h *AuthHandler) Home(c *fiber.Ctx) error {
	return c.Redirect("/login")
}

// ShowRegister handles GET /register requests
func (h *AuthHandler) ShowRegister(c *fiber.Ctx) error {
	return render(c, "register", nil)
}

// Register handles POST /register requests
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	logger := mw.GetRequestLogger(c)

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Warn("Failed to parse register form", zap.Error(err))
		flash.Set(c, "Invalid form data.", "danger")
		return c.Redirect("/register")
	}
	if errs := validation.ValidateStruct(&req); errs != nil {
		logger.Warn("Register form validation failed", zap.Any("details", errs))
		flash.Set(c, validation.FirstMessage(errs), "danger")
		return c.Redirect("/register")
	}

	if err := h.authService.Register(c.Context(), req.Name, req.Email, req.Phone, req.Password); err != nil {
		switch {
		case errors.Is(err, services.ErrEmailExists):
			flash.Set(c, "That email is already registered.", "danger")
		default:
			logger.Error("Registration failed", zap.String("email", req.Email), zap.Error(err))
			flash.Set(c, "Registration failed. Please try again.", "danger")
		}
		return c.Redirect("/register")
	}

	flash.Set(c, "Registered successfully. Please login.", "success")
	return c.Redirect("/login")
}

// ShowLogin handles GET /login requests
func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	return render(c, "login", nil)
}

// Login handles POST /login requests
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	logger := mw.GetRequestLogger(c)

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Warn("Failed to parse login form", zap.Error(err))
		flash.Set(c, "Invalid form data.", "danger")
		return c.Redirect("/login")
	}
	if errs := validation.ValidateStruct(&req); errs != nil {
		flash.Set(c, validation.FirstMessage(errs), "danger")
		return c.Redirect("/login")
	}

	user, err := h.authService.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			flash.Set(c, "Invalid login credentials", "danger")
			return c.Redirect("/login")
		}
		logger.Error("Internal error during login", zap.String("email", req.Email), zap.Error(err))
		flash.Set(c, "Login failed due to an internal error.", "danger")
		return c.Redirect("/login")
	}

	token, err := session.Mint(h.sessionSecret, user.ID, user.Name)
	if err != nil {
		logger.Error("Failed to mint session token", zap.Int64("userID", user.ID), zap.Error(err))
		flash.Set(c, "Login failed due to an internal error.", "danger")
		return c.Redirect("/login")
	}

	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
	})
	return c.Redirect("/main")
}

// Main handles GET /main requests (authenticated landing page)
func (h *AuthHandler) Main(c *fiber.Ctx) error {
	return render(c, "main", nil)
}

// Logout handles GET /logout requests. The cookie is cleared
// unconditionally, session or not.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Expires:  time.Now().Add(-time.Hour),
	})
	flash.Set(c, "Logged out successfully.", "success")
	return c.Redirect("/login")
}

// SetupAuthRoutes registers the public authentication routes.
func (h *AuthHandler) SetupAuthRoutes(router fiber.Router) {
	router.Get("/", h.Home)
	router.Get("/register", h.ShowRegister)
	router.Post("/register", h.Register)
	router.Get("/login", h.ShowLogin)
	router.Post("/login", h.Login)
	router.Get("/logout", h.Logout)
}

// SetupSessionRoutes registers routes that require a session.
func (h *AuthHandler) SetupSessionRoutes(router fiber.Router) {
	router.Get("/main", h.Main)
}
