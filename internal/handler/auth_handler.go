package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"notebase/internal/auth"
	"notebase/internal/config"
	"notebase/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
	cfg         *config.Config
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// GoogleCallbackRequest carries the ID token produced by client-side
// Google Sign-In.
type GoogleCallbackRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// AuthURLResponse is the Google consent-screen URL.
type AuthURLResponse struct {
	AuthURL string `json:"auth_url"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, user)
}

// Login godoc
// @Summary Login with email and password to get a JWT token
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "User's email address"
// @Param password formData string true "User's password"
// @Success 200 {object} model.Token
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	// OAuth2 password-grant style form body; username carries the email.
	email := c.FormValue("username")
	password := c.FormValue("password")
	if email == "" || password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username and password are required")
	}

	token, err := h.authService.Login(c.Request().Context(), email, password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, token)
}

// GoogleCallback godoc
// @Summary Handle Google OIDC authentication
// @Tags auth
// @Accept json
// @Produce json
// @Param request body GoogleCallbackRequest true "Google ID token"
// @Success 200 {object} model.Token
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/google/callback [post]
func (h *AuthHandler) GoogleCallback(c echo.Context) error {
	var req GoogleCallbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.authService.GoogleLogin(c.Request().Context(), req.IDToken)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, token)
}

// GoogleAuthURL godoc
// @Summary Get Google OAuth2 authorization URL
// @Tags auth
// @Produce json
// @Success 200 {object} AuthURLResponse
// @Router /auth/google/auth-url [get]
func (h *AuthHandler) GoogleAuthURL(c echo.Context) error {
	return c.JSON(http.StatusOK, AuthURLResponse{
		AuthURL: auth.GoogleAuthURL(h.cfg.GoogleClientID, h.cfg.GoogleRedirectURI),
	})
}
