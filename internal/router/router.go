package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"notebase/internal/handler"
	"notebase/internal/model"
	"notebase/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	authService service.AuthService,
	authHandler *handler.AuthHandler,
	topicHandler *handler.TopicHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/google/callback", authHandler.GoogleCallback)
	api.GET("/auth/google/auth-url", authHandler.GoogleAuthURL)

	// Secured routes. ParseTokenFunc delegates to the auth service so a
	// bearer token is only accepted when its signature and expiry check out
	// and its subject still resolves to a user.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return authService.ValidateToken(c.Request().Context(), auth)
		},
	}))

	secured.GET("/me", func(c echo.Context) error {
		p, ok := c.Get("user").(*model.Principal)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		return c.JSON(http.StatusOK, p)
	})

	// Topic routes
	secured.GET("/topics", topicHandler.ListTopics)
	secured.POST("/topics", topicHandler.CreateTopic)
	secured.PUT("/topics/:id", topicHandler.RenameTopic)
	secured.DELETE("/topics/:id", topicHandler.DeleteTopic)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
