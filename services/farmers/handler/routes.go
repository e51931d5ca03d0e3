package handler

import (
	"github.com/agrosmart/agrofarm/internal/pkg/models"
	"github.com/agrosmart/agrofarm/internal/utils"
	"github.com/agrosmart/agrofarm/services/farmers/handler/http"
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// Handler coordinates all HTTP handlers for the farmer service
type Handler struct {
	authHandler           *http.AuthHandler
	farmerHandler         *http.FarmerHandler
	recommendationHandler *http.RecommendationHandler
	cfg                   *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	farmerHandler *http.FarmerHandler,
	recommendationHandler *http.RecommendationHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler:           authHandler,
		farmerHandler:         farmerHandler,
		recommendationHandler: recommendationHandler,
		cfg:                   cfg,
	}
}

// GetJWTMiddleware returns the configured JWT middleware for HTTP requests
func (h *Handler) GetJWTMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(h.cfg.JWT.Secret),
		ErrorHandler: func(c echo.Context, err error) error {
			return utils.UnauthorizedResponse(c, "Invalid or missing token")
		},
		SuccessHandler: func(c echo.Context) {
			// Parse the token directly from the Authorization header to avoid
			// type conflicts with the middleware's token representation
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader != "" && len(authHeader) > 7 && authHeader[:7] == "Bearer " {
				tokenString := authHeader[7:]
				token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
					return []byte(h.cfg.JWT.Secret), nil
				})
				if err == nil && token.Valid {
					if claims, ok := token.Claims.(jwt.MapClaims); ok {
						if farmerID, exists := claims["id"]; exists {
							c.Set("farmer_id", farmerID)
						}
						if phoneNumber, exists := claims["phone_number"]; exists {
							c.Set("phone_number", phoneNumber)
						}
					}
				}
			}
		},
	})
}

// RegisterRoutes registers all handlers and their routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes (no authentication required)
	authGroup := e.Group("/auth")
	authGroup.POST("/signup", h.authHandler.Signup)
	authGroup.POST("/login", h.authHandler.Login)
	authGroup.POST("/verify-otp", h.authHandler.VerifyOTP)

	// Protected routes with JWT middleware
	protected := e.Group("", h.GetJWTMiddleware())

	farmerGroup := protected.Group("/farmers")
	farmerGroup.GET("/profile", h.farmerHandler.GetProfile)

	protected.GET("/weather", h.farmerHandler.GetWeather)
	protected.POST("/recommendations", h.recommendationHandler.Recommend)
}
