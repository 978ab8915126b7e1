package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/akash247777/Rental-Management-System/pkg/jwtutil"
	"github.com/akash247777/Rental-Management-System/pkg/logger"
	"github.com/akash247777/Rental-Management-System/prometheus"
)

// AuthMiddleware verifies the bearer token and extracts the account claims
func AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromContext(c)

		// Extract the token from the Authorization header
		tokenString := c.Request().Header.Get("Authorization")
		if tokenString == "" {
			log.Warn("Missing authorization token")
			prometheus.RecordAuthError("missing_token")
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "authentication required"})
		}

		// Remove "Bearer " prefix if present
		if len(tokenString) > 7 && strings.ToUpper(tokenString[0:7]) == "BEARER " {
			tokenString = tokenString[7:]
		}

		// Validate the token
		claims, err := jwtutil.ValidateToken(tokenString)
		if err != nil {
			log.Warn("Invalid token", zap.Error(err))
			prometheus.RecordAuthError("invalid_token")
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid or expired token"})
		}

		// Store account information in the context
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)

		// Update logger with account information
		log = log.With(
			zap.String("username", claims.Username),
			zap.String("role", claims.Role),
		)
		c.Set("logger", log)

		// Call the next handler
		return next(c)
	}
}
