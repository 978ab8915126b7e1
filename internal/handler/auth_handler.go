package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/akash247777/Rental-Management-System/internal/model"
	"github.com/akash247777/Rental-Management-System/pkg/database"
	"github.com/akash247777/Rental-Management-System/pkg/jwtutil"
	"github.com/akash247777/Rental-Management-System/pkg/logger"
	"github.com/akash247777/Rental-Management-System/prometheus"
)

var validate = validator.New()

// LoginRequest is the credential payload for /api/auth/login
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// fallbackCredentials are the built-in admin accounts accepted even when
// the database is unreachable, so the dashboard never locks out entirely
var fallbackCredentials = map[string]string{
	"krishna": "krishna@123",
	"kuber":   "kuber@123",
}

// Login authenticates a user and issues an access token
func Login(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.AuthAttemptsCounter.Inc()

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse login request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request"})
	}

	if err := validate.Struct(&req); err != nil {
		log.Warn("Incomplete login request", zap.Error(err))
		prometheus.RecordAuthError("incomplete_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "username and password are required"})
	}

	log.Info("Login attempt", zap.String("username", req.Username))

	// Check the built-in accounts first: they must work regardless of
	// store availability
	if password, ok := fallbackCredentials[req.Username]; ok && password == req.Password {
		token, err := jwtutil.GenerateToken(req.Username, "admin")
		if err != nil {
			log.Error("Failed to generate token", zap.Error(err))
			prometheus.RecordAuthError("token_generation_failed")
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "An error occurred during login"})
		}

		prometheus.AuthSuccessCounter.Inc()
		log.Info("User logged in with built-in credentials", zap.String("username", req.Username))
		return c.JSON(http.StatusOK, echo.Map{
			"access_token": token,
			"user": echo.Map{
				"username": req.Username,
				"role":     "admin",
			},
		})
	}

	// Then try database authentication
	db := database.GetDB()
	if db == nil {
		log.Error("Database unavailable during login")
		prometheus.RecordAuthError("store_unavailable")
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Database connection failed. Using fallback credentials only."})
	}

	var user model.User
	if err := db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		log.Warn("Unknown username", zap.String("username", req.Username))
		prometheus.RecordAuthError("user_not_found")
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid credentials"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		log.Warn("Invalid password", zap.String("username", req.Username))
		prometheus.RecordAuthError("invalid_password")
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid credentials"})
	}

	token, err := jwtutil.GenerateToken(user.Username, user.Role)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		prometheus.RecordAuthError("token_generation_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "An error occurred during login"})
	}

	prometheus.AuthSuccessCounter.Inc()
	log.Info("User logged in", zap.String("username", user.Username), zap.String("role", user.Role))
	return c.JSON(http.StatusOK, echo.Map{
		"access_token": token,
		"user": echo.Map{
			"username": user.Username,
			"role":     user.Role,
		},
	})
}
