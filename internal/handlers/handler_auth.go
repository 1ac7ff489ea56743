package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/stitchworks/trim_inventory_app/internal/dto"
	"github.com/stitchworks/trim_inventory_app/internal/middleware"
	"github.com/stitchworks/trim_inventory_app/internal/utils"
	"github.com/stitchworks/trim_inventory_app/pkg/config"
)

// authHandler issues dashboard tokens in exchange for the shared passcode.
type authHandler struct {
	cfg *config.Config
}

func newAuthHandler(cfg *config.Config) *authHandler {
	return &authHandler{cfg: cfg}
}

// login godoc
// @Summary Exchange the dashboard passcode for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Dashboard passcode"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrorResponse(err))
		return
	}

	if !utils.CheckPasscodeHash(req.Passcode, h.cfg.DashboardPasscodeHash) {
		logger.Warn("Dashboard login rejected", slog.String("remote_ip", c.ClientIP()))
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid passcode"})
		return
	}

	token, err := h.generateToken()
	if err != nil {
		logger.Error("Failed to sign token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}

func (h *authHandler) generateToken() (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   "dashboard",
		Issuer:    h.cfg.JWTIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(h.cfg.JWTExpiryDuration)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWTSecret))
}
