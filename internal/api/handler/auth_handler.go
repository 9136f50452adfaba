package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/karibu/auth-api/internal/api/metrics"
	"github.com/karibu/auth-api/internal/core/domain"
	"github.com/karibu/auth-api/internal/core/ports"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	service  ports.AuthService
	throttle ports.LoginThrottle
	log      zerolog.Logger
}

func NewAuthHandler(service ports.AuthService, throttle ports.LoginThrottle, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{service: service, throttle: throttle, log: log}
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

// Index handles GET / — a plain liveness banner.
func (h *AuthHandler) Index(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "Authentication API is running..."})
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues(registerResult(err)).Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	h.log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("user registered")
	return c.JSON(http.StatusOK, messageResponse{Message: "Registration successful"})
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      429   {object}  messageResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	ip := c.RealIP()

	allowed, err := h.throttle.Allow(ctx, req.Email, ip)
	if err != nil {
		// Fail open: a throttle outage must not lock every account out.
		h.log.Warn().Err(err).Msg("login throttle unavailable")
	} else if !allowed {
		metrics.LoginsTotal.WithLabelValues("throttled").Inc()
		return domain.ErrTooManyAttempts
	}

	token, user, err := h.service.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			if terr := h.throttle.RecordFailure(ctx, req.Email, ip); terr != nil {
				h.log.Warn().Err(terr).Msg("recording failed login attempt")
			}
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		} else {
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	if terr := h.throttle.Reset(ctx, req.Email, ip); terr != nil {
		h.log.Warn().Err(terr).Msg("resetting login attempts")
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.log.Info().Int64("user_id", user.ID).Msg("user logged in")
	return c.JSON(http.StatusOK, messageResponse{Message: "Login successful", Token: token})
}

func registerResult(err error) string {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return "invalid_" + ve.Field
	case errors.Is(err, domain.ErrEmailTaken):
		return "duplicate_email"
	case errors.Is(err, domain.ErrUsernameTaken):
		return "duplicate_username"
	default:
		return "error"
	}
}
