package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/clothesshop/client-api/internal/httputil"
	"github.com/clothesshop/client-api/internal/logging"
	"github.com/clothesshop/client-api/internal/validate"
)

// AuthService is the part of Service the handler needs; tests swap in mocks.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

// RateLimiter counts login attempts per client IP.
type RateLimiter interface {
	CheckIPRateLimit(ctx context.Context, ip, purpose string) (bool, error)
	RecordIPRequest(ctx context.Context, ip, purpose string) error
}

// Handler contains HTTP handlers for authentication endpoints
type Handler struct {
	service     AuthService
	rateLimiter RateLimiter
}

func NewHandler(service AuthService, rateLimiter RateLimiter) *Handler {
	return &Handler{
		service:     service,
		rateLimiter: rateLimiter,
	}
}

// LoginRequest represents the login form fields
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r LoginRequest) Validate() error {
	return validate.Struct(r)
}

// Login handles user login
// @Summary      Logs the user in
// @Description  Validate email and password and receive a bearer access token
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        email formData string true "Email"
// @Param        password formData string true "Password"
// @Success      200 {object} LoginResult
// @Failure      401 {object} httputil.ErrorResponse "Invalid credentials"
// @Failure      429 {object} httputil.ErrorResponse "Too many requests"
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /client/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	// Rate limit by IP
	ip := getClientIP(r)
	exceeded, err := h.rateLimiter.CheckIPRateLimit(r.Context(), ip, "login")
	if err != nil {
		logger.Error("failed to check IP rate limit", "error", err.Error())
	} else if exceeded {
		logger.Warn("IP rate limit exceeded for login", "ip", ip)
		httputil.RespondErrorWithCode(w, "too many requests, please try again later", httputil.CodeTooManyRequests, http.StatusTooManyRequests)
		return
	}

	if err := h.rateLimiter.RecordIPRequest(r.Context(), ip, "login"); err != nil {
		logger.Error("failed to record IP request", "error", err.Error())
	}

	if err := r.ParseForm(); err != nil {
		logger.Warn("invalid login form body", "error", err.Error())
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	req := LoginRequest{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	// Malformed credentials get the same generic 401 as wrong ones, so the
	// response carries no signal about which part failed.
	if err := req.Validate(); err != nil {
		logger.Warn("login failed: invalid credentials")
		httputil.RespondErrorWithCode(w, "invalid email or password", httputil.CodeInvalidCredentials, http.StatusUnauthorized)
		return
	}

	result, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			logger.Warn("login failed: invalid credentials")
			httputil.RespondErrorWithCode(w, "invalid email or password", httputil.CodeInvalidCredentials, http.StatusUnauthorized)
			return
		}
		logger.Error("login failed: internal error", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to login", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	// The issued token is never logged.
	logger.Info("user logged in successfully", "user_id", result.User.ID)

	httputil.RespondJSON(w, result, http.StatusOK)
}

// Logout handles user logout
// @Summary      Logs the user out
// @Description  Stateless logout; tokens remain valid until expiry and are discarded client-side
// @Tags         auth
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /client/auth/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	// No server-side revocation list exists; the token's only store of
	// truth is the client, which discards it now.
	httputil.RespondJSON(w, map[string]string{"message": "Logged out successfully"}, http.StatusOK)
}

// getClientIP extracts the client IP address from the request
func getClientIP(r *http.Request) string {
	// Check X-Forwarded-For header first (behind proxy/load balancer)
	xff := r.Header.Get("X-Forwarded-For")
	if xff != "" {
		// X-Forwarded-For can contain multiple IPs, take the first one
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	// Check X-Real-IP header
	xri := r.Header.Get("X-Real-IP")
	if xri != "" {
		return strings.TrimSpace(xri)
	}

	// Fallback to RemoteAddr
	ip := r.RemoteAddr
	// RemoteAddr format is "IP:port", extract just the IP
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}
